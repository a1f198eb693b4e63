package player

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/chehsunliu/poker"
)

var ErrInvalidCard = errors.New("invalid card")

// cardRecord is the structured-record form a croupier uses to deal a card.
type cardRecord struct {
	Rank  string `json:"rank"`
	Suit  string `json:"suit"`
	Deck  string `json:"deck"`
	Owner string `json:"owner"`
}

type Card struct {
	face  poker.Card
	rank  string
	suit  string
	deck  string
	owner string
}

func NewCard(rank, suit, deck, owner string) (Card, error) {
	r, ok := normalizeRank(rank)
	if !ok {
		return Card{}, fmt.Errorf("%w: rank %q", ErrInvalidCard, rank)
	}
	s := strings.ToLower(suit)
	if len(s) != 1 || !strings.Contains("shdc", s) {
		return Card{}, fmt.Errorf("%w: suit %q", ErrInvalidCard, suit)
	}
	if deck == "" {
		return Card{}, fmt.Errorf("%w: missing deck", ErrInvalidCard)
	}
	return Card{
		face:  poker.NewCard(r + s),
		rank:  r,
		suit:  s,
		deck:  deck,
		owner: owner,
	}, nil
}

// DecodeCard rebuilds a Card from a structured-record line.
func DecodeCard(line string) (Card, error) {
	var rec cardRecord
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		return Card{}, fmt.Errorf("%w: %s", ErrInvalidCard, err)
	}
	return NewCard(rec.Rank, rec.Suit, rec.Deck, rec.Owner)
}

func (c Card) Deck() string { return c.deck }

func (c Card) Owner() string { return c.owner }

// Render returns the compact face text used in move descriptions, e.g. "Ah" or "Td".
func (c Card) Render() string { return c.face.String() }

func (c Card) String() string { return c.Render() }

// Points is the card's blackjack value with an ace counted as 11.
func (c Card) Points() int {
	switch c.rank {
	case "A":
		return 11
	case "T", "J", "Q", "K":
		return 10
	default:
		return int(c.rank[0] - '0')
	}
}

func (c Card) IsAce() bool { return c.rank == "A" }

func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardRecord{
		Rank:  c.rank,
		Suit:  c.suit,
		Deck:  c.deck,
		Owner: c.owner,
	})
}

func normalizeRank(rank string) (string, bool) {
	r := strings.ToUpper(rank)
	if r == "10" {
		return "T", true
	}
	if len(r) != 1 || !strings.Contains("23456789TJQKA", r) {
		return "", false
	}
	return r, true
}

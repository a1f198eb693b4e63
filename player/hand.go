package player

import (
	"sort"
	"sync"
)

const blackjack = 21

type Hand struct {
	Deck  string `json:"deck"`
	Cards []Card `json:"cards"`
	Value int    `json:"value"`
	Soft  bool   `json:"soft"`
}

// HandValue scores cards the blackjack way: aces count 11 and drop to 1
// one at a time while the total is over 21. Soft reports an ace still at 11.
func HandValue(cards []Card) (value int, soft bool) {
	aces := 0
	for _, c := range cards {
		value += c.Points()
		if c.IsAce() {
			aces++
		}
	}
	for value > blackjack && aces > 0 {
		value -= 10
		aces--
	}
	return value, aces > 0
}

// HandTracker collects the cards dealt in the current round, keyed by deck.
type HandTracker struct {
	lock  sync.RWMutex
	decks map[string][]Card
}

func NewHandTracker() *HandTracker {
	return &HandTracker{decks: make(map[string][]Card)}
}

func (h *HandTracker) Add(c Card) Hand {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.decks[c.Deck()] = append(h.decks[c.Deck()], c)
	return newHand(c.Deck(), h.decks[c.Deck()])
}

func (h *HandTracker) Hands() []Hand {
	h.lock.RLock()
	defer h.lock.RUnlock()
	hands := make([]Hand, 0, len(h.decks))
	for deck, cards := range h.decks {
		hands = append(hands, newHand(deck, cards))
	}
	sort.Slice(hands, func(i, j int) bool {
		return hands[i].Deck < hands[j].Deck
	})
	return hands
}

func (h *HandTracker) Reset() {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.decks = make(map[string][]Card)
}

func newHand(deck string, cards []Card) Hand {
	cardsCopy := make([]Card, len(cards))
	copy(cardsCopy, cards)
	value, soft := HandValue(cardsCopy)
	return Hand{
		Deck:  deck,
		Cards: cardsCopy,
		Value: value,
		Soft:  soft,
	}
}

package player

import (
	"fmt"
	"strconv"
	"strings"
)

// Inbound keywords in the order they are matched.
const (
	keyRegistrationSuccessful = "registration successful"
	keyRegistrationFailed     = "registration failed"
	keyBetAccepted            = "bet accepted"
	keyBetDeclined            = "bet declined"
	keyGameOver               = "gameover"
	keyActionAccepted         = "action accepted"
	keyActionDeclined         = "action declined"
	keyPrize                  = "prize"
	recordMarker              = "{"
)

type MessageRegistrationSuccessful struct{}

type MessageRegistrationFailed struct {
	Reason string
}

type MessageBetAccepted struct{}

type MessageBetDeclined struct {
	Reason string
}

type MessageRoundOver struct {
	Reason string
}

type MessageActionAccepted struct{}

type MessageActionDeclined struct {
	Reason string
}

type MessagePrize struct {
	Amount int
}

type MessageCard struct {
	Card Card
}

type MessageUnknown struct {
	Raw string
}

// Decode turns one inbound datagram into a message value. An error means
// the datagram matched a keyword but its payload could not be parsed.
func Decode(b []byte) (any, error) {
	line := strings.TrimRight(string(b), "\r\n")
	switch {
	case strings.HasPrefix(line, keyRegistrationSuccessful):
		return MessageRegistrationSuccessful{}, nil
	case strings.HasPrefix(line, keyRegistrationFailed):
		return MessageRegistrationFailed{Reason: payload(line, keyRegistrationFailed)}, nil
	case strings.HasPrefix(line, keyBetAccepted):
		return MessageBetAccepted{}, nil
	case strings.HasPrefix(line, keyBetDeclined):
		return MessageBetDeclined{Reason: payload(line, keyBetDeclined)}, nil
	case strings.HasPrefix(line, keyGameOver):
		return MessageRoundOver{Reason: payload(line, keyGameOver)}, nil
	case strings.HasPrefix(line, keyActionAccepted):
		return MessageActionAccepted{}, nil
	case strings.HasPrefix(line, keyActionDeclined):
		return MessageActionDeclined{Reason: payload(line, keyActionDeclined)}, nil
	case strings.HasPrefix(line, keyPrize):
		raw := strings.TrimSpace(payload(line, keyPrize))
		// Amounts are 32-bit chip counts on the wire.
		amount, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid prize amount %q: %w", raw, err)
		}
		return MessagePrize{Amount: int(amount)}, nil
	case strings.HasPrefix(line, recordMarker):
		card, err := DecodeCard(line)
		if err != nil {
			return nil, err
		}
		return MessageCard{Card: card}, nil
	default:
		return MessageUnknown{Raw: line}, nil
	}
}

// payload is the text after the keyword and its single separator.
func payload(line, keyword string) string {
	offset := len(keyword) + 1
	if len(line) <= offset {
		return ""
	}
	return line[offset:]
}

// OutboundMessage is anything the player sends to the croupier.
// Arguments are joined with single spaces and never escaped.
type OutboundMessage interface {
	Encode() string
}

type MessageRegisterPlayer struct {
	IP   string
	Port int
	Name string
}

func (m MessageRegisterPlayer) Encode() string {
	return join("registerPlayer", m.IP, strconv.Itoa(m.Port), m.Name)
}

type MessageBet struct {
	Name   string
	Amount int
}

func (m MessageBet) Encode() string {
	return join("bet", m.Name, strconv.Itoa(m.Amount))
}

type MessagePlayerAction struct {
	Action PlayerAction
	Name   string
	Deck   string
	Card   string
}

func (m MessagePlayerAction) Encode() string {
	return join(m.Action.String(), m.Name, m.Deck, m.Card)
}

type MessageGameOver struct{}

func (m MessageGameOver) Encode() string { return keyGameOver }

type MessagePrizeAccepted struct {
	Name string
}

func (m MessagePrizeAccepted) Encode() string {
	return join("prize accepted", m.Name)
}

type MessageCardReceived struct {
	Name string
	Card Card
}

func (m MessageCardReceived) Encode() string {
	return join("player", m.Name, "received", m.Card.Deck(), m.Card.Render())
}

func Encode(msg OutboundMessage) []byte {
	return []byte(msg.Encode())
}

func join(keyword string, args ...string) string {
	return strings.Join(append([]string{keyword}, args...), " ")
}

package player

import (
	"context"
	"fmt"
	"net"

	"github.com/sirupsen/logrus"
)

// Listener applies croupier messages to the session for the lifetime of
// its receive socket.
type Listener struct {
	session *Session
	sender  Sender
	console *Console
	hands   *HandTracker
	log     *logrus.Entry
}

func NewListener(session *Session, sender Sender, console *Console, hands *HandTracker) *Listener {
	return &Listener{
		session: session,
		sender:  sender,
		console: console,
		hands:   hands,
		log:     logrus.WithField("component", "listener"),
	}
}

// Run receives datagrams on conn until ctx is cancelled or a receive
// fails. Cancellation closes conn and Run returns nil; a receive failure
// is reported and returned. conn is always closed on return.
func (l *Listener) Run(ctx context.Context, conn net.PacketConn) error {
	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()
	defer conn.Close()

	l.log.WithFields(logrus.Fields{
		"addr": conn.LocalAddr().String(),
	}).Info("Listening for croupier messages")

	buf := make([]byte, MaxPacketSize)
	for {
		n, from, err := conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				l.log.Info("Listener stopped")
				return nil
			}
			l.console.Errorf("Unable to receive message on port \"%d\".", l.session.Local().Port)
			l.log.Errorf("receive error: %s", err)
			return err
		}
		l.log.WithFields(logrus.Fields{
			"from":  from.String(),
			"bytes": n,
		}).Debug("datagram received")
		if err := l.HandleDatagram(buf[:n]); err != nil {
			l.log.Warnf("datagram handling: %s", err)
		}
	}
}

// HandleDatagram decodes one datagram and applies it. A malformed payload
// is reported and dropped without touching the session.
func (l *Listener) HandleDatagram(b []byte) error {
	msg, err := Decode(b)
	if err != nil {
		l.console.Errorf("Dropped malformed message: %s", err)
		return err
	}
	return l.handleMessage(msg)
}

func (l *Listener) handleMessage(msg any) error {
	switch v := msg.(type) {
	case MessageRegistrationSuccessful:
		l.session.SetRegistered(true)
		l.console.Println("Registration successful.")
	case MessageRegistrationFailed:
		l.session.SetRegistered(false)
		l.console.Errorln("Registration failed.")
		l.reportReason(v.Reason)
	case MessageBetAccepted:
		l.console.Println("Bet accepted.")
	case MessageBetDeclined:
		l.console.Errorln("Bet declined.")
		l.reportReason(v.Reason)
	case MessageRoundOver:
		// Round termination from the croupier; registration stays as is.
		l.console.Errorln("Game over.")
		l.reportReason(v.Reason)
	case MessageActionAccepted:
		l.console.Println("Action accepted.")
	case MessageActionDeclined:
		l.console.Errorln("Action declined.")
		l.reportReason(v.Reason)
	case MessagePrize:
		return l.handlePrize(v)
	case MessageCard:
		return l.handleCard(v)
	case MessageUnknown:
		l.console.Errorf("Received unknown message: %s", v.Raw)
	default:
		return fmt.Errorf("unhandled message type %T", msg)
	}
	return nil
}

func (l *Listener) handlePrize(msg MessagePrize) error {
	switch {
	case msg.Amount > 0:
		l.console.Printf("You won %d chips.", msg.Amount)
	case msg.Amount == 0:
		l.console.Println("You broke even.")
	default:
		l.console.Printf("You lost %d chips.", -msg.Amount)
	}
	total := l.session.Settle(msg.Amount)
	l.hands.Reset()
	l.log.WithFields(logrus.Fields{
		"amount": msg.Amount,
		"net":    total,
	}).Info("Round settled")
	return l.acknowledge(MessagePrizeAccepted{Name: l.session.Name()})
}

func (l *Listener) handleCard(msg MessageCard) error {
	card := msg.Card
	l.console.Println(
		"Card: "+card.Render(),
		"Deck: "+card.Deck(),
		"Owner: "+card.Owner(),
	)
	hand := l.hands.Add(card)
	l.log.WithFields(logrus.Fields{
		"deck":  hand.Deck,
		"cards": len(hand.Cards),
		"value": hand.Value,
	}).Debug("Hand updated")
	return l.acknowledge(MessageCardReceived{Name: l.session.Name(), Card: card})
}

// acknowledge replies to the croupier of the latest registration attempt.
func (l *Listener) acknowledge(msg OutboundMessage) error {
	ep, ok := l.session.Coordinator()
	if !ok {
		l.console.Errorln("Unable to acknowledge: no croupier endpoint.")
		return ErrNoCoordinator
	}
	return deliver(l.sender, ep, msg, l.console, l.log)
}

func (l *Listener) reportReason(reason string) {
	if reason != "" {
		l.console.Errorln(reason)
	}
}

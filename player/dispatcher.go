package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	ErrNotRegistered     = errors.New("player not registered")
	ErrAlreadyRegistered = errors.New("player already registered")
	ErrUnknownCommand    = errors.New("unknown command")
	ErrLineTooLong       = errors.New("command line too long")
)

var Commands = []string{
	"registerPlayer <ip> <port> [<name>]",
	"bet <amount>",
	"hit <deck> <card>",
	"stand <deck> <card>",
	"doubleDown <deck> <card>",
	"split <deck> <card>",
	"surrender <deck> <card>",
	"gameover",
	"quit",
}

// Dispatcher turns operator command lines into croupier messages.
type Dispatcher struct {
	session *Session
	sender  Sender
	console *Console
	hands   *HandTracker
	log     *logrus.Entry
}

func NewDispatcher(session *Session, sender Sender, console *Console, hands *HandTracker) *Dispatcher {
	return &Dispatcher{
		session: session,
		sender:  sender,
		console: console,
		hands:   hands,
		log:     logrus.WithField("component", "dispatcher"),
	}
}

// Run executes one command per line of r until quit or end of input.
// Either way a still registered player sends a final gameover.
func (d *Dispatcher) Run(r io.Reader) error {
	reader := bufio.NewReader(r)
	for {
		line, readErr := reader.ReadString('\n')
		if line != "" {
			quit, err := d.Execute(line)
			if err != nil {
				d.report(err)
			}
			if quit {
				break
			}
		}
		if readErr != nil {
			d.leave()
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return readErr
		}
	}
	d.leave()
	return nil
}

// Execute runs a single command line. Rejected commands return an error
// and have no network effect. quit is true only for the quit command.
func (d *Dispatcher) Execute(line string) (quit bool, err error) {
	// Nothing longer than a datagram can be sent.
	if len(line) > MaxPacketSize {
		return false, fmt.Errorf("%w: %d bytes", ErrLineTooLong, len(line))
	}
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false, nil
	}
	keyword, args := strings.ToLower(parts[0]), parts[1:]
	switch keyword {
	case "quit":
		if len(args) != 0 {
			return false, usageError("quit")
		}
		return true, nil
	case "registerplayer":
		return false, d.register(args)
	case "bet":
		return false, d.bet(args)
	case "gameover":
		if len(args) != 0 {
			return false, usageError("gameover")
		}
		d.gameOver()
		return false, nil
	}
	if action, ok := ParsePlayerAction(keyword); ok {
		return false, d.act(action, args)
	}
	return false, fmt.Errorf("%w: %s", ErrUnknownCommand, parts[0])
}

func (d *Dispatcher) register(args []string) error {
	if d.session.Registered() {
		return ErrAlreadyRegistered
	}
	if len(args) != 2 && len(args) != 3 {
		return usageError("registerPlayer <ip> <port> [<name>]")
	}
	if !IsIP(args[0]) || !IsPort(args[1]) {
		return usageError("registerPlayer <ip> <port> [<name>]")
	}
	port, _ := strconv.Atoi(args[1])
	name := ""
	if len(args) == 3 {
		name = args[2]
	}
	coordinator := Endpoint{IP: args[0], Port: port}
	d.console.Println("Registering player...")
	d.session.BeginRegistration(coordinator, name)
	local := d.session.Local()
	return d.send(MessageRegisterPlayer{
		IP:   local.IP,
		Port: local.Port,
		Name: d.session.Name(),
	})
}

func (d *Dispatcher) bet(args []string) error {
	if !d.session.Registered() {
		return ErrNotRegistered
	}
	if len(args) != 1 || !digits.MatchString(args[0]) {
		return usageError("bet <amount>")
	}
	amount, err := strconv.Atoi(args[0])
	if err != nil || amount <= 0 {
		return fmt.Errorf("invalid amount: %s", args[0])
	}
	return d.send(MessageBet{Name: d.session.Name(), Amount: amount})
}

func (d *Dispatcher) act(action PlayerAction, args []string) error {
	if !d.session.Registered() {
		return ErrNotRegistered
	}
	if len(args) != 2 {
		return usageError(action.String() + " <deck> <card>")
	}
	return d.send(MessagePlayerAction{
		Action: action,
		Name:   d.session.Name(),
		Deck:   args[0],
		Card:   args[1],
	})
}

// gameOver is a no-op for an unregistered player.
func (d *Dispatcher) gameOver() {
	if !d.session.Registered() {
		return
	}
	d.console.Println("Unregistering player...")
	d.leave()
}

func (d *Dispatcher) leave() {
	if !d.session.Registered() {
		return
	}
	// A failed send still ends the local registration.
	_ = d.send(MessageGameOver{})
	d.session.SetRegistered(false)
	d.hands.Reset()
}

func (d *Dispatcher) send(msg OutboundMessage) error {
	ep, ok := d.session.Coordinator()
	if !ok {
		return ErrNoCoordinator
	}
	return deliver(d.sender, ep, msg, d.console, d.log)
}

func (d *Dispatcher) report(err error) {
	var sendErr *SendError
	if errors.As(err, &sendErr) {
		return
	}
	d.log.WithField("err", err).Debug("command rejected")
	d.console.Errorf("Invalid command: %s", err)
	if errors.Is(err, ErrUnknownCommand) {
		d.console.Println("Commands:")
		d.console.Println(Commands...)
	}
}

func usageError(usage string) error {
	return fmt.Errorf("usage \"%s\"", usage)
}

func isQuit(line string) bool {
	parts := strings.Fields(line)
	return len(parts) > 0 && strings.EqualFold(parts[0], "quit")
}

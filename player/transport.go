package player

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/sirupsen/logrus"
)

// MaxPacketSize bounds both the receive buffer and outbound payloads.
const MaxPacketSize = 4096

var ErrPacketTooLarge = errors.New("payload exceeds one datagram")

// SendError is a failed outbound datagram. deliver has already reported it.
type SendError struct {
	To  Endpoint
	Err error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send to %s: %s", e.To, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

// Sender delivers one datagram to an endpoint.
type Sender interface {
	Send(to Endpoint, payload []byte) error
}

type UDPTransport struct {
	listenAddr string
}

func NewUDPTransport(listenAddr string) *UDPTransport {
	return &UDPTransport{listenAddr: listenAddr}
}

// Send opens an ephemeral socket, writes a single datagram and closes it.
// There is no retry and no wait for a reply.
func (t *UDPTransport) Send(to Endpoint, payload []byte) error {
	if len(payload) > MaxPacketSize {
		return fmt.Errorf("%w: %d bytes", ErrPacketTooLarge, len(payload))
	}
	addr, err := net.ResolveUDPAddr("udp", to.String())
	if err != nil {
		return err
	}
	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return err
	}
	defer conn.Close()
	_, err = conn.Write(payload)
	return err
}

// Listen binds the local receive socket.
func (t *UDPTransport) Listen() (net.PacketConn, error) {
	return net.ListenPacket("udp", t.listenAddr)
}

// ListenAddr is the receive address for port on all interfaces. The
// configured local IP is only advertised to the croupier and may not
// belong to any interface here.
func ListenAddr(port int) string {
	return net.JoinHostPort("", strconv.Itoa(port))
}

// deliver sends msg and reports a failed send on the console. Failures
// are not retried.
func deliver(s Sender, to Endpoint, msg OutboundMessage, console *Console, log *logrus.Entry) error {
	payload := Encode(msg)
	if err := s.Send(to, payload); err != nil {
		console.Errorf("Unable to send message to \"%s\".", to.IP)
		log.WithFields(logrus.Fields{
			"to":  to.String(),
			"err": err,
		}).Error("send failed")
		return &SendError{To: to, Err: err}
	}
	log.WithFields(logrus.Fields{
		"to":      to.String(),
		"message": string(payload),
	}).Debug("datagram sent")
	return nil
}

package player

import (
	"bytes"
	"sync"
	"testing"
)

type datagram struct {
	to      Endpoint
	payload string
}

type fakeSender struct {
	lock sync.Mutex
	sent []datagram
	err  error
}

func (f *fakeSender) Send(to Endpoint, payload []byte) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, datagram{to: to, payload: string(payload)})
	return nil
}

func (f *fakeSender) datagrams() []datagram {
	f.lock.Lock()
	defer f.lock.Unlock()
	out := make([]datagram, len(f.sent))
	copy(out, f.sent)
	return out
}

type fixture struct {
	session    *Session
	sender     *fakeSender
	out        *bytes.Buffer
	errOut     *bytes.Buffer
	hands      *HandTracker
	listener   *Listener
	dispatcher *Dispatcher
}

var croupier = Endpoint{IP: "127.0.0.1", Port: 9000}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		session: NewSession(Endpoint{IP: "127.0.0.1", Port: 9100}, "Alice"),
		sender:  &fakeSender{},
		out:     &bytes.Buffer{},
		errOut:  &bytes.Buffer{},
		hands:   NewHandTracker(),
	}
	console := NewConsole(f.out, f.errOut)
	f.listener = NewListener(f.session, f.sender, console, f.hands)
	f.dispatcher = NewDispatcher(f.session, f.sender, console, f.hands)
	return f
}

// registered puts the fixture in the state reached after a successful
// registration reply.
func (f *fixture) registered() *fixture {
	f.session.BeginRegistration(croupier, "")
	f.session.SetRegistered(true)
	return f
}

func expectSent(t *testing.T, f *fixture, payloads ...string) {
	t.Helper()
	sent := f.sender.datagrams()
	if len(sent) != len(payloads) {
		t.Fatalf("expected %d datagrams, got %d: %v", len(payloads), len(sent), sent)
	}
	for i, p := range payloads {
		if sent[i].payload != p {
			t.Errorf("datagram %d: expected %q, actual %q", i, p, sent[i].payload)
		}
		if sent[i].to != croupier {
			t.Errorf("datagram %d: expected destination %v, actual %v", i, croupier, sent[i].to)
		}
	}
}

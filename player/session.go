package player

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync/atomic"
)

type AtomicInt struct {
	value int64
}

func NewAtomicInt(value int64) *AtomicInt {
	return &AtomicInt{value: value}
}

func (a *AtomicInt) String() string { return fmt.Sprintf("%d", a.Get()) }
func (a *AtomicInt) Get() int64 { return atomic.LoadInt64(&a.value) }
func (a *AtomicInt) Set(value int64) { atomic.StoreInt64(&a.value, value) }
func (a *AtomicInt) Add(delta int64) int64 { return atomic.AddInt64(&a.value, delta) }

type AtomicString struct {
	value atomic.Pointer[string]
}

func NewAtomicString(value string) *AtomicString {
	a := &AtomicString{}
	a.Set(value)
	return a
}

func (a *AtomicString) String() string { return a.Get() }

func (a *AtomicString) Get() string {
	if p := a.value.Load(); p != nil {
		return *p
	}
	return ""
}

func (a *AtomicString) Set(value string) { a.value.Store(&value) }

var ErrNoCoordinator = errors.New("no croupier endpoint")

// Endpoint is a UDP address given as dotted IPv4 text and a port.
type Endpoint struct {
	IP   string `json:"ip"`
	Port int    `json:"port"`
}

func (e Endpoint) String() string {
	return net.JoinHostPort(e.IP, strconv.Itoa(e.Port))
}

// Session is the player's view of its identity and coordinator binding.
// Each field is its own atomic cell; the listener and the dispatcher
// read and write them without a shared lock.
type Session struct {
	local       Endpoint
	name        *AtomicString
	registered  atomic.Bool
	coordinator atomic.Pointer[Endpoint]
	net         *AtomicInt
}

func NewSession(local Endpoint, name string) *Session {
	return &Session{
		local: local,
		name:  NewAtomicString(name),
		net:   NewAtomicInt(0),
	}
}

func (s *Session) Local() Endpoint { return s.local }

func (s *Session) Name() string { return s.name.Get() }

func (s *Session) SetName(name string) { s.name.Set(name) }

func (s *Session) Registered() bool { return s.registered.Load() }

func (s *Session) SetRegistered(v bool) { s.registered.Store(v) }

// Coordinator returns the endpoint of the latest registration attempt.
func (s *Session) Coordinator() (Endpoint, bool) {
	ep := s.coordinator.Load()
	if ep == nil {
		return Endpoint{}, false
	}
	return *ep, true
}

func (s *Session) SetCoordinator(ep Endpoint) { s.coordinator.Store(&ep) }

// BeginRegistration records a fresh attempt. An empty name keeps the
// current one. The registered flag is left for the reply to decide.
func (s *Session) BeginRegistration(coordinator Endpoint, name string) {
	if name != "" {
		s.name.Set(name)
	}
	s.SetCoordinator(coordinator)
}

// Settle adds a prize amount to the running net result and returns it.
func (s *Session) Settle(amount int) int64 { return s.net.Add(int64(amount)) }

func (s *Session) Net() int64 { return s.net.Get() }

type SessionSnapshot struct {
	Local       Endpoint  `json:"local"`
	Name        string    `json:"name"`
	Registered  bool      `json:"registered"`
	Coordinator *Endpoint `json:"coordinator,omitempty"`
	Net         int64     `json:"net"`
}

// Snapshot reads every field once. Fields are read independently, so a
// snapshot taken during a registration reply may mix old and new values.
func (s *Session) Snapshot() SessionSnapshot {
	snap := SessionSnapshot{
		Local:      s.local,
		Name:       s.Name(),
		Registered: s.Registered(),
		Net:        s.Net(),
	}
	if ep, ok := s.Coordinator(); ok {
		snap.Coordinator = &ep
	}
	return snap
}

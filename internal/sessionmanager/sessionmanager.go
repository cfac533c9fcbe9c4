// Package sessionmanager holds the live session set and drives admission,
// ticking, and shutdown (SPEC_FULL.md §4.7 "Session Manager"). The session
// map is read-mostly and only insertion/removal contend (SPEC_FULL.md §5
// "Shared resources").
package sessionmanager

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/crossbridge/proxycore/internal/disconnect"
	"github.com/crossbridge/proxycore/internal/session"
	"github.com/crossbridge/proxycore/internal/telemetry"
)

// ErrServerFull is returned by Admit once the live session count reaches the
// configured maximum (SPEC_FULL.md §8 "Boundary behavior: max_players
// reached: new connection refused with server_full; existing sessions
// unaffected").
var ErrServerFull = fmt.Errorf("sessionmanager: %s", disconnect.ReasonServerFull)

// Manager owns the set of live sessions (SPEC_FULL.md §3 "Ownership: the
// Session Manager exclusively owns the set of live sessions").
type Manager struct {
	maxPlayers int
	log        telemetry.Logger
	met        telemetry.Metrics

	mu       sync.RWMutex
	sessions map[string]*session.Session
}

// New builds a Manager admitting at most maxPlayers concurrent sessions.
func New(maxPlayers int, log telemetry.Logger, met telemetry.Metrics) *Manager {
	return &Manager{
		maxPlayers: maxPlayers,
		log:        log,
		met:        met,
		sessions:   make(map[string]*session.Session),
	}
}

// Admit registers a newly constructed session, refusing it with
// ErrServerFull if the manager is already at capacity. The caller is
// expected to call sess.Run in its own goroutine immediately afterwards.
func (m *Manager) Admit(sess *session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.maxPlayers > 0 && len(m.sessions) >= m.maxPlayers {
		if m.met != nil {
			m.met.IncCounter("proxycore.sessionmanager.admission_refused", 1)
		}
		return ErrServerFull
	}
	m.sessions[sess.ID()] = sess
	if m.met != nil {
		m.met.RecordGauge("proxycore.sessionmanager.live_sessions", float64(len(m.sessions)))
	}
	return nil
}

// Remove drops a session from the live set, typically called once
// sess.Done() fires.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	if m.met != nil {
		m.met.RecordGauge("proxycore.sessionmanager.live_sessions", float64(len(m.sessions)))
	}
}

// Get returns the live session with id, if any.
func (m *Manager) Get(id string) (*session.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Count reports the number of currently live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// snapshot copies the current session list so Tick/Shutdown never hold the
// lock while posting into a session's mailbox.
func (m *Manager) snapshot() []*session.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*session.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	return out
}

// Tick delivers one scheduler pulse to every live session (SPEC_FULL.md
// §4.7 "Tick dispatches to all live sessions").
func (m *Manager) Tick() {
	for _, s := range m.snapshot() {
		s.PostTick()
	}
}

// Shutdown disconnects every live session with "server shutdown" and waits
// up to drainTimeout for them to reach Dead, abandoning whichever have not
// by then (SPEC_FULL.md §4.7 "Shutdown drains all sessions... and joins
// loops with a bounded timeout, after which outstanding sessions are
// abandoned").
func (m *Manager) Shutdown(ctx context.Context, drainTimeout time.Duration) {
	sessions := m.snapshot()
	for _, s := range sessions {
		s.Disconnect(string(disconnect.ReasonServerShutdown))
	}

	drainCtx, cancel := context.WithTimeout(ctx, drainTimeout)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(len(sessions))
	for _, s := range sessions {
		go func(s *session.Session) {
			defer wg.Done()
			select {
			case <-s.Done():
			case <-drainCtx.Done():
			}
		}(s)
	}

	allDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(allDone)
	}()

	select {
	case <-allDone:
	case <-drainCtx.Done():
		if m.log != nil {
			m.log.Warn(ctx, "shutdown drain timed out, abandoning remaining sessions", "count", m.Count())
		}
	}
}

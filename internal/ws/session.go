package ws

import (
	"sync"
	"time"
)

type session struct {
	participants [2]string
	startedAt    time.Time
}

// SessionTracker keeps in-memory liveness markers for active conversations.
// Sessions are advisory bookkeeping, not an access-control gate: the router
// auto-starts one for any message that arrives without a matching entry.
// Nothing here survives a restart.
type SessionTracker struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func NewSessionTracker() *SessionTracker {
	return &SessionTracker{sessions: make(map[string]*session)}
}

// SessionID returns the canonical id for a pair, identical regardless of
// which side initiates.
func SessionID(identityA, identityB string) string {
	if identityA > identityB {
		identityA, identityB = identityB, identityA
	}
	return identityA + ":" + identityB
}

// Start inserts or refreshes the session for the pair. Idempotent.
func (t *SessionTracker) Start(identityA, identityB string) string {
	id := SessionID(identityA, identityB)
	t.mu.Lock()
	t.sessions[id] = &session{
		participants: [2]string{identityA, identityB},
		startedAt:    time.Now(),
	}
	t.mu.Unlock()
	return id
}

func (t *SessionTracker) End(identityA, identityB string) {
	t.mu.Lock()
	delete(t.sessions, SessionID(identityA, identityB))
	t.mu.Unlock()
}

// EndAllFor removes every session the identity participates in. Called on
// disconnect. Linear in active sessions, which is fine at chat volume.
func (t *SessionTracker) EndAllFor(identity string) {
	t.mu.Lock()
	for id, s := range t.sessions {
		if s.participants[0] == identity || s.participants[1] == identity {
			delete(t.sessions, id)
		}
	}
	t.mu.Unlock()
}

// Active reports whether a session exists for the pair.
func (t *SessionTracker) Active(identityA, identityB string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.sessions[SessionID(identityA, identityB)]
	return ok
}

// services/sessions.go - Per-player engine lifecycle and store selection
package services

import (
	"log"
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// SessionManager hands out one running engine per player. Authenticated
// players persist to the cloud store; guests persist to the local store.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Engine

	local *LocalStore
	cloud *CloudStore
	clock Clock
}

// NewSessionManager wires the two persistence targets. cloud may be nil
// when no database is configured; everything then lands in the local
// store.
func NewSessionManager(local *LocalStore, cloud *CloudStore, clock Clock) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Engine),
		local:    local,
		cloud:    cloud,
		clock:    clock,
	}
}

// ForUser returns the running engine for an authenticated user, creating
// and starting one on first use. When the cloud has no save yet but the
// local store does, the cloud is seeded from local before the engine
// loads.
func (m *SessionManager) ForUser(userID uint) *Engine {
	scope := strconv.FormatUint(uint64(userID), 10)

	m.mu.Lock()
	defer m.mu.Unlock()
	if engine, ok := m.sessions[scope]; ok {
		return engine
	}

	var store Store = m.local
	if m.cloud != nil {
		store = m.cloud
		if saved, err := m.cloud.Load(scope); err == nil && saved == nil {
			if localSave, err := m.local.Load(scope); err == nil && localSave != nil {
				if err := m.cloud.Save(scope, localSave); err != nil {
					log.Printf("Seeding cloud save for user %d failed: %v", userID, err)
				}
			}
		}
	}

	engine := m.startEngine(store, scope)
	m.sessions[scope] = engine
	return engine
}

// ForGuest returns the running engine for a guest session key, backed by
// the local store only.
func (m *SessionManager) ForGuest(sessionKey string) *Engine {
	scope := "guest-" + sessionKey

	m.mu.Lock()
	defer m.mu.Unlock()
	if engine, ok := m.sessions[scope]; ok {
		return engine
	}
	engine := m.startEngine(m.local, scope)
	m.sessions[scope] = engine
	return engine
}

// Logout swaps an authenticated session's persistence target from cloud
// to local without losing the in-memory state.
func (m *SessionManager) Logout(userID uint) {
	scope := strconv.FormatUint(uint64(userID), 10)

	m.mu.Lock()
	engine, ok := m.sessions[scope]
	m.mu.Unlock()
	if ok {
		engine.SwapStore(m.local, scope)
	}
}

// StopAll tears down every running session, flushing final saves.
func (m *SessionManager) StopAll() {
	m.mu.Lock()
	engines := make([]*Engine, 0, len(m.sessions))
	for _, engine := range m.sessions {
		engines = append(engines, engine)
	}
	m.sessions = make(map[string]*Engine)
	m.mu.Unlock()

	for _, engine := range engines {
		engine.Stop()
	}
}

func (m *SessionManager) startEngine(store Store, scope string) *Engine {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	engine := NewEngine(store, scope, m.clock, rng)
	engine.Start()
	return engine
}

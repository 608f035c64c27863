// Package score tracks the persisted high score
package score

import (
	"log"
	"sync"
)

// Manager reads and conditionally updates the high score
// The cached value is authoritative for the session; storage failures are logged only
type Manager struct {
	mu    sync.RWMutex
	store Store
	high  int
}

// NewManager loads the current high score from store
// Absent or unparsable storage starts at 0
func NewManager(store Store) *Manager {
	m := &Manager{store: store}
	if store == nil {
		return m
	}

	v, err := store.Load()
	if err != nil {
		log.Printf("score: %v, starting at 0", err)
		return m
	}
	m.high = v
	return m
}

// HighScore returns the current high score
func (m *Manager) HighScore() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.high
}

// RecordIfHigher stores score if it strictly exceeds the high score
// Returns whether the high score changed
func (m *Manager) RecordIfHigher(score int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if score <= m.high {
		return false
	}
	m.high = score

	if m.store != nil {
		if err := m.store.Save(score); err != nil {
			log.Printf("score: %v", err)
		}
	}
	return true
}

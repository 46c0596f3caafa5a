package session

import (
	"sync"
	"time"
)

// Manager serializes update processing per chat, so a form is redrawn and
// persisted before the next button press of the same chat is handled.
type Manager struct {
	mu    sync.Mutex
	locks map[int64]*chatLock
}

type chatLock struct {
	mu       sync.Mutex
	lastUsed time.Time
}

func NewManager() *Manager {
	return &Manager{
		locks: make(map[int64]*chatLock),
	}
}

// WithLock executes fn while holding the per-chat mutex.
// Updates of the same chat are serialized; different chats run in parallel.
func (m *Manager) WithLock(chatID int64, fn func() error) error {
	m.mu.Lock()
	cl, ok := m.locks[chatID]
	if !ok {
		cl = &chatLock{}
		m.locks[chatID] = cl
	}
	cl.lastUsed = time.Now()
	m.mu.Unlock()

	cl.mu.Lock()
	defer cl.mu.Unlock()

	return fn()
}

// Cleanup removes locks not used within maxAge.
func (m *Manager) Cleanup(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	now := time.Now()
	for chatID, cl := range m.locks {
		if now.Sub(cl.lastUsed) > maxAge && cl.mu.TryLock() {
			delete(m.locks, chatID)
			cl.mu.Unlock()
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked chats.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}

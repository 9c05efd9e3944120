package assessment

import (
	"sync"

	"github.com/brightlearn/assessment/internal/models"
)

// SessionStore keeps live sessions for the duration of an attempt.
// Durable storage happens through the archive collaborator at
// completion, never here.
type SessionStore interface {
	Get(id string) (*models.Session, bool)
	Put(sess *models.Session)
}

type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*models.Session)}
}

func (m *MemorySessionStore) Get(id string) (*models.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

func (m *MemorySessionStore) Put(sess *models.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
}

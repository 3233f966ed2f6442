// Package memory provides an in-process implementation of storage.Store.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mmynk/tipcalc/internal/models"
	"github.com/mmynk/tipcalc/internal/storage"
)

var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore keeps sessions in a map. It is safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// New creates an empty MemoryStore.
func New() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]models.Session)}
}

// CreateSession stores a copy of session under a new or given ID.
func (m *MemoryStore) CreateSession(ctx context.Context, session *models.Session) error {
	storage.PrepareNew(session)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[session.ID]; exists {
		return fmt.Errorf("session already exists: %s", session.ID)
	}
	m.sessions[session.ID] = *session
	return nil
}

// GetSession returns a copy of the stored session.
func (m *MemoryStore) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, sessionID)
	}
	return &session, nil
}

// UpdateSession overwrites an existing session.
func (m *MemoryStore) UpdateSession(ctx context.Context, session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.sessions[session.ID]
	if !ok {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, session.ID)
	}
	session.CreatedAt = existing.CreatedAt
	session.UpdatedAt = time.Now().Unix()
	m.sessions[session.ID] = *session
	return nil
}

// DeleteSession removes a session.
func (m *MemoryStore) DeleteSession(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[sessionID]; !ok {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, sessionID)
	}
	delete(m.sessions, sessionID)
	return nil
}

// Len returns the number of live sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}

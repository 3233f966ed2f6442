// Package storage provides abstractions for keeping calculator sessions.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tipcalc/internal/models"
)

// ErrNotFound is returned when a session ID is unknown to the store.
var ErrNotFound = errors.New("session not found")

// Store defines the interface for session storage operations.
// Only the current state of each session is kept; there is no history.
type Store interface {
	// CreateSession persists a new session.
	// The session's ID and timestamps are populated by the store when unset.
	CreateSession(ctx context.Context, session *models.Session) error

	// GetSession retrieves a session by its ID.
	// Returns an error wrapping ErrNotFound if the session does not exist.
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)

	// UpdateSession overwrites the stored state of an existing session
	// and refreshes its UpdatedAt timestamp.
	UpdateSession(ctx context.Context, session *models.Session) error

	// DeleteSession removes a session.
	DeleteSession(ctx context.Context, sessionID string) error

	// Close releases any resources held by the store.
	Close() error
}

// PrepareNew fills in the ID and timestamps of a session about to be created.
func PrepareNew(session *models.Session) {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if session.CreatedAt == 0 {
		session.CreatedAt = now
	}
	if session.UpdatedAt == 0 {
		session.UpdatedAt = session.CreatedAt
	}
}

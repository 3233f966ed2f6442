// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/tipcalc/internal/currency"
	"github.com/mmynk/tipcalc/internal/models"
	"github.com/mmynk/tipcalc/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One writer at a time; SQLite serializes writes anyway.
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateSession persists a new session to the database.
func (s *SQLiteStore) CreateSession(ctx context.Context, session *models.Session) error {
	storage.PrepareNew(session)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, bill_amount, tip_percentage, party_size, currency, results_visible, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID,
		session.BillAmount,
		session.TipPercentage,
		session.PartySize,
		session.Currency.String(),
		session.ResultsVisible,
		session.CreatedAt,
		session.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID.
func (s *SQLiteStore) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session := &models.Session{}
	var code string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, bill_amount, tip_percentage, party_size, currency, results_visible, created_at, updated_at
		FROM sessions
		WHERE id = ?`,
		sessionID,
	).Scan(
		&session.ID,
		&session.BillAmount,
		&session.TipPercentage,
		&session.PartySize,
		&code,
		&session.ResultsVisible,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	session.Currency = currency.Code(code)

	return session, nil
}

// UpdateSession overwrites the stored inputs of an existing session.
func (s *SQLiteStore) UpdateSession(ctx context.Context, session *models.Session) error {
	updatedAt := time.Now().Unix()

	result, err := s.db.ExecContext(ctx, `
		UPDATE sessions
		SET bill_amount = ?, tip_percentage = ?, party_size = ?, currency = ?, results_visible = ?, updated_at = ?
		WHERE id = ?`,
		session.BillAmount,
		session.TipPercentage,
		session.PartySize,
		session.Currency.String(),
		session.ResultsVisible,
		updatedAt,
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if err := requireRow(result, session.ID); err != nil {
		return err
	}
	session.UpdatedAt = updatedAt
	return nil
}

// DeleteSession removes a session.
func (s *SQLiteStore) DeleteSession(ctx context.Context, sessionID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return requireRow(result, sessionID)
}

func requireRow(result sql.Result, sessionID string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, sessionID)
	}
	return nil
}

// Package storagetest holds the behavior every storage.Store must share.
package storagetest

import (
	"context"
	"errors"
	"testing"

	"github.com/mmynk/tipcalc/internal/currency"
	"github.com/mmynk/tipcalc/internal/models"
	"github.com/mmynk/tipcalc/internal/storage"
)

// Run exercises store against the storage.Store contract.
func Run(t *testing.T, store storage.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("CreateSession generates ID and timestamps", func(t *testing.T) {
		session := models.NewSession()
		if err := store.CreateSession(ctx, &session); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}

		if session.ID == "" {
			t.Error("Expected session ID to be generated")
		}
		if session.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
		if session.UpdatedAt < session.CreatedAt {
			t.Errorf("UpdatedAt %d before CreatedAt %d", session.UpdatedAt, session.CreatedAt)
		}
	})

	t.Run("GetSession retrieves complete session", func(t *testing.T) {
		original := models.Session{
			BillAmount:     123.5,
			TipPercentage:  22,
			PartySize:      6,
			Currency:       currency.AUD,
			ResultsVisible: true,
		}
		if err := store.CreateSession(ctx, &original); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}

		got, err := store.GetSession(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetSession failed: %v", err)
		}
		if *got != original {
			t.Errorf("GetSession = %+v, want %+v", *got, original)
		}
	})

	t.Run("UpdateSession overwrites inputs", func(t *testing.T) {
		session := models.NewSession()
		if err := store.CreateSession(ctx, &session); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}

		session.BillAmount = 88
		session.PartySize = 2
		session.Currency = currency.EUR
		session.ResultsVisible = true
		if err := store.UpdateSession(ctx, &session); err != nil {
			t.Fatalf("UpdateSession failed: %v", err)
		}

		got, err := store.GetSession(ctx, session.ID)
		if err != nil {
			t.Fatalf("GetSession failed: %v", err)
		}
		if got.BillAmount != 88 || got.PartySize != 2 || got.Currency != currency.EUR || !got.ResultsVisible {
			t.Errorf("update not persisted: %+v", got)
		}
		if got.TipPercentage != 17 {
			t.Errorf("TipPercentage = %v, want untouched 17", got.TipPercentage)
		}
	})

	t.Run("DeleteSession removes session", func(t *testing.T) {
		session := models.NewSession()
		if err := store.CreateSession(ctx, &session); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}
		if err := store.DeleteSession(ctx, session.ID); err != nil {
			t.Fatalf("DeleteSession failed: %v", err)
		}
		if _, err := store.GetSession(ctx, session.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
	})

	t.Run("unknown session returns ErrNotFound", func(t *testing.T) {
		if _, err := store.GetSession(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetSession: expected ErrNotFound, got %v", err)
		}

		ghost := models.NewSession()
		ghost.ID = "missing"
		ghost.UpdatedAt = 42
		if err := store.UpdateSession(ctx, &ghost); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("UpdateSession: expected ErrNotFound, got %v", err)
		}
		if ghost.UpdatedAt != 42 {
			t.Errorf("failed UpdateSession changed UpdatedAt to %d", ghost.UpdatedAt)
		}
		if err := store.DeleteSession(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("DeleteSession: expected ErrNotFound, got %v", err)
		}
	})
}

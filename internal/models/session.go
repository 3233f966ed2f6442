package models

import (
	"github.com/mmynk/tipcalc/internal/calculator"
	"github.com/mmynk/tipcalc/internal/currency"
)

// Session is the complete input state of one tip calculator screen.
// Tip, total and per-person amounts are never stored here; they are derived
// from the inputs on every read.
type Session struct {
	// ID is the unique identifier for the session (UUID format).
	// Empty for screens that are not held by the service.
	ID string

	// BillAmount is the pre-tip amount owed, in [0, 1000].
	BillAmount float64

	// TipPercentage is the gratuity percentage, in [0, 30].
	TipPercentage float64

	// PartySize is the number of people splitting the total, in [1, 10].
	PartySize int

	// Currency labels every monetary value. No conversion is applied.
	Currency currency.Code

	// ResultsVisible gates whether derived amounts are displayed.
	// It never affects how they are computed.
	ResultsVisible bool

	// CreatedAt is the Unix timestamp when the session was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last change.
	UpdatedAt int64
}

// NewSession returns a session holding the default screen state.
func NewSession() Session {
	in := calculator.DefaultInputs()
	return Session{
		BillAmount:    in.BillAmount,
		TipPercentage: in.TipPercentage,
		PartySize:     in.PartySize,
		Currency:      currency.Default,
	}
}

// Inputs returns the numeric inputs of the session.
func (s Session) Inputs() calculator.Inputs {
	return calculator.Inputs{
		BillAmount:    s.BillAmount,
		TipPercentage: s.TipPercentage,
		PartySize:     s.PartySize,
	}
}

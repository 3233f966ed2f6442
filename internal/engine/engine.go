// Package engine holds the interaction state of the tip calculator screen.
//
// An Engine owns the four user inputs and the results-visible flag, clamps
// every numeric input at the point of entry, and notifies observers after
// each change so a front end can re-render. It is not safe for concurrent
// use; callers drive it from a single event loop.
package engine

import (
	"errors"
	"fmt"

	"github.com/mmynk/tipcalc/internal/calculator"
	"github.com/mmynk/tipcalc/internal/currency"
	"github.com/mmynk/tipcalc/internal/models"
)

// ErrInvalidInput is returned for input that cannot be clamped into range,
// such as an unrecognized currency code.
var ErrInvalidInput = errors.New("invalid input")

// Observer is called with a snapshot of the state after every change.
type Observer func(models.Session)

type subscription struct {
	id int
	fn Observer
}

// Engine is the tip calculator state holder.
type Engine struct {
	state     models.Session
	observers []subscription
	nextID    int
}

// New creates an engine holding the default screen state.
func New() *Engine {
	return &Engine{state: models.NewSession()}
}

// FromSession creates an engine from previously stored state.
// Out-of-range values are clamped and an unknown currency falls back to the default.
func FromSession(s models.Session) *Engine {
	s.BillAmount = calculator.ClampBillAmount(s.BillAmount)
	s.TipPercentage = calculator.ClampTipPercentage(s.TipPercentage)
	s.PartySize = calculator.ClampPartySize(s.PartySize)
	if !s.Currency.Valid() {
		s.Currency = currency.Default
	}
	return &Engine{state: s}
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() models.Session {
	return e.state
}

// SetBillAmount stores v clamped to [0, 1000] and returns the stored value.
func (e *Engine) SetBillAmount(v float64) float64 {
	e.state.BillAmount = calculator.ClampBillAmount(v)
	e.notify()
	return e.state.BillAmount
}

// SetTipPercentage stores v clamped to [0, 30] and returns the stored value.
func (e *Engine) SetTipPercentage(v float64) float64 {
	e.state.TipPercentage = calculator.ClampTipPercentage(v)
	e.notify()
	return e.state.TipPercentage
}

// SetPartySize stores n clamped to [1, 10] and returns the stored value.
func (e *Engine) SetPartySize(n int) int {
	e.state.PartySize = calculator.ClampPartySize(n)
	e.notify()
	return e.state.PartySize
}

// SetCurrency selects one of the supported currencies.
// An unrecognized code leaves the state untouched and returns an error
// wrapping ErrInvalidInput.
func (e *Engine) SetCurrency(code string) error {
	c, err := currency.Parse(code)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	e.state.Currency = c
	e.notify()
	return nil
}

// ToggleResultsVisible flips whether results are shown and returns the new value.
func (e *Engine) ToggleResultsVisible() bool {
	e.state.ResultsVisible = !e.state.ResultsVisible
	e.notify()
	return e.state.ResultsVisible
}

// Reset restores every input to its default. ResultsVisible is cleared.
func (e *Engine) Reset() {
	fresh := models.NewSession()
	fresh.ID = e.state.ID
	fresh.CreatedAt = e.state.CreatedAt
	fresh.UpdatedAt = e.state.UpdatedAt
	e.state = fresh
	e.notify()
}

// Derived computes tip, total and per-person amounts from the current inputs.
func (e *Engine) Derived() calculator.Breakdown {
	return calculator.Calculate(e.state.Inputs())
}

// Subscribe registers an observer and returns a function that removes it.
// Observers run synchronously, in subscription order.
func (e *Engine) Subscribe(fn Observer) (unsubscribe func()) {
	id := e.nextID
	e.nextID++
	e.observers = append(e.observers, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range e.observers {
			if sub.id == id {
				e.observers = append(e.observers[:i:i], e.observers[i+1:]...)
				return
			}
		}
	}
}

func (e *Engine) notify() {
	snapshot := e.state
	for _, sub := range e.observers {
		sub.fn(snapshot)
	}
}

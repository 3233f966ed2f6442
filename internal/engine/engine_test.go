package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/mmynk/tipcalc/internal/currency"
	"github.com/mmynk/tipcalc/internal/models"
)

func TestNewDefaults(t *testing.T) {
	e := New()
	s := e.Snapshot()

	if s.BillAmount != 305 {
		t.Errorf("BillAmount = %v, want 305", s.BillAmount)
	}
	if s.TipPercentage != 17 {
		t.Errorf("TipPercentage = %v, want 17", s.TipPercentage)
	}
	if s.PartySize != 1 {
		t.Errorf("PartySize = %d, want 1", s.PartySize)
	}
	if s.Currency != currency.USD {
		t.Errorf("Currency = %s, want USD", s.Currency)
	}
	if s.ResultsVisible {
		t.Error("expected results hidden by default")
	}

	d := e.Derived()
	if math.Abs(d.Tip-51.85) > 1e-9 || math.Abs(d.Total-356.85) > 1e-9 || math.Abs(d.PerPerson-356.85) > 1e-9 {
		t.Errorf("Derived() = %+v, want tip 51.85 total 356.85 per person 356.85", d)
	}
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name          string
		bill          float64
		tip           float64
		people        int
		wantTip       float64
		wantTotal     float64
		wantPerPerson float64
	}{
		{"dinner for four", 100, 20, 4, 20, 120, 30},
		{"nothing owed", 0, 15, 3, 0, 0, 0},
		{"default screen", 305, 17, 1, 51.85, 356.85, 356.85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			e.SetBillAmount(tt.bill)
			e.SetTipPercentage(tt.tip)
			e.SetPartySize(tt.people)

			d := e.Derived()
			if math.Abs(d.Tip-tt.wantTip) > 1e-9 {
				t.Errorf("Tip = %v, want %v", d.Tip, tt.wantTip)
			}
			if math.Abs(d.Total-tt.wantTotal) > 1e-9 {
				t.Errorf("Total = %v, want %v", d.Total, tt.wantTotal)
			}
			if math.Abs(d.PerPerson-tt.wantPerPerson) > 1e-9 {
				t.Errorf("PerPerson = %v, want %v", d.PerPerson, tt.wantPerPerson)
			}
		})
	}
}

func TestSettersClamp(t *testing.T) {
	e := New()

	if got := e.SetPartySize(0); got != 1 {
		t.Errorf("SetPartySize(0) stored %d, want 1", got)
	}
	if got := e.SetPartySize(11); got != 10 {
		t.Errorf("SetPartySize(11) stored %d, want 10", got)
	}
	if got := e.SetBillAmount(-5); got != 0 {
		t.Errorf("SetBillAmount(-5) stored %v, want 0", got)
	}
	if got := e.SetBillAmount(1e6); got != 1000 {
		t.Errorf("SetBillAmount(1e6) stored %v, want 1000", got)
	}
	if got := e.SetTipPercentage(99); got != 30 {
		t.Errorf("SetTipPercentage(99) stored %v, want 30", got)
	}
	if got := e.SetTipPercentage(-1); got != 0 {
		t.Errorf("SetTipPercentage(-1) stored %v, want 0", got)
	}

	s := e.Snapshot()
	if s.PartySize != 10 || s.BillAmount != 1000 || s.TipPercentage != 0 {
		t.Errorf("unexpected state after clamping: %+v", s)
	}
}

func TestSetCurrency(t *testing.T) {
	e := New()

	if err := e.SetCurrency("eur"); err != nil {
		t.Fatalf("SetCurrency(eur) failed: %v", err)
	}
	if e.Snapshot().Currency != currency.EUR {
		t.Errorf("Currency = %s, want EUR", e.Snapshot().Currency)
	}

	err := e.SetCurrency("BTC")
	if err == nil {
		t.Fatal("expected error for unsupported currency")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if !errors.Is(err, currency.ErrUnsupported) {
		t.Errorf("expected wrapped ErrUnsupported, got %v", err)
	}
	if e.Snapshot().Currency != currency.EUR {
		t.Errorf("failed SetCurrency changed state to %s", e.Snapshot().Currency)
	}
}

func TestToggleResultsVisibleKeepsNumbers(t *testing.T) {
	e := New()
	e.SetBillAmount(100)
	e.SetTipPercentage(20)
	e.SetPartySize(4)

	before := e.Snapshot()
	derivedBefore := e.Derived()

	if !e.ToggleResultsVisible() {
		t.Fatal("expected results visible after first toggle")
	}
	after := e.Snapshot()
	if after.BillAmount != before.BillAmount || after.TipPercentage != before.TipPercentage ||
		after.PartySize != before.PartySize || after.Currency != before.Currency {
		t.Errorf("toggle changed inputs: before %+v after %+v", before, after)
	}
	if e.Derived() != derivedBefore {
		t.Errorf("toggle changed derived values: %+v vs %+v", e.Derived(), derivedBefore)
	}

	if e.ToggleResultsVisible() {
		t.Error("expected results hidden after second toggle")
	}
}

func TestInputsMutableWhileResultsVisible(t *testing.T) {
	e := New()
	e.ToggleResultsVisible()

	e.SetBillAmount(200)
	e.SetPartySize(2)
	d := e.Derived()

	if math.Abs(d.PerPerson-117) > 1e-9 {
		t.Errorf("PerPerson = %v, want 117", d.PerPerson)
	}
	if !e.Snapshot().ResultsVisible {
		t.Error("changing inputs hid results")
	}
}

func TestDerivedIdempotent(t *testing.T) {
	e := New()
	e.SetBillAmount(123)
	e.SetTipPercentage(13)
	e.SetPartySize(7)

	if first, second := e.Derived(), e.Derived(); first != second {
		t.Errorf("Derived() not idempotent: %+v vs %+v", first, second)
	}
}

func TestFromSession(t *testing.T) {
	e := FromSession(models.Session{
		ID:            "abc",
		BillAmount:    2000,
		TipPercentage: -3,
		PartySize:     0,
		Currency:      "XYZ",
	})
	s := e.Snapshot()

	if s.ID != "abc" {
		t.Errorf("ID = %q, want abc", s.ID)
	}
	if s.BillAmount != 1000 || s.TipPercentage != 0 || s.PartySize != 1 {
		t.Errorf("stored values not clamped: %+v", s)
	}
	if s.Currency != currency.USD {
		t.Errorf("Currency = %s, want fallback USD", s.Currency)
	}
}

func TestSubscribe(t *testing.T) {
	e := New()

	var seen []models.Session
	unsubscribe := e.Subscribe(func(s models.Session) {
		seen = append(seen, s)
	})

	var order []string
	e.Subscribe(func(models.Session) { order = append(order, "second") })

	e.SetBillAmount(50)
	e.ToggleResultsVisible()
	_ = e.SetCurrency("nope")
	_ = e.SetCurrency("GBP")

	if len(seen) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(seen))
	}
	if seen[0].BillAmount != 50 {
		t.Errorf("first notification BillAmount = %v, want 50", seen[0].BillAmount)
	}
	if !seen[1].ResultsVisible {
		t.Error("second notification should carry ResultsVisible")
	}
	if seen[2].Currency != currency.GBP {
		t.Errorf("third notification Currency = %s, want GBP", seen[2].Currency)
	}
	if len(order) != 3 {
		t.Errorf("second observer called %d times, want 3", len(order))
	}

	unsubscribe()
	e.SetPartySize(3)
	if len(seen) != 3 {
		t.Errorf("unsubscribed observer still called")
	}
	if len(order) != 4 {
		t.Errorf("remaining observer called %d times, want 4", len(order))
	}
}

func TestNudge(t *testing.T) {
	e := New()

	if got := e.NudgeBillAmount(1); got != 306 {
		t.Errorf("NudgeBillAmount(1) = %v, want 306", got)
	}
	if got := e.NudgeTipPercentage(-20); got != 0 {
		t.Errorf("NudgeTipPercentage(-20) = %v, want 0", got)
	}
	if got := e.NudgePartySize(-1); got != 1 {
		t.Errorf("NudgePartySize(-1) = %d, want 1", got)
	}
	if got := e.NudgePartySize(20); got != 10 {
		t.Errorf("NudgePartySize(20) = %d, want 10", got)
	}

	e.CycleCurrency(-1)
	if e.Snapshot().Currency != currency.INR {
		t.Errorf("CycleCurrency(-1) from USD = %s, want INR", e.Snapshot().Currency)
	}
	e.CycleCurrency(2)
	if e.Snapshot().Currency != currency.EUR {
		t.Errorf("CycleCurrency(2) from INR = %s, want EUR", e.Snapshot().Currency)
	}
}

func TestReset(t *testing.T) {
	e := FromSession(models.Session{ID: "keep", BillAmount: 10, TipPercentage: 5, PartySize: 2, Currency: currency.AUD, CreatedAt: 42})
	e.ToggleResultsVisible()
	e.Reset()

	s := e.Snapshot()
	if s.ID != "keep" || s.CreatedAt != 42 {
		t.Errorf("Reset dropped identity: %+v", s)
	}
	if s.BillAmount != 305 || s.TipPercentage != 17 || s.PartySize != 1 || s.Currency != currency.USD || s.ResultsVisible {
		t.Errorf("Reset did not restore defaults: %+v", s)
	}
}

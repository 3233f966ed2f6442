package view

import (
	"strings"
	"testing"

	"github.com/mmynk/tipcalc/internal/calculator"
	"github.com/mmynk/tipcalc/internal/currency"
	"github.com/mmynk/tipcalc/internal/models"
)

func TestRenderDefaults(t *testing.T) {
	screen := Render(models.NewSession())

	if screen.Title != "Modern Tip Calculator" {
		t.Errorf("Title = %q", screen.Title)
	}
	if screen.BillAmount != "USD 305.00" {
		t.Errorf("BillAmount = %q, want %q", screen.BillAmount, "USD 305.00")
	}
	if screen.TipPercentage != "17%" {
		t.Errorf("TipPercentage = %q, want %q", screen.TipPercentage, "17%")
	}
	if screen.PartySize != "1" {
		t.Errorf("PartySize = %q, want %q", screen.PartySize, "1")
	}
	if screen.Results != nil {
		t.Errorf("expected no results while hidden, got %+v", screen.Results)
	}
	if strings.Contains(screen.String(), "Tip:") {
		t.Error("hidden screen text contains result lines")
	}
}

func TestRenderResults(t *testing.T) {
	tests := []struct {
		name    string
		session models.Session
		want    []string
	}{
		{
			name:    "default screen",
			session: models.Session{BillAmount: 305, TipPercentage: 17, PartySize: 1, Currency: currency.USD, ResultsVisible: true},
			want:    []string{"Tip: USD 51.85", "Total: USD 356.85", "Amount per Person: USD 356.85"},
		},
		{
			name:    "four people in euros",
			session: models.Session{BillAmount: 100, TipPercentage: 20, PartySize: 4, Currency: currency.EUR, ResultsVisible: true},
			want:    []string{"Tip: EUR 20.00", "Total: EUR 120.00", "Amount per Person: EUR 30.00"},
		},
		{
			name:    "zero bill",
			session: models.Session{BillAmount: 0, TipPercentage: 15, PartySize: 3, Currency: currency.INR, ResultsVisible: true},
			want:    []string{"Tip: INR 0.00", "Total: INR 0.00", "Amount per Person: INR 0.00"},
		},
		{
			name:    "repeating share rounds to cents",
			session: models.Session{BillAmount: 100, TipPercentage: 0, PartySize: 3, Currency: currency.GBP, ResultsVisible: true},
			want:    []string{"Tip: GBP 0.00", "Total: GBP 100.00", "Amount per Person: GBP 33.33"},
		},
		{
			name:    "exact half cent goes to even",
			session: models.Session{BillAmount: 1, TipPercentage: 0, PartySize: 8, Currency: currency.USD, ResultsVisible: true},
			want:    []string{"Tip: USD 0.00", "Total: USD 1.00", "Amount per Person: USD 0.12"},
		},
		{
			name:    "binary value just under half cent",
			session: models.Session{BillAmount: 1, TipPercentage: 13, PartySize: 2, Currency: currency.USD, ResultsVisible: true},
			want:    []string{"Tip: USD 0.13", "Total: USD 1.13", "Amount per Person: USD 0.56"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.session).Results.Lines()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRenderResultsDirect(t *testing.T) {
	r := RenderResults(currency.AUD, calculator.Breakdown{Tip: 1.005, Total: 11.5, PerPerson: 5.75})
	if r.Total != "Total: AUD 11.50" {
		t.Errorf("Total = %q", r.Total)
	}
	if r.PerPerson != "Amount per Person: AUD 5.75" {
		t.Errorf("PerPerson = %q", r.PerPerson)
	}
}

func TestFormatPercentage(t *testing.T) {
	tests := map[float64]string{
		0:    "0%",
		17:   "17%",
		17.9: "17%",
		30:   "30%",
	}
	for in, want := range tests {
		if got := FormatPercentage(in); got != want {
			t.Errorf("FormatPercentage(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestCurrencySelector(t *testing.T) {
	s := Render(models.Session{PartySize: 1, Currency: currency.GBP})
	want := " USD   EUR  [GBP]  AUD   INR "
	if got := s.CurrencySelector(); got != want {
		t.Errorf("CurrencySelector() = %q, want %q", got, want)
	}
}

func TestScreenString(t *testing.T) {
	s := models.NewSession()
	s.ResultsVisible = true
	text := Render(s).String()

	for _, want := range []string{
		"Modern Tip Calculator",
		"Bill Amount: USD 305.00",
		"Tip Percentage: 17%",
		"Number of People: 1",
		"Tip: USD 51.85",
		"Total: USD 356.85",
		"Amount per Person: USD 356.85",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("screen text missing %q:\n%s", want, text)
		}
	}
}

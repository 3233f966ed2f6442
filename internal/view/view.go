// Package view renders calculator state into display strings.
// Render is pure: the same session always yields the same Screen.
package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mmynk/tipcalc/internal/calculator"
	"github.com/mmynk/tipcalc/internal/currency"
	"github.com/mmynk/tipcalc/internal/models"
)

// Title is the heading shown above the controls.
const Title = "Modern Tip Calculator"

// Screen is the formatted form of one session.
type Screen struct {
	Title    string
	Currency currency.Code
	// Currencies lists every selectable code in selector order.
	Currencies []currency.Code

	BillAmount    string // "USD 305.00"
	TipPercentage string // "17%"
	PartySize     string // "1"

	// Results is nil while results are hidden.
	Results *Results
}

// Results holds the three result lines.
type Results struct {
	Tip       string // "Tip: USD 51.85"
	Total     string // "Total: USD 356.85"
	PerPerson string // "Amount per Person: USD 356.85"
}

// Lines returns the result lines in display order.
func (r *Results) Lines() []string {
	if r == nil {
		return nil
	}
	return []string{r.Tip, r.Total, r.PerPerson}
}

// Render formats s for display.
func Render(s models.Session) Screen {
	screen := Screen{
		Title:         Title,
		Currency:      s.Currency,
		Currencies:    currency.All(),
		BillAmount:    FormatMoney(s.Currency, s.BillAmount),
		TipPercentage: FormatPercentage(s.TipPercentage),
		PartySize:     fmt.Sprintf("%d", s.PartySize),
	}
	if s.ResultsVisible {
		screen.Results = RenderResults(s.Currency, calculator.Calculate(s.Inputs()))
	}
	return screen
}

// RenderResults formats a breakdown as the three result lines.
func RenderResults(c currency.Code, b calculator.Breakdown) *Results {
	return &Results{
		Tip:       "Tip: " + FormatMoney(c, b.Tip),
		Total:     "Total: " + FormatMoney(c, b.Total),
		PerPerson: "Amount per Person: " + FormatMoney(c, b.PerPerson),
	}
}

// FormatMoney prefixes an amount rounded to two decimals with its currency code.
// Rounding follows %.2f: the exact binary value is rounded, ties go to even.
func FormatMoney(c currency.Code, amount float64) string {
	return c.String() + " " + strconv.FormatFloat(amount, 'f', 2, 64)
}

// FormatPercentage shows the whole-number part of a percentage.
func FormatPercentage(p float64) string {
	return fmt.Sprintf("%d%%", int(math.Trunc(p)))
}

// CurrencySelector renders the selector with the chosen code in brackets,
// e.g. "[USD]  EUR  GBP  AUD  INR".
func (s Screen) CurrencySelector() string {
	parts := make([]string, len(s.Currencies))
	for i, c := range s.Currencies {
		if c == s.Currency {
			parts[i] = "[" + c.String() + "]"
		} else {
			parts[i] = " " + c.String() + " "
		}
	}
	return strings.Join(parts, " ")
}

// String renders the whole screen as plain text.
func (s Screen) String() string {
	var b strings.Builder
	b.WriteString(s.Title + "\n\n")
	b.WriteString("Currency: " + s.CurrencySelector() + "\n")
	b.WriteString("Bill Amount: " + s.BillAmount + "\n")
	b.WriteString("Tip Percentage: " + s.TipPercentage + "\n")
	b.WriteString("Number of People: " + s.PartySize + "\n")
	for _, line := range s.Results.Lines() {
		b.WriteString("\n" + line)
	}
	if s.Results != nil {
		b.WriteString("\n")
	}
	return b.String()
}

package calculator

import "math"

// Input ranges, step sizes and defaults for the three numeric controls.
const (
	MinBillAmount     = 0.0
	MaxBillAmount     = 1000.0
	BillAmountStep    = 1.0
	DefaultBillAmount = 305.0

	MinTipPercentage     = 0.0
	MaxTipPercentage     = 30.0
	TipPercentageStep    = 1.0
	DefaultTipPercentage = 17.0

	MinPartySize     = 1
	MaxPartySize     = 10
	PartySizeStep    = 1
	DefaultPartySize = 1
)

// Inputs are the three numbers a tip calculation depends on.
type Inputs struct {
	BillAmount    float64
	TipPercentage float64
	PartySize     int
}

// DefaultInputs returns the values a new screen starts with.
func DefaultInputs() Inputs {
	return Inputs{
		BillAmount:    DefaultBillAmount,
		TipPercentage: DefaultTipPercentage,
		PartySize:     DefaultPartySize,
	}
}

// Clamped returns a copy of in with every field forced into its valid range.
func (in Inputs) Clamped() Inputs {
	return Inputs{
		BillAmount:    ClampBillAmount(in.BillAmount),
		TipPercentage: ClampTipPercentage(in.TipPercentage),
		PartySize:     ClampPartySize(in.PartySize),
	}
}

// Breakdown holds the values derived from Inputs.
type Breakdown struct {
	Tip       float64
	Total     float64
	PerPerson float64
}

// Calculate computes the tip, the total and each person's share.
//
//	tip       = bill × (tip% / 100)
//	total     = bill + tip
//	perPerson = total / people
//
// Inputs are clamped first, so the party size is never below one.
func Calculate(in Inputs) Breakdown {
	in = in.Clamped()

	tip := in.BillAmount * (in.TipPercentage / 100)
	total := in.BillAmount + tip
	return Breakdown{
		Tip:       tip,
		Total:     total,
		PerPerson: total / float64(in.PartySize),
	}
}

// ClampBillAmount forces v into [MinBillAmount, MaxBillAmount]. NaN maps to the minimum.
func ClampBillAmount(v float64) float64 {
	return clampFloat(v, MinBillAmount, MaxBillAmount)
}

// ClampTipPercentage forces v into [MinTipPercentage, MaxTipPercentage]. NaN maps to the minimum.
func ClampTipPercentage(v float64) float64 {
	return clampFloat(v, MinTipPercentage, MaxTipPercentage)
}

// ClampPartySize forces n into [MinPartySize, MaxPartySize].
func ClampPartySize(n int) int {
	return min(max(n, MinPartySize), MaxPartySize)
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}

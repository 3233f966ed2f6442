package engine

import "github.com/mmynk/tipcalc/internal/calculator"

// The Nudge methods move a control by whole steps, the way a slider does.
// They go through the clamping setters, so nudging past either end of a
// range stops at the end.

// NudgeBillAmount moves the bill amount by steps × BillAmountStep.
func (e *Engine) NudgeBillAmount(steps int) float64 {
	return e.SetBillAmount(e.state.BillAmount + float64(steps)*calculator.BillAmountStep)
}

// NudgeTipPercentage moves the tip percentage by steps × TipPercentageStep.
func (e *Engine) NudgeTipPercentage(steps int) float64 {
	return e.SetTipPercentage(e.state.TipPercentage + float64(steps)*calculator.TipPercentageStep)
}

// NudgePartySize moves the party size by steps × PartySizeStep.
func (e *Engine) NudgePartySize(steps int) int {
	return e.SetPartySize(e.state.PartySize + steps*calculator.PartySizeStep)
}

// CycleCurrency moves the selection n places through the currency list, wrapping.
func (e *Engine) CycleCurrency(n int) {
	next := e.state.Currency.Shift(n)
	// Shift only yields supported codes.
	_ = e.SetCurrency(next.String())
}

// Package models defines the core domain model for tipcalc.
//
// # Session
//
// A Session is one copy of the calculator screen: bill amount, tip
// percentage, party size, selected currency and whether results are shown.
// The terminal front ends hold a single unnamed session for the lifetime of
// the process. The RPC service holds one per client, keyed by ID.
//
// # Derived values
//
// Tip, total and amount per person are not part of the model. They are
// computed by the calculator package from Session.Inputs whenever they are
// needed, so they can never go stale.
package models

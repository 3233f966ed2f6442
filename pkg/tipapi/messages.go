package tipapi

// Screen is the rendered state of one calculator session.
type Screen struct {
	SessionID      string  `json:"session_id,omitempty"`
	Currency       string  `json:"currency"`
	BillAmount     float64 `json:"bill_amount"`
	TipPercentage  float64 `json:"tip_percentage"`
	PartySize      int     `json:"party_size"`
	ResultsVisible bool    `json:"results_visible"`

	Title                string `json:"title"`
	CurrencySelector     string `json:"currency_selector"`
	BillAmountDisplay    string `json:"bill_amount_display"`
	TipPercentageDisplay string `json:"tip_percentage_display"`
	PartySizeDisplay     string `json:"party_size_display"`

	// Results holds the tip, total and per-person lines; empty while hidden.
	Results []string `json:"results,omitempty"`
}

// Currency describes one selectable currency.
type Currency struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type CreateSessionRequest struct{}

type CreateSessionResponse struct {
	// Token is sent back as "Authorization: Bearer <token>" on session calls.
	Token  string  `json:"token"`
	Screen *Screen `json:"screen"`
}

type GetScreenRequest struct{}

// ScreenResponse is returned by every call that reads or changes a session.
type ScreenResponse struct {
	Screen *Screen `json:"screen"`
	// Clamped is set when a numeric input was out of range and was stored clamped.
	Clamped bool `json:"clamped,omitempty"`
}

type SetBillAmountRequest struct {
	BillAmount float64 `json:"bill_amount"`
}

type SetTipPercentageRequest struct {
	TipPercentage float64 `json:"tip_percentage"`
}

type SetPartySizeRequest struct {
	PartySize int `json:"party_size"`
}

type SetCurrencyRequest struct {
	Currency string `json:"currency"`
}

type ToggleResultsRequest struct{}

type DeleteSessionRequest struct{}

type DeleteSessionResponse struct{}

// CalculateRequest runs a one-off calculation without a session.
// An empty Currency means the default.
type CalculateRequest struct {
	BillAmount    float64 `json:"bill_amount"`
	TipPercentage float64 `json:"tip_percentage"`
	PartySize     int     `json:"party_size"`
	Currency      string  `json:"currency,omitempty"`
}

type CalculateResponse struct {
	// The inputs actually used, after clamping.
	BillAmount    float64 `json:"bill_amount"`
	TipPercentage float64 `json:"tip_percentage"`
	PartySize     int     `json:"party_size"`
	Currency      string  `json:"currency"`
	Clamped       bool    `json:"clamped,omitempty"`

	Tip       float64  `json:"tip"`
	Total     float64  `json:"total"`
	PerPerson float64  `json:"per_person"`
	Lines     []string `json:"lines"`
}

type ListCurrenciesRequest struct{}

type ListCurrenciesResponse struct {
	Currencies []Currency `json:"currencies"`
	Default    string     `json:"default"`
}

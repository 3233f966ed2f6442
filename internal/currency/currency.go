// Package currency defines the closed set of currency labels a bill can be shown in.
//
// A currency is a display label only. No exchange-rate math happens anywhere.
package currency

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupported is returned when a code is not one of the supported currencies.
var ErrUnsupported = errors.New("unsupported currency")

// Code is an ISO 4217 currency code, e.g. "USD".
type Code string

const (
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
	AUD Code = "AUD"
	INR Code = "INR"
)

// Default is the currency a new screen starts with.
const Default = USD

// codes is the selector order.
var codes = []Code{USD, EUR, GBP, AUD, INR}

var names = map[Code]string{
	USD: "US Dollar",
	EUR: "Euro",
	GBP: "British Pound",
	AUD: "Australian Dollar",
	INR: "Indian Rupee",
}

// All returns the supported codes in selector order.
// The returned slice is a copy.
func All() []Code {
	out := make([]Code, len(codes))
	copy(out, codes)
	return out
}

// Parse resolves a code, ignoring case and surrounding whitespace.
func Parse(s string) (Code, error) {
	c := Code(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
	return c, nil
}

// Valid reports whether c is one of the supported codes.
func (c Code) Valid() bool {
	_, ok := names[c]
	return ok
}

// Name returns the human-readable name, or "" for an unsupported code.
func (c Code) Name() string {
	return names[c]
}

// Index returns the position of c in selector order, or -1.
func (c Code) Index() int {
	for i, code := range codes {
		if code == c {
			return i
		}
	}
	return -1
}

// Shift returns the code n positions away from c in selector order,
// wrapping at both ends. An unsupported c shifts from Default.
func (c Code) Shift(n int) Code {
	i := c.Index()
	if i < 0 {
		i = Default.Index()
	}
	i = (i + n) % len(codes)
	if i < 0 {
		i += len(codes)
	}
	return codes[i]
}

func (c Code) String() string {
	return string(c)
}

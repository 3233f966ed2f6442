package currency

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Code
		wantErr bool
	}{
		{name: "exact code", input: "EUR", want: EUR},
		{name: "lower case", input: "gbp", want: GBP},
		{name: "surrounding spaces", input: "  inr ", want: INR},
		{name: "unknown code", input: "JPY", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupported) {
					t.Errorf("expected ErrUnsupported, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestAllOrder(t *testing.T) {
	want := []Code{USD, EUR, GBP, AUD, INR}
	got := All()
	if len(got) != len(want) {
		t.Fatalf("expected %d codes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	// Mutating the copy must not affect the package order.
	got[0] = "XXX"
	if All()[0] != USD {
		t.Error("All() returned the internal slice")
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		from Code
		n    int
		want Code
	}{
		{USD, 1, EUR},
		{INR, 1, USD},
		{USD, -1, INR},
		{GBP, 7, INR},
		{AUD, -8, USD},
		{"XXX", 1, EUR},
	}

	for _, tt := range tests {
		if got := tt.from.Shift(tt.n); got != tt.want {
			t.Errorf("%s.Shift(%d) = %s, want %s", tt.from, tt.n, got, tt.want)
		}
	}
}

func TestName(t *testing.T) {
	if USD.Name() != "US Dollar" {
		t.Errorf("USD.Name() = %q", USD.Name())
	}
	if Code("XXX").Name() != "" {
		t.Error("expected empty name for unsupported code")
	}
}

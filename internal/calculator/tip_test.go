package calculator

import (
	"math"
	"testing"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name          string
		in            Inputs
		wantTip       float64
		wantTotal     float64
		wantPerPerson float64
	}{
		{
			name:          "defaults",
			in:            Inputs{BillAmount: 305, TipPercentage: 17, PartySize: 1},
			wantTip:       51.85,
			wantTotal:     356.85,
			wantPerPerson: 356.85,
		},
		{
			name:          "four people twenty percent",
			in:            Inputs{BillAmount: 100, TipPercentage: 20, PartySize: 4},
			wantTip:       20,
			wantTotal:     120,
			wantPerPerson: 30,
		},
		{
			name:          "zero bill",
			in:            Inputs{BillAmount: 0, TipPercentage: 15, PartySize: 3},
			wantTip:       0,
			wantTotal:     0,
			wantPerPerson: 0,
		},
		{
			name:          "zero tip",
			in:            Inputs{BillAmount: 90, TipPercentage: 0, PartySize: 3},
			wantTip:       0,
			wantTotal:     90,
			wantPerPerson: 30,
		},
		{
			name:          "maximum everything",
			in:            Inputs{BillAmount: 1000, TipPercentage: 30, PartySize: 10},
			wantTip:       300,
			wantTotal:     1300,
			wantPerPerson: 130,
		},
		{
			name:          "zero party size is clamped to one",
			in:            Inputs{BillAmount: 50, TipPercentage: 10, PartySize: 0},
			wantTip:       5,
			wantTotal:     55,
			wantPerPerson: 55,
		},
		{
			name:          "out of range inputs are clamped",
			in:            Inputs{BillAmount: 5000, TipPercentage: 45, PartySize: 11},
			wantTip:       300,
			wantTotal:     1300,
			wantPerPerson: 130,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.in)
			if math.Abs(got.Tip-tt.wantTip) > 1e-9 {
				t.Errorf("Tip = %v, want %v", got.Tip, tt.wantTip)
			}
			if math.Abs(got.Total-tt.wantTotal) > 1e-9 {
				t.Errorf("Total = %v, want %v", got.Total, tt.wantTotal)
			}
			if math.Abs(got.PerPerson-tt.wantPerPerson) > 1e-9 {
				t.Errorf("PerPerson = %v, want %v", got.PerPerson, tt.wantPerPerson)
			}
		})
	}
}

func TestCalculateProperties(t *testing.T) {
	for bill := 0.0; bill <= MaxBillAmount; bill += 37 {
		for tip := 0.0; tip <= MaxTipPercentage; tip += 3 {
			for people := MinPartySize; people <= MaxPartySize; people++ {
				in := Inputs{BillAmount: bill, TipPercentage: tip, PartySize: people}
				got := Calculate(in)

				wantTip := bill * tip / 100
				if !closeEnough(got.Tip, wantTip) {
					t.Fatalf("%+v: Tip = %v, want %v", in, got.Tip, wantTip)
				}
				if !closeEnough(got.Total, bill+got.Tip) {
					t.Fatalf("%+v: Total = %v, want %v", in, got.Total, bill+got.Tip)
				}
				if !closeEnough(got.PerPerson, got.Total/float64(people)) {
					t.Fatalf("%+v: PerPerson = %v, want %v", in, got.PerPerson, got.Total/float64(people))
				}
				if got.PerPerson > got.Total {
					t.Fatalf("%+v: PerPerson %v exceeds Total %v", in, got.PerPerson, got.Total)
				}
				if people == 1 && got.PerPerson != got.Total {
					t.Fatalf("%+v: single person share %v differs from Total %v", in, got.PerPerson, got.Total)
				}
				if again := Calculate(in); again != got {
					t.Fatalf("%+v: repeated Calculate differs: %+v vs %+v", in, again, got)
				}
			}
		}
	}
}

func TestClamp(t *testing.T) {
	floatTests := []struct {
		name string
		fn   func(float64) float64
		in   float64
		want float64
	}{
		{"bill below range", ClampBillAmount, -10, 0},
		{"bill above range", ClampBillAmount, 1000.5, 1000},
		{"bill in range", ClampBillAmount, 42.5, 42.5},
		{"bill NaN", ClampBillAmount, math.NaN(), 0},
		{"bill +Inf", ClampBillAmount, math.Inf(1), 1000},
		{"tip below range", ClampTipPercentage, -1, 0},
		{"tip above range", ClampTipPercentage, 31, 30},
		{"tip in range", ClampTipPercentage, 18, 18},
		{"tip NaN", ClampTipPercentage, math.NaN(), 0},
	}
	for _, tt := range floatTests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	intTests := []struct {
		in, want int
	}{
		{-3, 1}, {0, 1}, {1, 1}, {5, 5}, {10, 10}, {11, 10},
	}
	for _, tt := range intTests {
		if got := ClampPartySize(tt.in); got != tt.want {
			t.Errorf("ClampPartySize(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func closeEnough(a, b float64) bool {
	diff := math.Abs(a - b)
	if diff <= 1e-9 {
		return true
	}
	return diff <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}

package stats

import (
	"math"
	"testing"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected Breakdown
	}{
		{0, Breakdown{}},
		{59, Breakdown{Seconds: 59}},
		{60, Breakdown{Minutes: 1}},
		{3661, Breakdown{Hours: 1, Minutes: 1, Seconds: 1}},
		{86400, Breakdown{Days: 1}},
		{90061.9, Breakdown{Days: 1, Hours: 1, Minutes: 1, Seconds: 1}},
		{776.5, Breakdown{Minutes: 12, Seconds: 56}},
		{-5, Breakdown{}},
		{math.Inf(1), Breakdown{}},
		{math.Inf(-1), Breakdown{}},
		{math.NaN(), Breakdown{}},
	}

	for _, tc := range tests {
		got := Decompose(tc.seconds)
		if got != tc.expected {
			t.Errorf("Decompose(%v) = %+v, expected %+v", tc.seconds, got, tc.expected)
		}
	}
}

func TestDecomposeIdentity(t *testing.T) {
	inputs := []float64{0, 1, 59.99, 3599, 3600, 86399.5, 86400, 1234567.89, 98765432}
	for n := 0.0; n < 200000; n += 997.3 {
		inputs = append(inputs, n)
	}

	for _, n := range inputs {
		b := Decompose(n)
		if b.Total() != int64(math.Floor(n)) {
			t.Errorf("Decompose(%v).Total() = %d, expected %d", n, b.Total(), int64(math.Floor(n)))
		}
		if b.Hours < 0 || b.Hours > 23 {
			t.Errorf("Decompose(%v) hours out of range: %d", n, b.Hours)
		}
		if b.Minutes < 0 || b.Minutes > 59 {
			t.Errorf("Decompose(%v) minutes out of range: %d", n, b.Minutes)
		}
		if b.Seconds < 0 || b.Seconds > 59 {
			t.Errorf("Decompose(%v) seconds out of range: %d", n, b.Seconds)
		}
	}
}

func TestBreakdownString(t *testing.T) {
	got := Decompose(93784).String()
	expected := "1 Day(s), 2 Hour(s), 3 Minute(s), 4 Second(s)"
	if got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

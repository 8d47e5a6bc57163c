package domain

import (
	"errors"
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		input     string
		fractions uint64
	}{
		{"integer", "1", 10000},
		{"zero", "0", 0},
		{"trailing dot", "1.", 10000},
		{"leading dot", ".1", 1000},
		{"full precision", "1.2345", 12345},
		{"short fraction", "2.5", 25000},
		{"padded fraction", "3.05", 30500},
		{"large", "100000", 1000000000},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseAmount(tc.input)
			if err != nil {
				t.Fatalf("ParseAmount(%q): %v", tc.input, err)
			}
			if got.Fractions() != tc.fractions {
				t.Fatalf("ParseAmount(%q) = %d fractions, want %d", tc.input, got.Fractions(), tc.fractions)
			}
		})
	}
}

func TestParseAmountRejects(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"negative", "-1", ErrAmountNegative},
		{"negative fraction", "-0.5", ErrAmountNegative},
		{"too many digits", "1.00000", ErrAmountPrecision},
		{"empty", "", ErrAmountMalformed},
		{"letters", "abc", ErrAmountMalformed},
		{"double dot", "1.2.3", ErrAmountMalformed},
		{"lone dot", ".", ErrAmountMalformed},
		{"overflow", "99999999999999999999", ErrAmountOverflow},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ParseAmount(tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("ParseAmount(%q) error = %v, want %v", tc.input, err, tc.want)
			}
		})
	}
}

func TestAmountString(t *testing.T) {
	t.Parallel()
	cases := []struct {
		fractions uint64
		want      string
	}{
		{0, "0.0000"},
		{1, "0.0001"},
		{10000, "1.0000"},
		{12345, "1.2345"},
		{15000, "1.5000"},
	}
	for _, tc := range cases {
		if got := AmountFromFractions(tc.fractions).String(); got != tc.want {
			t.Fatalf("AmountFromFractions(%d).String() = %q, want %q", tc.fractions, got, tc.want)
		}
	}
}

func TestAmountStringRoundTrip(t *testing.T) {
	t.Parallel()
	for _, fractions := range []uint64{0, 1, 9999, 10000, 123456789} {
		a := AmountFromFractions(fractions)
		back, err := ParseAmount(a.String())
		if err != nil {
			t.Fatalf("ParseAmount(%q): %v", a.String(), err)
		}
		if back.Fractions() != fractions {
			t.Fatalf("round trip of %d fractions gave %d", fractions, back.Fractions())
		}
	}
}

func TestAmountArithmetic(t *testing.T) {
	t.Parallel()
	a := AmountFromFractions(30000)
	b := AmountFromFractions(12500)

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sum.Fractions() != 42500 {
		t.Fatalf("Add = %d, want 42500", sum.Fractions())
	}

	diff, err := sum.Sub(b)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if diff.Cmp(a) != 0 {
		t.Fatalf("Sub(Add(a,b), b) = %v, want %v", diff, a)
	}
}

func TestAmountOverflowUnderflow(t *testing.T) {
	t.Parallel()
	max := AmountFromFractions(math.MaxUint64)
	one := AmountFromFractions(1)

	if _, err := max.Add(one); !errors.Is(err, ErrAmountOverflow) {
		t.Fatalf("Add past max error = %v, want ErrAmountOverflow", err)
	}
	zero := AmountFromFractions(0)
	if _, err := zero.Sub(one); !errors.Is(err, ErrAmountUnderflow) {
		t.Fatalf("Sub below zero error = %v, want ErrAmountUnderflow", err)
	}
}

func TestAmountCompare(t *testing.T) {
	t.Parallel()
	small := AmountFromFractions(1)
	big := AmountFromFractions(2)

	if !small.Less(big) || big.Less(small) {
		t.Fatalf("Less ordering wrong for %v and %v", small, big)
	}
	if small.Cmp(big) != -1 || big.Cmp(small) != 1 || small.Cmp(small) != 0 {
		t.Fatalf("Cmp ordering wrong for %v and %v", small, big)
	}
	if !AmountFromFractions(0).IsZero() || small.IsZero() {
		t.Fatal("IsZero wrong")
	}
}

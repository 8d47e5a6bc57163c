package domain

import (
	"fmt"
	"math"
)

// AmountPrecision is the number of fractional digits carried by an Amount.
const AmountPrecision = 4

// fractionsPerUnit is 10^AmountPrecision.
const fractionsPerUnit = 10000

// Amount is an exact, unsigned currency amount with four fractional digits,
// stored as an integer count of 1e-4 units.
//
// Non-negativity and exactness are structural: no constructor or operation
// can produce a negative, rounded, or wrapped value. Arithmetic that would
// leave the representable range fails with a typed error instead.
type Amount struct {
	fractions uint64
}

// AmountFromFractions builds an Amount from a raw count of 1e-4 units.
func AmountFromFractions(fractions uint64) Amount {
	return Amount{fractions: fractions}
}

// Fractions returns the raw count of 1e-4 units.
func (a Amount) Fractions() uint64 {
	return a.fractions
}

// ParseAmount parses a sign-less decimal literal with zero to four
// fractional digits. More than four fractional digits is a precision loss
// and rejected rather than rounded. A leading minus is rejected as negative;
// any other non-digit input is malformed; magnitudes beyond the backing
// uint64 overflow.
func ParseAmount(text string) (Amount, error) {
	if text == "" {
		return Amount{}, ErrAmountMalformed
	}
	if text[0] == '-' {
		return Amount{}, ErrAmountNegative
	}
	var fractions uint64
	sawDigit := false
	fractionalDigits := -1
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= '0' && c <= '9':
			sawDigit = true
			if fractionalDigits >= 0 {
				if fractionalDigits == AmountPrecision {
					return Amount{}, ErrAmountPrecision
				}
				fractionalDigits++
			}
			if fractions > math.MaxUint64/10 {
				return Amount{}, ErrAmountOverflow
			}
			fractions *= 10
			digit := uint64(c - '0')
			if fractions > math.MaxUint64-digit {
				return Amount{}, ErrAmountOverflow
			}
			fractions += digit
		case c == '.':
			if fractionalDigits >= 0 {
				return Amount{}, ErrAmountMalformed
			}
			fractionalDigits = 0
		default:
			return Amount{}, ErrAmountMalformed
		}
	}
	if !sawDigit {
		return Amount{}, ErrAmountMalformed
	}
	if fractionalDigits < 0 {
		fractionalDigits = 0
	}
	// Shift the parsed value to the fixed 1e-4 scale.
	for ; fractionalDigits < AmountPrecision; fractionalDigits++ {
		if fractions > math.MaxUint64/10 {
			return Amount{}, ErrAmountOverflow
		}
		fractions *= 10
	}
	return Amount{fractions: fractions}, nil
}

// Add returns a+b, or ErrAmountOverflow if the sum leaves the uint64 range.
func (a Amount) Add(b Amount) (Amount, error) {
	if a.fractions > math.MaxUint64-b.fractions {
		return Amount{}, ErrAmountOverflow
	}
	return Amount{fractions: a.fractions + b.fractions}, nil
}

// Sub returns a-b, or ErrAmountUnderflow if b is greater than a.
func (a Amount) Sub(b Amount) (Amount, error) {
	if b.fractions > a.fractions {
		return Amount{}, ErrAmountUnderflow
	}
	return Amount{fractions: a.fractions - b.fractions}, nil
}

// Cmp returns -1, 0 or 1 by total order.
func (a Amount) Cmp(b Amount) int {
	switch {
	case a.fractions < b.fractions:
		return -1
	case a.fractions > b.fractions:
		return 1
	default:
		return 0
	}
}

// Less reports whether a is strictly smaller than b.
func (a Amount) Less(b Amount) bool {
	return a.fractions < b.fractions
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.fractions == 0
}

// String renders the amount with exactly four fractional digits and an
// always-present decimal point, e.g. "0.0000" and "1.5000".
func (a Amount) String() string {
	return fmt.Sprintf("%d.%04d", a.fractions/fractionsPerUnit, a.fractions%fractionsPerUnit)
}

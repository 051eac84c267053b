package ternary

import (
	"math"
	"strings"
)

// Digit is a single base-3 digit in a length's canonical decomposition.
type Digit uint8

const (
	Zero Digit = iota
	One
	Two
)

var digitNames = [...]string{
	Zero: "zero",
	One:  "one",
	Two:  "two",
}

func (d Digit) String() string {
	if int(d) < len(digitNames) {
		return digitNames[d]
	}
	return "invalid"
}

// Digits returns the canonical base-3 decomposition of n, least significant
// digit first. Zero decomposes to the empty string. Negative lengths have no
// decomposition.
func Digits(n int) ([]Digit, bool) {
	if n < 0 {
		return nil, false
	}
	var out []Digit
	for n > 0 {
		out = append(out, Digit(n%3))
		n /= 3
	}
	return out, true
}

// Value recomposes a digit string into the length it denotes. Reports false
// when a digit is out of range or the value overflows int.
func Value(digits []Digit) (int, bool) {
	n := 0
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if d > Two {
			return 0, false
		}
		if n > (math.MaxInt-int(d))/3 {
			return 0, false
		}
		n = n*3 + int(d)
	}
	return n, true
}

// Pred returns the canonical digit string denoting one less than the input.
// Reports false for zero, which has no predecessor.
func Pred(digits []Digit) ([]Digit, bool) {
	out := make([]Digit, len(digits))
	copy(out, digits)

	for i := range out {
		switch out[i] {
		case Zero:
			// borrow cascades into the next position
			out[i] = Two
		case One:
			out[i] = Zero
			return Normalize(out), true
		case Two:
			out[i] = One
			return out, true
		default:
			return nil, false
		}
	}

	// every position was zero, so the string denotes zero
	return nil, false
}

// Triple prepends a zero digit, tripling the denoted length. Zero stays the
// empty string.
func Triple(digits []Digit) []Digit {
	if len(digits) == 0 {
		return nil
	}
	out := make([]Digit, 0, len(digits)+1)
	out = append(out, Zero)
	return append(out, digits...)
}

// Normalize strips high-order zero digits, producing the canonical form.
func Normalize(digits []Digit) []Digit {
	end := len(digits)
	for end > 0 && digits[end-1] == Zero {
		end--
	}
	return digits[:end]
}

// IsCanonical reports whether the string is a canonical decomposition:
// every digit in range and no high-order zeros.
func IsCanonical(digits []Digit) bool {
	for _, d := range digits {
		if d > Two {
			return false
		}
	}
	return len(digits) == 0 || digits[len(digits)-1] != Zero
}

// Format renders a digit string most significant digit first, the way a
// base-3 numeral is written. The empty string renders as "0".
func Format(digits []Digit) string {
	if len(digits) == 0 {
		return "0"
	}
	var b strings.Builder
	b.Grow(len(digits))
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteByte('0' + byte(digits[i]))
	}
	return b.String()
}

package ternary

import "testing"

func digitsEqual(a, b []Digit) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDigits(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []Digit
		ok   bool
	}{
		{name: "zero", n: 0, want: nil, ok: true},
		{name: "one", n: 1, want: []Digit{One}, ok: true},
		{name: "two", n: 2, want: []Digit{Two}, ok: true},
		{name: "three", n: 3, want: []Digit{Zero, One}, ok: true},
		{name: "eight", n: 8, want: []Digit{Two, Two}, ok: true},
		{name: "nine", n: 9, want: []Digit{Zero, Zero, One}, ok: true},
		{name: "ten", n: 10, want: []Digit{One, Zero, One}, ok: true},
		{name: "twenty-six", n: 26, want: []Digit{Two, Two, Two}, ok: true},
		{name: "twenty-seven", n: 27, want: []Digit{Zero, Zero, Zero, One}, ok: true},
		{name: "eighty-one", n: 81, want: []Digit{Zero, Zero, Zero, Zero, One}, ok: true},
		{name: "negative", n: -1, want: nil, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Digits(tt.n)
			if ok != tt.ok {
				t.Fatalf("Digits(%d) ok = %v, want %v", tt.n, ok, tt.ok)
			}
			if !digitsEqual(got, tt.want) {
				t.Errorf("Digits(%d) = %v, want %v", tt.n, got, tt.want)
			}
			if !IsCanonical(got) {
				t.Errorf("Digits(%d) = %v is not canonical", tt.n, got)
			}
		})
	}
}

func TestValue_RoundTrip(t *testing.T) {
	for n := 0; n <= 243; n++ {
		digits, ok := Digits(n)
		if !ok {
			t.Fatalf("Digits(%d) failed", n)
		}
		got, ok := Value(digits)
		if !ok {
			t.Fatalf("Value(Digits(%d)) failed", n)
		}
		if got != n {
			t.Errorf("Value(Digits(%d)) = %d, want %d", n, got, n)
		}
	}
}

func TestValue_Invalid(t *testing.T) {
	if _, ok := Value([]Digit{One, Digit(3)}); ok {
		t.Error("Value accepted an out-of-range digit")
	}
}

func TestValue_Overflow(t *testing.T) {
	// 41 high-order ones exceed a 64-bit int
	digits := make([]Digit, 41)
	for i := range digits {
		digits[i] = One
	}
	if _, ok := Value(digits); ok {
		t.Error("Value accepted a string that overflows int")
	}
}

func TestPred(t *testing.T) {
	tests := []struct {
		name string
		in   []Digit
		want []Digit
		ok   bool
	}{
		{name: "zero has no predecessor", in: nil, want: nil, ok: false},
		{name: "leading two", in: []Digit{Two}, want: []Digit{One}, ok: true},
		{name: "leading one renormalizes", in: []Digit{One}, want: nil, ok: true},
		{name: "leading one keeps high digits", in: []Digit{One, One}, want: []Digit{Zero, One}, ok: true},
		{name: "borrow at nine", in: []Digit{Zero, Zero, One}, want: []Digit{Two, Two}, ok: true},
		{name: "borrow at twenty-seven", in: []Digit{Zero, Zero, Zero, One}, want: []Digit{Two, Two, Two}, ok: true},
		{name: "partial borrow", in: []Digit{Zero, Two}, want: []Digit{Two, One}, ok: true},
		{name: "invalid digit", in: []Digit{Digit(7)}, want: nil, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Pred(tt.in)
			if ok != tt.ok {
				t.Fatalf("Pred(%v) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if !digitsEqual(got, tt.want) {
				t.Errorf("Pred(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPred_AgreesWithArithmetic(t *testing.T) {
	for n := 1; n <= 243; n++ {
		digits, _ := Digits(n)
		pred, ok := Pred(digits)
		if !ok {
			t.Fatalf("Pred(Digits(%d)) failed", n)
		}
		want, _ := Digits(n - 1)
		if !digitsEqual(pred, want) {
			t.Errorf("Pred(Digits(%d)) = %v, want %v", n, pred, want)
		}
	}
}

func TestPred_DoesNotMutateInput(t *testing.T) {
	in := []Digit{Zero, Zero, One}
	if _, ok := Pred(in); !ok {
		t.Fatal("Pred failed")
	}
	if !digitsEqual(in, []Digit{Zero, Zero, One}) {
		t.Errorf("Pred mutated its input: %v", in)
	}
}

func TestTriple(t *testing.T) {
	for n := 0; n <= 81; n++ {
		digits, _ := Digits(n)
		tripled := Triple(digits)
		want, _ := Digits(3 * n)
		if !digitsEqual(tripled, want) {
			t.Errorf("Triple(Digits(%d)) = %v, want %v", n, tripled, want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []Digit
		want []Digit
	}{
		{name: "already canonical", in: []Digit{Two, One}, want: []Digit{Two, One}},
		{name: "one high zero", in: []Digit{One, Zero}, want: []Digit{One}},
		{name: "all zeros", in: []Digit{Zero, Zero, Zero}, want: nil},
		{name: "empty", in: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); !digitsEqual(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsCanonical(t *testing.T) {
	tests := []struct {
		name string
		in   []Digit
		want bool
	}{
		{name: "empty", in: nil, want: true},
		{name: "canonical", in: []Digit{Zero, One}, want: true},
		{name: "high zero", in: []Digit{One, Zero}, want: false},
		{name: "bad digit", in: []Digit{Digit(5)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCanonical(tt.in); got != tt.want {
				t.Errorf("IsCanonical(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{n: 0, want: "0"},
		{n: 1, want: "1"},
		{n: 8, want: "22"},
		{n: 9, want: "100"},
		{n: 10, want: "101"},
		{n: 81, want: "10000"},
	}

	for _, tt := range tests {
		digits, _ := Digits(tt.n)
		if got := Format(digits); got != tt.want {
			t.Errorf("Format(Digits(%d)) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestDigit_String(t *testing.T) {
	if got := Zero.String(); got != "zero" {
		t.Errorf("Zero.String() = %q, want %q", got, "zero")
	}
	if got := Digit(9).String(); got != "invalid" {
		t.Errorf("Digit(9).String() = %q, want %q", got, "invalid")
	}
}

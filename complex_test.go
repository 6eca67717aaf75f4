package trig

import (
	"errors"
	"math/big"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func complexEq(t *testing.T, got Complex, re, im Rat) {
	t.Helper()
	if !got.Re.Equal(re) || !got.Im.Equal(im) {
		t.Fatalf("got %s, want %s + %si", got, re, im)
	}
}

func TestComplexArithmetic(t *testing.T) {
	a := ComplexFromInt64(1, 2)
	b := ComplexFromInt64(3, -1)
	complexEq(t, a.Add(b), RatFromInt64(4, 1), RatFromInt64(1, 1))
	complexEq(t, a.Sub(b), RatFromInt64(-2, 1), RatFromInt64(3, 1))
	// (1+2i)(3-i) = 5+5i
	complexEq(t, a.RawMul(b), RatFromInt64(5, 1), RatFromInt64(5, 1))
	complexEq(t, a.Conj(), RatFromInt64(1, 1), RatFromInt64(-2, 1))

	if !a.MagSq().Equal(RatFromInt64(5, 1)) {
		t.Fatalf("MagSq(1+2i) = %s, want 5", a.MagSq())
	}
}

func TestComplexDiv(t *testing.T) {
	// (1+2i)/(3-i) = (1+7i)/10
	a := ComplexFromInt64(1, 2)
	b := ComplexFromInt64(3, -1)
	q, err := a.Div(b)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	complexEq(t, q, RatFromInt64(1, 10), RatFromInt64(7, 10))

	if _, err := a.Div(Zero()); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("division by zero: got %v", err)
	}
}

func TestNormalizeExactTriple(t *testing.T) {
	// |3+4i| = 5, so the normalization is exact: 3/5 + 4/5 i.
	z := ComplexFromInt64(3, 4).Normalize()
	complexEq(t, z, RatFromInt64(3, 5), RatFromInt64(4, 5))

	if !Zero().Normalize().IsZero() {
		t.Fatal("Normalize(0) must stay zero")
	}
}

func TestNormalizedMulUnitCircle(t *testing.T) {
	// (1+i)/sqrt(2) squared is exactly i.
	u := ComplexFromInt64(1, 1).Normalize()
	sq := u.NormalizedMul(u)
	if !sq.Equal(I()) {
		t.Fatalf("((1+i)/sqrt 2)^2 = %s, want i", sq)
	}
}

func TestNormalizeCompaction(t *testing.T) {
	z := ComplexFromRats(RatFromInt64(12345, 7919), RatFromInt64(-6789, 104729)).Normalize()
	if z.Re.Den().Cmp(defaultMaxDen) > 0 || z.Im.Den().Cmp(defaultMaxDen) > 0 {
		t.Fatalf("denominators exceed the compaction cap: %s", z)
	}
	if !scalar.EqualWithinAbs(z.Abs(), 1, 1e-12) {
		t.Fatalf("|Normalize(z)| = %g, want 1", z.Abs())
	}
}

func TestNewComplexErrors(t *testing.T) {
	if _, err := NewComplex(big.NewInt(1), big.NewInt(0), big.NewInt(0), big.NewInt(1)); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("zero re denominator: got %v", err)
	}
	if _, err := NewComplex(big.NewInt(1), big.NewInt(1), big.NewInt(1), big.NewInt(0)); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("zero im denominator: got %v", err)
	}
}

func TestComplexStringFixed(t *testing.T) {
	cases := []struct {
		z      Complex
		digits int
		want   string
	}{
		{ComplexFromInt64(1, -2), 2, "1.00-2.00i"},
		{ComplexFromInt64(0, 1), 3, "0.000+1.000i"},
		{ComplexFromRats(RatFromInt64(1, 2), RatFromInt64(1, 3)), 4, "0.5000+0.3333i"},
	}
	for _, c := range cases {
		if got := c.z.StringFixed(c.digits); got != c.want {
			t.Fatalf("StringFixed(%d): got %q, want %q", c.digits, got, c.want)
		}
	}
}

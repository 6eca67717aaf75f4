package trig

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestComputeConvergentsHalfRadian(t *testing.T) {
	coeffs, err := Coefficients(big.NewInt(2), 5)
	if err != nil {
		t.Fatalf("Coefficients: %v", err)
	}
	conv, err := ComputeConvergents(coeffs, big.NewInt(1))
	if err != nil {
		t.Fatalf("ComputeConvergents: %v", err)
	}
	if len(conv.Values) != 5 {
		t.Fatalf("got %d convergents, want 5", len(conv.Values))
	}

	complexEq(t, conv.Values[0], RatFromInt64(1, 1), RatFromInt64(0, 1))
	complexEq(t, conv.Values[1], RatFromInt64(1, 1), RatFromInt64(-1, 2))
	complexEq(t, conv.Values[2], RatFromInt64(15, 17), RatFromInt64(-8, 17))

	// The tail approaches e^(-i/2).
	re, im := conv.Values[4].Float64s()
	if !scalar.EqualWithinAbs(re, math.Cos(0.5), 1e-3) || !scalar.EqualWithinAbs(im, -math.Sin(0.5), 1e-3) {
		t.Fatalf("convergent 4 = %g%+gi, want about e^(-i/2)", re, im)
	}
}

func TestFirstConvergentIsFirstCoefficient(t *testing.T) {
	for _, q := range []int64{1, 2, 7} {
		coeffs, err := Coefficients(big.NewInt(q), 4)
		if err != nil {
			t.Fatalf("Coefficients(%d): %v", q, err)
		}
		conv, err := ComputeConvergents(coeffs, big.NewInt(1))
		if err != nil {
			t.Fatalf("ComputeConvergents(%d): %v", q, err)
		}
		if !conv.Values[0].Equal(coeffs[0]) {
			t.Fatalf("q=%d: first convergent %s, first coefficient %s", q, conv.Values[0], coeffs[0])
		}
	}
}

func TestComputeConvergentsLimitIndex(t *testing.T) {
	coeffs, err := Coefficients(big.NewInt(2), 20)
	if err != nil {
		t.Fatalf("Coefficients: %v", err)
	}
	conv, err := ComputeConvergents(coeffs, big.NewInt(1))
	if err != nil {
		t.Fatalf("ComputeConvergents: %v", err)
	}
	if conv.LimitIndex < 0 || conv.LimitIndex >= len(conv.Values)-1 {
		t.Fatalf("LimitIndex = %d, want an interior index", conv.LimitIndex)
	}
	// Deeper values are still computed past the limit.
	if len(conv.Values) != 20 {
		t.Fatalf("got %d values, want 20", len(conv.Values))
	}

	// Too few terms to trigger the criterion.
	short, err := ComputeConvergents(coeffs[:3], big.NewInt(1))
	if err != nil {
		t.Fatalf("ComputeConvergents: %v", err)
	}
	if short.LimitIndex != -1 {
		t.Fatalf("short run LimitIndex = %d, want -1", short.LimitIndex)
	}
}

func TestComputeConvergentsLimitScalesWithNumerator(t *testing.T) {
	coeffs, err := Coefficients(big.NewInt(2), 20)
	if err != nil {
		t.Fatalf("Coefficients: %v", err)
	}
	small, err := ComputeConvergents(coeffs, big.NewInt(1))
	if err != nil {
		t.Fatalf("ComputeConvergents: %v", err)
	}
	large, err := ComputeConvergents(coeffs, new(big.Int).Exp(big.NewInt(10), big.NewInt(6), nil))
	if err != nil {
		t.Fatalf("ComputeConvergents: %v", err)
	}
	// A larger exponent numerator raises the bar, so the limit moves deeper.
	if large.LimitIndex >= 0 && large.LimitIndex < small.LimitIndex {
		t.Fatalf("limit %d for numerator 10^6, %d for 1", large.LimitIndex, small.LimitIndex)
	}
}

func TestComputeConvergentsEdges(t *testing.T) {
	conv, err := ComputeConvergents(nil, big.NewInt(1))
	if err != nil {
		t.Fatalf("empty coefficients: %v", err)
	}
	if len(conv.Values) != 0 || conv.LimitIndex != -1 {
		t.Fatalf("empty coefficients: got %+v", conv)
	}

	// A zero coefficient in second position drives the continuant
	// denominator to zero.
	_, err = ComputeConvergents([]Complex{One(), Zero()}, big.NewInt(1))
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("degenerate coefficients: got %v, want ErrDivisionByZero", err)
	}
}

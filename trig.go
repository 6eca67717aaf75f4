// Package trig computes trigonometric values through exact rational
// arithmetic: an angle p/q (radians) is evaluated by expanding e^(-i/q)
// as a complex continued fraction with Gaussian-integer coefficients,
// folding the convergents with the Wallis-Euler recurrence, and raising
// the best convergent to the -p-th power with renormalizing binary
// exponentiation. Floats appear only at the observation boundary.
//
// Minimal usage:
//
//	a, err := trig.AngleOfPi(big.NewInt(1), big.NewInt(6)) // pi/6
//	if err != nil { ... }
//	res, err := trig.Expi(a, 24)
//	if err != nil { ... }
//	fmt.Println(res.Sin()) // 0.5000000000...
//
// SPDX-License-Identifier: MIT
package trig

import (
	"errors"
	"math"
	"math/big"
)

// Sentinel errors shared across the package.
var (
	ErrDivisionByZero = errors.New("trig: division by zero")
	ErrNonFiniteInput = errors.New("trig: non-finite float input")
	ErrNegativeInput  = errors.New("trig: negative input")
	ErrInvalidAngle   = errors.New("trig: invalid angle")
)

// Angle is an exact rational number of radians. Negative angles are
// allowed; the sign travels in the numerator.
type Angle struct {
	rad Rat
}

// AngleFromRadians builds an angle of num/den radians. It fails with
// ErrInvalidAngle when den is not positive.
func AngleFromRadians(num, den *big.Int) (Angle, error) {
	if num == nil || den == nil || den.Sign() < 1 {
		return Angle{}, ErrInvalidAngle
	}
	r, err := NewRat(num, den)
	if err != nil {
		return Angle{}, err
	}
	return Angle{rad: r}, nil
}

// piRat is the package's rational stand-in for pi, accurate to the full
// useful precision of a float64.
var piRat = mustRatFromFloat(math.Pi)

func mustRatFromFloat(x float64) Rat {
	r, err := RatFromFloat(x, nil)
	if err != nil {
		panic(err)
	}
	return r
}

// AngleOfPi builds the angle (num/den)*pi. The multiplication by the
// rational pi approximation is exact; the only inaccuracy is pi itself,
// bounded by the float64 it was derived from.
func AngleOfPi(num, den *big.Int) (Angle, error) {
	if num == nil || den == nil || den.Sign() < 1 {
		return Angle{}, ErrInvalidAngle
	}
	frac, err := NewRat(num, den)
	if err != nil {
		return Angle{}, err
	}
	return Angle{rad: frac.Mul(piRat)}, nil
}

// AngleFromFloat builds an angle from a float64 number of radians,
// approximated as a rational with the package default denominator cap.
func AngleFromFloat(radians float64) (Angle, error) {
	r, err := RatFromFloat(radians, nil)
	if err != nil {
		return Angle{}, err
	}
	return Angle{rad: r}, nil
}

// Radians returns the exact rational radian measure.
func (a Angle) Radians() Rat { return a.rad }

// IsZero reports whether the angle is exactly zero.
func (a Angle) IsZero() bool { return a.rad.IsZero() }

// Result carries the full evaluation of e^(i*theta): the raw convergents
// of e^(-i/q), the same convergents raised to the -p-th power (so each
// Final entry approximates e^(i*p/q)), and the index of the deepest
// trustworthy convergent. LimitIndex is -1 when the depth never exceeded
// the trust criterion.
type Result struct {
	Base       []Complex
	Final      []Complex
	LimitIndex int
}

// Best returns the most accurate final value: the one at the math limit
// when it was reached, otherwise the deepest one computed.
func (r Result) Best() Complex {
	if len(r.Final) == 0 {
		return One()
	}
	if r.LimitIndex >= 0 && r.LimitIndex < len(r.Final) {
		return r.Final[r.LimitIndex]
	}
	return r.Final[len(r.Final)-1]
}

// Cos returns the real part of the best final value.
func (r Result) Cos() float64 {
	re, _ := r.Best().Float64s()
	return re
}

// Sin returns the imaginary part of the best final value.
func (r Result) Sin() float64 {
	_, im := r.Best().Float64s()
	return im
}

// Tan returns sin/cos of the best final value; +/-Inf at the poles.
func (r Result) Tan() float64 {
	re, im := r.Best().Float64s()
	return im / re
}

// Expi evaluates e^(i*theta) for theta = angle using terms continued
// fraction coefficients. For angle p/q it expands e^(-i/q), so each base
// convergent is raised to the power -p to land on e^(i*p/q). terms must
// be at least 1. The zero angle short-circuits to the exact value 1.
func Expi(angle Angle, terms int) (Result, error) {
	if angle.rad.Num() == nil {
		return Result{}, ErrInvalidAngle
	}
	if terms < 1 {
		return Result{}, ErrInvalidAngle
	}
	if angle.IsZero() {
		one := []Complex{One()}
		return Result{Base: one, Final: []Complex{One()}, LimitIndex: -1}, nil
	}
	coeffs, err := Coefficients(angle.rad.Den(), terms)
	if err != nil {
		return Result{}, err
	}
	conv, err := ComputeConvergents(coeffs, angle.rad.Num())
	if err != nil {
		return Result{}, err
	}
	exp := new(big.Int).Neg(angle.rad.Num())
	final := make([]Complex, len(conv.Values))
	for i, c := range conv.Values {
		final[i] = PowStable(c, exp)
	}
	return Result{Base: conv.Values, Final: final, LimitIndex: conv.LimitIndex}, nil
}

// Cos evaluates cos(angle) using terms continued fraction coefficients.
func Cos(angle Angle, terms int) (float64, error) {
	res, err := Expi(angle, terms)
	if err != nil {
		return 0, err
	}
	return res.Cos(), nil
}

// Sin evaluates sin(angle) using terms continued fraction coefficients.
func Sin(angle Angle, terms int) (float64, error) {
	res, err := Expi(angle, terms)
	if err != nil {
		return 0, err
	}
	return res.Sin(), nil
}

// Tan evaluates tan(angle) using terms continued fraction coefficients.
func Tan(angle Angle, terms int) (float64, error) {
	res, err := Expi(angle, terms)
	if err != nil {
		return 0, err
	}
	return res.Tan(), nil
}

package trig

import (
	"fmt"
	"math"
	"math/big"
)

// Complex is a complex number whose real and imaginary parts are exact
// rationals. It represents a point in the complex plane without loss of
// precision; floats appear only through the explicitly lossy observers
// (Abs, Float64s, StringFixed). Values are immutable.
type Complex struct {
	Re, Im Rat
}

// NewComplex builds a complex value from four integer components, each
// part independently reduced. It fails with ErrDivisionByZero when either
// denominator is zero.
func NewComplex(reNum, reDen, imNum, imDen *big.Int) (Complex, error) {
	re, err := NewRat(reNum, reDen)
	if err != nil {
		return Complex{}, err
	}
	im, err := NewRat(imNum, imDen)
	if err != nil {
		return Complex{}, err
	}
	return Complex{Re: re, Im: im}, nil
}

// ComplexFromRats pairs two rationals into a complex value.
func ComplexFromRats(re, im Rat) Complex { return Complex{Re: re, Im: im} }

// ComplexFromInt64 builds a Gaussian integer as a complex value.
func ComplexFromInt64(re, im int64) Complex {
	return Complex{Re: RatFromInt64(re, 1), Im: RatFromInt64(im, 1)}
}

// Zero returns 0+0i.
func Zero() Complex { return ComplexFromInt64(0, 0) }

// One returns 1+0i.
func One() Complex { return ComplexFromInt64(1, 0) }

// I returns 0+1i.
func I() Complex { return ComplexFromInt64(0, 1) }

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{Re: z.Re.Add(w.Re), Im: z.Im.Add(w.Im)}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{Re: z.Re.Sub(w.Re), Im: z.Im.Sub(w.Im)}
}

// RawMul returns z*w exactly, without renormalizing the result. Chaining
// raw multiplications doubles the digit count of the rational components
// on every step; callers must interleave Normalize (or use NormalizedMul)
// on long products.
func (z Complex) RawMul(w Complex) Complex {
	ac := z.Re.Mul(w.Re)
	bd := z.Im.Mul(w.Im)
	ad := z.Re.Mul(w.Im)
	bc := z.Im.Mul(w.Re)
	return Complex{Re: ac.Sub(bd), Im: ad.Add(bc)}
}

// NormalizedMul returns z*w rescaled to unit magnitude. Use it when the
// product is expected to stay on the unit circle and compactness matters
// more than the residual scale error.
func (z Complex) NormalizedMul(w Complex) Complex {
	return z.RawMul(w).Normalize()
}

// Div returns z/w via conjugate multiplication, failing with
// ErrDivisionByZero when |w| is zero. The result is exact.
func (z Complex) Div(w Complex) (Complex, error) {
	magSq := w.MagSq()
	if magSq.IsZero() {
		return Complex{}, ErrDivisionByZero
	}
	num := z.RawMul(w.Conj())
	re, _ := num.Re.Div(magSq) // magSq verified nonzero above
	im, _ := num.Im.Div(magSq)
	return Complex{Re: re, Im: im}, nil
}

// Conj returns the complex conjugate.
func (z Complex) Conj() Complex { return Complex{Re: z.Re, Im: z.Im.Neg()} }

// MagSq returns |z|^2 as an exact rational.
func (z Complex) MagSq() Rat {
	return z.Re.Mul(z.Re).Add(z.Im.Mul(z.Im))
}

// Abs returns the Euclidean magnitude as a float64. This is the one
// deliberately lossy observation on a Complex; it exists for display and
// heuristic use only.
func (z Complex) Abs() float64 {
	re, im := z.Float64s()
	return math.Hypot(re, im)
}

// Float64s returns floating approximations of both parts.
func (z Complex) Float64s() (re, im float64) {
	return z.Re.Float64(), z.Im.Float64()
}

// IsZero reports whether both parts are exactly zero.
func (z Complex) IsZero() bool { return z.Re.IsZero() && z.Im.IsZero() }

// Equal reports exact equality of both parts.
func (z Complex) Equal(w Complex) bool {
	return z.Re.Equal(w.Re) && z.Im.Equal(w.Im)
}

// Normalize rescales z to unit magnitude while keeping both parts
// rational and compact. The reciprocal magnitude is approximated from the
// exact |z|^2 as Isqrt(den*10^120/num)/10^60, then each rescaled part is
// compacted through ApproxFrac so denominators stay below 10^30. This is
// what keeps repeated multiplication tractable: without it the component
// digit counts double on every product.
func (z Complex) Normalize() Complex {
	magSq := z.MagSq()
	if magSq.IsZero() {
		return Zero()
	}
	t := new(big.Int).Mul(magSq.Den(), normScaleSq)
	t.Quo(t, magSq.Num())
	s, err := Isqrt(t)
	if err != nil {
		panic(err) // magSq > 0 for a nonzero z
	}
	re := compactRat(new(big.Int).Mul(z.Re.Num(), s), new(big.Int).Mul(z.Re.Den(), normScale))
	im := compactRat(new(big.Int).Mul(z.Im.Num(), s), new(big.Int).Mul(z.Im.Den(), normScale))
	return Complex{Re: re, Im: im}
}

// compactRat reduces num/den through the bounded-denominator
// approximation with the package default cap.
func compactRat(num, den *big.Int) Rat {
	r, err := ApproxFrac(num, den, defaultMaxDen)
	if err != nil {
		panic(err) // den > 0 by construction
	}
	return r
}

// StringFixed renders z as "<re>±<|im|>i" with the given number of
// fixed-point digits.
func (z Complex) StringFixed(digits int) string {
	if digits < 0 {
		digits = 0
	}
	re, im := z.Float64s()
	sign := "+"
	if math.Signbit(im) {
		sign = "-"
	}
	return fmt.Sprintf("%.*f%s%.*fi", digits, re, sign, digits, math.Abs(im))
}

// String renders the exact rational parts, mostly for debugging.
func (z Complex) String() string {
	if z.Im.Sign() < 0 {
		return z.Re.String() + " - " + z.Im.Neg().String() + "i"
	}
	return z.Re.String() + " + " + z.Im.String() + "i"
}

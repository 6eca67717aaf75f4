package trig

import (
	"math"
	"math/big"

	"fortio.org/safecast"
)

// Rat is an exact rational number over arbitrary-precision integers.
// Invariants: the denominator is positive and coprime with the numerator
// after every normalizing operation; zero is canonically 0/1. Values are
// immutable: operations return new instances and never mutate operands.
// The zero value of the struct is not usable; use NewRat or RatFromInt64.
type Rat struct {
	num, den *big.Int
}

// Shared integer constants. Never mutated.
var (
	intOne = big.NewInt(1)
	intTwo = big.NewInt(2)
)

// Bounds for the two deliberately lossy conversions.
var (
	// fromFloatScale is the decimal scaling applied to a float64 before
	// the bounded approximation (15 digits, the useful precision of a
	// float64 mantissa).
	fromFloatScale = pow10(15)

	// defaultMaxDen caps denominators produced by RatFromFloat and by the
	// compaction step of Complex.Normalize.
	defaultMaxDen = pow10(30)

	// normScale is the fixed-precision scale factor used when
	// approximating a reciprocal magnitude with an integer square root.
	normScale   = pow10(60)
	normScaleSq = new(big.Int).Mul(pow10(60), pow10(60))
)

func pow10(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}

// NewRat builds a reduced rational from num/den. It fails with
// ErrDivisionByZero when den is zero. The inputs are copied.
func NewRat(num, den *big.Int) (Rat, error) {
	return normalizeRat(new(big.Int).Set(num), new(big.Int).Set(den))
}

// RatFromInt64 builds a reduced rational from machine integers. It panics
// on a zero denominator; meant for literals, tables and tests.
func RatFromInt64(num, den int64) Rat {
	r, err := normalizeRat(big.NewInt(num), big.NewInt(den))
	if err != nil {
		panic(err)
	}
	return r
}

// normalizeRat reduces num/den, taking ownership of both integers.
func normalizeRat(num, den *big.Int) (Rat, error) {
	if den.Sign() == 0 {
		return Rat{}, ErrDivisionByZero
	}
	if num.Sign() == 0 {
		return Rat{num: big.NewInt(0), den: big.NewInt(1)}, nil
	}
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(intOne) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	return Rat{num: num, den: den}, nil
}

// reduce is normalizeRat for call sites that cannot produce a zero
// denominator (products and sums of positive denominators).
func reduce(num, den *big.Int) Rat {
	r, err := normalizeRat(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// Num returns the reduced numerator. The caller must not modify it.
func (r Rat) Num() *big.Int { return r.num }

// Den returns the reduced denominator, always positive. The caller must
// not modify it.
func (r Rat) Den() *big.Int { return r.den }

// Sign returns -1, 0 or +1.
func (r Rat) Sign() int { return r.num.Sign() }

// IsZero reports whether r is exactly zero.
func (r Rat) IsZero() bool { return r.num.Sign() == 0 }

// Equal reports exact equality of the reduced representations.
func (r Rat) Equal(s Rat) bool {
	return r.num.Cmp(s.num) == 0 && r.den.Cmp(s.den) == 0
}

// Cmp compares r and s exactly by cross-multiplication.
func (r Rat) Cmp(s Rat) int {
	a := new(big.Int).Mul(r.num, s.den)
	b := new(big.Int).Mul(s.num, r.den)
	return a.Cmp(b)
}

// Add returns r + s.
func (r Rat) Add(s Rat) Rat {
	num := new(big.Int).Mul(r.num, s.den)
	num.Add(num, new(big.Int).Mul(s.num, r.den))
	return reduce(num, new(big.Int).Mul(r.den, s.den))
}

// Sub returns r - s.
func (r Rat) Sub(s Rat) Rat {
	num := new(big.Int).Mul(r.num, s.den)
	num.Sub(num, new(big.Int).Mul(s.num, r.den))
	return reduce(num, new(big.Int).Mul(r.den, s.den))
}

// Mul returns r * s.
func (r Rat) Mul(s Rat) Rat {
	return reduce(new(big.Int).Mul(r.num, s.num), new(big.Int).Mul(r.den, s.den))
}

// Div returns r / s, failing with ErrDivisionByZero when s is zero.
func (r Rat) Div(s Rat) (Rat, error) {
	if s.num.Sign() == 0 {
		return Rat{}, ErrDivisionByZero
	}
	return reduce(new(big.Int).Mul(r.num, s.den), new(big.Int).Mul(r.den, s.num)), nil
}

// Neg returns -r.
func (r Rat) Neg() Rat {
	return Rat{num: new(big.Int).Neg(r.num), den: new(big.Int).Set(r.den)}
}

// Float64 conversion shifts operands above floatBitBudget bits down to
// floatBitTarget bits so neither part overflows to infinity on its own.
const (
	floatBitBudget = 1000
	floatBitTarget = 500
)

// Float64 returns a floating-point approximation of r. Oversized
// numerators and denominators are right-shifted by the same amount first;
// a quotient whose true magnitude exceeds the float64 range still comes
// out as the correctly signed infinity.
func (r Rat) Float64() float64 {
	num, den := r.num, r.den
	maxBits := num.BitLen()
	if d := den.BitLen(); d > maxBits {
		maxBits = d
	}
	if maxBits > floatBitBudget {
		shift, err := safecast.Conv[uint](maxBits - floatBitTarget)
		if err != nil {
			// maxBits > floatBitBudget > floatBitTarget, so the shift is
			// always positive.
			panic(err)
		}
		num = new(big.Int).Rsh(num, shift)
		den = new(big.Int).Rsh(den, shift)
	}
	nf, _ := new(big.Float).SetInt(num).Float64()
	df, _ := new(big.Float).SetInt(den).Float64()
	return nf / df
}

// RatFromFloat approximates x as a rational with denominator at most
// maxDen (nil selects the package default of 10^30). It fails with
// ErrNonFiniteInput for NaN or infinities. The conversion scales x by
// 10^15, rounds, and compacts the result through ApproxFrac.
func RatFromFloat(x float64, maxDen *big.Int) (Rat, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Rat{}, ErrNonFiniteInput
	}
	if x == 0 {
		return RatFromInt64(0, 1), nil
	}
	if maxDen == nil {
		maxDen = defaultMaxDen
	}
	scaled := new(big.Float).SetPrec(128).SetFloat64(x)
	scaled.Mul(scaled, new(big.Float).SetPrec(128).SetInt(fromFloatScale))
	half := big.NewFloat(0.5)
	if scaled.Signbit() {
		scaled.Sub(scaled, half)
	} else {
		scaled.Add(scaled, half)
	}
	num, _ := scaled.Int(nil)
	if num.Sign() == 0 {
		return RatFromInt64(0, 1), nil
	}
	return ApproxFrac(num, fromFloatScale, maxDen)
}

// ApproxFrac returns the best continued-fraction convergent of num/den
// whose denominator does not exceed maxDen, using the classical
// p2 = k*p1 + p0, q2 = k*q1 + q0 recurrence over the Euclidean quotients
// of (num, den). This is the single place the package trades exactness
// for compactness; every other rational operation is exact. A maxDen
// below one is treated as one.
func ApproxFrac(num, den, maxDen *big.Int) (Rat, error) {
	if den.Sign() == 0 {
		return Rat{}, ErrDivisionByZero
	}
	if num.Sign() == 0 {
		return RatFromInt64(0, 1), nil
	}
	if maxDen.Cmp(intOne) < 0 {
		maxDen = intOne
	}
	neg := (num.Sign() < 0) != (den.Sign() < 0)
	a := new(big.Int).Abs(num)
	b := new(big.Int).Abs(den)
	p0, p1 := big.NewInt(0), big.NewInt(1)
	q0, q1 := big.NewInt(1), big.NewInt(0)
	for b.Sign() != 0 {
		k, rem := new(big.Int).QuoRem(a, b, new(big.Int))
		p2 := new(big.Int).Mul(k, p1)
		p2.Add(p2, p0)
		q2 := new(big.Int).Mul(k, q1)
		q2.Add(q2, q0)
		if q2.Cmp(maxDen) > 0 {
			break
		}
		p0, p1 = p1, p2
		q0, q1 = q1, q2
		a, b = b, rem
	}
	if neg {
		p1 = new(big.Int).Neg(p1)
	}
	// Convergents are already coprime; reduce only canonicalizes.
	return reduce(p1, q1), nil
}

// Isqrt returns the floor of the square root of v, exactly, failing with
// ErrNegativeInput for negative v. Newton iteration y = (x + v/x)/2 from
// a seed just above 2^(bitlen/2) converges monotonically from above; the
// loop stops as soon as an iterate stops decreasing.
func Isqrt(v *big.Int) (*big.Int, error) {
	if v.Sign() < 0 {
		return nil, ErrNegativeInput
	}
	if v.Cmp(intTwo) < 0 {
		return new(big.Int).Set(v), nil
	}
	seed, err := safecast.Conv[uint](v.BitLen()/2 + 1)
	if err != nil {
		panic(err) // BitLen is nonnegative
	}
	x := new(big.Int).Lsh(intOne, seed)
	for {
		y := new(big.Int).Quo(v, x)
		y.Add(y, x)
		y.Rsh(y, 1)
		if y.Cmp(x) >= 0 {
			return x, nil
		}
		x = y
	}
}

// String renders r as "num/den", or just "num" when the denominator is 1.
func (r Rat) String() string {
	if r.den.Cmp(intOne) == 0 {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}

package trig

import "math/big"

// PowStable raises base to an integer power by binary exponentiation,
// renormalizing after every multiplication into the result and after
// every squaring. The renormalization is not optional: skipping it
// doubles the digit count of the rational components on each squaring,
// which makes the arithmetic intractable within a handful of iterations.
//
// For a negative exponent the conjugate of the positive power is
// returned; for the unit-magnitude convergents this package produces,
// conj(z^n) is z^(-n).
func PowStable(base Complex, exponent *big.Int) Complex {
	result := One()
	if exponent.Sign() == 0 {
		return result
	}
	e := new(big.Int).Abs(exponent)
	x := base
	for i, n := 0, e.BitLen(); i < n; i++ {
		if e.Bit(i) == 1 {
			result = result.RawMul(x).Normalize()
		}
		if i+1 < n {
			x = x.RawMul(x).Normalize()
		}
	}
	if exponent.Sign() < 0 {
		return result.Conj()
	}
	return result
}

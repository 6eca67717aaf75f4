package trig

import (
	"fmt"
	"math/big"
)

// Convergents is the ordered sequence of continued-fraction truncations,
// one per coefficient processed, together with the index of the last
// numerically trustworthy entry. LimitIndex is -1 when the trust
// criterion never triggered; entries beyond it are kept for display and
// debugging but cannot improve accuracy after exponentiation.
type Convergents struct {
	Values     []Complex
	LimitIndex int
}

// limitBitBudget is the bit budget of the trust criterion: once
// |q_i|^4 * |a_{i+1}|^2 exceeds 2^106 * numerator^2, the continuant has
// outgrown the rational bit budget (scaled by the angle numerator, which
// amplifies error under exponentiation) and deeper convergents stop
// improving the result.
const limitBitBudget = 106

// ComputeConvergents folds the Wallis-Euler recurrence
// p_i = a_i*p_{i-1} + p_{i-2}, q_i = a_i*q_{i-1} + q_{i-2} over the
// coefficients, seeded with p = (0, 1), q = (1, 0), and produces the
// convergent p_i/q_i at every depth. The continuants are built with
// RawMul only: they must stay exact, and coefficient sequences are short
// enough that growth is not a concern here.
func ComputeConvergents(coeffs []Complex, numerator *big.Int) (Convergents, error) {
	out := Convergents{Values: make([]Complex, 0, len(coeffs)), LimitIndex: -1}
	if len(coeffs) == 0 {
		return out, nil
	}
	limit := new(big.Int).Mul(numerator, numerator)
	limit.Lsh(limit, limitBitBudget)

	pPrev2, pPrev := Zero(), One()
	qPrev2, qPrev := One(), Zero()
	for i, a := range coeffs {
		p := a.RawMul(pPrev).Add(pPrev2)
		q := a.RawMul(qPrev).Add(qPrev2)
		conv, err := p.Div(q)
		if err != nil {
			return Convergents{}, fmt.Errorf("convergent %d: %w", i, err)
		}
		out.Values = append(out.Values, conv)
		// The criterion needs the next coefficient, so the last convergent
		// never records a limit on its own.
		if out.LimitIndex < 0 && i+1 < len(coeffs) && beyondTrust(q, coeffs[i+1], limit) {
			out.LimitIndex = i
		}
		pPrev2, pPrev = pPrev, p
		qPrev2, qPrev = qPrev, q
	}
	return out, nil
}

// beyondTrust reports |q|^4 * |next|^2 > limit, compared exactly by
// cross-multiplication so no floating division is involved.
func beyondTrust(q, next Complex, limit *big.Int) bool {
	mq := q.MagSq()
	prod := mq.Mul(mq).Mul(next.MagSq())
	rhs := new(big.Int).Mul(limit, prod.Den())
	return prod.Num().Cmp(rhs) > 0
}

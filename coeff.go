package trig

import (
	"math/big"
	"strconv"
	"sync"
)

// Coefficients returns the first count partial quotients a_0..a_{count-1}
// of the continued fraction expansion of e^(-i/q). Every coefficient is
// an exact Gaussian integer (both denominators 1): a_0 = 1, odd indices
// contribute i*c*q with alternating sign, even indices >= 2 contribute
// +/-2. Results are memoized per (q, count) and returned as fresh slices.
//
// q must be a positive integer; anything else fails with ErrInvalidAngle.
func Coefficients(q *big.Int, count int) ([]Complex, error) {
	if q == nil || q.Sign() < 1 {
		return nil, ErrInvalidAngle
	}
	if count < 0 {
		return nil, ErrInvalidAngle
	}
	if count == 0 {
		return nil, nil
	}
	if seq, ok := coeffCache.get(q, count); ok {
		return seq, nil
	}
	seq := make([]Complex, count)
	for c := range seq {
		seq[c] = coefficientAt(q, c)
	}
	coeffCache.put(q, count, seq)
	return seq, nil
}

func coefficientAt(q *big.Int, c int) Complex {
	switch {
	case c == 0:
		return One()
	case c%2 == 1:
		// a_c = i * c * q * (-1)^((c-1)/2)
		v := new(big.Int).Mul(big.NewInt(int64(c)), q)
		if ((c-1)/2)%2 == 1 {
			v.Neg(v)
		}
		return ComplexFromRats(RatFromInt64(0, 1), reduce(v, big.NewInt(1)))
	default:
		// a_c = 2 * (-1)^(c/2)
		if (c/2)%2 == 1 {
			return ComplexFromInt64(-2, 0)
		}
		return ComplexFromInt64(2, 0)
	}
}

// Coefficient sequences are pure derived data; the cache only avoids
// regenerating them when the same angle denominator is evaluated
// repeatedly (successive frames, sweeps). Reads and writes copy, so the
// cached slices are never aliased by callers.
type coeffMemo struct {
	mu   sync.RWMutex
	seqs map[string][]Complex
}

var coeffCache = &coeffMemo{seqs: make(map[string][]Complex)}

func memoKey(q *big.Int, count int) string {
	return q.String() + "#" + strconv.Itoa(count)
}

func (m *coeffMemo) get(q *big.Int, count int) ([]Complex, bool) {
	m.mu.RLock()
	seq, ok := m.seqs[memoKey(q, count)]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	out := make([]Complex, len(seq))
	copy(out, seq)
	return out, true
}

func (m *coeffMemo) put(q *big.Int, count int, seq []Complex) {
	stored := make([]Complex, len(seq))
	copy(stored, seq)
	m.mu.Lock()
	m.seqs[memoKey(q, count)] = stored
	m.mu.Unlock()
}

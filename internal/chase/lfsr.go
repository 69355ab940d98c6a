package chase

import "fmt"

// lfsrFallbackSeed replaces a zero seed. A Galois LFSR with an all-zero
// register never leaves it, so zero must not be a reachable starting state.
const lfsrFallbackSeed = 0xACE1

// lfsrTaps is the feedback mask for the 16-bit register (x^16+x^14+x^13+x^11+1),
// giving the full 65535-value period.
const lfsrTaps = 0xB400

// LFSR is a 16-bit linear-feedback shift register. It is the sole source of
// randomness in a round: deterministic for a given seed, bit-exact across
// platforms, and deliberately not safe for concurrent use because a round is
// single-threaded by contract.
type LFSR struct {
	s uint16
}

// NewLFSR creates a generator from a seed. A seed of 0 is remapped to a fixed
// non-zero default.
func NewLFSR(seed uint16) *LFSR {
	if seed == 0 {
		seed = lfsrFallbackSeed
	}
	return &LFSR{s: seed}
}

// Next shifts the register once and returns the new value.
func (l *LFSR) Next() uint16 {
	lsb := l.s & 1
	l.s >>= 1
	if lsb != 0 {
		l.s ^= lfsrTaps
	}
	return l.s
}

// Range returns a value in [lo, hi], both inclusive.
// Panics if hi < lo: that is a caller bug, not a data error.
func (l *LFSR) Range(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("chase: LFSR.Range called with hi %d < lo %d", hi, lo))
	}
	span := uint16(hi - lo + 1)
	return lo + int(l.Next()%span)
}

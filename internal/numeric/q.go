// Package numeric implements the quantized number domain used for
// concentrations and volumes throughout fluido: a fixed-step integer with
// ε = 1e-4, chosen over an exact-fraction representation so equality
// saturation sees a finite, hashable equivalence instead of floating-point
// noise (spec §4.1, original_source fluido-types/src/number.rs LimitedFloat).
package numeric

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Epsilon is the quantization step. Two floats that round to the same
// Wrapped value are, by construction, the same Q.
const Epsilon = 1e-4

// invEpsilon is 1/Epsilon, used for both the valid() bound and Float().
const invEpsilon = 1.0 / Epsilon

// Q is a quantized rational: semantically w*Epsilon. Q is comparable and
// hashable (it is a plain struct of one int64), so it can be used directly
// as a map key or compared with ==, which e-graph hash-consing relies on.
type Q struct {
	Wrapped int64
}

// FromFloat quantizes x to the nearest representable Q.
func FromFloat(x float64) Q {
	return Q{Wrapped: int64(math.Round(x / Epsilon))}
}

// Float recovers the float64 value of q, truncated back to epsilon
// resolution the same way the original LimitedFloat::from<f64> does.
func (q Q) Float() float64 {
	epsilonCorrected := float64(q.Wrapped) * Epsilon
	return math.Trunc(epsilonCorrected*invEpsilon) / invEpsilon
}

// Valid reports whether q is a legal concentration (0 <= q <= 1/epsilon).
// Volumes use ValidVolume instead since they must be strictly positive.
func (q Q) Valid() bool {
	return q.Wrapped >= 0 && float64(q.Wrapped) <= invEpsilon
}

// ValidVolume reports whether q is usable as a fluid volume (v > 0).
func (q Q) ValidVolume() bool {
	return q.Wrapped > 0
}

func (q Q) Add(o Q) Q { return Q{Wrapped: q.Wrapped + o.Wrapped} }
func (q Q) Sub(o Q) Q { return Q{Wrapped: q.Wrapped - o.Wrapped} }

// Mul and Div are not exact in this representation: the original source
// routes them through floating point and re-quantizes, which is what makes
// halving a volume or computing a volume-weighted mean a single rounding
// step instead of an unbounded-precision fraction.
func (q Q) Mul(o Q) Q { return FromFloat(q.Float() * o.Float()) }
func (q Q) Div(o Q) Q { return FromFloat(q.Float() / o.Float()) }

// Equal is plain struct equality; kept as a named method so call sites read
// intent-first next to Add/Sub/Mul/Div.
func (q Q) Equal(o Q) bool { return q.Wrapped == o.Wrapped }

// ParseQ parses either a signed decimal literal or an "a/b" fraction, per
// the surface grammar's NUM production (spec §6).
func ParseQ(s string) (Q, error) {
	s = strings.TrimSpace(s)
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return Q{}, fmt.Errorf("invalid fraction numerator %q: %w", num, err)
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil {
			return Q{}, fmt.Errorf("invalid fraction denominator %q: %w", den, err)
		}
		if d == 0 {
			return Q{}, fmt.Errorf("fraction %q has zero denominator", s)
		}
		return FromFloat(n / d), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Q{}, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return FromFloat(f), nil
}

// String renders q as a decimal literal using Go's shortest round-trip
// formatting of the recovered float, matching the textual style fluid
// expressions are printed in (spec §6 NUM production).
func (q Q) String() string {
	return strconv.FormatFloat(q.Float(), 'g', -1, 64)
}

// Package fluid holds the Fluid value type and the surface expression tree
// (spec §3: Fluid F = (concentration, volume); Expr = Fluid | Mix | Num).
// This mirrors original_source fluido-types/src/fluid.rs and expr.rs.
package fluid

import (
	"fmt"

	"fluido/internal/numeric"
)

// Fluid is immutable once created: concentration and volume are set at
// construction and never mutated in place, matching the original Rust type
// (which has no &mut self methods at all).
type Fluid struct {
	Concentration numeric.Q
	Volume        numeric.Q
}

// New constructs a Fluid. Volume is assumed non-zero by the caller, per the
// original's documented contract; nothing downstream checks a zero volume
// except ValidVolume at the point it matters (rewrite guards).
func New(concentration, volume numeric.Q) Fluid {
	return Fluid{Concentration: concentration, Volume: volume}
}

// Mix combines two fluids into the volume-weighted blend (spec §3):
// v_c = v_a + v_b, c_c = (c_a*v_a + c_b*v_b) / v_c. Mixing is commutative in
// concentration but not associative under quantization, since each
// multiply/divide re-quantizes to the nearest Q.
func (f Fluid) Mix(other Fluid) Fluid {
	resultingVolume := f.Volume.Add(other.Volume)
	selfWeighted := f.Concentration.Mul(f.Volume)
	otherWeighted := other.Concentration.Mul(other.Volume)
	resultingConcentration := selfWeighted.Add(otherWeighted).Div(resultingVolume)
	return New(resultingConcentration, resultingVolume)
}

// String renders the canonical `(fluid c v)` surface form (spec §6).
func (f Fluid) String() string {
	return fmt.Sprintf("(fluid %s %s)", f.Concentration, f.Volume)
}

// Equal compares two fluids structurally; the e-graph analysis uses it to
// compare folded Fluid data when merging e-classes.
func (f Fluid) Equal(o Fluid) bool {
	return f.Concentration.Equal(o.Concentration) && f.Volume.Equal(o.Volume)
}

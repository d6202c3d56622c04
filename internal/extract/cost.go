// Package extract implements cost-directed extraction from a saturated
// e-graph (spec §4.6) and the volume-normalization pass that follows it
// (spec §4.7). Grounded on original_source/fluido-generation/src/lib.rs's
// CostFunction impl and extractor usage; no extraction helper exists in the
// reference corpus, so this is a hand-written bottom-up dynamic program, the
// natural Go shape for a single-pass tree-cost minimization.
package extract

import (
	"math"

	"fluido/internal/egraph"
	"fluido/internal/numeric"
)

// costArith is the flat penalty on Add/Sub/Div/Mult enodes: heavy enough
// that the extractor only ever prefers them when no fluid/mix alternative
// exists for a class, per spec §4.6.
const costArith = 100.0

// costMix is the per-mix-node cost: mixing is the one "real" operation we
// want the extractor to actually pay for and count.
const costMix = 1.0

// costNonNumericFluid penalizes a Fluid enode whose children aren't both
// settled Numbers — such a node can't be a usable leaf.
const costNonNumericFluid = 1000.0

// Stock is the set of concentrations physically available as source fluids
// (spec §2 "Stock / input space").
type Stock []numeric.Q

func (s Stock) contains(c numeric.Q) bool {
	for _, v := range s {
		if v.Equal(c) {
			return true
		}
	}
	return false
}

// proximity(c, stock) = min over s in stock of |c - s|, capped at 1 (spec
// §4.6).
func (s Stock) proximity(c numeric.Q) float64 {
	best := math.Inf(1)
	for _, v := range s {
		d := math.Abs(c.Float() - v.Float())
		if d < best {
			best = d
		}
	}
	if best > 1 {
		best = 1
	}
	return best
}

// CostFn evaluates the cost of a single enode, given the already-settled
// costs of its children's chosen representatives (spec §4.6's table).
type CostFn struct {
	Stock  Stock
	Target numeric.Q
}

// nodeCost returns the enode's own cost contribution, excluding children.
// For a Fluid enode it reads the AnalysisData of the children classes from
// eg, to tell a numeric Fluid leaf from a non-numeric one.
func (cf CostFn) nodeCost(eg *egraph.EGraph, node egraph.ENode) float64 {
	switch node.Op {
	case egraph.OpNumber:
		return 0
	case egraph.OpAdd, egraph.OpSub, egraph.OpDiv, egraph.OpMult:
		return costArith
	case egraph.OpMix:
		return costMix
	case egraph.OpFluid:
		cClass := eg.Class(node.Children[0])
		vClass := eg.Class(node.Children[1])
		if cClass == nil || vClass == nil || cClass.Data.Kind != egraph.AnalysisNumber || vClass.Data.Kind != egraph.AnalysisNumber {
			return costNonNumericFluid
		}
		c := cClass.Data.Number
		if cf.Stock.contains(c) {
			return 0
		}
		if c.Equal(cf.Target) {
			return math.Inf(1)
		}
		return cf.Stock.proximity(c)
	default:
		return math.Inf(1)
	}
}

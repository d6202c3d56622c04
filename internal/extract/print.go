package extract

import (
	"fmt"

	"fluido/internal/egraph"
	"fluido/internal/fluid"
)

// String renders t in the canonical `(mix ...)` / `(fluid c v)` surface
// form (spec §6), assuming t has already been normalized and so every Fluid
// leaf's children are plain Number nodes.
func (t Tree) String() string {
	switch t.Op {
	case egraph.OpNumber:
		return t.Value.String()
	case egraph.OpFluid:
		return fmt.Sprintf("(fluid %s %s)", t.Children[0].Value, t.Children[1].Value)
	case egraph.OpMix:
		return fmt.Sprintf("(mix %s %s)", t.Children[0], t.Children[1])
	default:
		return fmt.Sprintf("(%s %s %s)", t.Op, t.Children[0], t.Children[1])
	}
}

// ToExpr converts an extracted, normalized Tree into a fluid.Expr for
// evaluation or IR lowering. It requires t to contain only Fluid/Mix nodes
// with numeric Fluid children — exactly the shape a successful extraction
// under the spec §4.6 cost function guarantees.
func ToExpr(t Tree) (fluid.Expr, error) {
	switch t.Op {
	case egraph.OpFluid:
		if len(t.Children) != 2 || t.Children[0].Op != egraph.OpNumber || t.Children[1].Op != egraph.OpNumber {
			return nil, fmt.Errorf("extract: fluid leaf has non-numeric children: %s", t)
		}
		return fluid.FluidExpr{Fluid: fluid.New(t.Children[0].Value, t.Children[1].Value)}, nil
	case egraph.OpMix:
		left, err := ToExpr(t.Children[0])
		if err != nil {
			return nil, err
		}
		right, err := ToExpr(t.Children[1])
		if err != nil {
			return nil, err
		}
		return fluid.MixExpr{Left: left, Right: right}, nil
	default:
		return nil, fmt.Errorf("extract: unexpected node %s at mixer tree position", t.Op)
	}
}

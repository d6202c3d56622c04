package fluid

import (
	"fmt"

	"fluido/internal/numeric"
)

// Expr is the discriminated union of spec §3: a leaf fluid, a binary mix of
// two sub-expressions, or a bare numeric literal (the latter only appears
// as a fluid-constructor child, never as a standalone tree root in the
// surface grammar).
type Expr interface {
	isExpr()
	String() string
}

// FluidExpr is a leaf literal fluid.
type FluidExpr struct {
	Fluid Fluid
}

// MixExpr is a binary mix of two sub-expressions.
type MixExpr struct {
	Left, Right Expr
}

// NumExpr is a bare numeric literal.
type NumExpr struct {
	Value numeric.Q
}

func (FluidExpr) isExpr() {}
func (MixExpr) isExpr()   {}
func (NumExpr) isExpr()   {}

func (e FluidExpr) String() string { return e.Fluid.String() }
func (e MixExpr) String() string   { return fmt.Sprintf("(mix %s %s)", e.Left, e.Right) }
func (e NumExpr) String() string   { return e.Value.String() }

// Eval collapses an Expr tree of Fluid/Mix nodes (no bare Num nodes) down to
// the single Fluid it denotes, applying Fluid.Mix bottom-up. It panics on a
// NumExpr since a fully-formed mixer tree never has a bare number as an
// internal or root node — that would indicate an internal bug in the
// extractor or lowering step.
func Eval(e Expr) Fluid {
	switch v := e.(type) {
	case FluidExpr:
		return v.Fluid
	case MixExpr:
		return Eval(v.Left).Mix(Eval(v.Right))
	default:
		panic(fmt.Sprintf("fluid.Eval: unexpected bare numeric node %v in mixer tree", e))
	}
}

// Package satur implements the frozen rewrite-rule set and the
// time/iteration/node-bounded saturation driver of spec §4.4/§4.5.
package satur

import (
	"fluido/internal/egraph"
	"fluido/internal/numeric"
)

// Rule is one entry of the frozen rewrite set (spec §4.4). Guard, when
// non-nil, is evaluated against the match's bindings and must hold for the
// match to be applied; it reads analysis data off the bound variables'
// e-classes, never mutates the graph.
type Rule struct {
	Name  string
	LHS   egraph.Pattern
	RHS   egraph.Pattern
	Guard func(eg *egraph.EGraph, env egraph.Bindings) bool
}

func q(f float64) numeric.Q { return numeric.FromFloat(f) }

func numberOf(eg *egraph.EGraph, env egraph.Bindings, v string) (numeric.Q, bool) {
	class := eg.Class(env[v])
	if class == nil || class.Data.Kind != egraph.AnalysisNumber {
		return numeric.Q{}, false
	}
	return class.Data.Number, true
}

// Rules returns the five fixed rewrite rules of spec §4.4, in the order
// they're listed there.
func Rules() []Rule {
	a, b, c, d := egraph.Var("a"), egraph.Var("b"), egraph.Var("c"), egraph.Var("d")

	return []Rule{
		{
			// expand-fluid-to-mix: (fluid ?a ?b) -> (mix (fluid ?a (/ ?b 2)) (fluid ?a (/ ?b 2)))
			Name: "expand-fluid-to-mix",
			LHS:  egraph.Node(egraph.OpFluid, a, b),
			RHS: egraph.Node(egraph.OpMix,
				egraph.Node(egraph.OpFluid, a, egraph.Node(egraph.OpDiv, b, egraph.Const(q(2)))),
				egraph.Node(egraph.OpFluid, a, egraph.Node(egraph.OpDiv, b, egraph.Const(q(2)))),
			),
			Guard: func(eg *egraph.EGraph, env egraph.Bindings) bool {
				vol, ok := numberOf(eg, env, "b")
				if !ok {
					return false
				}
				half := vol.Div(q(2))
				return half.ValidVolume()
			},
		},
		{
			// diff-mixers-0.01: (mix (fluid ?a ?b) (fluid ?c ?b)) ->
			//   (mix (fluid (+ ?a 0.01) ?b) (fluid (- ?c 0.01) ?b))
			Name: "diff-mixers-0.01",
			LHS: egraph.Node(egraph.OpMix,
				egraph.Node(egraph.OpFluid, a, b),
				egraph.Node(egraph.OpFluid, c, b),
			),
			RHS: egraph.Node(egraph.OpMix,
				egraph.Node(egraph.OpFluid, egraph.Node(egraph.OpAdd, a, egraph.Const(q(0.01))), b),
				egraph.Node(egraph.OpFluid, egraph.Node(egraph.OpSub, c, egraph.Const(q(0.01))), b),
			),
			Guard: diffMixersGuard(0.01),
		},
		{
			// diff-mixers-0.1: same shape with step 0.1.
			Name: "diff-mixers-0.1",
			LHS: egraph.Node(egraph.OpMix,
				egraph.Node(egraph.OpFluid, a, b),
				egraph.Node(egraph.OpFluid, c, b),
			),
			RHS: egraph.Node(egraph.OpMix,
				egraph.Node(egraph.OpFluid, egraph.Node(egraph.OpAdd, a, egraph.Const(q(0.1))), b),
				egraph.Node(egraph.OpFluid, egraph.Node(egraph.OpSub, c, egraph.Const(q(0.1))), b),
			),
			Guard: diffMixersGuard(0.1),
		},
		{
			// mixer-assoc: commutativity of binary mix.
			Name: "mixer-assoc",
			LHS: egraph.Node(egraph.OpMix,
				egraph.Node(egraph.OpFluid, a, b),
				egraph.Node(egraph.OpFluid, c, d),
			),
			RHS: egraph.Node(egraph.OpMix,
				egraph.Node(egraph.OpFluid, c, d),
				egraph.Node(egraph.OpFluid, a, b),
			),
		},
		{
			// mixer-compress-with-zero:
			// (mix (mix (fluid ?a ?b) (fluid 0 ?b)) (fluid 0 ?c)) ->
			//   (mix (fluid ?a (/ ?b 2)) (fluid 0 (* 3 (/ ?b 2))))
			// guarded by ?b = 0.5*?c.
			Name: "mixer-compress-with-zero",
			LHS: egraph.Node(egraph.OpMix,
				egraph.Node(egraph.OpMix,
					egraph.Node(egraph.OpFluid, a, b),
					egraph.Node(egraph.OpFluid, egraph.Const(q(0)), b),
				),
				egraph.Node(egraph.OpFluid, egraph.Const(q(0)), c),
			),
			RHS: egraph.Node(egraph.OpMix,
				egraph.Node(egraph.OpFluid, a, egraph.Node(egraph.OpDiv, b, egraph.Const(q(2)))),
				egraph.Node(egraph.OpFluid, egraph.Const(q(0)), egraph.Node(egraph.OpMult, egraph.Const(q(3)), egraph.Node(egraph.OpDiv, b, egraph.Const(q(2))))),
			),
			Guard: func(eg *egraph.EGraph, env egraph.Bindings) bool {
				bVal, ok1 := numberOf(eg, env, "b")
				cVal, ok2 := numberOf(eg, env, "c")
				if !ok1 || !ok2 {
					return false
				}
				return bVal.Equal(cVal.Mul(q(0.5)))
			},
		},
	}
}

// diffMixersGuard builds the shared guard for diff-mixers-0.01/0.1: both
// resulting concentrations (?a+step, ?c-step) must be valid concentrations.
func diffMixersGuard(step float64) func(eg *egraph.EGraph, env egraph.Bindings) bool {
	return func(eg *egraph.EGraph, env egraph.Bindings) bool {
		aVal, ok1 := numberOf(eg, env, "a")
		cVal, ok2 := numberOf(eg, env, "c")
		if !ok1 || !ok2 {
			return false
		}
		return aVal.Add(q(step)).Valid() && cVal.Sub(q(step)).Valid()
	}
}

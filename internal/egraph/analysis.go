package egraph

import (
	"fmt"

	"fluido/internal/fluid"
	"fluido/internal/numeric"
)

// AnalysisKind tags which variant of the per-e-class analysis datum
// (spec §3) is populated. Modeled as a fixed tagged variant rather than an
// interface, per Design Notes §9 ("the three cases are fixed").
type AnalysisKind int

const (
	AnalysisNone AnalysisKind = iota
	AnalysisNumber
	AnalysisFluid
)

// AnalysisData is the bottom-up-computed payload attached to every
// e-class: either a folded Number, a folded Fluid, or bottom (⊥).
type AnalysisData struct {
	Kind   AnalysisKind
	Number numeric.Q
	Fluid  fluid.Fluid
}

func (d AnalysisData) equal(o AnalysisData) bool {
	if d.Kind != o.Kind {
		return false
	}
	switch d.Kind {
	case AnalysisNumber:
		return d.Number.Equal(o.Number)
	case AnalysisFluid:
		return d.Fluid.Equal(o.Fluid)
	default:
		return true
	}
}

// analysis implements the make/merge/modify triple of spec §3/§4.3. It is
// not user-pluggable in this implementation (the rule set and domain are
// fixed), but is kept as its own type — rather than inlined into EGraph —
// so the three callbacks stay next to each other and documented as a unit,
// matching how the engine's contract describes them.
type analysis struct{}

// make computes an e-class's analysis datum from a single enode, reading
// already-settled children data (spec §3 "Computed bottom-up").
func (analysis) make(eg *EGraph, node ENode) AnalysisData {
	switch node.Op {
	case OpNumber:
		return AnalysisData{Kind: AnalysisNumber, Number: node.Value}
	case OpFluid:
		c := eg.dataOf(node.Children[0])
		v := eg.dataOf(node.Children[1])
		if c.Kind == AnalysisNumber && v.Kind == AnalysisNumber {
			return AnalysisData{Kind: AnalysisFluid, Fluid: fluid.New(c.Number, v.Number)}
		}
		return AnalysisData{}
	case OpMix:
		a := eg.dataOf(node.Children[0])
		b := eg.dataOf(node.Children[1])
		if a.Kind == AnalysisFluid && b.Kind == AnalysisFluid {
			return AnalysisData{Kind: AnalysisFluid, Fluid: a.Fluid.Mix(b.Fluid)}
		}
		return AnalysisData{}
	case OpAdd, OpSub, OpDiv, OpMult:
		a := eg.dataOf(node.Children[0])
		b := eg.dataOf(node.Children[1])
		if a.Kind != AnalysisNumber || b.Kind != AnalysisNumber {
			return AnalysisData{}
		}
		var res numeric.Q
		switch node.Op {
		case OpAdd:
			res = a.Number.Add(b.Number)
		case OpSub:
			res = a.Number.Sub(b.Number)
		case OpDiv:
			res = a.Number.Div(b.Number)
		case OpMult:
			res = a.Number.Mul(b.Number)
		}
		return AnalysisData{Kind: AnalysisNumber, Number: res}
	default:
		return AnalysisData{}
	}
}

// merge combines an e-class's existing analysis datum with a freshly-made
// one: equal data is a no-op, bottom yields to concrete, and two unequal
// concrete data is a fatal invariant violation (a buggy rule or
// unsoundness — spec §3). It reports whether *to changed.
func (analysis) merge(to *AnalysisData, from AnalysisData) bool {
	if from.Kind == AnalysisNone {
		return false
	}
	if to.Kind == AnalysisNone {
		*to = from
		return true
	}
	if to.equal(from) {
		return false
	}
	panic(fmt.Sprintf("egraph: merged non-equal analysis data: %+v vs %+v", *to, from))
}

// modify is the propagating half of the analysis (spec §3): once a class
// acquires Fluid(F) data, it injects canonical Number(c), Number(v), and
// Fluid(nc,nv) nodes and unions them into the class, so later rewrites can
// pattern-match on the reified constants. Called only from EGraph.Rebuild's
// deferred work list, never while iterating classes, per Design Notes §9.
func (analysis) modify(eg *EGraph, id ClassID) {
	data := eg.dataOf(id)
	if data.Kind != AnalysisFluid {
		return
	}
	cClass := eg.Add(NumberNode(data.Fluid.Concentration))
	vClass := eg.Add(NumberNode(data.Fluid.Volume))
	fClass := eg.Add(FluidNode(cClass, vClass))
	eg.union(id, fClass)
}

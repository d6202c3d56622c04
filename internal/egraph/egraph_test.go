package egraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluido/internal/numeric"
)

func q(f float64) numeric.Q { return numeric.FromFloat(f) }

func TestAdd_HashConsesIdenticalNodes(t *testing.T) {
	eg := New()
	a := eg.Add(NumberNode(q(1)))
	b := eg.Add(NumberNode(q(1)))
	assert.Equal(t, a, b)
}

func TestAnalysis_FoldsArithmetic(t *testing.T) {
	eg := New()
	a := eg.Add(NumberNode(q(1)))
	b := eg.Add(NumberNode(q(2)))
	sum := eg.Add(AddNode(a, b))
	eg.Rebuild()

	data := eg.Class(sum).Data
	require.Equal(t, AnalysisNumber, data.Kind)
	assert.InDelta(t, 3.0, data.Number.Float(), numeric.Epsilon)
}

func TestAnalysis_FoldsFluidAndMix(t *testing.T) {
	eg := New()
	fluidA := eg.AddExpr(FluidTree(NumberTree(q(0.1)), NumberTree(q(1))))
	fluidB := eg.AddExpr(FluidTree(NumberTree(q(0.2)), NumberTree(q(1))))
	mixed := eg.Add(MixNode(fluidA, fluidB))
	eg.Rebuild()

	data := eg.Class(mixed).Data
	require.Equal(t, AnalysisFluid, data.Kind)
	assert.InDelta(t, 0.15, data.Fluid.Concentration.Float(), numeric.Epsilon)
}

// Merging two classes that both carry unequal Number data is an invariant
// violation (spec §8).
func TestUnion_ConflictingNumbersPanics(t *testing.T) {
	eg := New()
	a := eg.Add(NumberNode(q(1)))
	b := eg.Add(NumberNode(q(2)))
	eg.Rebuild()
	assert.Panics(t, func() { eg.Union(a, b) })
}

// The modify hook must be idempotent across repeated rebuilds: once a class
// has acquired Fluid data and been reified once, rebuilding again must not
// change its analysis datum.
func TestModifyHook_IdempotentAcrossRebuilds(t *testing.T) {
	eg := New()
	fluidA := eg.AddExpr(FluidTree(NumberTree(q(0.1)), NumberTree(q(1))))
	eg.Rebuild()
	before := eg.Class(fluidA).Data

	eg.Rebuild()
	after := eg.Class(eg.Find(fluidA)).Data
	assert.True(t, before.equal(after))
}

func TestMatch_VarBindsConsistently(t *testing.T) {
	eg := New()
	a := eg.Add(NumberNode(q(1)))
	node := eg.Add(AddNode(a, a))
	eg.Rebuild()

	pattern := Node(OpAdd, Var("x"), Var("x"))
	matches := Match(eg, node, pattern, Bindings{})
	require.Len(t, matches, 1)
	assert.Equal(t, eg.Find(a), matches[0]["x"])
}

func TestMatch_VarMismatchFails(t *testing.T) {
	eg := New()
	a := eg.Add(NumberNode(q(1)))
	b := eg.Add(NumberNode(q(2)))
	node := eg.Add(AddNode(a, b))
	eg.Rebuild()

	pattern := Node(OpAdd, Var("x"), Var("x"))
	matches := Match(eg, node, pattern, Bindings{})
	assert.Empty(t, matches)
}

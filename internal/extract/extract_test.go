package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluido/internal/egraph"
	"fluido/internal/numeric"
)

func q(f float64) numeric.Q { return numeric.FromFloat(f) }

// A stock concentration is extracted as a zero-cost leaf, never via mix.
func TestExtract_StockHitIsFreeLeaf(t *testing.T) {
	eg := egraph.New()
	root := eg.AddExpr(egraph.FluidTree(egraph.NumberTree(q(0.1)), egraph.NumberTree(q(1))))
	eg.Rebuild()

	cf := CostFn{Stock: Stock{q(0.1), q(0.2)}, Target: q(0.1)}
	tree, cost, ok := New(eg, cf).Extract(root)
	require.True(t, ok)
	assert.Equal(t, 0.0, cost)
	assert.Equal(t, "(fluid 0.1 1)", tree.String())
}

// The target concentration can never be chosen as a leaf unless it's also
// in stock (spec §4.6).
func TestExtract_TargetNotInStockForbiddenAsLeaf(t *testing.T) {
	eg := egraph.New()
	root := eg.AddExpr(egraph.FluidTree(egraph.NumberTree(q(0.15)), egraph.NumberTree(q(1))))
	eg.Rebuild()

	cf := CostFn{Stock: Stock{q(0.1), q(0.2)}, Target: q(0.15)}
	_, _, ok := New(eg, cf).Extract(root)
	assert.False(t, ok, "target-not-in-stock leaf must be unextractable on its own")
}

// Normalize expresses every leaf volume as a ratio to the tree's minimum.
func TestNormalize_ScalesToMinimumVolume(t *testing.T) {
	tree := Tree{
		Op: egraph.OpMix,
		Children: []Tree{
			{Op: egraph.OpFluid, Children: []Tree{{Op: egraph.OpNumber, Value: q(0.1)}, {Op: egraph.OpNumber, Value: q(2)}}},
			{Op: egraph.OpFluid, Children: []Tree{{Op: egraph.OpNumber, Value: q(0.2)}, {Op: egraph.OpNumber, Value: q(1)}}},
		},
	}
	norm := Normalize(tree)
	assert.Equal(t, "(mix (fluid 0.1 2) (fluid 0.2 1))", norm.String())
}

func TestStockProximity_CappedAtOne(t *testing.T) {
	s := Stock{q(0)}
	assert.InDelta(t, 1.0, s.proximity(q(5)), numeric.Epsilon)
}

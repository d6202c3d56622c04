package fluid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fluido/internal/numeric"
)

func q(f float64) numeric.Q { return numeric.FromFloat(f) }

func TestMix_CommutativeInConcentration(t *testing.T) {
	a := New(q(0.1), q(1))
	b := New(q(0.2), q(1))
	assert.True(t, a.Mix(b).Concentration.Equal(b.Mix(a).Concentration))
}

func TestMix_ConservesVolume(t *testing.T) {
	a := New(q(0.1), q(1))
	b := New(q(0.2), q(2))
	mixed := a.Mix(b)
	assert.True(t, mixed.Volume.Equal(a.Volume.Add(b.Volume)))
}

func TestMix_EqualVolumesAverages(t *testing.T) {
	a := New(q(0.1), q(1))
	b := New(q(0.2), q(1))
	assert.InDelta(t, 0.15, a.Mix(b).Concentration.Float(), numeric.Epsilon)
}

func TestMix_WeightedByVolume(t *testing.T) {
	a := New(q(0.1), q(1))
	b := New(q(0.2), q(2))
	assert.InDelta(t, 0.1667, a.Mix(b).Concentration.Float(), 1e-3)
}

func TestEval_MixTree(t *testing.T) {
	e := MixExpr{
		Left:  FluidExpr{Fluid: New(q(0.1), q(1))},
		Right: FluidExpr{Fluid: New(q(0.2), q(1))},
	}
	f := Eval(e)
	assert.InDelta(t, 0.15, f.Concentration.Float(), numeric.Epsilon)
}

func TestEval_BareNumPanics(t *testing.T) {
	assert.Panics(t, func() { Eval(NumExpr{Value: q(1)}) })
}

package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluido/internal/fluid"
	"fluido/internal/numeric"
)

func TestLiveness_StoreStoreMix(t *testing.T) {
	e := fluid.MixExpr{
		Left:  fluid.FluidExpr{Fluid: fluid.New(numeric.FromFloat(0.1), numeric.FromFloat(1))},
		Right: fluid.FluidExpr{Fluid: fluid.New(numeric.FromFloat(0.2), numeric.FromFloat(1))},
	}
	p := Build(e)
	require.Len(t, p.Insts, 3)

	pm := NewPassManager(p)
	pm.Register(LivenessPass())
	result := pm.Result(LivenessPassName).(LivenessResult)

	assert.Equal(t, map[Reg]struct{}{0: {}}, result.LiveOut[0])
	assert.Equal(t, map[Reg]struct{}{0: {}, 1: {}}, result.LiveOut[1])
	assert.Equal(t, map[Reg]struct{}{}, result.LiveOut[2])
}

func TestPassManager_UnknownPassPanics(t *testing.T) {
	pm := NewPassManager(Program{})
	assert.Panics(t, func() { pm.Result("nonexistent") })
}

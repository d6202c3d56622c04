package fluido

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluido/internal/config"
	"fluido/internal/numeric"
)

func q(f float64) numeric.Q { return numeric.FromFloat(f) }

func testConfig(seconds uint64) config.Config {
	return config.Config{TimeLimitSeconds: seconds, Generator: config.GeneratorEqualitySaturation}
}

// A target already in stock is synthesized as a single store, no mixing
// needed (spec §8: target 0.1, stock {0.1} -> (fluid 0.1 1.0), storage 1).
func TestSearchMixerDesign_TargetInStock(t *testing.T) {
	design, err := SearchMixerDesign(testConfig(1), q(0.1), []numeric.Q{q(0.1)})
	require.NoError(t, err)
	assert.Equal(t, "(fluid 0.1 1)", design.Expr)
	assert.Equal(t, 1, design.StorageUnits)
	assert.Equal(t, 0.0, design.Cost)
}

// The headline end-to-end scenario of spec §8: target 0.15 against stock
// {0.1, 0.2} is reached by diff-mixers-0.01 stepping the two halves of the
// expanded fluid five steps apart, and needs two storage cells.
func TestSearchMixerDesign_MidpointOfStock(t *testing.T) {
	design, err := SearchMixerDesign(testConfig(5), q(0.15), []numeric.Q{q(0.1), q(0.2)})
	require.NoError(t, err)
	assert.Equal(t, 2, design.StorageUnits)
	assert.Contains(t,
		[]string{"(mix (fluid 0.1 1) (fluid 0.2 1))", "(mix (fluid 0.2 1) (fluid 0.1 1))"},
		design.Expr)
}

// target 0.5 against stock {0.0, 1.0}: diff-mixers-0.1 stepping the two
// halves apart five steps reaches the stock extremes directly, needing two
// storage cells (spec §8).
func TestSearchMixerDesign_MidpointOfExtremes(t *testing.T) {
	design, err := SearchMixerDesign(testConfig(5), q(0.5), []numeric.Q{q(0.0), q(1.0)})
	require.NoError(t, err)
	assert.Equal(t, 2, design.StorageUnits)
	assert.Contains(t,
		[]string{"(mix (fluid 0 1) (fluid 1 1))", "(mix (fluid 1 1) (fluid 0 1))"},
		design.Expr)
}

// Diagnostic output derived from the final design should agree with the
// program it was built from: one DOT node per mixer-tree leaf/internal node,
// and a liveness entry per instruction.
func TestSearchMixerDesign_DiagnosticsAgreeWithProgram(t *testing.T) {
	design, err := SearchMixerDesign(testConfig(1), q(0.1), []numeric.Q{q(0.1)})
	require.NoError(t, err)
	assert.Contains(t, design.Tree.DOT(), "fluid 0.1 1")
	assert.Equal(t, len(design.Program.Insts), len(design.Liveness.LiveOut))
	assert.Contains(t, design.Interference.DOT(), "graph interference")
}

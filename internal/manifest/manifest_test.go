package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Load should round-trip the manifest shape of spec §6's example: named
// input/target fluids keyed by string, a disabled flag, a per-test time
// limit, and the expected mixer sequence/storage units.
func TestLoad_RoundTrips(t *testing.T) {
	data := []byte(`
disabled = false
time-limit = 30

[metadata]
name = "mid_stock"

[setup.input.low]
concentration = "0.1"
volume = "1.0"

[setup.input.high]
concentration = "0.2"
volume = "1.0"

[setup.target.goal]
concentration = "0.15"
volume = "1.0"

[expected]
mixer-sequence = "(mix (fluid 0.1 1) (fluid 0.2 1))"
storage-units = 2
`)

	m, err := Load(data)
	require.NoError(t, err)

	assert.Equal(t, "mid_stock", m.Metadata.Name)
	assert.False(t, m.Disabled)
	assert.EqualValues(t, 30, m.TimeLimit)

	require.Contains(t, m.Setup.Input, "low")
	assert.Equal(t, "0.1", m.Setup.Input["low"].Concentration)
	assert.Equal(t, "1.0", m.Setup.Input["low"].Volume)
	require.Contains(t, m.Setup.Input, "high")
	assert.Equal(t, "0.2", m.Setup.Input["high"].Concentration)

	require.Contains(t, m.Setup.Target, "goal")
	assert.Equal(t, "0.15", m.Setup.Target["goal"].Concentration)

	assert.Equal(t, "(mix (fluid 0.1 1) (fluid 0.2 1))", m.Expected.MixerSequence)
	assert.EqualValues(t, 2, m.Expected.StorageUnits)
}

// A manifest with no disabled/time-limit entries should decode with Go's
// zero values rather than erroring, matching BurntSushi/toml's default
// decoding behavior for absent keys.
func TestLoad_MissingOptionalFieldsDefaultToZero(t *testing.T) {
	data := []byte(`
[metadata]
name = "minimal"

[setup.input.only]
concentration = "0.3"
volume = "1.0"

[setup.target.only]
concentration = "0.3"
volume = "1.0"

[expected]
mixer-sequence = "(fluid 0.3 1)"
storage-units = 1
`)

	m, err := Load(data)
	require.NoError(t, err)
	assert.False(t, m.Disabled)
	assert.EqualValues(t, 0, m.TimeLimit)
}

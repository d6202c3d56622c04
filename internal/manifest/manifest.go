// Package manifest defines the test.toml schema types that an external
// harness loads a mixer-design test case from (spec §6's "Test manifest
// (TOML) consumed by the external harness"). Only the schema is implemented
// here — discovery, filtering, and execution of manifest files is the
// harness's job, explicitly out of scope (spec §1 Non-goals name
// "test-harness runner" as a separate external collaborator). Grounded on
// original_source/e2e-tests/src/manifest.rs's TestManifest/Setup/TestFluid/
// Expected shape, decoded with github.com/BurntSushi/toml the way
// spatialmodel-inmap decodes its own TOML configuration.
package manifest

import "github.com/BurntSushi/toml"

// TestManifest is the root of a test.toml file.
type TestManifest struct {
	Metadata Metadata `toml:"metadata"`
	Setup    Setup    `toml:"setup"`
	Disabled bool     `toml:"disabled"`
	// TimeLimit is the saturation budget in seconds for this manifest.
	TimeLimit uint64   `toml:"time-limit"`
	Expected  Expected `toml:"expected"`
}

// Metadata carries maintainer-facing information that doesn't affect the
// test's outcome.
type Metadata struct {
	Name string `toml:"name"`
}

// Setup describes the environment before the test runs: the available
// input fluids and the target fluid(s) to synthesize.
type Setup struct {
	Input  map[string]TestFluid `toml:"input"`
	Target map[string]TestFluid `toml:"target"`
}

// TestFluid describes one fluid entry; both fields are textual so they can
// carry either decimal or "a/b" fraction literals (spec §6 NUM grammar) and
// are parsed via numeric.ParseQ by the caller, not here.
type TestFluid struct {
	Concentration string `toml:"concentration"`
	Volume        string `toml:"volume"`
}

// Expected describes the outcome a harness checks the run against.
type Expected struct {
	MixerSequence string `toml:"mixer-sequence"`
	StorageUnits  int64  `toml:"storage-units"`
}

// Load decodes a TestManifest from TOML source text.
func Load(data []byte) (TestManifest, error) {
	var m TestManifest
	_, err := toml.Decode(string(data), &m)
	return m, err
}

// Package config holds the Config/LogConfig enumerated option set of
// spec §6. The types carry `toml` struct tags so they can be decoded with
// github.com/BurntSushi/toml, the library the test-manifest schema uses
// (internal/manifest); this package itself has no loader and does not read
// or decode any file.
package config

import "time"

// Generator enumerates the extraction strategy. Only EqualitySaturation
// exists today; the field is kept enumerable per spec §6's note that it is
// "reserved for future heuristics."
type Generator string

const GeneratorEqualitySaturation Generator = "equality_saturation"

// LogConfig toggles the diagnostic dumps of spec §6.
type LogConfig struct {
	ShowMixerGraph       bool `toml:"show_mixer_graph"`
	ShowIR               bool `toml:"show_ir"`
	ShowLiveness         bool `toml:"show_liveness"`
	ShowInterferenceGraph bool `toml:"show_interference_graph"`
}

// Config is the top-level library entry-point configuration (spec §6).
type Config struct {
	TimeLimitSeconds uint64    `toml:"time_limit_seconds"`
	Generator        Generator `toml:"generator"`
	Log              LogConfig `toml:"log"`
}

// TimeLimit converts the TOML-friendly seconds field into a time.Duration
// for the saturation driver.
func (c Config) TimeLimit() time.Duration {
	return time.Duration(c.TimeLimitSeconds) * time.Second
}

// Default returns a Config with a 30 second saturation budget and all
// diagnostic dumps off, matching the testable-properties examples in
// spec §8 that use a 30s default budget.
func Default() Config {
	return Config{TimeLimitSeconds: 30, Generator: GeneratorEqualitySaturation}
}

// Package ferrors implements the error taxonomy of spec §7: ParseError,
// FailedToParseTarget, SaturationError, MissingLivenessAnalysis, and the
// aggregating FluidoError. None of these are retried internally; they are
// all surfaced to the caller as-is (spec §7 propagation policy).
package ferrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError means the surface text did not match the grammar.
type ParseError struct {
	Message string
	cause   error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse error: %s", e.Message) }
func (e *ParseError) Unwrap() error { return e.cause }

// NewParseError wraps a lower-level parse failure (e.g. a participle
// error) with the stack-trace-carrying context github.com/pkg/errors
// provides, the way the teacher's own error-reporting code attaches
// positional context to a raw error.
func NewParseError(message string, cause error) *ParseError {
	return &ParseError{Message: message, cause: errors.WithStack(cause)}
}

// FailedToParseTarget means the internal synthesis of the initial target
// expression failed — a bug in the generator or invalid inputs, never an
// expected outcome of a valid call.
type FailedToParseTarget struct {
	Concentration string
	cause         error
}

func (e *FailedToParseTarget) Error() string {
	return fmt.Sprintf("failed to parse target concentration %s into a starting expression", e.Concentration)
}
func (e *FailedToParseTarget) Unwrap() error { return e.cause }

func NewFailedToParseTarget(concentration string, cause error) *FailedToParseTarget {
	return &FailedToParseTarget{Concentration: concentration, cause: errors.WithStack(cause)}
}

// SaturationError means extraction did not yield a usable tree: either no
// finite-cost tree was found for the target's e-class, or the
// post-extraction re-parse of the extracted tree failed.
type SaturationError struct {
	Message string
	cause   error
}

func (e *SaturationError) Error() string { return fmt.Sprintf("saturation error: %s", e.Message) }
func (e *SaturationError) Unwrap() error { return e.cause }

func NewSaturationError(message string, cause error) *SaturationError {
	return &SaturationError{Message: message, cause: errors.WithStack(cause)}
}

// MissingLivenessAnalysis means the pass manager did not produce the
// liveness result the caller asked for — a programming error (a pass
// that was never registered, or registered under the wrong name).
type MissingLivenessAnalysis struct {
	PassName string
}

func (e *MissingLivenessAnalysis) Error() string {
	return fmt.Sprintf("pass manager did not produce a result for pass %q", e.PassName)
}

func NewMissingLivenessAnalysis(passName string) *MissingLivenessAnalysis {
	return &MissingLivenessAnalysis{PassName: passName}
}

// FluidoError aggregates any of the above for library callers that want a
// single error type to switch on, mirroring original_source's
// MixerGenerationError/IRGenerationError union collapsed into one type.
type FluidoError struct {
	cause error
}

func Wrap(cause error) *FluidoError {
	if cause == nil {
		return nil
	}
	return &FluidoError{cause: cause}
}

func (e *FluidoError) Error() string { return fmt.Sprintf("fluido: %s", e.cause) }
func (e *FluidoError) Unwrap() error { return e.cause }

// Chain renders the full cause chain for CLI display (spec §7: "the CLI
// prints the error chain and exits non-zero").
func (e *FluidoError) Chain() string {
	var out string
	for err := error(e); err != nil; err = errors.Unwrap(err) {
		if out != "" {
			out += "\ncaused by: "
		}
		out += err.Error()
	}
	return out
}

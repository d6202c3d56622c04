// Package fluido is the library entry point: search_mixer_design wires
// synthesis of the target expression, equality saturation, cost-directed
// extraction, volume normalization, IR lowering, liveness analysis, and
// interference-graph coloring into one call (spec §2 Data flow, §6 Library
// entry point). Grounded on original_source/fluido-generation/src/lib.rs's
// top-level search_mixer_design, which performs the same pipeline in the
// same order.
package fluido

import (
	"fmt"

	"fluido/internal/config"
	"fluido/internal/egraph"
	"fluido/internal/extract"
	"fluido/internal/ferrors"
	"fluido/internal/fluid"
	"fluido/internal/ir"
	"fluido/internal/numeric"
	"fluido/internal/regalloc"
	"fluido/internal/satur"
	"fluido/internal/surface"
)

// MixerDesign is the final synthesized artifact (spec §3 MixerDesign).
type MixerDesign struct {
	Expr         string
	Cost         float64
	StorageUnits int
	Tree         extract.Tree
	Program      ir.Program
	Liveness     ir.LivenessResult
	Interference *regalloc.InterferenceGraph
}

// SearchMixerDesign runs the full pipeline for one target concentration
// against the given stock (spec §2 data flow):
//
//	(target, stock[], time_limit) → saturate → best_tree → parse_back →
//	IR ops → liveness sets → interference graph → min colors
func SearchMixerDesign(cfg config.Config, targetConcentration numeric.Q, stock []numeric.Q) (*MixerDesign, error) {
	targetVolume := numeric.FromFloat(1)

	// Synthesize the starting expression through the real surface parser
	// rather than building the e-graph seed tree by hand, mirroring
	// original_source's format!("({})", target).parse() (spec §2 parse_back,
	// run in reverse at synthesis time).
	targetExpr, err := surface.Parse(fmt.Sprintf("(fluid %s %s)", targetConcentration, targetVolume))
	if err != nil {
		return nil, ferrors.Wrap(ferrors.NewFailedToParseTarget(targetConcentration.String(), err))
	}

	eg := egraph.New()
	root := eg.AddExpr(egraph.FromExpr(targetExpr))
	eg.Rebuild()

	limits := satur.DefaultLimits(cfg.TimeLimit())
	runner := satur.NewRunner(eg, limits)
	runner.Run()

	cf := extract.CostFn{Stock: extract.Stock(stock), Target: targetConcentration}
	tree, cost, ok := extract.New(eg, cf).Extract(root)
	if !ok {
		return nil, ferrors.Wrap(ferrors.NewSaturationError(
			fmt.Sprintf("no finite-cost extraction found for target %s against stock %v", targetConcentration, stock), nil))
	}
	normalized := extract.Normalize(tree)

	expr, err := extract.ToExpr(normalized)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.NewSaturationError("failed to re-parse extracted tree", err))
	}

	program := ir.Build(expr)
	pm := ir.NewPassManager(program)
	pm.Register(ir.LivenessPass())
	livenessResult, ok := pm.TryResult(ir.LivenessPassName)
	if !ok {
		return nil, ferrors.Wrap(ferrors.NewMissingLivenessAnalysis(ir.LivenessPassName))
	}
	liveness := livenessResult.(ir.LivenessResult)

	interference := regalloc.Build(program, liveness)
	storageUnits, _ := regalloc.MinColors(interference)

	return &MixerDesign{
		Expr:         normalized.String(),
		Cost:         cost,
		StorageUnits: storageUnits,
		Tree:         normalized,
		Program:      program,
		Liveness:     liveness,
		Interference: interference,
	}, nil
}

// Eval collapses a surface S-expression's denoted Fluid, for callers that
// want to sanity-check a parsed expression without going through the full
// synthesis pipeline.
func Eval(e fluid.Expr) fluid.Fluid { return fluid.Eval(e) }

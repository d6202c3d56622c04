package satur

import (
	"log"
	"time"

	"fluido/internal/egraph"
)

// Limits bounds the saturation driver (spec §4.5). The original source
// hard-codes node/iteration limits at astronomical values and relies
// entirely on the wall clock (spec §9's first Open Question); this
// implementation instead exposes all three as configuration, per spec §9's
// recommendation, with defaults that preserve that "wall-clock is the real
// bound" behavior.
type Limits struct {
	TimeLimit time.Duration
	IterLimit int
	NodeLimit int
}

// DefaultLimits mirrors the original's astronomically high iteration/node
// ceilings: in practice only TimeLimit ever trips first.
func DefaultLimits(timeLimit time.Duration) Limits {
	return Limits{TimeLimit: timeLimit, IterLimit: 100_000, NodeLimit: 1_000_000_000}
}

// Report summarizes why saturation stopped, for callers that want to log
// or assert on it (spec §4.5: "Must expose the final e-graph").
type Report struct {
	Iterations int
	StoppedBy  string // "saturated", "time_limit", "iter_limit", "node_limit"
	Elapsed    time.Duration
}

// Runner drives the fixed rule set against an e-graph until saturation or a
// limit trips (spec §4.5). A timed-out run is not an error (spec §7): the
// caller gets back whatever e-graph state existed at the deadline.
type Runner struct {
	EGraph *egraph.EGraph
	Rules  []Rule
	Limits Limits
	Logger *log.Logger // optional; nil is a silent no-op
}

func NewRunner(eg *egraph.EGraph, limits Limits) *Runner {
	return &Runner{EGraph: eg, Rules: Rules(), Limits: limits}
}

// Run executes saturation rounds: each round matches every rule against the
// current e-graph, applies every match found, then rebuilds. It stops when
// a round applies no rule (saturated) or a limit trips.
func (r *Runner) Run() Report {
	start := time.Now()
	for iter := 0; ; iter++ {
		if r.Limits.TimeLimit > 0 && time.Since(start) >= r.Limits.TimeLimit {
			return r.report(iter, "time_limit", start)
		}
		if iter >= r.Limits.IterLimit {
			return r.report(iter, "iter_limit", start)
		}
		if r.EGraph.NodeCount() >= r.Limits.NodeLimit {
			return r.report(iter, "node_limit", start)
		}

		applied := r.runRound()
		r.EGraph.Rebuild()
		if !applied {
			return r.report(iter+1, "saturated", start)
		}
	}
}

// runRound matches every rule against every live e-class and applies every
// resulting match. Matches are collected before any are applied so that
// applying rule N doesn't change what rule N+1 sees within the same round
// (spec §4.5: "each round matches all rules against the current e-graph,
// applies all matches, then rebuilds").
func (r *Runner) runRound() bool {
	type pendingMatch struct {
		rule  Rule
		root  egraph.ClassID
		env   egraph.Bindings
	}
	var pending []pendingMatch

	for _, rule := range r.Rules {
		for _, classID := range r.EGraph.Classes() {
			for _, env := range egraph.Match(r.EGraph, classID, rule.LHS, egraph.Bindings{}) {
				if rule.Guard != nil && !rule.Guard(r.EGraph, env) {
					continue
				}
				pending = append(pending, pendingMatch{rule: rule, root: classID, env: env})
			}
		}
	}

	if len(pending) == 0 {
		return false
	}

	for _, m := range pending {
		rhsClass := egraph.Build(r.EGraph, m.rule.RHS, m.env)
		r.EGraph.Union(m.root, rhsClass)
		if r.Logger != nil {
			r.Logger.Printf("applied rule %s", m.rule.Name)
		}
	}
	return true
}

func (r *Runner) report(iterations int, stoppedBy string, start time.Time) Report {
	rep := Report{Iterations: iterations, StoppedBy: stoppedBy, Elapsed: time.Since(start)}
	if r.Logger != nil {
		r.Logger.Printf("saturation stopped after %d iterations (%s), elapsed %s", rep.Iterations, rep.StoppedBy, rep.Elapsed)
	}
	return rep
}

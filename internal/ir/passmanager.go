package ir

import "fmt"

// Pass computes some analysis result over a Program. Passes are registered
// and looked up by name through PassManager, per spec §4.9 ("driven by a
// registered pass under a pluggable PassManager that keys results by pass
// name").
type Pass interface {
	Name() string
	Run(p Program) any
}

// PassManager runs and caches named analysis passes over one Program.
// Results are memoized so a later stage (interference-graph construction)
// can ask for "liveness" without re-running it.
type PassManager struct {
	program Program
	passes  map[string]Pass
	results map[string]any
}

func NewPassManager(p Program) *PassManager {
	return &PassManager{program: p, passes: map[string]Pass{}, results: map[string]any{}}
}

func (pm *PassManager) Register(p Pass) {
	pm.passes[p.Name()] = p
}

// Result runs the named pass if it hasn't already run, and returns its
// cached result. It panics if no pass of that name was registered — this
// mirrors spec §7's MissingLivenessAnalysis, which is a programming error,
// not a recoverable one.
func (pm *PassManager) Result(name string) any {
	r, ok := pm.TryResult(name)
	if !ok {
		panic(fmt.Sprintf("ir: no pass registered under name %q", name))
	}
	return r
}

// TryResult is the non-panicking form of Result, for callers (the
// orchestrator) that want to surface a missing pass as a typed
// ferrors.MissingLivenessAnalysis instead of crashing.
func (pm *PassManager) TryResult(name string) (any, bool) {
	if r, ok := pm.results[name]; ok {
		return r, true
	}
	p, ok := pm.passes[name]
	if !ok {
		return nil, false
	}
	r := p.Run(pm.program)
	pm.results[name] = r
	return r, true
}

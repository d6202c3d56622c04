package ir

// LivenessResult holds, for each instruction index, the set of registers
// live immediately after that instruction (spec §4.9).
type LivenessResult struct {
	LiveOut []map[Reg]struct{}
}

const LivenessPassName = "liveness"

// livenessPass implements the backward dataflow of spec §4.9:
//
//	live_in[i]  = (live_out[i] \ def[i]) ∪ use[i]
//	live_out[last] = {}
//	live_out[i] = live_in[i+1]
//
// The implementation walks the program in reverse, accumulating a running
// live set, and stores each snapshot directly at its forward index i, so no
// separate reversal of the result is needed.
type livenessPass struct{}

// LivenessPass returns the registerable liveness Pass.
func LivenessPass() Pass { return livenessPass{} }

func (livenessPass) Name() string { return LivenessPassName }

func (livenessPass) Run(p Program) any {
	n := len(p.Insts)
	liveOut := make([]map[Reg]struct{}, n)

	live := map[Reg]struct{}{}
	for i := n - 1; i >= 0; i-- {
		inst := p.Insts[i]
		// live_out[i] is the live set as it stood before processing
		// instruction i in this reverse walk, i.e. live_in[i+1].
		out := cloneSet(live)
		liveOut[i] = out

		delete(live, inst.Def())
		for _, u := range inst.Use() {
			live[u] = struct{}{}
		}
	}

	return LivenessResult{LiveOut: liveOut}
}

func cloneSet(s map[Reg]struct{}) map[Reg]struct{} {
	out := make(map[Reg]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

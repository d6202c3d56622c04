package egraph

import "fluido/internal/numeric"

// Pattern is a small e-matching pattern: either a bound variable (matches
// any e-class, and must resolve consistently across repeated uses within
// one match), a numeric constant (matches a class whose analysis datum is
// that exact Number), or a structural node shape with sub-patterns for its
// children. This is deliberately minimal — the rewrite rule set (spec
// §4.4) is fixed and shallow, so a direct recursive matcher outperforms
// building a compiled e-matching automaton for no benefit.
type Pattern struct {
	Var      string
	Const    *numeric.Q
	Op       Op
	Children []Pattern
}

func Var(name string) Pattern           { return Pattern{Var: name} }
func Const(v numeric.Q) Pattern         { return Pattern{Const: &v} }
func Node(op Op, children ...Pattern) Pattern {
	return Pattern{Op: op, Children: children}
}

// Bindings maps a pattern variable to the e-class it matched.
type Bindings map[string]ClassID

func (b Bindings) clone() Bindings {
	out := make(Bindings, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Match finds every way pattern p can match the e-class classID, returning
// one Bindings per successful match. A class with several equivalent
// enodes can match in more than one way.
func Match(eg *EGraph, classID ClassID, p Pattern, env Bindings) []Bindings {
	classID = eg.Find(classID)

	if p.Var != "" {
		if existing, bound := env[p.Var]; bound {
			if eg.Find(existing) == classID {
				return []Bindings{env}
			}
			return nil
		}
		next := env.clone()
		next[p.Var] = classID
		return []Bindings{next}
	}

	if p.Const != nil {
		data := eg.dataOf(classID)
		if data.Kind == AnalysisNumber && data.Number.Equal(*p.Const) {
			return []Bindings{env}
		}
		return nil
	}

	class := eg.Class(classID)
	if class == nil {
		return nil
	}
	var results []Bindings
	for _, node := range class.Nodes {
		if node.Op != p.Op || p.Op.arity() != len(p.Children) {
			continue
		}
		envs := []Bindings{env}
		for i, childPattern := range p.Children {
			var next []Bindings
			for _, e := range envs {
				next = append(next, Match(eg, node.Children[i], childPattern, e)...)
			}
			envs = next
			if len(envs) == 0 {
				break
			}
		}
		results = append(results, envs...)
	}
	return results
}

// Build materializes pattern p into concrete e-nodes under bindings env,
// returning the e-class id of the resulting term. Var patterns resolve to
// their bound class; Const patterns are hash-consed as Number leaves;
// structural patterns recurse post-order.
func Build(eg *EGraph, p Pattern, env Bindings) ClassID {
	if p.Var != "" {
		return env[p.Var]
	}
	if p.Const != nil {
		return eg.Add(NumberNode(*p.Const))
	}
	var children [2]ClassID
	for i, c := range p.Children {
		children[i] = Build(eg, c, env)
	}
	return eg.Add(ENode{Op: p.Op, Children: children})
}

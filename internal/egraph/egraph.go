package egraph

// EClass is one equivalence class: the set of structurally-distinct enodes
// known to be equal, plus the analysis datum folded over them.
type EClass struct {
	Nodes    []ENode
	Data     AnalysisData
	modified bool // true once the Fluid-acquisition modify hook has fired
}

// EGraph is the equality-saturation substrate of spec §3/§4.3: a union-find
// over e-classes, a hash-cons of enodes up to e-class equivalence, and
// per-class analysis data.
type EGraph struct {
	uf       *unionFind
	classes  map[ClassID]*EClass
	hashcons map[ENode]ClassID
	analysis analysis
	dirty    bool
}

// New returns an empty e-graph.
func New() *EGraph {
	return &EGraph{
		uf:       newUnionFind(),
		classes:  map[ClassID]*EClass{},
		hashcons: map[ENode]ClassID{},
	}
}

// Find returns the canonical id of the e-class containing id.
func (eg *EGraph) Find(id ClassID) ClassID { return eg.uf.find(id) }

// Class returns the canonical EClass for id.
func (eg *EGraph) Class(id ClassID) *EClass { return eg.classes[eg.uf.find(id)] }

func (eg *EGraph) dataOf(id ClassID) AnalysisData {
	if c := eg.classes[eg.uf.find(id)]; c != nil {
		return c.Data
	}
	return AnalysisData{}
}

func (eg *EGraph) canonicalize(node ENode) ENode {
	canon := node
	for i := 0; i < node.Op.arity(); i++ {
		canon.Children[i] = eg.uf.find(node.Children[i])
	}
	return canon
}

// Add hash-conses enode into the e-graph, returning the canonical e-class
// id it belongs to (spec §4.3 add(enode)). Analysis data for a freshly
// created class is computed lazily by the next Rebuild call, not here —
// this keeps class creation free of any reentrant analysis/modify work,
// per Design Notes §9.
func (eg *EGraph) Add(node ENode) ClassID {
	canon := eg.canonicalize(node)
	if id, ok := eg.hashcons[canon]; ok {
		return eg.uf.find(id)
	}
	id := eg.uf.makeSet()
	eg.classes[id] = &EClass{Nodes: []ENode{canon}}
	eg.hashcons[canon] = id
	eg.dirty = true
	return id
}

// AddExpr recursively adds a term tree, returning the root's e-class id
// (spec §4.3 add_expr(tree)).
func (eg *EGraph) AddExpr(t LTree) ClassID {
	switch t.Op {
	case OpNumber:
		return eg.Add(NumberNode(t.Value))
	default:
		children := make([]ClassID, len(t.Children))
		for i, c := range t.Children {
			children[i] = eg.AddExpr(c)
		}
		return eg.Add(ENode{Op: t.Op, Children: [2]ClassID{children[0], children[1]}})
	}
}

// union is the unexported merge primitive shared by the public Union and by
// congruence repair: it folds the loser class's nodes into the winner,
// merges analysis data (panicking on a genuine conflict, per spec §3), and
// marks the graph dirty for the next Rebuild.
func (eg *EGraph) union(a, b ClassID) ClassID {
	a, b = eg.uf.find(a), eg.uf.find(b)
	if a == b {
		return a
	}
	winner, loser := eg.uf.union(a, b)
	winnerClass, loserClass := eg.classes[winner], eg.classes[loser]
	winnerClass.Nodes = append(winnerClass.Nodes, loserClass.Nodes...)
	if loserClass.modified {
		winnerClass.modified = true
	}
	eg.analysis.merge(&winnerClass.Data, loserClass.Data)
	delete(eg.classes, loser)
	eg.dirty = true
	return winner
}

// Union merges the e-classes containing a and b and enqueues a rebuild
// (spec §4.3 union(a,b)). Callers must call Rebuild before extraction or
// further matching.
func (eg *EGraph) Union(a, b ClassID) ClassID {
	return eg.union(a, b)
}

// Rebuild restores congruence and re-runs the analysis to a fixpoint
// (spec §4.3 rebuild()). It is idempotent: calling it again with no
// intervening Add/Union is a no-op. The implementation alternates
// congruence repair and analysis propagation because either can trigger
// the other (a congruence union can change a class's node set and hence
// its folded data; a modify-hook reification can introduce new nodes whose
// hash-cons collisions require another congruence pass).
func (eg *EGraph) Rebuild() {
	if !eg.dirty {
		return
	}
	for {
		congruenceChanged := eg.repairCongruence()
		analysisChanged := eg.propagateAnalysis()
		if !congruenceChanged && !analysisChanged {
			break
		}
	}
	eg.dirty = false
}

// repairCongruence restores the hash-cons invariant: a node's canonical
// child e-classes must uniquely identify its e-class (spec §3). Two
// enodes that canonicalize to the same shape but currently live in
// different classes are congruent and must be unioned.
func (eg *EGraph) repairCongruence() bool {
	changedAny := false
	for {
		fresh := map[ENode]ClassID{}
		var pendingUnions [][2]ClassID
		for classID, class := range eg.classes {
			for _, node := range class.Nodes {
				canon := eg.canonicalize(node)
				if existing, ok := fresh[canon]; ok {
					if existing != classID {
						pendingUnions = append(pendingUnions, [2]ClassID{existing, classID})
					}
				} else {
					fresh[canon] = classID
				}
			}
		}
		eg.hashcons = fresh
		if len(pendingUnions) == 0 {
			return changedAny
		}
		changedAny = true
		for _, pair := range pendingUnions {
			eg.union(pair[0], pair[1])
		}
	}
}

// propagateAnalysis recomputes analysis data to a fixpoint and runs the
// modify hook for every class that has newly acquired Fluid data. Modify
// calls are collected into a deferred list and executed only after a full
// scan of the current classes, so the hook never mutates the e-graph while
// this function is mid-iteration over it (Design Notes §9).
func (eg *EGraph) propagateAnalysis() bool {
	changedAny := false
	for {
		type snapshot struct {
			id    ClassID
			nodes []ENode
		}
		snapshots := make([]snapshot, 0, len(eg.classes))
		for id, class := range eg.classes {
			snapshots = append(snapshots, snapshot{id: id, nodes: append([]ENode(nil), class.Nodes...)})
		}

		localChanged := false
		var toModify []ClassID
		for _, s := range snapshots {
			classID := eg.uf.find(s.id)
			class := eg.classes[classID]
			if class == nil {
				continue
			}
			for _, node := range s.nodes {
				data := eg.analysis.make(eg, node)
				if data.Kind == AnalysisNone {
					continue
				}
				if eg.analysis.merge(&class.Data, data) {
					localChanged = true
				}
			}
			if class.Data.Kind == AnalysisFluid && !class.modified {
				class.modified = true
				toModify = append(toModify, classID)
			}
		}
		for _, id := range toModify {
			eg.analysis.modify(eg, eg.uf.find(id))
		}
		if !localChanged && len(toModify) == 0 {
			return changedAny
		}
		changedAny = true
	}
}

// Classes returns every currently-live (canonical) e-class id, for
// extraction and matching to iterate over.
func (eg *EGraph) Classes() []ClassID {
	ids := make([]ClassID, 0, len(eg.classes))
	for id := range eg.classes {
		ids = append(ids, id)
	}
	return ids
}

// Size returns the number of live e-classes.
func (eg *EGraph) Size() int { return len(eg.classes) }

// NodeCount returns the total number of enodes across all live e-classes,
// the quantity the saturation driver's node_limit actually bounds.
func (eg *EGraph) NodeCount() int {
	n := 0
	for _, c := range eg.classes {
		n += len(c.Nodes)
	}
	return n
}

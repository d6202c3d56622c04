package extract

import (
	"math"

	"fluido/internal/egraph"
	"fluido/internal/numeric"
)

// Tree is the extracted, concrete term tree rooted at the chosen enode of
// each class (distinct from egraph.LTree, which is used only to seed the
// e-graph before saturation).
type Tree struct {
	Op       egraph.Op
	Value    numeric.Q // meaningful only when Op == egraph.OpNumber
	Children []Tree
}

// best pairs a class's cheapest known enode with its total tree cost.
type best struct {
	cost float64
	node egraph.ENode
}

// Extractor runs the single-pass bottom-up dynamic program of spec §4.6: for
// every class reachable from root, pick the one enode minimizing the sum of
// its own cost plus its children's already-settled best cost.
type Extractor struct {
	eg   *egraph.EGraph
	cost CostFn
}

func New(eg *egraph.EGraph, cost CostFn) *Extractor {
	return &Extractor{eg: eg, cost: cost}
}

// Extract computes the cheapest concrete tree rooted at root's e-class.
// Costs are relaxed to a fixpoint across all classes — a class's best enode
// can reference a child class not yet settled on an earlier sweep — then the
// winning tree is read back by walking down from root. Among equal-cost
// candidates the one settled first is kept; a later candidate replaces it
// only when strictly cheaper. Classes are swept in the order
// EGraph.Classes returns them, which is map iteration order, so which of
// several equal-cost trees is returned is not fixed across runs.
func (x *Extractor) Extract(root egraph.ClassID) (Tree, float64, bool) {
	root = x.eg.Find(root)
	settled := map[egraph.ClassID]best{}

	classes := x.eg.Classes()
	for pass := 0; pass < len(classes)+1; pass++ {
		changed := false
		for _, id := range classes {
			id = x.eg.Find(id)
			class := x.eg.Class(id)
			if class == nil {
				continue
			}
			cur, have := settled[id]
			for _, node := range class.Nodes {
				total, ok := x.nodeTotalCost(node, settled)
				if !ok {
					continue
				}
				if !have || total < cur.cost {
					cur = best{cost: total, node: node}
					have = true
					changed = true
				}
			}
			if have {
				settled[id] = cur
			}
		}
		if !changed {
			break
		}
	}

	b, ok := settled[root]
	if !ok || math.IsInf(b.cost, 1) {
		return Tree{}, 0, false
	}
	return x.readback(root, settled), b.cost, true
}

// nodeTotalCost sums node's own cost with its children's settled costs. It
// reports ok=false only when a child class hasn't been settled yet (so the
// caller should retry on a later pass); an infinite total is a valid,
// settled result (the forbidden-target-leaf case), not a failure.
func (x *Extractor) nodeTotalCost(node egraph.ENode, settled map[egraph.ClassID]best) (float64, bool) {
	total := x.cost.nodeCost(x.eg, node)
	for i := 0; i < node.Op.Arity(); i++ {
		child := x.eg.Find(node.Children[i])
		cb, ok := settled[child]
		if !ok {
			return 0, false
		}
		total += cb.cost
	}
	return total, true
}

func (x *Extractor) readback(id egraph.ClassID, settled map[egraph.ClassID]best) Tree {
	id = x.eg.Find(id)
	node := settled[id].node
	t := Tree{Op: node.Op}
	if node.Op == egraph.OpNumber {
		t.Value = node.Value
		return t
	}
	t.Children = make([]Tree, node.Op.Arity())
	for i := 0; i < node.Op.Arity(); i++ {
		t.Children[i] = x.readback(node.Children[i], settled)
	}
	return t
}

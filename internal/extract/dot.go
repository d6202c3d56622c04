package extract

import (
	"fmt"
	"strings"

	"fluido/internal/egraph"
)

// DOT renders t as a Graphviz tree for diagnostic dumps (spec §7 supplemented
// feature: original_source's fluido-ir/src/graph.rs Graph.dot() restored
// here over the extracted mixer tree, the way
// regalloc.InterferenceGraph.DOT() restores the interference-graph side of
// the same original method).
func (t Tree) DOT() string {
	var b strings.Builder
	b.WriteString("digraph mixer {\n")
	n := 0
	t.writeDOT(&b, &n)
	b.WriteString("}\n")
	return b.String()
}

func (t Tree) writeDOT(b *strings.Builder, next *int) int {
	id := *next
	*next++
	switch t.Op {
	case egraph.OpFluid:
		fmt.Fprintf(b, "  n%d [label=\"fluid %s %s\"];\n", id, t.Children[0].Value, t.Children[1].Value)
	case egraph.OpMix:
		fmt.Fprintf(b, "  n%d [label=\"mix\"];\n", id)
		for _, child := range t.Children {
			cid := child.writeDOT(b, next)
			fmt.Fprintf(b, "  n%d -> n%d;\n", id, cid)
		}
	default:
		fmt.Fprintf(b, "  n%d [label=\"%s\"];\n", id, t.Op)
	}
	return id
}

package egraph

import "fluido/internal/fluid"

// FromExpr converts a parsed surface fluid.Expr into the plain LTree shape
// EGraph.AddExpr seeds an e-graph from. This is the bridge the library
// entry point uses to synthesize its initial target expression through the
// real surface parser (spec §2's parse_back arrow, run in the opposite
// direction at synthesis time) rather than building an LTree by hand.
func FromExpr(e fluid.Expr) LTree {
	switch v := e.(type) {
	case fluid.FluidExpr:
		return FluidTree(NumberTree(v.Fluid.Concentration), NumberTree(v.Fluid.Volume))
	case fluid.MixExpr:
		return MixTree(FromExpr(v.Left), FromExpr(v.Right))
	default:
		panic("egraph: FromExpr given a bare numeric node")
	}
}

// Package egraph implements the equality-saturation engine of spec §3/§4.3:
// e-class union-find, enode hash-consing, and a domain analysis that folds
// constants and propagates fluid values through mixes. The design is
// grounded in the egg-shaped API visible in
// original_source/fluido-generation/src/lib.rs (define_language!,
// Analysis::make/merge/modify, Runner, Extractor) — no Go e-graph library
// exists anywhere in the reference corpus, so the engine itself is
// hand-written; see DESIGN.md for that justification.
package egraph

import "fluido/internal/numeric"

// Op identifies the shape of an ENode. The term language L (spec §3) adds
// arithmetic constructors used only during rewriting on top of the surface
// Fluid/Mix vocabulary.
type Op int

const (
	OpNumber Op = iota
	OpAdd
	OpSub
	OpDiv
	OpMult
	OpFluid // concentration-child, volume-child
	OpMix
)

func (op Op) String() string {
	switch op {
	case OpNumber:
		return "num"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpDiv:
		return "/"
	case OpMult:
		return "*"
	case OpFluid:
		return "fluid"
	case OpMix:
		return "mix"
	default:
		return "?"
	}
}

// arity reports how many children an enode of this Op carries.
func (op Op) arity() int {
	if op == OpNumber {
		return 0
	}
	return 2
}

// Arity is the exported form of arity, for callers outside this package
// (the extractor needs to know how many children an enode of a given Op
// carries).
func (op Op) Arity() int { return op.arity() }

// ClassID is an index into EGraph.classes — an arena handle, not a pointer,
// per the Design Notes' instruction to represent e-classes/e-nodes as
// vector indices.
type ClassID int

// ENode is one structurally-distinct node within an e-class. Children are
// e-class ids; canonical form means every child has already been passed
// through EGraph.Find.
type ENode struct {
	Op       Op
	Value    numeric.Q // meaningful only when Op == OpNumber
	Children [2]ClassID
}

// NumberNode, AddNode, ... are convenience constructors so callers never
// build an ENode literal by hand and risk mismatching arity with Op.
func NumberNode(v numeric.Q) ENode { return ENode{Op: OpNumber, Value: v} }

func binNode(op Op, a, b ClassID) ENode {
	return ENode{Op: op, Children: [2]ClassID{a, b}}
}

func AddNode(a, b ClassID) ENode   { return binNode(OpAdd, a, b) }
func SubNode(a, b ClassID) ENode   { return binNode(OpSub, a, b) }
func DivNode(a, b ClassID) ENode   { return binNode(OpDiv, a, b) }
func MultNode(a, b ClassID) ENode  { return binNode(OpMult, a, b) }
func FluidNode(c, v ClassID) ENode { return binNode(OpFluid, c, v) }
func MixNode(a, b ClassID) ENode   { return binNode(OpMix, a, b) }

// LTree is a plain recursive term tree used to build an initial expression
// before it is hash-consed into the e-graph (EGraph.AddExpr's argument),
// distinct from the post-saturation extracted tree (package extract).
type LTree struct {
	Op       Op
	Value    numeric.Q
	Children []LTree
}

func NumberTree(v numeric.Q) LTree { return LTree{Op: OpNumber, Value: v} }
func FluidTree(c, v LTree) LTree   { return LTree{Op: OpFluid, Children: []LTree{c, v}} }
func MixTree(a, b LTree) LTree     { return LTree{Op: OpMix, Children: []LTree{a, b}} }

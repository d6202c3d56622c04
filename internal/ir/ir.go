// Package ir implements the linear intermediate representation the
// extracted mixer tree lowers to (spec §4.8): a flat sequence of Store/Mix
// operations over dense, SSA-by-construction virtual registers. Grounded on
// the tree-to-instruction-list shape of original_source/fluido-generation's
// IR module; no IR type exists anywhere in the reference corpus, so this is
// hand-written in the plain op-slice style the rest of the teacher's code
// favors for small, fixed instruction sets.
package ir

import (
	"fmt"

	"fluido/internal/fluid"
)

// Reg is a virtual register index. Registers are assigned densely and in
// lowering order, so Reg(i) is always the destination of instruction i
// (spec §4.8 invariant: "register index equals op position").
type Reg int

// Op distinguishes the two instruction shapes of the linear IR.
type Op int

const (
	OpStore Op = iota
	OpMix
)

// Inst is one linear-IR instruction. For OpStore, Fluid holds the literal
// value and SrcA/SrcB are unused; for OpMix, SrcA/SrcB name the two operand
// registers and Fluid is unused.
type Inst struct {
	Op    Op
	Dst   Reg
	SrcA  Reg
	SrcB  Reg
	Fluid fluid.Fluid
}

// Use returns the registers this instruction reads (spec §4.9 use()).
func (i Inst) Use() []Reg {
	if i.Op == OpMix {
		return []Reg{i.SrcA, i.SrcB}
	}
	return nil
}

// Def returns the register this instruction writes (spec §4.9 def()).
func (i Inst) Def() Reg { return i.Dst }

func (i Inst) String() string {
	switch i.Op {
	case OpStore:
		return fmt.Sprintf("store %s %%%d", i.Fluid, i.Dst)
	case OpMix:
		return fmt.Sprintf("mix %%%d %%%d %%%d", i.SrcA, i.SrcB, i.Dst)
	default:
		return "?"
	}
}

// Program is the full linear IR for one mixer tree.
type Program struct {
	Insts []Inst
}

func (p Program) String() string {
	s := ""
	for _, inst := range p.Insts {
		s += inst.String() + "\n"
	}
	return s
}

// NumRegs reports how many virtual registers the program defines.
func (p Program) NumRegs() int { return len(p.Insts) }

// Build lowers a fluid.Expr tree to a Program via the post-order traversal
// of spec §4.8: a Fluid leaf emits a Store, a Mix node compiles both
// children then emits a Mix over their result registers.
func Build(e fluid.Expr) Program {
	b := &builder{}
	b.lower(e)
	return Program{Insts: b.insts}
}

type builder struct {
	insts []Inst
}

func (b *builder) emit(inst Inst) Reg {
	inst.Dst = Reg(len(b.insts))
	b.insts = append(b.insts, inst)
	return inst.Dst
}

func (b *builder) lower(e fluid.Expr) Reg {
	switch v := e.(type) {
	case fluid.FluidExpr:
		return b.emit(Inst{Op: OpStore, Fluid: v.Fluid})
	case fluid.MixExpr:
		left := b.lower(v.Left)
		right := b.lower(v.Right)
		return b.emit(Inst{Op: OpMix, SrcA: left, SrcB: right})
	default:
		panic(fmt.Sprintf("ir: unexpected expr node %v in mixer tree", e))
	}
}

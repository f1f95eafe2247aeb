package domain

import (
	"github.com/ai-verify/interval-domain/pkg/cfg"
	"github.com/ai-verify/interval-domain/pkg/ir"
)

// Transform is the domain's transfer function (§4.3.1).  It is invoked
// by the fixed-point engine once per CFG edge, with from identifying the
// instruction being transformed and to identifying the successor node
// this particular invocation is computing the post-state for (relevant
// only to Goto, which has two distinct successors with different
// strengthenings).
func (e *Environment) Transform(from ir.Instruction, to ir.NodeID, engine cfg.Engine, ns *ir.Namespace) {
	if e.IsBottom() {
		return // bottom is a fixed point of every transfer.
	}

	switch instr := from.(type) {
	case ir.Decl:
		e.Havoc(instr.ID)
	case ir.Assign:
		e.Havoc(instr.Target)
		// Havocking first makes the equality transfer below sound even
		// when the source expression mentions the target.
		target := ir.Symbol{ID: instr.Target, Ty: instr.TargetTy}
		e.Assume(ir.NewEq(target, instr.Source), ns)
	case ir.Goto:
		e.transformGoto(instr, to, ns)
	case ir.Assume:
		e.Assume(instr.Guard, ns)
	case ir.FunctionCall:
		if instr.Ret != nil {
			e.Havoc(*instr.Ret)
		}
	case ir.Rename:
		e.Rename(instr.From, instr.To)
	default:
		// Unknown instruction kind: identity transfer.
	}
}

func (e *Environment) transformGoto(instr ir.Goto, to ir.NodeID, ns *ir.Namespace) {
	// The "skip" optimization: if the true branch is also the
	// fall-through, the guard adds no information to either successor.
	if instr.TrueTarget == instr.NextTarget {
		return
	}

	switch to {
	case instr.NextTarget:
		e.Assume(ir.Not{Arg: instr.Guard}, ns)
	case instr.TrueTarget:
		e.Assume(instr.Guard, ns)
	default:
		// to is neither of this Goto's declared successors: nothing to
		// strengthen from this edge.
	}
}

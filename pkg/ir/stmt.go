package ir

import "fmt"

// Instruction is implemented by every CFG instruction kind the domain
// knows how to specialise on.  An unknown implementation is handled by
// transform's default case (identity).
type Instruction interface {
	fmt.Stringer
	isInstruction()
}

// Decl introduces a fresh variable into scope.  Per §4.3.1, declaring a
// variable havocs it: variables enter the analysis as top.
type Decl struct {
	ID SymbolID
	Ty Type
}

func (Decl) isInstruction() {}

func (s Decl) String() string { return fmt.Sprintf("decl $%d : %s", s.ID, s.Ty) }

// Assign represents target := source.
type Assign struct {
	Target SymbolID
	TargetTy Type
	Source Expr
}

func (Assign) isInstruction() {}

func (s Assign) String() string { return fmt.Sprintf("$%d := %s", s.Target, s.Source) }

// Goto is a conditional branch.  TrueTarget is taken when Guard holds;
// NextTarget is the fall-through successor taken otherwise.  An
// unconditional jump is represented by a Guard of TrueExpr() with
// TrueTarget == NextTarget.
type Goto struct {
	Guard      Expr
	TrueTarget NodeID
	NextTarget NodeID
}

func (Goto) isInstruction() {}

func (s Goto) String() string {
	return fmt.Sprintf("goto %s ? %d : %d", s.Guard, s.TrueTarget, s.NextTarget)
}

// Assume asserts that Guard holds on all states reaching this point,
// without branching (used to encode e.g. require()-style checks already
// proven reachable only when true).
type Assume struct {
	Guard Expr
}

func (Assume) isInstruction() {}

func (s Assume) String() string { return fmt.Sprintf("assume %s", s.Guard) }

// FunctionCall represents a call instruction.  Ret is nil when the call's
// result (if any) is discarded.  Call semantics beyond the return binding
// are out of scope for the domain (see design notes on callee side
// effects).
type FunctionCall struct {
	Name string
	Args []Expr
	Ret  *SymbolID
	RetTy Type
}

func (FunctionCall) isInstruction() {}

func (s FunctionCall) String() string {
	if s.Ret != nil {
		return fmt.Sprintf("$%d := call %s(...)", *s.Ret, s.Name)
	}

	return fmt.Sprintf("call %s(...)", s.Name)
}

// Rename carries forward the interval tracked for From onto To, discarding
// any prior binding of To. Used at scope exit to move a callee-scope
// temporary's known range onto the caller-visible name it is bound to
// (see SPEC_FULL.md "Supplemented features").
type Rename struct {
	From SymbolID
	To   SymbolID
}

func (Rename) isInstruction() {}

func (s Rename) String() string { return fmt.Sprintf("rename $%d -> $%d", s.From, s.To) }

// NodeID identifies a CFG node.  Declared here (rather than in pkg/cfg)
// so that Goto can reference successors without an import cycle between
// the expression algebra and the graph that embeds it.
type NodeID uint32

// Nop is an instruction kind the domain deliberately does not know
// about, used for CFG nodes that exist purely to shape the graph (e.g. a
// join point with no associated statement). transform's default case
// handles it as identity.
type Nop struct{}

func (Nop) isInstruction() {}

func (Nop) String() string { return "nop" }

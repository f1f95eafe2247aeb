package domain

import "github.com/ai-verify/interval-domain/pkg/ir"

// AiSimplify is the oracle the fixed-point engine calls to ask whether a
// guard can be rewritten to true given everything currently known in
// this environment (§4.3.4).  It returns true iff cond is unchanged
// (i.e. the rewrite did not fire), matching the "changed" convention
// used elsewhere in this package but inverted, per the documented
// contract of ai_simplify.
//
// The rewrite is one-directional: AiSimplify may only ever replace cond
// with true. It never proves a guard false, since that would require
// showing no reaching state satisfies it — a strictly harder claim this
// domain (non-relational, non-disjunctive) is not positioned to make
// here.
func (e *Environment) AiSimplify(cond *ir.Expr, ns *ir.Namespace) bool {
	if ir.IsTrueExpr(*cond) {
		return true
	}

	var holds bool

	if and, ok := (*cond).(ir.And); ok {
		holds = e.impliesConjunction(and, ns)
	} else if _, isSymbol := ir.UnwrapTypecast(*cond).(ir.Symbol); isSymbol {
		// Open question (spec.md §9): symbol-typed guards are left
		// unchanged rather than treated as a comparison to true.
		holds = false
	} else {
		holds = e.impliesOther(*cond, ns)
	}

	if !holds {
		return true
	}

	*cond = ir.TrueExpr()

	return false
}

// impliesConjunction proves cond by building a fresh top environment a,
// running a.Assume(cond) to over-approximate the set of states
// satisfying it, then checking self ⊑ a (a.Join(self) leaves a
// unchanged — i.e. self already contains no more information than a
// allows, which is exactly ⊑ under this lattice's join-based ordering).
func (e *Environment) impliesConjunction(cond ir.And, ns *ir.Namespace) bool {
	a := &Environment{}
	a.MakeTop()
	a.Assume(cond, ns)

	changed := a.Join(e)

	return !changed
}

// impliesOther proves cond by checking that assuming its negation on a
// clone of self drives that clone to bottom — i.e. no state satisfying
// ¬cond is present in self, so every state in self satisfies cond.
func (e *Environment) impliesOther(cond ir.Expr, ns *ir.Namespace) bool {
	d := e.Clone()
	d.Assume(ir.Not{Arg: cond}, ns)

	return d.IsBottom()
}

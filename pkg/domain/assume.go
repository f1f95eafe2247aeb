package domain

import (
	"math/big"

	log "github.com/sirupsen/logrus"

	"github.com/ai-verify/interval-domain/pkg/ir"
)

var one = big.NewInt(1)

// Assume strengthens this environment with the knowledge that cond holds
// on every state it represents (§4.3.3).  It first normalises cond with
// the IR's pure simplifier, then descends with positive polarity.
func (e *Environment) Assume(cond ir.Expr, ns *ir.Namespace) {
	if e.IsBottom() {
		return
	}

	e.assumeRec(ir.Simplify(cond), false, ns)
}

// assumeRec descends cond. negate==true means cond is known to be false
// (we are assuming its negation), as happens on the not-taken edge of a
// Goto and inside Not.
func (e *Environment) assumeRec(cond ir.Expr, negate bool, ns *ir.Namespace) {
	switch v := cond.(type) {
	case ir.Eq:
		e.assumeComparison(eqOp, v.X, v.Y, negate, ns)
	case ir.Ne:
		e.assumeComparison(neOp, v.X, v.Y, negate, ns)
	case ir.Lt:
		e.assumeComparison(ltOp, v.X, v.Y, negate, ns)
	case ir.Le:
		e.assumeComparison(leOp, v.X, v.Y, negate, ns)
	case ir.Gt:
		e.assumeComparison(gtOp, v.X, v.Y, negate, ns)
	case ir.Ge:
		e.assumeComparison(geOp, v.X, v.Y, negate, ns)
	case ir.Not:
		e.assumeRec(v.Arg, !negate, ns)
	case ir.And:
		if negate {
			// De Morgan: not(a && b) = not(a) || not(b).
			e.assumeDisjunction(v.Args, true, ns)
			return
		}

		for _, a := range v.Args {
			e.assumeRec(a, false, ns)
		}
	case ir.Or:
		if !negate {
			e.assumeDisjunction(v.Args, false, ns)
			return
		}
		// De Morgan: not(a || b) = not(a) && not(b)
		for _, a := range v.Args {
			e.assumeRec(a, true, ns)
		}
	default:
		log.WithField("expr", cond.String()).Debug("assume: unhandled expression form, skipping")
	}
}

// assumeDisjunction strengthens e with the knowledge that at least one of
// args holds (each interpreted with the given polarity), by folding every
// disjunct onto an independent clone of e and joining the survivors back
// together.  If every disjunct drives its clone to bottom, the
// disjunction itself is unsatisfiable given e, and e becomes bottom; this
// stays within the interval domain's precision since only as many forks
// as there are disjuncts are ever explored, never a full case split.
func (e *Environment) assumeDisjunction(args []ir.Expr, negate bool, ns *ir.Namespace) {
	var result *Environment

	for _, a := range args {
		c := e.Clone()
		c.assumeRec(a, negate, ns)

		if c.IsBottom() {
			continue
		}

		if result == nil {
			result = c
		} else {
			result.Join(c)
		}
	}

	if result == nil {
		e.MakeBottom()
		return
	}

	*e = *result
}

type compareOp int

const (
	eqOp compareOp = iota
	neOp
	ltOp
	leOp
	gtOp
	geOp
)

// complement returns the operator whose meaning is the logical negation
// of op (Lt<->Ge, Le<->Gt, Eq<->Ne).
func (op compareOp) complement() compareOp {
	switch op {
	case eqOp:
		return neOp
	case neOp:
		return eqOp
	case ltOp:
		return geOp
	case geOp:
		return ltOp
	case leOp:
		return gtOp
	case gtOp:
		return leOp
	default:
		return op
	}
}

// assumeComparison dispatches a (possibly negated) comparison x op y down
// to the canonical x<=y / x<y strengthening primitive.
func (e *Environment) assumeComparison(op compareOp, x, y ir.Expr, negate bool, ns *ir.Namespace) {
	if negate {
		op = op.complement()
	}

	switch op {
	case eqOp:
		e.assumeLe(x, y, false, ns)
		e.assumeLe(y, x, false, ns)
	case neOp:
		// no-op: the domain does not split disjunctively.
	case geOp:
		e.assumeLe(y, x, false, ns)
	case gtOp:
		e.assumeLe(y, x, true, ns)
	case ltOp:
		e.assumeLe(x, y, true, ns)
	case leOp:
		e.assumeLe(x, y, false, ns)
	}
}

// assumeLe implements the canonical x <= y (or, if strict, x < y)
// transfer, dispatching on the shape of its sides through typecast-
// transparent unwrapping (§4.3.3's table).
func (e *Environment) assumeLe(lhs, rhs ir.Expr, strict bool, ns *ir.Namespace) {
	l := ir.UnwrapTypecast(lhs)
	r := ir.UnwrapTypecast(rhs)

	lSym, lIsSym := l.(ir.Symbol)
	rSym, rIsSym := r.(ir.Symbol)
	lInt, lIsInt := l.(ir.ConstantInt)
	rInt, rIsInt := r.(ir.ConstantInt)
	lFloat, lIsFloat := l.(ir.ConstantFloat)
	rFloat, rIsFloat := r.(ir.ConstantFloat)

	switch {
	case lIsSym && rIsInt && ir.IsBVType(lSym.Ty):
		e.tightenIntUpper(lSym.ID, rInt.Value, strict)
	case lIsSym && rIsFloat && ir.IsFloatBVType(lSym.Ty):
		e.tightenRealUpper(lSym.ID, rFloat, strict, ir.AsFloatBVType(lSym.Ty))
	case lIsInt && rIsSym && ir.IsBVType(rSym.Ty):
		e.tightenIntLower(rSym.ID, lInt.Value, strict)
	case lIsFloat && rIsSym && ir.IsFloatBVType(rSym.Ty):
		e.tightenRealLower(rSym.ID, lFloat, strict, ir.AsFloatBVType(rSym.Ty))
	case lIsSym && rIsSym && ir.IsBVType(lSym.Ty) && ir.IsBVType(rSym.Ty):
		// Note: strictness is not distinguished here (a sound, if less
		// precise, treatment of a<b as a<=b — see spec's symbol/symbol
		// row, which does not special-case strict comparisons).
		a, b := e.intInterval(lSym.ID), e.intInterval(rSym.ID)
		ContractIntervalLe(a, b)
		e.checkIntBottom(lSym.ID, a)
		e.checkIntBottom(rSym.ID, b)
	case lIsSym && rIsSym && ir.IsFloatBVType(lSym.Ty) && ir.IsFloatBVType(rSym.Ty):
		a, b := e.realInterval(lSym.ID), e.realInterval(rSym.ID)
		ContractRealIntervalLe(a, b)
		e.checkRealBottom(lSym.ID, a)
		e.checkRealBottom(rSym.ID, b)
	default:
		// mixed int/float, or any other shape: sound no-op.
	}
}

func (e *Environment) tightenIntUpper(id ir.SymbolID, c *big.Int, strict bool) {
	bound := c
	if strict {
		bound = new(big.Int).Sub(c, one)
	}

	iv := e.intInterval(id)
	iv.MakeLeThan(bound)
	e.checkIntBottom(id, iv)
}

func (e *Environment) tightenIntLower(id ir.SymbolID, c *big.Int, strict bool) {
	bound := c
	if strict {
		bound = new(big.Int).Add(c, one)
	}

	iv := e.intInterval(id)
	iv.MakeGeThan(bound)
	e.checkIntBottom(id, iv)
}

func (e *Environment) tightenRealUpper(id ir.SymbolID, c ir.ConstantFloat, strict bool, ty ir.FloatBV) {
	if c.IsNaN || c.IsInf {
		return // unhandled float sentinel: havoc-preserving, no tightening.
	}

	bound := c.Value
	if strict {
		bound = DecrementTowardMinusInfinity(c.Value, ty)
	}

	iv := e.realInterval(id)
	iv.MakeLeThan(bound)
	e.checkRealBottom(id, iv)
}

func (e *Environment) tightenRealLower(id ir.SymbolID, c ir.ConstantFloat, strict bool, ty ir.FloatBV) {
	if c.IsNaN || c.IsInf {
		return
	}

	bound := c.Value
	if strict {
		bound = IncrementTowardPlusInfinity(c.Value, ty)
	}

	iv := e.realInterval(id)
	iv.MakeGeThan(bound)
	e.checkRealBottom(id, iv)
}

func (e *Environment) checkIntBottom(id ir.SymbolID, iv *IntInterval) {
	if iv.IsBottom() {
		e.MakeBottom()
	}
}

func (e *Environment) checkRealBottom(id ir.SymbolID, iv *RealInterval) {
	if iv.IsBottom() {
		e.MakeBottom()
	}
}

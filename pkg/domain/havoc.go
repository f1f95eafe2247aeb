package domain

import (
	log "github.com/sirupsen/logrus"

	"github.com/ai-verify/interval-domain/pkg/ir"
)

// HavocExpr traverses e and, for every reachable leaf that is a symbol
// of integer or float type, resets its entry to top (§4.3.2).  Both
// branches of an If are descended; Typecast is transparent.  Any
// sub-form this function does not recognise is logged at debug level and
// skipped — never treated as an opportunity to tighten, since havoc
// itself never tightens, only discards.
func (e *Environment) HavocExpr(expr ir.Expr) {
	switch v := ir.UnwrapTypecast(expr).(type) {
	case ir.Symbol:
		e.Havoc(v.ID)
	case ir.If:
		e.HavocExpr(v.Cond)
		e.HavocExpr(v.Then)
		e.HavocExpr(v.Else)
	case ir.ConstantInt, ir.ConstantFloat:
		// constants carry no identifier to havoc.
	default:
		log.WithField("expr", expr.String()).Debug("havoc: unhandled expression form, skipping")
	}
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ai-verify/interval-domain/pkg/ir"
)

func Test_HavocExpr_01_ResetsSymbolToTop(t *testing.T) {
	ty := bv(32, true)
	ns := newNamespace(ty)
	x := ir.SymbolID(0)

	e := newTopEnv()
	e.Assume(ir.NewLe(sym(x, ty), intc(3, ty)), ns)
	_, ok := e.intMap[x]
	assert.True(t, ok)

	e.HavocExpr(sym(x, ty))

	_, ok = e.intMap[x]
	assert.False(t, ok)
}

func Test_HavocExpr_02_DescendsBothBranchesOfIf(t *testing.T) {
	ty := bv(32, true)
	ns := newNamespace(ty, ty)
	x := ir.SymbolID(0)
	y := ir.SymbolID(1)

	e := newTopEnv()
	e.Assume(ir.NewLe(sym(x, ty), intc(3, ty)), ns)
	e.Assume(ir.NewLe(sym(y, ty), intc(3, ty)), ns)

	cond := intc(1, bv(1, false))
	e.HavocExpr(ir.If{Cond: cond, Then: sym(x, ty), Else: sym(y, ty), Ty: ty})

	_, xok := e.intMap[x]
	_, yok := e.intMap[y]
	assert.False(t, xok)
	assert.False(t, yok)
}

func Test_HavocExpr_03_ConstantIsNoOp(t *testing.T) {
	e := newTopEnv()

	assert.NotPanics(t, func() { e.HavocExpr(intc(5, bv(32, true))) })
}

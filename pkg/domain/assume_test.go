package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ai-verify/interval-domain/pkg/ir"
)

func Test_Assume_01_LeNaNLeavesFloatIntervalUntouched(t *testing.T) {
	ty := fv(8, 23)
	ns := newNamespace(ty)
	x := ir.SymbolID(0)

	e := newTopEnv()
	e.Assume(ir.NewLe(sym(x, ty), ir.ConstantFloat{Ty: ty, IsNaN: true}), ns)

	_, ok := e.realMap[x]
	assert.False(t, ok)
	assert.False(t, e.IsBottom())
}

func Test_Assume_02_LePlusInfLeavesFloatIntervalUntouched(t *testing.T) {
	ty := fv(8, 23)
	ns := newNamespace(ty)
	x := ir.SymbolID(0)

	e := newTopEnv()
	e.Assume(ir.NewLe(sym(x, ty), ir.ConstantFloat{Ty: ty, IsInf: true, Positive: true}), ns)

	_, ok := e.realMap[x]
	assert.False(t, ok)
	assert.False(t, e.IsBottom())
}

func Test_Assume_03_GeNaNLeavesFloatIntervalUntouched(t *testing.T) {
	ty := fv(8, 23)
	ns := newNamespace(ty)
	x := ir.SymbolID(0)

	e := newTopEnv()
	e.Assume(ir.Ge{X: sym(x, ty), Y: ir.ConstantFloat{Ty: ty, IsNaN: true}}, ns)

	_, ok := e.realMap[x]
	assert.False(t, ok)
	assert.False(t, e.IsBottom())
}

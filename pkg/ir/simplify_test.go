package ir_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ai-verify/interval-domain/pkg/ir"
)

var u32 = ir.BitVector{Width: 32, Signed: false}

func constInt(n int64) ir.Expr { return ir.ConstantInt{Value: big.NewInt(n), Ty: u32} }

func Test_Simplify_01_DoubleNegationElimination(t *testing.T) {
	x := ir.Symbol{ID: 0, Ty: u32}
	e := ir.Not{Arg: ir.Not{Arg: x}}

	assert.True(t, ir.Simplify(e).Equals(x))
}

func Test_Simplify_02_FoldsConstantComparison(t *testing.T) {
	e := ir.Lt{X: constInt(1), Y: constInt(2)}

	assert.True(t, ir.IsTrueExpr(ir.Simplify(e)))
}

func Test_Simplify_03_FoldsFalseConstantComparison(t *testing.T) {
	e := ir.Ge{X: constInt(1), Y: constInt(2)}

	assert.False(t, ir.IsTrueExpr(ir.Simplify(e)))
}

func Test_Simplify_04_FlattensNestedAnd(t *testing.T) {
	x := ir.Symbol{ID: 0, Ty: u32}
	y := ir.Symbol{ID: 1, Ty: u32}

	e := ir.And{Args: []ir.Expr{x, ir.And{Args: []ir.Expr{y, ir.TrueExpr()}}}}
	flat, ok := ir.Simplify(e).(ir.And)

	assert.True(t, ok)
	assert.Len(t, flat.Args, 2)
}

func Test_Simplify_05_AndOfSingleArgCollapses(t *testing.T) {
	x := ir.Symbol{ID: 0, Ty: u32}
	e := ir.And{Args: []ir.Expr{x, ir.TrueExpr()}}

	assert.True(t, ir.Simplify(e).Equals(x))
}

func Test_Simplify_06_StripsRedundantTypecast(t *testing.T) {
	x := ir.Symbol{ID: 0, Ty: u32}
	e := ir.Typecast{From: x, Ty: u32}

	assert.True(t, ir.Simplify(e).Equals(x))
}

func Test_Simplify_07_OrDropsFalseIdentity(t *testing.T) {
	x := ir.Symbol{ID: 0, Ty: u32}
	e := ir.Or{Args: []ir.Expr{x, ir.FalseExpr()}}

	assert.True(t, ir.Simplify(e).Equals(x))
}

func Test_Simplify_08_LeavesSymbolGuardUnchanged(t *testing.T) {
	x := ir.Symbol{ID: 0, Ty: ir.Bool{}}

	assert.True(t, ir.Simplify(x).Equals(x))
}

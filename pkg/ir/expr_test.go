package ir_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ai-verify/interval-domain/pkg/ir"
)

var f32 = ir.FloatBV{ExpBits: 8, FracBits: 23}

func Test_Expr_01_ConstantFloatNaNNeverEqualsItself(t *testing.T) {
	nan := ir.ConstantFloat{Ty: f32, IsNaN: true}

	assert.False(t, nan.Equals(nan))
}

func Test_Expr_02_ConstantFloatInfinitiesCompareBySign(t *testing.T) {
	posInf := ir.ConstantFloat{Ty: f32, IsInf: true, Positive: true}
	negInf := ir.ConstantFloat{Ty: f32, IsInf: true, Positive: false}

	assert.True(t, posInf.Equals(ir.ConstantFloat{Ty: f32, IsInf: true, Positive: true}))
	assert.False(t, posInf.Equals(negInf))
}

func Test_Expr_03_TypecastUnwrapsFully(t *testing.T) {
	x := ir.Symbol{ID: 0, Ty: u32}
	nested := ir.Typecast{From: ir.Typecast{From: x, Ty: u32}, Ty: u32}

	assert.True(t, ir.UnwrapTypecast(nested).Equals(x))
}

func Test_Expr_04_IfDescendsBothBranchesInChildren(t *testing.T) {
	cond := ir.Symbol{ID: 0, Ty: ir.Bool{}}
	then := ir.Symbol{ID: 1, Ty: u32}
	els := ir.Symbol{ID: 2, Ty: u32}

	e := ir.If{Cond: cond, Then: then, Else: els, Ty: u32}

	assert.Len(t, e.Children(), 3)
}

func Test_Expr_05_ConstantIntEqualityIgnoresType(t *testing.T) {
	a := ir.ConstantInt{Value: big.NewInt(4), Ty: u32}
	b := ir.ConstantInt{Value: big.NewInt(4), Ty: otherBVType()}

	assert.True(t, a.Equals(b))
}

func otherBVType() ir.Type { return ir.BitVector{Width: 64, Signed: false} }

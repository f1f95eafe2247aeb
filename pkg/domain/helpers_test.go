package domain

import (
	"math/big"

	"github.com/ai-verify/interval-domain/pkg/ir"
)

func bv(width uint, signed bool) ir.Type { return ir.BitVector{Width: width, Signed: signed} }

func fv(expBits, fracBits uint) ir.Type { return ir.FloatBV{ExpBits: expBits, FracBits: fracBits} }

func sym(id ir.SymbolID, ty ir.Type) ir.Symbol { return ir.Symbol{ID: id, Ty: ty} }

func intc(n int64, ty ir.Type) ir.Expr { return ir.ConstantInt{Value: big.NewInt(n), Ty: ty} }

func floatc(f float64, ty ir.Type) ir.Expr {
	return ir.ConstantFloat{Value: big.NewFloat(f), Ty: ty}
}

func newTopEnv() *Environment {
	e := &Environment{}
	e.MakeTop()

	return e
}

func newNamespace(decls ...ir.Type) *ir.Namespace {
	ns := ir.NewNamespace()
	for i, ty := range decls {
		ns.Declare(sprintfSym(i), ty)
	}

	return ns
}

func sprintfSym(i int) string {
	names := []string{"x", "y", "z", "w", "v", "u"}
	if i < len(names) {
		return names[i]
	}

	return "t"
}

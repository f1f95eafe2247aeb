package ir

import "math/big"

// TrueExpr constructs the boolean literal true, represented as the
// constant integer 1 of an unsigned 1-bit type (the convention this IR
// uses for booleans at the bit-vector level).
func TrueExpr() Expr { return ConstantInt{Value: big.NewInt(1), Ty: BitVector{Width: 1, Signed: false}} }

// FalseExpr constructs the boolean literal false.
func FalseExpr() Expr { return ConstantInt{Value: big.NewInt(0), Ty: BitVector{Width: 1, Signed: false}} }

// IsTrueExpr reports whether e is literally TrueExpr() — the 1-bit
// unsigned constant 1 — not merely any nonzero ConstantInt (a guard
// that simplifies to the literal 5 is not "true").
func IsTrueExpr(e Expr) bool {
	c, ok := UnwrapTypecast(e).(ConstantInt)
	return ok && c.Ty == BitVector{Width: 1, Signed: false} && c.Value.Cmp(big.NewInt(1)) == 0
}

// NewEq constructs x = y.
func NewEq(x, y Expr) Expr { return Eq{X: x, Y: y} }

// NewLe constructs x <= y.
func NewLe(x, y Expr) Expr { return Le{X: x, Y: y} }

// Conjunction builds the conjunction of a list of boolean expressions,
// collapsing the trivial cases (empty -> true, singleton -> itself).
func Conjunction(args []Expr) Expr {
	switch len(args) {
	case 0:
		return TrueExpr()
	case 1:
		return args[0]
	default:
		return And{Args: args}
	}
}

// FromInteger constructs a constant of the given bit-vector type from an
// arbitrary-precision integer.  Used by make_expression to emit the
// singleton case and the two bound cases.
func FromInteger(v *big.Int, ty Type) Expr {
	var clone big.Int

	clone.Set(v)

	return ConstantInt{Value: &clone, Ty: ty}
}

// FromFloat constructs a constant of the given floating-point type.
func FromFloat(v *big.Float, ty Type) Expr {
	clone := new(big.Float).Copy(v)
	return ConstantFloat{Value: clone, Ty: ty}
}

// ImplicitTypecastArithmetic inserts implicit casts between two
// arithmetic operands so that both sides share a common type, following
// the source language's usual-arithmetic-conversion rules: the narrower
// or unsigned side is cast up to the wider/signed side.  This is a
// policy decision (not a correctness requirement of the domain itself)
// and is only exercised when make_expression emits a comparison between
// a symbol and a freshly-synthesised constant of a possibly different
// width than the symbol's declared type.
func ImplicitTypecastArithmetic(lhs, rhs Expr) (Expr, Expr) {
	lt, lok := lhs.Type().(BitVector)
	rt, rok := rhs.Type().(BitVector)

	if !lok || !rok || lt == rt {
		return lhs, rhs
	}

	target := wideningTarget(lt, rt)

	if lt != target {
		lhs = Typecast{From: lhs, Ty: target}
	}

	if rt != target {
		rhs = Typecast{From: rhs, Ty: target}
	}

	return lhs, rhs
}

func wideningTarget(a, b BitVector) BitVector {
	width := a.Width
	if b.Width > width {
		width = b.Width
	}

	return BitVector{Width: width, Signed: a.Signed || b.Signed}
}

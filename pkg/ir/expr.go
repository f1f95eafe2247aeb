package ir

import (
	"fmt"
	"math/big"
)

// Expr is the immutable, typed, tagged expression tree consumed by the
// domain.  Every tag the domain can specialise on is a concrete Go type
// implementing this interface; anything else is, by construction, a tag
// the domain does not know about and must treat conservatively.
type Expr interface {
	// Children returns this expression's sub-expressions in evaluation
	// order.  Leaves return nil.
	Children() []Expr
	// Type returns this expression's static type.
	Type() Type
	// Equals performs structural (not pointer) equality.
	Equals(other Expr) bool
	fmt.Stringer
}

// ============================================================================
// Symbol
// ============================================================================

// Symbol references a declared program variable.
type Symbol struct {
	ID SymbolID
	Ty Type
}

// Children implements Expr.
func (Symbol) Children() []Expr { return nil }

// Type implements Expr.
func (e Symbol) Type() Type { return e.Ty }

// Equals implements Expr.
func (e Symbol) Equals(other Expr) bool {
	o, ok := other.(Symbol)
	return ok && o.ID == e.ID
}

func (e Symbol) String() string { return fmt.Sprintf("$%d", e.ID) }

// ============================================================================
// ConstantInt
// ============================================================================

// ConstantInt is a literal integer value of a given bit-vector type.
type ConstantInt struct {
	Value *big.Int
	Ty    Type
}

// Children implements Expr.
func (ConstantInt) Children() []Expr { return nil }

// Type implements Expr.
func (e ConstantInt) Type() Type { return e.Ty }

// Equals implements Expr.
func (e ConstantInt) Equals(other Expr) bool {
	o, ok := other.(ConstantInt)
	return ok && e.Value.Cmp(o.Value) == 0
}

func (e ConstantInt) String() string { return e.Value.String() }

// ============================================================================
// ConstantFloat
// ============================================================================

// ConstantFloat is a literal floating-point value.  NaN and the two
// infinities are represented by the IsNaN/IsInf flags rather than by
// trying to encode them in Value, since big.Float has no native NaN.
type ConstantFloat struct {
	Value    *big.Float
	Ty       Type
	IsNaN    bool
	Positive bool // sign of the infinity, when IsInf is true
	IsInf    bool
}

// Children implements Expr.
func (ConstantFloat) Children() []Expr { return nil }

// Type implements Expr.
func (e ConstantFloat) Type() Type { return e.Ty }

// Equals implements Expr.
func (e ConstantFloat) Equals(other Expr) bool {
	o, ok := other.(ConstantFloat)
	if !ok {
		return false
	}

	if e.IsNaN || o.IsNaN {
		return false // NaN is never equal to anything, including itself
	}

	if e.IsInf || o.IsInf {
		return e.IsInf == o.IsInf && e.Positive == o.Positive
	}

	return e.Value.Cmp(o.Value) == 0
}

func (e ConstantFloat) String() string {
	switch {
	case e.IsNaN:
		return "NaN"
	case e.IsInf && e.Positive:
		return "+Inf"
	case e.IsInf:
		return "-Inf"
	default:
		return e.Value.Text('g', -1)
	}
}

// ============================================================================
// Typecast
// ============================================================================

// Typecast converts its argument to a new type.  It is transparent to
// havoc and symbol-lookup traversal (§4.3.2): havocking through a cast
// still reaches the symbols beneath it.
type Typecast struct {
	From Expr
	Ty   Type
}

// Children implements Expr.
func (e Typecast) Children() []Expr { return []Expr{e.From} }

// Type implements Expr.
func (e Typecast) Type() Type { return e.Ty }

// Equals implements Expr.
func (e Typecast) Equals(other Expr) bool {
	o, ok := other.(Typecast)
	return ok && e.From.Equals(o.From) && e.Ty == o.Ty
}

func (e Typecast) String() string { return fmt.Sprintf("(%s)%s", e.Ty, e.From) }

// UnwrapTypecast strips any number of enclosing Typecast nodes, returning
// the first non-cast sub-expression.  Used throughout the domain's
// pattern matching, which is typecast-transparent (§4.3.3).
func UnwrapTypecast(e Expr) Expr {
	for {
		tc, ok := e.(Typecast)
		if !ok {
			return e
		}

		e = tc.From
	}
}

// ============================================================================
// If
// ============================================================================

// If is a ternary expression.  Both branches are live for havoc
// traversal purposes (§4.3.2: "branches of an If are both descended").
type If struct {
	Cond, Then, Else Expr
	Ty               Type
}

// Children implements Expr.
func (e If) Children() []Expr { return []Expr{e.Cond, e.Then, e.Else} }

// Type implements Expr.
func (e If) Type() Type { return e.Ty }

// Equals implements Expr.
func (e If) Equals(other Expr) bool {
	o, ok := other.(If)
	return ok && e.Cond.Equals(o.Cond) && e.Then.Equals(o.Then) && e.Else.Equals(o.Else)
}

func (e If) String() string { return fmt.Sprintf("(%s ? %s : %s)", e.Cond, e.Then, e.Else) }

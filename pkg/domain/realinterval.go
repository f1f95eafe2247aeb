package domain

import (
	"fmt"
	"math/big"

	"github.com/ai-verify/interval-domain/pkg/ir"
)

// RealInterval approximates the set of values a floating-point-typed
// expression may take, over R∞ = R ∪ {-∞,+∞}.  Bounds are stored as
// big.Float at a precision sufficient to represent the source operand
// exactly; the widening step below is the only place rounding occurs,
// and it always rounds outward so the abstraction stays sound across a
// change of the underlying float width (spec.md §4.1).
type RealInterval struct {
	lowerSet bool
	lower    big.Float
	upperSet bool
	upper    big.Float
}

// TopRealInterval returns the unconstrained interval.
func TopRealInterval() *RealInterval {
	return &RealInterval{}
}

// SingletonRealInterval returns the interval [v,v].
func SingletonRealInterval(v *big.Float) *RealInterval {
	p := &RealInterval{lowerSet: true, upperSet: true}
	p.lower.Copy(v)
	p.upper.Copy(v)

	return p
}

// IsTop reports whether this interval carries no information.
func (p *RealInterval) IsTop() bool {
	return !p.lowerSet && !p.upperSet
}

// IsBottom reports whether this interval is inconsistent.
func (p *RealInterval) IsBottom() bool {
	return p.lowerSet && p.upperSet && p.lower.Cmp(&p.upper) > 0
}

// IsSingleton reports whether this interval denotes exactly one value.
func (p *RealInterval) IsSingleton() (*big.Float, bool) {
	if p.lowerSet && p.upperSet && p.lower.Cmp(&p.upper) == 0 {
		return new(big.Float).Copy(&p.lower), true
	}

	return nil, false
}

// LowerBound returns the lower bound and whether it is set.
func (p *RealInterval) LowerBound() (big.Float, bool) { return p.lower, p.lowerSet }

// UpperBound returns the upper bound and whether it is set.
func (p *RealInterval) UpperBound() (big.Float, bool) { return p.upper, p.upperSet }

// Clone returns an independent copy of this interval.
func (p *RealInterval) Clone() *RealInterval {
	q := &RealInterval{lowerSet: p.lowerSet, upperSet: p.upperSet}
	q.lower.Copy(&p.lower)
	q.upper.Copy(&p.upper)

	return q
}

// Equals performs structural equality, treating any two bottom
// intervals as equal.
func (p *RealInterval) Equals(q *RealInterval) bool {
	if p.IsBottom() && q.IsBottom() {
		return true
	}

	if p.lowerSet != q.lowerSet || p.upperSet != q.upperSet {
		return false
	}

	if p.lowerSet && p.lower.Cmp(&q.lower) != 0 {
		return false
	}

	if p.upperSet && p.upper.Cmp(&q.upper) != 0 {
		return false
	}

	return true
}

// Join computes the component-wise weakening of p and q.
func (p *RealInterval) Join(q *RealInterval) *RealInterval {
	r := &RealInterval{}

	if p.lowerSet && q.lowerSet {
		r.lowerSet = true

		if p.lower.Cmp(&q.lower) <= 0 {
			r.lower.Copy(&p.lower)
		} else {
			r.lower.Copy(&q.lower)
		}
	}

	if p.upperSet && q.upperSet {
		r.upperSet = true

		if p.upper.Cmp(&q.upper) >= 0 {
			r.upper.Copy(&p.upper)
		} else {
			r.upper.Copy(&q.upper)
		}
	}

	return r
}

// MakeLeThan tightens the upper bound to min(current upper, c).
func (p *RealInterval) MakeLeThan(c *big.Float) {
	if !p.upperSet || p.upper.Cmp(c) > 0 {
		p.upperSet = true
		p.upper.Copy(c)
	}
}

// MakeGeThan tightens the lower bound to max(current lower, c).
func (p *RealInterval) MakeGeThan(c *big.Float) {
	if !p.lowerSet || p.lower.Cmp(c) < 0 {
		p.lowerSet = true
		p.lower.Copy(c)
	}
}

// ContractRealIntervalLe is the real-valued counterpart of
// ContractIntervalLe, for the constraint a <= b between two
// floating-point-typed symbols.
func ContractRealIntervalLe(a, b *RealInterval) {
	if b.upperSet {
		a.MakeLeThan(&b.upper)
	}

	if a.lowerSet {
		b.MakeGeThan(&a.lower)
	}
}

func (p *RealInterval) String() string {
	if p.IsBottom() {
		return "BOTTOM"
	}

	switch {
	case p.lowerSet && p.upperSet:
		return fmt.Sprintf("[%s, %s]", p.lower.Text('g', -1), p.upper.Text('g', -1))
	case p.lowerSet:
		return fmt.Sprintf("[%s, +inf)", p.lower.Text('g', -1))
	case p.upperSet:
		return fmt.Sprintf("(-inf, %s]", p.upper.Text('g', -1))
	default:
		return "(-inf, +inf)"
	}
}

// IncrementTowardPlusInfinity returns v plus the ulp that ulpAt computes
// for v at the format's fraction width: a value strictly greater than v.
// It is v's next representable neighbour only for a nonzero v that is
// representable in ty and is not a negative power of two; otherwise it
// lies further out, and ty's exponent range is not taken into account.
// Used when a strict lower bound on a symbol (c < x) is turned into the
// non-strict x >= c', and when emitting an enclosing upper bound in
// make_expression.
func IncrementTowardPlusInfinity(v *big.Float, ty ir.FloatBV) *big.Float {
	r := new(big.Float).Copy(v)
	r.Add(r, ulpAt(v, ty.FracBits))

	return r
}

// DecrementTowardMinusInfinity is the symmetric widening for lower
// bounds.
func DecrementTowardMinusInfinity(v *big.Float, ty ir.FloatBV) *big.Float {
	r := new(big.Float).Copy(v)
	r.Sub(r, ulpAt(v, ty.FracBits))

	return r
}

// ulpAt computes the unit-in-the-last-place of v at the given fraction
// width: if v = mant * 2^exp with 0.5 <= |mant| < 1, the ulp is
// 2^(exp-fracBits-1). At v == 0 it returns 2^-fracBits (not the
// format's smallest subnormal), so that nudging away from zero still
// produces a nonzero, strictly-ordered bound.
func ulpAt(v *big.Float, fracBits uint) *big.Float {
	if v.Sign() == 0 {
		return twoPow(-int(fracBits))
	}

	var mant big.Float

	exp := v.MantExp(&mant)

	return twoPow(exp - int(fracBits) - 1)
}

// twoPow returns 2^n as a big.Float, for any (possibly negative) n.
func twoPow(n int) *big.Float {
	return new(big.Float).SetMantExp(big.NewFloat(0.5), n+1)
}

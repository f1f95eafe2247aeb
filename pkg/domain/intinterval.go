package domain

import (
	"fmt"
	"math/big"
)

// IntInterval approximates the set of values an integer-typed expression
// may take as a closed range over Z∞ = Z ∪ {-∞,+∞}.  Bounds are stored as
// arbitrary-precision integers so that strict-comparison nudging near a
// bit-vector type's extrema never wraps (spec.md §8 Boundaries).
//
// lowerSet/upperSet false means the corresponding bound is -∞/+∞, i.e.
// unconstrained on that side.  lowerSet == upperSet == false is top.
type IntInterval struct {
	lowerSet bool
	lower    big.Int
	upperSet bool
	upper    big.Int
}

// TopIntInterval returns the unconstrained interval.
func TopIntInterval() *IntInterval {
	return &IntInterval{}
}

// SingletonIntInterval returns the interval [v,v].
func SingletonIntInterval(v *big.Int) *IntInterval {
	p := &IntInterval{lowerSet: true, upperSet: true}
	p.lower.Set(v)
	p.upper.Set(v)

	return p
}

// IsTop reports whether this interval carries no information.
func (p *IntInterval) IsTop() bool {
	return !p.lowerSet && !p.upperSet
}

// IsBottom reports whether this interval is inconsistent, i.e. its
// bounds (if both present) are crossed.
func (p *IntInterval) IsBottom() bool {
	return p.lowerSet && p.upperSet && p.lower.Cmp(&p.upper) > 0
}

// IsSingleton reports whether this interval denotes exactly one value,
// returning it when so.
func (p *IntInterval) IsSingleton() (*big.Int, bool) {
	if p.lowerSet && p.upperSet && p.lower.Cmp(&p.upper) == 0 {
		v := new(big.Int).Set(&p.lower)
		return v, true
	}

	return nil, false
}

// LowerBound returns the lower bound and whether it is set.
func (p *IntInterval) LowerBound() (big.Int, bool) { return p.lower, p.lowerSet }

// UpperBound returns the upper bound and whether it is set.
func (p *IntInterval) UpperBound() (big.Int, bool) { return p.upper, p.upperSet }

// Clone returns an independent copy of this interval.
func (p *IntInterval) Clone() *IntInterval {
	q := &IntInterval{lowerSet: p.lowerSet, upperSet: p.upperSet}
	q.lower.Set(&p.lower)
	q.upper.Set(&p.upper)

	return q
}

// Equals performs structural equality, treating any two bottom
// intervals as equal regardless of their exact (inconsistent) bounds.
func (p *IntInterval) Equals(q *IntInterval) bool {
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

// Join computes the component-wise weakening of p and q: a bound
// survives only if present on both sides, and then only as the outer
// (looser) of the two.  Returns a fresh interval; does not mutate its
// arguments.
func (p *IntInterval) Join(q *IntInterval) *IntInterval {
	r := &IntInterval{}

	if p.lowerSet && q.lowerSet {
		r.lowerSet = true

		if p.lower.Cmp(&q.lower) <= 0 {
			r.lower.Set(&p.lower)
		} else {
			r.lower.Set(&q.lower)
		}
	}

	if p.upperSet && q.upperSet {
		r.upperSet = true

		if p.upper.Cmp(&q.upper) >= 0 {
			r.upper.Set(&p.upper)
		} else {
			r.upper.Set(&q.upper)
		}
	}

	return r
}

// MakeLeThan tightens the upper bound to min(current upper, c).
func (p *IntInterval) MakeLeThan(c *big.Int) {
	if !p.upperSet || p.upper.Cmp(c) > 0 {
		p.upperSet = true
		p.upper.Set(c)
	}
}

// MakeGeThan tightens the lower bound to max(current lower, c).
func (p *IntInterval) MakeGeThan(c *big.Int) {
	if !p.lowerSet || p.lower.Cmp(c) < 0 {
		p.lowerSet = true
		p.lower.Set(c)
	}
}

// ContractIntervalLe implements the transfer for the constraint a <= b,
// strengthening both operands in place: a's upper bound is tightened
// against b's upper bound, and b's lower bound against a's lower bound.
// It is the only operation that may drive both operands to bottom at
// once, when the implied intersection is empty.
func ContractIntervalLe(a, b *IntInterval) {
	if b.upperSet {
		a.MakeLeThan(&b.upper)
	}

	if a.lowerSet {
		b.MakeGeThan(&a.lower)
	}
}

func (p *IntInterval) String() string {
	if p.IsBottom() {
		return "BOTTOM"
	}

	switch {
	case p.lowerSet && p.upperSet:
		return fmt.Sprintf("[%s, %s]", p.lower.String(), p.upper.String())
	case p.lowerSet:
		return fmt.Sprintf("[%s, +inf)", p.lower.String())
	case p.upperSet:
		return fmt.Sprintf("(-inf, %s]", p.upper.String())
	default:
		return "(-inf, +inf)"
	}
}

package domain

import (
	"fmt"
	"io"
	"sort"

	"github.com/ai-verify/interval-domain/pkg/ir"
)

// Environment is the lattice element the fixed-point engine maintains at
// each program point: a mapping from variable identifiers to numeric
// intervals, plus a global bottom flag.  An identifier absent from both
// maps denotes top for that variable (§3.3's "top-absence convention").
type Environment struct {
	bottom  bool
	intMap  map[ir.SymbolID]*IntInterval
	realMap map[ir.SymbolID]*RealInterval
}

// MakeTop resets this environment to the unconstrained element: both
// maps empty, bottom cleared.
func (e *Environment) MakeTop() {
	e.bottom = false
	e.intMap = nil
	e.realMap = nil
}

// MakeBottom marks this environment unreachable.  The maps are cleared
// since, once bottom, their contents are semantically irrelevant.
func (e *Environment) MakeBottom() {
	e.bottom = true
	e.intMap = nil
	e.realMap = nil
}

// IsBottom is true iff the bottom flag is set, or any interval currently
// tracked is itself internally inconsistent.
func (e *Environment) IsBottom() bool {
	if e.bottom {
		return true
	}

	for _, iv := range e.intMap {
		if iv.IsBottom() {
			return true
		}
	}

	for _, iv := range e.realMap {
		if iv.IsBottom() {
			return true
		}
	}

	return false
}

// Clone returns an independent copy of this environment.
func (e *Environment) Clone() *Environment {
	c := &Environment{bottom: e.bottom}

	if e.intMap != nil {
		c.intMap = make(map[ir.SymbolID]*IntInterval, len(e.intMap))
		for k, v := range e.intMap {
			c.intMap[k] = v.Clone()
		}
	}

	if e.realMap != nil {
		c.realMap = make(map[ir.SymbolID]*RealInterval, len(e.realMap))
		for k, v := range e.realMap {
			c.realMap[k] = v.Clone()
		}
	}

	return c
}

// intInterval returns the (possibly freshly-created top) interval
// tracked for id, auto-vivifying the map entry so callers can tighten it
// in place.
func (e *Environment) intInterval(id ir.SymbolID) *IntInterval {
	if e.intMap == nil {
		e.intMap = make(map[ir.SymbolID]*IntInterval)
	}

	iv, ok := e.intMap[id]
	if !ok {
		iv = TopIntInterval()
		e.intMap[id] = iv
	}

	return iv
}

func (e *Environment) realInterval(id ir.SymbolID) *RealInterval {
	if e.realMap == nil {
		e.realMap = make(map[ir.SymbolID]*RealInterval)
	}

	iv, ok := e.realMap[id]
	if !ok {
		iv = TopRealInterval()
		e.realMap[id] = iv
	}

	return iv
}

// Havoc discards all information about id (resets it to top), for both
// maps since a given SymbolID is only ever tracked in one of them in
// practice but clearing both keeps the operation trivially safe to call
// on a type the caller hasn't checked.
func (e *Environment) Havoc(id ir.SymbolID) {
	delete(e.intMap, id)
	delete(e.realMap, id)
}

// Rename moves the interval (if any) currently held for from onto to,
// discarding any prior binding of to.  This supports the engine's
// function-return handling when a callee's result needs to be carried
// forward under the caller-visible temporary's name (see SPEC_FULL.md
// "Supplemented features").
func (e *Environment) Rename(from, to ir.SymbolID) {
	e.Havoc(to)

	if iv, ok := e.intMap[from]; ok {
		e.intMap[to] = iv
		delete(e.intMap, from)
	}

	if iv, ok := e.realMap[from]; ok {
		e.realMap[to] = iv
		delete(e.realMap, from)
	}
}

// Equals performs structural equality, where "absent" and "top" compare
// equal (§3.3).
func (e *Environment) Equals(o *Environment) bool {
	if e.IsBottom() || o.IsBottom() {
		return e.IsBottom() == o.IsBottom()
	}

	if !intMapsEqual(e.intMap, o.intMap) {
		return false
	}

	return realMapsEqual(e.realMap, o.realMap)
}

func intMapsEqual(a, b map[ir.SymbolID]*IntInterval) bool {
	for k, v := range a {
		if v.IsTop() {
			continue
		}

		if !v.Equals(nonNilInt(b[k])) {
			return false
		}
	}

	for k, v := range b {
		if v.IsTop() {
			continue
		}

		if !v.Equals(nonNilInt(a[k])) {
			return false
		}
	}

	return true
}

func nonNilInt(iv *IntInterval) *IntInterval {
	if iv == nil {
		return TopIntInterval()
	}

	return iv
}

func realMapsEqual(a, b map[ir.SymbolID]*RealInterval) bool {
	for k, v := range a {
		if v.IsTop() {
			continue
		}

		if !v.Equals(nonNilReal(b[k])) {
			return false
		}
	}

	for k, v := range b {
		if v.IsTop() {
			continue
		}

		if !v.Equals(nonNilReal(a[k])) {
			return false
		}
	}

	return true
}

func nonNilReal(iv *RealInterval) *RealInterval {
	if iv == nil {
		return TopRealInterval()
	}

	return iv
}

// Join computes self := self ⊔ other in place and reports whether self
// changed.  If other is bottom this is a no-op; if self is bottom it
// becomes a clone of other.  Otherwise, the result is the variable-wise
// intersection of the two maps' domains, each surviving entry weakened
// by interval join: an identifier present only in self is removed
// (it was top in other, and absence ≡ top is only consistent if
// asymmetric presence collapses to absence).
func (e *Environment) Join(other *Environment) bool {
	before := e.Clone()

	if other.IsBottom() {
		return false
	}

	if e.IsBottom() {
		*e = *other.Clone()
		return !before.Equals(e)
	}

	newInt := make(map[ir.SymbolID]*IntInterval)

	for id, iv := range e.intMap {
		if ov, ok := other.intMap[id]; ok {
			j := iv.Join(ov)
			if !j.IsTop() {
				newInt[id] = j
			}
		}
		// absent from other: was top there, so drop it.
	}

	newReal := make(map[ir.SymbolID]*RealInterval)

	for id, iv := range e.realMap {
		if ov, ok := other.realMap[id]; ok {
			j := iv.Join(ov)
			if !j.IsTop() {
				newReal[id] = j
			}
		}
	}

	e.bottom = false
	e.intMap = newInt
	e.realMap = newReal

	return !before.Equals(e)
}

// MakeExpression reconstructs an IR boolean expression encoding the
// current knowledge about sym, per §4.2:
//   - not tracked, or interval is top -> true
//   - bottom -> false
//   - singleton integer k -> sym = k (after implicit-cast insertion)
//   - otherwise the conjunction of the applicable bounds
//
// Float bounds are widened outward by one ULP before emission so the
// resulting constraint stays sound if evaluated at a different
// precision than ns tracked internally (§4.2, §4.1).
func (e *Environment) MakeExpression(sym ir.SymbolID, ns *ir.Namespace) ir.Expr {
	if e.IsBottom() {
		return ir.FalseExpr()
	}

	ty, found := ns.TypeOf(sym)
	if !found {
		return ir.TrueExpr()
	}

	symExpr := ir.Symbol{ID: sym, Ty: ty}

	switch {
	case ir.IsBVType(ty):
		return e.makeIntExpression(symExpr, ty)
	case ir.IsFloatBVType(ty):
		return e.makeRealExpression(symExpr, ir.AsFloatBVType(ty))
	default:
		return ir.TrueExpr()
	}
}

func (e *Environment) makeIntExpression(symExpr ir.Symbol, ty ir.Type) ir.Expr {
	iv, ok := e.intMap[symExpr.ID]
	if !ok || iv.IsTop() {
		return ir.TrueExpr()
	}

	if iv.IsBottom() {
		return ir.FalseExpr()
	}

	if k, ok := iv.IsSingleton(); ok {
		lhs, rhs := ir.ImplicitTypecastArithmetic(symExpr, ir.FromInteger(k, ty))
		return ir.NewEq(lhs, rhs)
	}

	var conjuncts []ir.Expr

	if lo, set := iv.LowerBound(); set {
		lhs, rhs := ir.ImplicitTypecastArithmetic(ir.FromInteger(&lo, ty), symExpr)
		conjuncts = append(conjuncts, ir.NewLe(lhs, rhs))
	}

	if hi, set := iv.UpperBound(); set {
		lhs, rhs := ir.ImplicitTypecastArithmetic(symExpr, ir.FromInteger(&hi, ty))
		conjuncts = append(conjuncts, ir.NewLe(lhs, rhs))
	}

	return ir.Conjunction(conjuncts)
}

func (e *Environment) makeRealExpression(symExpr ir.Symbol, ty ir.FloatBV) ir.Expr {
	iv, ok := e.realMap[symExpr.ID]
	if !ok || iv.IsTop() {
		return ir.TrueExpr()
	}

	if iv.IsBottom() {
		return ir.FalseExpr()
	}

	var conjuncts []ir.Expr

	if lo, set := iv.LowerBound(); set {
		widened := DecrementTowardMinusInfinity(&lo, ty)
		conjuncts = append(conjuncts, ir.NewLe(ir.FromFloat(widened, ty), symExpr))
	}

	if hi, set := iv.UpperBound(); set {
		widened := IncrementTowardPlusInfinity(&hi, ty)
		conjuncts = append(conjuncts, ir.NewLe(symExpr, ir.FromFloat(widened, ty)))
	}

	return ir.Conjunction(conjuncts)
}

// Output writes one diagnostic line per entry held in either map, in the
// form "name: interval" with the interval in bracket notation (e.g.
// "x: (-inf, 3]"), or a single BOTTOM line if this environment is
// unreachable.  Lines are not written in the "lbound <= name <= ubound"
// form, and entries that are top are not skipped: they print as
// "name: (-inf, +inf)".  Keys are sorted for determinism, integer map
// first, matching the grouping (if not the determinism) of the domain
// this was distilled from.
func (e *Environment) Output(w io.Writer, ns *ir.Namespace) {
	if e.IsBottom() {
		fmt.Fprintln(w, "BOTTOM")
		return
	}

	for _, id := range sortedIntKeys(e.intMap) {
		fmt.Fprintln(w, formatBound(ns.Name(id), e.intMap[id].String()))
	}

	for _, id := range sortedRealKeys(e.realMap) {
		fmt.Fprintln(w, formatBound(ns.Name(id), e.realMap[id].String()))
	}
}

func formatBound(name, interval string) string {
	return fmt.Sprintf("%s: %s", name, interval)
}

func sortedIntKeys(m map[ir.SymbolID]*IntInterval) []ir.SymbolID {
	keys := make([]ir.SymbolID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

func sortedRealKeys(m map[ir.SymbolID]*RealInterval) []ir.SymbolID {
	keys := make([]ir.SymbolID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

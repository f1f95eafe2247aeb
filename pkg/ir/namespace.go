package ir

// SymbolID is an interned handle for a program identifier.  The domain's
// interval maps key on this handle rather than on strings, per the
// "identifiers" design note: no ordering is required by the algorithm,
// only equality and a stable name for diagnostics.
type SymbolID uint32

// Namespace is the opaque symbol table consumed (never constructed) by
// the domain.  It resolves a SymbolID to its declared name and type, and
// is threaded through emission (make_expression) so it can recover a
// symbol's static type.
type Namespace struct {
	names []string
	types []Type
}

// NewNamespace constructs an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{}
}

// Declare interns a fresh symbol with the given name and type, returning
// its handle.
func (n *Namespace) Declare(name string, ty Type) SymbolID {
	id := SymbolID(len(n.names))
	n.names = append(n.names, name)
	n.types = append(n.types, ty)

	return id
}

// Name returns the declared name of a symbol, or "?" if it was never
// declared in this namespace (which the domain must treat as "unknown",
// not as an error — see make_expression's fallback to true_expr).
func (n *Namespace) Name(id SymbolID) string {
	if int(id) < len(n.names) {
		return n.names[id]
	}

	return "?"
}

// TypeOf returns the declared type of a symbol and whether it was found.
func (n *Namespace) TypeOf(id SymbolID) (Type, bool) {
	if int(id) < len(n.types) {
		return n.types[id], true
	}

	return nil, false
}

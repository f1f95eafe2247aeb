package ir

import "strings"

// And represents the conjunction of zero or more boolean expressions.  An
// empty And is the identity for conjunction, i.e. true.
type And struct{ Args []Expr }

// Children implements Expr.
func (e And) Children() []Expr { return e.Args }

// Type implements Expr.
func (And) Type() Type { return Bool{} }

// Equals implements Expr.
func (e And) Equals(other Expr) bool {
	o, ok := other.(And)
	return ok && exprSliceEqual(e.Args, o.Args)
}

func (e And) String() string { return "(" + joinExprs(e.Args, " && ") + ")" }

// Or represents the disjunction of zero or more boolean expressions.  An
// empty Or is the identity for disjunction, i.e. false.
type Or struct{ Args []Expr }

// Children implements Expr.
func (e Or) Children() []Expr { return e.Args }

// Type implements Expr.
func (Or) Type() Type { return Bool{} }

// Equals implements Expr.
func (e Or) Equals(other Expr) bool {
	o, ok := other.(Or)
	return ok && exprSliceEqual(e.Args, o.Args)
}

func (e Or) String() string { return "(" + joinExprs(e.Args, " || ") + ")" }

// Not represents boolean negation.
type Not struct{ Arg Expr }

// Children implements Expr.
func (e Not) Children() []Expr { return []Expr{e.Arg} }

// Type implements Expr.
func (Not) Type() Type { return Bool{} }

// Equals implements Expr.
func (e Not) Equals(other Expr) bool {
	o, ok := other.(Not)
	return ok && e.Arg.Equals(o.Arg)
}

func (e Not) String() string { return "!" + e.Arg.String() }

func exprSliceEqual(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}

	return true
}

func joinExprs(args []Expr, sep string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}

	return strings.Join(parts, sep)
}

package ir

// Simplify is the pure normaliser the domain invokes on guards before
// analysing them (§4.3.3, §4.3.4).  It performs only equivalence-
// preserving rewrites: constant folding of comparisons between two
// integer constants, flattening of nested conjunctions/disjunctions, double-
// negation elimination, and stripping of redundant typecasts.  It never
// consults or mutates an Environment.
func Simplify(e Expr) Expr {
	switch v := e.(type) {
	case Not:
		inner := Simplify(v.Arg)
		if nn, ok := inner.(Not); ok {
			return nn.Arg
		}

		return Not{Arg: inner}
	case And:
		return simplifyAssoc(v.Args, func(e Expr) ([]Expr, bool) {
			a, ok := e.(And)
			return a.Args, ok
		}, func(args []Expr) Expr { return And{Args: args} }, TrueExpr())
	case Or:
		return simplifyAssoc(v.Args, func(e Expr) ([]Expr, bool) {
			o, ok := e.(Or)
			return o.Args, ok
		}, func(args []Expr) Expr { return Or{Args: args} }, FalseExpr())
	case Typecast:
		inner := Simplify(v.From)
		if UnwrapTypecast(inner).Type() == v.Ty {
			return UnwrapTypecast(inner)
		}

		return Typecast{From: inner, Ty: v.Ty}
	case Eq:
		return simplifyCompare(v.X, v.Y, func(c int) bool { return c == 0 }, func(x, y Expr) Expr { return Eq{x, y} })
	case Ne:
		return simplifyCompare(v.X, v.Y, func(c int) bool { return c != 0 }, func(x, y Expr) Expr { return Ne{x, y} })
	case Lt:
		return simplifyCompare(v.X, v.Y, func(c int) bool { return c < 0 }, func(x, y Expr) Expr { return Lt{x, y} })
	case Le:
		return simplifyCompare(v.X, v.Y, func(c int) bool { return c <= 0 }, func(x, y Expr) Expr { return Le{x, y} })
	case Gt:
		return simplifyCompare(v.X, v.Y, func(c int) bool { return c > 0 }, func(x, y Expr) Expr { return Gt{x, y} })
	case Ge:
		return simplifyCompare(v.X, v.Y, func(c int) bool { return c >= 0 }, func(x, y Expr) Expr { return Ge{x, y} })
	default:
		return e
	}
}

// simplifyAssoc flattens nested occurrences of the same associative
// combinator and drops its identity element, e.g. And{x, And{y,z}, true}
// -> And{x,y,z}.
func simplifyAssoc(args []Expr, unwrap func(Expr) ([]Expr, bool), rewrap func([]Expr) Expr, identity Expr) Expr {
	var flat []Expr

	for _, a := range args {
		a = Simplify(a)
		if a.Equals(identity) {
			continue
		}

		if nested, ok := unwrap(a); ok {
			flat = append(flat, nested...)
			continue
		}

		flat = append(flat, a)
	}

	if len(flat) == 1 {
		return flat[0]
	}

	return rewrap(flat)
}

func simplifyCompare(x, y Expr, holds func(int) bool, rewrap func(Expr, Expr) Expr) Expr {
	x, y = Simplify(x), Simplify(y)

	cx, xok := UnwrapTypecast(x).(ConstantInt)
	cy, yok := UnwrapTypecast(y).(ConstantInt)

	if xok && yok {
		if holds(cx.Value.Cmp(cy.Value)) {
			return TrueExpr()
		}

		return FalseExpr()
	}

	return rewrap(x, y)
}

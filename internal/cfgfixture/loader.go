package cfgfixture

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/ai-verify/interval-domain/pkg/cfg"
	"github.com/ai-verify/interval-domain/pkg/ir"
)

// Load reads and decodes a CFG fixture file into a graph and the
// namespace describing its declared symbols.
func Load(path string) (*cfg.Graph, *ir.Namespace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var prog Program
	if err := json.Unmarshal(data, &prog); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	ns := ir.NewNamespace()

	for _, s := range prog.Symbols {
		ns.Declare(s.Name, toType(s.Type))
	}

	nodes := make([]cfg.Node, len(prog.Nodes))

	for i, n := range prog.Nodes {
		instr, err := toInstr(n.Instr, ns)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: node %d: %w", path, n.ID, err)
		}

		succs := make([]ir.NodeID, len(n.Successors))
		for j, s := range n.Successors {
			succs[j] = ir.NodeID(s)
		}

		nodes[i] = cfg.Node{ID: ir.NodeID(n.ID), Instr: instr, Successors: succs}
	}

	return &cfg.Graph{Nodes: nodes, Entry: ir.NodeID(prog.Entry)}, ns, nil
}

func toType(t TypeDef) ir.Type {
	switch t.Kind {
	case "float":
		return ir.FloatBV{ExpBits: t.ExpBits, FracBits: t.FracBits}
	default:
		return ir.BitVector{Width: t.Width, Signed: t.Signed}
	}
}

func toInstr(d InstrDef, ns *ir.Namespace) (ir.Instruction, error) {
	switch d.Kind {
	case "decl":
		ty, ok := ns.TypeOf(ir.SymbolID(d.Symbol))
		if !ok {
			return nil, fmt.Errorf("decl: unknown symbol %d", d.Symbol)
		}

		return ir.Decl{ID: ir.SymbolID(d.Symbol), Ty: ty}, nil
	case "assign":
		ty, ok := ns.TypeOf(ir.SymbolID(d.Target))
		if !ok {
			return nil, fmt.Errorf("assign: unknown target %d", d.Target)
		}

		src, err := toExpr(d.Source, ns)
		if err != nil {
			return nil, err
		}

		return ir.Assign{Target: ir.SymbolID(d.Target), TargetTy: ty, Source: src}, nil
	case "goto":
		guard, err := toExpr(d.Guard, ns)
		if err != nil {
			return nil, err
		}

		return ir.Goto{Guard: guard, TrueTarget: ir.NodeID(d.True), NextTarget: ir.NodeID(d.Next)}, nil
	case "assume":
		guard, err := toExpr(d.Guard, ns)
		if err != nil {
			return nil, err
		}

		return ir.Assume{Guard: guard}, nil
	case "call":
		args := make([]ir.Expr, len(d.Args))

		for i, a := range d.Args {
			e, err := toExpr(&a, ns)
			if err != nil {
				return nil, err
			}

			args[i] = e
		}

		call := ir.FunctionCall{Name: d.Name, Args: args}

		if d.Ret != nil {
			id := ir.SymbolID(*d.Ret)

			ty, ok := ns.TypeOf(id)
			if !ok {
				return nil, fmt.Errorf("call: unknown ret symbol %d", id)
			}

			call.Ret = &id
			call.RetTy = ty
		}

		return call, nil
	case "rename":
		return ir.Rename{From: ir.SymbolID(d.Symbol), To: ir.SymbolID(d.Target)}, nil
	case "nop", "":
		return ir.Nop{}, nil
	default:
		return nil, fmt.Errorf("unknown instruction kind %q", d.Kind)
	}
}

func toExpr(d *ExprDef, ns *ir.Namespace) (ir.Expr, error) {
	if d == nil {
		return nil, fmt.Errorf("missing expression")
	}

	switch d.Kind {
	case "sym":
		ty, ok := ns.TypeOf(ir.SymbolID(d.Sym))
		if !ok {
			return nil, fmt.Errorf("symbol: unknown id %d", d.Sym)
		}

		return ir.Symbol{ID: ir.SymbolID(d.Sym), Ty: ty}, nil
	case "int":
		v, ok := new(big.Int).SetString(d.Int, 10)
		if !ok {
			return nil, fmt.Errorf("int: invalid literal %q", d.Int)
		}

		ty := ir.Type(ir.BitVector{Width: 256, Signed: true})
		if d.Type != nil {
			ty = toType(*d.Type)
		}

		return ir.ConstantInt{Value: v, Ty: ty}, nil
	case "float":
		ty := ir.Type(ir.FloatBV{ExpBits: 11, FracBits: 52})
		if d.Type != nil {
			ty = toType(*d.Type)
		}

		if d.NaN {
			return ir.ConstantFloat{Ty: ty, IsNaN: true}, nil
		}

		if d.Inf {
			return ir.ConstantFloat{Ty: ty, IsInf: true, Positive: d.Pos}, nil
		}

		v, _, err := big.ParseFloat(d.Float, 10, 200, big.ToNearestEven)
		if err != nil {
			return nil, fmt.Errorf("float: invalid literal %q: %w", d.Float, err)
		}

		return ir.ConstantFloat{Value: v, Ty: ty}, nil
	case "typecast":
		from, err := toExpr(d.Arg, ns)
		if err != nil {
			return nil, err
		}

		if d.Type == nil {
			return nil, fmt.Errorf("typecast: missing target type")
		}

		return ir.Typecast{From: from, Ty: toType(*d.Type)}, nil
	case "if":
		cond, err := toExpr(d.Cond, ns)
		if err != nil {
			return nil, err
		}

		then, err := toExpr(d.Then, ns)
		if err != nil {
			return nil, err
		}

		els, err := toExpr(d.Else, ns)
		if err != nil {
			return nil, err
		}

		return ir.If{Cond: cond, Then: then, Else: els, Ty: then.Type()}, nil
	case "eq", "ne", "lt", "le", "gt", "ge":
		x, err := toExpr(d.X, ns)
		if err != nil {
			return nil, err
		}

		y, err := toExpr(d.Y, ns)
		if err != nil {
			return nil, err
		}

		return toComparison(d.Kind, x, y), nil
	case "not":
		arg, err := toExpr(d.Arg, ns)
		if err != nil {
			return nil, err
		}

		return ir.Not{Arg: arg}, nil
	case "and", "or":
		args := make([]ir.Expr, len(d.Args))

		for i := range d.Args {
			e, err := toExpr(&d.Args[i], ns)
			if err != nil {
				return nil, err
			}

			args[i] = e
		}

		if d.Kind == "and" {
			return ir.And{Args: args}, nil
		}

		return ir.Or{Args: args}, nil
	default:
		return nil, fmt.Errorf("unknown expression kind %q", d.Kind)
	}
}

func toComparison(kind string, x, y ir.Expr) ir.Expr {
	switch kind {
	case "eq":
		return ir.Eq{X: x, Y: y}
	case "ne":
		return ir.Ne{X: x, Y: y}
	case "lt":
		return ir.Lt{X: x, Y: y}
	case "le":
		return ir.Le{X: x, Y: y}
	case "gt":
		return ir.Gt{X: x, Y: y}
	default:
		return ir.Ge{X: x, Y: y}
	}
}

package astbuilder

import (
	"github.com/hhramberg/mirc/internal/ast"
	"github.com/hhramberg/mirc/internal/parsetree"
)

// buildExpr folds any parsetree.Expr into its ast.Expr counterpart.
func (b *Builder) buildExpr(e parsetree.Expr) ast.Expr {
	switch n := e.(type) {
	case *parsetree.Comparison:
		return b.buildComparison(n)
	default:
		// Every other Expr implementation (Additive, Multiplicative, Cast,
		// and the Primary variants) is also reachable directly when a
		// caller already unwrapped a Comparison; route it the same way.
		return b.buildExprInner(e)
	}
}

// buildExprInner dispatches the productions below comparison.
func (b *Builder) buildExprInner(e parsetree.Expr) ast.Expr {
	switch n := e.(type) {
	case *parsetree.Additive:
		return b.buildAdditive(n)
	case *parsetree.Multiplicative:
		return b.buildMultiplicative(n)
	case *parsetree.Cast:
		return b.buildCast(n)
	case parsetree.Primary:
		return b.buildPrimary(n)
	default:
		panic("astbuilder: unhandled parsetree.Expr implementation")
	}
}

// buildComparison folds a non-associative comparison: at most one
// comparator between two Additive terms.
func (b *Builder) buildComparison(c *parsetree.Comparison) ast.Expr {
	left := b.buildAdditive(c.Left)
	if c.Op == "" {
		return left
	}
	right := b.buildAdditive(c.Right)
	return ast.NewBinaryOp(c.Tok, c.Op, left, right)
}

// buildAdditive left-folds a flattened operand/op sequence into a
// left-nested chain of BinaryOp nodes: a op0 b op1 c becomes
// BinaryOp(op1, BinaryOp(op0, a, b), c).
func (b *Builder) buildAdditive(a *parsetree.Additive) ast.Expr {
	acc := b.buildMultiplicative(a.Operands[0])
	for i, op := range a.Ops {
		rhs := b.buildMultiplicative(a.Operands[i+1])
		acc = ast.NewBinaryOp(a.Tok, op, acc, rhs)
	}
	return acc
}

func (b *Builder) buildMultiplicative(m *parsetree.Multiplicative) ast.Expr {
	acc := b.buildCast(m.Operands[0])
	for i, op := range m.Ops {
		rhs := b.buildCast(m.Operands[i+1])
		acc = ast.NewBinaryOp(m.Tok, op, acc, rhs)
	}
	return acc
}

// buildCast left-folds a flattened "as T1 as T2 ..." suffix chain into
// nested Cast nodes: (((primary as T1) as T2) as T3).
func (b *Builder) buildCast(c *parsetree.Cast) ast.Expr {
	acc := b.buildPrimary(c.Primary)
	for _, tn := range c.Types {
		acc = ast.NewCast(c.Tok, acc, b.buildTypeAnnot(tn))
	}
	return acc
}

func (b *Builder) buildPrimary(p parsetree.Primary) ast.Expr {
	switch n := p.(type) {
	case *parsetree.IntLit:
		return ast.NewIntLiteral(n.Tok, n.Value)
	case *parsetree.DecLit:
		return ast.NewDecLiteral(n.Tok, n.Value)
	case *parsetree.ArrayLit:
		elems := make([]ast.Expr, 0, len(n.Elements))
		for _, el := range n.Elements {
			elems = append(elems, b.buildExpr(el))
		}
		return ast.NewArrayLiteral(n.Tok, elems)
	case *parsetree.Ident:
		return ast.NewVarRef(n.Tok, n.Name)
	case *parsetree.IndexRef:
		return ast.NewArrayRef(n.Tok, n.Name, b.buildExpr(n.Index))
	case *parsetree.CallRef:
		args := make([]ast.Expr, 0, len(n.Args))
		for _, a := range n.Args {
			args = append(args, b.buildExpr(a))
		}
		return ast.NewCall(n.Tok, n.Name, args)
	case *parsetree.Paren:
		return b.buildExpr(n.Inner)
	default:
		panic("astbuilder: unhandled parsetree.Primary implementation")
	}
}

package astbuilder

import (
	"github.com/hhramberg/mirc/internal/ast"
	"github.com/hhramberg/mirc/internal/parsetree"
	"github.com/hhramberg/mirc/internal/token"
)

// stmtTok extracts the anchoring token of a parse-level statement, used to
// give the folded Program/Block nodes a stable anchor token.
func stmtTok(s parsetree.Stmt) token.Token {
	switch n := s.(type) {
	case *parsetree.VarDecl:
		return n.Tok
	case *parsetree.ArrayDecl:
		return n.Tok
	case *parsetree.Assignment:
		return n.Tok
	case *parsetree.If:
		return n.Tok
	case *parsetree.For:
		return n.Tok
	case *parsetree.FunctionDef:
		return n.Tok
	case *parsetree.Return:
		return n.Tok
	case *parsetree.ExprStmt:
		return n.Tok
	case *parsetree.Block:
		return n.Tok
	default:
		return token.Token{}
	}
}

func (b *Builder) buildBlock(pt *parsetree.Block) *ast.Block {
	stmts := make([]ast.Stmt, 0, len(pt.Statements))
	for _, s := range pt.Statements {
		stmts = append(stmts, b.buildStmt(s))
	}
	return ast.NewBlock(pt.Tok, stmts)
}

func (b *Builder) buildTypeAnnot(tn parsetree.TypeName) ast.TypeAnnot {
	return ast.TypeAnnot{Tok: tn.Tok, Name: tn.Name, Size: tn.Size}
}

func (b *Builder) buildStmt(s parsetree.Stmt) ast.Stmt {
	switch n := s.(type) {
	case *parsetree.Block:
		return b.buildBlock(n)
	case *parsetree.VarDecl:
		var declared *ast.TypeAnnot
		if n.Type != nil {
			ta := b.buildTypeAnnot(*n.Type)
			declared = &ta
		}
		var init ast.Expr
		if n.Init != nil {
			init = b.buildExpr(n.Init)
		}
		return ast.NewVarDecl(n.Tok, n.Name, declared, init)
	case *parsetree.ArrayDecl:
		var init ast.Expr
		if n.Init != nil {
			init = b.buildExpr(n.Init)
		}
		return ast.NewArrayDecl(n.Tok, n.Name, b.buildTypeAnnot(n.Elem), n.Size, init)
	case *parsetree.Assignment:
		return ast.NewAssignment(n.Tok, n.Target, b.buildExpr(n.Value))
	case *parsetree.If:
		var els *ast.Block
		if n.Else != nil {
			els = b.buildBlock(n.Else)
		}
		return ast.NewIf(n.Tok, b.buildExpr(n.Cond), b.buildBlock(n.Then), els)
	case *parsetree.For:
		return ast.NewFor(n.Tok, b.buildExpr(n.Cond), b.buildBlock(n.Body))
	case *parsetree.FunctionDef:
		params := make([]ast.Param, 0, len(n.Params))
		for _, p := range n.Params {
			params = append(params, ast.Param{Name: p.Name, Type: b.buildTypeAnnot(p.Type)})
		}
		return ast.NewFunctionDef(n.Tok, n.Name, params, b.buildTypeAnnot(n.ReturnType), b.buildBlock(n.Body))
	case *parsetree.Return:
		var value ast.Expr
		if n.Value != nil {
			value = b.buildExpr(n.Value)
		}
		return ast.NewReturn(n.Tok, value)
	case *parsetree.ExprStmt:
		var value ast.Expr
		if n.Value != nil {
			value = b.buildExpr(n.Value)
		}
		return ast.NewExprStatement(n.Tok, value)
	default:
		// Unreachable for any tree produced by internal/parser: every
		// parsetree.Stmt implementation is handled above.
		panic("astbuilder: unhandled parsetree.Stmt implementation")
	}
}

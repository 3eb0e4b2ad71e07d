// Package parser is a recursive-descent implementation of the grammar
// summarized in spec.md §6.1. Like the lexer, it is an external
// collaborator per spec.md §1 — included so the pipeline is runnable end to
// end. Syntax errors are reported to the shared diagnostics.Sink as raw
// messages (spec.md's diagnostic catalog is scoped to semantic/MIR-stage
// errors, so syntax errors use ReportRaw rather than a catalog code).
package parser

import (
	"strconv"

	"github.com/hhramberg/mirc/internal/diagnostics"
	"github.com/hhramberg/mirc/internal/parsetree"
	"github.com/hhramberg/mirc/internal/token"
)

// Parser turns a token stream into a parsetree.Program.
type Parser struct {
	toks []token.Token
	pos  int
	sink *diagnostics.Sink
}

// New creates a Parser over toks (as produced by lexer.All), reporting
// syntax errors into sink.
func New(toks []token.Token, sink *diagnostics.Sink) *Parser {
	return &Parser{toks: toks, sink: sink}
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[p.pos]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) at(k token.Kind) bool { return p.cur().Kind == k }

func (p *Parser) expect(k token.Kind) token.Token {
	if p.cur().Kind != k {
		t := p.cur()
		span := t.Span()
		p.sink.ReportRaw("expected "+k.String()+", got "+t.Kind.String(), diagnostics.SeverityError, &span)
		return t
	}
	return p.advance()
}

// ParseProgram parses the entire token stream into a Program.
func (p *Parser) ParseProgram() *parsetree.Program {
	prog := &parsetree.Program{}
	for !p.at(token.EOF) {
		prog.Statements = append(prog.Statements, p.parseStatement())
	}
	return prog
}

func (p *Parser) parseStatement() parsetree.Stmt {
	switch p.cur().Kind {
	case token.VAR:
		return p.parseVarOrArrayDecl()
	case token.IF:
		return p.parseIf()
	case token.FOR:
		return p.parseFor()
	case token.FN:
		return p.parseFunctionDef()
	case token.RETURN:
		return p.parseReturn()
	case token.LBRACE:
		return p.parseBlock()
	case token.IDENT:
		// Disambiguate "name = expr;" (assignment) from an expression
		// statement starting with an identifier, by lookahead.
		if p.toks[p.pos+1].Kind == token.ASSIGN {
			return p.parseAssignment()
		}
		return p.parseExprStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseBlock() *parsetree.Block {
	tok := p.expect(token.LBRACE)
	b := &parsetree.Block{Tok: tok}
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		b.Statements = append(b.Statements, p.parseStatement())
	}
	p.expect(token.RBRACE)
	return b
}

func (p *Parser) parseTypeName() parsetree.TypeName {
	tok := p.expect(token.IDENT)
	tn := parsetree.TypeName{Tok: tok, Name: tok.Lexeme}
	if p.at(token.LBRACKET) {
		p.advance()
		szTok := p.expect(token.INT)
		sz, _ := strconv.Atoi(szTok.Lexeme)
		p.expect(token.RBRACKET)
		tn.Size = &sz
	}
	return tn
}

// parseVarOrArrayDecl parses "var name typeAnnot? (= expr)? ;" per §6.1's
// varDecl and arrayDecl productions, disambiguated by the bracketed-array
// form of the type annotation.
func (p *Parser) parseVarOrArrayDecl() parsetree.Stmt {
	tok := p.expect(token.VAR)
	nameTok := p.expect(token.IDENT)

	var tn *parsetree.TypeName
	if p.at(token.COLON) {
		p.advance()
		t := p.parseTypeName()
		tn = &t
	}

	if tn != nil && tn.IsArray() {
		var init parsetree.Expr
		if p.at(token.ASSIGN) {
			p.advance()
			init = p.parseExpr()
		}
		p.expect(token.SEMI)
		return &parsetree.ArrayDecl{Tok: tok, Name: nameTok.Lexeme, Elem: parsetree.TypeName{Tok: tn.Tok, Name: tn.Name}, Size: *tn.Size, Init: init}
	}

	var init parsetree.Expr
	if p.at(token.ASSIGN) {
		p.advance()
		init = p.parseExpr()
	}
	p.expect(token.SEMI)
	return &parsetree.VarDecl{Tok: tok, Name: nameTok.Lexeme, Type: tn, Init: init}
}

func (p *Parser) parseAssignment() *parsetree.Assignment {
	nameTok := p.expect(token.IDENT)
	p.expect(token.ASSIGN)
	value := p.parseExpr()
	p.expect(token.SEMI)
	return &parsetree.Assignment{Tok: nameTok, Target: nameTok.Lexeme, Value: value}
}

func (p *Parser) parseIf() *parsetree.If {
	tok := p.expect(token.IF)
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	then := p.parseBlock()
	var els *parsetree.Block
	if p.at(token.ELSE) {
		p.advance()
		els = p.parseBlock()
	}
	return &parsetree.If{Tok: tok, Cond: cond, Then: then, Else: els}
}

func (p *Parser) parseFor() *parsetree.For {
	tok := p.expect(token.FOR)
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	body := p.parseBlock()
	return &parsetree.For{Tok: tok, Cond: cond, Body: body}
}

func (p *Parser) parseFunctionDef() *parsetree.FunctionDef {
	tok := p.expect(token.FN)
	nameTok := p.expect(token.IDENT)
	p.expect(token.LPAREN)
	var params []parsetree.Param
	for !p.at(token.RPAREN) {
		pNameTok := p.expect(token.IDENT)
		p.expect(token.COLON)
		pType := p.parseTypeName()
		params = append(params, parsetree.Param{Name: pNameTok.Lexeme, Type: pType})
		if p.at(token.COMMA) {
			p.advance()
		}
	}
	p.expect(token.RPAREN)
	p.expect(token.COLON)
	ret := p.parseTypeName()
	body := p.parseBlock()
	return &parsetree.FunctionDef{Tok: tok, Name: nameTok.Lexeme, Params: params, ReturnType: ret, Body: body}
}

func (p *Parser) parseReturn() *parsetree.Return {
	tok := p.expect(token.RETURN)
	var value parsetree.Expr
	if !p.at(token.SEMI) {
		value = p.parseExpr()
	}
	p.expect(token.SEMI)
	return &parsetree.Return{Tok: tok, Value: value}
}

func (p *Parser) parseExprStmt() *parsetree.ExprStmt {
	tok := p.cur()
	var value parsetree.Expr
	if !p.at(token.SEMI) {
		value = p.parseExpr()
	}
	p.expect(token.SEMI)
	return &parsetree.ExprStmt{Tok: tok, Value: value}
}

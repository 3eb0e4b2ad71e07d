package parser

import (
	"strconv"

	"github.com/hhramberg/mirc/internal/parsetree"
	"github.com/hhramberg/mirc/internal/token"
)

var comparisonOps = map[token.Kind]string{
	token.EQ: "==", token.NEQ: "!=",
	token.LT: "<", token.GT: ">", token.LE: "<=", token.GE: ">=",
}

var additiveOps = map[token.Kind]string{token.PLUS: "+", token.MINUS: "-"}

var multiplicativeOps = map[token.Kind]string{token.STAR: "*", token.SLASH: "/"}

// parseExpr implements §6.1's `expr := comparison`.
func (p *Parser) parseExpr() parsetree.Expr {
	return p.parseComparison()
}

// parseComparison implements the non-associative comparison production: at
// most one comparator between two additive terms.
func (p *Parser) parseComparison() *parsetree.Comparison {
	tok := p.cur()
	left := p.parseAdditive()
	c := &parsetree.Comparison{Tok: tok, Left: left}
	if op, ok := comparisonOps[p.cur().Kind]; ok {
		p.advance()
		c.Op = op
		c.Right = p.parseAdditive()
	}
	return c
}

// parseAdditive implements the flattened `additive := multiplicative
// (('+'|'-') multiplicative)*` production: it does NOT fold left-to-right
// here — that's the AST builder's job (spec.md §4.3) — it only collects the
// operand/operator sequence.
func (p *Parser) parseAdditive() *parsetree.Additive {
	tok := p.cur()
	a := &parsetree.Additive{Tok: tok}
	a.Operands = append(a.Operands, p.parseMultiplicative())
	for {
		op, ok := additiveOps[p.cur().Kind]
		if !ok {
			break
		}
		p.advance()
		a.Ops = append(a.Ops, op)
		a.Operands = append(a.Operands, p.parseMultiplicative())
	}
	return a
}

func (p *Parser) parseMultiplicative() *parsetree.Multiplicative {
	tok := p.cur()
	m := &parsetree.Multiplicative{Tok: tok}
	m.Operands = append(m.Operands, p.parseCast())
	for {
		op, ok := multiplicativeOps[p.cur().Kind]
		if !ok {
			break
		}
		p.advance()
		m.Ops = append(m.Ops, op)
		m.Operands = append(m.Operands, p.parseCast())
	}
	return m
}

// parseCast implements `cast := primary ('as' typeName)*`, again leaving the
// left-to-right fold to the AST builder.
func (p *Parser) parseCast() *parsetree.Cast {
	tok := p.cur()
	c := &parsetree.Cast{Tok: tok, Primary: p.parsePrimary()}
	for p.at(token.AS) {
		p.advance()
		c.Types = append(c.Types, p.parseTypeName())
	}
	return c
}

func (p *Parser) parsePrimary() parsetree.Primary {
	tok := p.cur()
	switch tok.Kind {
	case token.INT:
		p.advance()
		v, _ := strconv.ParseInt(tok.Lexeme, 10, 64)
		return &parsetree.IntLit{Tok: tok, Value: v}
	case token.DEC:
		p.advance()
		v, _ := strconv.ParseFloat(tok.Lexeme, 64)
		return &parsetree.DecLit{Tok: tok, Value: v}
	case token.LBRACKET:
		return p.parseArrayLit()
	case token.LPAREN:
		p.advance()
		inner := p.parseExpr()
		p.expect(token.RPAREN)
		return &parsetree.Paren{Tok: tok, Inner: inner}
	case token.IDENT:
		p.advance()
		switch p.cur().Kind {
		case token.LBRACKET:
			p.advance()
			idx := p.parseExpr()
			p.expect(token.RBRACKET)
			return &parsetree.IndexRef{Tok: tok, Name: tok.Lexeme, Index: idx}
		case token.LPAREN:
			p.advance()
			var args []parsetree.Expr
			for !p.at(token.RPAREN) {
				args = append(args, p.parseExpr())
				if p.at(token.COMMA) {
					p.advance()
				}
			}
			p.expect(token.RPAREN)
			return &parsetree.CallRef{Tok: tok, Name: tok.Lexeme, Args: args}
		default:
			return &parsetree.Ident{Tok: tok, Name: tok.Lexeme}
		}
	default:
		p.advance()
		return &parsetree.Ident{Tok: tok, Name: tok.Lexeme}
	}
}

// parseArrayLit parses a bracketed sequence of expressions: '[' (expr
// (',' expr)*)? ']'. Not in §6.1's grammar summary; see parsetree.ArrayLit.
func (p *Parser) parseArrayLit() *parsetree.ArrayLit {
	tok := p.expect(token.LBRACKET)
	lit := &parsetree.ArrayLit{Tok: tok}
	for !p.at(token.RBRACKET) && !p.at(token.EOF) {
		lit.Elements = append(lit.Elements, p.parseExpr())
		if p.at(token.COMMA) {
			p.advance()
		}
	}
	p.expect(token.RBRACKET)
	return lit
}

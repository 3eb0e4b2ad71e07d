package lexer

import (
	"testing"

	"github.com/hhramberg/mirc/internal/token"
)

func TestNextTokenCoversDeclarationAndCall(t *testing.T) {
	input := `var x: int = 40 + 2; print(x);`
	want := []token.Kind{
		token.VAR, token.IDENT, token.COLON, token.IDENT, token.ASSIGN,
		token.INT, token.PLUS, token.INT, token.SEMI,
		token.IDENT, token.LPAREN, token.IDENT, token.RPAREN, token.SEMI,
		token.EOF,
	}
	l := New(input)
	for i, k := range want {
		tok := l.NextToken()
		if tok.Kind != k {
			t.Fatalf("token %d: got %s, want %s (lexeme %q)", i, tok.Kind, k, tok.Lexeme)
		}
	}
}

func TestNextTokenTracksLineAndColumn(t *testing.T) {
	input := "var x;\nvar y;"
	toks := All(input)
	var secondVar token.Token
	count := 0
	for _, tok := range toks {
		if tok.Kind == token.VAR {
			count++
			if count == 2 {
				secondVar = tok
			}
		}
	}
	if secondVar.Line != 2 {
		t.Fatalf("expected second 'var' on line 2, got %d", secondVar.Line)
	}
}

func TestSkipsLineComments(t *testing.T) {
	toks := All("var x; // trailing comment\nvar y;")
	count := 0
	for _, tok := range toks {
		if tok.Kind == token.VAR {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected 2 'var' tokens, got %d", count)
	}
}

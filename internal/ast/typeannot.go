package ast

import "github.com/hhramberg/mirc/internal/token"

// TypeAnnot is the raw, unresolved form of a type as written in source: a
// bare name ("int") or a bracketed array form ("int[4]") per spec.md §4.3's
// grammar note. The analyzer resolves it to a types.Type, reporting
// VARDECL_TYPE_NOT_DEFINED (ErrVarDeclUnknownType) if Name does not name a
// known basic type.
type TypeAnnot struct {
	Tok  token.Token
	Name string
	Size *int // non-nil for the bracketed array form
}

// IsArray reports whether this annotation used the bracketed "T[N]" form.
func (t TypeAnnot) IsArray() bool { return t.Size != nil }

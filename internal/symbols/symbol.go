// Package symbols implements the lexical scope tree and the resolved
// identities (spec.md §3, §4.2) that the semantic analyzer attaches to AST
// reference nodes.
package symbols

import "github.com/hhramberg/mirc/internal/types"

// Kind tags a Symbol's category.
type Kind int

const (
	Variable Kind = iota
	Array
	Function
)

func (k Kind) String() string {
	switch k {
	case Variable:
		return "variable"
	case Array:
		return "array"
	case Function:
		return "function"
	default:
		return "unknown"
	}
}

// Symbol is the resolved identity of a named entity. Two references to the
// same declaration resolve to the same *Symbol pointer, which is what gives
// symbols their identity (spec.md §3: "two references to the same variable
// ... resolve to the same symbol identity").
type Symbol struct {
	Name string
	Kind Kind

	// Type is:
	//   - the declared/inferred type, for Variable
	//   - the full array type (element + size), for Array
	//   - the return type, for Function
	Type types.Type

	// Params holds the function's ordered parameter symbols. Empty for
	// Variable and Array symbols.
	Params []*Symbol

	// Scope is the function's own inner scope (parameters + body locals).
	// Nil for Variable and Array symbols.
	Scope *Scope
}

// ElemType returns the element type of an Array symbol's array type.
func (s *Symbol) ElemType() types.Type {
	if arr, ok := s.Type.(types.Array); ok {
		return arr.Elem
	}
	return nil
}

// Package types represents source-level types (spec.md §3) and translates
// them to the backend type universe (spec.md §4.6).
package types

import "fmt"

// Type is the closed interface implemented by every source-level type.
// Types are value-compared by structure, never by identity.
type Type interface {
	// String returns the canonical name used in diagnostics and MIR dumps.
	String() string
	// Equal reports whether t and other describe the same type structurally.
	Equal(other Type) bool
	isType()
}

// Basic is a scalar type: int, i32, char, float, f32, bool, void.
type Basic struct {
	Kind BasicKind
}

// BasicKind enumerates the scalar type family.
type BasicKind int

const (
	Int BasicKind = iota // 64-bit signed
	I32                  // 32-bit signed
	Char                 // 8-bit
	Float                // 64-bit IEEE
	F32                  // 32-bit IEEE
	Bool
	Void
)

var basicNames = map[BasicKind]string{
	Int:   "int",
	I32:   "i32",
	Char:  "char",
	Float: "float",
	F32:   "f32",
	Bool:  "bool",
	Void:  "void",
}

// basicByName maps the source keyword spelling to its Basic singleton.
var basicByName = map[string]BasicKind{
	"int":   Int,
	"i32":   I32,
	"char":  Char,
	"float": Float,
	"f32":   F32,
	"bool":  Bool,
	"void":  Void,
}

// Lookup resolves a bare type name (e.g. "int") to its Basic type. It
// returns false for any name that is not one of the built-in basic type
// keywords — the analyzer turns that into VARDECL_TYPE_NOT_DEFINED.
func Lookup(name string) (Basic, bool) {
	k, ok := basicByName[name]
	if !ok {
		return Basic{}, false
	}
	return Basic{Kind: k}, true
}

// Named basic type singletons, safe to compare and reuse.
var (
	TInt   = Basic{Kind: Int}
	TI32   = Basic{Kind: I32}
	TChar  = Basic{Kind: Char}
	TFloat = Basic{Kind: Float}
	TF32   = Basic{Kind: F32}
	TBool  = Basic{Kind: Bool}
	TVoid  = Basic{Kind: Void}
)

func (b Basic) isType() {}
func (b Basic) String() string {
	if name, ok := basicNames[b.Kind]; ok {
		return name
	}
	return fmt.Sprintf("basic(%d)", int(b.Kind))
}
func (b Basic) Equal(other Type) bool {
	o, ok := other.(Basic)
	return ok && o.Kind == b.Kind
}

// IsInteger reports whether b is one of the integer kinds (int, i32, char,
// bool is deliberately excluded: bool is never an arithmetic operand).
func (b Basic) IsInteger() bool {
	switch b.Kind {
	case Int, I32, Char:
		return true
	default:
		return false
	}
}

// IsFloat reports whether b is one of the floating-point kinds.
func (b Basic) IsFloat() bool {
	return b.Kind == Float || b.Kind == F32
}

// IsNumeric reports whether b supports arithmetic operators.
func (b Basic) IsNumeric() bool {
	return b.IsInteger() || b.IsFloat()
}

// Array is a fixed-size array of Elem with compile-time-known Size.
type Array struct {
	Elem Type
	Size int
}

func (a Array) isType() {}
func (a Array) String() string {
	return fmt.Sprintf("%s[%d]", a.Elem.String(), a.Size)
}
func (a Array) Equal(other Type) bool {
	o, ok := other.(Array)
	return ok && o.Size == a.Size && a.Elem.Equal(o.Elem)
}

// Pointer is a pointer-to-T type.
type Pointer struct {
	Elem Type
}

func (p Pointer) isType() {}
func (p Pointer) String() string {
	return p.Elem.String() + "*"
}
func (p Pointer) Equal(other Type) bool {
	o, ok := other.(Pointer)
	return ok && p.Elem.Equal(o.Elem)
}

package symbols

import (
	"testing"

	"github.com/hhramberg/mirc/internal/types"
)

func TestDefineRejectsRedefinitionInSameScope(t *testing.T) {
	s := NewGlobalScope()
	a := &Symbol{Name: "x", Kind: Variable, Type: types.TInt}
	b := &Symbol{Name: "x", Kind: Variable, Type: types.TFloat}
	if !s.Define(a) {
		t.Fatalf("first Define should succeed")
	}
	if s.Define(b) {
		t.Fatalf("second Define of the same name in the same scope must fail")
	}
}

func TestLookupWalksToParent(t *testing.T) {
	root := NewGlobalScope()
	root.Define(&Symbol{Name: "g", Kind: Variable, Type: types.TInt})
	child := NewChild(root)

	sym, ok := child.Lookup("g")
	if !ok || sym.Name != "g" {
		t.Fatalf("expected lookup to find 'g' via parent chain")
	}

	if _, ok := child.LookupCurrent("g"); ok {
		t.Fatalf("LookupCurrent must not see parent-scope symbols")
	}
}

func TestChildScopeCanShadowParent(t *testing.T) {
	root := NewGlobalScope()
	root.Define(&Symbol{Name: "x", Kind: Variable, Type: types.TInt})
	child := NewChild(root)
	if !child.Define(&Symbol{Name: "x", Kind: Variable, Type: types.TFloat}) {
		t.Fatalf("shadowing in a child scope must be allowed")
	}
	sym, _ := child.Lookup("x")
	if !sym.Type.Equal(types.TFloat) {
		t.Fatalf("expected the child scope's definition to shadow the parent's")
	}
}

package runtime

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewSymTab(t *testing.T) {
	symtab := NewSymbolTable()
	if symtab == nil {
		t.Error("no symbol table created")
	}
}

func TestNewSymbol(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if sym == nil {
		t.Error("no symbol created for table")
	}
	if sym.IsBound() {
		t.Errorf("new symbol should not be bound")
	}
}

func TestTwoSymbolsDistinctId(t *testing.T) {
	symtab := NewSymbolTable()
	sym1, _ := symtab.DefineTag("new-sym1")
	sym2, _ := symtab.DefineTag("new-sym2")
	if sym1 == sym2 {
		t.Error("2 symbols with equal name")
	}
	if symtab.Size() != 2 {
		t.Errorf("expected 2 symbols in table, have %d", symtab.Size())
	}
}

func TestResolveTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if s := symtab.ResolveTag(sym.Name()); s == nil {
		t.Error("cannot find stored symbol in table")
	}
}

func TestEmptyTagName(t *testing.T) {
	symtab := NewSymbolTable()
	if tag, old := symtab.DefineTag(""); tag != nil || old != nil {
		t.Error("empty tag name should be rejected")
	}
	if symtab.Size() != 0 {
		t.Errorf("expected empty table, have %d tags", symtab.Size())
	}
}

func TestEachTag(t *testing.T) {
	symtab := NewSymbolTable()
	symtab.DefineTag("a")
	b, _ := symtab.DefineTag("b")
	b.WithValue(1)
	seen := map[string]bool{}
	symtab.Each(func(name string, tag *Tag) {
		if name != tag.Name() {
			t.Errorf("tag %s listed under name %s", tag, name)
		}
		seen[name] = tag.IsBound()
	})
	if len(seen) != 2 || seen["a"] || !seen["b"] {
		t.Errorf("unexpected tags %v", seen)
	}
}

func TestDefineTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if _, old := symtab.DefineTag("new-sym"); old != sym {
		t.Error("symbol should have been replaced")
	}
}

func TestTagValue(t *testing.T) {
	tag := NewTag("x").WithValue(2.5)
	if !tag.IsBound() || tag.Value != 2.5 {
		t.Errorf("expected x bound to 2.5, is %s", tag)
	}
	if tag.String() != "<tag 'x'=2.5>" {
		t.Errorf("unexpected tag string %s", tag)
	}
}

func TestScopeUpsearch(t *testing.T) {
	scopep := NewScope("parent", nil)
	scope := NewScope("current", scopep)
	scopep.DefineTag("new-sym")
	if sym, sc := scope.ResolveTag("new-sym"); sym != nil {
		t.Logf("found symbol '%s' in parent scope, ok\n", sym.Name())
		if sc != scopep {
			t.Errorf("symbol should be reported in scope %s, is in %s", scopep, sc)
		}
	} else {
		t.Fail()
	}
	if sym, sc := scope.ResolveTag("no-sym"); sym != nil || sc != nil {
		t.Errorf("undefined symbol should not resolve")
	}
}

func TestScopeTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arithex.runtime")
	defer teardown()
	//
	st := new(ScopeTree)
	g := st.PushNewScope("globals")
	inner := st.PushNewScope("inner")
	if st.Current() != inner || st.Globals() != g || inner.Parent != g {
		t.Errorf("scope tree is not linked correctly")
	}
	if st.PopScope() != inner || st.Current() != g {
		t.Errorf("pop should return to global scope")
	}
}

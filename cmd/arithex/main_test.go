package main

import (
	"testing"

	"github.com/npillmayer/arithex/expr"
	"github.com/npillmayer/arithex/expr/fp"
	"github.com/npillmayer/arithex/runtime"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pkg/errors"
)

func TestSamples(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arithex.expr")
	defer teardown()
	//
	want := map[string]string{
		"like terms":                    "2.0x",
		"distinct terms":                "7.0x + 9.0y",
		"coefficient and bare variable": "4.0x + x",
		"fusing coefficients":           "8.0z",
		"additive identity":             "x / y",
		"multiplicative identity":       "x + y",
		"annihilation":                  "0.0",
		"squaring":                      "z ^ 2.0",
		"self-division":                 "1.0",
		"zero over zero":                "0.0",
		"power of one":                  "1.0",
		"unit exponent":                 "2.0y",
		"nested":                        "4.0x",
	}
	for _, s := range makeSamples(expr.MinimalFactory{}) {
		simple, err := s.e.Simplify()
		if s.title == "zero to a negative power" {
			if !errors.Is(err, expr.ErrUndefined) {
				t.Errorf("expected ErrUndefined for %s, got %v", s.e, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error %v", s.title, err)
			continue
		}
		if simple.PrettyPrint() != want[s.title] {
			t.Errorf("%s: expected %q, got %q", s.title, want[s.title], simple.PrettyPrint())
		}
	}
}

func TestTreeLabels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arithex.cmd")
	defer teardown()
	gtrace.SyntaxTracer = tracing.Select("arithex.cmd")
	//
	e := makeSamples(expr.MinimalFactory{})[1].e
	if fp.Size(e) != 7 {
		t.Errorf("expected 7 nodes, got %d", fp.Size(e))
	}
	if l := nodeLabel(e); l != "+  (Addition)" {
		t.Errorf("unexpected label %q", l)
	}
	if root := treeFrom(e); root.Text == "" && len(root.Children) == 0 {
		t.Errorf("tree has no content")
	}
}

func TestExecute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arithex.cmd")
	defer teardown()
	gtrace.SyntaxTracer = tracing.Select("arithex.cmd")
	//
	intp := &Intp{samples: makeSamples(expr.MinimalFactory{})}
	if quit, err := intp.Execute([]string{"quit"}); !quit || err != nil {
		t.Errorf("expected quit to end the loop")
	}
	for _, cmd := range [][]string{{"1"}, {"simplify", "2"}, {"tree", "3"}, {"eval", "1", "x=2"}} {
		if _, err := intp.Execute(cmd); err != nil {
			t.Errorf("command %v failed: %v", cmd, err)
		}
	}
	for _, cmd := range [][]string{{"simplify", "99"}, {"tree"}, {"eval", "1"}, {"eval", "1", "x"}, {"eval", "1", "=3"}, {"frobnicate", "1"}} {
		if _, err := intp.Execute(cmd); err == nil {
			t.Errorf("expected command %v to fail", cmd)
		}
	}
	if _, err := intp.Execute([]string{"tree", "14"}); !errors.Is(err, expr.ErrUndefined) {
		t.Errorf("expected tree of sample 14 to report ErrUndefined, got %v", err)
	}
}

func TestBindings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arithex.cmd")
	defer teardown()
	//
	rt := runtime.NewRuntimeEnvironment()
	if b := bindings(rt.ScopeTree.Current()); b != "no bindings" {
		t.Errorf("expected no bindings, got %q", b)
	}
	rt.Bind("y", 2.5)
	rt.Bind("x", 1)
	if b := bindings(rt.ScopeTree.Current()); b != "x=1.0, y=2.5" {
		t.Errorf("expected bindings ordered by name, got %q", b)
	}
}

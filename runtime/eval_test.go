package runtime

import (
	"math"
	"testing"

	"github.com/npillmayer/arithex/expr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

func TestEvaluate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arithex.runtime")
	defer teardown()
	//
	rt := NewRuntimeEnvironment()
	rt.Bind("x", 3)
	rt.Bind("y", 2)
	x, y := expr.NewVariable("x"), expr.NewVariable("y")
	tests := []struct {
		e    expr.Expression
		want float64
	}{
		{expr.NewConstant(1.5), 1.5},
		{x, 3},
		{expr.NewCoefficientVariable(4, y), 8},
		{expr.NewAddition(x, y), 5},
		{expr.NewMultiplication(x, y), 6},
		{expr.NewDivision(x, y), 1.5},
		{expr.NewExponentiation(x, y), 9},
		{expr.NewDivision(expr.NewConstant(1), expr.NewConstant(0)), math.Inf(1)},
		{expr.NewExponentiation(expr.NewConstant(0), expr.NewConstant(-2)), math.Inf(1)},
	}
	for _, test := range tests {
		v, err := rt.Evaluate(test.e)
		if err != nil {
			t.Errorf("evaluation of %s failed: %v", test.e, err)
		} else if v != test.want {
			t.Errorf("%s: expected %v, got %v", test.e, test.want, v)
		}
	}
}

func TestEvaluateUnbound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arithex.runtime")
	defer teardown()
	//
	rt := NewRuntimeEnvironment()
	rt.Bind("y", 1)
	e := expr.NewAddition(
		expr.NewMultiplication(expr.NewVariable("z"), expr.NewVariable("y")),
		expr.NewCoefficientVariable(2, expr.NewVariable("x")),
	)
	v, err := rt.Evaluate(e)
	if err == nil {
		t.Fatalf("expected error for unbound variables, got %v", v)
	}
	if !math.IsNaN(v) {
		t.Errorf("expected NaN as value, got %v", v)
	}
	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors (x and z), got %v", errs)
	}
	for _, e := range errs {
		if !errors.Is(e, ErrUnbound) {
			t.Errorf("expected ErrUnbound, got %v", e)
		}
	}
}

func TestBind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arithex.runtime")
	defer teardown()
	//
	rt := NewRuntimeEnvironment()
	if tag := rt.Bind("", 3); tag != nil {
		t.Errorf("binding an empty name should fail, got %s", tag)
	}
	first := rt.Bind("x", 1)
	second := rt.Bind("x", 2)
	if first == second || rt.ScopeTree.Current().Tags().Size() != 1 {
		t.Errorf("rebinding x should replace its tag")
	}
	if v, ok := rt.Lookup("x"); !ok || v != 2 {
		t.Errorf("expected x = 2, got %v (bound=%v)", v, ok)
	}
}

func TestScopesShadowBindings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arithex.runtime")
	defer teardown()
	//
	rt := NewRuntimeEnvironment()
	x := expr.NewVariable("x")
	rt.Bind("x", 1)
	rt.PushScope("inner")
	rt.Bind("x", 10)
	if v, _ := rt.Evaluate(x); v != 10 {
		t.Errorf("expected inner binding 10, got %v", v)
	}
	rt.PopScope()
	if v, _ := rt.Evaluate(x); v != 1 {
		t.Errorf("expected global binding 1, got %v", v)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic when popping the global scope")
		}
	}()
	rt.PopScope()
}

// Simplification must not change the value of an expression, as long as no
// division by zero is involved.
func TestSimplifyPreservesValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arithex.runtime")
	defer teardown()
	//
	rt := NewRuntimeEnvironment()
	rt.Bind("x", 3)
	rt.Bind("y", -2)
	rt.Bind("z", 0.5)
	x, y, z := expr.NewVariable("x"), expr.NewVariable("y"), expr.NewVariable("z")
	c := func(v float64) expr.Expression { return expr.NewConstant(v) }
	for _, e := range []expr.Expression{
		expr.NewAddition(x, x),
		expr.NewAddition(expr.NewMultiplication(c(7), x), expr.NewMultiplication(c(9), y)),
		expr.NewAddition(expr.NewMultiplication(c(4), x), x),
		expr.NewAddition(expr.NewMultiplication(c(3), z), expr.NewMultiplication(z, c(5))),
		expr.NewMultiplication(z, z),
		expr.NewMultiplication(c(0), expr.NewAddition(x, y)),
		expr.NewDivision(y, y),
		expr.NewExponentiation(expr.NewAddition(x, c(0)), c(1)),
		expr.NewExponentiation(c(0), c(3)),
		expr.NewDivision(expr.NewMultiplication(x, y), expr.NewExponentiation(z, c(0))),
	} {
		s, err := e.Simplify()
		if err != nil {
			t.Fatalf("simplify of %s failed: %v", e, err)
		}
		v1, err1 := rt.Evaluate(e)
		v2, err2 := rt.Evaluate(s)
		if err1 != nil || err2 != nil {
			t.Fatalf("evaluation failed: %v / %v", err1, err2)
		}
		if math.Abs(v1-v2) > 1e-12 {
			t.Errorf("%s = %v, but simplified %s = %v", e, v1, s, v2)
		}
	}
}

package arithex

import "testing"

func TestKindString(t *testing.T) {
	if VariableKind.String() != "Variable" {
		t.Errorf("expected Variable, got %s", VariableKind)
	}
	if Kind(42).String() != "Kind(42)" {
		t.Errorf("expected Kind(42), got %s", Kind(42))
	}
}

func TestKindCategories(t *testing.T) {
	for _, k := range []Kind{VariableKind, ConstantKind, CoefficientVariableKind} {
		if !k.IsLeaf() || k.IsComposite() {
			t.Errorf("expected %s to be a leaf kind", k)
		}
		if k.Operator() != NoOp {
			t.Errorf("leaf kind %s should not have an operator", k)
		}
	}
	for _, k := range []Kind{AdditionKind, MultiplicationKind, DivisionKind, ExponentiationKind} {
		if k.IsLeaf() || !k.IsComposite() {
			t.Errorf("expected %s to be a composite kind", k)
		}
	}
}

func TestOperatorPadding(t *testing.T) {
	if Plus.Padded() != " + " {
		t.Errorf("expected ' + ', got '%s'", Plus.Padded())
	}
	if ExponentiationKind.Operator().Padded() != " ^ " {
		t.Errorf("expected ' ^ ', got '%s'", ExponentiationKind.Operator().Padded())
	}
}

package arithex

import "fmt"

// --- Kinds of expression nodes ---------------------------------------------

// Kind is a category type for expression nodes. Every node of an expression
// tree reports exactly one kind.
type Kind int8

// The kinds of expression nodes. Leaf kinds come first, composite (binary) kinds
// follow.
const (
	NoKind Kind = iota
	VariableKind
	ConstantKind
	CoefficientVariableKind
	AdditionKind
	MultiplicationKind
	DivisionKind
	ExponentiationKind
)

var kindNames = [...]string{
	NoKind:                  "<none>",
	VariableKind:            "Variable",
	ConstantKind:            "Constant",
	CoefficientVariableKind: "CoefficientVariable",
	AdditionKind:            "Addition",
	MultiplicationKind:      "Multiplication",
	DivisionKind:            "Division",
	ExponentiationKind:      "Exponentiation",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsLeaf is true for kinds of terminal nodes, i.e. nodes without children.
func (k Kind) IsLeaf() bool {
	return k == VariableKind || k == ConstantKind || k == CoefficientVariableKind
}

// IsComposite is true for kinds of binary operator nodes.
func (k Kind) IsComposite() bool {
	return k >= AdditionKind && k <= ExponentiationKind
}

// Operator returns the infix operator token for composite kinds. For leaf kinds
// it returns NoOp.
func (k Kind) Operator() Operator {
	switch k {
	case AdditionKind:
		return Plus
	case MultiplicationKind:
		return Times
	case DivisionKind:
		return Over
	case ExponentiationKind:
		return Power
	}
	return NoOp
}

// --- Operators -------------------------------------------------------------

// Operator is an infix operator token of a binary expression.
type Operator string

// Infix operators. Pretty printing pads them with a space on either side.
const (
	NoOp  Operator = ""
	Plus  Operator = "+"
	Times Operator = "*"
	Over  Operator = "/"
	Power Operator = "^"
)

// Padded returns the operator token surrounded by single spaces, as used for
// printing, e.g. " + ".
func (op Operator) Padded() string {
	if op == NoOp {
		return " "
	}
	return " " + string(op) + " "
}

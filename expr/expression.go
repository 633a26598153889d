package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/arithex"
)

// Expression is a node of an arithmetic expression tree.
//
// The set of node types is closed: Variable, Constant, CoefficientVariable,
// Addition, Multiplication, Division and Exponentiation. Clients usually switch
// on the concrete type or on Kind().
type Expression interface {
	Kind() arithex.Kind            // category of this node
	PrettyPrint() string           // render the tree rooted here as text
	Simplify() (Expression, error) // one bottom-up simplification pass
	String() string                // same as PrettyPrint
	isExpression()                 // seal the interface
}

// Compile time checks.
var (
	_ Expression = (*Variable)(nil)
	_ Expression = (*Constant)(nil)
	_ Expression = (*CoefficientVariable)(nil)
	_ Expression = (*Addition)(nil)
	_ Expression = (*Multiplication)(nil)
	_ Expression = (*Division)(nil)
	_ Expression = (*Exponentiation)(nil)
)

// --- Variables --------------------------------------------------------------

// Variable is a named variable, e.g. x, y, z. The name is an opaque identifier.
type Variable struct {
	name string
}

func (v *Variable) isExpression() {}

// Kind is part of interface Expression.
func (v *Variable) Kind() arithex.Kind { return arithex.VariableKind }

// Name returns the identifier of a variable.
func (v *Variable) Name() string { return v.name }

// PrettyPrint renders a variable as its name.
func (v *Variable) PrettyPrint() string { return v.name }

func (v *Variable) String() string { return v.PrettyPrint() }

// Simplify returns v unchanged.
func (v *Variable) Simplify() (Expression, error) { return v, nil }

// --- Constants --------------------------------------------------------------

// Constant is a numeric constant. It may hold any float64, including NaN and
// infinities.
type Constant struct {
	value float64
}

func (c *Constant) isExpression() {}

// Kind is part of interface Expression.
func (c *Constant) Kind() arithex.Kind { return arithex.ConstantKind }

// Value returns the numeric value of a constant.
func (c *Constant) Value() float64 { return c.value }

// PrettyPrint renders a constant with FormatNumber, e.g. "7.0".
func (c *Constant) PrettyPrint() string { return FormatNumber(c.value) }

func (c *Constant) String() string { return c.PrettyPrint() }

// Simplify returns c unchanged.
func (c *Constant) Simplify() (Expression, error) { return c, nil }

// --- Coefficient variables --------------------------------------------------

// CoefficientVariable is the product of a coefficient and a variable, fused into
// a leaf node. It is the result of simplifying 'c * x' and renders as "3.0x".
//
// A CoefficientVariable does not combine with further factors: simplifying
// (3.0x) * (2.0x) will not produce 6.0x^2.
type CoefficientVariable struct {
	coefficient float64
	variable    *Variable
}

func (cv *CoefficientVariable) isExpression() {}

// Kind is part of interface Expression.
func (cv *CoefficientVariable) Kind() arithex.Kind { return arithex.CoefficientVariableKind }

// Coefficient returns the numeric factor.
func (cv *CoefficientVariable) Coefficient() float64 { return cv.coefficient }

// Variable returns the variable factor.
func (cv *CoefficientVariable) Variable() *Variable { return cv.variable }

// PrettyPrint renders the coefficient immediately followed by the variable name.
func (cv *CoefficientVariable) PrettyPrint() string {
	return FormatNumber(cv.coefficient) + cv.variable.PrettyPrint()
}

func (cv *CoefficientVariable) String() string { return cv.PrettyPrint() }

// Simplify returns cv unchanged.
func (cv *CoefficientVariable) Simplify() (Expression, error) { return cv, nil }

// --- Binary operators -------------------------------------------------------

// binary holds the two operands of a composite node. Operands are owned by the
// node; trees never share sub-trees through mutation, as nodes are immutable.
type binary struct {
	left, right Expression
}

func (b binary) print(op arithex.Operator) string {
	return b.left.PrettyPrint() + op.Padded() + b.right.PrettyPrint()
}

// Addition is the sum of two expressions.
type Addition struct {
	binary
}

func (a *Addition) isExpression() {}

// Kind is part of interface Expression.
func (a *Addition) Kind() arithex.Kind { return arithex.AdditionKind }

// Left returns the left summand.
func (a *Addition) Left() Expression { return a.left }

// Right returns the right summand.
func (a *Addition) Right() Expression { return a.right }

// PrettyPrint renders an addition as "l + r".
func (a *Addition) PrettyPrint() string { return a.print(arithex.Plus) }

func (a *Addition) String() string { return a.PrettyPrint() }

// Multiplication is the product of two expressions.
type Multiplication struct {
	binary
}

func (m *Multiplication) isExpression() {}

// Kind is part of interface Expression.
func (m *Multiplication) Kind() arithex.Kind { return arithex.MultiplicationKind }

// Left returns the left factor.
func (m *Multiplication) Left() Expression { return m.left }

// Right returns the right factor.
func (m *Multiplication) Right() Expression { return m.right }

// PrettyPrint renders a multiplication as "l * r". A constant followed by a
// variable is written as a coefficient, "2.0x", as is a CoefficientVariable.
func (m *Multiplication) PrettyPrint() string {
	if _, ok := m.left.(*Constant); ok {
		if _, ok := m.right.(*Variable); ok {
			return m.left.PrettyPrint() + m.right.PrettyPrint()
		}
	}
	return m.print(arithex.Times)
}

func (m *Multiplication) String() string { return m.PrettyPrint() }

// Division is the quotient of two expressions.
type Division struct {
	binary
}

func (d *Division) isExpression() {}

// Kind is part of interface Expression.
func (d *Division) Kind() arithex.Kind { return arithex.DivisionKind }

// Numerator returns the dividend.
func (d *Division) Numerator() Expression { return d.left }

// Denominator returns the divisor.
func (d *Division) Denominator() Expression { return d.right }

// PrettyPrint renders a division as "n / d".
func (d *Division) PrettyPrint() string { return d.print(arithex.Over) }

func (d *Division) String() string { return d.PrettyPrint() }

// Exponentiation raises a base to an exponent.
type Exponentiation struct {
	binary
}

func (x *Exponentiation) isExpression() {}

// Kind is part of interface Expression.
func (x *Exponentiation) Kind() arithex.Kind { return arithex.ExponentiationKind }

// Base returns the base of the power.
func (x *Exponentiation) Base() Expression { return x.left }

// Exponent returns the exponent of the power.
func (x *Exponentiation) Exponent() Expression { return x.right }

// PrettyPrint renders an exponentiation as "b ^ e".
func (x *Exponentiation) PrettyPrint() string { return x.print(arithex.Power) }

func (x *Exponentiation) String() string { return x.PrettyPrint() }

// ---------------------------------------------------------------------------

// Operands returns the children of a composite node, in printing order.
// For leaf nodes it returns (nil, nil).
func Operands(e Expression) (Expression, Expression) {
	switch n := e.(type) {
	case *Addition:
		return n.left, n.right
	case *Multiplication:
		return n.left, n.right
	case *Division:
		return n.left, n.right
	case *Exponentiation:
		return n.left, n.right
	}
	return nil, nil
}

// Equal decides if two expressions are equal for the purpose of simplification.
// Expressions are equal if they render to identical text.
func Equal(a, b Expression) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.PrettyPrint() == b.PrettyPrint()
}

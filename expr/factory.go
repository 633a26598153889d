package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Factory is an interface for constructing expression trees. It decouples
// clients from the concrete node types, so alternative node representations may
// be substituted.
type Factory interface {
	CreateVariable(name string) Expression
	CreateConstant(value float64) Expression
	CreateAddition(left, right Expression) Expression
	CreateMultiplication(left, right Expression) Expression
	CreateDivision(numerator, denominator Expression) Expression
	CreateExponentiation(base, exponent Expression) Expression
}

// MinimalFactory creates the node types of this package, without any
// simplification or validation.
type MinimalFactory struct{}

var _ Factory = MinimalFactory{}

// CreateVariable is part of interface Factory.
func (MinimalFactory) CreateVariable(name string) Expression {
	return NewVariable(name)
}

// CreateConstant is part of interface Factory.
func (MinimalFactory) CreateConstant(value float64) Expression {
	return NewConstant(value)
}

// CreateAddition is part of interface Factory.
func (MinimalFactory) CreateAddition(left, right Expression) Expression {
	return NewAddition(left, right)
}

// CreateMultiplication is part of interface Factory.
func (MinimalFactory) CreateMultiplication(left, right Expression) Expression {
	return NewMultiplication(left, right)
}

// CreateDivision is part of interface Factory.
func (MinimalFactory) CreateDivision(numerator, denominator Expression) Expression {
	return NewDivision(numerator, denominator)
}

// CreateExponentiation is part of interface Factory.
func (MinimalFactory) CreateExponentiation(base, exponent Expression) Expression {
	return NewExponentiation(base, exponent)
}

// --- Constructors ----------------------------------------------------------

// NewVariable creates a variable. Will panic if name is empty.
func NewVariable(name string) *Variable {
	if name == "" {
		panic("variable name may not be empty")
	}
	return &Variable{name: name}
}

// NewConstant creates a numeric constant.
func NewConstant(value float64) *Constant {
	return &Constant{value: value}
}

// NewCoefficientVariable creates a fused leaf coefficient·variable.
// Will panic if v is nil.
func NewCoefficientVariable(coefficient float64, v *Variable) *CoefficientVariable {
	if v == nil {
		panic("coefficient variable needs a variable")
	}
	return &CoefficientVariable{coefficient: coefficient, variable: v}
}

// NewAddition creates the sum left + right.
func NewAddition(left, right Expression) *Addition {
	return &Addition{operands(left, right)}
}

// NewMultiplication creates the product left * right.
func NewMultiplication(left, right Expression) *Multiplication {
	return &Multiplication{operands(left, right)}
}

// NewDivision creates the quotient numerator / denominator.
func NewDivision(numerator, denominator Expression) *Division {
	return &Division{operands(numerator, denominator)}
}

// NewExponentiation creates the power base ^ exponent.
func NewExponentiation(base, exponent Expression) *Exponentiation {
	return &Exponentiation{operands(base, exponent)}
}

// operands panics for nil children. A nil child is a violation of the
// construction contract, not a recoverable error.
func operands(left, right Expression) binary {
	if left == nil || right == nil {
		panic("operand of binary expression may not be nil")
	}
	return binary{left: left, right: right}
}

package main

import (
	"github.com/npillmayer/arithex/expr"
)

// sample is a named expression for demonstration purposes.
type sample struct {
	title string
	e     expr.Expression
}

// makeSamples builds the demo expressions from a small fixed set of variables
// and constants, using an expression factory.
func makeSamples(f expr.Factory) []sample {
	x, y, z := f.CreateVariable("x"), f.CreateVariable("y"), f.CreateVariable("z")
	c := f.CreateConstant
	return []sample{
		{"like terms", f.CreateAddition(x, x)},
		{"distinct terms",
			f.CreateAddition(f.CreateMultiplication(c(7), x), f.CreateMultiplication(c(9), y))},
		{"coefficient and bare variable",
			f.CreateAddition(f.CreateMultiplication(c(4), x), x)},
		{"fusing coefficients",
			f.CreateAddition(f.CreateMultiplication(c(3), z), f.CreateMultiplication(c(5), z))},
		{"additive identity", f.CreateAddition(c(0), f.CreateDivision(x, y))},
		{"multiplicative identity", f.CreateMultiplication(c(1), f.CreateAddition(x, y))},
		{"annihilation", f.CreateMultiplication(c(0), f.CreateAddition(x, y))},
		{"squaring", f.CreateMultiplication(z, z)},
		{"self-division", f.CreateDivision(y, y)},
		{"zero over zero", f.CreateDivision(c(0), c(0))},
		{"power of one", f.CreateExponentiation(c(1), f.CreateAddition(x, z))},
		{"unit exponent", f.CreateExponentiation(f.CreateAddition(y, y), c(1))},
		{"nested", f.CreateDivision(
			f.CreateAddition(f.CreateMultiplication(c(2), x), f.CreateMultiplication(c(2), x)),
			f.CreateExponentiation(x, c(0)))},
		{"zero to a negative power", f.CreateExponentiation(c(0), c(-2))},
	}
}

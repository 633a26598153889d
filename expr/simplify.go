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

// Rewriter is a function
//
//     left × right ↦ expression
//
// i.e., a term rewriting function for the simplified operands of a binary node.
// If the rewriter does not match its input, it returns (nil, nil).
type Rewriter func(left, right Expression) (Expression, error)

// RewriteRule is a named rewriter. The name is used for tracing only.
type RewriteRule struct {
	Name    string
	Rewrite Rewriter
}

// RuleSet is an ordered list of rewrite rules. Order matters: more than one
// rule may match the same operands, and the first one to match wins.
type RuleSet []RewriteRule

// Apply tries all rules in order on a pair of simplified operands. If no rule
// matches, Apply returns the result of rebuild(left, right).
func (rs RuleSet) Apply(kind arithex.Kind, left, right Expression,
	rebuild func(Expression, Expression) Expression) (Expression, error) {
	//
	for _, rule := range rs {
		e, err := rule.Rewrite(left, right)
		if err != nil {
			tracer().Errorf("%s: rule %s failed: %v", kind, rule.Name, err)
			return nil, err
		}
		if e != nil {
			tracer().Debugf("%s: rule %s fired: %s", kind, rule.Name, e)
			return e, nil
		}
	}
	return rebuild(left, right), nil
}

// simplify is called for results of a rewrite which need another pass.
// It calls through the interface, so the rule tables do not form an
// initialization cycle.
func simplify(e Expression) (Expression, error) {
	return e.Simplify()
}

// simplifyOperands simplifies the children of a binary node, left first.
func simplifyOperands(b binary) (Expression, Expression, error) {
	left, err := b.left.Simplify()
	if err != nil {
		return nil, nil, err
	}
	right, err := b.right.Simplify()
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// --- Addition --------------------------------------------------------------

// AdditionRules are the rules for simplifying a + b, in order of precedence.
var AdditionRules = RuleSet{
	{"fuse-like-terms", fuseLikeTerms},
	{"fold-constants", foldSum},
	{"double-equal-terms", doubleEqualTerms},
	{"additive-identity", additiveIdentity},
}

// Simplify simplifies both summands and then applies AdditionRules.
func (a *Addition) Simplify() (Expression, error) {
	l, r, err := simplifyOperands(a.binary)
	if err != nil {
		return nil, err
	}
	return AdditionRules.Apply(arithex.AdditionKind, l, r, func(l, r Expression) Expression {
		return NewAddition(l, r)
	})
}

// multiplicativeTerm decomposes c * t into (c, t). Multiplications with a
// constant left factor and coefficient variables are multiplicative terms.
func multiplicativeTerm(e Expression) (float64, Expression, bool) {
	switch t := e.(type) {
	case *Multiplication:
		if c, ok := constantValue(t.left); ok {
			return c, t.right, true
		}
	case *CoefficientVariable:
		return t.coefficient, t.variable, true
	}
	return 0, nil, false
}

// a·t + b·t  ⇒  (a+b)·t, simplified once more
func fuseLikeTerms(l, r Expression) (Expression, error) {
	lc, lt, lok := multiplicativeTerm(l)
	rc, rt, rok := multiplicativeTerm(r)
	if !lok || !rok || !Equal(lt, rt) {
		return nil, nil
	}
	return simplify(NewMultiplication(NewConstant(lc+rc), lt))
}

func foldSum(l, r Expression) (Expression, error) {
	lc, lok := constantValue(l)
	rc, rok := constantValue(r)
	if lok && rok {
		return NewConstant(lc + rc), nil
	}
	return nil, nil
}

// t + t  ⇒  2·t, not simplified again
func doubleEqualTerms(l, r Expression) (Expression, error) {
	if Equal(l, r) {
		return NewMultiplication(NewConstant(2), l), nil
	}
	return nil, nil
}

func additiveIdentity(l, r Expression) (Expression, error) {
	if IsZero(l) {
		return r, nil
	}
	if IsZero(r) {
		return l, nil
	}
	return nil, nil
}

// --- Multiplication --------------------------------------------------------

// MultiplicationRules are the rules for simplifying a * b, in order of precedence.
var MultiplicationRules = RuleSet{
	{"square-variable", squareVariable},
	{"fold-constants", foldProduct},
	{"annihilation", annihilation},
	{"multiplicative-identity", multiplicativeIdentity},
	{"coefficient-variable", coefficientVariable},
}

// Simplify simplifies both factors and then applies MultiplicationRules.
func (m *Multiplication) Simplify() (Expression, error) {
	l, r, err := simplifyOperands(m.binary)
	if err != nil {
		return nil, err
	}
	return MultiplicationRules.Apply(arithex.MultiplicationKind, l, r, func(l, r Expression) Expression {
		return NewMultiplication(l, r)
	})
}

// x·x  ⇒  x^2, simplified once more
func squareVariable(l, r Expression) (Expression, error) {
	lv, lok := l.(*Variable)
	rv, rok := r.(*Variable)
	if lok && rok && Equal(lv, rv) {
		return simplify(NewExponentiation(lv, NewConstant(2)))
	}
	return nil, nil
}

func foldProduct(l, r Expression) (Expression, error) {
	lc, lok := constantValue(l)
	rc, rok := constantValue(r)
	if lok && rok {
		return NewConstant(lc * rc), nil
	}
	return nil, nil
}

func annihilation(l, r Expression) (Expression, error) {
	if IsZero(l) || IsZero(r) {
		return NewConstant(0), nil
	}
	return nil, nil
}

func multiplicativeIdentity(l, r Expression) (Expression, error) {
	if IsOne(l) {
		return r, nil
	}
	if IsOne(r) {
		return l, nil
	}
	return nil, nil
}

// c·x or x·c  ⇒  fused leaf cx
func coefficientVariable(l, r Expression) (Expression, error) {
	if c, ok := constantValue(l); ok {
		if v, ok := r.(*Variable); ok {
			return NewCoefficientVariable(c, v), nil
		}
	}
	if c, ok := constantValue(r); ok {
		if v, ok := l.(*Variable); ok {
			return NewCoefficientVariable(c, v), nil
		}
	}
	return nil, nil
}

// --- Division --------------------------------------------------------------

// DivisionRules are the rules for simplifying n / d, in order of precedence.
// Division by zero is not special-cased: 0 / 0 simplifies to 0.
var DivisionRules = RuleSet{
	{"zero-numerator", zeroNumerator},
	{"unit-denominator", unitDenominator},
	{"self-division", selfDivision},
}

// Simplify simplifies numerator and denominator and then applies DivisionRules.
func (d *Division) Simplify() (Expression, error) {
	n, den, err := simplifyOperands(d.binary)
	if err != nil {
		return nil, err
	}
	return DivisionRules.Apply(arithex.DivisionKind, n, den, func(n, den Expression) Expression {
		return NewDivision(n, den)
	})
}

func zeroNumerator(n, d Expression) (Expression, error) {
	if IsZero(n) {
		return NewConstant(0), nil
	}
	return nil, nil
}

func unitDenominator(n, d Expression) (Expression, error) {
	if IsOne(d) {
		return n, nil
	}
	return nil, nil
}

func selfDivision(n, d Expression) (Expression, error) {
	if Equal(n, d) {
		return NewConstant(1), nil
	}
	return nil, nil
}

// --- Exponentiation --------------------------------------------------------

// ExponentiationRules are the rules for simplifying b ^ e, in order of precedence.
var ExponentiationRules = RuleSet{
	{"unit-base", unitBase},
	{"zero-exponent", zeroExponent},
	{"zero-base", zeroBase},
	{"unit-exponent", unitExponent},
}

// Simplify simplifies base and exponent and then applies ExponentiationRules.
// It returns an error wrapping ErrUndefined for zero raised to a negative constant.
func (x *Exponentiation) Simplify() (Expression, error) {
	b, e, err := simplifyOperands(x.binary)
	if err != nil {
		return nil, err
	}
	return ExponentiationRules.Apply(arithex.ExponentiationKind, b, e, func(b, e Expression) Expression {
		return NewExponentiation(b, e)
	})
}

func unitBase(b, e Expression) (Expression, error) {
	if IsOne(b) {
		return NewConstant(1), nil
	}
	return nil, nil
}

func zeroExponent(b, e Expression) (Expression, error) {
	if IsZero(e) {
		return NewConstant(1), nil
	}
	return nil, nil
}

// 0^e is only decided for constant exponents; for others no rule applies here
func zeroBase(b, e Expression) (Expression, error) {
	if !IsZero(b) {
		return nil, nil
	}
	if c, ok := constantValue(e); ok {
		if c > 0 {
			return NewConstant(0), nil
		}
		if c < 0 {
			return nil, undefined(b, e)
		}
	}
	return nil, nil
}

func unitExponent(b, e Expression) (Expression, error) {
	if IsOne(e) {
		return b, nil
	}
	return nil, nil
}

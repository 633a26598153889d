package runtime

import (
	"math"

	"github.com/npillmayer/arithex/expr"
	"github.com/npillmayer/arithex/expr/fp"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// ErrUnbound is the cause of evaluation errors for variables without a value.
var ErrUnbound = errors.New("unbound variable")

// Evaluate computes the numeric value of an expression, with variables
// resolved in the current scope.
//
// If any variables of e are unbound, Evaluate returns NaN and an error, which
// combines an error for every unbound variable (see multierr.Errors).
func (rt *Runtime) Evaluate(e expr.Expression) (float64, error) {
	if e == nil {
		return math.NaN(), errors.New("cannot evaluate nil expression")
	}
	var err error
	for _, name := range fp.Variables(e) {
		if _, ok := rt.Lookup(name); !ok {
			err = multierr.Append(err, errors.Wrapf(ErrUnbound, "'%s'", name))
		}
	}
	if err != nil {
		tracer().Errorf("cannot evaluate %s: %v", e, err)
		return math.NaN(), err
	}
	v := rt.eval(e)
	tracer().Debugf("%s => %s", e, expr.FormatNumber(v))
	return v, nil
}

// eval expects all variables to be bound.
func (rt *Runtime) eval(e expr.Expression) float64 {
	switch n := e.(type) {
	case *expr.Constant:
		return n.Value()
	case *expr.Variable:
		v, _ := rt.Lookup(n.Name())
		return v
	case *expr.CoefficientVariable:
		v, _ := rt.Lookup(n.Variable().Name())
		return n.Coefficient() * v
	case *expr.Addition:
		return rt.eval(n.Left()) + rt.eval(n.Right())
	case *expr.Multiplication:
		return rt.eval(n.Left()) * rt.eval(n.Right())
	case *expr.Division:
		return rt.eval(n.Numerator()) / rt.eval(n.Denominator())
	case *expr.Exponentiation:
		return math.Pow(rt.eval(n.Base()), rt.eval(n.Exponent()))
	}
	panic(errors.Errorf("unknown expression node type %T", e))
}

package expr

import (
	"github.com/npillmayer/schuko/gconf"
	"github.com/pkg/errors"
)

// ErrUndefined is returned from Simplify if an expression has no valid numeric
// result. The single condition producing it is zero raised to a negative power.
// Errors returned from Simplify wrap ErrUndefined; test for it with errors.Is.
var ErrUndefined = errors.New("zero raised to a negative power is undefined")

// undefined creates an error for an undefined power base ^ exponent.
// Tracing is left to RuleSet.Apply.
func undefined(base, exponent Expression) error {
	err := errors.Wrapf(ErrUndefined, "cannot simplify %s ^ %s", base, exponent)
	if gconf.GetBool("panic-on-undefined") {
		panic(err)
	}
	return err
}

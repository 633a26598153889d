package expr

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber converts a float to text, the way constants are printed.
//
// Numbers in [10⁻³, 10⁷) are printed in decimal notation, others in scientific
// notation with an 'E' exponent. There is always at least one fractional digit:
//
//     7       →  "7.0"
//     0.5     →  "0.5"
//     1e10    →  "1.0E10"
//     1.5e-5  →  "1.5E-5"
//
// Special values are printed as "NaN", "Infinity" and "-Infinity".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if abs := math.Abs(v); abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		return withFraction(strconv.FormatFloat(v, 'f', -1, 64))
	}
	s := strconv.FormatFloat(v, 'E', -1, 64) // e.g. 1.5E-05
	mantissa, exp := s, ""
	if i := strings.IndexByte(s, 'E'); i >= 0 {
		mantissa, exp = s[:i], s[i+1:]
	}
	sign := ""
	if strings.HasPrefix(exp, "-") {
		sign = "-"
	}
	exp = strings.TrimLeft(exp, "+-0")
	if exp == "" {
		exp = "0"
	}
	return withFraction(mantissa) + "E" + sign + exp
}

func withFraction(s string) string {
	if strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}

// constantValue returns the value of e if e is a constant.
func constantValue(e Expression) (float64, bool) {
	if c, ok := e.(*Constant); ok {
		return c.value, true
	}
	return 0, false
}

// isConstant is true if e is a constant with value v.
func isConstant(e Expression, v float64) bool {
	c, ok := constantValue(e)
	return ok && c == v
}

// IsZero is true if e is the constant 0.0.
func IsZero(e Expression) bool {
	return isConstant(e, 0)
}

// IsOne is true if e is the constant 1.0.
func IsOne(e Expression) bool {
	return isConstant(e, 1)
}

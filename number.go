package safeexpr

import (
	"math"
	"strconv"
	"strings"
)

// Number is an immutable numeric value that is either integer-kinded or
// float-kinded. Operations on two integers stay integer except for /, which
// always produces a float; any float operand promotes the result to float.
// Integer arithmetic has native int64 semantics, including wraparound on
// overflow.
type Number struct {
	f     float64
	i     int64
	exact bool
}

// Int creates an integer-kinded Number.
func Int(v int64) Number {
	return Number{i: v, exact: true}
}

// Float creates a float-kinded Number.
func Float(v float64) Number {
	return Number{f: v}
}

// IsInt reports whether the number is integer-kinded.
func (n Number) IsInt() bool {
	return n.exact
}

// Int64 returns the value as an int64, truncating if the number is
// float-kinded.
func (n Number) Int64() int64 {
	if n.exact {
		return n.i
	}
	return int64(n.f)
}

// Float64 returns the value as a float64.
func (n Number) Float64() float64 {
	if n.exact {
		return float64(n.i)
	}
	return n.f
}

// String formats the number. Float-kinded values always show a decimal point
// or exponent so that the kind is visible.
func (n Number) String() string {
	if n.exact {
		return strconv.FormatInt(n.i, 10)
	}
	s := strconv.FormatFloat(n.f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(n.f, 0) && !math.IsNaN(n.f) {
		s += ".0"
	}
	return s
}

func (n Number) isZero() bool {
	if n.exact {
		return n.i == 0
	}
	return n.f == 0
}

func (n Number) neg() Number {
	if n.exact {
		return Int(-n.i)
	}
	return Float(-n.f)
}

func (n Number) add(m Number) Number {
	if n.exact && m.exact {
		return Int(n.i + m.i)
	}
	return Float(n.Float64() + m.Float64())
}

func (n Number) sub(m Number) Number {
	if n.exact && m.exact {
		return Int(n.i - m.i)
	}
	return Float(n.Float64() - m.Float64())
}

func (n Number) mul(m Number) Number {
	if n.exact && m.exact {
		return Int(n.i * m.i)
	}
	return Float(n.Float64() * m.Float64())
}

// div is true division. The result is always float-kinded, even when both
// operands are integers with an exact quotient.
func (n Number) div(m Number) (Number, error) {
	if m.isZero() {
		return Number{}, &DivisionError{Op: "/"}
	}
	return Float(n.Float64() / m.Float64()), nil
}

// quo is floor division. Two integers yield an integer; otherwise the result
// is the floor of the float quotient.
func (n Number) quo(m Number) (Number, error) {
	if m.isZero() {
		return Number{}, &DivisionError{Op: "//"}
	}
	if n.exact && m.exact {
		q := n.i / m.i
		if n.i%m.i != 0 && (n.i < 0) != (m.i < 0) {
			q--
		}
		return Int(q), nil
	}
	return Float(math.Floor(n.Float64() / m.Float64())), nil
}

// rem is the floored modulo: the sign of a nonzero result follows the
// divisor, so that n == m*(n//m) + n%m.
func (n Number) rem(m Number) (Number, error) {
	if m.isZero() {
		return Number{}, &DivisionError{Op: "%"}
	}
	if n.exact && m.exact {
		r := n.i % m.i
		if r != 0 && (r < 0) != (m.i < 0) {
			r += m.i
		}
		return Int(r), nil
	}
	r := math.Mod(n.Float64(), m.Float64())
	if r != 0 && (r < 0) != (m.Float64() < 0) {
		r += m.Float64()
	}
	return Float(r), nil
}

// pow is exponentiation. An integer base with a non-negative integer exponent
// stays integer, computed exactly by squaring; any float operand or a
// negative integer exponent goes through math.Pow. A negative base with a
// fractional exponent yields NaN, as math.Pow does.
func (n Number) pow(m Number) Number {
	if n.exact && m.exact && m.i >= 0 {
		return Int(ipow(n.i, m.i))
	}
	return Float(math.Pow(n.Float64(), m.Float64()))
}

// ipow computes b**e for e >= 0 by repeated squaring.
func ipow(b, e int64) int64 {
	r := int64(1)
	for e > 0 {
		if e&1 != 0 {
			r *= b
		}
		b *= b
		e >>= 1
	}
	return r
}

// numberFromLiteral converts a literal's text to a Number. The lexer has
// already validated the shape. A literal with a point or exponent is
// float-kinded; a plain integer too large for int64 falls back to float.
func numberFromLiteral(s string) Number {
	if !strings.ContainsAny(s, ".eE") {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(v)
		}
	}
	v, _ := strconv.ParseFloat(s, 64)
	return Float(v)
}

package safeexpr

import (
	"strconv"
	"unicode"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	eofopt   string
	depthopt int
)

// DefaultMaxDepth is the nesting limit used when no MaxDepth option is given.
const DefaultMaxDepth = 512

// parsectx holds general data for parsing.
type parsectx struct {
	// wseof is a string containing the whitespace characters that trigger an
	// EOF token from the lexer.
	wseof string
	// depth is the current subexpression nesting depth, and max is the limit
	// it may not exceed.
	depth, max int
}

// StopOn tells the parser to treat a list of characters as ending the
// expression. Each rune must be a whitespace codepoint. Whitespace does not
// end an expression where a term is expected, e.g. at the beginning of an
// expression or following an operator or parenthesis.
//
// StopOn overrides the effect of any previous StopOn in the parsing options.
// With no arguments, StopOn produces the default termination behavior, which
// is to parse to EOF.
func StopOn(chars ...rune) ParseOption {
	v := make([]rune, 0, len(chars))
	have := func(r rune) bool {
		for _, c := range v {
			if r == c {
				return true
			}
		}
		return false
	}
	for _, r := range chars {
		if !unicode.IsSpace(r) {
			panic("safeexpr: cannot stop on " + strconv.QuoteRune(r))
		}
		if have(r) {
			continue
		}
		v = append(v, r)
	}
	return eofopt(v)
}

func (o eofopt) parseOption(p parsectx) parsectx {
	p.wseof = string(o)
	return p
}

// MaxDepth limits how deeply subexpressions may nest, counting parentheses,
// unary operators, and binary right operands. Parsing deeper input fails with
// a DepthError instead of risking stack exhaustion. n must be positive.
func MaxDepth(n int) ParseOption {
	if n <= 0 {
		panic("safeexpr: non-positive depth limit " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.max = int(o)
	return p
}

package safeexpr

import (
	"io"
	"strings"
)

// Expr   = Term { ('+' | '-') Term }
// Term   = Factor { ('*' | '/' | '//' | '%') Factor }
// Factor = Unary { '**' Unary }        right-associative
// Unary  = ('+' | '-') Unary | Atom
// Atom   = num | '(' Expr ')'

// Expr is a parsed expression that can be evaluated.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an expression so it can be evaluated. The given options are
// applied in order. Parse consumes the entire input up to EOF or a StopOn
// terminator; anything left over after a complete expression is an error.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	scan := lex(src)
	p := parsectx{max: DefaultMaxDepth}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	n, err := parseterm(scan, &p, exprprec)
	if err != nil {
		return nil, err
	}
	tok := scan.must()
	if tok.kind != tokenEOF {
		return nil, itShouldNotHaveEndedThisWay(tok, false)
	}
	if n == nil {
		return nil, &EmptyExpressionError{Col: tok.pos, End: ""}
	}
	return &Expr{n: n}, nil
}

// parseterm parses a single term. If there is no error, then parseterm pushes
// the last token it scans, including EOF. If the input is an empty
// subexpression, the result is nil with no error; callers must create an error
// in contexts where empty subexpressions are illegal.
func parseterm(scan *lexer, p *parsectx, until operator) (*node, error) {
	if p.depth >= p.max {
		return nil, &DepthError{Col: scan.rune, Limit: p.max}
	}
	p.depth++
	defer func() { p.depth-- }()
	n, err := parselhs(scan, p, until)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenOp:
			// Binary operator.
			prec := binop(tok.text)
			if prec.op == nodeNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: false}
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, p, prec)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				// e.g. the ) in "(1+)". parseterm pushed the ending token.
				end := scan.must()
				return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
			}
			n = &node{kind: prec.op, left: n, right: rhs}
		case tokenNum, tokenOpen:
			// A term directly following a term. There is no implicit
			// multiplication; end here and let the caller report the stray
			// token.
			scan.push(tok)
			return n, nil
		case tokenClose, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		default:
			panic("safeexpr: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are unary,
// any encountered token must be valid as the start of a subexpression, and
// whitespace normally lexed as EOF is ignored.
func parselhs(scan *lexer, p *parsectx, until operator) (*node, error) {
	// Don't use EOF whitespace for LHS.
	tok, err := scan.next("")
	if err != nil {
		return nil, err
	}
	var n *node
	switch tok.kind {
	case tokenNum:
		n = &node{kind: nodeNum, val: numberFromLiteral(tok.text)}
	case tokenOp:
		// Unary operator.
		prec := unop(tok.text)
		if prec.op == nodeNone {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		if !prec.moreBinding(until) {
			// x**-y -> x**(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(scan, p, prec)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			end := scan.must()
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		n = &node{kind: prec.op, left: rhs}
	case tokenOpen:
		rhs, err := parseterm(scan, p, exprprec)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		if end.kind != tokenClose {
			return nil, itShouldNotHaveEndedThisWay(end, true)
		}
		if rhs == nil {
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		n = rhs
	case tokenClose:
		// Let the caller decide what to do, since it knows whether an open
		// paren is pending.
		scan.push(tok)
		return nil, nil
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos, End: ""}
	default:
		panic("safeexpr: unknown token: " + tok.String())
	}
	return n, nil
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of a subexpression. open indicates whether an open paren
// was pending.
func itShouldNotHaveEndedThisWay(tok lexToken, open bool) error {
	left := ""
	if open {
		left = "("
	}
	switch tok.kind {
	case tokenEOF:
		// Unexpected EOF implies an open paren that was not closed.
		return &BracketError{Col: tok.pos, Left: left, Right: ""}
	case tokenClose:
		// A close paren here has no pending open paren.
		return &BracketError{Col: tok.pos, Left: "", Right: tok.text}
	default:
		// A number or open paren directly after a complete expression.
		return &TrailingError{Col: tok.pos, Token: tok.text}
	}
}

// String creates a string representation of the parsed expression, with
// parentheses grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	case "//":
		return operator{5, false, nodeQuo}
	case "%":
		return operator{5, false, nodeRem}
	case "**":
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{10, true, nodeNop}
	case "-":
		return operator{10, true, nodeNeg}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}

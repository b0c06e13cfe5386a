package safeexpr

import (
	"io"
	"strconv"
	"strings"
)

// Eval evaluates the expression and returns its value. Evaluation is a pure
// function of the tree: the same expression always yields the same result,
// and an Expr may be evaluated concurrently from any number of goroutines.
func (e *Expr) Eval() (Number, error) {
	return e.n.eval()
}

// eval computes a node's value by post-order walk. The left operand is always
// evaluated before the right, so when both sides could fail, the error is the
// leftmost one.
func (n *node) eval() (Number, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeNop:
		return n.left.eval()
	case nodeNeg:
		v, err := n.left.eval()
		if err != nil {
			return Number{}, err
		}
		return v.neg(), nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeQuo, nodeRem, nodePow:
		l, err := n.left.eval()
		if err != nil {
			return Number{}, err
		}
		r, err := n.right.eval()
		if err != nil {
			return Number{}, err
		}
		switch n.kind {
		case nodeAdd:
			return l.add(r), nil
		case nodeSub:
			return l.sub(r), nil
		case nodeMul:
			return l.mul(r), nil
		case nodeDiv:
			return l.div(r)
		case nodeQuo:
			return l.quo(r)
		case nodeRem:
			return l.rem(r)
		default:
			return l.pow(r), nil
		}
	default:
		// Fail closed. A kind outside the arithmetic set cannot come from the
		// parser, but it must never evaluate to anything.
		return Number{}, &InvalidNodeError{Kind: n.kind.String()}
	}
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner, opts ...ParseOption) (Number, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return Number{}, err
	}
	return e.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ParseOption) (Number, error) {
	return Eval(strings.NewReader(src), opts...)
}

// DivisionError is an error from dividing by zero with /, //, or %.
type DivisionError struct {
	// Op is the operator whose divisor was zero.
	Op string
}

func (err *DivisionError) Error() string {
	return "division by zero in " + strconv.Quote(err.Op)
}

// InvalidNodeError is an error from evaluating a node whose kind is outside
// the arithmetic set. The evaluator refuses such nodes rather than skipping
// them.
type InvalidNodeError struct {
	// Kind names the offending node kind.
	Kind string
}

func (err *InvalidNodeError) Error() string {
	return "cannot evaluate " + err.Kind + " node"
}

package safeexpr

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. The kinds are
// a closed set: literals, unary operators, and binary operators. There is no
// kind for a name, call, or any other construct, so a tree built by the
// parser cannot express one.
type node struct {
	kind nodeKind

	val Number

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push val

	nodeNeg // evaluate left, then negate
	nodeNop // evaluate left (unary plus)

	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, true-divide by right
	nodeQuo // evaluate left, floor-divide by right
	nodeRem // evaluate left, floored modulo by right
	nodePow // evaluate left, exp by right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeNeg:
		return "Neg"
	case nodeNop:
		return "Nop"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	case nodeQuo:
		return "Quo"
	case nodeRem:
		return "Rem"
	case nodePow:
		return "Pow"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// opstr is the source spelling of a binary operator kind. It is the empty
// string for non-binary kinds.
func (k nodeKind) opstr() string {
	switch k {
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	case nodeQuo:
		return "//"
	case nodeRem:
		return "%"
	case nodePow:
		return "**"
	default:
		return ""
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(n.val.String())
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b)
	case nodeNop:
		b.WriteByte('+')
		n.left.fmt(b)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeQuo, nodeRem, nodePow:
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.kind.opstr())
		b.WriteByte(' ')
		n.right.fmt(b)
	default:
		panic("safeexpr: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

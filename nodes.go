package minivac

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	val  float64
	name string

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeConst // push val
	nodeName  // push lookup(name)
	nodeCall  // call name with left as the argument

	nodeFact // factorial of left

	nodeAdd // left + right
	nodeSub // left - right
	nodeMul // left * right
	nodeDiv // left / right
	nodePow // left ^ right
	nodeSci // left * 10^right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeConst:
		return "Const"
	case nodeName:
		return "Name"
	case nodeCall:
		return "Call"
	case nodeFact:
		return "Fact"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	case nodePow:
		return "Pow"
	case nodeSci:
		return "Sci"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// opText is the operator symbol of a binary node kind.
func (k nodeKind) opText() string {
	switch k {
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	case nodePow:
		return "^"
	case nodeSci:
		return "E"
	default:
		panic("minivac: no operator text for " + k.String())
	}
}

// String renders the expression fully parenthesised. It is used to display
// stored function bodies.
func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeConst:
		b.WriteString(strconv.FormatFloat(n.val, 'g', -1, 64))
	case nodeName:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeFact:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString(")!")
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow, nodeSci:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.kind.opText())
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		panic("minivac: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

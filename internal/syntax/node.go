package syntax

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

// tracer traces with key 'starfree.syntax'
func tracer() tracing.Trace {
	return tracing.Select("starfree.syntax")
}

// Op is the variant tag of a syntax tree node.
type Op int

const (
	OpLiteral Op = iota + 1 // single byte
	OpDot                   // any byte
	OpConcat
	OpUnion
	OpStar
)

func (op Op) String() string {
	switch op {
	case OpLiteral:
		return "literal"
	case OpDot:
		return "dot"
	case OpConcat:
		return "concat"
	case OpUnion:
		return "union"
	case OpStar:
		return "star"
	}
	return fmt.Sprintf("op(%d)", int(op))
}

var (
	ErrEmptyPattern    = errors.New("empty pattern")
	ErrEmptyTree       = errors.New("empty syntax tree")
	ErrUnsupportedNode = errors.New("unsupported syntax node")
)

// Node is a node of a regular expression syntax tree. Left is the operand of
// OpStar and the first operand of OpConcat and OpUnion.
type Node struct {
	Op    Op
	Byte  byte // for OpLiteral
	Left  *Node
	Right *Node
}

func Literal(b byte) *Node { return &Node{Op: OpLiteral, Byte: b} }
func Dot() *Node           { return &Node{Op: OpDot} }

func Concat(l, r *Node) *Node { return &Node{Op: OpConcat, Left: l, Right: r} }
func Union(l, r *Node) *Node  { return &Node{Op: OpUnion, Left: l, Right: r} }
func Star(x *Node) *Node      { return &Node{Op: OpStar, Left: x} }

// String renders the tree as a fully parenthesised pattern which Parse reads
// back into an equal tree.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n == nil {
		b.WriteString("∅")
		return
	}
	switch n.Op {
	case OpLiteral:
		b.WriteString(Quote(n.Byte))
	case OpDot:
		b.WriteByte('.')
	case OpConcat:
		b.WriteByte('(')
		n.Left.write(b)
		n.Right.write(b)
		b.WriteByte(')')
	case OpUnion:
		b.WriteByte('(')
		n.Left.write(b)
		b.WriteByte('|')
		n.Right.write(b)
		b.WriteByte(')')
	case OpStar:
		b.WriteByte('(')
		n.Left.write(b)
		b.WriteString(")*")
	default:
		fmt.Fprintf(b, "<%s>", n.Op)
	}
}

// Quote returns the pattern text for a literal byte, escaping metacharacters.
func Quote(c byte) string {
	switch c {
	case '|', '*', '(', ')', '.', '\\':
		return "\\" + string(rune(c))
	}
	return string([]byte{c})
}

// Validate checks that every node carries a known tag and all of its
// operands. The walk keeps its own stack, so deep trees are fine.
func (n *Node) Validate() error {
	if n == nil {
		return ErrEmptyTree
	}
	stack := []*Node{n}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch x.Op {
		case OpLiteral, OpDot:
		case OpConcat, OpUnion:
			if x.Left == nil || x.Right == nil {
				return errors.Wrapf(ErrEmptyTree, "%s node with missing operand", x.Op)
			}
			stack = append(stack, x.Right, x.Left)
		case OpStar:
			if x.Left == nil {
				return errors.Wrap(ErrEmptyTree, "star node with missing operand")
			}
			stack = append(stack, x.Left)
		default:
			return errors.Wrapf(ErrUnsupportedNode, "%s", x.Op)
		}
	}
	return nil
}

// Size returns the number of nodes in the tree.
func (n *Node) Size() int {
	size := 0
	stack := []*Node{n}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if x == nil {
			continue
		}
		size++
		stack = append(stack, x.Left, x.Right)
	}
	return size
}

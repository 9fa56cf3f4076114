// Package formula defines the propositional formula tree.
//
// Nodes are immutable after construction: the parser builds them once
// and every later consumer shares them by reference.
package formula

import (
	"strings"
)

type Node struct {
	Op   Op
	Name string // atom name, OpAtom only

	Left  *Node
	Right *Node // nil for OpNot
}

func Atom(name string) *Node {
	return &Node{Op: OpAtom, Name: name}
}

func Not(x *Node) *Node {
	return &Node{Op: OpNot, Left: x}
}

func And(l, r *Node) *Node {
	return &Node{Op: OpAnd, Left: l, Right: r}
}

func Or(l, r *Node) *Node {
	return &Node{Op: OpOr, Left: l, Right: r}
}

func Impl(l, r *Node) *Node {
	return &Node{Op: OpImpl, Left: l, Right: r}
}

// String renders the canonical concrete syntax: bare atoms, tight
// negation, mandatory parentheses around every binary connective.
func (y *Node) String() string {
	var sb strings.Builder
	y.write(&sb)
	return sb.String()
}

func (y *Node) write(sb *strings.Builder) {
	switch y.Op {
	case OpAtom:
		sb.WriteString(y.Name)
	case OpNot:
		sb.WriteString(y.Op.Symbol())
		y.Left.write(sb)
	case OpAnd, OpOr, OpImpl:
		sb.WriteByte('(')
		y.Left.write(sb)
		sb.WriteString(y.Op.Symbol())
		y.Right.write(sb)
		sb.WriteByte(')')
	default:
		panic("op")
	}
}

// Size is the length of the canonical string in bytes.
func (y *Node) Size() int {
	switch y.Op {
	case OpAtom:
		return len(y.Name)
	case OpNot:
		return len(y.Op.Symbol()) + y.Left.Size()
	default:
		return 2 + len(y.Op.Symbol()) + y.Left.Size() + y.Right.Size()
	}
}

// Equal reports structural equality.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Op != b.Op || a.Name != b.Name {
		return false
	}
	switch a.Op.Arity() {
	case 0:
		return true
	case 1:
		return Equal(a.Left, b.Left)
	default:
		return Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	}
}

// Vars returns the distinct atom names in first-occurrence order.
func (y *Node) Vars() []string {
	var res []string
	seen := map[string]bool{}
	y.vars(seen, &res)
	return res
}

func (y *Node) vars(seen map[string]bool, res *[]string) {
	switch y.Op {
	case OpAtom:
		if !seen[y.Name] {
			seen[y.Name] = true
			*res = append(*res, y.Name)
		}
	case OpNot:
		y.Left.vars(seen, res)
	default:
		y.Left.vars(seen, res)
		y.Right.vars(seen, res)
	}
}

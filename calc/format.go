package calc

import (
	"strings"

	tp "github.com/xlab/treeprint"
)

// Format returns the text of an expression tree, using parentheses only
// where operator precedence requires them. Operations are left-associative,
// so a right operand of equal precedence keeps its parentheses:
//
//     a - (b - c)    (a - b) - c  =>  a - b - c
//
func Format(n Node) string {
	var b strings.Builder
	format(n, &b)
	return b.String()
}

func format(n Node, b *strings.Builder) {
	bin, ok := n.(*BinaryOp)
	if !ok {
		b.WriteString(n.String())
		return
	}
	prec := bin.Op.precedence()
	if l, ok := bin.Left.(*BinaryOp); ok && l.Op.precedence() < prec {
		b.WriteByte('(')
		format(l, b)
		b.WriteByte(')')
	} else {
		format(bin.Left, b)
	}
	op := bin.Op
	right := bin.Right
	if num, ok := right.(*Number); ok && num.Value < 0 && (op == Add || op == Sub) {
		// a + -2px  =>  a - 2px
		op = flip(op)
		right = &Number{Value: -num.Value, Unit: num.Unit}
	}
	b.WriteByte(' ')
	b.WriteString(op.String())
	b.WriteByte(' ')
	if r, ok := right.(*BinaryOp); ok && r.Op.precedence() <= prec {
		b.WriteByte('(')
		format(r, b)
		b.WriteByte(')')
	} else {
		format(right, b)
	}
}

func flip(op Op) Op {
	if op == Add {
		return Sub
	}
	return Add
}

// Dump renders an expression tree for debugging, e.g.
//
//     -
//     └── /
//         ├── -
//         │   ├── 100vw
//         │   └── 64px
//         └── 16
//
func Dump(n Node) string {
	p := tp.New()
	dump(p, n)
	return p.String()
}

func dump(p tp.Tree, n Node) {
	switch x := n.(type) {
	case *BinaryOp:
		branch := p.AddBranch(x.Op.String())
		dump(branch, x.Left)
		dump(branch, x.Right)
	case *Number:
		p.AddNode(x.String())
	case *Leaf:
		p.AddMetaNode("leaf", x.Text)
	}
}

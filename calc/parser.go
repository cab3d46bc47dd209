package calc

import (
	"fmt"
	"strings"
)

// Parse parses arithmetic expression text into an expression tree. The
// text must not include an enclosing calc(); see Reduce for that.
func Parse(text string) (Node, error) {
	toks, err := newScanner(text).scan()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, input: text}
	n, err := p.expression(1)
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.errorf(t, "unexpected %s", t)
	}
	return n, nil
}

type parser struct {
	toks  []token
	at    int
	input string
}

func (p *parser) peek() token {
	return p.toks[p.at]
}

func (p *parser) advance() token {
	t := p.toks[p.at]
	if t.kind != tokEOF {
		p.at++
	}
	return t
}

func (p *parser) errorf(t token, msg string, args ...any) *ParseError {
	return &ParseError{Pos: t.pos, Msg: fmt.Sprintf(msg, args...), Expr: p.input}
}

// expression parses operations with precedence of at least minPrec,
// grouping equal precedences to the left.
func (p *parser) expression(minPrec int) (Node, error) {
	lhs, err := p.operand()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp {
			return lhs, nil
		}
		op := Op(t.text[0])
		if op.precedence() < minPrec {
			return lhs, nil
		}
		p.advance()
		rhs, err := p.expression(op.precedence() + 1)
		if err != nil {
			return nil, err
		}
		lhs = &BinaryOp{Op: op, Left: lhs, Right: rhs}
	}
}

func (p *parser) operand() (Node, error) {
	t := p.advance()
	switch t.kind {
	case tokNumber:
		return &Number{Value: t.value, Unit: t.unit}, nil
	case tokLeaf:
		return &Leaf{Text: t.text}, nil
	case tokLParen:
		n, err := p.expression(1)
		if err != nil {
			return nil, err
		}
		if closing := p.advance(); closing.kind != tokRParen {
			return nil, p.errorf(closing, "expected ')', found %s", closing)
		}
		return n, nil
	}
	return nil, p.errorf(t, "expected operand, found %s", t)
}

// unwrap removes an enclosing calc() from text, if present.
func unwrap(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if len(text) < 6 || !strings.EqualFold(text[:5], "calc(") || text[len(text)-1] != ')' {
		return text, false
	}
	depth := 0
	for i := 4; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(text)-1 {
				return text, false // e.g. calc(1px) + calc(2px)
			}
		}
	}
	if depth != 0 {
		return text, false
	}
	return text[5 : len(text)-1], true
}

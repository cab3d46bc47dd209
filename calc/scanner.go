package calc

import (
	"fmt"
	"strconv"
	"strings"
)

type tokKind int8

const (
	tokEOF tokKind = iota
	tokNumber
	tokLeaf
	tokOp
	tokLParen
	tokRParen
)

func (k tokKind) String() string {
	switch k {
	case tokNumber:
		return "number"
	case tokLeaf:
		return "leaf"
	case tokOp:
		return "operator"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	}
	return "end of expression"
}

type token struct {
	kind  tokKind
	pos   int
	text  string
	value float64 // for numbers
	unit  string  // for numbers
}

func (t token) String() string {
	if t.kind == tokEOF {
		return t.kind.String()
	}
	return fmt.Sprintf("%s %q", t.kind, t.text)
}

// scanner splits an expression into tokens. A sign directly in front of a
// number is part of the number if an operand is expected at that position.
type scanner struct {
	input string
	pos   int
	last  tokKind // kind of the previous token, tokEOF at start
}

func newScanner(input string) *scanner {
	return &scanner{input: input}
}

func (s *scanner) errorf(pos int, format string, args ...any) *ParseError {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...), Expr: s.input}
}

// scan returns all tokens of the input, terminated by a tokEOF token.
func (s *scanner) scan() ([]token, error) {
	var toks []token
	for {
		t, err := s.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
		if t.kind == tokEOF {
			return toks, nil
		}
	}
}

func (s *scanner) expectOperand() bool {
	return s.last == tokEOF || s.last == tokOp || s.last == tokLParen
}

func (s *scanner) next() (token, error) {
	for s.pos < len(s.input) && isSpace(s.input[s.pos]) {
		s.pos++
	}
	if s.pos >= len(s.input) {
		return token{kind: tokEOF, pos: s.pos}, nil
	}
	start := s.pos
	c := s.input[s.pos]
	var t token
	var err error
	switch {
	case c == '(':
		s.pos++
		t = token{kind: tokLParen, pos: start, text: "("}
	case c == ')':
		s.pos++
		t = token{kind: tokRParen, pos: start, text: ")"}
	case isDigit(c) || (c == '.' && isDigit(s.peek(1))):
		t, err = s.number(start)
	case (c == '-' || c == '+') && s.expectOperand() && startsNumber(s.peek(1), s.peek(2)):
		t, err = s.number(start)
	case c == '-' && s.expectOperand() && isNameStart(s.peek(1)):
		t, err = s.leaf(start)
	case c == '+' || c == '-' || c == '*' || c == '/':
		s.pos++
		t = token{kind: tokOp, pos: start, text: string(c)}
	case isNameStart(c):
		t, err = s.leaf(start)
	default:
		return t, s.errorf(start, "unexpected character %q", c)
	}
	if err != nil {
		return t, err
	}
	s.last = t.kind
	return t, nil
}

func (s *scanner) peek(n int) byte {
	if s.pos+n < len(s.input) {
		return s.input[s.pos+n]
	}
	return 0
}

func (s *scanner) number(start int) (token, error) {
	if c := s.input[s.pos]; c == '-' || c == '+' {
		s.pos++
	}
	for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
		s.pos++
	}
	if s.pos < len(s.input) && s.input[s.pos] == '.' {
		s.pos++
		for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
			s.pos++
		}
	}
	numEnd := s.pos
	for s.pos < len(s.input) && (isLetter(s.input[s.pos]) || s.input[s.pos] == '%') {
		s.pos++
	}
	x, err := strconv.ParseFloat(s.input[start:numEnd], 64)
	if err != nil {
		return token{}, s.errorf(start, "malformed number %q", s.input[start:s.pos])
	}
	return token{
		kind:  tokNumber,
		pos:   start,
		text:  s.input[start:s.pos],
		value: x,
		unit:  strings.ToLower(s.input[numEnd:s.pos]),
	}, nil
}

// leaf scans an identifier, including a function call with all of its
// arguments, e.g. "var(--gap, 1rem)".
func (s *scanner) leaf(start int) (token, error) {
	s.pos++
	for s.pos < len(s.input) && isNameChar(s.input[s.pos]) {
		s.pos++
	}
	if s.pos < len(s.input) && s.input[s.pos] == '(' {
		depth := 0
		for ; s.pos < len(s.input); s.pos++ {
			switch s.input[s.pos] {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth == 0 {
				break
			}
		}
		if depth != 0 {
			return token{}, s.errorf(start, "unbalanced parentheses in %q", s.input[start:])
		}
		s.pos++ // closing paren
	}
	return token{kind: tokLeaf, pos: start, text: s.input[start:s.pos]}, nil
}

func startsNumber(c1, c2 byte) bool {
	return isDigit(c1) || (c1 == '.' && isDigit(c2))
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameStart(c byte) bool {
	return isLetter(c) || c == '_' || c == '-' || c >= 0x80
}

func isNameChar(c byte) bool {
	return isNameStart(c) || isDigit(c)
}

// Package seqexpr is a textual front end for seqvec: a small expression
// language over named sequences, sequence literals like (1,2,3), and
// broadcasting integer scalars, with the ten elementwise operators at
// C-like precedence.
package seqexpr

import (
	"fmt"
	"strconv"
	"strings"

	"myceliumweb.org/seqvec/internal/ringbuf"
)

// Node is one node of an immutable parse tree.
type Node interface {
	isNode()
}

type IntLit struct {
	X int64
}

func (IntLit) isNode() {}

func (n IntLit) String() string { return strconv.FormatInt(n.X, 10) }

type SeqLit struct {
	Elems []int64
}

func (SeqLit) isNode() {}

func (n SeqLit) String() string {
	var parts []string
	for _, x := range n.Elems {
		parts = append(parts, strconv.FormatInt(x, 10))
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// Ref names a sequence resolved from the Env at evaluation time.
type Ref struct {
	Name string
}

func (Ref) isNode() {}

func (n Ref) String() string { return n.Name }

type BinOp struct {
	Op          TokenType
	Left, Right Node
}

func (*BinOp) isNode() {}

func (n *BinOp) String() string {
	return fmt.Sprintf("(%v %v %v)", n.Left, Token{ty: n.Op}.opText(), n.Right)
}

func (tok Token) opText() string {
	for text, ty := range opTokens {
		if ty == tok.ty {
			return text
		}
	}
	return "?"
}

var opTokens = map[string]TokenType{
	"+": Plus, "-": Minus, "*": Star, "/": Slash, "%": Percent,
	"&": Amp, "|": Pipe, "^": Caret, "<<": Shl, ">>": Shr,
}

type Parser struct {
	lex   *Lexer
	inBuf ringbuf.RingBuf[Token]
}

// Parse parses a whole expression; trailing input is an error.
func Parse(src string) (Node, error) {
	p := &Parser{lex: NewLexer(src), inBuf: ringbuf.New[Token](1)}
	n, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	if tok := p.next(); tok.Type() != EOF {
		return nil, errUnexpected(tok)
	}
	return n, nil
}

func (p *Parser) next() Token {
	if p.inBuf.Len() > 0 {
		return p.inBuf.PopFront()
	}
	return p.lex.Next()
}

func (p *Parser) peek() Token {
	if p.inBuf.Len() == 0 {
		p.inBuf.PushBack(p.lex.Next())
	}
	return p.inBuf.At(0)
}

// precOf returns 0 for tokens that are not binary operators.
func precOf(ty TokenType) int {
	switch ty {
	case Pipe:
		return 1
	case Caret:
		return 2
	case Amp:
		return 3
	case Shl, Shr:
		return 4
	case Plus, Minus:
		return 5
	case Star, Slash, Percent:
		return 6
	}
	return 0
}

func (p *Parser) parseExpr(minPrec int) (Node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		prec := precOf(tok.Type())
		if prec < minPrec || prec == 0 {
			return left, nil
		}
		p.next()
		right, err := p.parseExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &BinOp{Op: tok.Type(), Left: left, Right: right}
	}
}

func (p *Parser) parsePrimary() (Node, error) {
	tok := p.next()
	switch tok.Type() {
	case Int, Minus:
		return p.intLit(tok)
	case Symbol:
		return Ref{Name: tok.Text()}, nil
	case LParen:
		return p.parseParen()
	}
	return nil, errUnexpected(tok)
}

// parseParen handles both grouping, (a+b)*c, and sequence literals,
// (1,2,3).  A comma after the first expression selects the literal form,
// whose elements must be integer literals.  () is the empty sequence.
func (p *Parser) parseParen() (Node, error) {
	if p.peek().Type() == RParen {
		p.next()
		return SeqLit{}, nil
	}
	first, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	switch tok := p.next(); tok.Type() {
	case RParen:
		return first, nil
	case Comma:
		lit, ok := first.(IntLit)
		if !ok {
			return nil, fmt.Errorf("seqexpr: sequence literal elements must be integer literals, have %v", first)
		}
		elems := []int64{lit.X}
		for {
			n, err := p.intLit(p.next())
			if err != nil {
				return nil, err
			}
			elems = append(elems, n.X)
			switch tok := p.next(); tok.Type() {
			case Comma:
			case RParen:
				return SeqLit{Elems: elems}, nil
			default:
				return nil, errUnexpected(tok)
			}
		}
	default:
		return nil, errUnexpected(tok)
	}
}

// intLit parses an optionally negated integer literal beginning at tok.
func (p *Parser) intLit(tok Token) (IntLit, error) {
	neg := false
	if tok.Type() == Minus {
		neg = true
		tok = p.next()
	}
	if tok.Type() != Int {
		return IntLit{}, errUnexpected(tok)
	}
	x, err := strconv.ParseInt(tok.Text(), 10, 64)
	if err != nil {
		return IntLit{}, fmt.Errorf("seqexpr: bad integer %q at offset %d", tok.Text(), tok.Pos())
	}
	if neg {
		x = -x
	}
	return IntLit{X: x}, nil
}

func errUnexpected(tok Token) error {
	return fmt.Errorf("seqexpr: unexpected %v at offset %d", tok, tok.Pos())
}

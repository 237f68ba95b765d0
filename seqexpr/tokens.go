package seqexpr

import "fmt"

type TokenType int

const (
	Illegal TokenType = iota
	EOF

	Int    // 12345
	Symbol // a named sequence

	LParen // (
	RParen // )
	Comma  // ,

	Plus    // +
	Minus   // -
	Star    // *
	Slash   // /
	Percent // %
	Amp     // &
	Pipe    // |
	Caret   // ^
	Shl     // <<
	Shr     // >>
)

type Token struct {
	ty   TokenType
	text string
	pos  int
}

func (tok Token) Type() TokenType { return tok.ty }

func (tok Token) Text() string { return tok.text }

// Pos is the byte offset of the token in the source.
func (tok Token) Pos() int { return tok.pos }

func (tok Token) String() string {
	switch tok.ty {
	case EOF:
		return "EOF"
	case Illegal:
		return fmt.Sprintf("Illegal(%q)", tok.text)
	default:
		return tok.text
	}
}

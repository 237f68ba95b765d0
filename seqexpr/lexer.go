package seqexpr

import (
	"unicode"
	"unicode/utf8"
)

// Lexer splits an expression source string into Tokens.  It never fails;
// unrecognized input comes out as an Illegal token and the parser reports
// it.
type Lexer struct {
	src string
	pos int
}

func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

func (l *Lexer) Next() Token {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return Token{ty: EOF, pos: l.pos}
	}
	start := l.pos
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	switch {
	case unicode.IsDigit(r):
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
		return Token{ty: Int, text: l.src[start:l.pos], pos: start}
	case unicode.IsLetter(r) || r == '_':
		for l.pos < len(l.src) && isSymbolRune(l.src[l.pos]) {
			l.pos++
		}
		return Token{ty: Symbol, text: l.src[start:l.pos], pos: start}
	}
	l.pos += size
	mk := func(ty TokenType) Token {
		return Token{ty: ty, text: l.src[start:l.pos], pos: start}
	}
	switch r {
	case '(':
		return mk(LParen)
	case ')':
		return mk(RParen)
	case ',':
		return mk(Comma)
	case '+':
		return mk(Plus)
	case '-':
		return mk(Minus)
	case '*':
		return mk(Star)
	case '/':
		return mk(Slash)
	case '%':
		return mk(Percent)
	case '&':
		return mk(Amp)
	case '|':
		return mk(Pipe)
	case '^':
		return mk(Caret)
	case '<', '>':
		if l.pos < len(l.src) && rune(l.src[l.pos]) == r {
			l.pos++
			if r == '<' {
				return mk(Shl)
			}
			return mk(Shr)
		}
	}
	return mk(Illegal)
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSymbolRune(c byte) bool {
	return c == '_' || isDigit(c) ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

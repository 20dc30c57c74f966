package kalk

import "fmt"

// Token represents a group of characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Type   TokenType
	Lexeme string
	// Pos is the 0-based rune offset of the first rune of the lexeme.
	Pos int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, pos int) *Token {
	return &Token{typ, lexeme, pos}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s %d", t.Type, t.Lexeme, t.Pos)
}

// TokenType is a small integer identifying the kind of a token
type TokenType uint

const (
	// Single-character tokens
	LEFT_PAREN TokenType = iota
	RIGHT_PAREN
	MINUS
	PLUS
	SLASH
	STAR
	DOT

	// Literals
	NUMBER

	EOF
)

func (tt TokenType) String() string {
	switch tt {
	case LEFT_PAREN:
		return "("
	case RIGHT_PAREN:
		return ")"
	case MINUS:
		return "-"
	case PLUS:
		return "+"
	case SLASH:
		return "/"
	case STAR:
		return "*"
	case DOT:
		return "."
	case NUMBER:
		return "NUMBER"
	case EOF:
		return "EOF"
	}
	return ""
}

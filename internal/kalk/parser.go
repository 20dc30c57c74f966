package kalk

import (
	"errors"
	"fmt"
	"strconv"
)

// Parser composes the expression tree from the sequence of tokens following
// the grammar rules below.
//
// Grammar
//
//	expression --> term ( ( "+" | "-" ) term )* ;
//	term       --> factor ( ( "*" | "/" ) factor )* ;
//	factor     --> ( "+" | "-" )? atom ;
//	atom       --> NUMBER | "(" expression ")" ;
//
// A factor takes at most one sign, so "--5" is rejected at the second "-".
type Parser struct {
	current int
	tokens  []*Token
}

// NewParser creates a new parser over the tokens produced by a Scanner. The
// sequence must end with an EOF token.
func NewParser(tokens []*Token) *Parser {
	return &Parser{0, tokens}
}

// Parse consumes the whole token sequence and returns the root expression.
// Anything left after the root expression other than EOF is an error.
func (parser *Parser) Parse() (*Expression, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if !parser.isEOF() {
		return nil, NewParseError(parser.peek(), "Expect end of input.")
	}
	return expr, nil
}

// expression --> term ( ( "+" | "-" ) term )* ;
func (parser *Parser) expression() (*Expression, error) {
	term, err := parser.term()
	if err != nil {
		return nil, err
	}
	expr := NewExpression(term)
	for {
		var op AdditiveOp
		switch {
		case parser.match(PLUS):
			op = OpAdd
		case parser.match(MINUS):
			op = OpSub
		default:
			return expr, nil
		}
		right, err := parser.term()
		if err != nil {
			return nil, err
		}
		expr.Following = append(expr.Following, AdditiveTerm{op, right})
	}
}

// term --> factor ( ( "*" | "/" ) factor )* ;
func (parser *Parser) term() (*Term, error) {
	factor, err := parser.factor()
	if err != nil {
		return nil, err
	}
	term := NewTerm(factor)
	for {
		var op MultiplicativeOp
		switch {
		case parser.match(STAR):
			op = OpMul
		case parser.match(SLASH):
			op = OpDiv
		default:
			return term, nil
		}
		right, err := parser.factor()
		if err != nil {
			return nil, err
		}
		term.Following = append(term.Following, MultiplicativeFactor{op, right})
	}
}

// factor --> ( "+" | "-" )? atom ;
func (parser *Parser) factor() (*Factor, error) {
	var prefix *AdditiveOp
	if parser.match(PLUS) {
		prefix = signOf(OpAdd)
	} else if parser.match(MINUS) {
		prefix = signOf(OpSub)
	}
	atom, err := parser.atom()
	if err != nil {
		return nil, err
	}
	return NewFactor(prefix, atom), nil
}

// atom --> NUMBER | "(" expression ")" ;
func (parser *Parser) atom() (Atom, error) {
	if parser.match(NUMBER) {
		return parser.number(parser.prev())
	}
	if parser.match(LEFT_PAREN) {
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if err := parser.consume(
			RIGHT_PAREN,
			"Expect ')' after expression.",
		); err != nil {
			return nil, err
		}
		return NewGroupAtom(expr), nil
	}
	return nil, NewParseError(parser.peek(), "Expect number or '('.")
}

func (parser *Parser) number(tok *Token) (Atom, error) {
	value, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		// Too many digits for a float64 is the only thing the input can get
		// wrong here, the scanner already checked the shape of the lexeme.
		if errors.Is(err, strconv.ErrRange) {
			return nil, NewParseError(tok, "Number literal out of range.")
		}
		panic(fmt.Sprintf("malformed number literal %q: %v", tok.Lexeme, err))
	}
	return NewNumberAtom(value), nil
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ TokenType, message string) error {
	if parser.check(typ) {
		parser.advance()
		return nil
	}
	return NewParseError(parser.peek(), message)
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Type == tt
}

func (parser *Parser) advance() *Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Type == EOF
}

// peek returns the current token. Running off the end of the slice reads as
// EOF so a sequence without a trailing EOF token can not crash the parser.
func (parser *Parser) peek() *Token {
	if parser.current >= len(parser.tokens) {
		return NewToken(EOF, "", parser.endPos())
	}
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}

func (parser *Parser) endPos() int {
	if len(parser.tokens) == 0 {
		return 0
	}
	last := parser.tokens[len(parser.tokens)-1]
	return last.Pos + len([]rune(last.Lexeme))
}

package kalk

import (
	"errors"
	"fmt"
)

// ScanError is returned by the scanner when it meets a character that can not
// start any token. It is the fatal error class: callers are expected to give
// up on the whole input.
type ScanError struct {
	Char rune
	Pos  int
}

// NewScanError creates a new scan error for the offending rune at the given
// 0-based position
func NewScanError(char rune, pos int) error {
	return &ScanError{char, pos}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf(
		"Syntax error: invalid character: `%c` at position %d",
		err.Char,
		err.Pos,
	)
}

// ParseError carries the token at which the parser gave up together with a
// message describing what was expected there.
type ParseError struct {
	Token   *Token
	Message string
}

// NewParseError creates a new parse error
func NewParseError(token *Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	if err.Token.Type == EOF {
		return fmt.Sprintf("Error at end: %s", err.Message)
	}
	return fmt.Sprintf(
		"Error at '%s' (position %d): %s",
		err.Token.Lexeme,
		err.Token.Pos,
		err.Message,
	)
}

// IsFatal reports whether err belongs to the lexical error class.
func IsFatal(err error) bool {
	var scanErr *ScanError
	return errors.As(err, &scanErr)
}

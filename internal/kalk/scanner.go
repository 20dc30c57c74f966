package kalk

// Scanner reads the source and collects all the tokens that can be found
type Scanner struct {
	start   int
	current int
	source  []rune
	tokens  []*Token
	err     error
}

// NewScanner creates a new token scanner
func NewScanner(source []rune) *Scanner {
	scanner := new(Scanner)
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	return scanner
}

// Scan reads the source and collects all the tokens that were found in it. The
// returned sequence always ends with a single EOF token. The first character
// that can not start a token aborts scanning with a *ScanError and no tokens.
// Later calls return the same tokens or the same error.
func (scanner *Scanner) Scan() ([]*Token, error) {
	if scanner.err != nil {
		return nil, scanner.err
	}
	if len(scanner.tokens) != 0 {
		return scanner.tokens, nil
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t':
		// Single character tokens
		case '(':
			scanner.addToken(LEFT_PAREN)
		case ')':
			scanner.addToken(RIGHT_PAREN)
		case '-':
			scanner.addToken(MINUS)
		case '+':
			scanner.addToken(PLUS)
		case '*':
			scanner.addToken(STAR)
		case '/':
			scanner.addToken(SLASH)
		// A dot that did not get absorbed into a number, e.g. the one in "3.".
		// The parser rejects it.
		case '.':
			scanner.addToken(DOT)
		default:
			if isDigit(r) {
				scanner.scanNumber()
			} else {
				scanner.tokens = make([]*Token, 0)
				scanner.err = NewScanError(r, scanner.start)
				return nil, scanner.err
			}
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		NewToken(EOF, "", len(scanner.source)),
	)
	return scanner.tokens, nil
}

func (scanner *Scanner) scanNumber() {
	// go through continuous digits
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	// check if there's a '.' with following digits
	if scanner.peek() == '.' && isDigit(scanner.peekNext()) {
		scanner.advance()
		for isDigit(scanner.peek()) {
			scanner.advance()
		}
	}
	scanner.addToken(NUMBER)
}

// addToken appends the lexeme from `start` to `current` as a token of the given
// type
func (scanner *Scanner) addToken(typ TokenType) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := NewToken(typ, lexeme, scanner.start)
	scanner.tokens = append(scanner.tokens, tok)
}

// hasNext returns true if the scanner has not read past the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// peekNext returns the rune at the next position, but does not consume it
func (scanner *Scanner) peekNext() rune {
	if scanner.current+1 >= len(scanner.source) {
		return '\x00'
	}
	return scanner.source[scanner.current+1]
}

// Only ASCII digits; unicode.IsDigit would let through runes that
// strconv.ParseFloat rejects.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

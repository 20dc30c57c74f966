package kalk

import "testing"

func tokEOF(pos int) *Token {
	return NewToken(EOF, "", pos)
}

func num(v float64) *Factor {
	return NewFactor(nil, NewNumberAtom(v))
}

func signed(op AdditiveOp, atom Atom) *Factor {
	return NewFactor(signOf(op), atom)
}

func group(expr *Expression) Atom {
	return NewGroupAtom(expr)
}

// single wraps one factor into a whole expression
func single(f *Factor) *Expression {
	return NewExpression(NewTerm(f))
}

func mustParse(t *testing.T, src string) *Expression {
	t.Helper()
	toks, err := NewScanner([]rune(src)).Scan()
	if err != nil {
		t.Fatalf("scan %q: %v", src, err)
	}
	expr, err := NewParser(toks).Parse()
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return expr
}

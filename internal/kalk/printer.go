package kalk

import (
	"fmt"
	"strconv"
	"strings"
)

// TreePrinter renders an expression tree as a fully parenthesized prefix
// expression, folding operators from the left:
//
//	1 - 2 - 3 * -(4)  -->  (- (- 1 2) (* 3 (- (group 4))))
type TreePrinter struct{}

// Print renders the tree rooted at expr
func (printer *TreePrinter) Print(expr *Expression) string {
	return printer.expression(expr)
}

func (printer *TreePrinter) expression(expr *Expression) string {
	s := printer.term(expr.Term)
	for _, next := range expr.Following {
		s = fmt.Sprintf("(%s %s %s)", next.Op, s, printer.term(next.Term))
	}
	return s
}

func (printer *TreePrinter) term(term *Term) string {
	s := printer.factor(term.Factor)
	for _, next := range term.Following {
		s = fmt.Sprintf("(%s %s %s)", next.Op, s, printer.factor(next.Factor))
	}
	return s
}

func (printer *TreePrinter) factor(factor *Factor) string {
	s := factor.Atom.Accept(printer).(string)
	if factor.Prefix != nil {
		return fmt.Sprintf("(%s %s)", *factor.Prefix, s)
	}
	return s
}

func (printer *TreePrinter) VisitNumberAtom(atom *NumberAtom) interface{} {
	return strconv.FormatFloat(atom.Value, 'f', -1, 64)
}

func (printer *TreePrinter) VisitGroupAtom(atom *GroupAtom) interface{} {
	var b strings.Builder
	b.WriteString("(group ")
	b.WriteString(printer.expression(atom.Expr))
	b.WriteString(")")
	return b.String()
}

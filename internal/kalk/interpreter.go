package kalk

// Interpreter folds an expression tree into a single number. This struct
// implements AtomVisitor.
//
// Evaluation can not fail: division by zero yields +Inf, -Inf or NaN like any
// other float64 division.
type Interpreter struct{}

// NewInterpreter creates a new interpreter
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Run evaluates the tree rooted at expr
func (in *Interpreter) Run(expr *Expression) float64 {
	return in.evalExpression(expr)
}

func (in *Interpreter) evalExpression(expr *Expression) float64 {
	acc := in.evalTerm(expr.Term)
	for _, next := range expr.Following {
		rhs := in.evalTerm(next.Term)
		switch next.Op {
		case OpAdd:
			acc += rhs
		case OpSub:
			acc -= rhs
		}
	}
	return acc
}

func (in *Interpreter) evalTerm(term *Term) float64 {
	acc := in.evalFactor(term.Factor)
	for _, next := range term.Following {
		rhs := in.evalFactor(next.Factor)
		switch next.Op {
		case OpMul:
			acc *= rhs
		case OpDiv:
			acc /= rhs
		}
	}
	return acc
}

func (in *Interpreter) evalFactor(factor *Factor) float64 {
	value := in.evalAtom(factor.Atom)
	if factor.Prefix != nil && *factor.Prefix == OpSub {
		value = -value
	}
	return value
}

func (in *Interpreter) evalAtom(atom Atom) float64 {
	return atom.Accept(in).(float64)
}

func (in *Interpreter) VisitNumberAtom(atom *NumberAtom) interface{} {
	return atom.Value
}

func (in *Interpreter) VisitGroupAtom(atom *GroupAtom) interface{} {
	return in.evalExpression(atom.Expr)
}

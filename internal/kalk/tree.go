package kalk

//go:generate go run ../cmd/tree_codegen .

// AdditiveOp is an operator of the lowest precedence level. It doubles as the
// optional sign in front of a factor.
type AdditiveOp uint

const (
	OpAdd AdditiveOp = iota
	OpSub
)

func (op AdditiveOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	}
	return ""
}

// MultiplicativeOp is an operator binding tighter than AdditiveOp.
type MultiplicativeOp uint

const (
	OpMul MultiplicativeOp = iota
	OpDiv
)

func (op MultiplicativeOp) String() string {
	switch op {
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return ""
}

// Expression is a leading term followed by zero or more terms, each joined by
// an additive operator and applied from left to right.
type Expression struct {
	Term      *Term
	Following []AdditiveTerm
}

// AdditiveTerm is one "+ term" or "- term" step of an Expression.
type AdditiveTerm struct {
	Op   AdditiveOp
	Term *Term
}

// Term is a leading factor followed by zero or more factors, each joined by a
// multiplicative operator and applied from left to right.
type Term struct {
	Factor    *Factor
	Following []MultiplicativeFactor
}

// MultiplicativeFactor is one "* factor" or "/ factor" step of a Term.
type MultiplicativeFactor struct {
	Op     MultiplicativeOp
	Factor *Factor
}

// Factor is an atom with an optional sign. A nil Prefix means no sign was
// written.
type Factor struct {
	Prefix *AdditiveOp
	Atom   Atom
}

// NewExpression creates an expression node
func NewExpression(term *Term, following ...AdditiveTerm) *Expression {
	return &Expression{term, following}
}

// NewTerm creates a term node
func NewTerm(factor *Factor, following ...MultiplicativeFactor) *Term {
	return &Term{factor, following}
}

// NewFactor creates a factor node, prefix may be nil
func NewFactor(prefix *AdditiveOp, atom Atom) *Factor {
	return &Factor{prefix, atom}
}

func signOf(op AdditiveOp) *AdditiveOp {
	return &op
}

package grammar

import "github.com/shadew/grammar/symbol"

// seqExpr matches xs[0], then xs[1], ... in order.
type seqExpr struct {
	baseExpr
	xs []Expr
}

func newSeq(xs []Expr) Expr {
	cp := make([]Expr, len(xs))
	for i, x := range xs {
		if x == nil {
			panic("grammar: Seq element must not be nil")
		}
		cp[i] = x
	}
	e := &seqExpr{xs: cp}
	e.baseExpr = baseExpr{self: e}
	return e
}

func (e *seqExpr) Symbols(out map[symbol.Symbol]struct{}) {
	for _, x := range e.xs {
		x.Symbols(out)
	}
}
func (e *seqExpr) Terminals(out map[symbol.Symbol]struct{}) {
	for _, x := range e.xs {
		x.Terminals(out)
	}
}
func (e *seqExpr) Nonterminals(out map[symbol.Symbol]struct{}) {
	for _, x := range e.xs {
		x.Nonterminals(out)
	}
}

func (e *seqExpr) Describe() string {
	s := "("
	for i, x := range e.xs {
		if i > 0 {
			s += " "
		}
		s += x.Describe()
	}
	return s + ")"
}
func (e *seqExpr) String() string { return e.Describe() }

func (e *seqExpr) Get(index int) Expr {
	if index < 0 || index >= len(e.xs) {
		return nil
	}
	return e.xs[index]
}

// Flatten drops Eps children, collapses to None as soon as any child is None, splices nested
// Seq children into this one, and reduces the degenerate cases (empty to Eps, one child to that
// child) before settling on a new Seq.
func (e *seqExpr) Flatten() Expr {
	xs := make([]Expr, 0, len(e.xs))
	for _, x := range e.xs {
		fx := x.Flatten()
		if fx == None {
			return None
		}
		if fx == Eps {
			continue
		}
		if s, ok := fx.(*seqExpr); ok {
			xs = append(xs, s.xs...)
			continue
		}
		xs = append(xs, fx)
	}
	switch len(xs) {
	case 0:
		return Eps
	case 1:
		return xs[0]
	default:
		return newSeq(xs)
	}
}

func (e *seqExpr) Then(fs ...Expr) Expr {
	if len(fs) == 0 {
		return e
	}
	xs := make([]Expr, len(e.xs)+len(fs))
	copy(xs, e.xs)
	copy(xs[len(e.xs):], fs)
	return newSeq(xs)
}

func (e *seqExpr) ButFirst(fs ...Expr) Expr {
	if len(fs) == 0 {
		return e
	}
	xs := make([]Expr, len(fs)+len(e.xs))
	copy(xs, fs)
	copy(xs[len(fs):], e.xs)
	return newSeq(xs)
}

package grammar

import "github.com/shadew/grammar/symbol"

// negateExpr matches any terminal not in the finite set terms.
type negateExpr struct {
	baseExpr
	terms map[symbol.Symbol]struct{}
	order []symbol.Symbol
}

func newNegate(ts []symbol.Symbol) Expr {
	terms := make(map[symbol.Symbol]struct{}, len(ts))
	order := make([]symbol.Symbol, 0, len(ts))
	for _, t := range ts {
		if t == nil {
			panic("grammar: Negate terminal must not be nil")
		}
		if !t.IsTerminal() {
			panic("grammar: Negate only accepts terminal symbols")
		}
		if _, ok := terms[t]; ok {
			continue
		}
		terms[t] = struct{}{}
		order = append(order, t)
	}
	e := &negateExpr{terms: terms, order: order}
	e.baseExpr = baseExpr{self: e}
	return e
}

func (e *negateExpr) Symbols(out map[symbol.Symbol]struct{}) {
	for _, t := range e.order {
		out[t] = struct{}{}
	}
}
func (e *negateExpr) Terminals(out map[symbol.Symbol]struct{}) { e.Symbols(out) }
func (e *negateExpr) Nonterminals(out map[symbol.Symbol]struct{}) {}

// Flatten collapses a Negate over an empty set to Any; otherwise Negate is already flattest.
func (e *negateExpr) Flatten() Expr {
	if len(e.order) == 0 {
		return Any
	}
	return e
}

func (e *negateExpr) Describe() string {
	s := "~("
	for i, t := range e.order {
		if i > 0 {
			s += " | "
		}
		s += t.Name()
	}
	return s + ")"
}
func (e *negateExpr) String() string { return e.Describe() }

func (e *negateExpr) Get(index int) Expr {
	if index == 0 {
		return e
	}
	return nil
}

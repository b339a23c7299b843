package grammar

import (
	"fmt"

	"github.com/shadew/grammar/symbol"
)

// Rule binds a non-terminal LHS to the expressor that defines it. A Rule is immutable; its
// derived symbol sets are computed once at construction.
type Rule struct {
	lhs symbol.Symbol
	rhs Expr

	alts        []Expr
	symbols     map[symbol.Symbol]struct{}
	terminals   map[symbol.Symbol]struct{}
	nonterminals map[symbol.Symbol]struct{}
}

// NewRule builds a rule lhs := rhs. lhs must be a non-terminal symbol.
func NewRule(lhs symbol.Symbol, rhs Expr) *Rule {
	if lhs == nil {
		panic("grammar: Rule LHS must not be nil")
	}
	if lhs.IsTerminal() {
		panic("grammar: Rule LHS must be a non-terminal symbol")
	}
	if rhs == nil {
		panic("grammar: Rule RHS must not be nil")
	}

	r := &Rule{lhs: lhs, rhs: rhs}

	if a, ok := rhs.(*altExpr); ok {
		r.alts = append([]Expr(nil), a.xs...)
	} else {
		r.alts = []Expr{rhs}
	}

	r.symbols = map[symbol.Symbol]struct{}{}
	r.terminals = map[symbol.Symbol]struct{}{}
	r.nonterminals = map[symbol.Symbol]struct{}{}
	rhs.Symbols(r.symbols)
	rhs.Terminals(r.terminals)
	rhs.Nonterminals(r.nonterminals)

	return r
}

// LHS returns the non-terminal this rule defines.
func (r *Rule) LHS() symbol.Symbol { return r.lhs }

// RHS returns the expressor this rule's LHS derives.
func (r *Rule) RHS() Expr { return r.rhs }

// RHSAlts returns the alternatives of RHS: its elements if RHS is an Alt, else a single-element
// slice holding RHS itself. The returned slice must not be mutated.
func (r *Rule) RHSAlts() []Expr { return r.alts }

// RHSSymbols returns every symbol occurring in RHS. The returned map must not be mutated.
func (r *Rule) RHSSymbols() map[symbol.Symbol]struct{} { return r.symbols }

// RHSTerminals returns every terminal symbol occurring in RHS. The returned map must not be
// mutated.
func (r *Rule) RHSTerminals() map[symbol.Symbol]struct{} { return r.terminals }

// RHSNonterminals returns every non-terminal symbol occurring in RHS. The returned map must not
// be mutated.
func (r *Rule) RHSNonterminals() map[symbol.Symbol]struct{} { return r.nonterminals }

// Flatten returns a new rule with the same LHS and a flattened RHS.
func (r *Rule) Flatten() *Rule {
	return NewRule(r.lhs, r.rhs.Flatten())
}

// Merge combines r with other, which must share the same LHS, into a single rule whose RHS is
// the alternation of both rules' alternatives.
func (r *Rule) Merge(other *Rule) (*Rule, error) {
	if other == nil {
		return nil, fmt.Errorf("grammar: cannot merge rule %s with a nil rule", r.lhs.Name())
	}
	if r.lhs != other.lhs {
		return nil, fmt.Errorf("grammar: cannot merge rules with different LHS: %s, %s", r.lhs.Name(), other.lhs.Name())
	}
	xs := make([]Expr, 0, len(r.alts)+len(other.alts))
	xs = append(xs, r.alts...)
	xs = append(xs, other.alts...)
	return NewRule(r.lhs, Alts(xs...)), nil
}

func (r *Rule) Describe() string {
	return r.lhs.Name() + " := " + r.rhs.Describe()
}

func (r *Rule) String() string { return r.Describe() }

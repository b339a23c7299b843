package grammar

import (
	"fmt"

	"github.com/shadew/grammar/symbol"
)

// quantExpr matches inner repeated between min and max times. max == -1 means unbounded.
type quantExpr struct {
	baseExpr
	inner   Expr
	min, max int
}

func newQuant(inner Expr, min, max int) Expr {
	if inner == nil {
		panic("grammar: Quant inner expressor must not be nil")
	}
	if max < 0 {
		max = -1
	}
	if min < 0 {
		panic("grammar: Quant min must not be negative")
	}
	if max >= 0 && max < min {
		panic("grammar: Quant max must not be less than min")
	}
	e := &quantExpr{inner: inner, min: min, max: max}
	e.baseExpr = baseExpr{self: e}
	return e
}

func (e *quantExpr) Symbols(out map[symbol.Symbol]struct{})      { e.inner.Symbols(out) }
func (e *quantExpr) Terminals(out map[symbol.Symbol]struct{})    { e.inner.Terminals(out) }
func (e *quantExpr) Nonterminals(out map[symbol.Symbol]struct{}) { e.inner.Nonterminals(out) }

func (e *quantExpr) Describe() string {
	if _, ok := e.inner.(*quantExpr); ok {
		return "(" + e.inner.Describe() + ")" + describeQuantifier(e.min, e.max)
	}
	return e.inner.Describe() + describeQuantifier(e.min, e.max)
}
func (e *quantExpr) String() string { return e.Describe() }

func describeQuantifier(min, max int) string {
	if min == max {
		return fmt.Sprintf("[%d]", min)
	}
	if max < 0 {
		switch min {
		case 0:
			return "*"
		case 1:
			return "+"
		default:
			return fmt.Sprintf("[%d..]", min)
		}
	}
	if min == 0 {
		if max == 1 {
			return "?"
		}
		return fmt.Sprintf("[..%d]", max)
	}
	return fmt.Sprintf("[%d..%d]", min, max)
}

// Amount classifies how a repetition count at a given cursor position relates to a quantifier's
// bounds.
type Amount int

const (
	TooFew Amount = iota
	Enough
	Limit
	TooMany
)

// Valid reports whether a cursor at this amount already sits at a valid repetition count.
func (a Amount) Valid() bool {
	return a == Enough || a == Limit
}

// AtMax reports whether a cursor at this amount has reached (or passed) the quantifier's upper
// bound, so it must not attempt to match inner again.
func (a Amount) AtMax() bool {
	return a == Limit || a == TooMany
}

// amount classifies index against this quantifier's [min, max] bounds.
func (e *quantExpr) amount(index int) Amount {
	if index < e.min {
		return TooFew
	}
	if e.max < 0 || index < e.max {
		return Enough
	}
	if index == e.max {
		return Limit
	}
	return TooMany
}

func (e *quantExpr) Get(index int) Expr {
	if e.amount(index).AtMax() {
		return nil
	}
	return e.inner
}

// Flatten reduces a quantifier of a quantifier and collapses degenerate bounds. See spec §4.2 for
// the precise merge ladder; the arithmetic conditions are reproduced faithfully from the
// original source, which proves them in detail.
func (e *quantExpr) Flatten() Expr {
	inner := e.inner.Flatten()

	if inner == Eps {
		return Eps
	}
	if inner == None {
		if e.min == 0 {
			return Eps
		}
		return None
	}

	if q, ok := inner.(*quantExpr); ok {
		// Infinite merge: inner already has no upper bound, so ours becomes vacuous.
		if q.max == -1 && e.min >= 1 {
			return newQuant(q.inner, e.min*q.min, -1)
		}

		// Range merge: the per-outer-repetition ranges overlap, so their union is contiguous.
		if e.min*q.max >= q.min*(e.min+1)-1 {
			nmax := -1
			if e.min > 1 && e.max >= 0 {
				nmax = e.max * q.max
			}
			return newQuant(q.inner, e.min*q.min, nmax)
		}

		// Optional-of-unbounded: whatever our upper bound is, inner can already match
		// infinitely many elements, so we reduce to a plain optional of the inner quantifier.
		if q.max == -1 && e.min == 0 {
			return newQuant(inner, 0, 1)
		}

		// Fixed merge: both layers repeat a fixed number of times.
		if q.min == q.max && e.min == e.max {
			return newQuant(q.inner, q.min*e.min, q.min*e.min)
		}
	}

	if e.min == 1 && e.max == 1 {
		return inner
	}
	if e.min == 0 && e.max == 0 {
		return Eps
	}

	return newQuant(inner, e.min, e.max)
}

// Package grammar implements the expression algebra, normalizer, rule collection, and
// fixed-point analyses (emptiness, left recursion, FIRST sets) that a predictive, one-token
// lookahead parser needs, plus a cursor for walking an expression tree during such a parse.
package grammar

import "github.com/shadew/grammar/symbol"

// Expr is a value in the pattern algebra: the closed sum of Terminal, Nonterminal, Seq, Alt,
// Quant, Negate, Any, None and Eps. Every Expr is immutable once constructed.
type Expr interface {
	// Symbols adds every symbol occurring in this expressor to out.
	Symbols(out map[symbol.Symbol]struct{})

	// Terminals appends every terminal symbol occurring in this expressor to out.
	Terminals(out map[symbol.Symbol]struct{})

	// Nonterminals appends every non-terminal symbol occurring in this expressor to out.
	Nonterminals(out map[symbol.Symbol]struct{})

	// Flatten reduces this expressor to an algebraically equivalent, simpler form. Each variant's
	// Flatten method documents its own rules.
	Flatten() Expr

	// Describe renders this expressor in the canonical textual form used for debugging and
	// golden-value tests.
	Describe() string

	// Get returns the sub-expressor that a cursor at progress index must attempt next, or nil
	// when index is past the end of this expressor.
	Get(index int) Expr

	// String is an alias for Describe, so that fmt verbs render expressions directly.
	String() string

	// Optional returns an expressor matching this zero or one times.
	Optional() Expr
	// ZeroOrMore returns an expressor matching this zero or more times.
	ZeroOrMore() Expr
	// OneOrMore returns an expressor matching this one or more times.
	OneOrMore() Expr
	// AtLeast returns an expressor matching this at least min times.
	AtLeast(min int) Expr
	// AtMost returns an expressor matching this at most max times.
	AtMost(max int) Expr
	// Exactly returns an expressor matching this exactly n times.
	Exactly(n int) Expr
	// Range returns an expressor matching this between min and max times.
	Range(min, max int) Expr
	// Or returns an expressor matching this or one of fs. If this is already an Alt, the new
	// alternative is appended to it instead of wrapping it again.
	Or(fs ...Expr) Expr
	// Then returns an expressor matching this followed by fs, in order. If this is already a
	// Seq, fs is appended to it instead of wrapping it again.
	Then(fs ...Expr) Expr
	// ButFirst returns an expressor matching fs followed by this, in order. If this is already a
	// Seq, fs is prepended to it instead of wrapping it again.
	ButFirst(fs ...Expr) Expr
}

// ExprOf constructs an expressor matching xs in sequence: Eps if xs is empty, xs[0] if it has one
// element, else a Seq.
func ExprOf(xs ...Expr) Expr {
	switch len(xs) {
	case 0:
		return Eps
	case 1:
		return xs[0]
	default:
		return newSeq(xs)
	}
}

// Alts constructs an expressor matching one of xs as an alternative: None if xs is empty, xs[0]
// if it has one element, else an Alt.
func Alts(xs ...Expr) Expr {
	switch len(xs) {
	case 0:
		return None
	case 1:
		return xs[0]
	default:
		return newAlt(xs)
	}
}

// Neg constructs an expressor matching any terminal not in ts: Any if ts is empty, else a Negate.
func Neg(ts ...symbol.Symbol) Expr {
	if len(ts) == 0 {
		return Any
	}
	return newNegate(ts)
}

// IsTerminalMatch reports whether e matches a single terminal directly, without recursing into
// its structure. This holds for Terminal, Negate and Any.
func IsTerminalMatch(e Expr) bool {
	switch e.(type) {
	case *terminalExpr, *negateExpr:
		return true
	}
	return e == Any
}

// wrapOr implements the default Or semantics shared by every variant except Alt and None, which
// override it.
func wrapOr(self Expr, fs []Expr) Expr {
	switch len(fs) {
	case 0:
		return newAlt([]Expr{self, Eps})
	case 1:
		return newAlt([]Expr{self, fs[0]})
	default:
		return newAlt([]Expr{self, newSeq(fs)})
	}
}

// wrapThen implements the default Then semantics shared by every variant except Seq, None and
// Eps, which override it.
func wrapThen(self Expr, fs []Expr) Expr {
	if len(fs) == 0 {
		return self
	}
	xs := make([]Expr, 0, len(fs)+1)
	xs = append(xs, self)
	xs = append(xs, fs...)
	return newSeq(xs)
}

// wrapButFirst implements the default ButFirst semantics shared by every variant except Seq,
// which overrides it.
func wrapButFirst(self Expr, fs []Expr) Expr {
	if len(fs) == 0 {
		return self
	}
	xs := make([]Expr, 0, len(fs)+1)
	xs = append(xs, fs...)
	xs = append(xs, self)
	return newSeq(xs)
}

// baseExpr provides the quantifier-construction combinators shared by every variant; each
// embeds it to pick up Optional/ZeroOrMore/.../Range/Exactly for free, and may still override Or,
// Then, ButFirst, or the quantifier combinators where the algebra calls for a short-circuit.
type baseExpr struct {
	self Expr
}

func (b *baseExpr) Optional() Expr         { return newQuant(b.self, 0, 1) }
func (b *baseExpr) ZeroOrMore() Expr       { return newQuant(b.self, 0, -1) }
func (b *baseExpr) OneOrMore() Expr        { return newQuant(b.self, 1, -1) }
func (b *baseExpr) AtLeast(min int) Expr   { return newQuant(b.self, min, -1) }
func (b *baseExpr) AtMost(max int) Expr    { return newQuant(b.self, 0, max) }
func (b *baseExpr) Exactly(n int) Expr     { return newQuant(b.self, n, n) }
func (b *baseExpr) Range(min, max int) Expr {
	return newQuant(b.self, min, max)
}
func (b *baseExpr) Or(fs ...Expr) Expr       { return wrapOr(b.self, fs) }
func (b *baseExpr) Then(fs ...Expr) Expr     { return wrapThen(b.self, fs) }
func (b *baseExpr) ButFirst(fs ...Expr) Expr { return wrapButFirst(b.self, fs) }

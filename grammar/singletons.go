package grammar

import "github.com/shadew/grammar/symbol"

// anyExpr matches any single terminal. Equivalent to an empty Negate.
type anyExpr struct{ baseExpr }

// noneExpr never matches. Equivalent to an empty Alt.
type noneExpr struct{ baseExpr }

// epsExpr matches zero input. Equivalent to an empty Seq.
type epsExpr struct{ baseExpr }

// Any is the expressor matching any single terminal symbol.
var Any Expr = mkAny()

// None is the expressor that never matches.
var None Expr = mkNone()

// Eps is the expressor matching zero input (epsilon).
var Eps Expr = mkEps()

func mkAny() Expr {
	e := &anyExpr{}
	e.baseExpr = baseExpr{self: e}
	return e
}

func mkNone() Expr {
	e := &noneExpr{}
	e.baseExpr = baseExpr{self: e}
	return e
}

func mkEps() Expr {
	e := &epsExpr{}
	e.baseExpr = baseExpr{self: e}
	return e
}

func (*anyExpr) Symbols(out map[symbol.Symbol]struct{})      {}
func (*anyExpr) Terminals(out map[symbol.Symbol]struct{})    {}
func (*anyExpr) Nonterminals(out map[symbol.Symbol]struct{}) {}
func (e *anyExpr) Flatten() Expr                             { return e }
func (*anyExpr) Describe() string                            { return "." }
func (e *anyExpr) String() string                             { return e.Describe() }
func (e *anyExpr) Get(index int) Expr {
	if index == 0 {
		return e
	}
	return nil
}

func (*noneExpr) Symbols(out map[symbol.Symbol]struct{})      {}
func (*noneExpr) Terminals(out map[symbol.Symbol]struct{})    {}
func (*noneExpr) Nonterminals(out map[symbol.Symbol]struct{}) {}
func (e *noneExpr) Flatten() Expr                             { return e }
func (*noneExpr) Describe() string                            { return "!" }
func (e *noneExpr) String() string                            { return e.Describe() }
func (*noneExpr) Get(index int) Expr                          { return nil }

// None never matches, so quantifying it collapses to Eps (zero repetitions is the only option)
// unless a positive minimum is required, in which case it still never matches.
func (e *noneExpr) Optional() Expr       { return Eps }
func (e *noneExpr) ZeroOrMore() Expr     { return Eps }
func (e *noneExpr) OneOrMore() Expr      { return e }
func (e *noneExpr) AtLeast(min int) Expr {
	if min == 0 {
		return Eps
	}
	return e
}
func (e *noneExpr) AtMost(max int) Expr { return Eps }
func (e *noneExpr) Exactly(n int) Expr {
	if n == 0 {
		return Eps
	}
	return e
}
func (e *noneExpr) Range(min, max int) Expr {
	if min == 0 {
		return Eps
	}
	return e
}
func (e *noneExpr) Or(fs ...Expr) Expr   { return ExprOf(fs...) }
func (e *noneExpr) Then(fs ...Expr) Expr { return e }

func (*epsExpr) Symbols(out map[symbol.Symbol]struct{})      {}
func (*epsExpr) Terminals(out map[symbol.Symbol]struct{})    {}
func (*epsExpr) Nonterminals(out map[symbol.Symbol]struct{}) {}
func (e *epsExpr) Flatten() Expr                             { return e }
func (*epsExpr) Describe() string                            { return "#" }
func (e *epsExpr) String() string                             { return e.Describe() }
func (*epsExpr) Get(index int) Expr                           { return nil }

// Eps already matches zero input, so any quantification of it is still Eps.
func (e *epsExpr) Optional() Expr           { return e }
func (e *epsExpr) ZeroOrMore() Expr         { return e }
func (e *epsExpr) OneOrMore() Expr          { return e }
func (e *epsExpr) AtLeast(min int) Expr     { return e }
func (e *epsExpr) AtMost(max int) Expr      { return e }
func (e *epsExpr) Exactly(n int) Expr       { return e }
func (e *epsExpr) Range(min, max int) Expr  { return e }
func (e *epsExpr) Then(fs ...Expr) Expr     { return ExprOf(fs...) }

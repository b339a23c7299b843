package grammar

import "github.com/shadew/grammar/symbol"

// nonterminalExpr matches whatever the referenced non-terminal's rule matches.
type nonterminalExpr struct {
	baseExpr
	sym symbol.Symbol
}

// Nonterminal constructs an expressor matching whatever sym's rule matches.
func Nonterminal(sym symbol.Symbol) Expr {
	if sym == nil {
		panic("grammar: Nonterminal symbol must not be nil")
	}
	if sym.IsTerminal() {
		panic("grammar: Nonterminal symbol must be a non-terminal")
	}
	e := &nonterminalExpr{sym: sym}
	e.baseExpr = baseExpr{self: e}
	return e
}

func (e *nonterminalExpr) Symbols(out map[symbol.Symbol]struct{})   { out[e.sym] = struct{}{} }
func (e *nonterminalExpr) Terminals(out map[symbol.Symbol]struct{}) {}
func (e *nonterminalExpr) Nonterminals(out map[symbol.Symbol]struct{}) {
	out[e.sym] = struct{}{}
}

func (e *nonterminalExpr) Flatten() Expr { return e }

func (e *nonterminalExpr) Describe() string { return e.sym.Name() }
func (e *nonterminalExpr) String() string   { return e.Describe() }

func (e *nonterminalExpr) Get(index int) Expr {
	if index == 0 {
		return e
	}
	return nil
}

package grammar

import "github.com/shadew/grammar/symbol"

// terminalExpr matches exactly one terminal symbol.
type terminalExpr struct {
	baseExpr
	sym symbol.Symbol
}

// Terminal constructs an expressor matching exactly the terminal sym.
func Terminal(sym symbol.Symbol) Expr {
	if sym == nil {
		panic("grammar: Terminal symbol must not be nil")
	}
	if !sym.IsTerminal() {
		panic("grammar: Terminal symbol must be a terminal")
	}
	e := &terminalExpr{sym: sym}
	e.baseExpr = baseExpr{self: e}
	return e
}

func (e *terminalExpr) Symbols(out map[symbol.Symbol]struct{})      { out[e.sym] = struct{}{} }
func (e *terminalExpr) Terminals(out map[symbol.Symbol]struct{})    { out[e.sym] = struct{}{} }
func (e *terminalExpr) Nonterminals(out map[symbol.Symbol]struct{}) {}

func (e *terminalExpr) Flatten() Expr { return e }

func (e *terminalExpr) Describe() string { return e.sym.Name() }
func (e *terminalExpr) String() string   { return e.Describe() }

func (e *terminalExpr) Get(index int) Expr {
	if index == 0 {
		return e
	}
	return nil
}

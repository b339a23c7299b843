package grammar

import (
	"strings"

	"github.com/shadew/grammar/symbol"
)

// GrammarError is the tagged error family every grammar-construction or analysis failure belongs
// to. It carries the partially built Grammar so that callers can inspect whatever was collected
// before the failure.
type GrammarError struct {
	Grammar *Grammar
	msg     string
}

func (e *GrammarError) Error() string { return e.msg }

func newGrammarError(g *Grammar, msg string) *GrammarError {
	return &GrammarError{Grammar: g, msg: msg}
}

// UndefinedSymbolsError reports non-terminals referenced from some RHS that have no rule.
type UndefinedSymbolsError struct {
	*GrammarError
	Symbols []symbol.Symbol
}

func newUndefinedSymbolsError(g *Grammar, undefined []symbol.Symbol) *UndefinedSymbolsError {
	names := make([]string, len(undefined))
	for i, s := range undefined {
		names[i] = s.Name()
	}
	msg := "grammar: undefined non-terminal(s): " + strings.Join(names, ", ")
	return &UndefinedSymbolsError{
		GrammarError: newGrammarError(g, msg),
		Symbols:      undefined,
	}
}

// Cycle is an ordered sequence of non-terminals, first and last identical, witnessing a
// left-recursive derivation.
type Cycle []symbol.Symbol

func (c Cycle) String() string {
	names := make([]string, len(c))
	for i, s := range c {
		names[i] = s.Name()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// LeftRecursionError reports every left-recursive cycle the emptiness analysis discovered.
type LeftRecursionError struct {
	*GrammarError
	Cycles []Cycle
}

func newLeftRecursionError(g *Grammar, cycles []Cycle) *LeftRecursionError {
	parts := make([]string, len(cycles))
	for i, c := range cycles {
		parts[i] = c.String()
	}
	msg := "grammar: left recursion detected: " + strings.Join(parts, ", ")
	return &LeftRecursionError{
		GrammarError: newGrammarError(g, msg),
		Cycles:       cycles,
	}
}

// problem returns the captured error, if any, without raising it.
func (g *Grammar) problem() error {
	if g.err == nil {
		return nil
	}
	return g.err
}

// throwProblem raises the captured error if any, and otherwise returns g so that analytical
// queries can chain off it.
func (g *Grammar) throwProblem() (*Grammar, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g, nil
}

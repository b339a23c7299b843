package grammar

import (
	"sort"

	"github.com/shadew/grammar/symbol"
)

// ruleMeta is the analyzer's working and, after freeze, frozen record for a single rule: its
// emptiness decision, the cycles it participates in if left-recursive, and its FIRST set.
type ruleMeta struct {
	rule *Rule

	empty         Decision
	leftRecursive []Cycle
	firstSet      map[symbol.Symbol]struct{}
}

// Grammar is the frozen, immutable result of analyzing a collection of rules: their merged
// definitions, the symbol inventory, and the emptiness/FIRST-set metadata a predictive parser
// needs. Construct one via Builder.
type Grammar struct {
	rules     []*ruleMeta
	lhsToRule map[symbol.Symbol]*ruleMeta

	symbols      map[symbol.Symbol]struct{}
	terminals    map[symbol.Symbol]struct{}
	nonterminals map[symbol.Symbol]struct{}

	undefined     []symbol.Symbol
	leftRecursive []Cycle

	err error
}

// Builder collects rules, merging same-LHS submissions into a single rule of alternatives, and
// produces a frozen Grammar.
type Builder struct {
	order []symbol.Symbol
	rules map[symbol.Symbol]*Rule
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{rules: map[symbol.Symbol]*Rule{}}
}

// Submit adds r to the builder as-is, without flattening its RHS. If a rule with the same LHS
// was already submitted, the two are merged into one rule of alternatives.
func (b *Builder) Submit(r *Rule) *Builder {
	if r == nil {
		panic("grammar: cannot submit a nil rule")
	}
	b.merge(r)
	return b
}

// Rule flattens rhs and submits NewRule(lhs, rhs.Flatten()), merging with any rule already
// submitted for lhs.
func (b *Builder) Rule(lhs symbol.Symbol, rhs Expr) *Builder {
	return b.Submit(NewRule(lhs, rhs.Flatten()))
}

func (b *Builder) merge(r *Rule) {
	curr, ok := b.rules[r.LHS()]
	if !ok {
		b.order = append(b.order, r.LHS())
		b.rules[r.LHS()] = r
		return
	}
	merged, err := curr.Merge(r)
	if err != nil {
		panic(err)
	}
	b.rules[r.LHS()] = merged
}

// Build runs the full analysis pipeline — symbol collection, the undefined-symbol check, the
// emptiness/left-recursion fixed-point, and the FIRST-set fixed-point — and returns the frozen
// result. The pipeline short-circuits at the first failure but still freezes whatever was
// computed so far; inspect Problem() to find out whether it succeeded.
func (b *Builder) Build() *Grammar {
	g := &Grammar{
		lhsToRule:    map[symbol.Symbol]*ruleMeta{},
		symbols:      map[symbol.Symbol]struct{}{},
		terminals:    map[symbol.Symbol]struct{}{},
		nonterminals: map[symbol.Symbol]struct{}{},
	}

	for _, lhs := range b.order {
		meta := &ruleMeta{rule: b.rules[lhs], empty: Indecisive}
		g.rules = append(g.rules, meta)
		g.lhsToRule[lhs] = meta
	}

	g.collectSymbols()

	if err := g.checkUndefined(); err != nil {
		g.err = err
		g.freeze()
		return g
	}

	cycles := computeEmpty(g)
	if len(cycles) > 0 {
		g.leftRecursive = cycles
		g.err = newLeftRecursionError(g, cycles)
		g.freeze()
		return g
	}

	computeFirst(g)

	g.freeze()
	return g
}

func (g *Grammar) collectSymbols() {
	for _, meta := range g.rules {
		lhs := meta.rule.LHS()
		g.symbols[lhs] = struct{}{}
		g.nonterminals[lhs] = struct{}{}

		for s := range meta.rule.RHSSymbols() {
			g.symbols[s] = struct{}{}
		}
		for t := range meta.rule.RHSTerminals() {
			g.terminals[t] = struct{}{}
		}
		for n := range meta.rule.RHSNonterminals() {
			g.nonterminals[n] = struct{}{}
		}
	}
}

func (g *Grammar) checkUndefined() error {
	for n := range g.nonterminals {
		if _, ok := g.lhsToRule[n]; !ok {
			g.undefined = append(g.undefined, n)
		}
	}
	if len(g.undefined) == 0 {
		return nil
	}
	sortSymbols(g.undefined)
	return newUndefinedSymbolsError(g, g.undefined)
}

func sortSymbols(ss []symbol.Symbol) {
	sort.Slice(ss, func(i, j int) bool { return ss[i].Name() < ss[j].Name() })
}

func (g *Grammar) freeze() {
	for _, meta := range g.rules {
		sort.SliceStable(meta.leftRecursive, func(i, j int) bool {
			return len(meta.leftRecursive[i]) < len(meta.leftRecursive[j])
		})
	}
}

// Problem returns the captured error, if any, without raising it.
func (g *Grammar) Problem() error { return g.problem() }

// ThrowProblem returns g, or the captured error if any was captured during Build.
func (g *Grammar) ThrowProblem() (*Grammar, error) { return g.throwProblem() }

// Rules returns every rule in insertion order, with merges collapsed into the first occurrence's
// slot.
func (g *Grammar) Rules() []*Rule {
	rs := make([]*Rule, len(g.rules))
	for i, m := range g.rules {
		rs[i] = m.rule
	}
	return rs
}

// Rule returns the rule defining lhs, or nil if none exists.
func (g *Grammar) Rule(lhs symbol.Symbol) *Rule {
	meta, ok := g.lhsToRule[lhs]
	if !ok {
		return nil
	}
	return meta.rule
}

// HasRule reports whether lhs has an associated rule.
func (g *Grammar) HasRule(lhs symbol.Symbol) bool {
	_, ok := g.lhsToRule[lhs]
	return ok
}

// Symbols returns every symbol referenced anywhere in the grammar, including LHS positions. The
// returned map must not be mutated.
func (g *Grammar) Symbols() map[symbol.Symbol]struct{} { return g.symbols }

// Terminals returns every terminal symbol referenced anywhere in the grammar. The returned map
// must not be mutated.
func (g *Grammar) Terminals() map[symbol.Symbol]struct{} { return g.terminals }

// Nonterminals returns every non-terminal symbol referenced anywhere in the grammar. The
// returned map must not be mutated.
func (g *Grammar) Nonterminals() map[symbol.Symbol]struct{} { return g.nonterminals }

// Undefined returns the non-terminals referenced from some RHS that have no rule.
func (g *Grammar) Undefined() []symbol.Symbol { return g.undefined }

// LeftRecursive returns every left-recursive cycle discovered during analysis.
func (g *Grammar) LeftRecursive() []Cycle { return g.leftRecursive }

// Has reports whether sym is referenced or defined anywhere in the grammar.
func (g *Grammar) Has(sym symbol.Symbol) bool {
	_, ok := g.symbols[sym]
	return ok
}

func (g *Grammar) meta(lhs symbol.Symbol) *ruleMeta {
	meta, ok := g.lhsToRule[lhs]
	if !ok {
		panic("grammar: no rule for non-terminal " + lhs.Name())
	}
	return meta
}

// CanMatchEmpty reports whether n's rule can derive the empty string. Requires no pending
// Problem().
func (g *Grammar) CanMatchEmpty(n symbol.Symbol) (bool, error) {
	if _, err := g.throwProblem(); err != nil {
		return false, err
	}
	return g.meta(n).empty == Positive, nil
}

// FirstSet returns the set of terminals that may appear as the first token of any derivation
// from n, or nil if n's rule sits inside a left-recursive cycle or its FIRST set could not be
// resolved. Requires no pending Problem().
// The returned map must not be mutated.
func (g *Grammar) FirstSet(n symbol.Symbol) (map[symbol.Symbol]struct{}, error) {
	if _, err := g.throwProblem(); err != nil {
		return nil, err
	}
	return g.meta(n).firstSet, nil
}

// Next computes whether expr can complete with no further input after progress index, and
// collects into out every terminal that may legally come next. Requires no pending Problem().
func (g *Grammar) Next(expr Expr, index int, out map[symbol.Symbol]struct{}) (bool, error) {
	if _, err := g.throwProblem(); err != nil {
		return false, err
	}
	return g.next(expr, index, out), nil
}

func (g *Grammar) next(expr Expr, index int, out map[symbol.Symbol]struct{}) bool {
	switch x := expr.(type) {
	case *terminalExpr:
		if index == 0 {
			if out != nil {
				out[x.sym] = struct{}{}
			}
			return false
		}
		return true
	case *negateExpr:
		if index == 0 {
			if out != nil {
				for t := range g.terminals {
					if _, excluded := x.terms[t]; !excluded {
						out[t] = struct{}{}
					}
				}
			}
			return false
		}
		return true
	case *nonterminalExpr:
		if index == 0 {
			if out != nil {
				fs := g.meta(x.sym).firstSet
				for t := range fs {
					out[t] = struct{}{}
				}
			}
			return g.meta(x.sym).empty == Positive
		}
		return true
	case *quantExpr:
		amt := x.amount(index)
		matches := amt.Valid()
		if !amt.AtMax() {
			matches = g.next(x.inner, 0, out) || matches
		}
		return matches
	case *seqExpr:
		for i := index; i < len(x.xs); i++ {
			if !g.next(x.xs[i], 0, out) {
				return false
			}
		}
		return true
	case *altExpr:
		matches := false
		for _, y := range x.xs {
			if g.next(y, 0, out) {
				matches = true
			}
		}
		return matches
	}
	switch expr {
	case Any:
		if index == 0 {
			if out != nil {
				for t := range g.terminals {
					out[t] = struct{}{}
				}
			}
			return false
		}
		return true
	case None:
		return false
	case Eps:
		return true
	}
	panic("grammar: unreachable expressor variant in next")
}

package grammar

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/shadew/grammar/symbol"
)

// computeFirst runs the FIRST-set fixed-point over every rule in g that isn't left-recursive.
// Rules caught in a left-recursive cycle are skipped and keep an absent FIRST set, and so do rules
// that are still indecisive once every queued rule has been retried without progress.
func computeFirst(g *Grammar) {
	queue := linkedlistqueue.New()
	queued := map[*ruleMeta]bool{}
	enqueue := func(m *ruleMeta) {
		if !queued[m] {
			queued[m] = true
			queue.Enqueue(m)
		}
	}
	for _, m := range g.rules {
		enqueue(m)
	}

	stalled := 0
	for !queue.Empty() && stalled < len(g.rules) {
		v, _ := queue.Dequeue()
		meta := v.(*ruleMeta)
		delete(queued, meta)

		if len(meta.leftRecursive) > 0 {
			continue
		}

		var indecisives []symbol.Symbol
		first := map[symbol.Symbol]struct{}{}
		decision := computeFirstExpr(meta.rule.RHS(), g, first, &indecisives)

		if decision == Indecisive {
			for _, n := range indecisives {
				ntMeta := g.lhsToRule[n]
				if len(ntMeta.leftRecursive) == 0 {
					enqueue(ntMeta)
				}
			}
			if len(meta.leftRecursive) == 0 {
				enqueue(meta)
			}
			stalled++
			continue
		}

		stalled = 0
		meta.firstSet = first
	}
}

func computeFirstExpr(e Expr, g *Grammar, first map[symbol.Symbol]struct{}, indecisives *[]symbol.Symbol) Decision {
	switch x := e.(type) {
	case *terminalExpr:
		first[x.sym] = struct{}{}
		return Negative
	case *negateExpr:
		for t := range g.terminals {
			if _, excluded := x.terms[t]; !excluded {
				first[t] = struct{}{}
			}
		}
		return Negative
	case *nonterminalExpr:
		meta := g.lhsToRule[x.sym]
		if meta.firstSet == nil {
			*indecisives = append(*indecisives, x.sym)
			return Indecisive
		}
		for t := range meta.firstSet {
			first[t] = struct{}{}
		}
		return meta.empty
	case *quantExpr:
		if x.max == 0 {
			return Positive
		}
		d := computeFirstExpr(x.inner, g, first, indecisives)
		if x.min == 0 {
			return Positive
		}
		return d
	case *seqExpr:
		return computeFirstSeq(x.xs, g, first, indecisives)
	case *altExpr:
		return computeFirstAlt(x.xs, g, first, indecisives)
	}
	switch e {
	case Any:
		for t := range g.terminals {
			first[t] = struct{}{}
		}
		return Negative
	case None:
		return Negative
	case Eps:
		return Positive
	}
	panic("grammar: unreachable expressor variant in computeFirst")
}

// computeFirstSeq includes the FIRST set of every leading child that can match empty, plus the
// first child after that which cannot; nothing past that point contributes.
func computeFirstSeq(xs []Expr, g *Grammar, first map[symbol.Symbol]struct{}, indecisives *[]symbol.Symbol) Decision {
	acc := map[symbol.Symbol]struct{}{}
	for _, x := range xs {
		d := computeFirstExpr(x, g, acc, indecisives)
		if d == Indecisive {
			return Indecisive
		}
		if d == Negative {
			for t := range acc {
				first[t] = struct{}{}
			}
			return Negative
		}
	}
	for t := range acc {
		first[t] = struct{}{}
	}
	return Positive
}

func computeFirstAlt(xs []Expr, g *Grammar, first map[symbol.Symbol]struct{}, indecisives *[]symbol.Symbol) Decision {
	result := Negative
	acc := map[symbol.Symbol]struct{}{}
	for _, x := range xs {
		d := computeFirstExpr(x, g, acc, indecisives)
		if d == Indecisive {
			return Indecisive
		}
		if d == Positive {
			result = Positive
		}
	}
	for t := range acc {
		first[t] = struct{}{}
	}
	return result
}

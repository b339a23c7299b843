package grammar

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/shadew/grammar/symbol"
)

type emptyWork struct {
	meta *ruleMeta
	path []symbol.Symbol
}

// computeEmpty runs the emptiness fixed-point over every rule in g, detecting left recursion
// along the way. It returns every cycle discovered; rules inside a discovered cycle are left
// Indecisive and carry the cycle in their own leftRecursive field.
func computeEmpty(g *Grammar) []Cycle {
	queue := linkedlistqueue.New()
	for _, m := range g.rules {
		queue.Enqueue(&emptyWork{meta: m, path: []symbol.Symbol{m.rule.LHS()}})
	}

	var cycles []Cycle
	for !queue.Empty() {
		v, _ := queue.Dequeue()
		cur := v.(*emptyWork)
		meta := cur.meta

		var indecisives []symbol.Symbol
		if checkEmptyRule(meta, g.lhsToRule, &indecisives) != Indecisive {
			continue
		}

		index := len(cur.path)
		for _, n := range indecisives {
			ntMeta := g.lhsToRule[n]

			if prevIndex := indexOfSymbol(cur.path, n); prevIndex >= 0 {
				cycle := Cycle(append(append([]symbol.Symbol{}, cur.path[prevIndex:]...), n))
				if !containsCycle(cycles, cycle) {
					cycles = append(cycles, cycle)
				}
				if !containsCycle(ntMeta.leftRecursive, cycle) {
					ntMeta.leftRecursive = append(ntMeta.leftRecursive, cycle)
				}
				tracer().Debugf("grammar: left recursion on %s: %s", n.Name(), cycle)
				continue
			}

			if len(ntMeta.leftRecursive) == 0 {
				path := make([]symbol.Symbol, index, index+1)
				copy(path, cur.path)
				path = append(path, n)
				queue.Enqueue(&emptyWork{meta: ntMeta, path: path})
			}
		}

		if len(meta.leftRecursive) == 0 {
			queue.Enqueue(cur)
		}
	}

	return cycles
}

func indexOfSymbol(path []symbol.Symbol, n symbol.Symbol) int {
	for i, s := range path {
		if s == n {
			return i
		}
	}
	return -1
}

// containsCycle reports whether cycles already holds a cycle identical to c, so that mutually
// recursive rules don't record the same witness path once per rediscovery.
func containsCycle(cycles []Cycle, c Cycle) bool {
	for _, existing := range cycles {
		if cycleEqual(existing, c) {
			return true
		}
	}
	return false
}

func cycleEqual(a, b Cycle) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// checkEmptyRule memoizes the emptiness decision for meta's rule, recomputing it if still
// indecisive. Any non-terminal the computation depended on but couldn't yet resolve is appended
// to indecisives.
func checkEmptyRule(meta *ruleMeta, lhsToRule map[symbol.Symbol]*ruleMeta, indecisives *[]symbol.Symbol) Decision {
	if meta.empty != Indecisive {
		return meta.empty
	}
	meta.empty = checkEmptyExpr(meta.rule.RHS(), lhsToRule, indecisives)
	return meta.empty
}

func checkEmptyExpr(e Expr, lhsToRule map[symbol.Symbol]*ruleMeta, indecisives *[]symbol.Symbol) Decision {
	switch x := e.(type) {
	case *terminalExpr, *negateExpr:
		return Negative
	case *nonterminalExpr:
		meta := lhsToRule[x.sym]
		if meta.empty == Indecisive {
			*indecisives = append(*indecisives, x.sym)
		}
		return meta.empty
	case *seqExpr:
		return checkEmptySeq(x.xs, lhsToRule, indecisives)
	case *altExpr:
		return checkEmptyAlt(x.xs, lhsToRule, indecisives)
	case *quantExpr:
		if x.min == 0 {
			return Positive
		}
		return checkEmptyExpr(x.inner, lhsToRule, indecisives)
	}
	switch e {
	case Any, None:
		return Negative
	case Eps:
		return Positive
	}
	panic("grammar: unreachable expressor variant in checkEmpty")
}

// checkEmptySeq only exports the indecisive non-terminals of the first indecisive child. Later
// children are still checked, so a Negative child anywhere makes the whole Seq Negative, but their
// indecisive non-terminals are not exported: a non-terminal that follows an undecided child is
// never followed as a possible left-recursion path.
func checkEmptySeq(xs []Expr, lhsToRule map[symbol.Symbol]*ruleMeta, indecisives *[]symbol.Symbol) Decision {
	firstIndecisive := -1
	for i, x := range xs {
		var export []symbol.Symbol
		d := checkEmptyExpr(x, lhsToRule, &export)
		if d == Negative {
			return Negative
		}
		if d == Indecisive && firstIndecisive < 0 {
			firstIndecisive = i
			*indecisives = append(*indecisives, export...)
		}
	}
	if firstIndecisive < 0 {
		return Positive
	}
	return Indecisive
}

func checkEmptyAlt(xs []Expr, lhsToRule map[symbol.Symbol]*ruleMeta, indecisives *[]symbol.Symbol) Decision {
	result := Negative
	var export []symbol.Symbol
	for _, x := range xs {
		d := checkEmptyExpr(x, lhsToRule, &export)
		if d == Positive {
			return Positive
		}
		if d == Indecisive {
			result = Indecisive
		}
	}
	*indecisives = append(*indecisives, export...)
	return result
}

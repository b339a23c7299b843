package grammar

import (
	"crypto/sha256"

	"github.com/shadew/grammar/symbol"
)

// altExpr matches exactly one of xs.
type altExpr struct {
	baseExpr
	xs []Expr
}

func newAlt(xs []Expr) Expr {
	cp := make([]Expr, len(xs))
	for i, x := range xs {
		if x == nil {
			panic("grammar: Alt element must not be nil")
		}
		cp[i] = x
	}
	e := &altExpr{xs: cp}
	e.baseExpr = baseExpr{self: e}
	return e
}

func (e *altExpr) Symbols(out map[symbol.Symbol]struct{}) {
	for _, x := range e.xs {
		x.Symbols(out)
	}
}
func (e *altExpr) Terminals(out map[symbol.Symbol]struct{}) {
	for _, x := range e.xs {
		x.Terminals(out)
	}
}
func (e *altExpr) Nonterminals(out map[symbol.Symbol]struct{}) {
	for _, x := range e.xs {
		x.Nonterminals(out)
	}
}

func (e *altExpr) Describe() string {
	s := "("
	for i, x := range e.xs {
		if i > 0 {
			s += " | "
		}
		s += x.Describe()
	}
	return s + ")"
}
func (e *altExpr) String() string { return e.Describe() }

func (e *altExpr) Get(index int) Expr {
	if index == 0 {
		return e
	}
	return nil
}

// Flatten drops None children, splices nested Alt children into this one, deduplicates
// alternatives that describe the same pattern, and reduces the degenerate cases (empty to None,
// one alternative to that alternative) before settling on a new Alt. Deduplication compares
// alternatives by a hash of their canonical Describe() text rather than by identity.
func (e *altExpr) Flatten() Expr {
	xs := make([]Expr, 0, len(e.xs))
	seen := map[[sha256.Size]byte]struct{}{}
	for _, x := range e.xs {
		fx := x.Flatten()
		if fx == None {
			continue
		}
		if a, ok := fx.(*altExpr); ok {
			for _, y := range a.xs {
				xs = appendDistinctAlt(xs, seen, y)
			}
			continue
		}
		xs = appendDistinctAlt(xs, seen, fx)
	}
	switch len(xs) {
	case 0:
		return None
	case 1:
		return xs[0]
	default:
		return newAlt(xs)
	}
}

func appendDistinctAlt(xs []Expr, seen map[[sha256.Size]byte]struct{}, x Expr) []Expr {
	h := sha256.Sum256([]byte(x.Describe()))
	if _, ok := seen[h]; ok {
		return xs
	}
	seen[h] = struct{}{}
	return append(xs, x)
}

func (e *altExpr) Or(fs ...Expr) Expr {
	xs := make([]Expr, len(e.xs), len(e.xs)+1)
	copy(xs, e.xs)
	switch len(fs) {
	case 0:
		xs = append(xs, Eps)
	case 1:
		xs = append(xs, fs[0])
	default:
		xs = append(xs, newSeq(fs))
	}
	return newAlt(xs)
}

package grammar

import "github.com/shadew/grammar/symbol"

// State walks step by step over an expressor and tracks what terminal may come next and whether
// the expressor has reached a valid completion. It is purely functional except for its index:
// use one State per logical parser thread.
type State struct {
	grammar *Grammar
	parent  *State
	expr    Expr
	index   int

	next    map[symbol.Symbol]struct{}
	matches bool
	end     bool
}

// NewState constructs a cursor over expr, relative to grammar, starting at index 0. parent may
// be nil; when set, it is the state that should resume once this one completes — for instance
// the state instantiated to walk the inner expressor of a Quant.
func NewState(grammar *Grammar, parent *State, expr Expr) *State {
	s := &State{grammar: grammar, parent: parent, expr: expr}
	s.update()
	return s
}

// Grammar returns the grammar this state is part of.
func (s *State) Grammar() *Grammar { return s.grammar }

// Parent returns the state that resumes once this one completes, or nil at the top level.
func (s *State) Parent() *State { return s.parent }

// Expr returns the expressor this state is walking.
func (s *State) Expr() Expr { return s.expr }

// Index returns the current progress through Expr().
func (s *State) Index() int { return s.index }

// Now returns the sub-expressor this state expects next, or nil if it expects nothing more.
func (s *State) Now() Expr { return s.expr.Get(s.index) }

// Advance moves one step through Expr() and recomputes the cursor's cache.
func (s *State) Advance() {
	s.index++
	s.update()
}

// SetIndex jumps to index and recomputes the cursor's cache.
func (s *State) SetIndex(index int) {
	s.index = index
	s.update()
}

// Next returns the set of terminals this state can see next. The returned map must not be
// mutated.
func (s *State) Next() map[symbol.Symbol]struct{} { return s.next }

// Matches reports whether Expr() already matches at this state's progress — not that no more
// input can follow, only that what has been seen so far is already a valid completion.
func (s *State) Matches() bool { return s.matches }

// End reports whether this state has progressed through the entirety of Expr().
func (s *State) End() bool { return s.end }

func (s *State) update() {
	s.next = map[symbol.Symbol]struct{}{}
	s.matches = s.grammar.next(s.expr, s.index, s.next)
	s.end = s.Now() == nil
}

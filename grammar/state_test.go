package grammar

import "testing"

func nextNames(s *State) map[string]bool {
	names := map[string]bool{}
	for sym := range s.Next() {
		names[sym.Name()] = true
	}
	return names
}

func sameNames(got map[string]bool, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for _, w := range want {
		if !got[w] {
			return false
		}
	}
	return true
}

// TestScenarioF walks a cursor over Seq(bar, baz, LOREM) against scenario A's grammar, checking
// Next()/Matches()/End() at each step.
func TestScenarioF(t *testing.T) {
	GUS := testTerm("GUS")
	HELLO := testTerm("HELLO")
	BAR := testTerm("BAR")
	BAZ := testTerm("BAZ")
	LOREM := testTerm("LOREM")

	foo := testNonterm("foo")
	bar := testNonterm("bar")
	baz := testNonterm("baz")
	gus := testNonterm("gus")

	b := NewBuilder()
	b.Rule(foo, Nonterminal(bar).Or(Nonterminal(baz)).Or(Terminal(LOREM)))
	b.Rule(bar, ExprOf(Terminal(GUS), Terminal(HELLO)).Or(Terminal(BAR)))
	b.Rule(baz, Terminal(BAZ).Or(Eps))
	b.Rule(gus, Eps)

	g := b.Build()
	if err := g.Problem(); err != nil {
		t.Fatalf("Problem() = %v, want nil", err)
	}

	expr := ExprOf(Nonterminal(bar), Nonterminal(baz), Terminal(LOREM)).Flatten()
	s := NewState(g, nil, expr)

	if got := nextNames(s); !sameNames(got, "GUS", "BAR") {
		t.Errorf("index 0: Next() = %v, want {GUS, BAR}", got)
	}
	if s.Matches() {
		t.Errorf("index 0: Matches() = true, want false")
	}
	if s.End() {
		t.Errorf("index 0: End() = true, want false")
	}

	s.Advance()
	if got := nextNames(s); !sameNames(got, "BAZ", "LOREM") {
		t.Errorf("index 1: Next() = %v, want {BAZ, LOREM}", got)
	}
	if s.Matches() {
		t.Errorf("index 1: Matches() = true, want false")
	}
	if s.End() {
		t.Errorf("index 1: End() = true, want false")
	}

	s.Advance()
	if got := nextNames(s); !sameNames(got, "LOREM") {
		t.Errorf("index 2: Next() = %v, want {LOREM}", got)
	}
	if s.Matches() {
		t.Errorf("index 2: Matches() = true, want false")
	}
	if s.End() {
		t.Errorf("index 2: End() = true, want false")
	}

	s.Advance()
	if got := nextNames(s); len(got) != 0 {
		t.Errorf("index 3: Next() = %v, want empty", got)
	}
	if !s.Matches() {
		t.Errorf("index 3: Matches() = false, want true")
	}
	if !s.End() {
		t.Errorf("index 3: End() = false, want true")
	}
}

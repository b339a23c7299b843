package grammar

import "testing"

func TestRuleRHSAlts(t *testing.T) {
	foo := Terminal(testTerm("FOO"))
	bar := Terminal(testTerm("BAR"))
	lhs := testNonterm("baz")

	single := NewRule(lhs, foo)
	if alts := single.RHSAlts(); len(alts) != 1 || alts[0] != foo {
		t.Errorf("single-child rule RHSAlts() = %v, want [foo]", alts)
	}

	alt := NewRule(lhs, Alts(foo, bar))
	if alts := alt.RHSAlts(); len(alts) != 2 {
		t.Errorf("alt rule RHSAlts() = %v, want 2 alternatives", alts)
	}
}

func TestRuleMerge(t *testing.T) {
	lhs := testNonterm("foo")
	bar := Terminal(testTerm("BAR"))
	baz := Terminal(testTerm("BAZ"))

	a := NewRule(lhs, bar)
	b := NewRule(lhs, baz)

	merged, err := a.Merge(b)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if got := merged.Describe(); got != "foo := (BAR | BAZ)" {
		t.Errorf("Describe() = %q, want %q", got, "foo := (BAR | BAZ)")
	}
}

func TestRuleMergeRejectsDifferentLHS(t *testing.T) {
	a := NewRule(testNonterm("foo"), Eps)
	b := NewRule(testNonterm("bar"), Eps)

	if _, err := a.Merge(b); err == nil {
		t.Errorf("Merge() with differing LHS: want error, got nil")
	}
}

func TestRuleDescribe(t *testing.T) {
	r := NewRule(testNonterm("foo"), Terminal(testTerm("BAR")))
	if got := r.Describe(); got != "foo := BAR" {
		t.Errorf("Describe() = %q, want %q", got, "foo := BAR")
	}
}

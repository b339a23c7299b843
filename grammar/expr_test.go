package grammar

import "testing"

func TestExprOf(t *testing.T) {
	foo := Terminal(testTerm("FOO"))
	bar := Terminal(testTerm("BAR"))

	if got := ExprOf(); got != Eps {
		t.Errorf("ExprOf() = %v, want Eps", got)
	}
	if got := ExprOf(foo); got != foo {
		t.Errorf("ExprOf(foo) = %v, want foo itself", got)
	}
	if got := ExprOf(foo, bar); got.Describe() != "(FOO BAR)" {
		t.Errorf("ExprOf(foo, bar).Describe() = %q, want %q", got.Describe(), "(FOO BAR)")
	}
}

func TestAlts(t *testing.T) {
	foo := Terminal(testTerm("FOO"))
	bar := Terminal(testTerm("BAR"))

	if got := Alts(); got != None {
		t.Errorf("Alts() = %v, want None", got)
	}
	if got := Alts(foo); got != foo {
		t.Errorf("Alts(foo) = %v, want foo itself", got)
	}
	if got := Alts(foo, bar); got.Describe() != "(FOO | BAR)" {
		t.Errorf("Alts(foo, bar).Describe() = %q, want %q", got.Describe(), "(FOO | BAR)")
	}
}

func TestNeg(t *testing.T) {
	foo := testTerm("FOO")

	if got := Neg(); got != Any {
		t.Errorf("Neg() = %v, want Any", got)
	}
	if got := Neg(foo); got.Describe() != "~(FOO)" {
		t.Errorf("Neg(foo).Describe() = %q, want %q", got.Describe(), "~(FOO)")
	}
}

func TestIsTerminalMatch(t *testing.T) {
	foo := testTerm("FOO")

	cases := []struct {
		caption string
		e       Expr
		want    bool
	}{
		{"terminal", Terminal(foo), true},
		{"negate", Neg(foo), true},
		{"any", Any, true},
		{"none", None, false},
		{"eps", Eps, false},
		{"nonterminal", Nonterminal(testNonterm("n")), false},
	}
	for _, c := range cases {
		if got := IsTerminalMatch(c.e); got != c.want {
			t.Errorf("%s: IsTerminalMatch() = %v, want %v", c.caption, got, c.want)
		}
	}
}

package grammar

type testTerm string

func (t testTerm) Name() string     { return string(t) }
func (t testTerm) IsTerminal() bool { return true }

type testNonterm string

func (n testNonterm) Name() string     { return string(n) }
func (n testNonterm) IsTerminal() bool { return false }

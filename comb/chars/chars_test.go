package chars

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/combi/comb"
)

func TestLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.comb")
	defer teardown()
	//
	v, err := comb.ParseString(Literal("hello"), "hello")
	if err != nil || v != "hello" {
		t.Errorf("Expected literal to produce \"hello\", got %v (%v)", v, err)
	}
	_, err = comb.ParseString(Literal("hello"), "help")
	if err == nil {
		t.Fatalf("Expected literal to fail on \"help\"")
	}
	if msg := err.Error(); msg != `expected "hello" at 1:1` {
		t.Errorf("Expected failure at the attempt position, is %q", msg)
	}
}

func TestRegexp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.comb")
	defer teardown()
	//
	number := Regexp(`[0-9]+`)
	v, rest, err := comb.ParsePartialString(number, "123abc")
	if err != nil || v != "123" || rest != "abc" {
		t.Errorf("Expected (\"123\", \"abc\"), got (%v, %q) (%v)", v, rest, err)
	}
	// the match is anchored at the cursor, not searched for
	_, err = comb.ParseString(number, "abc123")
	if err == nil {
		t.Errorf("Expected anchored regexp to fail on \"abc123\"")
	}
	// rune positions, not byte positions
	v, rest, err = comb.ParsePartialString(Literal("␣").Then(number), "␣42x")
	if err != nil || v != "42" || rest != "x" {
		t.Errorf("Expected (\"42\", \"x\") after a multi-byte rune, got (%v, %q) (%v)", v, rest, err)
	}
}

func TestSingleRuneMatchers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.comb")
	defer teardown()
	//
	cases := []struct {
		name  string
		p     comb.Parser
		good  string
		bad   string
		value rune
	}{
		{"OneOf", OneOf("+-"), "-", "*", '-'},
		{"Range", Range('a', 'f'), "c", "z", 'c'},
		{"Digit", Digit(), "7", "x", '7'},
		{"Letter", Letter(), "x", "7", 'x'},
		{"AnyChar", AnyChar(), "!", "", '!'},
	}
	for _, c := range cases {
		v, err := comb.ParseString(c.p, c.good)
		if err != nil || v != c.value {
			t.Errorf("%s: expected %q to produce %q, got %v (%v)", c.name, c.good, c.value, v, err)
		}
		if _, err := comb.ParseString(c.p, c.bad); err == nil {
			t.Errorf("%s: expected %q to fail", c.name, c.bad)
		}
	}
}

func TestWhitespaceAndLexeme(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.comb")
	defer teardown()
	//
	v, err := comb.ParseString(Whitespace(), " \t\n")
	if err != nil || v != " \t\n" {
		t.Errorf("Expected whitespace run, got %v (%v)", v, err)
	}
	if _, err := comb.ParseString(Whitespace(), ""); err == nil {
		t.Errorf("Expected empty input to fail the whitespace run")
	}
	word := Lexeme(Literal("if"))
	v, rest, err := comb.ParsePartialString(word, "if   (")
	if err != nil || v != "if" || rest != "(" {
		t.Errorf("Expected lexeme to drop trailing whitespace, got (%v, %q) (%v)", v, rest, err)
	}
}

func TestEOF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.comb")
	defer teardown()
	//
	p := Literal("x").Skip(EOF())
	if v, err := comb.ParseString(p, "x"); err != nil || v != "x" {
		t.Errorf("Expected \"x\" at end of input, got %v (%v)", v, err)
	}
	_, err := comb.ParseString(p, "xy")
	if err == nil {
		t.Fatalf("Expected EOF to fail on trailing input")
	}
	perr := err.(*comb.ParseError)
	if perr.Pos != 1 || len(perr.Expected) != 1 || perr.Expected[0] != "EOF" {
		t.Errorf("Expected EOF expectation at 1, got %v at %d", perr.Expected, perr.Pos)
	}
}

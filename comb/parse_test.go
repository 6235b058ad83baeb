package comb_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/combi"
	"github.com/npillmayer/combi/comb"
)

func TestParseConsumesFully(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.comb")
	defer teardown()
	//
	p := lit("ab").Plus(lit("c"))
	v, err := comb.ParseString(p, "abc")
	if err != nil || v != "abc" {
		t.Errorf("Expected full parse to produce \"abc\", got %v (%v)", v, err)
	}
	v, rest, err := comb.ParsePartialString(p, "abc")
	if err != nil || v != "abc" || rest != "" {
		t.Errorf("Expected partial parse (\"abc\", \"\"), got (%v, %q) (%v)", v, rest, err)
	}
}

func TestParseRejectsTrailingInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.comb")
	defer teardown()
	//
	_, err := comb.ParseString(lit("ab"), "abc")
	if err == nil {
		t.Fatalf("Expected trailing input to fail the parse")
	}
	perr := err.(*comb.ParseError)
	if perr.Pos != 2 || len(perr.Expected) != 1 || perr.Expected[0] != "EOF" {
		t.Errorf("Expected synthetic EOF failure at 2, got %v at %d", perr.Expected, perr.Pos)
	}
}

func TestParsePartialRemainder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.comb")
	defer teardown()
	//
	v, rest, err := comb.ParsePartialString(lit("ab"), "abcd")
	if err != nil || v != "ab" || rest != "cd" {
		t.Errorf("Expected (\"ab\", \"cd\"), got (%v, %q) (%v)", v, rest, err)
	}
}

func TestErrorMessageLineColumn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.comb")
	defer teardown()
	//
	p := lit("ab\n").Then(lit("x"))
	_, err := comb.ParseString(p, "ab\ncd")
	if err == nil {
		t.Fatalf("Expected parse to fail")
	}
	if msg := err.Error(); msg != `expected "x" at 2:1` {
		t.Errorf("Expected message 'expected \"x\" at 2:1', is %q", msg)
	}
	_, err = comb.ParseString(lit("a").Or(lit("b")), "c")
	if err == nil {
		t.Fatalf("Expected parse to fail")
	}
	if msg := err.Error(); msg != `expected "a" or "b" at 1:1` {
		t.Errorf("Expected alternation connector in message, is %q", msg)
	}
}

// runeSlice is a minimal input without location knowledge.
type runeSlice []rune

func (rs runeSlice) At(pos uint64) interface{}     { return rs[pos] }
func (rs runeSlice) Len() uint64                   { return uint64(len(rs)) }
func (rs runeSlice) Suffix(pos uint64) combi.Input { return rs[pos:] }

func TestErrorMessagePositionFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.comb")
	defer teardown()
	//
	_, err := lit("x").Parse(runeSlice("abc"))
	if err == nil {
		t.Fatalf("Expected parse to fail")
	}
	if msg := err.Error(); !strings.Contains(msg, "at position 0") {
		t.Errorf("Expected plain position rendering, is %q", msg)
	}
}

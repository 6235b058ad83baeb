package comb

import (
	"fmt"
	"strings"

	"github.com/npillmayer/combi"
)

// --- Parse errors -----------------------------------------------------------

// ParseError is the sole user-visible failure artifact: a terminal failure
// (or trailing-input condition) which reached a top-level Parse call without
// being absorbed by any combinator. It carries the original input for
// rendering a text location from the failure position.
type ParseError struct {
	Input    combi.Input
	Pos      uint64   // furthest cursor position reached
	Expected []string // expectation labels, in lexicographic order
}

func newParseError(input combi.Input, fail *Failure) *ParseError {
	return &ParseError{
		Input:    input,
		Pos:      fail.Pos,
		Expected: fail.Expected(),
	}
}

// Error renders as
//
//    expected <e1> or <e2> … at <line>:<column>
//
// for inputs which can locate positions (see combi.Locator), and with
// "at position <pos>" otherwise.
func (e *ParseError) Error() string {
	expected := "nothing"
	if len(e.Expected) > 0 {
		expected = strings.Join(e.Expected, " or ")
	}
	if loc, ok := e.Input.(combi.Locator); ok {
		line, col := loc.LineCol(e.Pos)
		return fmt.Sprintf("expected %s at %d:%d", expected, line, col)
	}
	return fmt.Sprintf("expected %s at position %d", expected, e.Pos)
}

// --- Entry points -----------------------------------------------------------

// Parse invokes p on input at cursor position 0 and requires it to consume
// the input completely. It returns the produced value, or a *ParseError when
// p fails or leaves trailing input — the latter is reported as an expected
// end of input at the position p stopped at.
func (p Parser) Parse(input combi.Input) (interface{}, error) {
	r := p.Apply(input, 0)
	if !r.OK() {
		err := newParseError(input, r.Err)
		tracer().Debugf("parse failed: %v", err)
		return nil, err
	}
	if r.End != input.Len() {
		err := newParseError(input, newFailure(r.End, "EOF"))
		tracer().Debugf("parse left trailing input: %v", err)
		return nil, err
	}
	return r.Value, nil
}

// ParsePartial invokes p on input at cursor position 0 and returns the
// produced value together with the unconsumed remainder of the input. Unlike
// Parse it does not require full consumption; a failure of p still surfaces
// as a *ParseError.
func (p Parser) ParsePartial(input combi.Input) (interface{}, combi.Input, error) {
	r := p.Apply(input, 0)
	if !r.OK() {
		return nil, input, newParseError(input, r.Err)
	}
	return r.Value, input.Suffix(r.End), nil
}

// ParseString is Parse over a string input.
func ParseString(p Parser, s string) (interface{}, error) {
	return p.Parse(combi.NewStringInput(s))
}

// ParsePartialString is ParsePartial over a string input, returning the
// unconsumed remainder as a string.
func ParsePartialString(p Parser, s string) (interface{}, string, error) {
	v, rest, err := p.ParsePartial(combi.NewStringInput(s))
	if err != nil {
		return nil, s, err
	}
	return v, rest.(combi.StringInput).String(), nil
}

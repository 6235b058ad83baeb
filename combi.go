package combi

import (
	"fmt"

	"golang.org/x/exp/utf8string"
)

// --- A general purpose interface for parser input --------------------------

// Input is a finite, randomly-accessible sequence of elements, together with
// an integer cursor managed by the parsers operating on it. Elements are
// runes in the common case, but may be anything, e.g. tokens produced by a
// scanner (see package comb/tokens).
//
// Inputs are immutable: no parser ever mutates an input; all parsing state
// is the cursor handed around between parsers.
type Input interface {
	At(pos uint64) interface{} // element at position pos; pos < Len()
	Len() uint64               // number of elements
	Suffix(pos uint64) Input   // the input from position pos up to the end
}

// Locator is an optional interface for inputs which can translate a cursor
// position into a human-readable text location. Line and column are 1-based.
// Inputs without location knowledge (token sequences, usually) simply do not
// implement it; error messages then fall back to plain positions.
type Locator interface {
	LineCol(pos uint64) (line, col int)
}

// --- String input -----------------------------------------------------------

// StringInput is an input over the runes of a string. It is backed by a
// utf8string.String, giving random access without re-decoding the string
// for every position.
type StringInput struct {
	s *utf8string.String
}

// NewStringInput wraps a string as parser input. Positions count runes,
// not bytes.
func NewStringInput(s string) StringInput {
	return StringInput{s: utf8string.NewString(s)}
}

var _ Input = StringInput{}
var _ Locator = StringInput{}

// At returns the rune at position pos.
func (si StringInput) At(pos uint64) interface{} {
	return si.s.At(int(pos))
}

// Len returns the number of runes.
func (si StringInput) Len() uint64 {
	return uint64(si.s.RuneCount())
}

// Suffix returns the input from position pos up to the end.
func (si StringInput) Suffix(pos uint64) Input {
	return NewStringInput(si.Slice(pos, si.Len()))
}

// Slice returns the text between rune positions from and to.
func (si StringInput) Slice(from, to uint64) string {
	return si.s.Slice(int(from), int(to))
}

// LineCol scans the input up to pos, counting lines. Both line and column
// are 1-based.
func (si StringInput) LineCol(pos uint64) (int, int) {
	line, col := 1, 1
	limit := pos
	if l := si.Len(); limit > l {
		limit = l
	}
	for i := uint64(0); i < limit; i++ {
		if si.s.At(int(i)) == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func (si StringInput) String() string {
	return si.s.String()
}

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here,
// as it is up to applications to define them.
type TokType int

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language. Parsers from package comb are agnostic
// about their input's element type, so token sequences may be parsed just
// like character sequences (see package comb/tokens).
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. A span
// denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

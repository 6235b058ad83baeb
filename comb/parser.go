/*
Package comb implements a backtracking parser-combinator engine.

Parsers are immutable values wrapping a pure step function from an input
and a cursor position to a result. Combinators derive new parsers from
existing ones: sequencing (Then/Skip/Seq), ordered choice (Or/Alt), bounded
repetition (Many/Times/AtLeast/AtMost/Count), value transformation
(Map/Result) and monadic continuation (Bind). Grammars — including recursive
and context-sensitive ones — are built by composing parsers; there is no
grammar-generation or code-generation step.

Building a Parser

Leaf parsers satisfy the step contract and nothing more; package comb/chars
provides the usual suspects for character input. A parser for non-empty
comma-separated integer lists would look like

    number := chars.Regexp(`[0-9]+`).Desc("number")
    list   := number.Skip(chars.Literal(",")).Many().Plus(number.Count(1))

and is invoked with

    value, err := comb.ParseString(list, "3,17,99")

On failure, err renders the furthest-reached expectation set together with
its text position.

Parsing is a plain recursive descent over the composed parsers: ordered
choice backtracks the cursor past failed branches, repetition absorbs the
final failing attempt, and competing failure diagnostics are merged so that
the deepest one wins. The engine does not memoize and does not guarantee
linear time.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package comb

import (
	"sync"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/combi"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'combi.comb'.
func tracer() tracing.Trace {
	return tracing.Select("combi.comb")
}

// --- Parser core ------------------------------------------------------------

// Step is the invocation contract every parser satisfies: attempt a parse
// on input, starting at cursor position pos. Steps must be deterministic,
// side-effect-free and must not mutate the input.
type Step func(input combi.Input, pos uint64) Result

// Parser wraps a step function and derives further parsers from it via the
// combinator methods. Parsers are immutable and stateless; the same parser
// value may be invoked concurrently from independent call stacks and reused
// across many inputs.
type Parser struct {
	step Step
}

// NewParser wraps a step function as a parser. This is the hook for leaf
// parsers (literal matchers, token matchers, …), which are not built from
// other parsers.
func NewParser(step Step) Parser {
	return Parser{step: step}
}

// Apply invokes the parser on input at cursor position pos.
func (p Parser) Apply(input combi.Input, pos uint64) Result {
	return p.step(input, pos)
}

// Lazy defers construction of a parser until its first invocation. Recursive
// grammar rules must reference themselves through Lazy: the thunk breaks the
// otherwise infinite recursion at construction time, while run-time recursion
// behaves as expected. The built parser is cached after the first call.
func Lazy(build func() Parser) Parser {
	var once sync.Once
	var p Parser
	return NewParser(func(input combi.Input, pos uint64) Result {
		once.Do(func() {
			p = build()
		})
		return p.Apply(input, pos)
	})
}

// Return creates a parser which always succeeds with value, consuming
// nothing.
func Return(value interface{}) Parser {
	return NewParser(func(input combi.Input, pos uint64) Result {
		return Succeed(value, pos)
	})
}

// FailWith creates a parser which always fails, expecting label.
func FailWith(label string) Parser {
	return NewParser(func(input combi.Input, pos uint64) Result {
		return Fail(pos, label)
	})
}

// Desc replaces the expectation set of a failing parser by {label},
// regardless of what the wrapped parser reported; the failure is located at
// the position the parse attempt started from. Use it to surface grammar-level
// vocabulary ("number", "matrix row") instead of primitive-level detail.
func (p Parser) Desc(label string) Parser {
	return NewParser(func(input combi.Input, pos uint64) Result {
		r := p.Apply(input, pos)
		if r.OK() {
			return r
		}
		return Fail(pos, label)
	})
}

// --- Results ----------------------------------------------------------------

// Result is the outcome of a parse attempt at a given cursor position:
// either a success carrying a produced value and the position just behind
// the consumed input, or a failure. Results are transient values owned by
// the caller.
type Result struct {
	Value interface{} // value produced by a successful parse
	End   uint64      // position just behind the consumed input
	Err   *Failure    // non-nil iff the parse attempt failed
}

// OK is true for the result of a successful parse attempt.
func (r Result) OK() bool {
	return r.Err == nil
}

// Succeed creates a successful result, with the cursor moved to end.
// end equal to the attempt's start position denotes a zero-width success.
func Succeed(value interface{}, end uint64) Result {
	return Result{Value: value, End: end}
}

// Fail creates a failed result at position pos, with a set of human-readable
// descriptions of what would have succeeded there.
func Fail(pos uint64, expected ...string) Result {
	return Result{Err: newFailure(pos, expected...)}
}

// --- Failures ---------------------------------------------------------------

// Failure describes a failed parse attempt: the furthest position at which
// failing was detected, plus the set of expectations at that position.
type Failure struct {
	Pos      uint64       // furthest cursor position reached
	expected *treeset.Set // expectation labels, ordered for deterministic output
}

func newFailure(pos uint64, expected ...string) *Failure {
	set := treeset.NewWith(utils.StringComparator)
	for _, label := range expected {
		set.Add(label)
	}
	return &Failure{Pos: pos, expected: set}
}

// Expected returns the expectation labels in lexicographic order.
func (f *Failure) Expected() []string {
	labels := make([]string, 0, f.expected.Size())
	for _, v := range f.expected.Values() {
		labels = append(labels, v.(string))
	}
	return labels
}

// merge selects the more informative of two failures: the one which got
// further wins; on a tie the expectation sets are unioned. Neither argument
// is mutated.
func (f *Failure) merge(other *Failure) *Failure {
	if f == nil {
		return other
	}
	if other == nil || f.Pos > other.Pos {
		return f
	}
	if other.Pos > f.Pos {
		return other
	}
	union := treeset.NewWith(utils.StringComparator)
	union.Add(f.expected.Values()...)
	union.Add(other.expected.Values()...)
	return &Failure{Pos: f.Pos, expected: union}
}

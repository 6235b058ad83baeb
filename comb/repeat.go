package comb

import (
	"fmt"

	"github.com/npillmayer/combi"
)

// Unbounded lifts the upper repetition bound of Times.
const Unbounded = -1

// Times invokes p repeatedly, each attempt consuming input behind its
// predecessor, and produces the ordered list of accumulated values.
// Repetition stops successfully once max attempts have succeeded, or once an
// attempt fails after at least min successes — the failed attempt is
// backtracked and consumes nothing. An attempt failing before min successes
// were accumulated propagates that last failure, whose position reflects the
// deepest partial match.
//
// An unbounded repetition over a parser succeeding without consuming input
// would never terminate; Times therefore stops after counting a zero-width
// success once.
//
// Bounds with min < 0 or max < min are a programming error and panic.
func (p Parser) Times(min, max int) Parser {
	if min < 0 || (max != Unbounded && max < min) {
		panic(fmt.Sprintf("comb: invalid repetition bounds (%d,%d)", min, max))
	}
	return NewParser(func(input combi.Input, pos uint64) Result {
		values := []interface{}{}
		cursor := pos
		for max == Unbounded || len(values) < max {
			r := p.Apply(input, cursor)
			if !r.OK() {
				if len(values) >= min {
					return Succeed(values, cursor)
				}
				return r
			}
			values = append(values, r.Value)
			if r.End == cursor && max == Unbounded {
				return Succeed(values, cursor) // collecting on would loop forever
			}
			cursor = r.End
		}
		return Succeed(values, cursor)
	})
}

// Many invokes p repeatedly until it fails, producing the accumulated values.
// Many never fails: when p fails immediately, it succeeds with an empty list,
// consuming nothing.
func (p Parser) Many() Parser {
	return p.Times(0, Unbounded)
}

// AtLeast is repetition with a lower bound only.
func (p Parser) AtLeast(n int) Parser {
	return p.Times(n, Unbounded)
}

// AtMost is repetition with an upper bound only.
func (p Parser) AtMost(n int) Parser {
	return p.Times(0, n)
}

// Count is repetition an exact number of times; the produced list has
// exactly n values.
func (p Parser) Count(n int) Parser {
	return p.Times(n, n)
}

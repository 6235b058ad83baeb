package comb

import (
	"fmt"

	"github.com/npillmayer/combi"
)

// === Sequencing =============================================================

// Then invokes q on the input left over by p and produces q's value,
// discarding p's. A failure of either parser propagates unchanged; q is
// never attempted when p fails.
func (p Parser) Then(q Parser) Parser {
	return NewParser(func(input combi.Input, pos uint64) Result {
		r := p.Apply(input, pos)
		if !r.OK() {
			return r
		}
		return q.Apply(input, r.End)
	})
}

// Skip invokes q on the input left over by p and produces p's value,
// discarding q's. Failure propagation is identical to Then; only the
// retained value differs.
func (p Parser) Skip(q Parser) Parser {
	return NewParser(func(input combi.Input, pos uint64) Result {
		r := p.Apply(input, pos)
		if !r.OK() {
			return r
		}
		rq := q.Apply(input, r.End)
		if !rq.OK() {
			return rq
		}
		return Succeed(r.Value, rq.End)
	})
}

// Seq invokes the given parsers one after another, each consuming input
// behind its predecessor, and produces the ordered list of all their values.
// The first failure short-circuits the sequence and propagates unchanged.
func Seq(parsers ...Parser) Parser {
	return NewParser(func(input combi.Input, pos uint64) Result {
		values := make([]interface{}, 0, len(parsers))
		cursor := pos
		for _, p := range parsers {
			r := p.Apply(input, cursor)
			if !r.OK() {
				return r
			}
			values = append(values, r.Value)
			cursor = r.End
		}
		return Succeed(values, cursor)
	})
}

// Plus is a 2-element Seq whose values are combined with the additive
// operation of their type: concatenation for strings and []interface{}
// slices, addition for ints and float64s. Combining any other value type is
// a programming error and panics.
func (p Parser) Plus(q Parser) Parser {
	return Seq(p, q).Map(func(v interface{}) interface{} {
		vs := v.([]interface{})
		return add(vs[0], vs[1])
	})
}

func add(a, b interface{}) interface{} {
	switch x := a.(type) {
	case string:
		return x + b.(string)
	case []interface{}:
		joined := make([]interface{}, 0, len(x))
		joined = append(joined, x...)
		return append(joined, b.([]interface{})...)
	case int:
		return x + b.(int)
	case float64:
		return x + b.(float64)
	}
	panic(fmt.Sprintf("comb: no additive operation for values of type %T", a))
}

// === Alternation ============================================================

// Alt tries the given parsers in order at the same cursor position and
// produces the first success, untouched. Between branches the cursor is
// backtracked: a failed branch never commits partial consumption. When all
// branches fail, the failure which got furthest into the input is reported;
// branches failing at the same furthest position have their expectation sets
// unioned. Alt with no parsers always fails, expecting nothing.
func Alt(parsers ...Parser) Parser {
	return NewParser(func(input combi.Input, pos uint64) Result {
		var fail *Failure
		for _, p := range parsers {
			r := p.Apply(input, pos)
			if r.OK() {
				return r
			}
			fail = fail.merge(r.Err)
		}
		if fail == nil {
			fail = newFailure(pos)
		}
		return Result{Err: fail}
	})
}

// Or is binary Alt. It chains naturally: a.Or(b).Or(c) tries a, b and c
// in order.
func (p Parser) Or(q Parser) Parser {
	return Alt(p, q)
}

// === Transformation and binding =============================================

// Map transforms the value of a successful parse with f; failures propagate
// unchanged. f must be pure and total over the values p produces — a panic
// inside f is a programming error, not a parse failure.
func (p Parser) Map(f func(interface{}) interface{}) Parser {
	return NewParser(func(input combi.Input, pos uint64) Result {
		r := p.Apply(input, pos)
		if !r.OK() {
			return r
		}
		return Succeed(f(r.Value), r.End)
	})
}

// Result discards the parsed value and substitutes a constant.
func (p Parser) Result(value interface{}) Parser {
	return p.Map(func(interface{}) interface{} {
		return value
	})
}

// Bind invokes f on the value of a successful parse to obtain a follow-up
// parser, which is then invoked on the remaining input; its result, success
// or failure, is returned directly. Bind lets later parsing decisions depend
// on earlier parsed values, e.g. "read a length prefix, then parse exactly
// that many elements" — grammars beyond context-free territory.
func (p Parser) Bind(f func(interface{}) Parser) Parser {
	return NewParser(func(input combi.Input, pos uint64) Result {
		r := p.Apply(input, pos)
		if !r.OK() {
			return r
		}
		return f(r.Value).Apply(input, r.End)
	})
}

// Opt makes p optional: on failure it succeeds with value nil, consuming
// nothing.
func (p Parser) Opt() Parser {
	return p.Or(Return(nil))
}

// SepBy parses a possibly empty list of items separated by sep, producing
// the item values as a []interface{}. Separator values are dropped.
func SepBy(item, sep Parser) Parser {
	head := item.Map(func(v interface{}) interface{} {
		return []interface{}{v}
	})
	tail := sep.Then(item).Many()
	return head.Plus(tail).Or(Return([]interface{}{}))
}

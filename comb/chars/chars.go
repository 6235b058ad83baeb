/*
Package chars provides leaf parsers over character input.

Leaf parsers are primitive parsers not built from other parsers. The ones
collected here match literal strings, regular expressions, single runes by
category or set membership, whitespace runs and the end of input. All of
them simply satisfy the step contract of package comb and may be freely
combined with any parser built elsewhere.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chars

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/combi"
	"github.com/npillmayer/combi/comb"
)

// Literal matches the string lit at the cursor, producing lit. It fails at
// the attempt position, expecting the (quoted) literal.
func Literal(lit string) comb.Parser {
	runes := []rune(lit)
	label := strconv.Quote(lit)
	return comb.NewParser(func(input combi.Input, pos uint64) comb.Result {
		cursor := pos
		for _, r := range runes {
			if cursor >= input.Len() || input.At(cursor) != r {
				return comb.Fail(pos, label)
			}
			cursor++
		}
		return comb.Succeed(lit, cursor)
	})
}

// Regexp matches the regular expression pattern at the cursor, anchored,
// producing the matched text. The pattern must compile (a bad pattern is a
// programming error and panics) and the input must be a combi.StringInput.
func Regexp(pattern string) comb.Parser {
	re := regexp.MustCompile(`\A(?:` + pattern + `)`)
	return comb.NewParser(func(input combi.Input, pos uint64) comb.Result {
		si, ok := input.(combi.StringInput)
		if !ok {
			return comb.Fail(pos, pattern)
		}
		tail := si.Slice(pos, si.Len())
		loc := re.FindStringIndex(tail)
		if loc == nil {
			return comb.Fail(pos, pattern)
		}
		matched := tail[:loc[1]]
		return comb.Succeed(matched, pos+uint64(utf8.RuneCountInString(matched)))
	})
}

// matchRune matches a single rune satisfying pred, producing the rune.
func matchRune(label string, pred func(rune) bool) comb.Parser {
	return comb.NewParser(func(input combi.Input, pos uint64) comb.Result {
		if pos < input.Len() {
			if r, ok := input.At(pos).(rune); ok && pred(r) {
				return comb.Succeed(r, pos+1)
			}
		}
		return comb.Fail(pos, label)
	})
}

// OneOf matches a single rune contained in set, producing the rune.
func OneOf(set string) comb.Parser {
	return matchRune(fmt.Sprintf("one of %q", set), func(r rune) bool {
		return strings.ContainsRune(set, r)
	})
}

// Range matches a single rune between lo and hi, inclusive, producing
// the rune.
func Range(lo, hi rune) comb.Parser {
	return matchRune(fmt.Sprintf("%q…%q", lo, hi), func(r rune) bool {
		return lo <= r && r <= hi
	})
}

// Digit matches a single decimal digit, producing the rune.
func Digit() comb.Parser {
	return matchRune("digit", unicode.IsDigit)
}

// Letter matches a single letter, producing the rune.
func Letter() comb.Parser {
	return matchRune("letter", unicode.IsLetter)
}

// AnyChar matches any single input element, producing it. It fails at the
// end of input only.
func AnyChar() comb.Parser {
	return comb.NewParser(func(input combi.Input, pos uint64) comb.Result {
		if pos >= input.Len() {
			return comb.Fail(pos, "any character")
		}
		return comb.Succeed(input.At(pos), pos+1)
	})
}

// Whitespace matches a run of at least one whitespace rune, producing the
// run as a string.
func Whitespace() comb.Parser {
	return comb.NewParser(func(input combi.Input, pos uint64) comb.Result {
		cursor := pos
		var run []rune
		for cursor < input.Len() {
			r, ok := input.At(cursor).(rune)
			if !ok || !unicode.IsSpace(r) {
				break
			}
			run = append(run, r)
			cursor++
		}
		if cursor == pos {
			return comb.Fail(pos, "whitespace")
		}
		return comb.Succeed(string(run), cursor)
	})
}

// Lexeme wraps p to consume (and drop) trailing whitespace after it.
func Lexeme(p comb.Parser) comb.Parser {
	return p.Skip(Whitespace().Opt())
}

// EOF succeeds at the end of input only, consuming nothing and producing
// nil. Everywhere else it fails, expecting "EOF".
func EOF() comb.Parser {
	return comb.NewParser(func(input combi.Input, pos uint64) comb.Result {
		if pos >= input.Len() {
			return comb.Succeed(nil, pos)
		}
		return comb.Fail(pos, "EOF")
	})
}

/*
Package tokens provides parser inputs over token sequences.

The combinator engine of package comb is agnostic about its input's element
type. This package lets grammars operate on scanned tokens instead of raw
characters: an Input buffers a token run, and the leaf parsers Type and
Lexeme match single tokens by category or by text. A lexmachine-backed
tokenizer adapter produces such inputs from source text (see LMAdapter).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tokens

import (
	"strconv"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/combi"
	"github.com/npillmayer/combi/comb"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'combi.tokens'.
func tracer() tracing.Trace {
	return tracing.Select("combi.tokens")
}

// --- Token input ------------------------------------------------------------

// Input is a parser input over a sequence of tokens. Elements are of type
// combi.Token. Inputs are never mutated after construction.
type Input struct {
	toks *arraylist.List
}

var _ combi.Input = (*Input)(nil)

// NewInput buffers a token run as parser input.
func NewInput(toks ...combi.Token) *Input {
	list := arraylist.New()
	for _, t := range toks {
		list.Add(t)
	}
	return &Input{toks: list}
}

// At returns the token at position pos.
func (in *Input) At(pos uint64) interface{} {
	t, _ := in.toks.Get(int(pos))
	return t
}

// Len returns the number of tokens.
func (in *Input) Len() uint64 {
	return uint64(in.toks.Size())
}

// Suffix returns the input from position pos up to the end.
func (in *Input) Suffix(pos uint64) combi.Input {
	rest := arraylist.New()
	for i := int(pos); i < in.toks.Size(); i++ {
		t, _ := in.toks.Get(i)
		rest.Add(t)
	}
	return &Input{toks: rest}
}

// --- Default tokens ---------------------------------------------------------

// Token is a very unsophisticated token type, used by the lexmachine
// tokenizer adapter. Applications are free to feed their own combi.Token
// implementations into NewInput instead.
type Token struct {
	kind   combi.TokType
	lexeme string
	Val    interface{}
	span   combi.Span
}

func MakeToken(typ combi.TokType, lexeme string, span combi.Span) Token {
	return Token{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t Token) TokType() combi.TokType {
	return t.kind
}

func (t Token) Value() interface{} {
	return t.Val
}

func (t Token) Lexeme() string {
	return t.lexeme
}

func (t Token) Span() combi.Span {
	return t.span
}

// --- Leaf parsers over token input ------------------------------------------

// Type matches a single token of token type typ, producing the token. The
// label is used for error messages.
func Type(typ combi.TokType, label string) comb.Parser {
	return comb.NewParser(func(input combi.Input, pos uint64) comb.Result {
		if pos < input.Len() {
			if tok, ok := input.At(pos).(combi.Token); ok && tok.TokType() == typ {
				return comb.Succeed(tok, pos+1)
			}
		}
		return comb.Fail(pos, label)
	})
}

// Lexeme matches a single token by its lexeme, producing the token.
func Lexeme(lex string) comb.Parser {
	label := strconv.Quote(lex)
	return comb.NewParser(func(input combi.Input, pos uint64) comb.Result {
		if pos < input.Len() {
			if tok, ok := input.At(pos).(combi.Token); ok && tok.Lexeme() == lex {
				return comb.Succeed(tok, pos+1)
			}
		}
		return comb.Fail(pos, label)
	})
}

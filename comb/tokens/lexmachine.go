package tokens

import (
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/combi"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// LMAdapter is a lexmachine adapter to use lexmachine as a tokenizer for
// token-level parsing.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
	Error func(error) // scanner error handler
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{Error: logError}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeLMToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeLMToken(name, tokenIds[name]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// SetErrorHandler sets an error handler for the tokenizer.
func (lm *LMAdapter) SetErrorHandler(h func(error)) {
	if h == nil {
		lm.Error = logError
		return
	}
	lm.Error = h
}

// Default error reporting function for lexmachine-based tokenizers
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// Tokenize scans the complete input up front and buffers the token run as a
// parser input. Unconsumed-input errors are reported to the error handler
// and skipped over.
func (lm *LMAdapter) Tokenize(input string) (*Input, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	list := arraylist.New()
	tok, err, eof := s.Next()
	for !eof {
		if err != nil {
			lm.Error(err)
			if ui, is := err.(*machines.UnconsumedInput); is {
				s.TC = ui.FailTC
				tok, err, eof = s.Next()
				continue
			}
			return nil, err
		}
		tracer().Debugf("tok is %T | %v", tok, tok)
		token := tok.(*lexmachine.Token)
		list.Add(MakeToken(
			combi.TokType(token.Type),
			string(token.Lexeme),
			combi.Span{uint64(token.StartColumn), uint64(token.EndColumn)},
		))
		tok, err, eof = s.Next()
	}
	return &Input{toks: list}, nil
}

// ---------------------------------------------------------------------------

// SkipLM is a pre-defined action which ignores the scanned match.
func SkipLM(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeLMToken is a pre-defined action which wraps a scanned match into a
// lexmachine token.
func MakeLMToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

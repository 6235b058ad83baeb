package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/combi/comb"
	"github.com/npillmayer/combi/comb/chars"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracer traces with key 'combi.repl'.
func tracer() tracing.Trace {
	return tracing.Select("combi.repl")
}

// We provide a small arithmetic calculator as a demo for grammars built from
// combinators.
//
//  Expr   ➞ Term (SumOp Term)*
//  Term   ➞ Factor (ProdOp Factor)*
//  Factor ➞ number  |  ( Expr )
//  SumOp  ➞ +  |  -
//  ProdOp ➞ *  |  /
//
// Operator precedence falls out of the grammar layering; Factor refers back
// to Expr through a Lazy thunk.
func makeCalculator() comb.Parser {
	var expr comb.Parser
	number := chars.Lexeme(chars.Regexp(`-?[0-9]+(\.[0-9]+)?`)).
		Map(func(v interface{}) interface{} {
			f, err := strconv.ParseFloat(v.(string), 64)
			if err != nil {
				panic(fmt.Sprintf("number pattern matched unparsable float: %v", err))
			}
			return f
		}).Desc("number")
	factor := comb.Alt(
		number,
		chars.Lexeme(chars.Literal("(")).
			Then(comb.Lazy(func() comb.Parser { return expr })).
			Skip(chars.Lexeme(chars.Literal(")"))),
	)
	chain := func(operand comb.Parser, ops string) comb.Parser {
		rest := comb.Seq(chars.Lexeme(chars.OneOf(ops)), operand).Many()
		return comb.Seq(operand, rest).Map(foldChain)
	}
	term := chain(factor, "*/")
	expr = chain(term, "+-")
	return chars.Whitespace().Opt().Then(expr)
}

// foldChain folds an operand followed by (operator, operand) pairs from the
// left.
func foldChain(v interface{}) interface{} {
	seq := v.([]interface{})
	acc := seq[0].(float64)
	for _, item := range seq[1].([]interface{}) {
		pair := item.([]interface{})
		arg := pair[1].(float64)
		switch pair[0].(rune) {
		case '+':
			acc += arg
		case '-':
			acc -= arg
		case '*':
			acc *= arg
		case '/':
			acc /= arg
		}
	}
	return acc
}

// main() starts an interactive CLI ("CREPL"), where users may enter
// arithmetic expressions. CREPL will parse and evaluate the expression with
// a combinator-built grammar and print out the result. It is intended as a
// sandbox for experiments during grammar development.
//
// Please refer to packages "comb" and "comb/chars".
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to CREPL")    // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up the calculator grammar
	calc := makeCalculator()
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	input := strings.Join(flag.Args(), " ")
	input = strings.TrimSpace(input)
	//
	// set up REPL
	repl, err := readline.New("calc> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		calc: calc,
		repl: repl,
	}
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if err := intp.Eval(input); err != nil {
			os.Exit(2)
		}
	}
	//
	// load an init file and start receiving expressions
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  =",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	lastValue float64
	calc      comb.Parser
	repl      *readline.Instance
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		intp.Eval(line)
	}
	println("Good bye!")
}

// Eval parses and evaluates an arithmetic expression, given on a line by
// itself.
func (intp *Intp) Eval(line string) error {
	v, err := comb.ParseString(intp.calc, line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	intp.lastValue = v.(float64)
	pterm.Info.Println(strconv.FormatFloat(intp.lastValue, 'g', -1, 64))
	return nil
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

/*
Package combi is a parser-combinator toolbox.

Combi strives to be a small and predictable tool for building recursive-descent
parsers by composition, without a grammar-generation step. It focusses on
backtracking combinators with precise error reporting. Package structure is
as follows:

■ comb: Package comb implements the combinator engine: the parser abstraction,
the combinator algebra (sequencing, alternation, repetition, mapping, monadic
binding) and the error/result model.

■ comb/chars: Package chars provides leaf parsers over character input, like
literal-string and regular-expression matchers.

■ comb/tokens: Package tokens provides parser inputs over token sequences,
together with a lexmachine-backed tokenizer adapter.

The base package contains the input model which is used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package combi

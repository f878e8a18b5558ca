// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jsonxml translates a simplified JSON syntax into XML in a single
// pass, reporting every structural error it finds rather than stopping at
// the first one.
//
// # Scanning
//
// The Scanner type is a byte source that tracks the line and column of the
// current input byte. The Lexer type reads tokens from a Scanner, one per
// call to Next:
//
//	lex := jsonxml.NewLexer(jsonxml.NewScanner(input))
//	for tok := lex.Next(); tok.Kind != jsonxml.End; tok = lex.Next() {
//	   log.Printf("Next token: %v at %v", tok.Kind, tok.Pos)
//	}
//
// Lexical problems (an unterminated string, an unknown word, a stray
// character) are not errors of the lexer; they are reported as tokens of kind
// Error, which the parser treats like any other unexpected token.
//
// # Parsing
//
// The Parser type recognizes a single value followed by the end of input,
// and delivers output events to a Handler as each part of the grammar is
// recognized. No syntax tree is built:
//
//	p := jsonxml.NewParser(input)
//	if err := p.Parse(handler); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	for _, d := range p.Diagnostics() {
//	   log.Print(d)
//	}
//
// When the input is malformed, the parser reports a *SyntaxError and
// discards tokens up to a point where it can resume: a comma or closing brace
// inside an object, a comma or closing bracket inside an array. Siblings of a
// malformed member are still recognized, so one run may report several
// diagnostics. Parse itself fails only if the Handler fails or the input
// cannot be read.
//
// # Output
//
// The XMLWriter type is a Handler that writes XML. An object member "k": v is
// written as an element named k (with spaces replaced by underscores), array
// items are each wrapped in an "item" element, and a scalar with no name of
// its own is written as a "value" element:
//
//	Input                  | Output
//	---------------------- | --------------------------------------------
//	{"a": 1, "b": "x<y"}   | <a>1</a><b>x&lt;y</b>
//	{"list": [true, null]} | <list><item>true</item><item>null</item></list>
//	"text"                 | <value>text</value>
//
// The Translate function combines these steps for the common case.
package jsonxml

// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonxml

// Kind is the type of a lexical token in the input grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Error   Kind = iota // lexical error; the token text is the label
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	String              // quoted string
	Number              // number: digits, optional fraction and exponent
	True                // constant: true
	False               // constant: false
	Null                // constant: null
	End                 // end of input
)

var kindStr = [...]string{
	Error:   "token",
	LBrace:  "'{'",
	RBrace:  "'}'",
	LSquare: "'['",
	RSquare: "']'",
	Comma:   "','",
	Colon:   "':'",
	String:  "string",
	Number:  "number",
	True:    "true",
	False:   "false",
	Null:    "null",
	End:     "EOF",
}

// String returns the description of k used in diagnostics.
func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Error]
	}
	return kindStr[v]
}

// IsScalar reports whether k is a string, number, or constant.
func (k Kind) IsScalar() bool {
	switch k {
	case String, Number, True, False, Null:
		return true
	}
	return false
}

// A Token is a single lexical token with its source position.
//
// Text holds the decoded contents of a String, the literal text of a Number,
// the raw word of a constant, or the label of an Error. It is empty for
// punctuation and End.
type Token struct {
	Kind Kind
	Text string
	Pos  LineCol
}

// Literal returns the text emitted for a scalar token. Constants are spelled
// in lower case whatever their case in the input.
func (t Token) Literal() string {
	switch t.Kind {
	case True, False, Null:
		return t.Kind.String()
	}
	return t.Text
}

// Describe returns the name of t used as the "found" part of a diagnostic.
// Error tokens are described by their label.
func (t Token) Describe() string {
	if t.Kind == Error && t.Text != "" {
		return t.Text
	}
	return t.Kind.String()
}

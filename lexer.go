// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonxml

import (
	"fmt"
	"strings"
)

const (
	stringBufSize = 64  // initial capacity of a string buffer
	maxNumberLen  = 255 // longer number literals are truncated
	maxWordLen    = 15  // letters collected per bareword
)

// ErrUnterminated is the label of the Error token for a string that is not
// closed before the end of input.
const ErrUnterminated = "Unterminated string"

// A Lexer reads tokens from a Scanner. Each call to Next consumes at least
// one byte of input unless the input is exhausted.
type Lexer struct {
	s *Scanner
}

// NewLexer constructs a lexer that consumes input from s.
func NewLexer(s *Scanner) *Lexer { return &Lexer{s: s} }

// Scanner returns the byte source of l.
func (l *Lexer) Scanner() *Scanner { return l.s }

// Next returns the next token of the input. At the end of input it returns a
// token of kind End, and keeps doing so on subsequent calls.
func (l *Lexer) Next() Token {
	l.skipSpace()
	pos := l.s.Pos()
	ch := l.s.Current()
	if ch == EOF {
		return Token{Kind: End, Pos: pos}
	}

	// Handle punctuation.
	if k, ok := selfDelim(ch); ok {
		l.s.Advance()
		return Token{Kind: k, Pos: pos}
	}

	switch {
	case ch == '"':
		return l.scanString(pos)
	case isDigit(ch):
		return l.scanNumber(pos)
	case isLetter(ch):
		return l.scanWord(pos)
	}
	l.s.Advance()
	return Token{Kind: Error, Text: fmt.Sprintf("unrecognized character %q", ch), Pos: pos}
}

func (l *Lexer) skipSpace() {
	for isSpace(l.s.Current()) {
		l.s.Advance()
	}
}

// scanString decodes a quoted string. The escapes \n, \t and \r are
// translated; any other escaped byte stands for itself.
func (l *Lexer) scanString(pos LineCol) Token {
	l.s.Advance() // opening quote
	buf := make([]byte, 0, stringBufSize)
	for {
		ch := l.s.Current()
		switch ch {
		case EOF:
			return Token{Kind: Error, Text: ErrUnterminated, Pos: pos}
		case '"':
			l.s.Advance()
			return Token{Kind: String, Text: string(buf), Pos: pos}
		case '\\':
			l.s.Advance()
			esc := l.s.Current()
			if esc == EOF {
				return Token{Kind: Error, Text: ErrUnterminated, Pos: pos}
			}
			switch esc {
			case 'n':
				esc = '\n'
			case 't':
				esc = '\t'
			case 'r':
				esc = '\r'
			}
			buf = append(buf, byte(esc))
		default:
			buf = append(buf, byte(ch))
		}
		l.s.Advance()
	}
}

// scanNumber reads digits, an optional fraction, and an optional exponent.
// The first byte outside that grammar is left unconsumed.
func (l *Lexer) scanNumber(pos LineCol) Token {
	var buf [maxNumberLen]byte
	n := 0
	put := func() {
		if n < len(buf) {
			buf[n] = byte(l.s.Current())
			n++
		}
		l.s.Advance()
	}
	digits := func() {
		for isDigit(l.s.Current()) {
			put()
		}
	}

	digits()
	if l.s.Current() == '.' {
		put()
		digits()
	}
	if ch := l.s.Current(); ch == 'e' || ch == 'E' {
		put()
		if ch := l.s.Current(); ch == '+' || ch == '-' {
			put()
		}
		digits()
	}
	return Token{Kind: Number, Text: string(buf[:n]), Pos: pos}
}

// scanWord reads up to maxWordLen letters and matches them against the
// constants true, false, and null without regard to ASCII case.
func (l *Lexer) scanWord(pos LineCol) Token {
	var buf [maxWordLen]byte
	n := 0
	for n < len(buf) && isLetter(l.s.Current()) {
		buf[n] = byte(l.s.Current())
		n++
		l.s.Advance()
	}
	word := string(buf[:n])
	for _, k := range []Kind{True, False, Null} {
		if equalFoldASCII(word, k.String()) {
			return Token{Kind: k, Text: word, Pos: pos}
		}
	}
	return Token{Kind: Error, Text: word, Pos: pos}
}

// equalFoldASCII reports whether a and b are equal under ASCII case folding.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch rune) bool  { return '0' <= ch && ch <= '9' }
func isLetter(ch rune) bool { return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	if ch < 0 {
		return Error, false
	}
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Error, false
}

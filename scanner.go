// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonxml

import (
	"bufio"
	"io"
)

// EOF is the value reported by Scanner.Current once the input is exhausted.
const EOF rune = -1

// A Scanner is a byte source over an input stream. It holds the current
// unconsumed byte and its line and column.
type Scanner struct {
	r   *bufio.Reader
	ch  rune
	pos LineCol
	err error
}

// NewScanner constructs a scanner that consumes input from r, positioned at
// line 1, column 1 with the first byte of input already read.
func NewScanner(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	s := &Scanner{r: br, pos: LineCol{Line: 1, Column: 1}}
	s.read()
	return s
}

// Current returns the current unconsumed byte, or EOF.
func (s *Scanner) Current() rune { return s.ch }

// Pos returns the location of the current byte.
func (s *Scanner) Pos() LineCol { return s.pos }

// Err returns the read error, other than io.EOF, that ended the input early.
func (s *Scanner) Err() error { return s.err }

// Advance consumes the current byte and reads the next one. Advancing at the
// end of input has no effect.
func (s *Scanner) Advance() {
	switch s.ch {
	case EOF:
		return
	case '\n':
		s.pos.Line++
		s.pos.Column = 1
	default:
		s.pos.Column++
	}
	s.read()
}

func (s *Scanner) read() {
	b, err := s.r.ReadByte()
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		s.ch = EOF
		return
	}
	s.ch = rune(b)
}

// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonxml

import (
	"bufio"
	"io"

	"github.com/creachadair/jsonxml/internal/escape"
	"go4.org/mem"
)

// An XMLWriter is a Handler that writes elements and escaped text to an
// output stream as they are reported. Output is buffered; call Flush when
// parsing is complete.
type XMLWriter struct {
	w   *bufio.Writer
	buf []byte // scratch space for escaped text
}

// NewXMLWriter constructs an XMLWriter that writes to w.
func NewXMLWriter(w io.Writer) *XMLWriter {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	return &XMLWriter{w: bw}
}

// BeginElement writes the start tag <name>. It implements part of Handler.
func (x *XMLWriter) BeginElement(name string) error {
	x.buf = appendTag(x.buf[:0], name, false)
	_, err := x.w.Write(x.buf)
	return err
}

// EndElement writes the end tag </name>. It implements part of Handler.
func (x *XMLWriter) EndElement(name string) error {
	x.buf = appendTag(x.buf[:0], name, true)
	_, err := x.w.Write(x.buf)
	return err
}

// Value writes <name>text</name>, where text is the escaped literal of tok.
// It implements part of Handler.
func (x *XMLWriter) Value(name string, tok Token) error {
	buf := appendTag(x.buf[:0], name, false)
	buf = escape.AppendText(buf, mem.S(tok.Literal()))
	x.buf = appendTag(buf, name, true)
	_, err := x.w.Write(x.buf)
	return err
}

// Flush writes any buffered output to the underlying writer.
func (x *XMLWriter) Flush() error { return x.w.Flush() }

func appendTag(buf []byte, name string, end bool) []byte {
	buf = append(buf, '<')
	if end {
		buf = append(buf, '/')
	}
	buf = append(buf, name...)
	return append(buf, '>')
}

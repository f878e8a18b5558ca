// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonxml

import (
	"fmt"
	"io"
)

// Options control a call to Translate. A nil *Options is ready for use and
// provides default values.
type Options struct {
	// The maximum nesting depth of objects and arrays.
	// If zero, DefaultMaxDepth is used.
	MaxDepth int

	// If non-nil, each diagnostic is written here as it is raised.
	Diagnostics io.Writer
}

func (o *Options) maxDepth() int {
	if o == nil || o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o *Options) diagnostics() io.Writer {
	if o == nil {
		return nil
	}
	return o.Diagnostics
}

// Result reports the outcome of a translation.
type Result struct {
	// Diagnostics raised while parsing, in input order.
	Diagnostics []*SyntaxError
}

// OK reports whether the translation completed without diagnostics.
func (r *Result) OK() bool { return len(r.Diagnostics) == 0 }

// ExitCode returns the process exit status for r: 0 if the translation was
// clean, 2 if it completed with partial output.
func (r *Result) ExitCode() int {
	if r.OK() {
		return 0
	}
	return 2
}

// Translate reads a document from r and writes its XML rendering to w.
//
// Malformed input does not make Translate fail: the diagnostics are reported
// in the Result, and w receives the output for every part of the input that
// was recognized. Translate reports an error only if reading r or writing w
// fails.
func Translate(r io.Reader, w io.Writer, opts *Options) (*Result, error) {
	p := NewParser(r)
	p.SetMaxDepth(opts.maxDepth())
	p.ReportTo(opts.diagnostics())

	xw := NewXMLWriter(w)
	perr := p.Parse(xw)
	res := &Result{Diagnostics: p.Diagnostics()}

	// Whatever was emitted is kept, even if the input could not be read in full.
	ferr := xw.Flush()
	if perr != nil {
		return res, perr
	} else if ferr != nil {
		return res, fmt.Errorf("writing output: %w", ferr)
	}
	return res, nil
}

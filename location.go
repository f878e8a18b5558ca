// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonxml

import "fmt"

// A LineCol describes the line number and column of a location in source
// text. Both are 1-based; the column counts bytes.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte column in line, 1-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// Before reports whether lc precedes o in the source.
func (lc LineCol) Before(o LineCol) bool {
	return lc.Line < o.Line || (lc.Line == o.Line && lc.Column < o.Column)
}

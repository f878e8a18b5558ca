package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/creachadair/jsonxml"
)

// dumpTokens writes one line per token of r to w, giving its position, its
// kind, and its text if it has any. It returns the number of error tokens.
func dumpTokens(w io.Writer, r io.Reader) (int, error) {
	s := jsonxml.NewScanner(r)
	lex := jsonxml.NewLexer(s)
	bw := bufio.NewWriter(w)

	var nerr int
	for {
		tok := lex.Next()
		switch tok.Kind {
		case jsonxml.String, jsonxml.Number, jsonxml.True, jsonxml.False, jsonxml.Null:
			fmt.Fprintf(bw, "%v %v %s\n", tok.Pos, tok.Kind, strconv.Quote(tok.Text))
		case jsonxml.Error:
			nerr++
			fmt.Fprintf(bw, "%v ERROR %s\n", tok.Pos, tok.Text)
		default:
			fmt.Fprintf(bw, "%v %v\n", tok.Pos, tok.Kind)
		}
		if tok.Kind == jsonxml.End {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nerr, fmt.Errorf("reading input: %w", err)
	}
	return nerr, bw.Flush()
}

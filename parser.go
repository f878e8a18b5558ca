// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonxml

import (
	"fmt"
	"io"
	"slices"

	"github.com/creachadair/jsonxml/internal/escape"
)

// DefaultMaxDepth is the nesting limit used when none is configured.
const DefaultMaxDepth = 512

// Synchronizing sets for panic-mode recovery.
var (
	attrStop = []Kind{Comma, RBrace, End}
	elemStop = []Kind{Comma, RSquare, End}
)

// Parser is a recursive-descent parser with one token of lookahead. It
// recognizes a single value followed by the end of input, delivers output
// events to a Handler, and recovers from malformed input so that one run
// can report several independent diagnostics.
type Parser struct {
	lex      *Lexer
	la       Token // lookahead
	maxDepth int
	depth    int
	diag     io.Writer
	errs     []*SyntaxError
}

// NewParser constructs a Parser that consumes input from r.
func NewParser(r io.Reader) *Parser { return NewParserWithScanner(NewScanner(r)) }

// NewParserWithScanner constructs a Parser that consumes input from s.
func NewParserWithScanner(s *Scanner) *Parser {
	return &Parser{lex: NewLexer(s), maxDepth: DefaultMaxDepth}
}

// SetMaxDepth sets the maximum nesting depth of objects and arrays. A value
// too deep is reported and skipped. If n <= 0, DefaultMaxDepth is used.
func (p *Parser) SetMaxDepth(n int) {
	if n <= 0 {
		n = DefaultMaxDepth
	}
	p.maxDepth = n
}

// ReportTo configures p to write each diagnostic to w, one per line, at the
// moment it is raised. If w == nil, diagnostics are only recorded.
func (p *Parser) ReportTo(w io.Writer) { p.diag = w }

// Diagnostics returns the diagnostics reported so far, in input order.
func (p *Parser) Diagnostics() []*SyntaxError { return p.errs }

// ErrorCount returns the number of diagnostics reported so far.
func (p *Parser) ErrorCount() int { return len(p.errs) }

// Parse parses the input and delivers events to h. Malformed input does not
// make Parse fail: it is reported through Diagnostics and parsing continues.
// Parse reports an error if a method of h fails, in which case parsing stops,
// or if reading the input failed.
func (p *Parser) Parse(h Handler) (err error) {
	defer func() {
		if perr := recover(); perr != nil {
			herr, ok := perr.(handlerError)
			if !ok {
				panic(perr)
			}
			err = herr.error
		}
	}()

	p.advance()
	p.element(h, "", false, elemStop)
	if p.la.Kind != End {
		p.report(MsgTrailing, End.String())
	}
	if serr := p.lex.Scanner().Err(); serr != nil {
		return fmt.Errorf("reading input: %w", serr)
	}
	return nil
}

// element parses an object, an array, or a scalar. If named is false the
// value has no tag of its own. On failure, tokens are discarded up to the
// first member of stop.
func (p *Parser) element(h Handler, tag string, named bool, stop []Kind) {
	switch tok := p.la; {
	case tok.Kind == LBrace:
		p.object(h, tag, named)
	case tok.Kind == LSquare:
		p.array(h, tag, named)
	case tok.Kind.IsScalar():
		if !named {
			tag = "value"
		}
		p.check(h.Value(tag, tok))
		p.advance()
	default:
		p.report(MsgElement, expectElement)
		p.sync(stop)
	}
}

// object parses "{" "}" or "{" attribute ("," attribute)* "}".
// Precondition: lookahead == LBrace.
func (p *Parser) object(h Handler, tag string, named bool) {
	if !p.enter() {
		return
	}
	defer p.leave()

	p.advance() // {
	if named {
		p.check(h.BeginElement(tag))
	}
	if p.la.Kind == RBrace {
		p.advance()
	} else {
		p.attribute(h)
		for p.la.Kind == Comma {
			p.advance()
			p.attribute(h)
		}
		p.close(RBrace, attrStop)
	}
	if named {
		p.check(h.EndElement(tag))
	}
}

// attribute parses string ":" element, with the element tagged by the key.
func (p *Parser) attribute(h Handler) {
	if p.la.Kind != String {
		p.report(MsgAttribute, String.String())
		p.sync(attrStop)
		return
	}
	tag := escape.TagName(p.la.Text)
	p.advance()
	if !p.match(Colon) {
		p.sync(attrStop)
		return
	}
	p.element(h, tag, true, attrStop)
}

// array parses "[" "]" or "[" element ("," element)* "]".
// Precondition: lookahead == LSquare.
func (p *Parser) array(h Handler, tag string, named bool) {
	if !p.enter() {
		return
	}
	defer p.leave()

	p.advance() // [
	if named {
		p.check(h.BeginElement(tag))
	}
	if p.la.Kind == RSquare {
		p.advance()
	} else {
		p.item(h)
		for p.la.Kind == Comma {
			p.advance()
			p.item(h)
		}
		p.close(RSquare, elemStop)
	}
	if named {
		p.check(h.EndElement(tag))
	}
}

// item parses one array item. A scalar item is named "item" itself; any
// other item is wrapped in an "item" element.
func (p *Parser) item(h Handler) {
	if p.la.Kind.IsScalar() {
		p.element(h, "item", true, elemStop)
		return
	}
	p.check(h.BeginElement("item"))
	p.element(h, "", false, elemStop)
	p.check(h.EndElement("item"))
}

// close matches the closing token of an object or array. If it is missing,
// tokens are discarded up to a member of stop, and the closer is consumed if
// that is where discarding ended.
func (p *Parser) close(closer Kind, stop []Kind) {
	if p.match(closer) {
		return
	}
	p.sync(stop)
	if p.la.Kind == closer {
		p.advance()
	}
}

// enter records the start of a nested object or array. If the nesting limit
// is reached, the value is reported, skipped, and enter reports false.
func (p *Parser) enter() bool {
	if p.depth >= p.maxDepth {
		p.report(MsgTooDeep, "")
		p.skipGroup()
		return false
	}
	p.depth++
	return true
}

func (p *Parser) leave() { p.depth-- }

// skipGroup discards the bracketed value starting at the lookahead,
// including its matching closer, without recursion.
// Precondition: lookahead is LBrace or LSquare.
func (p *Parser) skipGroup() {
	open := 0
	for p.la.Kind != End {
		switch p.la.Kind {
		case LBrace, LSquare:
			open++
		case RBrace, RSquare:
			open--
		}
		p.advance()
		if open == 0 {
			return
		}
	}
}

// match consumes the lookahead if it has kind k, otherwise it reports a
// diagnostic and leaves the lookahead in place.
func (p *Parser) match(k Kind) bool {
	if p.la.Kind == k {
		p.advance()
		return true
	}
	p.report(MsgSyntax, k.String())
	return false
}

// sync discards tokens until the lookahead is End or a member of stop.
func (p *Parser) sync(stop []Kind) {
	for p.la.Kind != End && !slices.Contains(stop, p.la.Kind) {
		p.advance()
	}
}

func (p *Parser) advance() { p.la = p.lex.Next() }

func (p *Parser) report(msg, expected string) {
	serr := &SyntaxError{Location: p.la.Pos, Message: msg}
	if expected != "" {
		serr.Expected = expected
		serr.Found = p.la.Describe()
	}
	p.errs = append(p.errs, serr)
	if p.diag != nil {
		fmt.Fprintln(p.diag, serr.Error())
	}
}

func (p *Parser) check(err error) {
	if err != nil {
		panic(handlerError{err})
	}
}

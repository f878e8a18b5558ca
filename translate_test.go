// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonxml_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/jsonxml"
)

func translate(t *testing.T, input string, opts *jsonxml.Options) (string, *jsonxml.Result) {
	t.Helper()
	var out bytes.Buffer
	res, err := jsonxml.Translate(strings.NewReader(input), &out, opts)
	if err != nil {
		t.Fatalf("Translate(%#q) failed: %v", input, err)
	}
	return out.String(), res
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		// Top-level scalars.
		{`"hello"`, "<value>hello</value>"},
		{`42`, "<value>42</value>"},
		{`3.25e-5`, "<value>3.25e-5</value>"},
		{`true`, "<value>true</value>"},
		{`FALSE`, "<value>false</value>"},
		{`null`, "<value>null</value>"},
		{`"a<b & c>"`, "<value>a&lt;b &amp; c&gt;</value>"},

		// Objects.
		{`{}`, ""},
		{`{"a":1,"b":2}`, "<a>1</a><b>2</b>"},
		{`{"x": "a<b"}`, "<x>a&lt;b</x>"},
		{`{"s": "line\none"}`, "<s>line\none</s>"},
		{`{"o": {}}`, "<o></o>"},
		{`{"full name": "Ada Lovelace"}`, "<full_name>Ada Lovelace</full_name>"},
		{`{"person": {"first name": "Ann", "tags": ["a", "b"]}}`,
			"<person><first_name>Ann</first_name><tags><item>a</item><item>b</item></tags></person>"},

		// Arrays.
		{`[]`, ""},
		{`[1,2,3]`, "<item>1</item><item>2</item><item>3</item>"},
		{`{"l": []}`, "<l></l>"},
		{`[{"a": 1}, [true], "s"]`,
			"<item><a>1</a></item><item><item>true</item></item><item>s</item>"},
		{"[\n  1,\n  2\n]\n", "<item>1</item><item>2</item>"},
	}
	for _, test := range tests {
		got, res := translate(t, test.input, nil)
		if got != test.want {
			t.Errorf("Translate(%#q):\ngot:  %#q\nwant: %#q", test.input, got, test.want)
		}
		if !res.OK() || res.ExitCode() != 0 {
			t.Errorf("Translate(%#q): got %d diagnostics, want none: %v",
				test.input, len(res.Diagnostics), res.Diagnostics)
		}
	}
}

func TestTranslatePartial(t *testing.T) {
	tests := []struct {
		input, want string
		ndiag       int
	}{
		{`{"a": "oops`, "", 2},
		{`{"a":1 "b":2}`, "<a>1</a>", 1},
		{`{"a": 1, "b": @, "c": 3}`, "<a>1</a><c>3</c>", 1},
		{`{"a": 1, "b": -2, "c": [3, 4 5], "d": true}`, "<a>1</a><c><item>3</item><item>4</item></c><d>true</d>", 2},
		{`[1, {"k" "v"}, 3]`, "<item>1</item><item></item><item>3</item>", 1},
		{`{"a": 1} 2`, "<a>1</a>", 1},
	}
	for _, test := range tests {
		got, res := translate(t, test.input, nil)
		if got != test.want {
			t.Errorf("Translate(%#q):\ngot:  %#q\nwant: %#q", test.input, got, test.want)
		}
		if n := len(res.Diagnostics); n != test.ndiag {
			t.Errorf("Translate(%#q): got %d diagnostics, want %d: %v", test.input, n, test.ndiag, res.Diagnostics)
		}
		if res.OK() || res.ExitCode() != 2 {
			t.Errorf("Translate(%#q): exit code %d, want 2", test.input, res.ExitCode())
		}
	}
}

func TestTranslateUnterminated(t *testing.T) {
	var diag bytes.Buffer
	_, res := translate(t, `{"a": "oops`, &jsonxml.Options{Diagnostics: &diag})
	if res.ExitCode() != 2 {
		t.Errorf("Exit code: got %d, want 2", res.ExitCode())
	}
	if n := strings.Count(diag.String(), jsonxml.ErrUnterminated); n != 1 {
		t.Errorf("Got %d %q diagnostics, want 1:\n%s", n, jsonxml.ErrUnterminated, diag.String())
	}
}

func TestTranslateIdempotent(t *testing.T) {
	const input = `{"name": "jsonxml", "tags": ["a & b", 1.5e3, null], "nested": {"deep key": [[]]}}`
	first, _ := translate(t, input, nil)
	second, _ := translate(t, input, nil)
	if first != second {
		t.Errorf("Outputs differ:\n1: %#q\n2: %#q", first, second)
	}
}

func TestTranslateMaxDepth(t *testing.T) {
	got, res := translate(t, `{"a": [[1]], "b": 2}`, &jsonxml.Options{MaxDepth: 2})
	if want := "<a><item></item></a><b>2</b>"; got != want {
		t.Errorf("Output: got %#q, want %#q", got, want)
	}
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Message != jsonxml.MsgTooDeep {
		t.Errorf("Diagnostics: got %v, want one %q", res.Diagnostics, jsonxml.MsgTooDeep)
	}
}

type errWriter struct{ err error }

func (e errWriter) Write([]byte) (int, error) { return 0, e.err }

func TestTranslateWriteError(t *testing.T) {
	errBoom := errors.New("disk full")
	_, err := jsonxml.Translate(strings.NewReader(`[1, 2]`), errWriter{errBoom}, nil)
	if !errors.Is(err, errBoom) {
		t.Errorf("Translate: got error %v, want %v", err, errBoom)
	}
}

func TestXMLWriter(t *testing.T) {
	var buf bytes.Buffer
	xw := jsonxml.NewXMLWriter(&buf)
	xw.BeginElement("root")
	xw.Value("k", jsonxml.Token{Kind: jsonxml.String, Text: "<&>"})
	xw.Value("n", jsonxml.Token{Kind: jsonxml.Null, Text: "NULL"})
	xw.EndElement("root")
	if buf.Len() != 0 {
		t.Errorf("Output before Flush: got %#q, want none", buf.String())
	}
	if err := xw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got, want := buf.String(), "<root><k>&lt;&amp;&gt;</k><n>null</n></root>"; got != want {
		t.Errorf("Output: got %#q, want %#q", got, want)
	}
}

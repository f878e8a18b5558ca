package jsonxml_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/creachadair/jsonxml"
)

func BenchmarkTranslate(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			dec := json.NewDecoder(bytes.NewReader(input))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	b.Run("Lexer", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			lex := jsonxml.NewLexer(jsonxml.NewScanner(bytes.NewReader(input)))
			for tok := lex.Next(); tok.Kind != jsonxml.End; tok = lex.Next() {
				if tok.Kind == jsonxml.Error {
					b.Fatalf("Unexpected error token: %q at %v", tok.Text, tok.Pos)
				}
			}
		}
	})

	b.Run("Translate", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			res, err := jsonxml.Translate(bytes.NewReader(input), io.Discard, nil)
			if err != nil {
				b.Fatalf("Translate failed: %v", err)
			} else if !res.OK() {
				b.Fatalf("Unexpected diagnostics: %v", res.Diagnostics)
			}
		}
	})
}

func TestTranslateFile(t *testing.T) {
	f, err := os.Open("testdata/input.json")
	if err != nil {
		t.Fatalf("Open test input: %v", err)
	}
	defer f.Close()

	var out bytes.Buffer
	res, err := jsonxml.Translate(f, &out, nil)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if !res.OK() {
		t.Errorf("Unexpected diagnostics: %v", res.Diagnostics)
	}
	for _, want := range []string{
		"<catalog_name>Example store</catalog_name>",
		"<closed_on>null</closed_on>",
		"<geo><lat>42.1015</lat><lng>72.5898</lng></geo>",
		"<item>music &amp; film</item><item>&lt;games&gt;</item>",
		"<title>Live \"At\" Home</title>",
		"<history><item><item>2019</item><item>1.2E+3</item></item>",
	} {
		if !bytes.Contains(out.Bytes(), []byte(want)) {
			t.Errorf("Output does not contain %#q:\n%s", want, out.String())
		}
	}
}

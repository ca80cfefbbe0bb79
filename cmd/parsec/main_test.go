package main

import (
	"bytes"
	"testing"

	"github.com/reusee/parsec/sources"
	"github.com/reusee/parsec/statements"
)

func TestPrintValue(t *testing.T) {
	decls, err := statements.DefaultGrammar.Tokenizer().Tokenize(sources.NewSource("a.txt", "readonly = var"))
	if err != nil {
		t.Fatal(err)
	}

	buf := new(bytes.Buffer)
	printSequence(buf, decls)
	expected := "a.txt:1:1\tkeyword\t\"readonly\"\n" +
		"a.txt:1:10\toperator\t\"=\"\n" +
		"a.txt:1:12\tkeyword\t\"var\"\n"
	if buf.String() != expected {
		t.Fatalf("got %q", buf.String())
	}

	buf.Reset()
	printValue(buf, []statements.Declaration{
		{
			Modifier: "readonly",
			Assign:   true,
			Target:   "var",
			Pos:      sources.NewSource("a.txt", "readonly = var").Pos(0),
		},
	})
	if buf.String() != "a.txt:1:1\treadonly = var\n" {
		t.Fatalf("got %q", buf.String())
	}

	buf.Reset()
	printValue(buf, statements.NewDoubleExpression("readonly", "var"))
	if buf.String() != "{S:readonly S2:var}\n" {
		t.Fatalf("got %q", buf.String())
	}
}

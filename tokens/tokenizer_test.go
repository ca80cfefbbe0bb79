package tokens

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/reusee/parsec/scanners"
	"github.com/reusee/parsec/sources"
)

func newTestTokenizer() *Tokenizer {
	terms := Operators("=", "==", "readonly", "var")
	return NewTokenizer(
		Or(
			terms.Tokenizer(),
			IntegerRule,
			IdentifierRule,
		),
		Ignored(
			scanners.JavaLineComment,
			scanners.JavaBlockComment,
			scanners.Whitespaces,
		),
	)
}

func TestTokenize(t *testing.T) {
	type TokenInfo struct {
		Kind Kind
		Text string
	}

	tests := []struct {
		input  string
		tokens []TokenInfo
	}{
		{
			input: "readonly var",
			tokens: []TokenInfo{
				{KindKeyword, "readonly"},
				{KindKeyword, "var"},
			},
		},
		{
			input: "readonly",
			tokens: []TokenInfo{
				{KindKeyword, "readonly"},
			},
		},
		{
			input: "readonly = var",
			tokens: []TokenInfo{
				{KindKeyword, "readonly"},
				{KindOperator, "="},
				{KindKeyword, "var"},
			},
		},
		{
			input: "a==1",
			tokens: []TokenInfo{
				{KindIdentifier, "a"},
				{KindOperator, "=="},
				{KindInteger, "1"},
			},
		},
		{
			input: "readonlyx variable",
			tokens: []TokenInfo{
				{KindIdentifier, "readonlyx"},
				{KindIdentifier, "variable"},
			},
		},
		{
			input: "// x\nreadonly var",
			tokens: []TokenInfo{
				{KindKeyword, "readonly"},
				{KindKeyword, "var"},
			},
		},
		{
			input: "/* a */ 42 /* b */",
			tokens: []TokenInfo{
				{KindInteger, "42"},
			},
		},
		{
			input:  "  \n\t ",
			tokens: nil,
		},
		{
			input:  "",
			tokens: nil,
		},
	}

	tokenizer := newTestTokenizer()
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			seq, err := tokenizer.TokenizeString(test.input)
			if err != nil {
				t.Fatal(err)
			}
			if seq.Len() != len(test.tokens) {
				t.Fatalf("got %v", seq.Tokens)
			}
			for i, expected := range test.tokens {
				tok := seq.At(i)
				if tok.Kind != expected.Kind {
					t.Errorf("step %d: expected kind %v, got %v (text: %q)", i, expected.Kind, tok.Kind, tok.Text)
				}
				if tok.Text != expected.Text {
					t.Errorf("step %d: expected text %q, got %q", i, expected.Text, tok.Text)
				}
			}
		})
	}
}

func TestKeywordPrecedence(t *testing.T) {
	seq, err := newTestTokenizer().TokenizeString("readonly")
	if err != nil {
		t.Fatal(err)
	}
	if seq.Len() != 1 {
		t.Fatalf("got %v", seq.Tokens)
	}
	if tok := seq.At(0); tok.Kind != KindKeyword || tok.Text != "readonly" {
		t.Fatalf("got %v", tok)
	}

	// identifier registered first shadows the keyword
	shadowed := NewTokenizer(
		Or(IdentifierRule, Operators("readonly").Tokenizer()),
		scanners.Whitespaces,
	)
	seq, err = shadowed.TokenizeString("readonly")
	if err != nil {
		t.Fatal(err)
	}
	if tok := seq.At(0); tok.Kind != KindIdentifier {
		t.Fatalf("got %v", tok)
	}
}

func TestLosslessTokenize(t *testing.T) {
	inputs := []string{
		"readonly var",
		"// x\nreadonly var",
		"  readonly /* c */ = \t var // tail",
		"a==1\n\n/* multi\nline */ b",
		"",
		"   ",
	}
	tokenizer := newTestTokenizer()
	for _, input := range inputs {
		seq, err := tokenizer.TokenizeString(input)
		if err != nil {
			t.Fatal(err)
		}
		if got := seq.Reconstruct(); got != input {
			t.Fatalf("got %q, want %q", got, input)
		}
	}
}

func TestSameTokensWithComment(t *testing.T) {
	tokenizer := newTestTokenizer()
	a, err := tokenizer.TokenizeString("// x\nreadonly var")
	if err != nil {
		t.Fatal(err)
	}
	b, err := tokenizer.TokenizeString("readonly var")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(a.Texts(), " ") != strings.Join(b.Texts(), " ") {
		t.Fatalf("got %v and %v", a.Texts(), b.Texts())
	}
	for i := range a.Tokens {
		if a.At(i).Kind != b.At(i).Kind {
			t.Fatalf("got %v and %v", a.At(i), b.At(i))
		}
	}
}

func TestTokenPositions(t *testing.T) {
	seq, err := newTestTokenizer().Tokenize(sources.NewSource("test", "readonly\n  = var"))
	if err != nil {
		t.Fatal(err)
	}
	eq := seq.At(1)
	if eq.Span.Start.Line != 2 || eq.Span.Start.Column != 3 || eq.Span.Start.Offset != 11 {
		t.Fatalf("got %+v", eq.Span.Start)
	}
	if eq.Span.Len() != 1 {
		t.Fatalf("got %d", eq.Span.Len())
	}
	if pos := seq.PosAt(seq.Len()); pos.Offset != len("readonly\n  = var") {
		t.Fatalf("got %+v", pos)
	}
	for i := 1; i < seq.Len(); i++ {
		if seq.At(i).Span.Start.Before(seq.At(i - 1).Span.End) {
			t.Fatalf("overlapping tokens %v %v", seq.At(i-1), seq.At(i))
		}
	}
}

func TestTokenizeLongLine(t *testing.T) {
	const n = 100000
	tokenizer := NewTokenizer(IdentifierRule, scanners.Whitespaces)
	t0 := time.Now()
	seq, err := tokenizer.TokenizeString(strings.Repeat("ab ", n))
	if err != nil {
		t.Fatal(err)
	}
	if d := time.Since(t0); d > 5*time.Second {
		t.Fatalf("too slow: %v", d)
	}
	if len(seq.Tokens) != n {
		t.Fatalf("got %v", len(seq.Tokens))
	}
	last := seq.Tokens[n-1].Span
	if last.Start.Line != 1 || last.Start.Column != 3*(n-1)+1 || last.End.Column != 3*(n-1)+3 {
		t.Fatalf("got %v %v", last.Start, last.End)
	}
}

func BenchmarkTokenizeLongLine(b *testing.B) {
	tokenizer := NewTokenizer(IdentifierRule, scanners.Whitespaces)
	text := strings.Repeat("ab ", 10000)
	for b.Loop() {
		if _, err := tokenizer.TokenizeString(text); err != nil {
			b.Fatal(err)
		}
	}
}

func TestLexicalError(t *testing.T) {
	_, err := newTestTokenizer().Tokenize(sources.NewSource("test", "readonly\nvar $"))
	if !errors.Is(err, ErrUnexpectedChar) {
		t.Fatalf("got %v", err)
	}
	pos, ok := sources.PosOf(err)
	if !ok {
		t.Fatal()
	}
	if pos.Line != 2 || pos.Column != 5 {
		t.Fatalf("got %v", pos)
	}
	if !strings.Contains(err.Error(), `unexpected character '$' at test:2:5`) {
		t.Fatalf("got %v", err)
	}

	// identifiers are ASCII only
	_, err = newTestTokenizer().TokenizeString("var é")
	if !errors.Is(err, ErrUnexpectedChar) || !strings.Contains(err.Error(), `'é' at 1:5`) {
		t.Fatalf("got %v", err)
	}

	// unterminated block comment is not ignored
	_, err = newTestTokenizer().TokenizeString("/* abc")
	if !errors.Is(err, ErrUnexpectedChar) {
		t.Fatalf("got %v", err)
	}
}

func TestEmptyTokenRule(t *testing.T) {
	tokenizer := NewTokenizer(
		Of(KindIdentifier, scanners.Optional(scanners.Literal("x"))),
		nil,
	)
	_, err := tokenizer.TokenizeString("y")
	if !errors.Is(err, ErrEmptyToken) {
		t.Fatalf("got %v", err)
	}
}

func TestTerminals(t *testing.T) {
	terms := Operators("=", "readonly", "==", "var", "=")
	if got := terms.Keywords(); strings.Join(got, ",") != "readonly,var" {
		t.Fatalf("got %v", got)
	}
	if got := terms.Symbols(); strings.Join(got, ",") != "==,=" {
		t.Fatalf("got %v", got)
	}
	if terms.Kind("=") != KindOperator || terms.Kind("var") != KindKeyword || terms.Kind("x") != KindInvalid {
		t.Fatal()
	}

	more := terms.With("const", "!=")
	if !more.Has("const") || !more.Has("!=") || !more.Has("readonly") {
		t.Fatal()
	}
	if terms.Has("const") {
		t.Fatal("With must not modify the receiver")
	}
}

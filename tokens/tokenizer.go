package tokens

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/reusee/parsec/scanners"
	"github.com/reusee/parsec/sources"
)

var (
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrEmptyToken     = errors.New("empty token")
)

// Tokenizer is an immutable tokenizer configuration, safe for concurrent use.
type Tokenizer struct {
	rule    Rule
	ignored scanners.Scanner
}

func NewTokenizer(rule Rule, ignored scanners.Scanner) *Tokenizer {
	if rule == nil {
		panic(fmt.Errorf("nil rule"))
	}
	if ignored == nil {
		ignored = func(_ string, at int) (int, bool) {
			return at, true
		}
	}
	return &Tokenizer{
		rule:    rule,
		ignored: scanners.SkipMany(ignored),
	}
}

func (t *Tokenizer) Tokenize(src *sources.Source) (*Sequence, error) {
	text := src.Content
	seq := &Sequence{
		Source: src,
	}

	at := 0
	cur := src.Pos(0)
	for {
		if end, _ := t.ignored(text, at); end > at {
			next := src.Advance(cur, end)
			seq.Ignored = append(seq.Ignored, Span{
				Start: cur,
				End:   next,
			})
			at = end
			cur = next
		}
		if at >= len(text) {
			break
		}

		kind, end, ok := t.rule(text, at)
		if !ok {
			r, _ := utf8.DecodeRuneInString(text[at:])
			return nil, sources.WithPos(
				fmt.Errorf("%w %q", ErrUnexpectedChar, r),
				cur,
			)
		}
		if end <= at {
			return nil, sources.WithPos(
				fmt.Errorf("%w: %s", ErrEmptyToken, kind),
				cur,
			)
		}

		next := src.Advance(cur, end)
		seq.Tokens = append(seq.Tokens, Token{
			Kind: kind,
			Text: text[at:end],
			Span: Span{
				Start: cur,
				End:   next,
			},
		})
		at = end
		cur = next
	}

	return seq, nil
}

func (t *Tokenizer) TokenizeString(text string) (*Sequence, error) {
	return t.Tokenize(sources.NewSource("", text))
}

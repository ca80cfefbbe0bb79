package tokens

import (
	"strconv"
	"strings"

	"github.com/reusee/parsec/sources"
)

// Sequence is the output of a tokenizer run. It is read-only once produced.
type Sequence struct {
	Source  *sources.Source
	Tokens  []Token
	Ignored []Span
}

func (s *Sequence) Len() int {
	return len(s.Tokens)
}

func (s *Sequence) At(i int) Token {
	return s.Tokens[i]
}

// PosAt returns the start of token i, or the end of input if i is past the last token.
func (s *Sequence) PosAt(i int) sources.Pos {
	if i < len(s.Tokens) {
		return s.Tokens[i].Span.Start
	}
	return s.Source.End()
}

// Describe names token i for diagnostics.
func (s *Sequence) Describe(i int) string {
	if i >= len(s.Tokens) {
		return "EOF"
	}
	return strconv.Quote(s.Tokens[i].Text)
}

// Reconstruct concatenates tokens and ignored spans in source order.
func (s *Sequence) Reconstruct() string {
	var sb strings.Builder
	i, j := 0, 0
	for i < len(s.Tokens) || j < len(s.Ignored) {
		if j >= len(s.Ignored) ||
			i < len(s.Tokens) && s.Tokens[i].Span.Start.Before(s.Ignored[j].Start) {
			sb.WriteString(s.Tokens[i].Text)
			i++
			continue
		}
		span := s.Ignored[j]
		sb.WriteString(s.Source.Content[span.Start.Offset:span.End.Offset])
		j++
	}
	return sb.String()
}

func (s *Sequence) Texts() []string {
	ret := make([]string, 0, len(s.Tokens))
	for _, tok := range s.Tokens {
		ret = append(ret, tok.Text)
	}
	return ret
}

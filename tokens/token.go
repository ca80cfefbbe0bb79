package tokens

import (
	"fmt"

	"github.com/reusee/parsec/sources"
)

type Kind uint8

const (
	KindInvalid Kind = iota
	KindOperator
	KindKeyword
	KindIdentifier
	KindInteger
	KindDecimal
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindOperator:
		return "operator"
	case KindKeyword:
		return "keyword"
	case KindIdentifier:
		return "identifier"
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindString:
		return "string"
	}
	return "invalid"
}

// Reserved reports whether tokens of the kind come from a Terminals registry.
func (k Kind) Reserved() bool {
	return k == KindOperator || k == KindKeyword
}

type Token struct {
	Kind Kind
	Text string
	Span Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}

// Span is a half-open range of source text.
type Span struct {
	Start sources.Pos
	End   sources.Pos
}

func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

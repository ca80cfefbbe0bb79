package tokens

import (
	"fmt"
	"slices"
	"strings"

	"github.com/reusee/parsec/scanners"
)

// Terminals is a registry of reserved words. Identifier-shaped words are keywords, the rest are operators.
type Terminals struct {
	symbols  []string
	keywords map[string]bool
}

func Operators(ops ...string) *Terminals {
	t := &Terminals{
		keywords: make(map[string]bool),
	}
	for _, op := range ops {
		t.add(op)
	}
	t.sortSymbols()
	return t
}

func (t *Terminals) add(op string) {
	if op == "" {
		panic(fmt.Errorf("empty terminal"))
	}
	if t.Has(op) {
		return
	}
	if scanners.IsIdentifier(op) {
		t.keywords[op] = true
	} else {
		t.symbols = append(t.symbols, op)
	}
}

func (t *Terminals) sortSymbols() {
	// longest first, so "==" is preferred over "="
	slices.SortStableFunc(t.symbols, func(a, b string) int {
		return len(b) - len(a)
	})
}

// With returns a new registry with more terminals added.
func (t *Terminals) With(ops ...string) *Terminals {
	ret := &Terminals{
		symbols:  slices.Clone(t.symbols),
		keywords: make(map[string]bool, len(t.keywords)+len(ops)),
	}
	for word := range t.keywords {
		ret.keywords[word] = true
	}
	for _, op := range ops {
		ret.add(op)
	}
	ret.sortSymbols()
	return ret
}

func (t *Terminals) Has(text string) bool {
	return t.keywords[text] || slices.Contains(t.symbols, text)
}

func (t *Terminals) Kind(text string) Kind {
	if t.keywords[text] {
		return KindKeyword
	}
	if slices.Contains(t.symbols, text) {
		return KindOperator
	}
	return KindInvalid
}

func (t *Terminals) Keywords() []string {
	ret := make([]string, 0, len(t.keywords))
	for word := range t.keywords {
		ret = append(ret, word)
	}
	slices.Sort(ret)
	return ret
}

func (t *Terminals) Symbols() []string {
	return slices.Clone(t.symbols)
}

// Tokenizer matches a keyword only when a whole identifier-shaped run equals it,
// then the longest symbolic operator. It must be ordered before IdentifierRule.
func (t *Terminals) Tokenizer() Rule {
	return func(text string, at int) (Kind, int, bool) {
		if len(t.keywords) > 0 {
			if end, ok := scanners.Identifier(text, at); ok && t.keywords[text[at:end]] {
				return KindKeyword, end, true
			}
		}
		for _, sym := range t.symbols {
			if strings.HasPrefix(text[at:], sym) {
				return KindOperator, at + len(sym), true
			}
		}
		return KindInvalid, at, false
	}
}

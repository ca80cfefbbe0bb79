package scanners

import (
	"strings"
	"unicode/utf8"
)

// Scanner matches a run of characters of text starting at byte offset at.
// On success it returns the end offset. On failure it returns at, never a partial advance.
type Scanner func(text string, at int) (end int, ok bool)

// Capture runs s and returns the matched text.
func Capture(s Scanner, text string, at int) (string, int, bool) {
	end, ok := s(text, at)
	if !ok {
		return "", at, false
	}
	return text[at:end], end, true
}

func Literal(str string) Scanner {
	if str == "" {
		panic("empty literal")
	}
	return func(text string, at int) (int, bool) {
		if strings.HasPrefix(text[at:], str) {
			return at + len(str), true
		}
		return at, false
	}
}

// Char matches one rune satisfying pred.
func Char(pred func(rune) bool) Scanner {
	return func(text string, at int) (int, bool) {
		if at >= len(text) {
			return at, false
		}
		r, size := utf8.DecodeRuneInString(text[at:])
		if !pred(r) {
			return at, false
		}
		return at + size, true
	}
}

// Chars matches one or more runes satisfying pred.
func Chars(pred func(rune) bool) Scanner {
	return Many1(Char(pred))
}

var AnyChar = Char(func(rune) bool {
	return true
})

func Seq(scanners ...Scanner) Scanner {
	return func(text string, at int) (int, bool) {
		cur := at
		for _, s := range scanners {
			end, ok := s(text, cur)
			if !ok {
				return at, false
			}
			cur = end
		}
		return cur, true
	}
}

// Or returns the first alternative that matches.
func Or(scanners ...Scanner) Scanner {
	return func(text string, at int) (int, bool) {
		for _, s := range scanners {
			if end, ok := s(text, at); ok {
				return end, true
			}
		}
		return at, false
	}
}

// SkipMany matches s zero or more times. It always succeeds, and stops at the first match that consumes nothing.
func SkipMany(s Scanner) Scanner {
	return func(text string, at int) (int, bool) {
		cur := at
		for {
			end, ok := s(text, cur)
			if !ok || end == cur {
				return cur, true
			}
			cur = end
		}
	}
}

func Many1(s Scanner) Scanner {
	return Seq(s, SkipMany(s))
}

func Optional(s Scanner) Scanner {
	return func(text string, at int) (int, bool) {
		if end, ok := s(text, at); ok {
			return end, true
		}
		return at, true
	}
}

// Not succeeds without consuming when s does not match.
func Not(s Scanner) Scanner {
	return func(text string, at int) (int, bool) {
		if _, ok := s(text, at); ok {
			return at, false
		}
		return at, true
	}
}

// Until consumes runes up to, not including, the first position where s matches, or to the end of text.
func Until(s Scanner) Scanner {
	return SkipMany(Seq(Not(s), AnyChar))
}

package tokens

import "github.com/reusee/parsec/scanners"

// Rule recognizes a significant token at offset at and reports its kind.
type Rule func(text string, at int) (kind Kind, end int, ok bool)

func Of(kind Kind, scanner scanners.Scanner) Rule {
	return func(text string, at int) (Kind, int, bool) {
		end, ok := scanner(text, at)
		if !ok {
			return KindInvalid, at, false
		}
		return kind, end, true
	}
}

// Or tries rules in order. The first match wins.
func Or(rules ...Rule) Rule {
	return func(text string, at int) (Kind, int, bool) {
		for _, rule := range rules {
			if kind, end, ok := rule(text, at); ok {
				return kind, end, true
			}
		}
		return KindInvalid, at, false
	}
}

var (
	IntegerRule    = Of(KindInteger, scanners.Integer)
	DecimalRule    = Of(KindDecimal, scanners.Decimal)
	IdentifierRule = Of(KindIdentifier, scanners.Identifier)
	StringRule     = Of(KindString, scanners.DoubleQuoteString)
)

// Ignored skips any run of the given scanners.
func Ignored(ss ...scanners.Scanner) scanners.Scanner {
	return scanners.SkipMany(scanners.Or(ss...))
}

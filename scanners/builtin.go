package scanners

import "unicode"

var Whitespaces = Chars(unicode.IsSpace)

func LineComment(begin string) Scanner {
	return Seq(Literal(begin), Until(Literal("\n")))
}

// BlockComment matches open ... close. Comments do not nest, and an unterminated comment does not match.
func BlockComment(open string, close string) Scanner {
	end := Literal(close)
	return Seq(Literal(open), Until(end), end)
}

var (
	JavaLineComment  = LineComment("//")
	JavaBlockComment = BlockComment("/*", "*/")
	HashLineComment  = LineComment("#")
)

var Integer = Chars(isDigit)

var Decimal = Seq(
	Integer,
	Optional(Seq(Literal("."), Integer)),
)

var Identifier = Seq(
	Char(isIdentifierStart),
	SkipMany(Char(isIdentifierPart)),
)

// DoubleQuoteString matches a double quoted string literal with backslash escapes. The quotes are part of the match.
var DoubleQuoteString = Seq(
	Literal(`"`),
	SkipMany(Or(
		Seq(Literal(`\`), AnyChar),
		Char(func(r rune) bool {
			return r != '"' && r != '\\'
		}),
	)),
	Literal(`"`),
)

func IsIdentifier(str string) bool {
	if str == "" {
		return false
	}
	end, ok := Identifier(str, 0)
	return ok && end == len(str)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func isIdentifierStart(r rune) bool {
	return r == '_' || isLetter(r)
}

func isIdentifierPart(r rune) bool {
	return r == '_' || isLetter(r) || isDigit(r)
}

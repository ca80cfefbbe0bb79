package statements

import (
	"github.com/reusee/parsec/parsers"
	"github.com/reusee/parsec/scanners"
	"github.com/reusee/parsec/tokens"
)

var Terminals = tokens.Operators("=", "readonly", "var")

// Grammar holds the lexical setup of the statement language. Its parsers may be shared between goroutines.
type Grammar struct {
	Terms   *tokens.Terminals
	Rule    tokens.Rule
	Ignored scanners.Scanner
}

// NewGrammar builds a grammar with a line comment delimiter and extra keywords.
func NewGrammar(lineComment string, keywords ...string) *Grammar {
	terms := Terminals.With(keywords...)
	return &Grammar{
		Terms: terms,
		Rule: tokens.Or(
			terms.Tokenizer(),
			tokens.IntegerRule,
			tokens.IdentifierRule,
		),
		Ignored: tokens.Ignored(
			scanners.LineComment(lineComment),
			scanners.JavaBlockComment,
			scanners.Whitespaces,
		),
	}
}

var DefaultGrammar = NewGrammar("//")

func (g *Grammar) Tokenizer() *tokens.Tokenizer {
	return tokens.NewTokenizer(g.Rule, g.Ignored)
}

func (g *Grammar) word(text string) parsers.Parser[string] {
	return parsers.As(parsers.Word(g.Terms, text), text)
}

func (g *Grammar) Readonly() parsers.Parser[string] {
	return g.word("readonly")
}

func (g *Grammar) Var() parsers.Parser[string] {
	return g.word("var")
}

func (g *Grammar) Eq() parsers.Parser[string] {
	return g.word("=")
}

func (g *Grammar) DoubleExpression01() parsers.Parser[DoubleExpression] {
	return parsers.Seq2(g.Readonly(), g.Var(), func(s, s2 string) DoubleExpression {
		return DoubleExpression{
			S:  s,
			S2: s2,
		}
	})
}

func (g *Grammar) DoubleExpression02() parsers.Parser[DoubleExpression] {
	return parsers.Seq2(g.Readonly(), g.Var(), NewDoubleExpression)
}

func (g *Grammar) SingleExpression01() parsers.Parser[SingleExpression] {
	return parsers.Map(parsers.Or(g.Readonly()), NewSingleExpression)
}

// SingleExpression02 keeps the second word.
func (g *Grammar) SingleExpression02() parsers.Parser[SingleExpression] {
	return parsers.Map(parsers.Right(g.Readonly(), g.Var()), NewSingleExpression)
}

func (g *Grammar) target() parsers.Parser[tokens.Token] {
	return parsers.Label(
		parsers.Or(
			parsers.Word(g.Terms, "var"),
			parsers.Token(tokens.KindIdentifier),
			parsers.Token(tokens.KindInteger),
		),
		"target",
	)
}

func (g *Grammar) Declaration() parsers.Parser[Declaration] {
	return parsers.Label(
		parsers.Seq3(
			parsers.Word(g.Terms, "readonly"),
			parsers.Optional(parsers.As(g.Eq(), true), false),
			g.target(),
			func(modifier tokens.Token, assign bool, target tokens.Token) Declaration {
				return Declaration{
					Modifier:   modifier.Text,
					Assign:     assign,
					Target:     target.Text,
					TargetKind: target.Kind,
					Pos:        modifier.Span.Start,
				}
			},
		),
		"declaration",
	)
}

func (g *Grammar) Statements() parsers.Parser[[]Declaration] {
	return parsers.Many(g.Declaration())
}

package parsers

import (
	"log/slog"

	"github.com/reusee/parsec/scanners"
	"github.com/reusee/parsec/sources"
	"github.com/reusee/parsec/tokens"
)

// Bound is a grammar parser bound to a tokenizer, runnable over raw text.
type Bound[T any] struct {
	parser    Parser[T]
	tokenizer *tokens.Tokenizer
	tieBreak  TieBreak
	logger    *slog.Logger
}

type Option func(*options)

type options struct {
	tieBreak TieBreak
	logger   *slog.Logger
}

func WithTieBreak(t TieBreak) Option {
	return func(o *options) {
		o.tieBreak = t
	}
}

// WithLogger enables debug tracing of tokenization and labeled rules.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func From[T any](p Parser[T], rule tokens.Rule, ignored scanners.Scanner, opts ...Option) Bound[T] {
	return FromTokenizer(p, tokens.NewTokenizer(rule, ignored), opts...)
}

func FromTokenizer[T any](p Parser[T], tokenizer *tokens.Tokenizer, opts ...Option) Bound[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return Bound[T]{
		parser:    p,
		tokenizer: tokenizer,
		tieBreak:  o.tieBreak,
		logger:    o.logger,
	}
}

func (b Bound[T]) Tokenizer() *tokens.Tokenizer {
	return b.tokenizer
}

func (b Bound[T]) Parse(text string) (T, error) {
	return b.ParseSource(sources.NewSource("", text))
}

func (b Bound[T]) ParseSource(src *sources.Source) (ret T, err error) {
	seq, err := b.tokenizer.Tokenize(src)
	if err != nil {
		return ret, err
	}
	if b.logger != nil {
		b.logger.Debug("tokenized",
			"source", src.Name,
			"tokens", seq.Len(),
			"ignored", len(seq.Ignored),
		)
	}
	return b.ParseTokens(seq)
}

// ParseTokens runs the parser from cursor 0 and requires every token to be consumed.
func (b Bound[T]) ParseTokens(seq *tokens.Sequence) (ret T, err error) {
	in := &Input{
		Tokens:   seq,
		TieBreak: b.tieBreak,
		Logger:   b.logger,
	}
	v, next, f := b.parser.Apply(in, 0)
	if f != nil {
		return ret, sources.WithPos(f, f.Pos)
	}
	if next < seq.Len() {
		f = in.fail(next, "EOF")
		f.Err = ErrTrailingInput
		f.Committed = next > 0
		return ret, sources.WithPos(f, f.Pos)
	}
	return v, nil
}

// Parse tokenizes text and runs p over the whole token sequence.
func Parse[T any](p Parser[T], rule tokens.Rule, ignored scanners.Scanner, text string, opts ...Option) (T, error) {
	return From(p, rule, ignored, opts...).Parse(text)
}

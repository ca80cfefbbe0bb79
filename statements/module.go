package statements

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/reusee/dscope"
	"github.com/reusee/parsec/logs"
	"github.com/reusee/parsec/parsecconfigs"
	"github.com/reusee/parsec/parsers"
	"github.com/reusee/parsec/sources"
	"github.com/reusee/parsec/tokens"
)

type Module struct {
	dscope.Module
	Configs parsecconfigs.Module
	Logs    logs.Module
}

func (Module) Grammar(
	lineComment parsecconfigs.LineComment,
	keywords parsecconfigs.Keywords,
) *Grammar {
	return NewGrammar(string(lineComment), keywords...)
}

type ParseOptions []parsers.Option

func (Module) ParseOptions(
	tieBreak parsers.TieBreak,
	trace parsecconfigs.Trace,
	writer logs.Writer,
	logger logs.Logger,
) ParseOptions {
	traceLogger := logger
	if trace {
		traceLogger = slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return ParseOptions{
		parsers.WithTieBreak(tieBreak),
		parsers.WithLogger(traceLogger),
	}
}

type Tokenize func(ctx context.Context, src *sources.Source) (*tokens.Sequence, error)

func (Module) Tokenize(
	grammar *Grammar,
	logger logs.Logger,
) Tokenize {
	tokenizer := grammar.Tokenizer()
	return func(ctx context.Context, src *sources.Source) (*tokens.Sequence, error) {
		seq, err := tokenizer.Tokenize(src)
		if err != nil {
			logger.DebugContext(ctx, "tokenize failed",
				"source", src.Name,
				"error", err,
			)
			return nil, err
		}
		logger.DebugContext(ctx, "tokenize",
			"source", src.Name,
			"tokens", seq.Len(),
		)
		return seq, nil
	}
}

// Entry parses a whole source with one of the grammar's entry rules.
type Entry func(ctx context.Context, src *sources.Source) (any, error)

type Entries map[string]Entry

func entry[T any](p parsers.Parser[T], tokenize Tokenize, options ParseOptions, logger logs.Logger) Entry {
	bound := parsers.FromTokenizer(p, nil, options...)
	return func(ctx context.Context, src *sources.Source) (any, error) {
		seq, err := tokenize(ctx, src)
		if err != nil {
			return nil, err
		}
		v, err := bound.ParseTokens(seq)
		if err != nil {
			logger.DebugContext(ctx, "parse failed",
				"source", src.Name,
				"error", err,
			)
			return nil, err
		}
		return v, nil
	}
}

func (Module) Entries(
	grammar *Grammar,
	tokenize Tokenize,
	options ParseOptions,
	logger logs.Logger,
) Entries {
	return Entries{
		"double":      entry(grammar.DoubleExpression01(), tokenize, options, logger),
		"single":      entry(grammar.SingleExpression01(), tokenize, options, logger),
		"pair":        entry(grammar.SingleExpression02(), tokenize, options, logger),
		"declaration": entry(grammar.Declaration(), tokenize, options, logger),
		"statements":  entry(grammar.Statements(), tokenize, options, logger),
	}
}

func (e Entries) Names() []string {
	return slices.Sorted(maps.Keys(e))
}

func (e Entries) Get(name string) (Entry, error) {
	fn, ok := e[name]
	if !ok {
		return nil, fmt.Errorf("unknown grammar: %s, expecting one of %v", name, e.Names())
	}
	return fn, nil
}

// Parse parses text as a list of declarations.
type Parse func(ctx context.Context, name string, text string) ([]Declaration, error)

func (Module) Parse(
	entries Entries,
) Parse {
	statements := entries["statements"]
	return func(ctx context.Context, name string, text string) ([]Declaration, error) {
		v, err := statements(ctx, sources.NewSource(name, text))
		if err != nil {
			return nil, err
		}
		return v.([]Declaration), nil
	}
}

package parsers

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/reusee/parsec/tokens"
)

// Input is the state of one parse invocation. Parsers never modify it.
type Input struct {
	Tokens   *tokens.Sequence
	TieBreak TieBreak
	Logger   *slog.Logger
}

// Parser is an immutable grammar rule producing T. Apply returns the value and the next cursor,
// or a non-nil failure with the cursor unchanged.
type Parser[T any] struct {
	label string
	apply func(in *Input, at int) (T, int, *Failure)
}

func (p Parser[T]) Apply(in *Input, at int) (T, int, *Failure) {
	if p.apply == nil {
		panic(fmt.Errorf("zero Parser"))
	}
	return p.apply(in, at)
}

func (p Parser[T]) String() string {
	return p.label
}

// Token matches one token of the kind.
func Token(kind tokens.Kind) Parser[tokens.Token] {
	label := kind.String()
	return Parser[tokens.Token]{
		label: label,
		apply: func(in *Input, at int) (tokens.Token, int, *Failure) {
			if at < in.Tokens.Len() {
				if tok := in.Tokens.At(at); tok.Kind == kind {
					return tok, at + 1, nil
				}
			}
			return tokens.Token{}, at, in.fail(at, label)
		},
	}
}

// Text matches one reserved token with the text.
func Text(text string) Parser[tokens.Token] {
	return Parser[tokens.Token]{
		label: text,
		apply: func(in *Input, at int) (tokens.Token, int, *Failure) {
			if at < in.Tokens.Len() {
				if tok := in.Tokens.At(at); tok.Kind.Reserved() && tok.Text == text {
					return tok, at + 1, nil
				}
			}
			return tokens.Token{}, at, in.fail(at, strconv.Quote(text))
		},
	}
}

// Word is Text for a terminal registered in terms. It panics if text is not registered.
func Word(terms *tokens.Terminals, text string) Parser[tokens.Token] {
	if !terms.Has(text) {
		panic(fmt.Errorf("terminal not registered: %q", text))
	}
	return Text(text)
}

func Retn[T any](value T) Parser[T] {
	return Parser[T]{
		label: "",
		apply: func(_ *Input, at int) (T, int, *Failure) {
			return value, at, nil
		},
	}
}

// As runs p and replaces its value.
func As[T, U any](p Parser[T], value U) Parser[U] {
	return Map(p, func(T) U {
		return value
	})
}

func Map[T, U any](p Parser[T], fn func(T) U) Parser[U] {
	return Parser[U]{
		label: p.label,
		apply: func(in *Input, at int) (ret U, _ int, _ *Failure) {
			v, next, f := p.Apply(in, at)
			if f != nil {
				return ret, at, f
			}
			return fn(v), next, nil
		},
	}
}

// Or tries ps in order from the same cursor. A committed failure is returned at once;
// when every branch fails recoverably the input's TieBreak picks the reported failure.
func Or[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		panic(fmt.Errorf("Or requires at least one parser"))
	}
	label := ps[0].label
	for _, p := range ps[1:] {
		label += " or " + p.label
	}
	return Parser[T]{
		label: label,
		apply: func(in *Input, at int) (ret T, _ int, _ *Failure) {
			fails := make([]*Failure, 0, len(ps))
			for _, p := range ps {
				v, next, f := p.Apply(in, at)
				if f == nil {
					return v, next, nil
				}
				if f.Committed {
					return ret, at, f
				}
				fails = append(fails, f)
			}
			return ret, at, in.TieBreak.pick(fails)
		},
	}
}

// Try turns a committed failure of p into a recoverable one, keeping its position and expectation.
func Try[T any](p Parser[T]) Parser[T] {
	return Parser[T]{
		label: p.label,
		apply: func(in *Input, at int) (ret T, _ int, _ *Failure) {
			v, next, f := p.Apply(in, at)
			if f != nil {
				return ret, at, f.recoverable()
			}
			return v, next, nil
		},
	}
}

// Label names p in expectations. It replaces the expectation of failures that did not get past the starting cursor.
func Label[T any](p Parser[T], name string) Parser[T] {
	return Parser[T]{
		label: name,
		apply: func(in *Input, at int) (ret T, _ int, _ *Failure) {
			trace := in.Logger != nil && in.Logger.Enabled(context.Background(), slog.LevelDebug)
			if trace {
				in.Logger.Debug("parse", "rule", name, "pos", in.Tokens.PosAt(at).String())
			}
			v, next, f := p.Apply(in, at)
			if f == nil {
				return v, next, nil
			}
			if trace {
				in.Logger.Debug("parse failed", "rule", name, "pos", f.Pos.String(), "committed", f.Committed)
			}
			if !f.Committed && f.At == at {
				relabeled := *f
				relabeled.Expected = []string{name}
				f = &relabeled
			}
			return ret, at, f
		},
	}
}

// Lazy defers construction of a parser, for recursive grammars.
func Lazy[T any](fn func() Parser[T]) Parser[T] {
	get := sync.OnceValue(fn)
	return Parser[T]{
		label: "",
		apply: func(in *Input, at int) (T, int, *Failure) {
			return get().Apply(in, at)
		},
	}
}

func EOF() Parser[struct{}] {
	return Parser[struct{}]{
		label: "EOF",
		apply: func(in *Input, at int) (ret struct{}, _ int, _ *Failure) {
			if at >= in.Tokens.Len() {
				return ret, at, nil
			}
			return ret, at, in.fail(at, "EOF")
		},
	}
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/reusee/dscope"
	"github.com/reusee/parsec/cmds"
	"github.com/reusee/parsec/debugs"
	"github.com/reusee/parsec/logs"
	"github.com/reusee/parsec/modes"
	"github.com/reusee/parsec/sources"
	"github.com/reusee/parsec/statements"
	"github.com/reusee/parsec/syncs"
	"github.com/reusee/parsec/tokens"
	"github.com/reusee/parsec/vars"
)

var (
	files       = cmds.Collect[string]("file", "source path, url, or - for stdin")
	grammarName = cmds.Var[string]("grammar", "entry rule (statements|declaration|double|single|pair)")
	printTokens = cmds.Switch("-tokens", "print tokens instead of parse results")
	tap         = cmds.Switch("-tap", "open a starlark repl over each result")
	scriptPath  = cmds.Var[string]("script", "starlark script to run over each result")
	jobs        = cmds.Var[int]("-jobs", "max sources parsed at once")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	if len(*files) == 0 {
		*files = []string{"-"}
	}

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		load sources.Load,
		tokenize statements.Tokenize,
		entries statements.Entries,
		tapFunc debugs.Tap,
		exec debugs.Exec,
	) {
		entry, err := entries.Get(vars.FirstNonZero(*grammarName, "statements"))
		ce(err)

		var script string
		if *scriptPath != "" {
			content, err := os.ReadFile(*scriptPath)
			ce(err)
			script = string(content)
		}

		type result struct {
			src   *sources.Source
			value any
		}
		results, errs := syncs.Map(ctx, vars.FirstNonZero(*jobs, runtime.NumCPU()), *files, func(ctx context.Context, name string) (ret result, err error) {
			ctx, _ = newSpan(ctx, "")
			ret.src, err = load(ctx, name)
			if err != nil {
				return
			}
			if *printTokens {
				seq, err := tokenize(ctx, ret.src)
				if err != nil {
					return ret, err
				}
				ret.value = seq
				return ret, nil
			}
			ret.value, err = entry(ctx, ret.src)
			return
		})

		failed := false
		for i, res := range results {
			if errs[i] != nil {
				fmt.Fprintln(os.Stderr, errs[i])
				failed = true
				continue
			}

			value := res.value
			if seq, ok := value.(*tokens.Sequence); ok {
				printSequence(os.Stdout, seq)
				value = seq.Tokens
			} else {
				printValue(os.Stdout, value)
			}

			globals := map[string]any{
				"source": res.src,
				"value":  value,
				"tokenize": func(text string) ([]tokens.Token, error) {
					seq, err := tokenize(ctx, sources.NewSource("", text))
					if err != nil {
						return nil, err
					}
					return seq.Tokens, nil
				},
				"parse": func(text string) (any, error) {
					return entry(ctx, sources.NewSource("", text))
				},
			}

			if script != "" {
				_, err := exec(ctx, *scriptPath, script, globals)
				ce(err)
			}

			if *tap {
				tapFunc(ctx, res.src.Name, globals)
			}

			logger.DebugContext(ctx, "done", "source", res.src.Name)
		}

		if failed {
			os.Exit(1)
		}
	})
}

func printSequence(w io.Writer, seq *tokens.Sequence) {
	for _, tok := range seq.Tokens {
		fmt.Fprintf(w, "%s\t%s\t%q\n", tok.Span.Start, tok.Kind, tok.Text)
	}
}

func printValue(w io.Writer, value any) {
	switch value := value.(type) {
	case []statements.Declaration:
		for _, decl := range value {
			fmt.Fprintf(w, "%s\t%s\n", decl.Pos, decl)
		}
	default:
		fmt.Fprintf(w, "%+v\n", value)
	}
}

func ce(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/parsec/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

func globalsDict(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		ret[name] = ToStarlark(value)
	}
	return ret
}

// Tap starts an interactive starlark session over the globals. It returns when input ends.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, globalsDict(globals))
	}
}

// Exec runs a starlark script over the globals and returns the globals it defines.
type Exec func(ctx context.Context, name string, script string, globals map[string]any) (starlark.StringDict, error)

func (Module) Exec(
	logger logs.Logger,
) Exec {
	return func(ctx context.Context, name string, script string, globals map[string]any) (starlark.StringDict, error) {
		thread := &starlark.Thread{
			Name: name,
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, msg, "script", name)
			},
		}
		if ctx.Done() != nil {
			stop := context.AfterFunc(ctx, func() {
				thread.Cancel(context.Cause(ctx).Error())
			})
			defer stop()
		}
		return starlark.ExecFileOptions(fileOptions, thread, name, script, globalsDict(globals))
	}
}

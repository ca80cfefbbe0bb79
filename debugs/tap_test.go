package debugs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/parsec/logs"
	"github.com/reusee/parsec/modes"
	"go.starlark.net/starlark"
)

func TestTap(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"foo": 42,
		})
	})
}

func TestExec(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() logs.Writer {
			return buf
		},
		func() logs.UseJournal {
			return false
		},
		func() logs.Level {
			level := new(slog.LevelVar)
			level.Set(slog.LevelInfo)
			return level
		},
	).Call(func(
		exec Exec,
	) {
		globals, err := exec(t.Context(), "test.star", `
words = [w.upper() for w in texts]
total = n + 2
print("done")
		`, map[string]any{
			"texts": []string{"readonly", "var"},
			"n":     40,
		})
		if err != nil {
			t.Fatal(err)
		}
		words := globals["words"].(*starlark.List)
		if words.Len() != 2 || words.Index(0) != starlark.String("READONLY") {
			t.Fatalf("got %v", words)
		}
		if globals["total"].String() != "42" {
			t.Fatalf("got %v", globals["total"])
		}
		if !strings.Contains(buf.String(), "msg=done") {
			t.Fatalf("got %s", buf.String())
		}

		_, err = exec(t.Context(), "bad.star", `x = `, nil)
		if err == nil {
			t.Fatal("should fail")
		}

		ctx, cancel := context.WithCancelCause(t.Context())
		cancel(errors.New("stop"))
		_, err = exec(ctx, "loop.star", `
while True:
  pass
		`, nil)
		if err == nil || !strings.Contains(err.Error(), "stop") {
			t.Fatalf("got %v", err)
		}
	})
}

package sources

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/parsec/configs"
	"github.com/reusee/parsec/modes"
)

func testScope(t *testing.T) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("readonly var"), 0644); err != nil {
		t.Fatal(err)
	}
	testScope(t).Call(func(
		load Load,
	) {
		src, err := load(context.Background(), path)
		if err != nil {
			t.Fatal(err)
		}
		if src.Name != path || src.Content != "readonly var" {
			t.Fatalf("got %+v", src)
		}

		src, err = load(context.Background(), "file://"+path)
		if err != nil {
			t.Fatal(err)
		}
		if src.Content != "readonly var" {
			t.Fatalf("got %+v", src)
		}

		_, err = load(context.Background(), filepath.Join(t.TempDir(), "none"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestLoadStdin(t *testing.T) {
	testScope(t).Fork(
		func() Stdin {
			return strings.NewReader("readonly = var")
		},
	).Call(func(
		load Load,
	) {
		src, err := load(context.Background(), "-")
		if err != nil {
			t.Fatal(err)
		}
		if src.Name != "<stdin>" || src.Content != "readonly = var" {
			t.Fatalf("got %+v", src)
		}
	})
}

func TestLoadURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/a.txt" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, "readonly\nvar")
	}))
	defer server.Close()

	testScope(t).Call(func(
		load Load,
	) {
		src, err := load(context.Background(), server.URL+"/a.txt")
		if err != nil {
			t.Fatal(err)
		}
		if src.Content != "readonly\nvar" || len(src.Lines) != 2 {
			t.Fatalf("got %+v", src)
		}

		_, err = load(context.Background(), server.URL+"/b.txt")
		if err == nil || !strings.Contains(err.Error(), "404") {
			t.Fatalf("got %v", err)
		}

		_, err = load(context.Background(), "ftp://example.com/a.txt")
		if !errors.Is(err, ErrUnsupportedScheme) {
			t.Fatalf("got %v", err)
		}
	})
}

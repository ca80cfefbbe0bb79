package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/reusee/parsec/logs"
	"github.com/reusee/parsec/nets"
)

var ErrUnsupportedScheme = errors.New("unsupported scheme")

// Load reads a named source. The name is a file path, "-" for standard input, or an http(s) URL.
type Load func(ctx context.Context, name string) (*Source, error)

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

func (Module) Load(
	stdin Stdin,
	client nets.HTTPClient,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, name string) (*Source, error) {
		if name == "-" {
			content, err := io.ReadAll(stdin)
			if err != nil {
				return nil, err
			}
			return NewSource("<stdin>", string(content)), nil
		}

		if strings.Contains(name, "://") {
			u, err := url.Parse(name)
			if err != nil {
				return nil, err
			}
			switch u.Scheme {
			case "http", "https":
			case "file":
				return loadFile(u.Path)
			default:
				return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, u.Scheme)
			}
			logger.DebugContext(ctx, "fetch source", "url", name)
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, name, nil)
			if err != nil {
				return nil, err
			}
			resp, err := client.Do(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return nil, fmt.Errorf("fetch %s: %s", name, resp.Status)
			}
			content, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			return NewSource(name, string(content)), nil
		}

		return loadFile(name)
	}
}

func loadFile(path string) (*Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewSource(path, string(content)), nil
}

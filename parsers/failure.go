package parsers

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/reusee/parsec/sources"
)

var (
	ErrUnexpected    = errors.New("unexpected token")
	ErrTrailingInput = errors.New("trailing input")
	ErrNoProgress    = errors.New("repetition made no progress")
)

// Failure is the unsuccessful outcome of applying a parser.
// A failure that is not Committed consumed no tokens relative to the failing parser's starting cursor,
// and alternation may try another branch.
type Failure struct {
	At        int
	Pos       sources.Pos
	Expected  []string
	Found     string
	Committed bool
	Err       error
}

func (f *Failure) Error() string {
	var sb strings.Builder
	sb.WriteString(f.Err.Error())
	if len(f.Expected) > 0 {
		sb.WriteString(": expected ")
		sb.WriteString(strings.Join(f.Expected, " or "))
		if f.Found != "" {
			sb.WriteString(", got ")
			sb.WriteString(f.Found)
		}
	}
	return sb.String()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func (f *Failure) Recoverable() bool {
	return !f.Committed
}

func (f *Failure) committed() *Failure {
	if f.Committed {
		return f
	}
	c := *f
	c.Committed = true
	return &c
}

func (f *Failure) recoverable() *Failure {
	if !f.Committed {
		return f
	}
	c := *f
	c.Committed = false
	return &c
}

func (in *Input) fail(at int, expected ...string) *Failure {
	return &Failure{
		At:       at,
		Pos:      in.Tokens.PosAt(at),
		Expected: expected,
		Found:    in.Tokens.Describe(at),
		Err:      ErrUnexpected,
	}
}

// TieBreak chooses the reported failure when every branch of an alternation fails recoverably.
type TieBreak uint8

const (
	// TieBreakDeepest reports the failure at the greatest token index,
	// merging the expectations of all failures at that index in branch order.
	TieBreakDeepest TieBreak = iota
	// TieBreakLast reports the failure of the last attempted branch.
	TieBreakLast
)

func (t TieBreak) String() string {
	switch t {
	case TieBreakDeepest:
		return "deepest"
	case TieBreakLast:
		return "last"
	}
	return fmt.Sprintf("TieBreak(%d)", uint8(t))
}

func ParseTieBreak(str string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "", "deepest":
		return TieBreakDeepest, nil
	case "last":
		return TieBreakLast, nil
	}
	return 0, fmt.Errorf("unknown tie break policy: %q", str)
}

func (t TieBreak) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TieBreak) UnmarshalText(text []byte) error {
	v, err := ParseTieBreak(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t TieBreak) pick(fails []*Failure) *Failure {
	if t == TieBreakLast || len(fails) == 1 {
		return fails[len(fails)-1]
	}

	deepest := fails[0]
	for _, f := range fails[1:] {
		if f.At > deepest.At {
			deepest = f
		}
	}
	merged := *deepest
	merged.Expected = nil
	for _, f := range fails {
		if f.At != deepest.At {
			continue
		}
		for _, e := range f.Expected {
			if !slices.Contains(merged.Expected, e) {
				merged.Expected = append(merged.Expected, e)
			}
		}
	}
	return &merged
}

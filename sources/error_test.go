package sources

import (
	"errors"
	"fmt"
	"testing"
	"unicode/utf8"
)

func TestPos(t *testing.T) {
	src := NewSource("a.txt", "foo\n  bar\n世界x")
	tests := []struct {
		offset int
		line   int
		col    int
	}{
		{0, 1, 1},
		{3, 1, 4},
		{4, 2, 1},
		{6, 2, 3},
		{10, 3, 1},
		{16, 3, 3},
		{100, 3, 4},
		{-1, 1, 1},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.offset), func(t *testing.T) {
			pos := src.Pos(test.offset)
			if pos.Line != test.line || pos.Column != test.col {
				t.Fatalf("got %v", pos)
			}
		})
	}
	if s := src.Pos(6).String(); s != "a.txt:2:3" {
		t.Fatalf("got %v", s)
	}
	if s := NewSource("", "x").End().String(); s != "1:2" {
		t.Fatalf("got %v", s)
	}
}

func TestAdvance(t *testing.T) {
	src := NewSource("a.txt", "foo\n  bar\n世界x\n\n\xffy")
	start := src.Pos(0)
	cur := start
	for offset := 0; offset <= len(src.Content)+1; offset++ {
		want := src.Pos(offset)
		if pos := src.Advance(start, offset); pos != want {
			t.Fatalf("offset %d: got %v, want %v", offset, pos, want)
		}
		if offset < len(src.Content) && !utf8.RuneStart(src.Content[offset]) {
			continue
		}
		next := src.Advance(cur, offset)
		if next != want {
			t.Fatalf("offset %d: got %v, want %v", offset, next, want)
		}
		cur = next
	}
	// backwards and foreign positions fall back to Pos
	if pos := src.Advance(src.End(), 5); pos != src.Pos(5) {
		t.Fatalf("got %v", pos)
	}
	if pos := src.Advance(Pos{}, 5); pos != src.Pos(5) {
		t.Fatalf("got %v", pos)
	}
}

func TestPosError(t *testing.T) {
	src := NewSource("a.txt", "foo\n\tbar")
	errFoo := errors.New("foo")
	err := WithPos(errFoo, src.Pos(6))
	if !errors.Is(err, errFoo) {
		t.Fatal()
	}
	if err.Error() != "foo at a.txt:2:3\n\tbar\n\t ^\n" {
		t.Fatalf("got %q", err.Error())
	}

	// the innermost position is kept
	wrapped := WithPos(fmt.Errorf("bar: %w", err), src.Pos(0))
	pos, ok := PosOf(wrapped)
	if !ok || pos.Offset != 6 {
		t.Fatalf("got %v", pos)
	}

	if WithPos(nil, src.Pos(0)) != nil {
		t.Fatal()
	}
	if _, ok := PosOf(errFoo); ok {
		t.Fatal()
	}
}

func TestPosErrorWideRunes(t *testing.T) {
	src := NewSource("", "世界 x")
	err := WithPos(errors.New("bad"), src.Pos(len("世界 ")))
	if err.Error() != "bad at 1:4\n世界 x\n     ^\n" {
		t.Fatalf("got %q", err.Error())
	}
}

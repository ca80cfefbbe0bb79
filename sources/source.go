package sources

import (
	"sort"
	"strings"
	"unicode/utf8"
)

type Source struct {
	Name    string
	Content string
	Lines   []string

	lineStarts []int
}

func NewSource(name string, content string) *Source {
	lines := strings.Split(content, "\n")
	starts := make([]int, 0, len(lines))
	offset := 0
	for _, line := range lines {
		starts = append(starts, offset)
		offset += len(line) + 1
	}
	return &Source{
		Name:       name,
		Content:    content,
		Lines:      lines,
		lineStarts: starts,
	}
}

// Pos returns the position of the byte offset. Offsets outside the content are clamped.
func (s *Source) Pos(offset int) Pos {
	if offset < 0 {
		offset = 0
	}
	if offset > len(s.Content) {
		offset = len(s.Content)
	}
	line := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	}) - 1
	return Pos{
		Source: s,
		Offset: offset,
		Line:   line + 1,
		Column: utf8.RuneCountInString(s.Content[s.lineStarts[line]:offset]) + 1,
	}
}

func (s *Source) End() Pos {
	return s.Pos(len(s.Content))
}

// Advance returns the position of offset by walking forward from from.
// The cost is linear in the distance, so sequential callers should use it instead of Pos.
func (s *Source) Advance(from Pos, offset int) Pos {
	if from.Source != s || offset < from.Offset {
		return s.Pos(offset)
	}
	if offset > len(s.Content) {
		offset = len(s.Content)
	}
	pos := from
	for _, r := range s.Content[from.Offset:offset] {
		if r == '\n' {
			pos.Line++
			pos.Column = 1
			continue
		}
		pos.Column++
	}
	pos.Offset = offset
	return pos
}

package sources

import "fmt"

type Pos struct {
	Source *Source
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	if p.Source == nil || p.Source.Name == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Source.Name, p.Line, p.Column)
}

func (p Pos) Before(q Pos) bool {
	return p.Offset < q.Offset
}

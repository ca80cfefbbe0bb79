package statements

import (
	"strings"

	"github.com/reusee/parsec/sources"
	"github.com/reusee/parsec/tokens"
)

type DoubleExpression struct {
	S  string
	S2 string
}

func NewDoubleExpression(s, s2 string) DoubleExpression {
	return DoubleExpression{
		S:  s,
		S2: s2,
	}
}

type SingleExpression struct {
	S string
}

func NewSingleExpression(s string) SingleExpression {
	return SingleExpression{
		S: s,
	}
}

// Declaration is `readonly [=] target`.
type Declaration struct {
	Modifier   string
	Assign     bool
	Target     string
	TargetKind tokens.Kind
	Pos        sources.Pos
}

func (d Declaration) String() string {
	var sb strings.Builder
	sb.WriteString(d.Modifier)
	if d.Assign {
		sb.WriteString(" =")
	}
	sb.WriteString(" ")
	sb.WriteString(d.Target)
	return sb.String()
}

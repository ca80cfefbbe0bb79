package parsecconfigs

import (
	"fmt"
	"slices"

	"github.com/reusee/parsec/cmds"
	"github.com/reusee/parsec/configs"
	"github.com/reusee/parsec/parsers"
	"github.com/reusee/parsec/scanners"
	"github.com/reusee/parsec/vars"
)

var tieBreakFlag = cmds.Var[*parsers.TieBreak]("-tie-break", "failure reported when all alternatives fail (deepest|last)")

func (Module) TieBreak(
	loader configs.Loader,
) parsers.TieBreak {
	if flag := *tieBreakFlag; flag != nil {
		return *flag
	}
	var ret parsers.TieBreak
	if str := configs.First[string](loader, "tie_break"); str != "" {
		if err := ret.UnmarshalText([]byte(str)); err != nil {
			panic(err)
		}
	}
	return ret
}

type Keywords []string

func (Module) Keywords(
	loader configs.Loader,
) (ret Keywords) {
	for keywords := range configs.All[[]string](loader, "keywords") {
		for _, keyword := range keywords {
			if !scanners.IsIdentifier(keyword) {
				panic(fmt.Errorf("bad keyword: %q", keyword))
			}
			if !slices.Contains(ret, keyword) {
				ret = append(ret, keyword)
			}
		}
	}
	return
}

type LineComment string

var lineCommentFlag = cmds.Var[string]("-line-comment", "line comment delimiter")

func (Module) LineComment(
	loader configs.Loader,
) LineComment {
	return vars.FirstNonZero(
		LineComment(vars.DerefOrZero(lineCommentFlag)),
		configs.First[LineComment](loader, "line_comment"),
		"//",
	)
}

type Trace bool

var traceFlag = cmds.Switch("-trace", "trace tokenization and grammar rules")

func (Module) Trace(
	loader configs.Loader,
) Trace {
	return Trace(*traceFlag || configs.First[bool](loader, "trace"))
}

package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/parsec/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

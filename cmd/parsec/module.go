package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/parsec/debugs"
	"github.com/reusee/parsec/sources"
	"github.com/reusee/parsec/statements"
)

type Module struct {
	dscope.Module
	Statements statements.Module
	Sources    sources.Module
	Debugs     debugs.Module
}

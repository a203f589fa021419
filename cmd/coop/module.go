package main

import (
	"github.com/reusee/dscope"

	"github.com/reusee/coop/coopconfigs"
	"github.com/reusee/coop/debugs"
	"github.com/reusee/coop/loops"
	"github.com/reusee/coop/scripts"
)

type Module struct {
	dscope.Module
	Loops   loops.Module
	Scripts scripts.Module
	Configs coopconfigs.Module
	Debugs  debugs.Module
}

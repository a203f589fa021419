package debugs

import (
	"github.com/reusee/dscope"

	"github.com/reusee/coop/scripts"
)

type Module struct {
	dscope.Module
	Scripts scripts.Module
}

package frames

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

func (Module) Table() *Table {
	return NewTable()
}

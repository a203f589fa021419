package scripts

import (
	"fmt"
	"io"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/reusee/coop/clocks"
	"github.com/reusee/coop/logs"
	"github.com/reusee/coop/tasks"
)

// Program is a compiled script. Every top-level function in the script can
// become a task body via Task; inside a body the builtins yield_, sleep,
// call and now map to the runtime operations.
type Program struct {
	name    string
	globals starlark.StringDict
	newTask tasks.New
	logger  logs.Logger
}

type Compile func(name string, source io.Reader) (*Program, error)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

func (Module) Compile(
	newTask tasks.New,
	now clocks.Now,
	logger logs.Logger,
) Compile {
	return func(name string, source io.Reader) (*Program, error) {
		thread := &starlark.Thread{
			Name: name,
		}
		globals, err := starlark.ExecFileOptions(
			fileOptions,
			thread,
			name,
			source,
			predeclared(now),
		)
		if err != nil {
			return nil, err
		}
		logger.Debug("script compiled",
			"name", name,
			"globals", len(globals),
		)
		return &Program{
			name:    name,
			globals: globals,
			newTask: newTask,
			logger:  logger,
		}, nil
	}
}

// Task creates a task running the named script function with the given
// arguments. The task is lazy like any other: the function does not run
// before the first resume.
func (p *Program) Task(name string, args ...any) (*tasks.Task, error) {
	value, ok := p.globals[name]
	if !ok {
		return nil, fmt.Errorf("scripts: %s: no function %q", p.name, name)
	}
	fn, ok := value.(*starlark.Function)
	if !ok {
		return nil, fmt.Errorf("scripts: %s: %q is %s, not a function", p.name, name, value.Type())
	}
	callArgs := make(starlark.Tuple, len(args))
	for i, arg := range args {
		callArgs[i] = ToStarlark(arg)
	}
	return p.newTask(p.name+":"+name, p.body(fn, callArgs)), nil
}

func (p *Program) body(fn *starlark.Function, args starlark.Tuple) tasks.Body {
	return func(co *tasks.Co) (any, error) {
		thread := &starlark.Thread{
			Name: fn.Name(),
		}
		thread.SetLocal(localCo, co)
		thread.SetLocal(localProgram, p)
		ret, err := starlark.Call(thread, fn, args, nil)
		if err != nil {
			return nil, err
		}
		return FromStarlark(ret), nil
	}
}

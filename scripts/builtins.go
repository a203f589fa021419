package scripts

import (
	"fmt"
	"time"

	"go.starlark.net/starlark"

	"github.com/reusee/coop/clocks"
	"github.com/reusee/coop/tasks"
	"github.com/reusee/starlarkutil"
)

// thread-local keys; set by Program.body before the script function runs
const (
	localCo      = "coop.co"
	localProgram = "coop.program"
)

func predeclared(now clocks.Now) starlark.StringDict {
	return starlark.StringDict{
		"yield_": builtinYield,
		"sleep":  builtinSleep,
		"call":   builtinCall,
		"now": starlarkutil.MakeFunc("now", func() float64 {
			return float64(now().UnixNano()) / float64(time.Second)
		}),
	}
}

func threadCo(thread *starlark.Thread, b *starlark.Builtin) (*tasks.Co, error) {
	co, ok := thread.Local(localCo).(*tasks.Co)
	if !ok {
		return nil, fmt.Errorf("%s: not inside a task", b.Name())
	}
	return co, nil
}

var builtinYield = starlark.NewBuiltin("yield_",
	func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		co, err := threadCo(thread, b)
		if err != nil {
			return nil, err
		}
		var value starlark.Value
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &value); err != nil {
			return nil, err
		}
		co.Yield(FromStarlark(value))
		return starlark.None, nil
	},
)

var builtinSleep = starlark.NewBuiltin("sleep",
	func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		co, err := threadCo(thread, b)
		if err != nil {
			return nil, err
		}
		var value starlark.Value
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &value); err != nil {
			return nil, err
		}
		millis, ok := starlark.AsFloat(value)
		if !ok {
			return nil, fmt.Errorf("%s: want a number, got %s", b.Name(), value.Type())
		}
		co.SleepFor(time.Duration(millis * float64(time.Millisecond)))
		return starlark.None, nil
	},
)

// call runs a script function as a child task and awaits it, so the chain of
// script calls maps onto the chain of frames.
var builtinCall = starlark.NewBuiltin("call",
	func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		co, err := threadCo(thread, b)
		if err != nil {
			return nil, err
		}
		program, ok := thread.Local(localProgram).(*Program)
		if !ok {
			return nil, fmt.Errorf("%s: not inside a task", b.Name())
		}
		if len(args) < 1 {
			return nil, fmt.Errorf("%s: want a function", b.Name())
		}
		fn, ok := args[0].(*starlark.Function)
		if !ok {
			return nil, fmt.Errorf("%s: want a function, got %s", b.Name(), args[0].Type())
		}

		sub := program.newTask(
			program.name+":"+fn.Name(),
			program.body(fn, args[1:]),
		)
		defer sub.Release()
		value, err := co.Await(sub)
		if err != nil {
			return nil, err
		}
		return ToStarlark(value), nil
	},
)

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/reusee/dscope"

	"github.com/reusee/coop/clocks"
	"github.com/reusee/coop/cmds"
	"github.com/reusee/coop/coopconfigs"
	"github.com/reusee/coop/debugs"
	"github.com/reusee/coop/logs"
	"github.com/reusee/coop/loops"
	"github.com/reusee/coop/modes"
	"github.com/reusee/coop/scripts"
	"github.com/reusee/coop/tasks"
)

func main() {
	cmds.Execute(os.Args[1:])

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(run)
}

var (
	doTap     = cmds.Switch("-tap")
	delayFlag = cmds.Var[int]("-delay")
)

func run(
	compile scripts.Compile,
	newLoop loops.New,
	scriptPaths coopconfigs.ScriptPaths,
	entries coopconfigs.Entries,
	logger logs.Logger,
	mode modes.Mode,
	tap debugs.Tap,
	now clocks.Now,
) {

	if len(scriptPaths) == 0 {
		pt("no scripts; pass -script <path> or set scripts in coop.cue\n")
		cmds.PrintUsage()
		return
	}

	var programs []*scripts.Program
	for _, path := range scriptPaths {
		file, err := os.Open(path)
		ce(err)
		program, err := compile(filepath.Base(path), file)
		file.Close()
		ce(err)
		programs = append(programs, program)
	}

	loop := newLoop()
	type scheduled struct {
		name string
		task *tasks.Task
	}
	var entryTasks []scheduled
	for _, entry := range entries {
		var task *tasks.Task
		for _, program := range programs {
			t, err := program.Task(entry)
			if err != nil {
				continue
			}
			task = t
			break
		}
		if task == nil {
			ce(fmt.Errorf("no script defines entry %q", entry))
		}
		defer task.Release()
		if *delayFlag > 0 {
			loop.AddAt(
				now().Add(time.Duration(*delayFlag)*time.Millisecond),
				task.ID(),
			)
		} else {
			loop.Add(task.ID())
		}
		entryTasks = append(entryTasks, scheduled{
			name: entry,
			task: task,
		})
	}

	t0 := time.Now()
	loop.Run()

	failed := false
	results := make(map[string]any)
	for _, entry := range entryTasks {
		value, err := entry.task.Result()
		if err != nil {
			failed = true
			logger.Error("entry failed",
				"entry", entry.name,
				"error", err,
			)
			continue
		}
		results[entry.name] = value
		if value != nil {
			pt("%s: %v\n", entry.name, value)
		}
	}

	if *doTap {
		tap(context.Background(), "results", results)
	}
	if mode == modes.ModeDevelopment {
		pt("elapsed %v\n", time.Since(t0))
	}
	if failed {
		os.Exit(1)
	}
}

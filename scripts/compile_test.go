package scripts

import (
	"strings"
	"testing"
	"time"

	"github.com/reusee/coop/clocks"
	"github.com/reusee/dscope"
)

func TestFactorial(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		compile Compile,
	) {
		program, err := compile("factorial.star", strings.NewReader(`
def factorial(n):
    if n <= 1:
        return 1
    return n * call(factorial, n - 1)
`))
		if err != nil {
			t.Fatal(err)
		}
		task, err := program.Task("factorial", 5)
		if err != nil {
			t.Fatal(err)
		}
		defer task.Release()

		task.Resume()
		if !task.IsDone() {
			t.Fatal()
		}
		v, err := task.Result()
		if err != nil {
			t.Fatal(err)
		}
		if v.(int) != 120 {
			t.Fatalf("got %v", v)
		}
	})
}

func TestScriptGenerator(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		compile Compile,
	) {
		program, err := compile("gen.star", strings.NewReader(`
def gen():
    yield_(1)
    yield_(2)
    return 3
`))
		if err != nil {
			t.Fatal(err)
		}
		task, err := program.Task("gen")
		if err != nil {
			t.Fatal(err)
		}
		defer task.Release()

		task.Resume()
		if task.IsDone() || task.Value().(int) != 1 {
			t.Fatalf("got %v", task.Value())
		}
		task.Resume()
		if task.IsDone() || task.Value().(int) != 2 {
			t.Fatalf("got %v", task.Value())
		}
		task.Resume()
		if !task.IsDone() {
			t.Fatal()
		}
		v, err := task.Result()
		if err != nil {
			t.Fatal(err)
		}
		if v.(int) != 3 {
			t.Fatalf("got %v", v)
		}
	})
}

func TestScriptError(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		compile Compile,
	) {
		program, err := compile("boom.star", strings.NewReader(`
def inner():
    fail("boom")

def outer():
    return call(inner)
`))
		if err != nil {
			t.Fatal(err)
		}
		task, err := program.Task("outer")
		if err != nil {
			t.Fatal(err)
		}
		defer task.Release()

		task.Resume()
		if !task.IsDone() {
			t.Fatal()
		}
		_, err = task.Result()
		if err == nil || !strings.Contains(err.Error(), "boom") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestScriptSleep(t *testing.T) {
	clock := clocks.NewManual(time.Unix(0, 0))
	dscope.New(new(Module)).Fork(clocks.Fixed(clock)).Call(func(
		compile Compile,
	) {
		program, err := compile("sleeper.star", strings.NewReader(`
def sleeper():
    sleep(10)
    return now()
`))
		if err != nil {
			t.Fatal(err)
		}
		task, err := program.Task("sleeper")
		if err != nil {
			t.Fatal(err)
		}
		defer task.Release()

		interrupt := task.Resume()
		want := time.Unix(0, 0).Add(10 * time.Millisecond)
		if !interrupt.At.Equal(want) {
			t.Fatalf("got %v", interrupt.At)
		}
		clock.Advance(10 * time.Millisecond)
		task.Resume()
		v, err := task.Result()
		if err != nil {
			t.Fatal(err)
		}
		if v.(float64) != 0.010 {
			t.Fatalf("got %v", v)
		}
	})
}

func TestYieldOutsideTask(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		compile Compile,
	) {
		_, err := compile("top.star", strings.NewReader(`
yield_(1)
`))
		if err == nil || !strings.Contains(err.Error(), "not inside a task") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestTaskLookup(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		compile Compile,
	) {
		program, err := compile("lookup.star", strings.NewReader(`
answer = 42

def ok():
    return answer
`))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := program.Task("missing"); err == nil {
			t.Fatal()
		}
		if _, err := program.Task("answer"); err == nil {
			t.Fatal()
		}
		task, err := program.Task("ok")
		if err != nil {
			t.Fatal(err)
		}
		defer task.Release()
		task.Resume()
		v, err := task.Result()
		if err != nil {
			t.Fatal(err)
		}
		if v.(int) != 42 {
			t.Fatalf("got %v", v)
		}
	})
}

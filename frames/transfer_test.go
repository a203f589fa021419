package frames

import (
	"strings"
	"testing"
)

func TestStepSequence(t *testing.T) {
	var f *Frame
	f = NewFrame(func() {
		f.Yield(1)
		f.Park(Interrupt{Kind: KindYielded})
		f.Yield(2)
		f.Park(Interrupt{Kind: KindYielded})
		f.Return(3)
	})
	f.id = 1

	i := f.Step()
	if i.Kind != KindYielded || f.Value().(int) != 1 {
		t.Fatalf("got %v %v", i.Kind, f.Value())
	}
	if i.Frame != 1 {
		t.Fatal()
	}
	if f.Done() {
		t.Fatal()
	}

	i = f.Step()
	if i.Kind != KindYielded || f.Value().(int) != 2 {
		t.Fatalf("got %v %v", i.Kind, f.Value())
	}
	if f.Done() {
		t.Fatal()
	}

	i = f.Step()
	if i.Kind != KindReturned {
		t.Fatalf("got %v", i.Kind)
	}
	if !f.Done() {
		t.Fatal()
	}
	if v, err := f.Result(); err != nil || v.(int) != 3 {
		t.Fatalf("got %v %v", v, err)
	}

	expectPanic(t, ErrCompleted, func() {
		f.Step()
	})
}

func TestLazyStart(t *testing.T) {
	ran := false
	var f *Frame
	f = NewFrame(func() {
		ran = true
		f.Return(nil)
	})
	if ran {
		t.Fatal("body must not run before the first step")
	}
	f.Step()
	if !ran {
		t.Fatal()
	}
}

func TestBodyPanicCaptured(t *testing.T) {
	var f *Frame
	f = NewFrame(func() {
		panic("kaboom")
	})

	i := f.Step()
	if i.Kind != KindReturned {
		t.Fatalf("got %v", i.Kind)
	}
	if !f.Done() {
		t.Fatal()
	}
	_, err := f.Result()
	if err == nil {
		t.Fatal("should store the panic")
	}
	if !strings.Contains(err.Error(), "kaboom") {
		t.Fatalf("got %v", err)
	}
}

func TestReleaseUnwindsParkedBody(t *testing.T) {
	unwound := make(chan struct{})
	var f *Frame
	f = NewFrame(func() {
		defer close(unwound)
		f.Park(Interrupt{Kind: KindYielded})
		f.Return(nil)
	})

	f.Step()
	f.release()
	<-unwound

	expectPanic(t, ErrReleased, func() {
		f.Step()
	})
}

func TestReleaseBeforeStart(t *testing.T) {
	f := NewFrame(func() {})
	f.release()
	f.release()
}

package frames

import (
	"errors"
	"testing"
)

func TestCompletionContract(t *testing.T) {
	f := NewFrame(nil)

	if f.Done() {
		t.Fatal()
	}
	if v, err := f.Result(); v != nil || err != nil {
		t.Fatalf("got %v %v", v, err)
	}

	f.Yield(1)
	if f.Done() {
		t.Fatal()
	}
	if f.Value().(int) != 1 {
		t.Fatal()
	}

	f.Return(42)
	if !f.Done() {
		t.Fatal()
	}
	v, err := f.Result()
	if err != nil {
		t.Fatal(err)
	}
	if v.(int) != 42 {
		t.Fatalf("got %v", v)
	}

	expectPanic(t, ErrCompleted, func() {
		f.Return(43)
	})
	expectPanic(t, ErrCompleted, func() {
		f.Fail(errors.New("late"))
	})
	expectPanic(t, ErrCompleted, func() {
		f.Yield(44)
	})
}

func TestFail(t *testing.T) {
	f := NewFrame(nil)
	boom := errors.New("boom")
	f.Fail(boom)
	if !f.Done() {
		t.Fatal()
	}
	v, err := f.Result()
	if v != nil {
		t.Fatalf("got %v", v)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
}

func TestAttachOnce(t *testing.T) {
	f := NewFrame(nil)
	if f.Next() != None {
		t.Fatal()
	}
	f.Attach(7)
	if f.Next() != 7 {
		t.Fatal()
	}
	expectPanic(t, ErrContinuation, func() {
		f.Attach(8)
	})

	g := NewFrame(nil)
	g.Return(nil)
	expectPanic(t, ErrContinuation, func() {
		g.Attach(7)
	})
}

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		p := recover()
		if p == nil {
			t.Fatal("should panic")
		}
		err, ok := p.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("got %v", p)
		}
	}()
	fn()
}

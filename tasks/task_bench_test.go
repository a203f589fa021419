package tasks

import (
	"testing"

	"github.com/reusee/dscope"
)

func BenchmarkResumeYield(b *testing.B) {
	dscope.New(new(Module)).Call(func(
		newTask New,
	) {
		task := newTask("bench", func(co *Co) (any, error) {
			for i := 0; i < b.N; i++ {
				co.Yield(i)
			}
			return nil, nil
		})
		defer task.Release()

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			task.Resume()
		}
	})
}

func BenchmarkCallChain(b *testing.B) {
	dscope.New(new(Module)).Call(func(
		newTask New,
	) {
		const depth = 64

		var descend func(n int) Body
		descend = func(n int) Body {
			return func(co *Co) (any, error) {
				if n == 0 {
					return 0, nil
				}
				sub := newTask("sub", descend(n-1))
				defer sub.Release()
				return co.Await(sub)
			}
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			task := newTask("root", descend(depth))
			task.Resume()
			task.Release()
		}
	})
}

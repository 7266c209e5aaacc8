package three

import "sync"

// lazy runs load once, on first use, and hands its result to every
// caller. Callers arriving while load runs wait for it.
type lazy[T any] struct {
	once  sync.Once
	load  func() (T, error)
	value T
	err   error
}

func newLazy[T any](load func() (T, error)) *lazy[T] {
	return &lazy[T]{load: load}
}

func (l *lazy[T]) get() (T, error) {
	l.once.Do(func() {
		l.value, l.err = l.load()
	})
	return l.value, l.err
}

// File: metaopt/singleton.go
package metaopt

import (
	"sync"
	"sync/atomic"
)

// Singleton makes a constructor produce the same instance on every call.
// It is safe for concurrent use and independent of option resolution.
type Singleton[T any] struct {
	once sync.Once
	ctor func() T
	v    T
	done atomic.Bool
}

// NewSingleton wraps a constructor. The constructor runs at most once, on the
// first call to Instance.
func NewSingleton[T any](ctor func() T) *Singleton[T] {
	return &Singleton[T]{ctor: ctor}
}

// Instance returns the single instance, constructing it on first use.
func (s *Singleton[T]) Instance() T {
	s.once.Do(func() {
		s.v = s.ctor()
		s.done.Store(true)
	})
	return s.v
}

// Peek returns the instance only if it has already been constructed.
func (s *Singleton[T]) Peek() (T, bool) {
	if s.done.Load() {
		return s.v, true
	}
	var zero T
	return zero, false
}

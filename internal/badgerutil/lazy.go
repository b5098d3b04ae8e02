package badgerutil

import "sync"

// Lazy is a value cell whose default is computed on first read. Reads and
// writes are safe for concurrent use, and the default function is invoked at
// most once, and only if Get is called before any Set.
type Lazy[T any] struct {
	mtx  sync.Mutex
	init func() T
	set  bool
	val  T
}

// NewLazy returns a cell that will materialize init() on first read.
func NewLazy[T any](init func() T) *Lazy[T] {
	return &Lazy[T]{init: init}
}

// Get returns the current value, materializing the default if necessary.
func (l *Lazy[T]) Get() T {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	if !l.set {
		if l.init != nil {
			l.val = l.init()
		}
		l.set = true
	}
	return l.val
}

// Set the value to val. A subsequent Get returns val until the next Set.
func (l *Lazy[T]) Set(val T) { l.mtx.Lock(); defer l.mtx.Unlock(); l.val, l.set = val, true }

// IsSet returns true if the cell holds a value, either set explicitly or
// materialized from the default.
func (l *Lazy[T]) IsSet() bool { l.mtx.Lock(); defer l.mtx.Unlock(); return l.set }

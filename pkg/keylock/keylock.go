// Package keylock serializes work per key. Each key is guarded by a weighted
// semaphore of size one that is dropped once nobody holds or waits for it.
package keylock

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/semaphore"
)

type entry struct {
	sem  *semaphore.Weighted
	refs int
}

type Locker struct {
	mu    sync.Mutex
	locks map[string]*entry
}

func New() *Locker {
	return &Locker{
		locks: make(map[string]*entry),
	}
}

func (l *Locker) acquireEntry(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.locks[key]
	if !ok {
		e = &entry{sem: semaphore.NewWeighted(1)}
		l.locks[key] = e
	}
	e.refs++
	return e
}

func (l *Locker) releaseEntry(key string, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
}

// Lock takes every key in sorted order so that two callers locking the same
// pair can not deadlock. Duplicate keys are taken once. On ctx expiry the keys
// already held are released and ctx.Err() is returned.
func (l *Locker) Lock(ctx context.Context, keys ...string) (func(), error) {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	held := make([]*entry, 0, len(sorted))
	unlock := func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].sem.Release(1)
			l.releaseEntry(sorted[i], held[i])
		}
	}

	for _, key := range sorted {
		e := l.acquireEntry(key)
		if err := e.sem.Acquire(ctx, 1); err != nil {
			l.releaseEntry(key, e)
			unlock()
			return nil, err
		}
		held = append(held, e)
	}

	var once sync.Once
	return func() { once.Do(unlock) }, nil
}

// Len is the number of keys currently held or waited on.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

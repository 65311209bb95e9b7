package commands

import (
	"context"
	"sync"
)

// pathLocks hands out one exclusive lock per working copy directory.
// Entries are dropped once nobody holds or waits for them.
type pathLocks struct {
	mu    sync.Mutex
	locks map[string]*pathLock
}

type pathLock struct {
	sem  chan struct{}
	refs int
}

func newPathLocks() *pathLocks {
	return &pathLocks{locks: make(map[string]*pathLock)}
}

// acquire blocks until path is free or ctx is done. The returned func releases it.
func (l *pathLocks) acquire(ctx context.Context, path string) (func(), error) {
	l.mu.Lock()
	entry, ok := l.locks[path]
	if !ok {
		entry = &pathLock{sem: make(chan struct{}, 1)}
		l.locks[path] = entry
	}
	entry.refs++
	l.mu.Unlock()

	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		l.release(path, entry)
		return nil, ctx.Err()
	}

	return func() {
		<-entry.sem
		l.release(path, entry)
	}, nil
}

func (l *pathLocks) release(path string, entry *pathLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, path)
	}
}

// size reports how many directories are currently tracked.
func (l *pathLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

package service

import "sync"

// taskLocks serializes work per task id.
type taskLocks struct {
	mu    sync.Mutex
	locks map[uint64]*taskLock
}

type taskLock struct {
	sync.Mutex
	waiters int
}

// lock blocks until the lock for id is held and returns its release func.
func (l *taskLocks) lock(id uint64) (unlock func()) {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[uint64]*taskLock)
	}
	tl, ok := l.locks[id]
	if !ok {
		tl = &taskLock{}
		l.locks[id] = tl
	}
	tl.waiters++
	l.mu.Unlock()

	tl.Lock()
	return func() {
		tl.Unlock()
		l.mu.Lock()
		tl.waiters--
		if tl.waiters == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

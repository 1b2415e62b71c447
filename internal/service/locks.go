package service

import "sync"

// projectLocks serializes milestone read-modify-write sequences per project.
// Two concurrent mutations on the same project would otherwise both read the
// sibling set before either writes and the last redistribution would silently
// overwrite the first.
type projectLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newProjectLocks() *projectLocks {
	return &projectLocks{locks: make(map[int64]*sync.Mutex)}
}

func (p *projectLocks) lock(projectID int64) func() {
	p.mu.Lock()
	l, ok := p.locks[projectID]
	if !ok {
		l = &sync.Mutex{}
		p.locks[projectID] = l
	}
	p.mu.Unlock()
	l.Lock()
	return l.Unlock
}

package server

import (
	"sync"

	"golang.org/x/sync/semaphore"
)

// jobLock allows at most one run per job name at a time
type jobLock struct {
	mu   sync.Mutex
	sems map[string]*semaphore.Weighted
}

func newJobLock() *jobLock {
	return &jobLock{sems: make(map[string]*semaphore.Weighted)}
}

func (x *jobLock) get(name string) *semaphore.Weighted {
	x.mu.Lock()
	defer x.mu.Unlock()

	sem, ok := x.sems[name]
	if !ok {
		sem = semaphore.NewWeighted(1)
		x.sems[name] = sem
	}
	return sem
}

// tryAcquire returns false if the job is already running
func (x *jobLock) tryAcquire(name string) bool {
	return x.get(name).TryAcquire(1)
}

func (x *jobLock) release(name string) {
	x.get(name).Release(1)
}

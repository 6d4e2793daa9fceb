// ABOUTME: Debounced slot reclamation after viewport shrink
// ABOUTME: Each new shrink restarts the timer; a stale firing is ignored by generation

package vlist

import (
	"sync"
	"time"
)

type reclaimer struct {
	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// schedule runs fn(gen) after delay, replacing any pending run. The
// callback must check the generation with current before acting.
func (r *reclaimer) schedule(delay time.Duration, fn func(gen uint64)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
	}
	r.gen++
	gen := r.gen
	r.timer = time.AfterFunc(delay, func() { fn(gen) })
}

// cancel drops any pending run.
func (r *reclaimer) cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.gen++
}

func (r *reclaimer) current(gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return gen == r.gen
}

func (r *reclaimer) pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timer != nil
}

func (r *reclaimer) done(gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen == r.gen {
		r.timer = nil
	}
}

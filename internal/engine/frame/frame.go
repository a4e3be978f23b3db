// Package frame schedules per-frame callbacks and marshals background work
// back onto the main (GL) goroutine.
package frame

import (
	"sync"
	"time"
)

// Callback runs once on the frame it was scheduled for. now is the time
// since the scheduler was created.
type Callback func(now time.Duration)

// ID identifies a pending animation frame request.
type ID uint64

type request struct {
	id ID
	cb Callback
}

// Scheduler is a requestAnimationFrame-style queue.
//
// RequestAnimationFrame, Cancel, Tick and RunTasks must be called from the
// main goroutine. Post is the only method safe to call from other goroutines.
type Scheduler struct {
	start   time.Time
	nextID  ID
	pending []request
	running []request

	mu    sync.Mutex
	tasks []func()

	frames uint64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{start: time.Now()}
}

// RequestAnimationFrame queues cb for the next Tick.
// Callbacks requested while a Tick is running wait for the following Tick.
func (s *Scheduler) RequestAnimationFrame(cb Callback) ID {
	s.nextID++
	s.pending = append(s.pending, request{id: s.nextID, cb: cb})
	return s.nextID
}

// Cancel removes a pending request. It reports whether one was removed.
func (s *Scheduler) Cancel(id ID) bool {
	for i, r := range s.pending {
		if r.id == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Pending returns the number of callbacks waiting for the next Tick.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Frames returns the number of completed Ticks.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Tick runs every callback that was pending when it was called, in request
// order, and returns how many ran.
func (s *Scheduler) Tick() int {
	return s.TickAt(time.Since(s.start))
}

// TickAt is Tick with an explicit timestamp.
func (s *Scheduler) TickAt(now time.Duration) int {
	// Swap queues so callbacks can re-request without running twice.
	s.running, s.pending = s.pending, s.running[:0]
	for _, r := range s.running {
		r.cb(now)
	}
	n := len(s.running)
	clear(s.running)
	s.running = s.running[:0]
	s.frames++
	return n
}

// Post queues task to run on the main goroutine during the next RunTasks.
// Safe for concurrent use.
func (s *Scheduler) Post(task func()) {
	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()
}

// RunTasks runs all posted tasks in the order they were posted and returns
// how many ran. Tasks posted while running wait for the next call.
func (s *Scheduler) RunTasks() int {
	s.mu.Lock()
	tasks := s.tasks
	s.tasks = nil
	s.mu.Unlock()

	for _, task := range tasks {
		task()
	}
	return len(tasks)
}

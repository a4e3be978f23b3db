package frame

import (
	"sync"
	"testing"
	"time"
)

func TestTickRunsPendingOnce(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.RequestAnimationFrame(func(time.Duration) { calls++ })

	if n := s.Tick(); n != 1 {
		t.Errorf("Tick ran %d callbacks, want 1", n)
	}
	if n := s.Tick(); n != 0 {
		t.Errorf("second Tick ran %d callbacks, want 0", n)
	}
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
}

func TestRequestDuringTickDefersToNextFrame(t *testing.T) {
	s := NewScheduler()
	var frames []time.Duration

	var loop Callback
	loop = func(now time.Duration) {
		s.RequestAnimationFrame(loop)
		frames = append(frames, now)
	}
	s.RequestAnimationFrame(loop)

	for i := 0; i < 3; i++ {
		if n := s.TickAt(time.Duration(i) * time.Millisecond); n != 1 {
			t.Fatalf("tick %d ran %d callbacks, want 1", i, n)
		}
	}

	if len(frames) != 3 {
		t.Fatalf("self-rescheduling callback ran %d times, want 3", len(frames))
	}
	if frames[2] != 2*time.Millisecond {
		t.Errorf("third frame timestamp = %v, want 2ms", frames[2])
	}
	if s.Pending() != 1 {
		t.Errorf("expected the loop to stay scheduled, pending = %d", s.Pending())
	}
	if s.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", s.Frames())
	}
}

func TestTickPreservesRequestOrder(t *testing.T) {
	s := NewScheduler()
	var order []int
	for i := 0; i < 4; i++ {
		i := i
		s.RequestAnimationFrame(func(time.Duration) { order = append(order, i) })
	}
	s.Tick()

	for i, v := range order {
		if v != i {
			t.Fatalf("callbacks ran out of order: %v", order)
		}
	}
}

func TestCancel(t *testing.T) {
	s := NewScheduler()
	ran := false
	id := s.RequestAnimationFrame(func(time.Duration) { ran = true })

	if !s.Cancel(id) {
		t.Fatal("Cancel should report removing a pending request")
	}
	if s.Cancel(id) {
		t.Error("second Cancel should report nothing removed")
	}
	s.Tick()
	if ran {
		t.Error("cancelled callback should not run")
	}
}

func TestPostFromGoroutines(t *testing.T) {
	s := NewScheduler()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Post(func() {})
		}()
	}
	wg.Wait()

	if n := s.RunTasks(); n != 8 {
		t.Errorf("RunTasks ran %d tasks, want 8", n)
	}
	if n := s.RunTasks(); n != 0 {
		t.Errorf("RunTasks should drain the queue, ran %d", n)
	}
}

func TestPostDuringRunTasksDefers(t *testing.T) {
	s := NewScheduler()
	second := false
	s.Post(func() {
		s.Post(func() { second = true })
	})

	s.RunTasks()
	if second {
		t.Fatal("task posted during RunTasks should wait for the next call")
	}
	s.RunTasks()
	if !second {
		t.Error("deferred task never ran")
	}
}

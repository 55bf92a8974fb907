package engine

import (
	"container/heap"
	"time"
)

// scheduledTask is a deferred callback owned by one round generation
type scheduledTask struct {
	at         time.Time
	seq        uint64 // insertion order, breaks ties between equal deadlines
	generation uint64
	fn         func()
}

// taskHeap orders tasks by deadline, then by insertion
type taskHeap []scheduledTask

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}
func (h taskHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *taskHeap) Push(x interface{}) { *h = append(*h, x.(scheduledTask)) }
func (h *taskHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Scheduler runs deferred callbacks on the caller's goroutine.
// Nothing fires on its own, the owner calls RunDue once per frame.
type Scheduler struct {
	clock   Clock
	queue   taskHeap
	nextSeq uint64
}

// NewScheduler creates an empty scheduler reading time from clock
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// After queues fn to run d from now on behalf of generation
func (s *Scheduler) After(d time.Duration, generation uint64, fn func()) {
	s.nextSeq++
	heap.Push(&s.queue, scheduledTask{
		at:         s.clock.Now().Add(d),
		seq:        s.nextSeq,
		generation: generation,
		fn:         fn,
	})
}

// RunDue executes every task whose deadline has passed, in deadline order.
// Tasks queued by a running task are picked up in the same pass if already due.
func (s *Scheduler) RunDue() int {
	now := s.clock.Now()
	ran := 0
	for s.queue.Len() > 0 && !now.Before(s.queue[0].at) {
		task := heap.Pop(&s.queue).(scheduledTask)
		task.fn()
		ran++
	}
	return ran
}

// CancelBefore drops every task owned by a generation older than generation
func (s *Scheduler) CancelBefore(generation uint64) int {
	kept := s.queue[:0]
	dropped := 0
	for _, task := range s.queue {
		if task.generation < generation {
			dropped++
			continue
		}
		kept = append(kept, task)
	}
	// Clear the tail so dropped closures can be collected
	for i := len(kept); i < len(s.queue); i++ {
		s.queue[i] = scheduledTask{}
	}
	s.queue = kept
	heap.Init(&s.queue)
	return dropped
}

// Pending returns the number of queued tasks
func (s *Scheduler) Pending() int {
	return s.queue.Len()
}

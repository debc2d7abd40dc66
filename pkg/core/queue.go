package core

// taskQueue is the session's stand-in for the platform microtask queue: a
// FIFO of deferred callbacks drained by Flush. Tasks enqueued while a flush
// is draining run in the same drain, which gives the two-phase ordering the
// scheduler needs: a render pass enqueues the effect flush as a separate
// task, so effects always observe the committed widget tree, and a state
// change made by an effect enqueues a further pass that runs after it.
type taskQueue struct {
	tasks    []func()
	flushing bool

	// onWake is invoked when the first task lands in an idle queue, so a
	// host event loop can schedule a Flush.
	onWake func()
}

func (q *taskQueue) enqueue(fn func()) {
	q.tasks = append(q.tasks, fn)
	if len(q.tasks) == 1 && !q.flushing && q.onWake != nil {
		q.onWake()
	}
}

// flush drains the queue in FIFO order. Nested calls are no-ops; a panic in
// a task stops the drain and leaves the remaining tasks queued.
func (q *taskQueue) flush() {
	if q.flushing {
		return
	}
	q.flushing = true
	defer func() { q.flushing = false }()

	for len(q.tasks) > 0 {
		task := q.tasks[0]
		q.tasks = q.tasks[1:]
		task()
	}
}

func (q *taskQueue) pending() int {
	return len(q.tasks)
}

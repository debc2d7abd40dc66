package core

import "github.com/go-fern/fern/pkg/dom"

// effectRef addresses one queued effect by component path and slot index.
// The indirection is deliberate: if the owning occurrence is unmounted
// before the deferred flush runs, the lookup fails and the entry is
// silently dropped.
type effectRef struct {
	path string
	slot int
}

// Session owns one live tree: the root instance, the hook store keyed by
// component path, the effect queue for the current pass, and the task queue
// that stands in for the platform's microtask scheduling.
//
// Fields split into two lifetimes: the store's slot table, the root
// instance, and the container persist across passes; cursors, the visited
// set, and the effect queue are reset or drained every pass.
//
// A Session is single-threaded: all mutation must happen from the same
// goroutine that calls Flush.
type Session struct {
	doc       *dom.Document
	container *dom.Element
	store     *hookStore
	queue     *taskQueue
	ctx       *Ctx

	rootNode *VNode
	rootInst *Instance

	effects      []effectRef
	renderQueued bool
}

// Mount renders node into container and returns the session that keeps the
// live tree synchronized. The initial pass runs synchronously and its
// queued effects are flushed before Mount returns.
func Mount(node *VNode, container *dom.Element) *Session {
	s := &Session{
		doc:       container.Document(),
		container: container,
		store:     newHookStore(),
		queue:     &taskQueue{},
	}
	s.ctx = &Ctx{session: s}
	s.rootNode = node
	s.renderPass()
	s.queue.flush()
	return s
}

// Render replaces the root node and reconciles synchronously, then flushes
// the deferred work the pass produced (effects, and any passes those
// effects scheduled).
func (s *Session) Render(node *VNode) {
	s.rootNode = node
	s.renderPass()
	s.queue.flush()
}

// Flush drains all deferred work: scheduled render passes and effect
// batches, in the order they were enqueued. Hosts embedding a session in an
// event loop call Flush once per wake-up.
func (s *Session) Flush() {
	s.queue.flush()
}

// SetWake registers a callback invoked when deferred work lands in an idle
// session, so a host loop knows to call Flush.
func (s *Session) SetWake(fn func()) {
	s.queue.onWake = fn
}

// Dispatch defers fn onto the session's task queue. It runs during the next
// Flush, after any already-queued work.
func (s *Session) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	s.queue.enqueue(fn)
}

// Pending reports whether the session has deferred work queued.
func (s *Session) Pending() bool {
	return s.queue.pending() > 0
}

// Container returns the element the session renders into.
func (s *Session) Container() *dom.Element {
	return s.container
}

// Root returns the live root instance. It is valid between passes; holding
// references into its subtree across a pass is not.
func (s *Session) Root() *Instance {
	return s.rootInst
}

// Unmount tears the tree down: widgets are detached, every hook path is
// garbage-collected (running effect cleanups), and the session is left
// empty.
func (s *Session) Unmount() {
	s.store.beginPass()
	if s.rootInst != nil {
		s.rootInst = s.reconcile(s.container, s.rootInst, nil, "", nil)
	}
	s.rootNode = nil
	s.store.cleanupUnused()
	s.effects = nil
	s.queue.flush()
}

// enqueueRender coalesces state-change triggers: any number of synchronous
// calls result in exactly one deferred render pass.
func (s *Session) enqueueRender() {
	if s.renderQueued {
		return
	}
	s.renderQueued = true
	s.queue.enqueue(s.renderPass)
}

// renderPass runs one synchronous reconciliation: reset per-pass hook
// state, reconcile the root, garbage-collect unvisited hook paths, then
// hand the pass's effect queue to a second deferred task so effects observe
// the committed widget tree.
func (s *Session) renderPass() {
	s.renderQueued = false
	s.store.beginPass()

	path := ""
	if s.rootNode != nil {
		path = childPath("", s.rootNode.Key, 0, s.rootNode, []*VNode{s.rootNode})
	} else if s.rootInst != nil {
		path = s.rootInst.Path
	}
	s.rootInst = s.reconcile(s.container, s.rootInst, s.rootNode, path, nil)

	s.store.cleanupUnused()

	if len(s.effects) > 0 {
		// Snapshot and detach so a later pass cannot double-process
		// entries this flush already owns.
		pending := s.effects
		s.effects = nil
		s.queue.enqueue(func() { s.runEffects(pending) })
	}
}

func (s *Session) queueEffect(path string, index int) {
	s.effects = append(s.effects, effectRef{path: path, slot: index})
}

// runEffects executes one pass's effect batch in enqueue order: run the
// slot's existing cleanup, then the effect, storing its returned cleanup.
// Entries whose slot no longer exists are skipped; the component was
// unmounted between the pass and this flush.
func (s *Session) runEffects(pending []effectRef) {
	for _, ref := range pending {
		sl, ok := s.store.slotAt(ref.path, ref.slot)
		if !ok || sl.kind != slotEffect {
			continue
		}
		if sl.cleanup != nil {
			sl.cleanup()
			sl.cleanup = nil
		}
		if sl.effect != nil {
			sl.cleanup = sl.effect()
		}
	}
}

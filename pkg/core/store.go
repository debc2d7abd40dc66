package core

import (
	"fmt"

	"github.com/go-fern/fern/pkg/errors"
)

var errHookOutsideRender = fmt.Errorf("hook called outside a component render")

// slotKind distinguishes the two persisted hook slot shapes.
type slotKind uint8

const (
	slotValue slotKind = iota
	slotEffect
)

func (k slotKind) String() string {
	if k == slotEffect {
		return "effect"
	}
	return "value"
}

// slot is one persisted piece of per-component state, addressed by
// (path, call order).
type slot struct {
	kind slotKind
	// has marks the slot as initialized; distinguishes a stored nil from
	// a never-written slot.
	has bool

	// value slots
	value any
	// deps is shared by effect and memoized value slots.
	deps []any

	// effect slots
	effect  func() func()
	cleanup func()
}

// hookStore maps component paths to their ordered hook slots. Slot contents
// persist across passes; cursors, the visited set, and the call stack are
// per-pass bookkeeping.
type hookStore struct {
	slots   map[string][]*slot
	cursor  map[string]int
	visited map[string]bool
	stack   []string
}

func newHookStore() *hookStore {
	return &hookStore{
		slots:   make(map[string][]*slot),
		cursor:  make(map[string]int),
		visited: make(map[string]bool),
	}
}

// beginPass resets per-pass state. Persisted slot contents are kept.
func (s *hookStore) beginPass() {
	s.cursor = make(map[string]int)
	s.visited = make(map[string]bool)
	s.stack = s.stack[:0]
}

// push enters a component occurrence: marks it visited, resets its cursor,
// and makes it the current hook target.
func (s *hookStore) push(path string) {
	s.stack = append(s.stack, path)
	s.visited[path] = true
	s.cursor[path] = 0
}

// pop leaves the current component occurrence.
func (s *hookStore) pop() {
	s.stack = s.stack[:len(s.stack)-1]
}

// current returns the path of the component being invoked. Calling a hook
// outside a component render is a protocol violation.
func (s *hookStore) current() string {
	if len(s.stack) == 0 {
		panic(&errors.FernError{
			Op:   "core.hook",
			Kind: errors.KindHook,
			Err:  errHookOutsideRender,
		})
	}
	return s.stack[len(s.stack)-1]
}

// next returns the slot at the current cursor for the executing component,
// creating it on first render, and advances the cursor by one. A kind
// mismatch against the persisted slot fails fast.
func (s *hookStore) next(kind slotKind) (*slot, int) {
	path := s.current()
	i := s.cursor[path]
	s.cursor[path] = i + 1

	list := s.slots[path]
	if i < len(list) {
		sl := list[i]
		if sl.kind != kind {
			panic(&errors.HookError{
				Path: path,
				Slot: i,
				Got:  kind.String(),
				Want: sl.kind.String(),
			})
		}
		return sl, i
	}

	sl := &slot{kind: kind}
	s.slots[path] = append(list, sl)
	return sl, i
}

// slotAt looks up a slot without touching cursors. It reports false when the
// path or index no longer exists, which deferred effect execution treats as
// a benign stale reference.
func (s *hookStore) slotAt(path string, index int) (*slot, bool) {
	list, ok := s.slots[path]
	if !ok || index < 0 || index >= len(list) {
		return nil, false
	}
	return list[index], true
}

// cleanupUnused garbage-collects every path that was not visited during the
// pass: effect cleanups run synchronously, then the path's slots and cursor
// are deleted. Unvisited means the reconciler never reached the occurrence,
// i.e. it was logically removed from the tree.
func (s *hookStore) cleanupUnused() {
	for path, list := range s.slots {
		if s.visited[path] {
			continue
		}
		for _, sl := range list {
			if sl.kind == slotEffect && sl.cleanup != nil {
				sl.cleanup()
				sl.cleanup = nil
			}
		}
		delete(s.slots, path)
		delete(s.cursor, path)
	}
}

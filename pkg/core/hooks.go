package core

import "github.com/go-fern/fern/pkg/equality"

// Ctx is the handle a component receives for the duration of one
// invocation. It binds hook calls to the session's store and scheduler, so
// multiple independent trees can coexist in one process without shared
// globals.
//
// Ctx must not be retained or used outside the synchronous body of the
// component it was passed to; the setters and dispatchers returned by hooks
// are the values that stay valid across renders.
type Ctx struct {
	session *Session
}

// Session returns the render session this context belongs to.
func (c *Ctx) Session() *Session { return c.session }

// Path returns the identity path of the component occurrence currently
// executing. Only valid during a component's synchronous render.
func (c *Ctx) Path() string { return c.session.store.current() }

// UseState persists a value across renders of the calling component
// occurrence. It returns the current value and a setter. The setter takes an
// update function so that several synchronous calls compose: each applies to
// the latest stored value, and all of them together schedule exactly one
// re-render.
//
//	count, setCount := core.UseState(ctx, 0)
//	// ...
//	setCount(func(c int) int { return c + 1 })
func UseState[T any](c *Ctx, initial T) (T, func(func(T) T)) {
	sess := c.session
	sl, _ := sess.store.next(slotValue)
	if !sl.has {
		sl.value = initial
		sl.has = true
	}
	value := sl.value.(T)
	setter := func(update func(T) T) {
		cur, _ := sl.value.(T)
		sl.value = update(cur)
		sess.enqueueRender()
	}
	return value, setter
}

// UseReducer persists state driven by dispatched actions.
func UseReducer[S, A any](c *Ctx, reducer func(S, A) S, initial S) (S, func(A)) {
	sess := c.session
	sl, _ := sess.store.next(slotValue)
	if !sl.has {
		sl.value = initial
		sl.has = true
	}
	state := sl.value.(S)
	dispatch := func(action A) {
		cur, _ := sl.value.(S)
		sl.value = reducer(cur, action)
		sess.enqueueRender()
	}
	return state, dispatch
}

// UseEffect schedules effect to run after the pass's widget mutations are
// committed. The returned function, if non-nil, is stored as the cleanup
// and runs before the next execution of the effect and when the component
// unmounts.
//
// deps gates re-execution: the effect is re-enqueued only when deps differs
// (shallowly) from the previous render. nil deps re-runs every pass; an
// empty non-nil deps slice runs once on mount.
func UseEffect(c *Ctx, effect func() func(), deps []any) {
	sess := c.session
	sl, index := sess.store.next(slotEffect)
	if sl.has && deps != nil && equality.Shallow(deps, sl.deps) {
		return
	}
	sl.has = true
	sl.deps = deps
	sl.effect = effect
	sess.queueEffect(sess.store.current(), index)
}

// UseMemo recomputes a value only when deps changes, with the same gating
// rules as UseEffect.
func UseMemo[T any](c *Ctx, compute func() T, deps []any) T {
	sl, _ := c.session.store.next(slotValue)
	if sl.has && deps != nil && equality.Shallow(deps, sl.deps) {
		return sl.value.(T)
	}
	value := compute()
	sl.value = value
	sl.deps = deps
	sl.has = true
	return value
}

// UseCallback memoizes a function value with the same gating rules as
// UseMemo.
func UseCallback[F any](c *Ctx, fn F, deps []any) F {
	return UseMemo(c, func() F { return fn }, deps)
}

// Ref is a mutable cell whose identity is stable across renders. Writing
// Current does not trigger a re-render.
type Ref[T any] struct {
	Current T
}

// UseRef returns the same *Ref on every render of the calling occurrence.
func UseRef[T any](c *Ctx, initial T) *Ref[T] {
	sl, _ := c.session.store.next(slotValue)
	if !sl.has {
		sl.value = &Ref[T]{Current: initial}
		sl.has = true
	}
	return sl.value.(*Ref[T])
}

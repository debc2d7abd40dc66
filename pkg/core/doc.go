// Package core implements fern's reconciliation engine and hooks runtime.
//
// A declarative tree of VNodes is mirrored into a live tree of platform
// widgets (package dom) through a Session. Each pass diffs the previous
// instance tree against the new node tree position by position, mounting,
// updating, replacing, or unmounting as needed.
//
// # Identity
//
// Every tree position has a path string (explicit key, component occurrence
// counter, or sibling index) that persists across passes. The path is the
// sole key into per-component hook state: a component occurrence that
// resolves to the same path on consecutive passes keeps its UseState values
// and effect slots. Unkeyed reordering therefore breaks identity
// continuity; give siblings keys when their order can change.
//
// # Components and hooks
//
//	func Counter(ctx *core.Ctx, props core.Props) *core.VNode {
//	    count, setCount := core.UseState(ctx, 0)
//	    return core.H("button", core.Props{
//	        "onClick": func() { setCount(func(c int) int { return c + 1 }) },
//	    }, count)
//	}
//
// Hooks must be called unconditionally and in the same order on every
// render of a component; the store detects kind mismatches and fails fast
// with an errors.HookError.
//
// # Scheduling
//
// State setters coalesce: any number of synchronous updates produce one
// deferred reconciliation pass. Effects queued during a pass run as a
// second deferred batch after the pass's widget mutations are committed.
// Both are drained by (*Session).Flush; hosts embedding fern in an event
// loop use (*Session).SetWake to learn when a flush is due.
//
// Sessions are single-threaded. All interaction with a session and its
// document must happen on one goroutine.
package core

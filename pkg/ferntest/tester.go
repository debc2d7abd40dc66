// Package ferntest provides an isolated harness for testing fern trees
// without a host event loop. It drives the same reconciliation and effect
// phases a real embedding would, against a private in-memory document.
//
//	func TestCounter(t *testing.T) {
//	    tester := ferntest.NewTester(t)
//	    tester.Render(core.H(core.Component(Counter), nil))
//	    tester.Click(tester.MustFind(ferntest.ByTag("button")))
//	    tester.Flush()
//	    // assert on tester.HTML() or tester.Text()
//	}
package ferntest

import (
	"testing"

	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/dom"
)

// Tester hosts one session rendering into a private document.
type Tester struct {
	t         *testing.T
	doc       *dom.Document
	container *dom.Element
	session   *core.Session
}

// NewTester creates a tester with a fresh document and container. The
// session is torn down via t.Cleanup, running effect cleanups.
func NewTester(t *testing.T) *Tester {
	doc := dom.NewDocument()
	tester := &Tester{
		t:         t,
		doc:       doc,
		container: doc.CreateElement("root"),
	}
	t.Cleanup(tester.Close)
	return tester
}

// Render mounts node on first call and re-renders the session's root on
// subsequent calls. Effects for the pass run before Render returns.
func (tr *Tester) Render(node *core.VNode) {
	if tr.session == nil {
		tr.session = core.Mount(node, tr.container)
		return
	}
	tr.session.Render(node)
}

// Session returns the underlying session, or nil before the first Render.
func (tr *Tester) Session() *core.Session {
	return tr.session
}

// Container returns the element the tree renders into.
func (tr *Tester) Container() *dom.Element {
	return tr.container
}

// Flush drains deferred work: passes scheduled by state setters and their
// effect batches.
func (tr *Tester) Flush() {
	if tr.session != nil {
		tr.session.Flush()
	}
}

// Pending reports whether deferred work is queued.
func (tr *Tester) Pending() bool {
	return tr.session != nil && tr.session.Pending()
}

// HTML serializes the rendered tree (the container's children).
func (tr *Tester) HTML() string {
	return dom.RenderInnerHTML(tr.container)
}

// Text returns the concatenated text content of the rendered tree.
func (tr *Tester) Text() string {
	return dom.TextContent(tr.container)
}

// Mutations returns the document's total mutation count. Capture it before
// an operation and compare after to assert how much widget churn the
// operation caused.
func (tr *Tester) Mutations() int {
	return tr.doc.MutationCount()
}

// FireEvent dispatches an event of the given type on el without flushing,
// so tests can assert that multiple synchronous events coalesce into one
// pass.
func (tr *Tester) FireEvent(el *dom.Element, eventType string) {
	if el == nil {
		tr.t.Fatal("FireEvent: nil element")
	}
	el.DispatchEvent(dom.Event{Type: eventType})
}

// Click fires a "click" event on el.
func (tr *Tester) Click(el *dom.Element) {
	tr.FireEvent(el, "click")
}

// Finder matches elements in the rendered tree.
type Finder func(*dom.Element) bool

// ByTag matches elements with the given tag name.
func ByTag(tag string) Finder {
	return func(e *dom.Element) bool { return e.Tag() == tag }
}

// ByAttr matches elements whose named attribute has the given value.
func ByAttr(name, value string) Finder {
	return func(e *dom.Element) bool {
		v, ok := e.Attr(name)
		return ok && v == value
	}
}

// ByClass matches elements with the given class string.
func ByClass(class string) Finder {
	return func(e *dom.Element) bool { return e.ClassName() == class }
}

// ByText matches elements whose text content equals the given string.
func ByText(text string) Finder {
	return func(e *dom.Element) bool { return dom.TextContent(e) == text }
}

// Find returns the first element in document order matching the finder, or
// nil when none matches.
func (tr *Tester) Find(match Finder) *dom.Element {
	return findFirst(tr.container, match)
}

// MustFind is Find but fails the test when nothing matches.
func (tr *Tester) MustFind(match Finder) *dom.Element {
	el := tr.Find(match)
	if el == nil {
		tr.t.Helper()
		tr.t.Fatalf("MustFind: no element matched (tree: %s)", tr.HTML())
	}
	return el
}

// FindAll returns every matching element in document order.
func (tr *Tester) FindAll(match Finder) []*dom.Element {
	var out []*dom.Element
	collect(tr.container, match, &out)
	return out
}

// Close unmounts the session, running effect cleanups. Registered
// automatically with t.Cleanup.
func (tr *Tester) Close() {
	if tr.session != nil {
		tr.session.Unmount()
		tr.session = nil
	}
}

func findFirst(root *dom.Element, match Finder) *dom.Element {
	for _, child := range root.Children() {
		el, ok := child.(*dom.Element)
		if !ok {
			continue
		}
		if match(el) {
			return el
		}
		if found := findFirst(el, match); found != nil {
			return found
		}
	}
	return nil
}

func collect(root *dom.Element, match Finder, out *[]*dom.Element) {
	for _, child := range root.Children() {
		el, ok := child.(*dom.Element)
		if !ok {
			continue
		}
		if match(el) {
			*out = append(*out, el)
		}
		collect(el, match, out)
	}
}

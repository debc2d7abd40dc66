// Package dom implements the in-memory widget tree that fern renders into.
//
// A Document owns every node it creates and counts structural mutations,
// which makes reconciliation behavior observable in tests: an update pass
// that changes nothing must leave the mutation count untouched.
//
// The API mirrors the small slice of the web DOM the reconciler needs:
// element and text creation, ordered insertion, idempotent removal,
// attributes, inline style, and event listeners.
package dom

// Document owns a tree of nodes and records how many times the tree or any
// node in it was mutated.
type Document struct {
	mutations int
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// MutationCount returns the number of mutations applied to nodes owned by
// this document since it was created.
func (d *Document) MutationCount() int {
	return d.mutations
}

func (d *Document) mutated() {
	d.mutations++
}

// CreateElement creates a detached element with the given tag.
func (d *Document) CreateElement(tag string) *Element {
	d.mutated()
	return &Element{
		doc: d,
		tag: tag,
	}
}

// CreateText creates a detached text node.
func (d *Document) CreateText(value string) *Text {
	d.mutated()
	return &Text{
		doc:   d,
		value: value,
	}
}

// Node is a member of a document tree: an *Element or a *Text.
type Node interface {
	// Parent returns the element this node is currently attached to,
	// or nil if detached.
	Parent() *Element
	// Document returns the owning document.
	Document() *Document

	setParent(*Element)
}

// Event is delivered to listeners registered on an element.
type Event struct {
	// Type is the event name, e.g. "click".
	Type string
	// Target is the element the event was dispatched on.
	Target *Element
	// Data carries optional event payload values.
	Data map[string]any
}

// Listener handles a dispatched event.
type Listener func(Event)

// Element is a host widget: a tagged node with attributes, style, listeners,
// and ordered children.
type Element struct {
	doc      *Document
	tag      string
	parent   *Element
	children []Node

	attrs map[string]string
	style map[string]string
	class string

	// propListeners holds the single listener bound per event name by the
	// property patcher; AddEventListener subscriptions are kept separately.
	propListeners map[string]Listener
	listeners     map[string][]*listenerEntry
}

type listenerEntry struct {
	fn Listener
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// Parent returns the element's current parent, or nil if detached.
func (e *Element) Parent() *Element { return e.parent }

// Document returns the owning document.
func (e *Element) Document() *Document { return e.doc }

func (e *Element) setParent(p *Element) { e.parent = p }

// Children returns the element's children in order. The returned slice is a
// copy; mutating it does not affect the tree.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// AppendChild attaches child at the end of this element's children,
// detaching it from its previous parent first.
func (e *Element) AppendChild(child Node) {
	if child == nil {
		return
	}
	if p := child.Parent(); p != nil {
		p.RemoveChild(child)
	}
	e.children = append(e.children, child)
	child.setParent(e)
	e.doc.mutated()
}

// InsertBefore attaches child immediately before anchor. A nil anchor, or an
// anchor that is not a child of this element, appends instead.
func (e *Element) InsertBefore(child, anchor Node) {
	if child == nil {
		return
	}
	if anchor == nil || child == anchor {
		e.AppendChild(child)
		return
	}
	idx := e.indexOf(anchor)
	if idx < 0 {
		e.AppendChild(child)
		return
	}
	if p := child.Parent(); p != nil {
		p.RemoveChild(child)
		// Removal may have shifted the anchor position.
		idx = e.indexOf(anchor)
		if idx < 0 {
			e.AppendChild(child)
			return
		}
	}
	e.children = append(e.children, nil)
	copy(e.children[idx+1:], e.children[idx:])
	e.children[idx] = child
	child.setParent(e)
	e.doc.mutated()
}

// RemoveChild detaches child from this element. Removing a node that is not
// currently a child is a no-op.
func (e *Element) RemoveChild(child Node) {
	idx := e.indexOf(child)
	if idx < 0 {
		return
	}
	e.children = append(e.children[:idx], e.children[idx+1:]...)
	child.setParent(nil)
	e.doc.mutated()
}

func (e *Element) indexOf(n Node) int {
	for i, c := range e.children {
		if c == n {
			return i
		}
	}
	return -1
}

// Attr returns the named attribute value and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttribute sets an attribute. Setting an attribute to its current value
// is a no-op.
func (e *Element) SetAttribute(name, value string) {
	if cur, ok := e.attrs[name]; ok && cur == value {
		return
	}
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
	e.doc.mutated()
}

// RemoveAttribute clears an attribute. Removing an unset attribute is a no-op.
func (e *Element) RemoveAttribute(name string) {
	if _, ok := e.attrs[name]; !ok {
		return
	}
	delete(e.attrs, name)
	e.doc.mutated()
}

// Style returns the named inline style value and whether it is set.
func (e *Element) Style(name string) (string, bool) {
	v, ok := e.style[name]
	return v, ok
}

// SetStyle sets one inline style entry. Setting it to its current value is a
// no-op.
func (e *Element) SetStyle(name, value string) {
	if cur, ok := e.style[name]; ok && cur == value {
		return
	}
	if e.style == nil {
		e.style = make(map[string]string)
	}
	e.style[name] = value
	e.doc.mutated()
}

// RemoveStyle clears one inline style entry.
func (e *Element) RemoveStyle(name string) {
	if _, ok := e.style[name]; !ok {
		return
	}
	delete(e.style, name)
	e.doc.mutated()
}

// ClassName returns the element's class string.
func (e *Element) ClassName() string { return e.class }

// SetClassName sets the element's class string.
func (e *Element) SetClassName(class string) {
	if e.class == class {
		return
	}
	e.class = class
	e.doc.mutated()
}

// AddEventListener subscribes fn to the named event and returns an
// unsubscribe function.
func (e *Element) AddEventListener(name string, fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]*listenerEntry)
	}
	entry := &listenerEntry{fn: fn}
	e.listeners[name] = append(e.listeners[name], entry)
	return func() {
		entries := e.listeners[name]
		for i, it := range entries {
			if it == entry {
				e.listeners[name] = append(entries[:i], entries[i+1:]...)
				return
			}
		}
	}
}

// bindProp installs the single property-bound listener for an event name,
// replacing any previous one. A nil fn unbinds.
func (e *Element) bindProp(name string, fn Listener) {
	if fn == nil {
		if e.propListeners != nil {
			delete(e.propListeners, name)
		}
		return
	}
	if e.propListeners == nil {
		e.propListeners = make(map[string]Listener)
	}
	e.propListeners[name] = fn
}

// ListenerCount returns how many listeners (property-bound plus subscribed)
// are registered for the named event.
func (e *Element) ListenerCount(name string) int {
	n := len(e.listeners[name])
	if e.propListeners != nil {
		if _, ok := e.propListeners[name]; ok {
			n++
		}
	}
	return n
}

// DispatchEvent delivers ev to the listeners registered on this element for
// ev.Type. If ev.Target is nil it is set to this element.
func (e *Element) DispatchEvent(ev Event) {
	if ev.Target == nil {
		ev.Target = e
	}
	if e.propListeners != nil {
		if fn, ok := e.propListeners[ev.Type]; ok {
			fn(ev)
		}
	}
	for _, entry := range e.listeners[ev.Type] {
		entry.fn(ev)
	}
}

// Text is a text widget.
type Text struct {
	doc    *Document
	parent *Element
	value  string
}

// Value returns the text content.
func (t *Text) Value() string { return t.value }

// SetValue replaces the text content. Setting the current value is a no-op.
func (t *Text) SetValue(value string) {
	if t.value == value {
		return
	}
	t.value = value
	t.doc.mutated()
}

// Parent returns the node's current parent, or nil if detached.
func (t *Text) Parent() *Element { return t.parent }

// Document returns the owning document.
func (t *Text) Document() *Document { return t.doc }

func (t *Text) setParent(p *Element) { t.parent = p }

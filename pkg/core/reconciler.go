package core

import "github.com/go-fern/fern/pkg/dom"

// Instance is the mutable live record pairing a VNode with its platform
// widget and children. The instance tree is owned by the session's
// reconciler; nothing outside a render pass holds references into it except
// the root.
type Instance struct {
	Kind Kind
	// Node is the VNode this instance currently reflects.
	Node *VNode
	// DOM is the owned platform widget; set only for host and text nodes.
	DOM dom.Node
	// Children are the live child instances in order. For components this
	// is empty or exactly the one resolved child.
	Children []*Instance
	Key      string
	Path     string
}

// reconcile drives the per-position state machine on (previous instance,
// next node): unmount, mount, replace, or update in place. The anchor, when
// non-nil, is the widget new mounts are inserted before, keeping replaced
// positions in document order.
func (s *Session) reconcile(parent *dom.Element, inst *Instance, node *VNode, path string, anchor dom.Node) *Instance {
	switch {
	case node == nil:
		if inst != nil {
			s.unmount(inst)
		}
		return nil
	case inst == nil:
		return s.mount(parent, node, path, anchor)
	case !sameOrigin(inst.Node, node) || inst.Key != node.Key:
		s.unmount(inst)
		return s.mount(parent, node, path, anchor)
	default:
		s.update(parent, inst, node, path, anchor)
		return inst
	}
}

func (s *Session) mount(parent *dom.Element, node *VNode, path string, anchor dom.Node) *Instance {
	inst := &Instance{
		Kind: node.Kind,
		Node: node,
		Key:  node.Key,
		Path: path,
	}

	switch node.Kind {
	case KindFragment:
		inst.Children = s.reconcileChildren(parent, nil, node.Children(), path, anchor)

	case KindComponent:
		child := s.invokeComponent(node, path)
		if child != nil {
			childP := childPath(path, "", 0, child, []*VNode{child})
			if ci := s.reconcile(parent, nil, child, childP, anchor); ci != nil {
				inst.Children = []*Instance{ci}
			}
		}

	case KindText:
		text := s.doc.CreateText(nodeValue(node))
		inst.DOM = text
		attach(parent, text, anchor)

	default: // KindHost
		el := s.doc.CreateElement(node.Tag)
		dom.SetProps(el, node.Props)
		inst.DOM = el
		inst.Children = s.reconcileChildren(el, nil, node.Children(), path, nil)
		attach(parent, el, anchor)
	}
	return inst
}

// update mutates the instance in place. The anchor marks where this
// position's widgets belong in the parent; it must flow through widgetless
// instances so a replaced or newly grown descendant still lands before the
// position's later siblings.
func (s *Session) update(parent *dom.Element, inst *Instance, node *VNode, path string, anchor dom.Node) {
	prev := inst.Node
	inst.Node = node
	inst.Path = path

	switch inst.Kind {
	case KindFragment:
		inst.Children = s.reconcileChildren(parent, inst.Children, node.Children(), path, anchor)

	case KindComponent:
		child := s.invokeComponent(node, path)
		var old *Instance
		if len(inst.Children) > 0 {
			old = inst.Children[0]
		}
		var childP string
		if child != nil {
			childP = childPath(path, "", 0, child, []*VNode{child})
		} else if old != nil {
			childP = old.Path
		}
		if ci := s.reconcile(parent, old, child, childP, anchor); ci != nil {
			inst.Children = []*Instance{ci}
		} else {
			inst.Children = nil
		}

	case KindText:
		if text, ok := inst.DOM.(*dom.Text); ok {
			text.SetValue(nodeValue(node))
		}

	default: // KindHost
		el := inst.DOM.(*dom.Element)
		dom.PatchProps(el, prev.Props, node.Props)
		inst.Children = s.reconcileChildren(el, inst.Children, node.Children(), path, nil)
	}
}

// unmount detaches every platform widget under the instance. Hook state is
// not touched here; the store's visited-set garbage collection handles that
// at the end of the pass.
func (s *Session) unmount(inst *Instance) {
	for _, w := range collectWidgets(inst, nil) {
		if p := w.Parent(); p != nil {
			p.RemoveChild(w)
		}
	}
}

// reconcileChildren pairs old and new children strictly by index up to
// max(old, new). The path for a position comes from the new child when one
// exists, otherwise from the old child's existing path so trailing unmounts
// stay addressable. This is a positional diff: a keyed child moved to a new
// index keeps its hook and widget identity through its key-derived path,
// but the shifted range between old and new position is still compared
// pairwise, which can detach and reattach widgets along the way.
func (s *Session) reconcileChildren(parent *dom.Element, old []*Instance, next []*VNode, parentPath string, anchor dom.Node) []*Instance {
	count := len(old)
	if len(next) > count {
		count = len(next)
	}

	out := make([]*Instance, 0, len(next))
	for i := 0; i < count; i++ {
		var oldInst *Instance
		if i < len(old) {
			oldInst = old[i]
		}
		var node *VNode
		if i < len(next) {
			node = next[i]
		}

		var path string
		if node != nil {
			path = childPath(parentPath, node.Key, i, node, next)
		} else if oldInst != nil {
			path = oldInst.Path
		}

		// A replacement at this position mounts before the first widget
		// of the surviving later siblings so document order is kept.
		at := anchor
		if w := firstWidgetFrom(old, i+1); w != nil {
			at = w
		}

		if inst := s.reconcile(parent, oldInst, node, path, at); inst != nil {
			out = append(out, inst)
		}
	}
	return out
}

// invokeComponent runs the hook-store visit protocol around a component
// function call: push the path (marking it visited, cursor reset), invoke,
// pop. A panic from the component propagates to the caller of the pass.
func (s *Session) invokeComponent(node *VNode, path string) *VNode {
	s.store.push(path)
	defer s.store.pop()
	return node.Fn(s.ctx, node.Props)
}

// attach appends the widget to the parent, or inserts it before anchor when
// ordered insertion is required.
func attach(parent *dom.Element, w dom.Node, anchor dom.Node) {
	if parent == nil {
		return
	}
	if anchor != nil {
		parent.InsertBefore(w, anchor)
		return
	}
	parent.AppendChild(w)
}

// firstWidget returns the first platform widget backing the instance's
// subtree, or nil when the subtree owns no widgets.
func firstWidget(inst *Instance) dom.Node {
	if inst == nil {
		return nil
	}
	if inst.DOM != nil {
		return inst.DOM
	}
	for _, child := range inst.Children {
		if w := firstWidget(child); w != nil {
			return w
		}
	}
	return nil
}

func firstWidgetFrom(instances []*Instance, from int) dom.Node {
	for i := from; i < len(instances); i++ {
		if w := firstWidget(instances[i]); w != nil {
			return w
		}
	}
	return nil
}

// collectWidgets gathers the topmost widgets of a subtree: the instance's
// own widget, or for widgetless nodes the union of its children's topmost
// widgets.
func collectWidgets(inst *Instance, out []dom.Node) []dom.Node {
	if inst == nil {
		return out
	}
	if inst.DOM != nil {
		return append(out, inst.DOM)
	}
	for _, child := range inst.Children {
		out = collectWidgets(child, out)
	}
	return out
}

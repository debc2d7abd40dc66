package core

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Kind is the closed set of node types a VNode (and its Instance) can have.
type Kind uint8

const (
	// KindHost is a platform widget identified by a tag name.
	KindHost Kind = iota
	// KindText is a text widget.
	KindText
	// KindFragment groups children without a widget of its own.
	KindFragment
	// KindComponent is a function invoked to produce a child node.
	KindComponent
)

func (k Kind) String() string {
	switch k {
	case KindHost:
		return "host"
	case KindText:
		return "text"
	case KindFragment:
		return "fragment"
	case KindComponent:
		return "component"
	default:
		return "unknown"
	}
}

// Props carries the named values of a node. The "children" entry, when
// present, holds the node's normalized child sequence ([]*VNode).
type Props map[string]any

// Component produces the single child node for one occurrence in the tree.
// The ctx gives the invocation access to its hook slots; hooks must be
// called in the same order on every render.
type Component func(ctx *Ctx, props Props) *VNode

// FragmentType is the marker accepted by H to build a fragment node.
type FragmentType struct{}

// Fragment is the fragment marker: H(Fragment, nil, children...).
var Fragment FragmentType

// VNode is an immutable declarative description of one tree position for one
// render pass. Build VNodes with H, Text, and FragmentOf; do not mutate them
// after construction.
type VNode struct {
	Kind Kind
	// Tag is the host tag name; set only for KindHost.
	Tag string
	// Fn is the component function; set only for KindComponent.
	Fn Component
	// Key is the author-supplied identity hint, "" if none.
	Key string
	// Props holds named values, including the "children" entry.
	Props Props
}

// H constructs a normalized VNode. The tag may be a host tag string, the
// Fragment marker, or a component function. Children are flattened, nil and
// bool children are dropped, and plain values become text nodes. A "key"
// entry in props is lifted onto the node.
func H(tag any, props Props, children ...any) *VNode {
	node := &VNode{Props: props}
	switch typ := tag.(type) {
	case string:
		node.Kind = KindHost
		node.Tag = typ
	case FragmentType:
		node.Kind = KindFragment
	case Component:
		node.Kind = KindComponent
		node.Fn = typ
	case func(*Ctx, Props) *VNode:
		node.Kind = KindComponent
		node.Fn = typ
	default:
		panic(fmt.Sprintf("core.H: unsupported node type %T", tag))
	}

	if node.Props == nil {
		node.Props = Props{}
	}
	if key, ok := node.Props[keyProp]; ok {
		node.Key = fmt.Sprint(key)
		delete(node.Props, keyProp)
	}

	normalized := normalizeChildren(children, nil)
	if raw, ok := node.Props[childrenProp]; ok && len(normalized) == 0 {
		normalized = normalizeChildren([]any{raw}, nil)
	}
	node.Props[childrenProp] = normalized
	return node
}

// Text constructs a text node.
func Text(value any) *VNode {
	return &VNode{
		Kind:  KindText,
		Props: Props{nodeValueProp: fmt.Sprint(value)},
	}
}

// FragmentOf groups children without introducing a widget.
func FragmentOf(children ...any) *VNode {
	return H(Fragment, nil, children...)
}

// Children returns the node's normalized child sequence.
func (n *VNode) Children() []*VNode {
	if n == nil || n.Props == nil {
		return nil
	}
	kids, _ := n.Props[childrenProp].([]*VNode)
	return kids
}

const (
	childrenProp  = "children"
	keyProp       = "key"
	nodeValueProp = "nodeValue"
)

// normalizeChildren flattens nested child slices, drops nil and bool
// entries, and converts remaining plain values to text nodes.
func normalizeChildren(children []any, out []*VNode) []*VNode {
	for _, child := range children {
		switch c := child.(type) {
		case nil, bool:
			// skipped, so `cond && node` style conditionals render nothing
		case *VNode:
			if c != nil {
				out = append(out, c)
			}
		case []*VNode:
			for _, n := range c {
				if n != nil {
					out = append(out, n)
				}
			}
		case []any:
			out = normalizeChildren(c, out)
		case string:
			out = append(out, Text(c))
		default:
			out = append(out, Text(c))
		}
	}
	return out
}

// nodeValue returns the text content of a text node.
func nodeValue(n *VNode) string {
	if n == nil || n.Props == nil {
		return ""
	}
	if v, ok := n.Props[nodeValueProp]; ok {
		return fmt.Sprint(v)
	}
	return ""
}

// sameOrigin reports whether two nodes have the same type in the update
// sense: same kind, and for hosts the same tag, for components the same
// function.
func sameOrigin(a, b *VNode) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindHost:
		return a.Tag == b.Tag
	case KindComponent:
		return sameComponent(a.Fn, b.Fn)
	default:
		return true
	}
}

// sameComponent compares component functions by code pointer.
func sameComponent(a, b Component) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// componentName returns a short display name for a component function,
// derived from its declared symbol name. Anonymous or unresolvable
// functions share the fixed placeholder "fn".
func componentName(fn Component) string {
	if fn == nil {
		return "fn"
	}
	pc := reflect.ValueOf(fn).Pointer()
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "fn"
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if name == "" {
		return "fn"
	}
	return name
}

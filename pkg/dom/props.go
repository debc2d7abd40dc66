package dom

import (
	"fmt"
	"strings"

	"github.com/go-fern/fern/pkg/equality"
)

// Property names with reserved meaning. "children" and "key" belong to the
// node model and are never applied to a widget; "nodeValue" is the text
// content of text widgets and is handled by the reconciler directly.
const (
	PropChildren  = "children"
	PropKey       = "key"
	PropNodeValue = "nodeValue"
)

// SetProps applies every entry of props to a freshly created element.
func SetProps(el *Element, props map[string]any) {
	for name, value := range props {
		applyProp(el, name, value)
	}
}

// PatchProps reconciles an element's widget state from old props to new
// props: entries present only in old are removed, changed entries are
// re-applied, and identical entries are left untouched. Event-handler props
// are always re-bound, since two distinct closures cannot be told apart.
func PatchProps(el *Element, old, next map[string]any) {
	for name := range old {
		if _, ok := next[name]; !ok {
			removeProp(el, name, old[name])
		}
	}
	for name, value := range next {
		if !isEventProp(name) && equality.Is(old[name], value) {
			continue
		}
		applyProp(el, name, value)
	}
}

func applyProp(el *Element, name string, value any) {
	switch {
	case name == PropChildren, name == PropKey, name == PropNodeValue:
		return
	case isEventProp(name):
		el.bindProp(eventName(name), asListener(value))
	case name == "style":
		applyStyle(el, value)
	case name == "class" || name == "className":
		el.SetClassName(fmt.Sprint(value))
	default:
		if s, ok := attrValue(value); ok {
			el.SetAttribute(name, s)
		} else {
			el.RemoveAttribute(name)
		}
	}
}

func removeProp(el *Element, name string, old any) {
	switch {
	case name == PropChildren, name == PropKey, name == PropNodeValue:
		return
	case isEventProp(name):
		el.bindProp(eventName(name), nil)
	case name == "style":
		clearStyle(el, old)
	case name == "class" || name == "className":
		el.SetClassName("")
	default:
		el.RemoveAttribute(name)
	}
}

// applyStyle applies a nested style mapping key by key, clearing entries
// that are no longer present.
func applyStyle(el *Element, value any) {
	next := styleEntries(value)
	for name := range el.style {
		if _, ok := next[name]; !ok {
			el.RemoveStyle(name)
		}
	}
	for name, v := range next {
		el.SetStyle(name, v)
	}
}

func clearStyle(el *Element, old any) {
	for name := range styleEntries(old) {
		el.RemoveStyle(name)
	}
}

func styleEntries(value any) map[string]string {
	out := make(map[string]string)
	switch m := value.(type) {
	case map[string]string:
		for k, v := range m {
			out[k] = v
		}
	case map[string]any:
		for k, v := range m {
			out[k] = fmt.Sprint(v)
		}
	}
	return out
}

// isEventProp reports whether a prop name binds an event handler: an "on"
// prefix followed by the capitalized event name, e.g. "onClick". Names like
// "only" stay ordinary attributes.
func isEventProp(name string) bool {
	return len(name) > 2 && strings.HasPrefix(name, "on") &&
		name[2] >= 'A' && name[2] <= 'Z'
}

// eventName lower-cases the suffix of an event prop: "onClick" -> "click".
func eventName(prop string) string {
	return strings.ToLower(prop[2:])
}

func asListener(value any) Listener {
	switch fn := value.(type) {
	case nil:
		return nil
	case Listener:
		return fn
	case func(Event):
		return fn
	case func():
		return func(Event) { fn() }
	default:
		return nil
	}
}

// attrValue converts a generic prop value to an attribute string. It returns
// false when the attribute should be removed instead (nil or false values).
func attrValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case bool:
		if !v {
			return "", false
		}
		return "true", true
	case string:
		return v, true
	default:
		return fmt.Sprint(v), true
	}
}

package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPropsAppliesEverything(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("input")

	var clicked bool
	SetProps(el, map[string]any{
		"class":    "field",
		"type":     "text",
		"disabled": true,
		"style":    map[string]string{"width": "10px"},
		"onClick":  func() { clicked = true },
		"children": []any{"ignored"},
		"key":      "ignored",
	})

	assert.Equal(t, "field", el.ClassName())
	typ, _ := el.Attr("type")
	assert.Equal(t, "text", typ)
	disabled, _ := el.Attr("disabled")
	assert.Equal(t, "true", disabled)
	width, _ := el.Style("width")
	assert.Equal(t, "10px", width)

	_, hasChildren := el.Attr("children")
	assert.False(t, hasChildren, "children must never become an attribute")
	_, hasKey := el.Attr("key")
	assert.False(t, hasKey, "key must never become an attribute")

	el.DispatchEvent(Event{Type: "click"})
	assert.True(t, clicked)
}

func TestPatchPropsRemovesStale(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	old := map[string]any{
		"id":      "a",
		"class":   "x",
		"style":   map[string]string{"color": "red"},
		"onClick": func() {},
	}
	SetProps(el, old)

	PatchProps(el, old, map[string]any{})

	_, hasID := el.Attr("id")
	assert.False(t, hasID)
	assert.Equal(t, "", el.ClassName())
	_, hasColor := el.Style("color")
	assert.False(t, hasColor)
	assert.Equal(t, 0, el.ListenerCount("click"))
}

func TestPatchPropsUpdatesChanged(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	old := map[string]any{"id": "a", "title": "same"}
	SetProps(el, old)

	PatchProps(el, old, map[string]any{"id": "b", "title": "same"})

	id, _ := el.Attr("id")
	assert.Equal(t, "b", id)
	title, _ := el.Attr("title")
	assert.Equal(t, "same", title)
}

func TestPatchPropsIdenticalIsQuiet(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	props := map[string]any{
		"id":    "a",
		"class": "x",
		"style": map[string]string{"color": "red"},
	}
	SetProps(el, props)

	before := doc.MutationCount()
	PatchProps(el, props, map[string]any{
		"id":    "a",
		"class": "x",
		"style": map[string]string{"color": "red"},
	})

	assert.Equal(t, before, doc.MutationCount(), "identical props must produce zero mutations")
}

func TestPatchPropsRebindsHandlers(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("button")

	var calls []string
	old := map[string]any{"onClick": func() { calls = append(calls, "old") }}
	SetProps(el, old)

	next := map[string]any{"onClick": func() { calls = append(calls, "new") }}
	PatchProps(el, old, next)

	el.DispatchEvent(Event{Type: "click"})
	require.Equal(t, []string{"new"}, calls)
}

func TestPatchPropsStyleDiff(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	old := map[string]any{"style": map[string]string{"color": "red", "margin": "1px"}}
	SetProps(el, old)

	PatchProps(el, old, map[string]any{"style": map[string]string{"color": "blue"}})

	color, _ := el.Style("color")
	assert.Equal(t, "blue", color)
	_, hasMargin := el.Style("margin")
	assert.False(t, hasMargin)
}

func TestEventPropNames(t *testing.T) {
	tests := []struct {
		prop  string
		event string
		is    bool
	}{
		{"onClick", "click", true},
		{"onMouseDown", "mousedown", true},
		{"on", "", false},
		{"once", "", false},
		{"only", "", false},
		{"class", "", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.is, isEventProp(tt.prop), tt.prop)
		if tt.is {
			assert.Equal(t, tt.event, eventName(tt.prop), tt.prop)
		}
	}
}

func TestLowercaseOnPrefixStaysAnAttribute(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	SetProps(el, map[string]any{"only": "if-needed"})

	only, ok := el.Attr("only")
	assert.True(t, ok, "a lower-case on* name must be applied as an attribute")
	assert.Equal(t, "if-needed", only)
	assert.Equal(t, 0, el.ListenerCount("ly"))
}

func TestFalseAndNilAttrsRemove(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("input")
	old := map[string]any{"disabled": true}
	SetProps(el, old)

	PatchProps(el, old, map[string]any{"disabled": false})

	_, has := el.Attr("disabled")
	assert.False(t, has)
}

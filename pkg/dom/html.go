package dom

import (
	"html"
	"sort"
	"strings"
)

// RenderHTML serializes a subtree to an HTML-like string. Attributes are
// emitted in sorted order so output is deterministic.
func RenderHTML(n Node) string {
	var sb strings.Builder
	writeNode(&sb, n)
	return sb.String()
}

// RenderInnerHTML serializes an element's children without the element's own
// tag.
func RenderInnerHTML(e *Element) string {
	var sb strings.Builder
	for _, child := range e.children {
		writeNode(&sb, child)
	}
	return sb.String()
}

func writeNode(sb *strings.Builder, n Node) {
	switch node := n.(type) {
	case *Text:
		sb.WriteString(html.EscapeString(node.value))
	case *Element:
		sb.WriteString("<")
		sb.WriteString(node.tag)
		writeAttrs(sb, node)
		sb.WriteString(">")
		for _, child := range node.children {
			writeNode(sb, child)
		}
		sb.WriteString("</")
		sb.WriteString(node.tag)
		sb.WriteString(">")
	}
}

func writeAttrs(sb *strings.Builder, e *Element) {
	if e.class != "" {
		sb.WriteString(` class="`)
		sb.WriteString(html.EscapeString(e.class))
		sb.WriteString(`"`)
	}
	if len(e.style) > 0 {
		names := sortedKeys(e.style)
		sb.WriteString(` style="`)
		for i, name := range names {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(name)
			sb.WriteString(": ")
			sb.WriteString(html.EscapeString(e.style[name]))
		}
		sb.WriteString(`"`)
	}
	for _, name := range sortedKeys(e.attrs) {
		sb.WriteString(" ")
		sb.WriteString(name)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(e.attrs[name]))
		sb.WriteString(`"`)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TextContent concatenates the text values in a subtree in document order.
func TextContent(n Node) string {
	var sb strings.Builder
	collectText(&sb, n)
	return sb.String()
}

func collectText(sb *strings.Builder, n Node) {
	switch node := n.(type) {
	case *Text:
		sb.WriteString(node.value)
	case *Element:
		for _, child := range node.children {
			collectText(sb, child)
		}
	}
}

package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-fern/fern/pkg/core"
	"github.com/go-fern/fern/pkg/dom"
	"github.com/go-fern/fern/pkg/errors"
)

const sampleScene = `
name: demo
root:
  tag: div
  class: app
  style:
    color: green
  children:
    - tag: h1
      text: hello
    - tag: ul
      children:
        - tag: li
          key: a
          text: first
        - tag: li
          key: b
          text: second
`

func TestParseAndBuild(t *testing.T) {
	sc, err := Parse([]byte(sampleScene))
	require.NoError(t, err)
	assert.Equal(t, "demo", sc.Name)

	node := sc.Build()
	require.Equal(t, core.KindHost, node.Kind)
	assert.Equal(t, "div", node.Tag)
	assert.Equal(t, "app", node.Props["class"])

	kids := node.Children()
	require.Len(t, kids, 2)
	assert.Equal(t, "h1", kids[0].Tag)

	items := kids[1].Children()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Key)
	assert.Equal(t, "b", items[1].Key)
}

func TestBuildRendersThroughReconciler(t *testing.T) {
	sc, err := Parse([]byte(sampleScene))
	require.NoError(t, err)

	doc := dom.NewDocument()
	container := doc.CreateElement("root")
	session := core.Mount(sc.Build(), container)

	want := `<div class="app" style="color: green"><h1>hello</h1><ul><li>first</li><li>second</li></ul></div>`
	assert.Equal(t, want, dom.RenderInnerHTML(container))

	// A second pass over a freshly built identical tree must be quiet.
	before := doc.MutationCount()
	session.Render(sc.Build())
	assert.Equal(t, before, doc.MutationCount())
}

func TestParseRejectsEmptyNode(t *testing.T) {
	_, err := Parse([]byte("root:\n  class: x\n"))
	require.Error(t, err)

	var fernErr *errors.FernError
	require.ErrorAs(t, err, &fernErr)
	assert.Equal(t, errors.KindScene, fernErr.Kind)
}

func TestParseRejectsTextNodeWithChildren(t *testing.T) {
	bad := `
root:
  text: hi
  children:
    - tag: div
`
	_, err := Parse([]byte(bad))
	assert.Error(t, err)
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("root: ["))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does-not-exist.yaml")
	require.Error(t, err)

	var fernErr *errors.FernError
	require.ErrorAs(t, err, &fernErr)
	assert.Equal(t, errors.KindScene, fernErr.Kind)
}

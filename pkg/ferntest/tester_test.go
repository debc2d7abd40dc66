package ferntest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-fern/fern/pkg/core"
)

func TestRenderAndFind(t *testing.T) {
	tester := NewTester(t)
	tester.Render(core.H("div", core.Props{"class": "wrap"},
		core.H("button", core.Props{"id": "go"}, "run"),
	))

	assert.NotNil(t, tester.Find(ByTag("button")))
	assert.NotNil(t, tester.Find(ByAttr("id", "go")))
	assert.NotNil(t, tester.Find(ByClass("wrap")))
	assert.NotNil(t, tester.Find(ByText("run")))
	assert.Nil(t, tester.Find(ByTag("table")))
}

func TestFindAllDocumentOrder(t *testing.T) {
	tester := NewTester(t)
	tester.Render(core.H("ul", nil,
		core.H("li", core.Props{"id": "1"}),
		core.H("li", core.Props{"id": "2"}),
	))

	items := tester.FindAll(ByTag("li"))
	require.Len(t, items, 2)
	first, _ := items[0].Attr("id")
	assert.Equal(t, "1", first)
}

func TestFireEventDoesNotFlush(t *testing.T) {
	clicks := 0
	comp := func(ctx *core.Ctx, props core.Props) *core.VNode {
		count, setCount := core.UseState(ctx, 0)
		clicks = count
		return core.H("button", core.Props{
			"onClick": func() { setCount(func(c int) int { return c + 1 }) },
		}, count)
	}

	tester := NewTester(t)
	tester.Render(core.H(core.Component(comp), nil))

	tester.Click(tester.MustFind(ByTag("button")))
	assert.Equal(t, 0, clicks, "no pass before Flush")
	assert.True(t, tester.Pending())

	tester.Flush()
	assert.Equal(t, 1, clicks)
}

func TestCloseRunsCleanups(t *testing.T) {
	cleaned := false
	comp := func(ctx *core.Ctx, props core.Props) *core.VNode {
		core.UseEffect(ctx, func() func() {
			return func() { cleaned = true }
		}, []any{})
		return core.H("div", nil)
	}

	tester := NewTester(t)
	tester.Render(core.H(core.Component(comp), nil))
	tester.Close()

	assert.True(t, cleaned)
	assert.Equal(t, "", tester.HTML())
}

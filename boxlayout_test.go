package boxlayout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestPublicAPI(t *testing.T) {
	tree, err := New(WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	item := DefaultStyle()
	item.FlexGrow = 1
	a, err := tree.NewLeaf(item)
	require.NoError(t, err)
	b, err := tree.NewLeaf(item)
	require.NoError(t, err)

	row := DefaultStyle()
	require.NoError(t, row.SetDimension(PropWidth, Length(200)))
	require.NoError(t, row.SetDimension(PropHeight, Length(50)))
	root, err := tree.NewWithChildren(row, a, b)
	require.NoError(t, err)

	require.NoError(t, tree.ComputeLayout(root, DefiniteSize(200, 50)))
	l, err := tree.Layout(b)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 100, Y: 0}, l.Location)
	assert.Equal(t, Size{Width: 100, Height: 50}, l.Size)

	err = tree.AddChild(a, root)
	assert.ErrorIs(t, err, ErrInvalidHierarchy)
	assert.Equal(t, KindInvalidHierarchy, KindOf(err))
}

func TestLayoutDocument(t *testing.T) {
	const src = `version: v1
available: {width: 400, height: 300}
root:
  name: page
  style: {display: grid, grid-template-columns: 1fr 3fr, width: 400px}
  children:
    - name: side
    - name: main
      style: {height: 120px}
`
	d, err := LayoutDocument(strings.NewReader(src), WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	side, err := d.Layout("side")
	require.NoError(t, err)
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 100, Height: 120}, side.BorderBox())

	main, err := d.Layout("main")
	require.NoError(t, err)
	assert.Equal(t, Rect{X: 100, Y: 0, Width: 300, Height: 120}, main.BorderBox())

	_, err = d.Layout("footer")
	assert.EqualError(t, err, `no node named "footer"`)

	_, err = LayoutDocument(strings.NewReader("root: {name: x}\n"))
	assert.EqualError(t, err, "missing document version")
}

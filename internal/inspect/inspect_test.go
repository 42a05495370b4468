package inspect

import (
	"strings"
	"testing"

	"github.com/grindlemire/go-boxlayout/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func sized(t *testing.T, w, h float64) layout.Style {
	t.Helper()
	s := layout.DefaultStyle()
	require.NoError(t, s.SetDimension(layout.PropWidth, layout.Length(w)))
	require.NoError(t, s.SetDimension(layout.PropHeight, layout.Length(h)))
	return s
}

func TestRender(t *testing.T) {
	tr, err := layout.New(layout.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	a, err := tr.NewLeaf(sized(t, 10, 10))
	require.NoError(t, err)
	b, err := tr.NewLeaf(sized(t, 20, 5))
	require.NoError(t, err)
	inner, err := tr.NewWithChildren(layout.DefaultStyle(), b)
	require.NoError(t, err)
	rootStyle := sized(t, 100, 50)
	require.NoError(t, rootStyle.SetDisplay(layout.DisplayBlock))
	root, err := tr.NewWithChildren(rootStyle, a, inner)
	require.NoError(t, err)
	require.NoError(t, tr.ComputeLayout(root, layout.MaxContentSize()))

	out, err := Render(tr, root, WithLabels(map[layout.NodeID]string{root: "page", a: "a", inner: "row"}))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "page block (0,0) 100x50", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "a flex (0,0) 10x10")
	assert.Contains(t, lines[2], "row flex (0,10) 100x5")
	assert.Contains(t, lines[3], b.String()+" flex (0,0) 20x5")
	// Children of the last child are indented under it.
	assert.Greater(t, strings.Index(lines[3], b.String()), strings.Index(lines[2], "row"))
}

func TestRender_Unrounded(t *testing.T) {
	tr, err := layout.New(layout.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	var kids []layout.NodeID
	for range 3 {
		s := layout.DefaultStyle()
		require.NoError(t, s.SetFlexGrow(1))
		id, err := tr.NewLeaf(s)
		require.NoError(t, err)
		kids = append(kids, id)
	}
	root, err := tr.NewWithChildren(sized(t, 10, 1), kids...)
	require.NoError(t, err)
	require.NoError(t, tr.ComputeLayout(root, layout.MaxContentSize()))

	out, err := Render(tr, root, WithUnrounded())
	require.NoError(t, err)
	assert.Contains(t, out, "3.3333333333333335x1")

	out, err = Render(tr, root)
	require.NoError(t, err)
	assert.Contains(t, out, "(3,0) 4x1")
}

func TestRender_StaleNode(t *testing.T) {
	tr, err := layout.New(layout.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	id, err := tr.NewLeaf(layout.DefaultStyle())
	require.NoError(t, err)
	require.NoError(t, tr.Remove(id))

	_, err = Render(tr, id)
	assert.ErrorIs(t, err, layout.ErrNotFound)
}

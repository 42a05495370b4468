package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// styleFn edits a style in place. Test styles are built from DefaultStyle
// and a list of edits.
type styleFn func(*Style)

func mkStyle(fns ...styleFn) Style {
	s := DefaultStyle()
	for _, fn := range fns {
		fn(&s)
	}
	return s
}

func px(w, h float64) styleFn {
	return func(s *Style) {
		s.Width, s.Height = Length(w), Length(h)
	}
}

func width(d Dimension) styleFn {
	return func(s *Style) { s.Width = d }
}

func height(d Dimension) styleFn {
	return func(s *Style) { s.Height = d }
}

func display(d Display) styleFn {
	return func(s *Style) { s.Display = d }
}

func direction(d FlexDirection) styleFn {
	return func(s *Style) { s.FlexDirection = d }
}

func grow(v float64) styleFn {
	return func(s *Style) { s.FlexGrow = v }
}

func newTestTree(t *testing.T, opts ...TreeOption) *Tree {
	t.Helper()
	opts = append([]TreeOption{WithLogger(zaptest.NewLogger(t))}, opts...)
	tree, err := New(opts...)
	require.NoError(t, err)
	return tree
}

func newLeaf(t *testing.T, tree *Tree, fns ...styleFn) NodeID {
	t.Helper()
	id, err := tree.NewLeaf(mkStyle(fns...))
	require.NoError(t, err)
	return id
}

func newParent(t *testing.T, tree *Tree, s Style, children ...NodeID) NodeID {
	t.Helper()
	id, err := tree.NewWithChildren(s, children...)
	require.NoError(t, err)
	return id
}

func computeLayout(t *testing.T, tree *Tree, root NodeID, w, h float64) {
	t.Helper()
	require.NoError(t, tree.ComputeLayout(root, DefiniteSize(w, h)))
}

func layoutOf(t *testing.T, tree *Tree, id NodeID) Layout {
	t.Helper()
	l, err := tree.Layout(id)
	require.NoError(t, err)
	return l
}

// box is the part of a Layout most tests assert on.
type box struct {
	X, Y, W, H float64
}

func boxOf(t *testing.T, tree *Tree, id NodeID) box {
	t.Helper()
	l := layoutOf(t, tree, id)
	return box{X: l.Location.X, Y: l.Location.Y, W: l.Size.Width, H: l.Size.Height}
}

// textMeasure measures a run of n fixed-width glyphs that wraps to the
// available width.
func textMeasure(n int, glyphW, lineH float64) MeasureFunc {
	return func(known Size, available AvailableSize) Size {
		full := float64(n) * glyphW
		w := known.Width
		if !isDefined(w) {
			switch available.Width.Kind {
			case SpaceMinContent:
				w = glyphW
			case SpaceMaxContent:
				w = full
			default:
				w = min(full, max(available.Width.Value, glyphW))
			}
		}
		perLine := max(int(w/glyphW), 1)
		lines := (n + perLine - 1) / perLine
		h := known.Height
		if !isDefined(h) {
			h = float64(lines) * lineH
		}
		return Size{Width: w, Height: h}
	}
}

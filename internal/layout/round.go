package layout

import "math"

// finalizeLayout derives the final layouts of the subtree at root from the
// unrounded ones: absolute positions are accumulated, locations are made
// relative to the parent's content box, and with rounding enabled every
// edge is snapped to whole pixels.
func (t *Tree) finalizeLayout(root NodeID) {
	t.finalizeNode(root, Point{}, Point{}, Insets{})
}

// finalizeNode finalizes id. cumulative is the unrounded absolute origin of
// the parent's border box, parentAbs its final absolute origin and
// parentInset the parent's final border plus padding.
func (t *Tree) finalizeNode(id NodeID, cumulative, parentAbs Point, parentInset Insets) {
	n := t.n(id)
	u := n.unrounded
	if n.style.Display == DisplayNone {
		t.finalizeHidden(id)
		return
	}
	abs := cumulative.Add(u.Location)
	n.unrounded.Absolute = abs

	var l Layout
	if t.rounding {
		l = roundLayout(u, abs)
	} else {
		l = u
		l.Absolute = abs
	}
	l.Location = Point{
		X: l.Absolute.X - parentAbs.X - parentInset.Left,
		Y: l.Absolute.Y - parentAbs.Y - parentInset.Top,
	}
	n.final = l

	inset := l.Border.Add(l.Padding)
	for _, child := range n.children {
		t.finalizeNode(child, abs, l.Absolute, inset)
	}
}

// finalizeHidden gives a display:none subtree empty layouts that keep only
// their order.
func (t *Tree) finalizeHidden(id NodeID) {
	n := t.n(id)
	n.final = Layout{Order: n.unrounded.Order}
	for _, child := range n.children {
		t.finalizeHidden(child)
	}
}

// roundLayout snaps u, whose border box starts at the unrounded absolute
// point abs. Each edge is rounded in absolute coordinates so that adjacent
// boxes stay adjacent after rounding.
func roundLayout(u Layout, abs Point) Layout {
	x, y := abs.X, abs.Y
	right, bottom := x+u.Size.Width, y+u.Size.Height

	l := u
	l.Absolute = Point{X: math.Round(x), Y: math.Round(y)}
	l.Size = Size{
		Width:  math.Round(right) - math.Round(x),
		Height: math.Round(bottom) - math.Round(y),
	}
	l.ContentSize = Size{
		Width:  math.Round(x+u.ContentSize.Width) - math.Round(x),
		Height: math.Round(y+u.ContentSize.Height) - math.Round(y),
	}
	l.ScrollbarSize = Size{
		Width:  math.Round(u.ScrollbarSize.Width),
		Height: math.Round(u.ScrollbarSize.Height),
	}
	l.Border = Insets{
		Left:   math.Round(x+u.Border.Left) - math.Round(x),
		Top:    math.Round(y+u.Border.Top) - math.Round(y),
		Right:  math.Round(right) - math.Round(right-u.Border.Right),
		Bottom: math.Round(bottom) - math.Round(bottom-u.Border.Bottom),
	}
	l.Padding = Insets{
		Left:   math.Round(x+u.Border.Left+u.Padding.Left) - math.Round(x+u.Border.Left),
		Top:    math.Round(y+u.Border.Top+u.Padding.Top) - math.Round(y+u.Border.Top),
		Right:  math.Round(right-u.Border.Right) - math.Round(right-u.Border.Right-u.Padding.Right),
		Bottom: math.Round(bottom-u.Border.Bottom) - math.Round(bottom-u.Border.Bottom-u.Padding.Bottom),
	}
	l.Margin = Insets{
		Left:   math.Round(x) - math.Round(x-u.Margin.Left),
		Top:    math.Round(y) - math.Round(y-u.Margin.Top),
		Right:  math.Round(right+u.Margin.Right) - math.Round(right),
		Bottom: math.Round(bottom+u.Margin.Bottom) - math.Round(bottom),
	}
	return l
}

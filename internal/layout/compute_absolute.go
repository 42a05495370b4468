package layout

import "math"

// areaFunc returns the containing block of an absolutely positioned child
// relative to the container's border box. ok is false when the child uses
// the container's content box.
type areaFunc func(child NodeID) (origin Point, size Size, ok bool)

// layoutAbsoluteChildren positions the position:absolute children of id.
// containerSize is the container's border box; inset separates it from the
// content box. It returns the children's content size contribution.
func (t *Tree) layoutAbsoluteChildren(id NodeID, containerSize Size, inset Insets, area areaFunc) Size {
	var contentSize Size
	for order, child := range t.n(id).children {
		cs := &t.n(child).style
		if cs.Position != PositionAbsolute || cs.Display == DisplayNone {
			continue
		}

		origin := Point{X: inset.Left, Y: inset.Top}
		areaSize := Size{
			Width:  math.Max(containerSize.Width-inset.Horizontal(), 0),
			Height: math.Max(containerSize.Height-inset.Vertical(), 0),
		}
		if area != nil {
			if o, s, ok := area(child); ok {
				origin, areaSize = o, s
			}
		}

		out, l := t.layoutAbsoluteChild(child, areaSize)
		l.Order = uint32(order)
		l.Location = l.Location.Add(origin)
		t.setUnroundedLayout(child, l)
		contentSize = sizeMax(contentSize, contentContribution(l.Location, l.Size, out.ContentSize, cs))
	}
	return contentSize
}

// layoutAbsoluteChild sizes and positions one child inside a containing
// block of areaSize. The returned location is relative to the area origin.
func (t *Tree) layoutAbsoluteChild(child NodeID, areaSize Size) (layoutOutput, Layout) {
	cs := &t.n(child).style
	aspect := cs.aspectRatio()

	margin := cs.Margin.resolve(areaSize.Width)
	auto := cs.Margin.autoSides()
	padding := cs.Padding.resolveOrZero(areaSize.Width)
	border := cs.Border.resolveOrZero(areaSize.Width)
	pbSize := padding.Add(border).sumAxes()
	pos := cs.Inset.resolveInset(areaSize)

	styleSize := cs.resolvedSize(areaSize).applyAspectRatio(aspect)
	minSize := cs.resolvedMinSize(areaSize).applyAspectRatio(aspect).Or(pbSize).maybeMax(pbSize)
	maxSize := cs.resolvedMaxSize(areaSize)
	known := styleSize.maybeClamp(minSize, maxSize)

	marginH := or(margin.Left, 0) + or(margin.Right, 0)
	marginV := or(margin.Top, 0) + or(margin.Bottom, 0)

	// Both insets in an axis fix the size in that axis.
	if !isDefined(known.Width) && isDefined(pos.Left) && isDefined(pos.Right) {
		known.Width = math.Max(maybeClamp(areaSize.Width-pos.Left-pos.Right-marginH, minSize.Width, maxSize.Width), 0)
	}
	if !isDefined(known.Height) && isDefined(pos.Top) && isDefined(pos.Bottom) {
		known.Height = math.Max(maybeClamp(areaSize.Height-pos.Top-pos.Bottom-marginV, minSize.Height, maxSize.Height), 0)
	}
	known = known.applyAspectRatio(aspect)

	available := AvailableSize{
		Width:  Definite(math.Max(areaSize.Width-or(pos.Left, 0)-or(pos.Right, 0)-marginH, 0)),
		Height: Definite(math.Max(areaSize.Height-or(pos.Top, 0)-or(pos.Bottom, 0)-marginV, 0)),
	}

	size := known
	if !isDefined(size.Width) || !isDefined(size.Height) {
		measured := Size{
			Width:  t.measureChildSize(child, known, areaSize, available, SizingContent, Horizontal),
			Height: undefined,
		}
		probe := known
		probe.Width = measured.Width
		measured.Height = t.measureChildSize(child, probe, areaSize, available, SizingContent, Vertical)
		size = known.Or(measured).maybeClamp(minSize, maxSize)
	}
	out := t.performChildLayout(child, size, areaSize, available, SizingContent)
	size = out.Size

	// Auto margins absorb free space when both insets are set.
	resolveAuto := func(start, end float64, autoStart, autoEnd bool, free float64) (float64, float64) {
		switch {
		case autoStart && autoEnd:
			if free > 0 {
				return free / 2, free / 2
			}
			return 0, free
		case autoStart:
			return free - end, end
		case autoEnd:
			return start, free - start
		}
		return start, end
	}
	ml, mr := or(margin.Left, 0), or(margin.Right, 0)
	if isDefined(pos.Left) && isDefined(pos.Right) {
		free := areaSize.Width - size.Width - pos.Left - pos.Right
		ml, mr = resolveAuto(ml, mr, auto.Left, auto.Right, free)
	}
	mt, mb := or(margin.Top, 0), or(margin.Bottom, 0)
	if isDefined(pos.Top) && isDefined(pos.Bottom) {
		free := areaSize.Height - size.Height - pos.Top - pos.Bottom
		mt, mb = resolveAuto(mt, mb, auto.Top, auto.Bottom, free)
	}

	var x, y float64
	switch {
	case isDefined(pos.Left):
		x = pos.Left + ml
	case isDefined(pos.Right):
		x = areaSize.Width - size.Width - pos.Right - mr
	default:
		x = ml
	}
	switch {
	case isDefined(pos.Top):
		y = pos.Top + mt
	case isDefined(pos.Bottom):
		y = areaSize.Height - size.Height - pos.Bottom - mb
	default:
		y = mt
	}

	return out, Layout{
		Location:      Point{X: x, Y: y},
		Size:          size,
		ContentSize:   out.ContentSize,
		ScrollbarSize: cs.scrollbarGutter(),
		Border:        border,
		Padding:       padding,
		Margin:        Insets{Top: mt, Right: mr, Bottom: mb, Left: ml},
	}
}

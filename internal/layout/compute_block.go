package layout

import "math"

// blockItem is the per-child scratch state of a block layout pass.
type blockItem struct {
	id    NodeID
	order int

	size    Size
	minSize Size
	maxSize Size

	margin     Insets // NaN for auto sides
	marginAuto autoEdges
}

// computeBlockLayout stacks in-flow children vertically. Auto widths fill
// the available width; auto heights come from content.
func (t *Tree) computeBlockLayout(id NodeID, in layoutInput) layoutOutput {
	style := &t.n(id).style
	known, minSize, maxSize := containerSizeFromStyle(style, in)

	if !isDefined(known.Width) && in.available.Width.IsDefinite() {
		margin := style.Margin.resolveOrZero(in.parentSize.Width)
		pb := style.Padding.resolveOrZero(in.parentSize.Width).Add(style.Border.resolveOrZero(in.parentSize.Width))
		w := maybeClamp(in.available.Width.Value-margin.Horizontal(), minSize.Width, maxSize.Width)
		known.Width = math.Max(w, pb.Horizontal())
	}

	if in.runMode == RunComputeSize && isDefined(known.Width) && isDefined(known.Height) {
		return sizeOutput(known)
	}
	return t.computeBlockInner(id, in, known, minSize, maxSize)
}

func (t *Tree) computeBlockInner(id NodeID, in layoutInput, known, minSize, maxSize Size) layoutOutput {
	n := t.n(id)
	style := &n.style
	padding := style.Padding.resolveOrZero(in.parentSize.Width)
	border := style.Border.resolveOrZero(in.parentSize.Width)
	pbSize := padding.Add(border).sumAxes()
	inset := style.contentBoxInset(in.parentSize.Width)

	contentBox := known.maybeSub(inset.sumAxes())

	width := known.Width
	if !isDefined(width) {
		items := t.blockItems(id, contentBox)
		available := in.available.Width.maybeSub(inset.Horizontal())
		width = t.blockContentWidth(items, available) + inset.Horizontal()
		width = math.Max(maybeClamp(width, minSize.Width, maxSize.Width), pbSize.Width)
	}
	innerWidth := math.Max(width-inset.Horizontal(), 0)
	inner := Size{Width: innerWidth, Height: contentBox.Height}
	items := t.blockItems(id, inner)
	childAvailable := AvailableSize{Width: Definite(innerWidth), Height: MaxContentSpace}

	y := inset.Top
	var contentSize Size
	for i := range items {
		item := &items[i]
		marginH := or(item.margin.Left, 0) + or(item.margin.Right, 0)
		childKnown := item.size.maybeClamp(item.minSize, item.maxSize)
		if !isDefined(childKnown.Width) {
			childKnown.Width = math.Max(maybeClamp(innerWidth-marginH, item.minSize.Width, item.maxSize.Width), 0)
		}
		mt, mb := or(item.margin.Top, 0), or(item.margin.Bottom, 0)

		if in.runMode == RunComputeSize {
			h := t.measureChildSize(item.id, childKnown, inner, childAvailable, SizingInherent, Vertical)
			y += mt + h + mb
			continue
		}

		out := t.performChildLayout(item.id, childKnown, inner, childAvailable, SizingInherent)
		size := out.Size

		ml, mr := or(item.margin.Left, 0), or(item.margin.Right, 0)
		free := math.Max(innerWidth-size.Width-ml-mr, 0)
		switch {
		case item.marginAuto.Left && item.marginAuto.Right:
			ml, mr = free/2, free/2
		case item.marginAuto.Left:
			ml = free
		case item.marginAuto.Right:
			mr = free
		}

		childStyle := &t.n(item.id).style
		offset := relativeOffset(childStyle, inner)
		location := Point{X: inset.Left + ml + offset.X, Y: y + mt + offset.Y}
		t.setUnroundedLayout(item.id, Layout{
			Order:         uint32(item.order),
			Location:      location,
			Size:          size,
			ContentSize:   out.ContentSize,
			ScrollbarSize: childStyle.scrollbarGutter(),
			Border:        childStyle.Border.resolveOrZero(innerWidth),
			Padding:       childStyle.Padding.resolveOrZero(innerWidth),
			Margin:        Insets{Top: mt, Right: mr, Bottom: mb, Left: ml},
		})
		contentSize = sizeMax(contentSize, contentContribution(location, size, out.ContentSize, childStyle))
		y += mt + size.Height + mb
	}

	height := known.Height
	if !isDefined(height) {
		height = math.Max(maybeClamp(y+inset.Bottom, minSize.Height, maxSize.Height), pbSize.Height)
	}
	size := Size{Width: width, Height: height}

	if in.runMode == RunComputeSize {
		return sizeOutput(size)
	}

	abs := t.layoutAbsoluteChildren(id, size, inset, nil)
	contentSize = sizeMax(contentSize, abs)
	t.layoutHiddenChildren(id)

	contentSize.Width += padding.Right
	contentSize.Height = math.Max(contentSize.Height, y) + padding.Bottom
	return layoutOutput{Size: size, ContentSize: contentSize, FirstBaselines: nonePoint()}
}

// blockItems collects in-flow children with sizes resolved against the
// container's content box.
func (t *Tree) blockItems(id NodeID, inner Size) []blockItem {
	children := t.n(id).children
	items := make([]blockItem, 0, len(children))
	for i, child := range children {
		s := &t.n(child).style
		if s.Display == DisplayNone || s.Position == PositionAbsolute {
			continue
		}
		aspect := s.aspectRatio()
		items = append(items, blockItem{
			id:         child,
			order:      i,
			size:       s.resolvedSize(inner).applyAspectRatio(aspect),
			minSize:    s.resolvedMinSize(inner).applyAspectRatio(aspect),
			maxSize:    s.resolvedMaxSize(inner).applyAspectRatio(aspect),
			margin:     s.Margin.resolve(inner.Width),
			marginAuto: s.Margin.autoSides(),
		})
	}
	return items
}

// blockContentWidth is the widest child under a min-content height
// constraint.
func (t *Tree) blockContentWidth(items []blockItem, available AvailableSpace) float64 {
	var widest float64
	for i := range items {
		item := &items[i]
		known := item.size.maybeClamp(item.minSize, item.maxSize)
		marginH := or(item.margin.Left, 0) + or(item.margin.Right, 0)
		w := t.measureChildSize(item.id, known, noneSize(),
			AvailableSize{Width: available.maybeSub(marginH), Height: MinContentSpace}, SizingInherent, Horizontal)
		widest = math.Max(widest, w+marginH)
	}
	return widest
}

// relativeOffset returns the nudge applied by the insets of a relatively
// positioned node: left wins over right, top over bottom.
func relativeOffset(s *Style, reference Size) Point {
	inset := s.Inset.resolveInset(reference)
	return Point{
		X: or(inset.Left, -or(inset.Right, 0)),
		Y: or(inset.Top, -or(inset.Bottom, 0)),
	}
}

// layoutHiddenChildren zeroes every display:none child of id.
func (t *Tree) layoutHiddenChildren(id NodeID) {
	for i, child := range t.n(id).children {
		if t.n(child).style.Display == DisplayNone {
			t.layoutHiddenChild(child, i)
		}
	}
}

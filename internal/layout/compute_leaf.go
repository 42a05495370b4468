package layout

import "math"

// computeLeafLayout sizes a node without children: its style size where
// known, otherwise its measured content plus padding and border.
func (t *Tree) computeLeafLayout(id NodeID, in layoutInput) layoutOutput {
	n := t.n(id)
	style := &n.style

	nodeSize, minSize, maxSize := in.known, noneSize(), noneSize()
	aspect := undefined
	if in.sizingMode == SizingInherent {
		aspect = style.aspectRatio()
		styleSize := style.resolvedSize(in.parentSize).applyAspectRatio(aspect)
		minSize = style.resolvedMinSize(in.parentSize).applyAspectRatio(aspect)
		maxSize = style.resolvedMaxSize(in.parentSize)
		nodeSize = in.known.Or(styleSize)
	}

	margin := style.Margin.resolveOrZero(in.parentSize.Width)
	padding := style.Padding.resolveOrZero(in.parentSize.Width)
	border := style.Border.resolveOrZero(in.parentSize.Width)
	pbSize := padding.Add(border).sumAxes()
	inset := style.contentBoxInset(in.parentSize.Width)

	if in.runMode == RunComputeSize && isDefined(nodeSize.Width) && isDefined(nodeSize.Height) {
		return sizeOutput(nodeSize.maybeClamp(minSize, maxSize).maybeMax(pbSize))
	}

	available := AvailableSize{
		Width: leafAvailableSpace(in.available.Width, in.known.Width, nodeSize.Width,
			minSize.Width, maxSize.Width, margin.Horizontal(), inset.Horizontal()),
		Height: leafAvailableSpace(in.available.Height, in.known.Height, nodeSize.Height,
			minSize.Height, maxSize.Height, margin.Vertical(), inset.Vertical()),
	}

	var measured Size
	if n.measure != nil {
		known := in.known.Or(nodeSize).maybeSub(inset.sumAxes())
		measured = sanitizeMeasured(n.measure.Measure(known, available))
	}

	size := nodeSize.Or(measured.add(inset.sumAxes())).maybeClamp(minSize, maxSize)
	if isDefined(aspect) {
		size.Height = math.Max(size.Height, size.Width/aspect)
	}
	size = size.maybeMax(pbSize)

	return layoutOutput{
		Size:           size,
		ContentSize:    measured.add(padding.sumAxes()),
		FirstBaselines: nonePoint(),
	}
}

// leafAvailableSpace narrows the parent's offer to the content box of the
// leaf along one axis.
func leafAvailableSpace(space AvailableSpace, known, nodeSize, min, max, margin, inset float64) AvailableSpace {
	if isDefined(known) {
		space = Definite(known)
	}
	space = space.maybeSub(margin).maybeSet(known).maybeSet(nodeSize)
	return space.mapDefinite(func(v float64) float64 {
		return math.Max(maybeClamp(v, min, max)-inset, 0)
	})
}

// sanitizeMeasured maps NaN, infinite and negative measurements to zero.
func sanitizeMeasured(s Size) Size {
	fix := func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return 0
		}
		return v
	}
	return Size{Width: fix(s.Width), Height: fix(s.Height)}
}

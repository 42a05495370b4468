package layout

import "math"

// gridItem is an in-flow grid child during a grid pass.
type gridItem struct {
	id          NodeID
	order       int
	area        [2]lineSpan // Indexed by AbsoluteAxis
	margin      Insets      // Auto margins count as zero
	crossesFlex [2]bool

	minContentSize [2]float64 // Memoized contributions, NaN until measured
	maxContentSize [2]float64
}

// gridState carries one grid container through placement, track sizing
// and item alignment. Per-axis arrays are indexed by AbsoluteAxis:
// columns are Horizontal and rows Vertical.
type gridState struct {
	t     *Tree
	style *Style
	items []gridItem

	tracks      [2][]gridTrack
	negImplicit [2]int
	explicit    [2]int
	origin      [2]float64 // Content-box start within the border box

	gap       Size
	inner     Size          // Content-box size, NaN while indefinite
	available AvailableSize // Content-box space for intrinsic sizing
	minInner  Size
	maxInner  Size

	contentAlign [2]AlignContent // justify-content, align-content
}

// computeGridLayout runs CSS grid layout on the children of id.
func (t *Tree) computeGridLayout(id NodeID, in layoutInput) layoutOutput {
	style := &t.n(id).style
	known, minSize, maxSize := containerSizeFromStyle(style, in)
	if in.runMode == RunComputeSize && isDefined(known.Width) && isDefined(known.Height) {
		return sizeOutput(known)
	}

	margin := style.Margin.resolveOrZero(in.parentSize.Width)
	padding := style.Padding.resolveOrZero(in.parentSize.Width)
	border := style.Border.resolveOrZero(in.parentSize.Width)
	pbSize := padding.Add(border).sumAxes()
	inset := style.contentBoxInset(in.parentSize.Width)
	insetSize := inset.sumAxes()

	g := &gridState{
		t:            t,
		style:        style,
		explicit:     [2]int{len(style.GridTemplateColumns), len(style.GridTemplateRows)},
		origin:       [2]float64{inset.Left, inset.Top},
		inner:        known.maybeSub(insetSize),
		minInner:     minSize.maybeSub(insetSize),
		maxInner:     maxSize.maybeSub(insetSize),
		contentAlign: [2]AlignContent{style.JustifyContent, style.AlignContent},
	}
	space := func(axis AbsoluteAxis) AvailableSpace {
		if v := g.inner.Get(axis); isDefined(v) {
			return Definite(v)
		}
		return in.available.Get(axis).
			maybeSub(margin.sumAxes().Get(axis)).
			maybeSub(insetSize.Get(axis)).
			maybeClamp(g.minInner.Get(axis), g.maxInner.Get(axis)).
			mapDefinite(func(v float64) float64 { return math.Max(v, 0) })
	}
	g.available = AvailableSize{Width: space(Horizontal), Height: space(Vertical)}
	g.gap = Size{
		Width:  style.ColumnGap.ResolveOrZero(or(g.inner.Width, 0)),
		Height: style.RowGap.ResolveOrZero(or(g.inner.Height, 0)),
	}

	placed, cells := t.placeGridItems(id, style)
	templates := [2][]TrackSizing{style.GridTemplateColumns, style.GridTemplateRows}
	autos := [2][]TrackSizing{style.GridAutoColumns, style.GridAutoRows}
	for axis := range 2 {
		g.negImplicit[axis] = -cells.lo[axis]
		g.tracks[axis] = buildTracks(templates[axis], autos[axis], -cells.lo[axis],
			cells.hi[axis]-g.explicit[axis], g.inner.Get(AbsoluteAxis(axis)))
	}
	g.items = make([]gridItem, len(placed))
	for i, p := range placed {
		it := gridItem{
			id:             p.id,
			order:          p.order,
			area:           p.area,
			margin:         t.n(p.id).style.Margin.resolveOrZero(g.inner.Width),
			minContentSize: [2]float64{undefined, undefined},
			maxContentSize: [2]float64{undefined, undefined},
		}
		for axis := range 2 {
			for _, tr := range g.spanned(&it, AbsoluteAxis(axis)) {
				it.crossesFlex[axis] = it.crossesFlex[axis] || tr.isFlexible()
			}
		}
		g.items[i] = it
	}

	// Columns first so that rows can measure items at their final width.
	g.sizeTracks(Horizontal)
	width := known.Width
	if !isDefined(width) {
		cols := g.tracks[Horizontal]
		width = sumBase(cols) + gapSum(g.gap.Width, len(cols)) + insetSize.Width
		width = math.Max(maybeClamp(width, minSize.Width, maxSize.Width), pbSize.Width)
	}
	g.inner.Width = math.Max(width-insetSize.Width, 0)

	g.sizeTracks(Vertical)
	height := known.Height
	if !isDefined(height) {
		rows := g.tracks[Vertical]
		height = sumBase(rows) + gapSum(g.gap.Height, len(rows)) + insetSize.Height
		height = math.Max(maybeClamp(height, minSize.Height, maxSize.Height), pbSize.Height)
	}
	g.inner.Height = math.Max(height-insetSize.Height, 0)

	size := Size{Width: width, Height: height}
	if in.runMode == RunComputeSize {
		return sizeOutput(size)
	}

	g.trackOffsets(Horizontal)
	g.trackOffsets(Vertical)

	var contentSize Size
	baselines := nonePoint()
	first := -1
	var firstBaseline float64
	for i := range g.items {
		it := &g.items[i]
		x0, x1 := g.areaBounds(Horizontal, it.area[Horizontal])
		y0, y1 := g.areaBounds(Vertical, it.area[Vertical])
		out, l := g.layoutItem(it, Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0})
		cs := &t.n(it.id).style
		contentSize = sizeMax(contentSize, contentContribution(l.Location, l.Size, out.ContentSize, cs))

		// The first baseline comes from the first row: its first
		// baseline-aligned item, else its first item.
		if first < 0 || g.precedesForBaseline(it, &g.items[first]) {
			first = i
			firstBaseline = l.Location.Y + or(out.FirstBaselines.Y, l.Size.Height)
		}
	}
	if first >= 0 {
		baselines.Y = firstBaseline
	}

	area := func(child NodeID) (Point, Size, bool) {
		return g.absoluteArea(child)
	}
	abs := t.layoutAbsoluteChildren(id, size, inset, area)
	contentSize = sizeMax(contentSize, abs)
	t.layoutHiddenChildren(id)
	contentSize.Width += padding.Right
	contentSize.Height += padding.Bottom

	return layoutOutput{Size: size, ContentSize: contentSize, FirstBaselines: baselines}
}

func (g *gridState) isBaselineItem(it *gridItem) bool {
	s := &g.t.n(it.id).style
	return s.AlignSelf == AlignBaseline || (s.AlignSelf == AlignAuto && g.style.AlignItems == AlignBaseline)
}

// precedesForBaseline reports whether a should provide the grid's first
// baseline instead of b, which comes earlier in document order.
func (g *gridState) precedesForBaseline(a, b *gridItem) bool {
	ra, rb := a.area[Vertical].start, b.area[Vertical].start
	if ra != rb {
		return ra < rb
	}
	return g.isBaselineItem(a) && !g.isBaselineItem(b)
}

// trackOffsets positions the tracks of axis per the container's content
// alignment.
func (g *gridState) trackOffsets(axis AbsoluteAxis) {
	tracks := g.tracks[axis]
	gap := g.gap.Get(axis)
	n := len(tracks)
	free := g.inner.Get(axis) - sumBase(tracks) - gapSum(gap, n)
	mode := g.contentAlign[axis]
	for i := range tracks {
		if i == 0 {
			tracks[i].offset = g.origin[axis] + alignmentOffset(free, n, gap, mode, false, true)
			continue
		}
		prev := &tracks[i-1]
		tracks[i].offset = prev.offset + prev.base + alignmentOffset(free, n, gap, mode, false, false)
	}
}

// linePos returns the position of an origin-zero grid line. leading picks
// the start of the track after the line; otherwise the end of the track
// before it, which differs when gaps or distributed space separate them.
// Lines beyond the grid clamp to its edges.
func (g *gridState) linePos(axis AbsoluteAxis, line int, leading bool) float64 {
	tracks := g.tracks[axis]
	if len(tracks) == 0 {
		return g.origin[axis]
	}
	idx := min(max(line+g.negImplicit[axis], 0), len(tracks))
	if idx == 0 || (leading && idx < len(tracks)) {
		return tracks[idx].offset
	}
	prev := &tracks[idx-1]
	return prev.offset + prev.base
}

func (g *gridState) areaBounds(axis AbsoluteAxis, span lineSpan) (float64, float64) {
	return g.linePos(axis, span.start, true), g.linePos(axis, span.end, false)
}

// areaSize is the size of an item's grid area along axis, gaps included.
func (g *gridState) areaSize(it *gridItem, axis AbsoluteAxis) float64 {
	spanned := g.spanned(it, axis)
	return sumBase(spanned) + gapSum(g.gap.Get(axis), len(spanned))
}

// absoluteArea returns the containing block of an absolutely positioned
// child. Axes with a definite line use the grid lines; the others span the
// content box.
func (g *gridState) absoluteArea(child NodeID) (Point, Size, bool) {
	s := &g.t.n(child).style
	placements := [2]GridPlacement{s.GridColumn, s.GridRow}
	if placements[Horizontal].IsAuto() && placements[Vertical].IsAuto() {
		return Point{}, Size{}, false
	}
	var lo, hi [2]float64
	for axis, p := range placements {
		a := AbsoluteAxis(axis)
		lo[axis] = g.origin[axis]
		hi[axis] = g.origin[axis] + g.inner.Get(a)
		if p.IsAuto() {
			continue
		}
		r := p.Resolve(g.explicit[axis])
		if p.Start != 0 {
			lo[axis] = g.linePos(a, r.Start, true)
		}
		if p.End != 0 {
			hi[axis] = g.linePos(a, r.End, false)
		}
	}
	return Point{X: lo[0], Y: lo[1]},
		Size{Width: math.Max(hi[0]-lo[0], 0), Height: math.Max(hi[1]-lo[1], 0)}, true
}

// contribution measures an item's outer size along axis under space. When
// sizing rows the item is measured at its column area's width.
func (g *gridState) contribution(it *gridItem, axis AbsoluteAxis, space AvailableSpace) float64 {
	known := noneSize()
	available := AvailableSize{Width: MaxContentSpace, Height: MaxContentSpace}
	if axis == Vertical {
		s := &g.t.n(it.id).style
		w := math.Max(g.areaSize(it, Horizontal)-it.margin.Horizontal(), 0)
		available.Width = Definite(w)
		if s.Width.IsAuto() && !s.Margin.Left.IsAuto() && !s.Margin.Right.IsAuto() &&
			gridSelfAlignment(s.JustifySelf, g.style.JustifyItems, false) == AlignStretch {
			known.Width = w
		}
	}
	available = available.With(axis, space)
	return g.t.measureChildSize(it.id, known, g.inner, available, SizingInherent, axis) + it.margin.sumAxes().Get(axis)
}

func (g *gridState) minContent(it *gridItem, axis AbsoluteAxis) float64 {
	if !isDefined(it.minContentSize[axis]) {
		it.minContentSize[axis] = g.contribution(it, axis, MinContentSpace)
	}
	return it.minContentSize[axis]
}

func (g *gridState) maxContent(it *gridItem, axis AbsoluteAxis) float64 {
	if !isDefined(it.maxContentSize[axis]) {
		it.maxContentSize[axis] = g.contribution(it, axis, MaxContentSpace)
	}
	return it.maxContentSize[axis]
}

// minimumContribution is the outer size of an item at its used minimum
// size. An auto minimum is content based when the item spans a track with
// an auto minimum, capped by the tracks' fixed maximums.
func (g *gridState) minimumContribution(it *gridItem, axis AbsoluteAxis) float64 {
	s := &g.t.n(it.id).style
	if isDefined(s.resolvedSize(g.inner).Get(axis)) {
		return g.minContent(it, axis)
	}
	margin := it.margin.sumAxes().Get(axis)
	pb := s.Padding.resolveOrZero(g.inner.Width).Add(s.Border.resolveOrZero(g.inner.Width)).sumAxes().Get(axis)
	if v := s.resolvedMinSize(g.inner).Get(axis); isDefined(v) {
		return math.Max(v, pb) + margin
	}
	if s.overflow(axis).isScrollContainer() {
		return pb + margin
	}

	spanned := g.spanned(it, axis)
	autoMin, fixedMax := false, true
	limit := gapSum(g.gap.Get(axis), len(spanned))
	for i := range spanned {
		tr := &spanned[i]
		autoMin = autoMin || tr.min.Unit == UnitAuto
		if tr.max.Unit == UnitLength {
			limit += tr.max.Value
		} else {
			fixedMax = false
		}
	}
	if !autoMin || (len(spanned) > 1 && it.crossesFlex[axis]) {
		return pb + margin
	}
	c := g.minContent(it, axis)
	if fixedMax {
		c = math.Min(c, limit+margin)
	}
	return math.Max(c, pb+margin)
}

// gridSelfAlignment resolves justify-self or align-self. Without an
// explicit value, items with a definite size or an aspect ratio align to
// the start and others stretch.
func gridSelfAlignment(self, items AlignItems, sized bool) AlignItems {
	if self == AlignAuto {
		self = items
	}
	if self == AlignAuto {
		if sized {
			return AlignStart
		}
		return AlignStretch
	}
	return self
}

// layoutItem sizes an item within its grid area, aligns it and stores its
// layout.
func (g *gridState) layoutItem(it *gridItem, area Rect) (layoutOutput, Layout) {
	t := g.t
	s := &t.n(it.id).style
	areaSize := Size{Width: area.Width, Height: area.Height}
	aspect := s.aspectRatio()

	margin := s.Margin.resolve(area.Width)
	padding := s.Padding.resolveOrZero(area.Width)
	border := s.Border.resolveOrZero(area.Width)
	pbSize := padding.Add(border).sumAxes()
	pos := s.Inset.resolveInset(areaSize)

	inherent := s.resolvedSize(areaSize).applyAspectRatio(aspect)
	minSize := s.resolvedMinSize(areaSize).applyAspectRatio(aspect).Or(pbSize).maybeMax(pbSize)
	maxSize := s.resolvedMaxSize(areaSize)

	justify := gridSelfAlignment(s.JustifySelf, g.style.JustifyItems, isDefined(inherent.Width))
	align := gridSelfAlignment(s.AlignSelf, g.style.AlignItems, isDefined(inherent.Height) || isDefined(aspect))

	known := inherent
	if !isDefined(known.Width) && justify == AlignStretch && isDefined(margin.Left) && isDefined(margin.Right) {
		known.Width = math.Max(area.Width-margin.Left-margin.Right, 0)
	}
	if !isDefined(known.Height) && isDefined(aspect) && isDefined(known.Width) {
		known.Height = known.Width / aspect
	}
	if !isDefined(known.Height) && align == AlignStretch && isDefined(margin.Top) && isDefined(margin.Bottom) {
		known.Height = math.Max(area.Height-margin.Top-margin.Bottom, 0)
	}
	known = known.maybeClamp(minSize, maxSize)

	available := AvailableSize{
		Width:  Definite(math.Max(area.Width-or(margin.Left, 0)-or(margin.Right, 0), 0)),
		Height: Definite(math.Max(area.Height-or(margin.Top, 0)-or(margin.Bottom, 0), 0)),
	}
	out := t.performChildLayout(it.id, known, areaSize, available, SizingInherent)
	size := out.Size

	x, ml, mr := alignInArea(area.X, area.Width, justify, size.Width, margin.Left, margin.Right, pos.Left, pos.Right)
	y, mt, mb := alignInArea(area.Y, area.Height, align, size.Height, margin.Top, margin.Bottom, pos.Top, pos.Bottom)

	l := Layout{
		Order:         uint32(it.order),
		Location:      Point{X: x, Y: y},
		Size:          size,
		ContentSize:   out.ContentSize,
		ScrollbarSize: s.scrollbarGutter(),
		Border:        border,
		Padding:       padding,
		Margin:        Insets{Top: mt, Right: mr, Bottom: mb, Left: ml},
	}
	t.setUnroundedLayout(it.id, l)
	return out, l
}

// alignInArea places an item of size within [start, start+length) along
// one axis. Auto margins (NaN) share the free space; a relative inset is
// applied last. It returns the position and the used margins.
func alignInArea(start, length float64, mode AlignItems, size, marginStart, marginEnd, insetStart, insetEnd float64) (float64, float64, float64) {
	free := math.Max(length-size-or(marginStart, 0)-or(marginEnd, 0), 0)
	autos := b2i(!isDefined(marginStart)) + b2i(!isDefined(marginEnd))
	var autoSize float64
	if autos > 0 {
		autoSize = free / float64(autos)
	}
	ms, me := or(marginStart, autoSize), or(marginEnd, autoSize)

	var offset float64
	switch mode {
	case AlignEnd, AlignFlexEnd:
		offset = length - size - me
	case AlignCenter:
		offset = (length - size + ms - me) / 2
	default:
		offset = ms
	}
	return start + offset + or(insetStart, -or(insetEnd, 0)), ms, me
}

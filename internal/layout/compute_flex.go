package layout

import "math"

// flexItem holds the per-child state of a flexbox pass.
type flexItem struct {
	id    NodeID
	order int

	size       Size
	minSize    Size
	maxSize    Size
	basisStyle Dimension
	inset      Insets // NaN where auto
	margin     Insets
	marginAuto autoEdges
	padding    Insets
	border     Insets
	alignSelf  AlignItems
	overflow   [2]Overflow
	flexGrow   float64
	flexShrink float64

	flexBasis       float64
	innerFlexBasis  float64
	violation       float64
	frozen          bool
	resolvedMinMain float64

	hypotheticalInner Size
	hypotheticalOuter Size
	target            Size
	outerTarget       Size

	baseline    float64
	offsetMain  float64
	offsetCross float64
}

// flexLine is a run of items sharing a cross-axis band. items aliases the
// container's item slice.
type flexLine struct {
	items       []flexItem
	crossSize   float64
	offsetCross float64
}

// flexConstants are the container values shared by every step.
type flexConstants struct {
	dir           FlexDirection
	isRow         bool
	isWrap        bool
	isWrapReverse bool

	margin  Insets
	border  Insets
	padding Insets
	inset   Insets // padding + border + scrollbar gutter
	gap     Size   // Width is column-gap, Height is row-gap

	alignItems     AlignItems
	alignContent   AlignContent
	justifyContent AlignContent

	nodeOuter      Size // Border-box size, NaN where not yet known
	nodeInner      Size // Content-box size, NaN where not yet known
	container      Size
	innerContainer Size

	minSize Size
	maxSize Size
}

func (d FlexDirection) mainAxis() AbsoluteAxis {
	if d.IsRow() {
		return Horizontal
	}
	return Vertical
}

func (d FlexDirection) crossAxis() AbsoluteAxis {
	return d.mainAxis().Other()
}

func (c *flexConstants) mainGap() float64 {
	return c.gap.main(c.dir)
}

func (c *flexConstants) crossGap() float64 {
	return c.gap.cross(c.dir)
}

// computeFlexLayout runs the CSS flexbox algorithm on the children of id.
func (t *Tree) computeFlexLayout(id NodeID, in layoutInput) layoutOutput {
	style := &t.n(id).style
	known, minSize, maxSize := containerSizeFromStyle(style, in)
	if in.runMode == RunComputeSize && isDefined(known.Width) && isDefined(known.Height) {
		return sizeOutput(known)
	}
	in.known = known
	return t.computeFlexInner(id, in, minSize, maxSize)
}

func (t *Tree) computeFlexInner(id NodeID, in layoutInput, minSize, maxSize Size) layoutOutput {
	style := &t.n(id).style
	c := newFlexConstants(style, in, minSize, maxSize)
	dir := c.dir

	// Initial setup: collect in-flow children.
	items := t.flexItems(id, &c)

	// Line length determination.
	available := flexAvailableSpace(in, &c)
	t.flexBaseSizes(&c, available, items)
	lines := collectFlexLines(&c, available, items)

	// Main size determination.
	if innerMain := c.nodeInner.main(dir); isDefined(innerMain) {
		c.innerContainer.setMain(dir, innerMain)
		c.container.setMain(dir, innerMain+c.inset.mainSum(dir))
	} else {
		t.flexContainerMainSize(&c, available, lines)
		c.nodeInner.setMain(dir, c.innerContainer.main(dir))
		c.nodeOuter.setMain(dir, c.container.main(dir))
		gap := style.RowGap
		if dir.IsRow() {
			gap = style.ColumnGap
		}
		c.gap.setMain(dir, gap.ResolveOrZero(c.innerContainer.main(dir)))
	}
	for i := range lines {
		resolveFlexibleLengths(&lines[i], &c)
	}

	// Cross size determination.
	for i := range lines {
		t.hypotheticalCrossSizes(&lines[i], &c, available)
	}
	t.flexBaselines(&c, in.known, available, lines)
	lineCrossSizes(lines, in.known, &c)
	alignContentStretch(lines, in.known, &c)
	t.usedCrossSizes(lines, &c)

	// Main and cross axis alignment.
	distributeFreeSpace(lines, &c)
	resolveCrossAutoMargins(lines, &c)
	totalLineCross := containerCrossSize(lines, in.known, &c)

	if in.runMode == RunComputeSize {
		return sizeOutput(c.container)
	}

	alignFlexLines(lines, &c, totalLineCross)
	contentSize := t.flexFinalPass(lines, &c)

	abs := t.layoutAbsoluteChildren(id, c.container, c.inset, nil)
	contentSize = sizeMax(contentSize, abs)
	t.layoutHiddenChildren(id)
	contentSize.Width += c.padding.Right
	contentSize.Height += c.padding.Bottom

	baselines := nonePoint()
	if len(lines) > 0 && len(lines[0].items) > 0 {
		first := &lines[0].items[0]
		for i := range lines[0].items {
			if !c.isRow || lines[0].items[i].alignSelf == AlignBaseline {
				first = &lines[0].items[i]
				break
			}
		}
		baselines.Y = first.baseline
	}
	return layoutOutput{Size: c.container, ContentSize: contentSize, FirstBaselines: baselines}
}

func newFlexConstants(style *Style, in layoutInput, minSize, maxSize Size) flexConstants {
	c := flexConstants{
		dir:           style.FlexDirection,
		isRow:         style.FlexDirection.IsRow(),
		isWrap:        style.FlexWrap != NoWrap,
		isWrapReverse: style.FlexWrap == WrapReverse,

		margin:  style.Margin.resolveOrZero(in.parentSize.Width),
		border:  style.Border.resolveOrZero(in.parentSize.Width),
		padding: style.Padding.resolveOrZero(in.parentSize.Width),
		inset:   style.contentBoxInset(in.parentSize.Width),

		alignItems:     style.AlignItems,
		alignContent:   style.AlignContent,
		justifyContent: style.JustifyContent,

		nodeOuter: in.known,
		minSize:   minSize,
		maxSize:   maxSize,
	}
	if c.alignItems == AlignAuto {
		c.alignItems = AlignStretch
	}
	if c.alignContent == ContentAuto {
		c.alignContent = ContentStretch
	}
	if c.justifyContent == ContentAuto {
		c.justifyContent = ContentFlexStart
	}
	c.nodeInner = c.nodeOuter.maybeSub(c.inset.sumAxes())
	c.gap = Size{
		Width:  style.ColumnGap.ResolveOrZero(or(c.nodeInner.Width, 0)),
		Height: style.RowGap.ResolveOrZero(or(c.nodeInner.Height, 0)),
	}
	return c
}

// flexItems builds an item per in-flow child. Absolutely positioned and
// display:none children are laid out separately.
func (t *Tree) flexItems(id NodeID, c *flexConstants) []flexItem {
	children := t.n(id).children
	items := make([]flexItem, 0, len(children))
	for i, child := range children {
		s := &t.n(child).style
		if s.Position == PositionAbsolute || s.Display == DisplayNone {
			continue
		}
		aspect := s.aspectRatio()
		alignSelf := s.AlignSelf
		if alignSelf == AlignAuto {
			alignSelf = c.alignItems
		}
		items = append(items, flexItem{
			id:         child,
			order:      i,
			size:       s.resolvedSize(c.nodeInner).applyAspectRatio(aspect),
			minSize:    s.resolvedMinSize(c.nodeInner).applyAspectRatio(aspect),
			maxSize:    s.resolvedMaxSize(c.nodeInner).applyAspectRatio(aspect),
			basisStyle: s.FlexBasis,
			inset:      s.Inset.resolveInset(c.nodeInner),
			margin:     s.Margin.resolveOrZero(c.nodeInner.Width),
			marginAuto: s.Margin.autoSides(),
			padding:    s.Padding.resolveOrZero(c.nodeInner.Width),
			border:     s.Border.resolveOrZero(c.nodeInner.Width),
			alignSelf:  alignSelf,
			overflow:   [2]Overflow{s.OverflowX, s.OverflowY},
			flexGrow:   s.FlexGrow,
			flexShrink: s.FlexShrink,
		})
	}
	return items
}

// flexAvailableSpace is the content-box space offered to the items.
func flexAvailableSpace(in layoutInput, c *flexConstants) AvailableSize {
	axis := func(known float64, outer AvailableSpace, margin, inset float64) AvailableSpace {
		if isDefined(known) {
			return Definite(known - inset)
		}
		return outer.maybeSub(margin).maybeSub(inset)
	}
	return AvailableSize{
		Width:  axis(in.known.Width, in.available.Width, c.margin.Horizontal(), c.inset.Horizontal()),
		Height: axis(in.known.Height, in.available.Height, c.margin.Vertical(), c.inset.Vertical()),
	}
}

// crossSpaceFor returns the cross-axis space and known dimensions used when
// measuring an item.
func (c *flexConstants) crossSpaceFor(item *flexItem, available AvailableSize) (AvailableSpace, Size) {
	dir := c.dir
	crossParent := c.nodeInner.cross(dir)
	marginCross := item.margin.crossSum(dir)
	crossSpace := available.cross(dir).
		mapDefinite(func(v float64) float64 { return or(crossParent, v) }).
		maybeClamp(maybeAdd(item.minSize.cross(dir), marginCross), maybeAdd(item.maxSize.cross(dir), marginCross))

	known := item.size
	known.setMain(dir, undefined)
	if item.alignSelf == AlignStretch && !isDefined(known.cross(dir)) {
		known.setCross(dir, crossSpace.Option()-marginCross)
	}
	return crossSpace, known
}

// flexBaseSizes determines each item's flex base size, hypothetical main
// size and automatic minimum main size.
func (t *Tree) flexBaseSizes(c *flexConstants, available AvailableSize, items []flexItem) {
	dir := c.dir
	mainAxis := dir.mainAxis()
	for i := range items {
		item := &items[i]
		crossSpace, childKnown := c.crossSpaceFor(item, available)
		parentSize := noneSize()
		parentSize.setCross(dir, c.nodeInner.cross(dir))

		basis := or(item.basisStyle.Resolve(c.nodeInner.main(dir)), item.size.main(dir))
		if !isDefined(basis) {
			mainSpace := MaxContentSpace
			if available.main(dir).Kind == SpaceMinContent {
				mainSpace = MinContentSpace
			}
			var space AvailableSize
			space.setMain(dir, mainSpace)
			space.setCross(dir, crossSpace)
			basis = t.measureChildSize(item.id, childKnown, parentSize, space, SizingContent, mainAxis)
		}

		pbMain := item.padding.mainSum(dir) + item.border.mainSum(dir)
		item.flexBasis = math.Max(basis, pbMain)
		item.innerFlexBasis = item.flexBasis - pbMain

		pbSize := item.padding.Add(item.border).sumAxes()
		hypotheticalMin := item.minSize.maybeMax(pbSize).main(dir)
		hypothetical := maybeClamp(item.flexBasis, hypotheticalMin, item.maxSize.main(dir))
		item.hypotheticalInner.setMain(dir, hypothetical)
		item.hypotheticalOuter.setMain(dir, hypothetical+item.margin.mainSum(dir))

		minMain := item.minSize.main(dir)
		if !isDefined(minMain) && item.overflow[mainAxis].isScrollContainer() {
			minMain = 0
		}
		if isDefined(minMain) {
			item.resolvedMinMain = minMain
			continue
		}
		// Automatic minimum size: the min-content size, capped by the
		// specified and maximum sizes.
		var space AvailableSize
		space.setMain(dir, MinContentSpace)
		space.setCross(dir, crossSpace)
		minContent := t.measureChildSize(item.id, childKnown, parentSize, space, SizingContent, mainAxis)
		minContent = maybeMin(maybeMin(minContent, item.size.main(dir)), item.maxSize.main(dir))
		item.resolvedMinMain = math.Max(minContent, pbSize.main(dir))
	}
}

// collectFlexLines partitions items into lines.
func collectFlexLines(c *flexConstants, available AvailableSize, items []flexItem) []flexLine {
	if len(items) == 0 {
		return nil
	}
	if !c.isWrap {
		return []flexLine{{items: items}}
	}
	mainSpace := available.main(c.dir)
	switch mainSpace.Kind {
	case SpaceMaxContent:
		return []flexLine{{items: items}}
	case SpaceMinContent:
		lines := make([]flexLine, len(items))
		for i := range items {
			lines[i] = flexLine{items: items[i : i+1]}
		}
		return lines
	}

	var lines []flexLine
	gap := c.mainGap()
	for start := 0; start < len(items); {
		length := 0.0
		end := start
		for end < len(items) {
			next := items[end].hypotheticalOuter.main(c.dir)
			if end > start {
				next += gap
			}
			if end > start && length+next > mainSpace.Value {
				break
			}
			length += next
			end++
		}
		lines = append(lines, flexLine{items: items[start:end]})
		start = end
	}
	return lines
}

// flexContainerMainSize sizes the container's main axis from its content.
func (t *Tree) flexContainerMainSize(c *flexConstants, available AvailableSize, lines []flexLine) {
	dir := c.dir
	mainSpace := available.main(dir)
	gap := c.mainGap()
	insetMain := c.inset.mainSum(dir)

	var outer float64
	if mainSpace.IsDefinite() {
		var longest float64
		for _, line := range lines {
			total := gapSum(gap, len(line.items))
			for i := range line.items {
				item := &line.items[i]
				pb := item.padding.mainSum(dir) + item.border.mainSum(dir)
				total += math.Max(maybeMax(item.flexBasis, item.minSize.main(dir))+item.margin.mainSum(dir), pb)
			}
			longest = math.Max(longest, total)
		}
		outer = longest + insetMain
		if len(lines) > 1 {
			outer = math.Max(outer, mainSpace.Value+insetMain)
		}
	} else {
		var longest float64
		for _, line := range lines {
			total := gapSum(gap, len(line.items))
			for i := range line.items {
				total += t.flexContentContribution(c, available, &line.items[i])
			}
			longest = math.Max(longest, total)
		}
		outer = longest + insetMain
	}

	pbMain := c.padding.mainSum(dir) + c.border.mainSum(dir)
	outer = math.Max(maybeClamp(outer, c.minSize.main(dir), c.maxSize.main(dir)), pbMain)
	c.container.setMain(dir, outer)
	c.innerContainer.setMain(dir, math.Max(outer-insetMain, 0))
}

// flexContentContribution is an item's outer min- or max-content
// contribution to an intrinsically sized container.
func (t *Tree) flexContentContribution(c *flexConstants, available AvailableSize, item *flexItem) float64 {
	dir := c.dir
	margin := item.margin.mainSum(dir)
	styleMin := item.minSize.main(dir)
	stylePref := item.size.main(dir)
	styleMax := item.maxSize.main(dir)

	clampingBasis := maybeMax(item.flexBasis, stylePref)
	minMain := item.resolvedMinMain
	if item.flexShrink == 0 {
		minMain = math.Max(minMain, clampingBasis)
	}
	minMain = maybeMax(minMain, styleMin)
	maxMain := math.Inf(1)
	if isDefined(styleMax) {
		maxMain = styleMax
	}
	if item.flexGrow == 0 {
		maxMain = math.Min(maxMain, clampingBasis)
	}

	switch {
	case isDefined(stylePref) && (maxMain <= minMain || maxMain <= stylePref):
		return math.Max(math.Min(stylePref, maxMain), minMain) + margin
	case maxMain <= minMain:
		return minMain + margin
	case item.overflow[dir.mainAxis()].isScrollContainer():
		return item.flexBasis + margin
	}

	crossSpace, childKnown := c.crossSpaceFor(item, available)
	space := available
	space.setCross(dir, crossSpace)
	content := t.measureChildSize(item.id, childKnown, c.nodeInner, space, SizingInherent, dir.mainAxis()) + margin
	if !c.isRow {
		content = math.Max(content, item.flexBasis)
	}
	return math.Max(maybeClamp(content, styleMin, styleMax), minMain)
}

// resolveFlexibleLengths grows or shrinks the items of a line to fill the
// container's inner main size, freezing items that hit their limits.
func resolveFlexibleLengths(line *flexLine, c *flexConstants) {
	dir := c.dir
	items := line.items
	totalGap := gapSum(c.mainGap(), len(items))
	innerMain := or(c.nodeInner.main(dir), 0)

	usedFlex := totalGap
	for i := range items {
		usedFlex += items[i].hypotheticalOuter.main(dir)
	}
	growing := usedFlex < innerMain
	shrinking := !growing

	// Size inflexible items.
	for i := range items {
		item := &items[i]
		hypothetical := item.hypotheticalInner.main(dir)
		item.target.setMain(dir, hypothetical)
		if (item.flexGrow == 0 && item.flexShrink == 0) ||
			(growing && item.flexBasis > hypothetical) ||
			(shrinking && item.flexBasis < hypothetical) {
			item.frozen = true
			item.outerTarget.setMain(dir, hypothetical+item.margin.mainSum(dir))
		}
	}

	usedSpace := func() float64 {
		used := totalGap
		for i := range items {
			item := &items[i]
			used += item.margin.mainSum(dir)
			if item.frozen {
				used += item.target.main(dir)
			} else {
				used += item.flexBasis
			}
		}
		return used
	}
	initialFree := innerMain - usedSpace()

	for {
		var unfrozen, sumGrow, sumShrink float64
		for i := range items {
			if !items[i].frozen {
				unfrozen++
				sumGrow += items[i].flexGrow
				sumShrink += items[i].flexShrink
			}
		}
		if unfrozen == 0 {
			break
		}

		free := innerMain - usedSpace()
		if growing && sumGrow < 1 {
			free = math.Min(free, initialFree*sumGrow)
		} else if shrinking && sumShrink < 1 {
			free = math.Max(free, initialFree*sumShrink)
		}

		if free != 0 && !math.IsInf(free, 0) && !math.IsNaN(free) {
			switch {
			case growing && sumGrow > 0:
				for i := range items {
					item := &items[i]
					if !item.frozen {
						item.target.setMain(dir, item.flexBasis+free*item.flexGrow/sumGrow)
					}
				}
			case shrinking && sumShrink > 0:
				var sumScaled float64
				for i := range items {
					if !items[i].frozen {
						sumScaled += items[i].innerFlexBasis * items[i].flexShrink
					}
				}
				if sumScaled > 0 {
					for i := range items {
						item := &items[i]
						if !item.frozen {
							scaled := item.innerFlexBasis * item.flexShrink
							item.target.setMain(dir, item.flexBasis+free*scaled/sumScaled)
						}
					}
				}
			}
		}

		// Clamp to min/max and record violations.
		var totalViolation float64
		for i := range items {
			item := &items[i]
			if item.frozen {
				continue
			}
			target := item.target.main(dir)
			clamped := math.Max(maybeClamp(target, item.resolvedMinMain, item.maxSize.main(dir)), 0)
			item.violation = clamped - target
			item.target.setMain(dir, clamped)
			item.outerTarget.setMain(dir, clamped+item.margin.mainSum(dir))
			totalViolation += item.violation
		}

		for i := range items {
			item := &items[i]
			if item.frozen {
				continue
			}
			switch {
			case totalViolation > 0:
				item.frozen = item.violation > 0
			case totalViolation < 0:
				item.frozen = item.violation < 0
			default:
				item.frozen = true
			}
		}
	}
}

// hypotheticalCrossSizes measures each item's cross size given its used
// main size.
func (t *Tree) hypotheticalCrossSizes(line *flexLine, c *flexConstants, available AvailableSize) {
	dir := c.dir
	for i := range line.items {
		item := &line.items[i]
		pbCross := item.padding.crossSum(dir) + item.border.crossSum(dir)
		minCross, maxCross := item.minSize.cross(dir), item.maxSize.cross(dir)

		cross := maybeMax(maybeClamp(item.size.cross(dir), minCross, maxCross), pbCross)
		if !isDefined(cross) {
			availCross := available.cross(dir).maybeClamp(minCross, maxCross)
			if availCross.IsDefinite() {
				availCross = Definite(math.Max(availCross.Value, pbCross))
			}
			known := noneSize()
			known.setMain(dir, item.target.main(dir))
			var space AvailableSize
			space.setMain(dir, Definite(c.container.main(dir)))
			space.setCross(dir, availCross)
			measured := t.measureChildSize(item.id, known, c.nodeInner, space, SizingContent, dir.crossAxis())
			cross = math.Max(maybeClamp(measured, minCross, maxCross), pbCross)
		}
		item.hypotheticalInner.setCross(dir, cross)
		item.hypotheticalOuter.setCross(dir, cross+item.margin.crossSum(dir))
	}
}

// flexBaselines lays out baseline-aligned items of row containers to find
// their first baselines. Lines with fewer than two such items skip this.
func (t *Tree) flexBaselines(c *flexConstants, nodeSize Size, available AvailableSize, lines []flexLine) {
	if !c.isRow {
		return
	}
	for _, line := range lines {
		count := 0
		for i := range line.items {
			if line.items[i].alignSelf == AlignBaseline {
				count++
			}
		}
		if count <= 1 {
			continue
		}
		for i := range line.items {
			item := &line.items[i]
			if item.alignSelf != AlignBaseline {
				continue
			}
			known := Size{Width: item.target.Width, Height: item.hypotheticalInner.Height}
			space := AvailableSize{
				Width:  Definite(c.container.Width),
				Height: available.Height.maybeSet(nodeSize.Height),
			}
			out := t.performChildLayout(item.id, known, c.nodeInner, space, SizingContent)
			item.baseline = or(out.FirstBaselines.Y, out.Size.Height) + item.margin.Top
		}
	}
}

// lineCrossSizes sets the cross size of every line.
func lineCrossSizes(lines []flexLine, nodeSize Size, c *flexConstants) {
	if len(lines) == 0 {
		return
	}
	dir := c.dir
	insetCross := c.inset.crossSum(dir)
	minCross, maxCross := c.minSize.cross(dir), c.maxSize.cross(dir)

	if !c.isWrap && isDefined(nodeSize.cross(dir)) {
		lines[0].crossSize = math.Max(maybeClamp(nodeSize.cross(dir), minCross, maxCross)-insetCross, 0)
		return
	}
	for li := range lines {
		line := &lines[li]
		var maxBaseline float64
		for i := range line.items {
			maxBaseline = math.Max(maxBaseline, line.items[i].baseline)
		}
		var size float64
		for i := range line.items {
			item := &line.items[i]
			outer := item.hypotheticalOuter.cross(dir)
			if item.alignSelf == AlignBaseline && !item.marginAuto.crossStart(dir) && !item.marginAuto.crossEnd(dir) {
				outer += maxBaseline - item.baseline
			}
			size = math.Max(size, outer)
		}
		line.crossSize = size
	}
	if !c.isWrap {
		lines[0].crossSize = maybeClamp(lines[0].crossSize, maybeSub(minCross, insetCross), maybeSub(maxCross, insetCross))
	}
}

// alignContentStretch grows lines to fill a definite container cross size.
func alignContentStretch(lines []flexLine, nodeSize Size, c *flexConstants) {
	if c.alignContent != ContentStretch || len(lines) == 0 {
		return
	}
	dir := c.dir
	minCross, maxCross := c.minSize.cross(dir), c.maxSize.cross(dir)
	containerMin := maybeClamp(or(nodeSize.cross(dir), minCross), minCross, maxCross)
	if !isDefined(containerMin) {
		return
	}
	containerMin = math.Max(containerMin-c.inset.crossSum(dir), 0)

	total := gapSum(c.crossGap(), len(lines))
	for i := range lines {
		total += lines[i].crossSize
	}
	if total < containerMin {
		extra := (containerMin - total) / float64(len(lines))
		for i := range lines {
			lines[i].crossSize += extra
		}
	}
}

// usedCrossSizes stretches items with an auto cross size to their line.
func (t *Tree) usedCrossSizes(lines []flexLine, c *flexConstants) {
	dir := c.dir
	for li := range lines {
		line := &lines[li]
		for i := range line.items {
			item := &line.items[i]
			s := &t.n(item.id).style
			cross := item.hypotheticalInner.cross(dir)
			if item.alignSelf == AlignStretch && !item.marginAuto.crossStart(dir) && !item.marginAuto.crossEnd(dir) &&
				s.sizeDimension(dir.crossAxis()).IsAuto() {
				// The max size here ignores the aspect ratio.
				maxCross := s.resolvedMaxSize(c.nodeInner).cross(dir)
				cross = maybeClamp(line.crossSize-item.margin.crossSum(dir), item.minSize.cross(dir), maxCross)
			}
			item.target.setCross(dir, cross)
			item.outerTarget.setCross(dir, cross+item.margin.crossSum(dir))
		}
	}
}

// distributeFreeSpace resolves main-axis auto margins, or applies
// justify-content when there are none.
func distributeFreeSpace(lines []flexLine, c *flexConstants) {
	dir := c.dir
	for li := range lines {
		items := lines[li].items
		used := gapSum(c.mainGap(), len(items))
		autoMargins := 0
		for i := range items {
			used += items[i].outerTarget.main(dir)
			if items[i].marginAuto.mainStart(dir) {
				autoMargins++
			}
			if items[i].marginAuto.mainEnd(dir) {
				autoMargins++
			}
		}
		free := c.innerContainer.main(dir) - used

		if free > 0 && autoMargins > 0 {
			m := free / float64(autoMargins)
			for i := range items {
				item := &items[i]
				if item.marginAuto.mainStart(dir) {
					if c.isRow {
						item.margin.Left = m
					} else {
						item.margin.Top = m
					}
				}
				if item.marginAuto.mainEnd(dir) {
					if c.isRow {
						item.margin.Right = m
					} else {
						item.margin.Bottom = m
					}
				}
			}
			continue
		}

		reverse := dir.IsReverse()
		n := len(items)
		for k := range n {
			i := k
			if reverse {
				i = n - 1 - k
			}
			items[i].offsetMain = alignmentOffset(free, n, c.mainGap(), c.justifyContent, reverse, k == 0)
		}
	}
}

// resolveCrossAutoMargins resolves cross-axis auto margins, or aligns
// items per align-self.
func resolveCrossAutoMargins(lines []flexLine, c *flexConstants) {
	dir := c.dir
	for li := range lines {
		line := &lines[li]
		var maxBaseline float64
		for i := range line.items {
			maxBaseline = math.Max(maxBaseline, line.items[i].baseline)
		}
		for i := range line.items {
			item := &line.items[i]
			free := line.crossSize - item.outerTarget.cross(dir)
			start, end := item.marginAuto.crossStart(dir), item.marginAuto.crossEnd(dir)
			switch {
			case start && end:
				if c.isRow {
					item.margin.Top, item.margin.Bottom = free/2, free/2
				} else {
					item.margin.Left, item.margin.Right = free/2, free/2
				}
			case start:
				if c.isRow {
					item.margin.Top = free
				} else {
					item.margin.Left = free
				}
			case end:
				if c.isRow {
					item.margin.Bottom = free
				} else {
					item.margin.Right = free
				}
			default:
				item.offsetCross = alignCrossOffset(item, free, maxBaseline, c)
			}
		}
	}
}

func alignCrossOffset(item *flexItem, free, maxBaseline float64, c *flexConstants) float64 {
	switch item.alignSelf {
	case AlignEnd:
		return free
	case AlignFlexEnd:
		if c.isWrapReverse {
			return 0
		}
		return free
	case AlignCenter:
		return free / 2
	case AlignBaseline:
		if c.isRow {
			return maxBaseline - item.baseline
		}
	case AlignStart:
		return 0
	}
	// flex-start, stretch and column baselines.
	if c.isWrapReverse {
		return free
	}
	return 0
}

// containerCrossSize sets the container's cross size and returns the sum of
// line cross sizes.
func containerCrossSize(lines []flexLine, nodeSize Size, c *flexConstants) float64 {
	dir := c.dir
	var total float64
	for i := range lines {
		total += lines[i].crossSize
	}
	insetCross := c.inset.crossSum(dir)
	gutter := insetCross - c.padding.crossSum(dir) - c.border.crossSum(dir)
	outer := or(nodeSize.cross(dir), total+gapSum(c.crossGap(), len(lines))+insetCross)
	outer = math.Max(maybeClamp(outer, c.minSize.cross(dir), c.maxSize.cross(dir)), insetCross-gutter)
	c.container.setCross(dir, outer)
	c.innerContainer.setCross(dir, math.Max(outer-insetCross, 0))
	return total
}

// alignFlexLines applies align-content to the lines.
func alignFlexLines(lines []flexLine, c *flexConstants, totalLineCross float64) {
	n := len(lines)
	gap := c.crossGap()
	free := c.innerContainer.cross(c.dir) - totalLineCross - gapSum(gap, n)
	for k := range n {
		i := k
		if c.isWrapReverse {
			i = n - 1 - k
		}
		lines[i].offsetCross = alignmentOffset(free, n, gap, c.alignContent, c.isWrapReverse, k == 0)
	}
}

// flexFinalPass lays out every item at its final size and position and
// returns the content size of the in-flow items.
func (t *Tree) flexFinalPass(lines []flexLine, c *flexConstants) Size {
	var contentSize Size
	crossOffset := c.inset.crossStart(c.dir)
	n := len(lines)
	for k := range n {
		li := k
		if c.isWrapReverse {
			li = n - 1 - k
		}
		line := &lines[li]
		mainOffset := c.inset.mainStart(c.dir)
		m := len(line.items)
		for j := range m {
			i := j
			if c.dir.IsReverse() {
				i = m - 1 - j
			}
			contentSize = sizeMax(contentSize, t.placeFlexItem(&line.items[i], c, &mainOffset, crossOffset, line.offsetCross))
		}
		crossOffset += line.offsetCross + line.crossSize
	}
	return contentSize
}

func (t *Tree) placeFlexItem(item *flexItem, c *flexConstants, mainOffset *float64, crossOffset, lineOffset float64) Size {
	dir := c.dir
	out := t.performChildLayout(item.id, item.target, c.nodeInner,
		AvailableSize{Width: Definite(c.container.Width), Height: Definite(c.container.Height)}, SizingContent)
	size := out.Size

	relMain := or(item.inset.mainStart(dir), -or(item.inset.mainEnd(dir), 0))
	relCross := or(item.inset.crossStart(dir), -or(item.inset.crossEnd(dir), 0))
	offsetMain := *mainOffset + item.offsetMain + item.margin.mainStart(dir) + relMain
	offsetCross := crossOffset + item.offsetCross + lineOffset + item.margin.crossStart(dir) + relCross

	if c.isRow {
		item.baseline = offsetCross + or(out.FirstBaselines.Y, size.Height)
	} else {
		item.baseline = offsetMain + or(out.FirstBaselines.Y, size.Height)
	}

	location := Point{X: offsetMain, Y: offsetCross}
	if !c.isRow {
		location = Point{X: offsetCross, Y: offsetMain}
	}
	*mainOffset += item.offsetMain + item.margin.mainSum(dir) + size.main(dir)

	s := &t.n(item.id).style
	t.setUnroundedLayout(item.id, Layout{
		Order:         uint32(item.order),
		Location:      location,
		Size:          size,
		ContentSize:   out.ContentSize,
		ScrollbarSize: s.scrollbarGutter(),
		Border:        item.border,
		Padding:       item.padding,
		Margin:        item.margin,
	})
	return contentContribution(location, size, out.ContentSize, s)
}

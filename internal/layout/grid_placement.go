package layout

// lineSpan is a half-open range of grid lines in origin-zero coordinates,
// where line 0 starts the explicit grid and negative lines belong to the
// implicit grid before it.
type lineSpan struct {
	start, end int
}

func (s lineSpan) len() int {
	return s.end - s.start
}

// cellGrid records occupied cells during placement. Its bounds cover the
// explicit grid plus every placed item.
type cellGrid struct {
	cells map[[2]int]struct{}
	lo    [2]int // Indexed by AbsoluteAxis: columns then rows
	hi    [2]int
}

func newCellGrid(explicit [2]int) *cellGrid {
	return &cellGrid{cells: make(map[[2]int]struct{}), hi: explicit}
}

func (c *cellGrid) free(area [2]lineSpan) bool {
	for x := area[Horizontal].start; x < area[Horizontal].end; x++ {
		for y := area[Vertical].start; y < area[Vertical].end; y++ {
			if _, ok := c.cells[[2]int{x, y}]; ok {
				return false
			}
		}
	}
	return true
}

func (c *cellGrid) mark(area [2]lineSpan) {
	for x := area[Horizontal].start; x < area[Horizontal].end; x++ {
		for y := area[Vertical].start; y < area[Vertical].end; y++ {
			c.cells[[2]int{x, y}] = struct{}{}
		}
	}
	c.extend(area)
}

func (c *cellGrid) extend(area [2]lineSpan) {
	for axis := range area {
		c.lo[axis] = min(c.lo[axis], area[axis].start)
		c.hi[axis] = max(c.hi[axis], area[axis].end)
	}
}

// placedItem is an in-flow grid child and the area it occupies.
type placedItem struct {
	id    NodeID
	order int
	area  [2]lineSpan
}

// placeGridItems assigns every in-flow child of id to a grid area.
// Children with definite lines in both axes are placed first, then those
// locked to a line of the flow's major axis, then the rest in document
// order with the auto-placement cursor. Dense flows restart the search
// from the start of the grid for every item.
func (t *Tree) placeGridItems(id NodeID, style *Style) ([]placedItem, *cellGrid) {
	explicit := [2]int{len(style.GridTemplateColumns), len(style.GridTemplateRows)}
	grid := newCellGrid(explicit)
	major := style.GridAutoFlow.majorAxis()
	minor := major.Other()
	dense := style.GridAutoFlow.isDense()

	var items []placedItem
	var res [][2]PlacementResolution
	for i, child := range t.n(id).children {
		s := &t.n(child).style
		if s.Display == DisplayNone || s.Position == PositionAbsolute {
			continue
		}
		items = append(items, placedItem{id: child, order: i})
		res = append(res, [2]PlacementResolution{
			s.GridColumn.Resolve(explicit[Horizontal]),
			s.GridRow.Resolve(explicit[Vertical]),
		})
	}

	placed := make([]bool, len(items))
	place := func(i int, area [2]lineSpan) {
		items[i].area = area
		grid.mark(area)
		placed[i] = true
	}
	lines := func(r PlacementResolution) lineSpan {
		return lineSpan{start: r.Start, end: r.End}
	}

	for i, r := range res {
		if r[Horizontal].Definite && r[Vertical].Definite {
			place(i, [2]lineSpan{lines(r[Horizontal]), lines(r[Vertical])})
		}
	}

	// Items locked to a major-axis line. Sparse packing never backtracks
	// within a line.
	cursors := make(map[int]int)
	for i, r := range res {
		if placed[i] || !r[major].Definite {
			continue
		}
		var area [2]lineSpan
		area[major] = lines(r[major])
		start := grid.lo[minor]
		if c, ok := cursors[area[major].start]; ok && !dense {
			start = c
		}
		for s := start; ; s++ {
			area[minor] = lineSpan{start: s, end: s + r[minor].Span}
			if grid.free(area) {
				break
			}
		}
		place(i, area)
		cursors[area[major].start] = area[minor].end
	}

	// The minor axis must fit every remaining item.
	for i, r := range res {
		if placed[i] {
			continue
		}
		if r[minor].Definite {
			grid.lo[minor] = min(grid.lo[minor], r[minor].Start)
			grid.hi[minor] = max(grid.hi[minor], r[minor].End)
		} else {
			grid.hi[minor] = max(grid.hi[minor], grid.lo[minor]+r[minor].Span)
		}
	}

	curMajor, curMinor := grid.lo[major], grid.lo[minor]
	for i, r := range res {
		if placed[i] {
			continue
		}
		if dense {
			curMajor, curMinor = grid.lo[major], grid.lo[minor]
		}
		var area [2]lineSpan
		if r[minor].Definite {
			area[minor] = lines(r[minor])
			if !dense && area[minor].start < curMinor {
				curMajor++
			}
			for {
				area[major] = lineSpan{start: curMajor, end: curMajor + r[major].Span}
				if grid.free(area) {
					break
				}
				curMajor++
			}
			curMinor = area[minor].start
		} else {
			span := r[minor].Span
			for {
				if curMinor+span > grid.hi[minor] {
					curMajor++
					curMinor = grid.lo[minor]
					continue
				}
				area[minor] = lineSpan{start: curMinor, end: curMinor + span}
				area[major] = lineSpan{start: curMajor, end: curMajor + r[major].Span}
				if grid.free(area) {
					break
				}
				curMinor++
			}
			curMinor = area[minor].end
		}
		place(i, area)
	}
	return items, grid
}

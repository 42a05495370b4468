package layout

// RunMode tells a layout algorithm whether to place children or only size
// the node.
type RunMode uint8

const (
	RunPerformLayout RunMode = iota // Size the node and position its children
	RunComputeSize                  // Size the node only
)

func (m RunMode) String() string {
	if m == RunComputeSize {
		return "compute-size"
	}
	return "perform-layout"
}

// SizingMode tells a layout algorithm whether the node's own style size
// applies or only its content counts.
type SizingMode uint8

const (
	SizingInherent SizingMode = iota // Style width/height apply
	SizingContent                    // Only content counts
)

// layoutOutput is what a layout algorithm reports to its parent.
type layoutOutput struct {
	Size           Size
	ContentSize    Size
	FirstBaselines Point // NaN when the node has no baseline
}

func sizeOutput(s Size) layoutOutput {
	return layoutOutput{Size: s, FirstBaselines: nonePoint()}
}

// measureSlots is the number of size-only cache entries per node.
const measureSlots = 9

type cacheEntry struct {
	known      Size
	parentSize Size
	available  AvailableSize
	sizingMode SizingMode
	out        layoutOutput
	valid      bool
}

// matches reports whether the entry answers a request. Known dimensions and
// the percentage reference must be identical; an unknown dimension also
// matches on available space.
func (e *cacheEntry) matches(in layoutInput) bool {
	if !e.valid || e.sizingMode != in.sizingMode {
		return false
	}
	return sameLength(in.known.Width, e.known.Width) &&
		sameLength(in.known.Height, e.known.Height) &&
		sameLength(in.parentSize.Width, e.parentSize.Width) &&
		sameLength(in.parentSize.Height, e.parentSize.Height) &&
		(isDefined(in.known.Width) || e.available.Width.roughlyEqual(in.available.Width)) &&
		(isDefined(in.known.Height) || e.available.Height.roughlyEqual(in.available.Height))
}

// Cache memoizes layout results of one node. It holds the result of the
// last full layout plus up to nine size-only results, one per class of
// constraint.
type Cache struct {
	final   cacheEntry
	measure [measureSlots]cacheEntry
}

// cacheSlot picks the measurement slot for a request:
//
//	0    both dimensions known
//	1-2  width known; height min-content or not
//	3-4  height known; width min-content or not
//	5-8  neither known; one bit per axis for min-content
func cacheSlot(known Size, avail AvailableSize) int {
	hasW, hasH := isDefined(known.Width), isDefined(known.Height)
	minW := avail.Width.Kind == SpaceMinContent
	minH := avail.Height.Kind == SpaceMinContent
	switch {
	case hasW && hasH:
		return 0
	case hasW:
		return 1 + b2i(minH)
	case hasH:
		return 3 + b2i(minW)
	}
	return 5 + b2i(minH) + 2*b2i(minW)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// get looks up a stored result for the request.
func (c *Cache) get(in layoutInput) (layoutOutput, bool) {
	if in.runMode == RunPerformLayout {
		if c.final.matches(in) {
			return c.final.out, true
		}
		return layoutOutput{}, false
	}
	for i := range c.measure {
		if c.measure[i].matches(in) {
			return c.measure[i].out, true
		}
	}
	return layoutOutput{}, false
}

// store records a result, replacing whatever occupied its slot.
func (c *Cache) store(in layoutInput, out layoutOutput) {
	e := cacheEntry{
		known:      in.known,
		parentSize: in.parentSize,
		available:  in.available,
		sizingMode: in.sizingMode,
		out:        out,
		valid:      true,
	}
	if in.runMode == RunPerformLayout {
		c.final = e
		return
	}
	c.measure[cacheSlot(in.known, in.available)] = e
}

// clear drops every entry.
func (c *Cache) clear() {
	*c = Cache{}
}

// isEmpty reports whether the cache holds no entry.
func (c *Cache) isEmpty() bool {
	if c.final.valid {
		return false
	}
	for i := range c.measure {
		if c.measure[i].valid {
			return false
		}
	}
	return true
}

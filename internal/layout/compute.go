package layout

import (
	"math"

	"go.uber.org/zap"
)

// layoutInput is the request a parent makes of a child.
type layoutInput struct {
	runMode    RunMode
	sizingMode SizingMode
	known      Size          // Border-box dimensions fixed by the parent, NaN if free
	parentSize Size          // Reference for percentages, NaN if indefinite
	available  AvailableSize // Space the node may take, margins included
}

// ComputeLayout lays out the subtree rooted at root within available and
// stores a Layout for every node in it.
func (t *Tree) ComputeLayout(root NodeID, available AvailableSize) error {
	const op = "ComputeLayout"
	if _, err := t.get(op, root); err != nil {
		return err
	}
	for _, a := range []AvailableSpace{available.Width, available.Height} {
		if a.Kind > SpaceMaxContent {
			return &Error{Kind: KindInvalidEnum, Op: op, Property: "available space", Value: float64(a.Kind)}
		}
		if a.IsDefinite() && (math.IsNaN(a.Value) || math.IsInf(a.Value, 0)) {
			return &Error{Kind: KindInvalidNumeric, Op: op, Property: "available space", Value: a.Value}
		}
	}

	parentSize := available.Option()
	out := t.computeNode(root, layoutInput{
		runMode:    RunPerformLayout,
		sizingMode: SizingInherent,
		known:      noneSize(),
		parentSize: parentSize,
		available:  available,
	})

	n := t.n(root)
	style := &n.style
	margin := style.Margin.resolveOrZero(parentSize.Width)
	inset := style.Inset.resolveInset(parentSize)
	n.unrounded = Layout{
		Order:         0,
		Location:      Point{X: margin.Left + or(inset.Left, 0), Y: margin.Top + or(inset.Top, 0)},
		Size:          out.Size,
		ContentSize:   out.ContentSize,
		ScrollbarSize: style.scrollbarGutter(),
		Border:        style.Border.resolveOrZero(parentSize.Width),
		Padding:       style.Padding.resolveOrZero(parentSize.Width),
		Margin:        margin,
	}

	t.finalizeLayout(root)
	return nil
}

// IntrinsicSize returns the border-box size of the subtree under a
// min-content or max-content constraint in both axes.
func (t *Tree) IntrinsicSize(id NodeID, mode IntrinsicMode) (Size, error) {
	if _, err := t.get("IntrinsicSize", id); err != nil {
		return Size{}, err
	}
	space := MinContentSpace
	if mode == IntrinsicMaxContent {
		space = MaxContentSpace
	}
	out := t.computeNode(id, layoutInput{
		runMode:    RunComputeSize,
		sizingMode: SizingInherent,
		known:      noneSize(),
		parentSize: noneSize(),
		available:  AvailableSize{Width: space, Height: space},
	})
	return out.Size, nil
}

// computeNode is the single entry point through which every algorithm sizes
// or lays out a child. It consults the cache and dispatches on display.
func (t *Tree) computeNode(id NodeID, in layoutInput) layoutOutput {
	n := t.n(id)
	if t.caching {
		if out, ok := n.cache.get(in); ok {
			t.trace(id, "cached", in, true)
			return out
		}
	}

	if in.runMode == RunPerformLayout {
		n.state = StateComputing
	} else if n.state != StateComputed {
		n.state = StateMeasuring
	}

	var out layoutOutput
	var algorithm string
	switch {
	case n.style.Display == DisplayNone:
		algorithm = "none"
		out = t.computeHiddenLayout(id)
	case len(n.children) == 0:
		algorithm = "leaf"
		out = t.computeLeafLayout(id, in)
	case n.style.Display == DisplayBlock:
		algorithm = "block"
		out = t.computeBlockLayout(id, in)
	case n.style.Display == DisplayGrid:
		algorithm = "grid"
		out = t.computeGridLayout(id, in)
	default:
		algorithm = "flex"
		out = t.computeFlexLayout(id, in)
	}
	t.trace(id, algorithm, in, false)

	n = t.n(id)
	if t.caching {
		n.cache.store(in, out)
	}
	if in.runMode == RunPerformLayout {
		n.state = StateComputed
	}
	return out
}

func (t *Tree) trace(id NodeID, algorithm string, in layoutInput, hit bool) {
	if ce := t.logger.Check(zap.DebugLevel, "compute node"); ce != nil {
		ce.Write(
			zap.Stringer("node", id),
			zap.String("algorithm", algorithm),
			zap.Stringer("run_mode", in.runMode),
			zap.Stringer("known", in.known),
			zap.Stringer("available_width", in.available.Width),
			zap.Stringer("available_height", in.available.Height),
			zap.Bool("cache_hit", hit),
		)
	}
}

// measureChildSize sizes a child without placing its descendants and
// returns the requested dimension.
func (t *Tree) measureChildSize(id NodeID, known, parentSize Size, available AvailableSize, sizing SizingMode, axis AbsoluteAxis) float64 {
	if v := known.Get(axis); isDefined(v) {
		return v
	}
	out := t.computeNode(id, layoutInput{
		runMode:    RunComputeSize,
		sizingMode: sizing,
		known:      known,
		parentSize: parentSize,
		available:  available,
	})
	return out.Size.Get(axis)
}

// performChildLayout fully lays out a child.
func (t *Tree) performChildLayout(id NodeID, known, parentSize Size, available AvailableSize, sizing SizingMode) layoutOutput {
	return t.computeNode(id, layoutInput{
		runMode:    RunPerformLayout,
		sizingMode: sizing,
		known:      known,
		parentSize: parentSize,
		available:  available,
	})
}

func (t *Tree) setUnroundedLayout(id NodeID, l Layout) {
	t.n(id).unrounded = l
}

// computeHiddenLayout zeroes the layout of every descendant of a
// display:none node. The node itself reports a zero size.
func (t *Tree) computeHiddenLayout(id NodeID) layoutOutput {
	n := t.n(id)
	n.cache.clear()
	for i, child := range n.children {
		t.setUnroundedLayout(child, Layout{Order: uint32(i)})
		t.computeHiddenLayout(child)
		t.n(child).state = StateComputed
	}
	return sizeOutput(Size{})
}

// layoutHiddenChild is used by container algorithms for display:none
// children.
func (t *Tree) layoutHiddenChild(id NodeID, order int) {
	t.setUnroundedLayout(id, Layout{Order: uint32(order)})
	t.computeHiddenLayout(id)
	t.n(id).state = StateComputed
}

// contentContribution returns how far a placed child extends its parent's
// scrollable area. Children with an empty box contribute nothing.
func contentContribution(location Point, size, contentSize Size, style *Style) Size {
	w, h := size.Width, size.Height
	if style.OverflowX == OverflowVisible {
		w = math.Max(w, contentSize.Width)
	}
	if style.OverflowY == OverflowVisible {
		h = math.Max(h, contentSize.Height)
	}
	if w <= 0 || h <= 0 {
		return Size{}
	}
	return Size{Width: location.X + w, Height: location.Y + h}
}

func sizeMax(a, b Size) Size {
	return Size{Width: math.Max(a.Width, b.Width), Height: math.Max(a.Height, b.Height)}
}

// containerSizeFromStyle resolves the border-box size a container's style
// fixes before looking at children: the caller's known dimensions first,
// then equal min and max, then the clamped style size. Results are floored
// at padding plus border.
func containerSizeFromStyle(style *Style, in layoutInput) (known, minSize, maxSize Size) {
	aspect := style.aspectRatio()
	minSize = style.resolvedMinSize(in.parentSize).applyAspectRatio(aspect)
	maxSize = style.resolvedMaxSize(in.parentSize).applyAspectRatio(aspect)
	pb := style.Padding.resolveOrZero(in.parentSize.Width).Add(style.Border.resolveOrZero(in.parentSize.Width)).sumAxes()

	styled := noneSize()
	if in.sizingMode == SizingInherent {
		styled = style.resolvedSize(in.parentSize).applyAspectRatio(aspect).maybeClamp(minSize, maxSize)
	}
	minMax := noneSize()
	if isDefined(minSize.Width) && isDefined(maxSize.Width) && maxSize.Width <= minSize.Width {
		minMax.Width = minSize.Width
	}
	if isDefined(minSize.Height) && isDefined(maxSize.Height) && maxSize.Height <= minSize.Height {
		minMax.Height = minSize.Height
	}
	known = in.known.Or(minMax.Or(styled).maybeMax(pb))
	return known, minSize, maxSize
}

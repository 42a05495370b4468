package layout

// Layout holds the computed position and size of a node.
type Layout struct {
	// Order is the node's index among its parent's children.
	Order uint32

	// Location is the border-box origin relative to the parent's content
	// box. The root is relative to the available space origin. Layouts from
	// Tree.UnroundedLayout instead measure it from the parent's border box.
	Location Point

	// Absolute is the border-box origin relative to the root's origin.
	Absolute Point

	// Size is the border-box size.
	Size Size

	// ContentSize is the extent of the node's content, which may exceed
	// Size when children overflow.
	ContentSize Size

	// ScrollbarSize is the gutter reserved for scrollbars.
	ScrollbarSize Size

	Border  Insets
	Padding Insets
	Margin  Insets
}

// BorderBox returns the border box in root coordinates.
func (l Layout) BorderBox() Rect {
	return Rect{X: l.Absolute.X, Y: l.Absolute.Y, Width: l.Size.Width, Height: l.Size.Height}
}

// ContentBox returns the border box minus border, padding and scrollbar
// gutters, in root coordinates.
func (l Layout) ContentBox() Rect {
	inset := l.Border.Add(l.Padding)
	inset.Right += l.ScrollbarSize.Width
	inset.Bottom += l.ScrollbarSize.Height
	return l.BorderBox().Inset(inset)
}

// State reports how far layout has progressed for a node.
type State uint8

const (
	StateNotComputed State = iota // Never laid out, or invalidated since
	StateMeasuring                // Sized by an intrinsic pass, not yet placed
	StateComputing                // Full layout in progress
	StateComputed                 // Final layout available
)

func (s State) String() string {
	return enumName(s, []string{"not-computed", "measuring", "computing", "computed"})
}

// IntrinsicMode selects the content constraint for Tree.IntrinsicSize.
type IntrinsicMode uint8

const (
	IntrinsicMinContent IntrinsicMode = iota
	IntrinsicMaxContent
)

func (m IntrinsicMode) String() string {
	return enumName(m, []string{"min-content", "max-content"})
}

// Measurer sizes leaf content such as text. known holds the dimensions
// already fixed by the layout (NaN otherwise) as a content box; available is
// the space the content may use. The result is the content-box size.
type Measurer interface {
	Measure(known Size, available AvailableSize) Size
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func(known Size, available AvailableSize) Size

// Measure calls f.
func (f MeasureFunc) Measure(known Size, available AvailableSize) Size {
	return f(known, available)
}

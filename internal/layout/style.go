package layout

import "slices"

// Display selects the layout algorithm a node uses for its children.
type Display uint8

const (
	DisplayFlex  Display = iota // Flexbox container (default)
	DisplayGrid                 // Grid container
	DisplayBlock                // Block flow: children stacked vertically
	DisplayNone                 // Removed from layout, zero-sized with its subtree
	displayCount
)

func (d Display) String() string {
	return enumName(d, []string{"flex", "grid", "block", "none"})
}

// Position selects how a node takes part in its parent's layout.
type Position uint8

const (
	PositionRelative Position = iota // In flow; insets nudge the final position
	PositionAbsolute                 // Out of flow; placed by insets in the containing block
	positionCount
)

func (p Position) String() string {
	return enumName(p, []string{"relative", "absolute"})
}

// Overflow controls what a node does with content larger than its box.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowClip
	OverflowHidden
	OverflowScroll // Reserves ScrollbarWidth for a scrollbar gutter
	overflowCount
)

func (o Overflow) String() string {
	return enumName(o, []string{"visible", "clip", "hidden", "scroll"})
}

// isScrollContainer reports whether the overflow value turns off the
// automatic minimum size of flex and grid items.
func (o Overflow) isScrollContainer() bool {
	return o != OverflowVisible
}

// FlexDirection specifies the main axis of a flex container.
type FlexDirection uint8

const (
	FlexRow           FlexDirection = iota // Left to right
	FlexColumn                             // Top to bottom
	FlexRowReverse                         // Right to left
	FlexColumnReverse                      // Bottom to top
	flexDirectionCount
)

func (d FlexDirection) String() string {
	return enumName(d, []string{"row", "column", "row-reverse", "column-reverse"})
}

// IsRow returns true for horizontal main axes.
func (d FlexDirection) IsRow() bool {
	return d == FlexRow || d == FlexRowReverse
}

// IsColumn returns true for vertical main axes.
func (d FlexDirection) IsColumn() bool {
	return d == FlexColumn || d == FlexColumnReverse
}

// IsReverse returns true when items run from the main end.
func (d FlexDirection) IsReverse() bool {
	return d == FlexRowReverse || d == FlexColumnReverse
}

// FlexWrap controls whether flex items may wrap onto several lines.
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
	flexWrapCount
)

func (w FlexWrap) String() string {
	return enumName(w, []string{"nowrap", "wrap", "wrap-reverse"})
}

// AlignItems positions items on the cross axis (align-items, align-self,
// justify-items, justify-self). AlignAuto means unset.
type AlignItems uint8

const (
	AlignAuto AlignItems = iota
	AlignStart
	AlignEnd
	AlignFlexStart
	AlignFlexEnd
	AlignCenter
	AlignBaseline
	AlignStretch
	alignItemsCount
)

func (a AlignItems) String() string {
	return enumName(a, []string{"auto", "start", "end", "flex-start", "flex-end", "center", "baseline", "stretch"})
}

// AlignContent distributes lines or tracks (align-content,
// justify-content). ContentAuto means unset.
type AlignContent uint8

const (
	ContentAuto AlignContent = iota
	ContentStart
	ContentEnd
	ContentFlexStart
	ContentFlexEnd
	ContentCenter
	ContentStretch
	ContentSpaceBetween
	ContentSpaceAround
	ContentSpaceEvenly
	alignContentCount
)

func (a AlignContent) String() string {
	return enumName(a, []string{"auto", "start", "end", "flex-start", "flex-end", "center", "stretch",
		"space-between", "space-around", "space-evenly"})
}

// GridAutoFlow controls how auto-placed grid items fill the grid.
type GridAutoFlow uint8

const (
	FlowRow GridAutoFlow = iota
	FlowColumn
	FlowRowDense
	FlowColumnDense
	gridAutoFlowCount
)

func (f GridAutoFlow) String() string {
	return enumName(f, []string{"row", "column", "row-dense", "column-dense"})
}

func (f GridAutoFlow) isDense() bool {
	return f == FlowRowDense || f == FlowColumnDense
}

// majorAxis is the axis along which the implicit grid grows.
func (f GridAutoFlow) majorAxis() AbsoluteAxis {
	if f == FlowColumn || f == FlowColumnDense {
		return Horizontal
	}
	return Vertical
}

func enumName[T ~uint8](v T, names []string) string {
	if int(v) < len(names) {
		return names[v]
	}
	return "invalid"
}

// Style contains all layout properties for a node.
type Style struct {
	Display  Display
	Position Position

	OverflowX      Overflow
	OverflowY      Overflow
	ScrollbarWidth float64

	// Box model
	Inset   Edges
	Margin  Edges
	Padding Edges
	Border  Edges

	// Sizing
	Width       Dimension
	Height      Dimension
	MinWidth    Dimension
	MinHeight   Dimension
	MaxWidth    Dimension
	MaxHeight   Dimension
	AspectRatio Dimension // width / height as a Ratio, or None

	ColumnGap Dimension
	RowGap    Dimension

	// Flex container properties
	FlexDirection FlexDirection
	FlexWrap      FlexWrap

	// Flex item properties
	FlexBasis  Dimension
	FlexGrow   float64
	FlexShrink float64

	// Alignment
	AlignItems     AlignItems
	AlignSelf      AlignItems
	JustifyItems   AlignItems
	JustifySelf    AlignItems
	AlignContent   AlignContent
	JustifyContent AlignContent

	// Grid container properties
	GridTemplateRows    []TrackSizing
	GridTemplateColumns []TrackSizing
	GridAutoRows        []TrackSizing
	GridAutoColumns     []TrackSizing
	GridAutoFlow        GridAutoFlow

	// Grid item properties
	GridRow    GridPlacement
	GridColumn GridPlacement
}

// DefaultStyle returns the initial CSS values.
func DefaultStyle() Style {
	zero := Length(0)
	return Style{
		Inset:       EdgeAll(Auto()),
		Margin:      EdgeAll(zero),
		Padding:     EdgeAll(zero),
		Border:      EdgeAll(zero),
		Width:       Auto(),
		Height:      Auto(),
		MinWidth:    Auto(),
		MinHeight:   Auto(),
		MaxWidth:    Auto(), // No maximum
		MaxHeight:   Auto(), // No maximum
		AspectRatio: None(),
		ColumnGap:   zero,
		RowGap:      zero,
		FlexBasis:   Auto(),
		FlexShrink:  1,
	}
}

// Clone returns a copy of s that shares no slices with it.
func (s Style) Clone() Style {
	s.GridTemplateRows = slices.Clone(s.GridTemplateRows)
	s.GridTemplateColumns = slices.Clone(s.GridTemplateColumns)
	s.GridAutoRows = slices.Clone(s.GridAutoRows)
	s.GridAutoColumns = slices.Clone(s.GridAutoColumns)
	return s
}

// resolvedSize resolves width and height against parent.
func (s *Style) resolvedSize(parent Size) Size {
	return Size{Width: s.Width.Resolve(parent.Width), Height: s.Height.Resolve(parent.Height)}
}

func (s *Style) resolvedMinSize(parent Size) Size {
	return Size{Width: s.MinWidth.Resolve(parent.Width), Height: s.MinHeight.Resolve(parent.Height)}
}

func (s *Style) resolvedMaxSize(parent Size) Size {
	return Size{Width: s.MaxWidth.Resolve(parent.Width), Height: s.MaxHeight.Resolve(parent.Height)}
}

// aspectRatio returns width / height, or NaN when unset.
func (s *Style) aspectRatio() float64 {
	if s.AspectRatio.Unit == UnitLength && s.AspectRatio.Value > 0 {
		return s.AspectRatio.Value
	}
	return undefined
}

// scrollbarGutter returns the space reserved for scrollbars: a vertical
// scrollbar takes width, a horizontal one takes height.
func (s *Style) scrollbarGutter() Size {
	var g Size
	if s.OverflowY == OverflowScroll {
		g.Width = s.ScrollbarWidth
	}
	if s.OverflowX == OverflowScroll {
		g.Height = s.ScrollbarWidth
	}
	return g
}

// contentBoxInset returns padding + border + scrollbar gutter.
func (s *Style) contentBoxInset(parentWidth float64) Insets {
	inset := s.Padding.resolveOrZero(parentWidth).Add(s.Border.resolveOrZero(parentWidth))
	g := s.scrollbarGutter()
	inset.Right += g.Width
	inset.Bottom += g.Height
	return inset
}

// sizeDimension returns the width or height style value along axis.
func (s *Style) sizeDimension(axis AbsoluteAxis) Dimension {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

func (s *Style) overflow(axis AbsoluteAxis) Overflow {
	if axis == Horizontal {
		return s.OverflowX
	}
	return s.OverflowY
}

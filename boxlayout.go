// boxlayout.go re-exports the engine types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package boxlayout

import "github.com/grindlemire/go-boxlayout/internal/layout"

// Tree owns every node and its style, children and computed layout.
type Tree = layout.Tree

// NodeID is a generational handle to a node of a Tree. The zero value is
// the null handle.
type NodeID = layout.NodeID

// TreeOption configures New.
type TreeOption = layout.TreeOption

// New creates an empty tree.
func New(opts ...TreeOption) (*Tree, error) { return layout.New(opts...) }

var (
	WithLogger   = layout.WithLogger
	WithRounding = layout.WithRounding
	WithCache    = layout.WithCache
	WithCapacity = layout.WithCapacity
)

// Style holds the layout properties of a node.
type Style = layout.Style

// DefaultStyle returns the initial style of a new node.
func DefaultStyle() Style { return layout.DefaultStyle() }

// Dimension is a number with a unit.
type Dimension = layout.Dimension

// Unit specifies how a Dimension is interpreted.
type Unit = layout.Unit

const (
	UnitNone              = layout.UnitNone
	UnitLength            = layout.UnitLength
	UnitPercent           = layout.UnitPercent
	UnitMinContent        = layout.UnitMinContent
	UnitMaxContent        = layout.UnitMaxContent
	UnitFitContentPx      = layout.UnitFitContentPx
	UnitFitContentPercent = layout.UnitFitContentPercent
	UnitAuto              = layout.UnitAuto
	UnitFr                = layout.UnitFr
)

var (
	None              = layout.None
	Length            = layout.Length
	Percent           = layout.Percent
	Auto              = layout.Auto
	MinContent        = layout.MinContent
	MaxContent        = layout.MaxContent
	FitContent        = layout.FitContent
	FitContentPercent = layout.FitContentPercent
	Fr                = layout.Fr
)

type (
	Display       = layout.Display
	Position      = layout.Position
	Overflow      = layout.Overflow
	FlexDirection = layout.FlexDirection
	FlexWrap      = layout.FlexWrap
	AlignItems    = layout.AlignItems
	AlignContent  = layout.AlignContent
	GridAutoFlow  = layout.GridAutoFlow
)

const (
	DisplayFlex  = layout.DisplayFlex
	DisplayGrid  = layout.DisplayGrid
	DisplayBlock = layout.DisplayBlock
	DisplayNone  = layout.DisplayNone

	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute

	OverflowVisible = layout.OverflowVisible
	OverflowClip    = layout.OverflowClip
	OverflowHidden  = layout.OverflowHidden
	OverflowScroll  = layout.OverflowScroll

	FlexRow           = layout.FlexRow
	FlexColumn        = layout.FlexColumn
	FlexRowReverse    = layout.FlexRowReverse
	FlexColumnReverse = layout.FlexColumnReverse

	NoWrap      = layout.NoWrap
	Wrap        = layout.Wrap
	WrapReverse = layout.WrapReverse

	AlignAuto      = layout.AlignAuto
	AlignStart     = layout.AlignStart
	AlignEnd       = layout.AlignEnd
	AlignFlexStart = layout.AlignFlexStart
	AlignFlexEnd   = layout.AlignFlexEnd
	AlignCenter    = layout.AlignCenter
	AlignBaseline  = layout.AlignBaseline
	AlignStretch   = layout.AlignStretch

	ContentAuto         = layout.ContentAuto
	ContentStart        = layout.ContentStart
	ContentEnd          = layout.ContentEnd
	ContentFlexStart    = layout.ContentFlexStart
	ContentFlexEnd      = layout.ContentFlexEnd
	ContentCenter       = layout.ContentCenter
	ContentStretch      = layout.ContentStretch
	ContentSpaceBetween = layout.ContentSpaceBetween
	ContentSpaceAround  = layout.ContentSpaceAround
	ContentSpaceEvenly  = layout.ContentSpaceEvenly

	FlowRow         = layout.FlowRow
	FlowColumn      = layout.FlowColumn
	FlowRowDense    = layout.FlowRowDense
	FlowColumnDense = layout.FlowColumnDense
)

// Property names a single dimension-valued style property for
// Style.SetDimension.
type Property = layout.Property

const (
	PropWidth         = layout.PropWidth
	PropHeight        = layout.PropHeight
	PropMinWidth      = layout.PropMinWidth
	PropMinHeight     = layout.PropMinHeight
	PropMaxWidth      = layout.PropMaxWidth
	PropMaxHeight     = layout.PropMaxHeight
	PropFlexBasis     = layout.PropFlexBasis
	PropMarginTop     = layout.PropMarginTop
	PropMarginRight   = layout.PropMarginRight
	PropMarginBottom  = layout.PropMarginBottom
	PropMarginLeft    = layout.PropMarginLeft
	PropPaddingTop    = layout.PropPaddingTop
	PropPaddingRight  = layout.PropPaddingRight
	PropPaddingBottom = layout.PropPaddingBottom
	PropPaddingLeft   = layout.PropPaddingLeft
	PropBorderTop     = layout.PropBorderTop
	PropBorderRight   = layout.PropBorderRight
	PropBorderBottom  = layout.PropBorderBottom
	PropBorderLeft    = layout.PropBorderLeft
	PropInsetTop      = layout.PropInsetTop
	PropInsetRight    = layout.PropInsetRight
	PropInsetBottom   = layout.PropInsetBottom
	PropInsetLeft     = layout.PropInsetLeft
	PropColumnGap     = layout.PropColumnGap
	PropRowGap        = layout.PropRowGap
	PropAspectRatio   = layout.PropAspectRatio
)

// ParseProperty looks up a Property by its CSS name.
func ParseProperty(name string) (Property, bool) { return layout.ParseProperty(name) }

// EdgeGroup and Edge select sides of margin, padding, border or inset for
// Style.SetEdges.
type (
	EdgeGroup = layout.EdgeGroup
	Edge      = layout.Edge
)

const (
	EdgeMargin  = layout.EdgeMargin
	EdgePadding = layout.EdgePadding
	EdgeBorder  = layout.EdgeBorder
	EdgeInset   = layout.EdgeInset

	EdgeTop        = layout.EdgeTop
	EdgeRight      = layout.EdgeRight
	EdgeBottom     = layout.EdgeBottom
	EdgeLeft       = layout.EdgeLeft
	EdgeVertical   = layout.EdgeVertical
	EdgeHorizontal = layout.EdgeHorizontal
	EdgeAllSides   = layout.EdgeAllSides
)

// Grid track sizing and item placement.
type (
	TrackSizing   = layout.TrackSizing
	GridPlacement = layout.GridPlacement
)

var (
	Track     = layout.Track
	MinMax    = layout.MinMax
	Repeat    = layout.Repeat
	Tracks    = layout.Tracks
	GridLine  = layout.GridLine
	GridLines = layout.GridLines
	GridSpan  = layout.GridSpan
)

// Geometry and computed output.
type (
	Point       = layout.Point
	Size        = layout.Size
	Rect        = layout.Rect
	Insets      = layout.Insets
	Layout      = layout.Layout
	State       = layout.State
	Measurer    = layout.Measurer
	MeasureFunc = layout.MeasureFunc
)

const (
	StateNotComputed = layout.StateNotComputed
	StateMeasuring   = layout.StateMeasuring
	StateComputing   = layout.StateComputing
	StateComputed    = layout.StateComputed
)

// AvailableSpace is the space a parent offers along one axis.
type AvailableSpace = layout.AvailableSpace

// AvailableSize pairs the available space of both axes.
type AvailableSize = layout.AvailableSize

var (
	Definite        = layout.Definite
	MinContentSpace = layout.MinContentSpace
	MaxContentSpace = layout.MaxContentSpace
	DefiniteSize    = layout.DefiniteSize
	MinContentSize  = layout.MinContentSize
	MaxContentSize  = layout.MaxContentSize
)

// IntrinsicMode selects the constraint for Tree.IntrinsicSize.
type IntrinsicMode = layout.IntrinsicMode

const (
	IntrinsicMinContent = layout.IntrinsicMinContent
	IntrinsicMaxContent = layout.IntrinsicMaxContent
)

// Error is returned by every failing tree and style operation. Match it
// with errors.Is against the Err* values or classify it with KindOf.
type Error = layout.Error

// ErrorKind classifies an Error.
type ErrorKind = layout.ErrorKind

const (
	KindInvalidUnit      = layout.KindInvalidUnit
	KindInvalidNumeric   = layout.KindInvalidNumeric
	KindInvalidEnum      = layout.KindInvalidEnum
	KindNotFound         = layout.KindNotFound
	KindNullHandle       = layout.KindNullHandle
	KindInvalidHierarchy = layout.KindInvalidHierarchy
)

var (
	ErrInvalidUnit      = layout.ErrInvalidUnit
	ErrInvalidNumeric   = layout.ErrInvalidNumeric
	ErrInvalidEnum      = layout.ErrInvalidEnum
	ErrNotFound         = layout.ErrNotFound
	ErrNullHandle       = layout.ErrNullHandle
	ErrInvalidHierarchy = layout.ErrInvalidHierarchy

	KindOf = layout.KindOf
)

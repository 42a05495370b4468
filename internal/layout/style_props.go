package layout

import (
	"fmt"
	"math"
)

// Property names a Dimension-valued style property.
type Property uint8

const (
	PropWidth Property = iota
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight
	PropFlexBasis
	PropMarginTop
	PropMarginRight
	PropMarginBottom
	PropMarginLeft
	PropPaddingTop
	PropPaddingRight
	PropPaddingBottom
	PropPaddingLeft
	PropBorderTop
	PropBorderRight
	PropBorderBottom
	PropBorderLeft
	PropInsetTop
	PropInsetRight
	PropInsetBottom
	PropInsetLeft
	PropColumnGap
	PropRowGap
	PropAspectRatio
	propertyCount
)

type unitSet uint16

func units(us ...Unit) unitSet {
	var s unitSet
	for _, u := range us {
		s |= 1 << u
	}
	return s
}

func (s unitSet) has(u Unit) bool {
	return u < unitCount && s&(1<<u) != 0
}

var (
	sizeUnits     = units(UnitLength, UnitPercent, UnitAuto)
	spacingUnits  = units(UnitLength, UnitPercent)
	ratioUnits    = units(UnitNone, UnitLength)
	trackMinUnits = units(UnitLength, UnitPercent, UnitMinContent, UnitMaxContent, UnitAuto)
	trackMaxUnits = trackMinUnits | units(UnitFitContentPx, UnitFitContentPercent, UnitFr)
)

type propertyRule struct {
	name          string
	units         unitSet
	allowNegative bool
}

var propertyRules = [propertyCount]propertyRule{
	PropWidth:         {"width", sizeUnits, false},
	PropHeight:        {"height", sizeUnits, false},
	PropMinWidth:      {"min-width", sizeUnits, false},
	PropMinHeight:     {"min-height", sizeUnits, false},
	PropMaxWidth:      {"max-width", sizeUnits, false},
	PropMaxHeight:     {"max-height", sizeUnits, false},
	PropFlexBasis:     {"flex-basis", sizeUnits, false},
	PropMarginTop:     {"margin-top", sizeUnits, true},
	PropMarginRight:   {"margin-right", sizeUnits, true},
	PropMarginBottom:  {"margin-bottom", sizeUnits, true},
	PropMarginLeft:    {"margin-left", sizeUnits, true},
	PropPaddingTop:    {"padding-top", spacingUnits, false},
	PropPaddingRight:  {"padding-right", spacingUnits, false},
	PropPaddingBottom: {"padding-bottom", spacingUnits, false},
	PropPaddingLeft:   {"padding-left", spacingUnits, false},
	PropBorderTop:     {"border-top", spacingUnits, false},
	PropBorderRight:   {"border-right", spacingUnits, false},
	PropBorderBottom:  {"border-bottom", spacingUnits, false},
	PropBorderLeft:    {"border-left", spacingUnits, false},
	PropInsetTop:      {"inset-top", sizeUnits, true},
	PropInsetRight:    {"inset-right", sizeUnits, true},
	PropInsetBottom:   {"inset-bottom", sizeUnits, true},
	PropInsetLeft:     {"inset-left", sizeUnits, true},
	PropColumnGap:     {"column-gap", spacingUnits, false},
	PropRowGap:        {"row-gap", spacingUnits, false},
	PropAspectRatio:   {"aspect-ratio", ratioUnits, false},
}

func (p Property) String() string {
	if p < propertyCount {
		return propertyRules[p].name
	}
	return fmt.Sprintf("Property(%d)", p)
}

// ParseProperty maps a CSS-style property name to its Property.
func ParseProperty(name string) (Property, bool) {
	for p, r := range propertyRules {
		if r.name == name {
			return Property(p), true
		}
	}
	return 0, false
}

func (s *Style) field(p Property) *Dimension {
	switch p {
	case PropWidth:
		return &s.Width
	case PropHeight:
		return &s.Height
	case PropMinWidth:
		return &s.MinWidth
	case PropMinHeight:
		return &s.MinHeight
	case PropMaxWidth:
		return &s.MaxWidth
	case PropMaxHeight:
		return &s.MaxHeight
	case PropFlexBasis:
		return &s.FlexBasis
	case PropMarginTop:
		return &s.Margin.Top
	case PropMarginRight:
		return &s.Margin.Right
	case PropMarginBottom:
		return &s.Margin.Bottom
	case PropMarginLeft:
		return &s.Margin.Left
	case PropPaddingTop:
		return &s.Padding.Top
	case PropPaddingRight:
		return &s.Padding.Right
	case PropPaddingBottom:
		return &s.Padding.Bottom
	case PropPaddingLeft:
		return &s.Padding.Left
	case PropBorderTop:
		return &s.Border.Top
	case PropBorderRight:
		return &s.Border.Right
	case PropBorderBottom:
		return &s.Border.Bottom
	case PropBorderLeft:
		return &s.Border.Left
	case PropInsetTop:
		return &s.Inset.Top
	case PropInsetRight:
		return &s.Inset.Right
	case PropInsetBottom:
		return &s.Inset.Bottom
	case PropInsetLeft:
		return &s.Inset.Left
	case PropColumnGap:
		return &s.ColumnGap
	case PropRowGap:
		return &s.RowGap
	case PropAspectRatio:
		return &s.AspectRatio
	}
	return nil
}

func checkDimension(op, name string, allowed unitSet, allowNegative bool, d Dimension) error {
	if d.Unit >= unitCount {
		return &Error{Kind: KindInvalidEnum, Op: op, Property: name, Value: float64(d.Unit)}
	}
	if !allowed.has(d.Unit) {
		return &Error{Kind: KindInvalidUnit, Op: op, Property: name, Unit: d.Unit}
	}
	if !d.Unit.carriesValue() {
		return nil
	}
	if math.IsNaN(d.Value) || math.IsInf(d.Value, 0) {
		return &Error{Kind: KindInvalidNumeric, Op: op, Property: name, Value: d.Value}
	}
	if d.Value < 0 && (!allowNegative || d.Unit == UnitFr || d.Unit == UnitFitContentPx || d.Unit == UnitFitContentPercent) {
		return &Error{Kind: KindInvalidNumeric, Op: op, Property: name, Value: d.Value, Detail: "negative"}
	}
	return nil
}

func checkProperty(op string, p Property, d Dimension) error {
	if p >= propertyCount {
		return &Error{Kind: KindInvalidEnum, Op: op, Property: "property", Value: float64(p)}
	}
	r := propertyRules[p]
	return checkDimension(op, r.name, r.units, r.allowNegative, d)
}

// SetDimension validates d against the unit policy of p and stores it.
// On error the style is unchanged.
func (s *Style) SetDimension(p Property, d Dimension) error {
	if err := checkProperty("SetDimension", p, d); err != nil {
		return err
	}
	*s.field(p) = d
	return nil
}

// Dimension returns the value of p.
func (s *Style) Dimension(p Property) (Dimension, error) {
	if p >= propertyCount {
		return Dimension{}, &Error{Kind: KindInvalidEnum, Op: "Dimension", Property: "property", Value: float64(p)}
	}
	return *s.field(p), nil
}

// EdgeGroup names a four-sided style property.
type EdgeGroup uint8

const (
	EdgeMargin EdgeGroup = iota
	EdgePadding
	EdgeBorder
	EdgeInset
	edgeGroupCount
)

func (g EdgeGroup) String() string {
	return enumName(g, []string{"margin", "padding", "border", "inset"})
}

// Edge selects one or more sides of an EdgeGroup.
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
	EdgeVertical   // Top and bottom
	EdgeHorizontal // Left and right
	EdgeAllSides
	edgeCount
)

func (e Edge) String() string {
	return enumName(e, []string{"top", "right", "bottom", "left", "vertical", "horizontal", "all"})
}

func (e Edge) sides() (top, right, bottom, left bool) {
	switch e {
	case EdgeTop:
		return true, false, false, false
	case EdgeRight:
		return false, true, false, false
	case EdgeBottom:
		return false, false, true, false
	case EdgeLeft:
		return false, false, false, true
	case EdgeVertical:
		return true, false, true, false
	case EdgeHorizontal:
		return false, true, false, true
	}
	return true, true, true, true
}

// SetEdges sets the selected sides of an edge group to d.
func (s *Style) SetEdges(g EdgeGroup, e Edge, d Dimension) error {
	const op = "SetEdges"
	if g >= edgeGroupCount {
		return &Error{Kind: KindInvalidEnum, Op: op, Property: "edge group", Value: float64(g)}
	}
	if e >= edgeCount {
		return &Error{Kind: KindInvalidEnum, Op: op, Property: "edge", Value: float64(e)}
	}
	// Groups are laid out top, right, bottom, left from PropMarginTop.
	first := PropMarginTop + Property(g)*4
	if err := checkProperty(op, first, d); err != nil {
		return err
	}
	top, right, bottom, left := e.sides()
	for i, on := range []bool{top, right, bottom, left} {
		if on {
			*s.field(first + Property(i)) = d
		}
	}
	return nil
}

func invalidEnum(op, property string, v uint8) error {
	return &Error{Kind: KindInvalidEnum, Op: op, Property: property, Value: float64(v)}
}

// SetDisplay sets the display mode.
func (s *Style) SetDisplay(d Display) error {
	if d >= displayCount {
		return invalidEnum("SetDisplay", "display", uint8(d))
	}
	s.Display = d
	return nil
}

// SetPosition sets the positioning scheme.
func (s *Style) SetPosition(p Position) error {
	if p >= positionCount {
		return invalidEnum("SetPosition", "position", uint8(p))
	}
	s.Position = p
	return nil
}

// SetOverflow sets the overflow behaviour of both axes.
func (s *Style) SetOverflow(x, y Overflow) error {
	if x >= overflowCount {
		return invalidEnum("SetOverflow", "overflow-x", uint8(x))
	}
	if y >= overflowCount {
		return invalidEnum("SetOverflow", "overflow-y", uint8(y))
	}
	s.OverflowX, s.OverflowY = x, y
	return nil
}

// SetFlexDirection sets the main axis of a flex container.
func (s *Style) SetFlexDirection(d FlexDirection) error {
	if d >= flexDirectionCount {
		return invalidEnum("SetFlexDirection", "flex-direction", uint8(d))
	}
	s.FlexDirection = d
	return nil
}

// SetFlexWrap sets the wrapping mode of a flex container.
func (s *Style) SetFlexWrap(w FlexWrap) error {
	if w >= flexWrapCount {
		return invalidEnum("SetFlexWrap", "flex-wrap", uint8(w))
	}
	s.FlexWrap = w
	return nil
}

// SetAlignItems sets align-items.
func (s *Style) SetAlignItems(a AlignItems) error {
	if a >= alignItemsCount {
		return invalidEnum("SetAlignItems", "align-items", uint8(a))
	}
	s.AlignItems = a
	return nil
}

// SetAlignSelf sets align-self.
func (s *Style) SetAlignSelf(a AlignItems) error {
	if a >= alignItemsCount {
		return invalidEnum("SetAlignSelf", "align-self", uint8(a))
	}
	s.AlignSelf = a
	return nil
}

// SetJustifyItems sets justify-items.
func (s *Style) SetJustifyItems(a AlignItems) error {
	if a >= alignItemsCount {
		return invalidEnum("SetJustifyItems", "justify-items", uint8(a))
	}
	s.JustifyItems = a
	return nil
}

// SetJustifySelf sets justify-self.
func (s *Style) SetJustifySelf(a AlignItems) error {
	if a >= alignItemsCount {
		return invalidEnum("SetJustifySelf", "justify-self", uint8(a))
	}
	s.JustifySelf = a
	return nil
}

// SetAlignContent sets align-content.
func (s *Style) SetAlignContent(a AlignContent) error {
	if a >= alignContentCount {
		return invalidEnum("SetAlignContent", "align-content", uint8(a))
	}
	s.AlignContent = a
	return nil
}

// SetJustifyContent sets justify-content.
func (s *Style) SetJustifyContent(a AlignContent) error {
	if a >= alignContentCount {
		return invalidEnum("SetJustifyContent", "justify-content", uint8(a))
	}
	s.JustifyContent = a
	return nil
}

// SetGridAutoFlow sets grid-auto-flow.
func (s *Style) SetGridAutoFlow(f GridAutoFlow) error {
	if f >= gridAutoFlowCount {
		return invalidEnum("SetGridAutoFlow", "grid-auto-flow", uint8(f))
	}
	s.GridAutoFlow = f
	return nil
}

func checkNumber(op, property string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &Error{Kind: KindInvalidNumeric, Op: op, Property: property, Value: v}
	}
	if v < 0 {
		return &Error{Kind: KindInvalidNumeric, Op: op, Property: property, Value: v, Detail: "negative"}
	}
	return nil
}

// SetFlexGrow sets flex-grow.
func (s *Style) SetFlexGrow(v float64) error {
	if err := checkNumber("SetFlexGrow", "flex-grow", v); err != nil {
		return err
	}
	s.FlexGrow = v
	return nil
}

// SetFlexShrink sets flex-shrink.
func (s *Style) SetFlexShrink(v float64) error {
	if err := checkNumber("SetFlexShrink", "flex-shrink", v); err != nil {
		return err
	}
	s.FlexShrink = v
	return nil
}

// SetScrollbarWidth sets the gutter reserved by overflow: scroll.
func (s *Style) SetScrollbarWidth(v float64) error {
	if err := checkNumber("SetScrollbarWidth", "scrollbar-width", v); err != nil {
		return err
	}
	s.ScrollbarWidth = v
	return nil
}

// SetGridRow sets grid-row.
func (s *Style) SetGridRow(p GridPlacement) error {
	s.GridRow = p
	return nil
}

// SetGridColumn sets grid-column.
func (s *Style) SetGridColumn(p GridPlacement) error {
	s.GridColumn = p
	return nil
}

func checkTracks(op, property string, tracks []TrackSizing) error {
	for _, t := range tracks {
		if err := checkDimension(op, property+" min", trackMinUnits, false, t.Min); err != nil {
			return err
		}
		if err := checkDimension(op, property+" max", trackMaxUnits, false, t.Max); err != nil {
			return err
		}
	}
	return nil
}

// SetGridTemplateRows sets grid-template-rows.
func (s *Style) SetGridTemplateRows(tracks ...TrackSizing) error {
	if err := checkTracks("SetGridTemplateRows", "grid-template-rows", tracks); err != nil {
		return err
	}
	s.GridTemplateRows = append([]TrackSizing(nil), tracks...)
	return nil
}

// SetGridTemplateColumns sets grid-template-columns.
func (s *Style) SetGridTemplateColumns(tracks ...TrackSizing) error {
	if err := checkTracks("SetGridTemplateColumns", "grid-template-columns", tracks); err != nil {
		return err
	}
	s.GridTemplateColumns = append([]TrackSizing(nil), tracks...)
	return nil
}

// SetGridAutoRows sets grid-auto-rows.
func (s *Style) SetGridAutoRows(tracks ...TrackSizing) error {
	if err := checkTracks("SetGridAutoRows", "grid-auto-rows", tracks); err != nil {
		return err
	}
	s.GridAutoRows = append([]TrackSizing(nil), tracks...)
	return nil
}

// SetGridAutoColumns sets grid-auto-columns.
func (s *Style) SetGridAutoColumns(tracks ...TrackSizing) error {
	if err := checkTracks("SetGridAutoColumns", "grid-auto-columns", tracks); err != nil {
		return err
	}
	s.GridAutoColumns = append([]TrackSizing(nil), tracks...)
	return nil
}

// Validate checks every field of s. It returns the first violation.
func (s *Style) Validate() error {
	const op = "Validate"
	enums := []struct {
		name  string
		v, hi uint8
	}{
		{"display", uint8(s.Display), uint8(displayCount)},
		{"position", uint8(s.Position), uint8(positionCount)},
		{"overflow-x", uint8(s.OverflowX), uint8(overflowCount)},
		{"overflow-y", uint8(s.OverflowY), uint8(overflowCount)},
		{"flex-direction", uint8(s.FlexDirection), uint8(flexDirectionCount)},
		{"flex-wrap", uint8(s.FlexWrap), uint8(flexWrapCount)},
		{"align-items", uint8(s.AlignItems), uint8(alignItemsCount)},
		{"align-self", uint8(s.AlignSelf), uint8(alignItemsCount)},
		{"justify-items", uint8(s.JustifyItems), uint8(alignItemsCount)},
		{"justify-self", uint8(s.JustifySelf), uint8(alignItemsCount)},
		{"align-content", uint8(s.AlignContent), uint8(alignContentCount)},
		{"justify-content", uint8(s.JustifyContent), uint8(alignContentCount)},
		{"grid-auto-flow", uint8(s.GridAutoFlow), uint8(gridAutoFlowCount)},
	}
	for _, e := range enums {
		if e.v >= e.hi {
			return invalidEnum(op, e.name, e.v)
		}
	}
	for p := range propertyCount {
		if err := checkProperty(op, p, *s.field(p)); err != nil {
			return err
		}
	}
	if err := checkNumber(op, "flex-grow", s.FlexGrow); err != nil {
		return err
	}
	if err := checkNumber(op, "flex-shrink", s.FlexShrink); err != nil {
		return err
	}
	if err := checkNumber(op, "scrollbar-width", s.ScrollbarWidth); err != nil {
		return err
	}
	grids := []struct {
		name   string
		tracks []TrackSizing
	}{
		{"grid-template-rows", s.GridTemplateRows},
		{"grid-template-columns", s.GridTemplateColumns},
		{"grid-auto-rows", s.GridAutoRows},
		{"grid-auto-columns", s.GridAutoColumns},
	}
	for _, g := range grids {
		if err := checkTracks(op, g.name, g.tracks); err != nil {
			return err
		}
	}
	return nil
}

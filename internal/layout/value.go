package layout

import (
	"fmt"
	"strconv"
)

// Unit specifies how a Dimension is interpreted.
type Unit uint8

const (
	UnitNone              Unit = iota // No value (aspect ratio unset)
	UnitLength                        // Absolute pixels
	UnitPercent                       // Percentage of the reference size, 0-100
	UnitMinContent                    // Smallest size that fits the content
	UnitMaxContent                    // Size the content takes without wrapping
	UnitFitContentPx                  // fit-content() with a pixel limit
	UnitFitContentPercent             // fit-content() with a percentage limit
	UnitAuto                          // Determined by the layout algorithm
	UnitFr                            // Flexible grid track fraction
	unitCount
)

var unitNames = [unitCount]string{
	UnitNone:              "none",
	UnitLength:            "length",
	UnitPercent:           "percent",
	UnitMinContent:        "min-content",
	UnitMaxContent:        "max-content",
	UnitFitContentPx:      "fit-content-px",
	UnitFitContentPercent: "fit-content-percent",
	UnitAuto:              "auto",
	UnitFr:                "fr",
}

func (u Unit) String() string {
	if u < unitCount {
		return unitNames[u]
	}
	return "Unit(" + strconv.Itoa(int(u)) + ")"
}

// ParseUnit maps a unit name as printed by Unit.String back to the Unit.
func ParseUnit(s string) (Unit, bool) {
	for u, name := range unitNames {
		if name == s {
			return Unit(u), true
		}
	}
	return 0, false
}

// carriesValue reports whether Value is meaningful for u.
func (u Unit) carriesValue() bool {
	switch u {
	case UnitLength, UnitPercent, UnitFitContentPx, UnitFitContentPercent, UnitFr:
		return true
	}
	return false
}

// Dimension is a length-like style value.
type Dimension struct {
	Value float64
	Unit  Unit
}

// None returns the empty dimension.
func None() Dimension {
	return Dimension{Unit: UnitNone}
}

// Length returns an absolute length in pixels.
func Length(px float64) Dimension {
	return Dimension{Value: px, Unit: UnitLength}
}

// Percent returns a percentage of the reference size on a 0-100 scale.
func Percent(p float64) Dimension {
	return Dimension{Value: p, Unit: UnitPercent}
}

// Auto returns a dimension resolved by the layout algorithm.
func Auto() Dimension {
	return Dimension{Unit: UnitAuto}
}

// MinContent returns the min-content keyword.
func MinContent() Dimension {
	return Dimension{Unit: UnitMinContent}
}

// MaxContent returns the max-content keyword.
func MaxContent() Dimension {
	return Dimension{Unit: UnitMaxContent}
}

// FitContent returns fit-content(px).
func FitContent(px float64) Dimension {
	return Dimension{Value: px, Unit: UnitFitContentPx}
}

// FitContentPercent returns fit-content(p%).
func FitContentPercent(p float64) Dimension {
	return Dimension{Value: p, Unit: UnitFitContentPercent}
}

// Fr returns a flexible grid track fraction.
func Fr(f float64) Dimension {
	return Dimension{Value: f, Unit: UnitFr}
}

// Ratio returns an aspect ratio of width / height.
func Ratio(r float64) Dimension {
	return Dimension{Value: r, Unit: UnitLength}
}

// IsAuto returns true if this value is the auto keyword.
func (d Dimension) IsAuto() bool {
	return d.Unit == UnitAuto
}

// IsDefinite returns true for lengths and percentages.
func (d Dimension) IsDefinite() bool {
	return d.Unit == UnitLength || d.Unit == UnitPercent
}

// Resolve returns the pixel value of a length or percentage against
// reference. Other units, and percentages of an undefined reference,
// resolve to NaN.
func (d Dimension) Resolve(reference float64) float64 {
	switch d.Unit {
	case UnitLength:
		return d.Value
	case UnitPercent:
		return d.Value * reference / 100
	default:
		return undefined
	}
}

// ResolveOrZero is Resolve with undefined results mapped to 0.
func (d Dimension) ResolveOrZero(reference float64) float64 {
	return or(d.Resolve(reference), 0)
}

func (d Dimension) String() string {
	v := strconv.FormatFloat(d.Value, 'g', -1, 64)
	switch d.Unit {
	case UnitLength:
		return v + "px"
	case UnitPercent:
		return v + "%"
	case UnitFitContentPx:
		return "fit-content(" + v + "px)"
	case UnitFitContentPercent:
		return "fit-content(" + v + "%)"
	case UnitFr:
		return v + "fr"
	case UnitNone, UnitMinContent, UnitMaxContent, UnitAuto:
		return d.Unit.String()
	default:
		return fmt.Sprintf("%s(%s)", d.Unit, v)
	}
}

// Edges holds one Dimension per box side, in CSS order.
type Edges struct {
	Top, Right, Bottom, Left Dimension
}

// EdgeAll returns Edges with the same value on every side.
func EdgeAll(d Dimension) Edges {
	return Edges{Top: d, Right: d, Bottom: d, Left: d}
}

// EdgeSymmetric returns Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(vertical, horizontal Dimension) Edges {
	return Edges{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// EdgeTRBL returns Edges from top, right, bottom, left values.
func EdgeTRBL(top, right, bottom, left Dimension) Edges {
	return Edges{Top: top, Right: right, Bottom: bottom, Left: left}
}

// resolve resolves every side against reference, keeping NaN for sides
// that do not resolve (auto margins, percentages of an undefined size).
func (e Edges) resolve(reference float64) Insets {
	return Insets{
		Top:    e.Top.Resolve(reference),
		Right:  e.Right.Resolve(reference),
		Bottom: e.Bottom.Resolve(reference),
		Left:   e.Left.Resolve(reference),
	}
}

// resolveOrZero resolves every side against reference. Padding, border and
// margin percentages all refer to the containing block's width.
func (e Edges) resolveOrZero(reference float64) Insets {
	return Insets{
		Top:    e.Top.ResolveOrZero(reference),
		Right:  e.Right.ResolveOrZero(reference),
		Bottom: e.Bottom.ResolveOrZero(reference),
		Left:   e.Left.ResolveOrZero(reference),
	}
}

// resolveInset resolves position offsets: left/right against the width and
// top/bottom against the height.
func (e Edges) resolveInset(reference Size) Insets {
	return Insets{
		Top:    e.Top.Resolve(reference.Height),
		Right:  e.Right.Resolve(reference.Width),
		Bottom: e.Bottom.Resolve(reference.Height),
		Left:   e.Left.Resolve(reference.Width),
	}
}

// autoEdges reports which sides are auto.
type autoEdges struct {
	Top, Right, Bottom, Left bool
}

func (e Edges) autoSides() autoEdges {
	return autoEdges{Top: e.Top.IsAuto(), Right: e.Right.IsAuto(), Bottom: e.Bottom.IsAuto(), Left: e.Left.IsAuto()}
}

func (a autoEdges) mainStart(dir FlexDirection) bool {
	if dir.IsRow() {
		return a.Left
	}
	return a.Top
}

func (a autoEdges) mainEnd(dir FlexDirection) bool {
	if dir.IsRow() {
		return a.Right
	}
	return a.Bottom
}

func (a autoEdges) crossStart(dir FlexDirection) bool {
	if dir.IsRow() {
		return a.Top
	}
	return a.Left
}

func (a autoEdges) crossEnd(dir FlexDirection) bool {
	if dir.IsRow() {
		return a.Bottom
	}
	return a.Right
}

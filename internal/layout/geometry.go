package layout

import (
	"fmt"
	"math"
)

// undefined marks a length that carries no value.
var undefined = math.NaN()

func isDefined(v float64) bool { return !math.IsNaN(v) }

// or returns v when it is defined and fallback otherwise.
func or(v, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return v
}

// maybeMin returns min(v, limit). An undefined limit leaves v unchanged.
func maybeMin(v, limit float64) float64 {
	if math.IsNaN(v) || math.IsNaN(limit) {
		return v
	}
	return math.Min(v, limit)
}

// maybeMax returns max(v, limit). An undefined limit leaves v unchanged.
func maybeMax(v, limit float64) float64 {
	if math.IsNaN(v) || math.IsNaN(limit) {
		return v
	}
	return math.Max(v, limit)
}

// maybeClamp clamps v into [lo, hi]. When lo > hi the minimum wins.
func maybeClamp(v, lo, hi float64) float64 {
	return maybeMax(maybeMin(v, hi), lo)
}

func maybeAdd(v, d float64) float64 {
	if math.IsNaN(d) {
		return v
	}
	return v + d
}

func maybeSub(v, d float64) float64 {
	if math.IsNaN(d) {
		return v
	}
	return v - d
}

// sameLength reports whether two optional lengths are equal, treating two
// undefined values as equal.
func sameLength(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}

// AbsoluteAxis names a physical axis.
type AbsoluteAxis uint8

const (
	Horizontal AbsoluteAxis = iota
	Vertical
)

// Other returns the perpendicular axis.
func (a AbsoluteAxis) Other() AbsoluteAxis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a AbsoluteAxis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

func nonePoint() Point { return Point{X: undefined, Y: undefined} }

// Add returns p offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Size holds a width and a height. Inside the engine either may be NaN,
// meaning the dimension is not yet determined.
type Size struct {
	Width, Height float64
}

func noneSize() Size { return Size{Width: undefined, Height: undefined} }

// Get returns the dimension along axis.
func (s Size) Get(axis AbsoluteAxis) float64 {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// With returns s with the dimension along axis replaced.
func (s Size) With(axis AbsoluteAxis, v float64) Size {
	if axis == Horizontal {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

func (s Size) main(dir FlexDirection) float64 {
	if dir.IsRow() {
		return s.Width
	}
	return s.Height
}

func (s Size) cross(dir FlexDirection) float64 {
	if dir.IsRow() {
		return s.Height
	}
	return s.Width
}

func (s *Size) setMain(dir FlexDirection, v float64) {
	if dir.IsRow() {
		s.Width = v
	} else {
		s.Height = v
	}
}

func (s *Size) setCross(dir FlexDirection, v float64) {
	if dir.IsRow() {
		s.Height = v
	} else {
		s.Width = v
	}
}

// Or fills undefined dimensions of s from o.
func (s Size) Or(o Size) Size {
	return Size{Width: or(s.Width, o.Width), Height: or(s.Height, o.Height)}
}

func (s Size) add(o Size) Size {
	return Size{Width: s.Width + o.Width, Height: s.Height + o.Height}
}

func (s Size) maybeSub(o Size) Size {
	return Size{Width: maybeSub(s.Width, o.Width), Height: maybeSub(s.Height, o.Height)}
}

func (s Size) maybeMax(o Size) Size {
	return Size{Width: maybeMax(s.Width, o.Width), Height: maybeMax(s.Height, o.Height)}
}

func (s Size) maybeClamp(lo, hi Size) Size {
	return Size{
		Width:  maybeClamp(s.Width, lo.Width, hi.Width),
		Height: maybeClamp(s.Height, lo.Height, hi.Height),
	}
}

// applyAspectRatio derives a missing dimension from the other one.
// ratio is width / height; an undefined ratio leaves s unchanged.
func (s Size) applyAspectRatio(ratio float64) Size {
	if !isDefined(ratio) {
		return s
	}
	switch {
	case isDefined(s.Width) && !isDefined(s.Height):
		s.Height = s.Width / ratio
	case isDefined(s.Height) && !isDefined(s.Width):
		s.Width = s.Height * ratio
	}
	return s
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// Insets holds one length per box side.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Horizontal returns Left + Right.
func (e Insets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e Insets) Vertical() float64 {
	return e.Top + e.Bottom
}

// Add returns the side-wise sum of e and o.
func (e Insets) Add(o Insets) Insets {
	return Insets{Top: e.Top + o.Top, Right: e.Right + o.Right, Bottom: e.Bottom + o.Bottom, Left: e.Left + o.Left}
}

func (e Insets) sumAxes() Size {
	return Size{Width: e.Horizontal(), Height: e.Vertical()}
}

func (e Insets) mainStart(dir FlexDirection) float64 {
	if dir.IsRow() {
		return e.Left
	}
	return e.Top
}

func (e Insets) mainEnd(dir FlexDirection) float64 {
	if dir.IsRow() {
		return e.Right
	}
	return e.Bottom
}

func (e Insets) crossStart(dir FlexDirection) float64 {
	if dir.IsRow() {
		return e.Top
	}
	return e.Left
}

func (e Insets) crossEnd(dir FlexDirection) float64 {
	if dir.IsRow() {
		return e.Bottom
	}
	return e.Right
}

func (e Insets) mainSum(dir FlexDirection) float64 {
	if dir.IsRow() {
		return e.Horizontal()
	}
	return e.Vertical()
}

func (e Insets) crossSum(dir FlexDirection) float64 {
	if dir.IsRow() {
		return e.Vertical()
	}
	return e.Horizontal()
}

// Rect is an axis-aligned rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Contains reports whether (x, y) lies inside r. Points on the right and
// bottom edges are outside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset returns r shrunk by e on each side.
func (r Rect) Inset(e Insets) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  r.Width - e.Horizontal(),
		Height: r.Height - e.Vertical(),
	}
}

// AvailableSpaceKind tells how much room a node may take along one axis.
type AvailableSpaceKind uint8

const (
	SpaceDefinite   AvailableSpaceKind = iota // A fixed number of pixels
	SpaceMinContent                           // Size to the smallest content size
	SpaceMaxContent                           // Size to the largest content size
)

// AvailableSpace is the space constraint along one axis.
type AvailableSpace struct {
	Kind  AvailableSpaceKind
	Value float64 // Meaningful only for SpaceDefinite
}

// Definite returns a fixed available space of v pixels.
func Definite(v float64) AvailableSpace {
	return AvailableSpace{Kind: SpaceDefinite, Value: v}
}

var (
	MinContentSpace = AvailableSpace{Kind: SpaceMinContent}
	MaxContentSpace = AvailableSpace{Kind: SpaceMaxContent}
)

// IsDefinite reports whether a holds a pixel value.
func (a AvailableSpace) IsDefinite() bool {
	return a.Kind == SpaceDefinite
}

// Option returns the pixel value or NaN.
func (a AvailableSpace) Option() float64 {
	if a.Kind == SpaceDefinite {
		return a.Value
	}
	return undefined
}

// OrElse returns the pixel value, or fallback when a is not definite.
func (a AvailableSpace) OrElse(fallback float64) float64 {
	if a.Kind == SpaceDefinite {
		return a.Value
	}
	return fallback
}

func (a AvailableSpace) maybeSub(v float64) AvailableSpace {
	if a.Kind == SpaceDefinite && isDefined(v) {
		return Definite(a.Value - v)
	}
	return a
}

// maybeSet replaces a with a definite space when v is defined.
func (a AvailableSpace) maybeSet(v float64) AvailableSpace {
	if isDefined(v) {
		return Definite(v)
	}
	return a
}

func (a AvailableSpace) maybeClamp(lo, hi float64) AvailableSpace {
	if a.Kind == SpaceDefinite {
		return Definite(maybeClamp(a.Value, lo, hi))
	}
	return a
}

func (a AvailableSpace) mapDefinite(f func(float64) float64) AvailableSpace {
	if a.Kind == SpaceDefinite {
		return Definite(f(a.Value))
	}
	return a
}

// roughlyEqual compares two constraints, allowing float noise on definite values.
func (a AvailableSpace) roughlyEqual(b AvailableSpace) bool {
	if a.Kind != b.Kind {
		return false
	}
	return a.Kind != SpaceDefinite || math.Abs(a.Value-b.Value) < 1e-4
}

func (a AvailableSpace) String() string {
	switch a.Kind {
	case SpaceMinContent:
		return "min-content"
	case SpaceMaxContent:
		return "max-content"
	default:
		return fmt.Sprintf("%gpx", a.Value)
	}
}

// AvailableSize is the space constraint in both axes.
type AvailableSize struct {
	Width, Height AvailableSpace
}

// DefiniteSize returns an envelope of exactly w by h pixels.
func DefiniteSize(w, h float64) AvailableSize {
	return AvailableSize{Width: Definite(w), Height: Definite(h)}
}

// MaxContentSize returns an unconstrained envelope.
func MaxContentSize() AvailableSize {
	return AvailableSize{Width: MaxContentSpace, Height: MaxContentSpace}
}

// MinContentSize returns an envelope that asks for the smallest content size.
func MinContentSize() AvailableSize {
	return AvailableSize{Width: MinContentSpace, Height: MinContentSpace}
}

// Option returns the definite values as a Size with NaN for the others.
func (a AvailableSize) Option() Size {
	return Size{Width: a.Width.Option(), Height: a.Height.Option()}
}

// Get returns the constraint along axis.
func (a AvailableSize) Get(axis AbsoluteAxis) AvailableSpace {
	if axis == Horizontal {
		return a.Width
	}
	return a.Height
}

// With returns a with the constraint along axis replaced.
func (a AvailableSize) With(axis AbsoluteAxis, v AvailableSpace) AvailableSize {
	if axis == Horizontal {
		a.Width = v
	} else {
		a.Height = v
	}
	return a
}

func (a AvailableSize) main(dir FlexDirection) AvailableSpace {
	if dir.IsRow() {
		return a.Width
	}
	return a.Height
}

func (a AvailableSize) cross(dir FlexDirection) AvailableSpace {
	if dir.IsRow() {
		return a.Height
	}
	return a.Width
}

func (a *AvailableSize) setMain(dir FlexDirection, v AvailableSpace) {
	if dir.IsRow() {
		a.Width = v
	} else {
		a.Height = v
	}
}

func (a *AvailableSize) setCross(dir FlexDirection, v AvailableSpace) {
	if dir.IsRow() {
		a.Height = v
	} else {
		a.Width = v
	}
}

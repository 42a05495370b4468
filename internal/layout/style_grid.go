package layout

import (
	"fmt"
	"strconv"
)

// GridPlacement places an item along one grid axis. Lines are 1-based;
// negative lines count back from the end of the explicit grid (-1 is the
// last explicit line). Zero fields are unset.
type GridPlacement struct {
	Start int16
	End   int16
	Span  uint16
}

// GridLine places an item starting at line n.
func GridLine(n int16) GridPlacement {
	return GridPlacement{Start: n}
}

// GridLines places an item between lines start and end.
func GridLines(start, end int16) GridPlacement {
	return GridPlacement{Start: start, End: end}
}

// GridSpan auto-places an item spanning n tracks.
func GridSpan(n uint16) GridPlacement {
	return GridPlacement{Span: n}
}

// IsAuto reports whether p carries no line.
func (p GridPlacement) IsAuto() bool {
	return p.Start == 0 && p.End == 0
}

func (p GridPlacement) String() string {
	switch {
	case p.Start != 0 && p.End != 0:
		return fmt.Sprintf("%d / %d", p.Start, p.End)
	case p.Start != 0 && p.Span > 0:
		return fmt.Sprintf("%d / span %d", p.Start, p.Span)
	case p.End != 0 && p.Span > 0:
		return fmt.Sprintf("span %d / %d", p.Span, p.End)
	case p.Start != 0:
		return strconv.Itoa(int(p.Start))
	case p.End != 0:
		return "auto / " + strconv.Itoa(int(p.End))
	case p.Span > 0:
		return fmt.Sprintf("span %d", p.Span)
	}
	return "auto"
}

// PlacementResolution is a placement mapped onto the explicit grid.
// Start and End are line indices where 0 is the first explicit line and
// explicitTrackCount the last; lines outside that range belong to the
// implicit grid. When Definite is false only Span is meaningful.
type PlacementResolution struct {
	Start, End int
	Span       int
	Definite   bool
}

// Resolve maps p onto a grid with explicitTrackCount explicit tracks.
// Precedence, highest first: start+end, start+span, end+span, start only,
// end only, span only, auto (span 1). Equal lines become a span of one and
// reversed lines are swapped.
func (p GridPlacement) Resolve(explicitTrackCount int) PlacementResolution {
	line := func(l int16) int {
		if l > 0 {
			return int(l) - 1
		}
		return explicitTrackCount + 1 + int(l)
	}
	span := max(int(p.Span), 1)
	var start, end int
	switch {
	case p.Start != 0 && p.End != 0:
		start, end = line(p.Start), line(p.End)
		if start == end {
			end = start + 1
		} else if start > end {
			start, end = end, start
		}
	case p.Start != 0:
		start = line(p.Start)
		end = start + span
	case p.End != 0:
		end = line(p.End)
		start = end - span
	default:
		return PlacementResolution{Span: span}
	}
	return PlacementResolution{Start: start, End: end, Span: end - start, Definite: true}
}

// TrackSizing is a grid track sizing function: minmax(Min, Max).
type TrackSizing struct {
	Min Dimension
	Max Dimension
}

// Track returns the sizing function for a single track value. Flexible
// and fit-content values get an auto minimum.
func Track(d Dimension) TrackSizing {
	min := d
	switch d.Unit {
	case UnitFr, UnitFitContentPx, UnitFitContentPercent:
		min = Auto()
	}
	return TrackSizing{Min: min, Max: d}
}

// MinMax returns minmax(min, max).
func MinMax(min, max Dimension) TrackSizing {
	return TrackSizing{Min: min, Max: max}
}

// Repeat expands repeat(n, tracks...).
func Repeat(n int, tracks ...TrackSizing) []TrackSizing {
	out := make([]TrackSizing, 0, n*len(tracks))
	for range n {
		out = append(out, tracks...)
	}
	return out
}

// Tracks converts track values with Track.
func Tracks(values ...Dimension) []TrackSizing {
	out := make([]TrackSizing, len(values))
	for i, v := range values {
		out[i] = Track(v)
	}
	return out
}

func (t TrackSizing) String() string {
	if t.Min == t.Max || (t.Min.IsAuto() && t.Max.Unit == UnitFr) {
		return t.Max.String()
	}
	return "minmax(" + t.Min.String() + ", " + t.Max.String() + ")"
}

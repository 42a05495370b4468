package textmeasure

import (
	"math"
	"strings"

	"github.com/grindlemire/go-boxlayout/internal/layout"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// Text is a layout.Measurer for a run of monospace text.
type Text struct {
	content    string
	cellWidth  float64
	lineHeight float64
	cond       *runewidth.Condition

	// Column widths of the words of each hard line.
	lines [][]int
}

// Option configures a Text.
type Option func(*Text)

// WithCellSize sets the pixel size of one character cell. A dimension that
// is not a positive finite number keeps its default of 1.
func WithCellSize(width, height float64) Option {
	return func(t *Text) {
		if validCell(width) {
			t.cellWidth = width
		}
		if validCell(height) {
			t.lineHeight = height
		}
	}
}

func validCell(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// WithEastAsianWidth treats ambiguous-width runes as two cells wide.
func WithEastAsianWidth(on bool) Option {
	return func(t *Text) {
		t.cond.EastAsianWidth = on
	}
}

// New returns a measurer for s. Cells default to 1x1.
func New(s string, opts ...Option) *Text {
	t := &Text{
		content:    norm.NFC.String(s),
		cellWidth:  1,
		lineHeight: 1,
		cond:       runewidth.NewCondition(),
	}
	for _, opt := range opts {
		opt(t)
	}
	for _, line := range strings.Split(t.content, "\n") {
		var widths []int
		for _, w := range strings.Fields(line) {
			widths = append(widths, t.cond.StringWidth(w))
		}
		t.lines = append(t.lines, widths)
	}
	return t
}

// String returns the normalized text.
func (t *Text) String() string {
	return t.content
}

// Columns returns the width of the widest hard line, in cells.
func (t *Text) Columns() int {
	w, _ := t.wrap(math.Inf(1))
	return w
}

// Measure implements layout.Measurer.
func (t *Text) Measure(known layout.Size, available layout.AvailableSize) layout.Size {
	limit := math.Inf(1)
	switch {
	case !math.IsNaN(known.Width):
		limit = known.Width / t.cellWidth
	case available.Width.Kind == layout.SpaceMinContent:
		limit = 0
	case available.Width.Kind == layout.SpaceDefinite:
		limit = available.Width.Value / t.cellWidth
	}

	cols, rows := t.wrap(limit)
	size := layout.Size{
		Width:  float64(cols) * t.cellWidth,
		Height: float64(rows) * t.lineHeight,
	}
	if !math.IsNaN(known.Width) {
		size.Width = known.Width
	}
	if !math.IsNaN(known.Height) {
		size.Height = known.Height
	}
	return size
}

// wrap breaks every hard line greedily at limit columns. A word wider
// than the limit gets a line of its own. It returns the widest line and
// the number of lines.
func (t *Text) wrap(limit float64) (cols, rows int) {
	for _, words := range t.lines {
		cur := -1
		for _, w := range words {
			switch {
			case cur < 0:
				cur = w
			case float64(cur+1+w) <= limit:
				cur += 1 + w
			default:
				cols = max(cols, cur)
				rows++
				cur = w
			}
		}
		cols = max(cols, cur)
		rows++
	}
	return cols, rows
}

package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlex_Layout(t *testing.T) {
	type tc struct {
		container Style
		children  []Style
		available AvailableSize
		want      []box
		wantRoot  box
	}

	tests := map[string]tc{
		"space-between spreads fixed items": {
			container: mkStyle(px(300, 100), func(s *Style) { s.JustifyContent = ContentSpaceBetween }),
			children:  []Style{mkStyle(px(50, 20)), mkStyle(px(50, 20)), mkStyle(px(50, 20))},
			available: DefiniteSize(300, 100),
			want:      []box{{0, 0, 50, 20}, {125, 0, 50, 20}, {250, 0, 50, 20}},
			wantRoot:  box{0, 0, 300, 100},
		},
		"space-around puts half gaps at the ends": {
			container: mkStyle(px(300, 100), func(s *Style) { s.JustifyContent = ContentSpaceAround }),
			children:  []Style{mkStyle(px(50, 20)), mkStyle(px(50, 20)), mkStyle(px(50, 20))},
			available: DefiniteSize(300, 100),
			want:      []box{{25, 0, 50, 20}, {125, 0, 50, 20}, {225, 0, 50, 20}},
			wantRoot:  box{0, 0, 300, 100},
		},
		"space-evenly shares free space with the ends": {
			container: mkStyle(px(300, 100), func(s *Style) { s.JustifyContent = ContentSpaceEvenly }),
			children:  []Style{mkStyle(px(60, 20)), mkStyle(px(60, 20)), mkStyle(px(60, 20))},
			available: DefiniteSize(300, 100),
			want:      []box{{30, 0, 60, 20}, {120, 0, 60, 20}, {210, 0, 60, 20}},
			wantRoot:  box{0, 0, 300, 100},
		},
		"min wins over a smaller max": {
			container: mkStyle(px(100, 100)),
			children: []Style{mkStyle(px(40, 10), func(s *Style) {
				s.MinWidth, s.MaxWidth = Length(50), Length(30)
			})},
			available: DefiniteSize(100, 100),
			want:      []box{{0, 0, 50, 10}},
			wantRoot:  box{0, 0, 100, 100},
		},
		"wrap-reverse stacks lines from the cross end": {
			container: mkStyle(px(100, 100), func(s *Style) {
				s.FlexWrap = WrapReverse
				s.AlignContent = ContentFlexStart
			}),
			children:  []Style{mkStyle(px(60, 20)), mkStyle(px(60, 20))},
			available: DefiniteSize(100, 100),
			want:      []box{{0, 80, 60, 20}, {0, 60, 60, 20}},
			wantRoot:  box{0, 0, 100, 100},
		},
		"align-content center packs lines in the middle": {
			container: mkStyle(px(100, 100), func(s *Style) {
				s.FlexWrap = Wrap
				s.AlignContent = ContentCenter
			}),
			children:  []Style{mkStyle(px(60, 20)), mkStyle(px(60, 20))},
			available: DefiniteSize(100, 100),
			want:      []box{{0, 30, 60, 20}, {0, 50, 60, 20}},
			wantRoot:  box{0, 0, 100, 100},
		},
		"align-content space-between pushes lines to the edges": {
			container: mkStyle(px(100, 100), func(s *Style) {
				s.FlexWrap = Wrap
				s.AlignContent = ContentSpaceBetween
			}),
			children:  []Style{mkStyle(px(60, 20)), mkStyle(px(60, 20))},
			available: DefiniteSize(100, 100),
			want:      []box{{0, 0, 60, 20}, {0, 80, 60, 20}},
			wantRoot:  box{0, 0, 100, 100},
		},
		"column-reverse wrap with space-evenly lines": {
			container: mkStyle(px(100, 100), direction(FlexColumnReverse), func(s *Style) {
				s.FlexWrap = Wrap
				s.AlignContent = ContentSpaceEvenly
			}),
			children:  []Style{mkStyle(px(20, 60)), mkStyle(px(20, 60))},
			available: DefiniteSize(100, 100),
			want:      []box{{20, 40, 20, 60}, {60, 40, 20, 60}},
			wantRoot:  box{0, 0, 100, 100},
		},
		"grow factors split free space": {
			container: mkStyle(px(300, 100)),
			children: []Style{
				mkStyle(grow(1), func(s *Style) { s.FlexBasis = Length(0) }),
				mkStyle(grow(2), func(s *Style) { s.FlexBasis = Length(0) }),
			},
			available: DefiniteSize(300, 100),
			want:      []box{{0, 0, 100, 100}, {100, 0, 200, 100}},
			wantRoot:  box{0, 0, 300, 100},
		},
		"equal shrink": {
			container: mkStyle(px(300, 50)),
			children:  []Style{mkStyle(px(200, 50)), mkStyle(px(200, 50))},
			available: DefiniteSize(300, 50),
			want:      []box{{0, 0, 150, 50}, {150, 0, 150, 50}},
			wantRoot:  box{0, 0, 300, 50},
		},
		"shrink weighted by basis": {
			container: mkStyle(px(240, 50)),
			children:  []Style{mkStyle(px(100, 50)), mkStyle(px(200, 50))},
			available: DefiniteSize(240, 50),
			want:      []box{{0, 0, 80, 50}, {80, 0, 160, 50}},
			wantRoot:  box{0, 0, 240, 50},
		},
		"max size freezes an item": {
			container: mkStyle(px(300, 10)),
			children: []Style{
				mkStyle(grow(1), func(s *Style) { s.FlexBasis = Length(0); s.MaxWidth = Length(50) }),
				mkStyle(grow(1), func(s *Style) { s.FlexBasis = Length(0) }),
				mkStyle(grow(1), func(s *Style) { s.FlexBasis = Length(0) }),
			},
			available: DefiniteSize(300, 10),
			want:      []box{{0, 0, 50, 10}, {50, 0, 125, 10}, {175, 0, 125, 10}},
			wantRoot:  box{0, 0, 300, 10},
		},
		"percent child centered": {
			container: mkStyle(px(100, 100), func(s *Style) { s.JustifyContent = ContentCenter }),
			children:  []Style{mkStyle(width(Percent(50)))},
			available: DefiniteSize(100, 100),
			want:      []box{{25, 0, 50, 100}},
			wantRoot:  box{0, 0, 100, 100},
		},
		"column with centered cross axis": {
			container: mkStyle(px(100, 300), direction(FlexColumn), func(s *Style) { s.AlignItems = AlignCenter }),
			children:  []Style{mkStyle(px(20, 50)), mkStyle(px(20, 50))},
			available: DefiniteSize(100, 300),
			want:      []box{{40, 0, 20, 50}, {40, 50, 20, 50}},
			wantRoot:  box{0, 0, 100, 300},
		},
		"wrap onto a second line": {
			container: mkStyle(width(Length(100)), func(s *Style) { s.FlexWrap = Wrap }),
			children:  []Style{mkStyle(px(40, 20)), mkStyle(px(40, 20)), mkStyle(px(40, 20))},
			available: DefiniteSize(500, 500),
			want:      []box{{0, 0, 40, 20}, {40, 0, 40, 20}, {0, 20, 40, 20}},
			wantRoot:  box{0, 0, 100, 40},
		},
		"root shrinks to content": {
			container: DefaultStyle(),
			children:  []Style{mkStyle(px(30, 10)), mkStyle(px(30, 10))},
			available: DefiniteSize(500, 500),
			want:      []box{{0, 0, 30, 10}, {30, 0, 30, 10}},
			wantRoot:  box{0, 0, 60, 10},
		},
		"row reverse starts at main end": {
			container: mkStyle(px(100, 10), direction(FlexRowReverse)),
			children:  []Style{mkStyle(px(20, 10)), mkStyle(px(30, 10))},
			available: DefiniteSize(100, 10),
			want:      []box{{80, 0, 20, 10}, {50, 0, 30, 10}},
			wantRoot:  box{0, 0, 100, 10},
		},
		"column gap between items": {
			container: mkStyle(px(100, 10), func(s *Style) { s.ColumnGap = Length(10) }),
			children:  []Style{mkStyle(px(20, 10)), mkStyle(px(20, 10)), mkStyle(px(20, 10))},
			available: DefiniteSize(100, 10),
			want:      []box{{0, 0, 20, 10}, {30, 0, 20, 10}, {60, 0, 20, 10}},
			wantRoot:  box{0, 0, 100, 10},
		},
		"padding offsets children": {
			container: mkStyle(px(100, 100), func(s *Style) { s.Padding = EdgeAll(Length(10)) }),
			children:  []Style{mkStyle(px(20, 20))},
			available: DefiniteSize(100, 100),
			want:      []box{{0, 0, 20, 20}},
			wantRoot:  box{0, 0, 100, 100},
		},
		"auto margins absorb free space": {
			container: mkStyle(px(100, 100)),
			children: []Style{mkStyle(px(20, 20), func(s *Style) {
				s.Margin.Left, s.Margin.Right = Auto(), Auto()
			})},
			available: DefiniteSize(100, 100),
			want:      []box{{40, 0, 20, 20}},
			wantRoot:  box{0, 0, 100, 100},
		},
		"align-items flex-end": {
			container: mkStyle(px(100, 100), func(s *Style) { s.AlignItems = AlignFlexEnd }),
			children:  []Style{mkStyle(px(20, 20))},
			available: DefiniteSize(100, 100),
			want:      []box{{0, 80, 20, 20}},
			wantRoot:  box{0, 0, 100, 100},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree(t)
			var children []NodeID
			for _, s := range tt.children {
				id, err := tree.NewLeaf(s)
				require.NoError(t, err)
				children = append(children, id)
			}
			root := newParent(t, tree, tt.container, children...)
			require.NoError(t, tree.ComputeLayout(root, tt.available))

			if got := boxOf(t, tree, root); got != tt.wantRoot {
				t.Errorf("root = %+v, want %+v", got, tt.wantRoot)
			}
			var got []box
			for _, c := range children {
				got = append(got, boxOf(t, tree, c))
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("children mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlex_PaddingIsInAbsolutePosition(t *testing.T) {
	tree := newTestTree(t)
	child := newLeaf(t, tree, px(20, 20))
	root := newParent(t, tree, mkStyle(px(100, 100), func(s *Style) { s.Padding = EdgeAll(Length(10)) }), child)
	computeLayout(t, tree, root, 100, 100)

	l := layoutOf(t, tree, child)
	assert.Equal(t, Point{X: 0, Y: 0}, l.Location)
	assert.Equal(t, Point{X: 10, Y: 10}, l.Absolute)

	u, err := tree.UnroundedLayout(child)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 10, Y: 10}, u.Location)
}

func TestFlex_WrapsMeasuredText(t *testing.T) {
	tree := newTestTree(t)
	text, err := tree.NewLeafWithMeasure(DefaultStyle(), textMeasure(20, 10, 10))
	require.NoError(t, err)
	root := newParent(t, tree, mkStyle(width(Length(100))), text)
	computeLayout(t, tree, root, 500, 500)

	assert.Equal(t, box{0, 0, 100, 20}, boxOf(t, tree, text))
	assert.Equal(t, box{0, 0, 100, 20}, boxOf(t, tree, root))
}

func TestFlex_MeasuredLeafKeepsNaturalSize(t *testing.T) {
	tree := newTestTree(t)
	calls := 0
	m := MeasureFunc(func(known Size, _ AvailableSize) Size {
		calls++
		return known.Or(Size{Width: 40, Height: 10})
	})
	leaf, err := tree.NewLeafWithMeasure(DefaultStyle(), m)
	require.NoError(t, err)
	root := newParent(t, tree, mkStyle(px(200, 100), func(s *Style) { s.AlignItems = AlignFlexStart }), leaf)
	computeLayout(t, tree, root, 200, 100)

	assert.Equal(t, box{0, 0, 40, 10}, boxOf(t, tree, leaf))
	assert.Positive(t, calls)
}

func TestFlex_HiddenChildTakesNoSpace(t *testing.T) {
	tree := newTestTree(t)
	a := newLeaf(t, tree, px(50, 20))
	hidden := newLeaf(t, tree, px(100, 100), display(DisplayNone))
	b := newLeaf(t, tree, px(50, 20))
	root := newParent(t, tree, mkStyle(px(300, 100)), a, hidden, b)
	computeLayout(t, tree, root, 300, 100)

	assert.Equal(t, box{50, 0, 50, 20}, boxOf(t, tree, b))
	l := layoutOf(t, tree, hidden)
	assert.Equal(t, Layout{Order: 1}, l)
	assert.Equal(t, uint32(2), layoutOf(t, tree, b).Order)
}

func TestFlex_IntrinsicSize(t *testing.T) {
	type tc struct {
		mode IntrinsicMode
		want Size
	}

	tests := map[string]tc{
		"max-content keeps text on one line": {mode: IntrinsicMaxContent, want: Size{Width: 200, Height: 10}},
		"min-content breaks every glyph":     {mode: IntrinsicMinContent, want: Size{Width: 10, Height: 200}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree(t)
			text, err := tree.NewLeafWithMeasure(DefaultStyle(), textMeasure(20, 10, 10))
			require.NoError(t, err)
			root := newParent(t, tree, DefaultStyle(), text)

			got, err := tree.IntrinsicSize(root, tt.mode)
			require.NoError(t, err)
			if got != tt.want {
				t.Errorf("IntrinsicSize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlex_IntrinsicSizeOfFixedChildren(t *testing.T) {
	tree := newTestTree(t)
	a := newLeaf(t, tree, px(30, 10))
	b := newLeaf(t, tree, px(20, 15))
	root := newParent(t, tree, DefaultStyle(), a, b)

	got, err := tree.IntrinsicSize(root, IntrinsicMaxContent)
	require.NoError(t, err)
	assert.Equal(t, Size{Width: 50, Height: 15}, got)
}

func TestFlex_BaselineAlignment(t *testing.T) {
	tree := newTestTree(t)
	short := newLeaf(t, tree, px(10, 20))
	tall := newLeaf(t, tree, px(10, 40))
	start := newLeaf(t, tree, px(10, 10), func(s *Style) { s.AlignSelf = AlignFlexStart })
	inner := newLeaf(t, tree, px(10, 15))
	column := newParent(t, tree, mkStyle(direction(FlexColumn)), inner)
	root := newParent(t, tree, mkStyle(px(300, 100), func(s *Style) { s.AlignItems = AlignBaseline }),
		short, tall, start, column)
	computeLayout(t, tree, root, 300, 100)

	// Baselines line up at 40, the bottom of the tallest item. A column
	// takes its baseline from its first child.
	var got []float64
	for _, id := range []NodeID{short, tall, start, column} {
		got = append(got, layoutOf(t, tree, id).Location.Y)
	}
	assert.Equal(t, []float64{20, 0, 0, 25}, got)
	assert.Equal(t, 15.0, layoutOf(t, tree, column).Size.Height)
}

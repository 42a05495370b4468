package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLayout_Errors(t *testing.T) {
	type tc struct {
		available AvailableSize
		stale     bool
		wantKind  ErrorKind
	}

	tests := map[string]tc{
		"nan width":       {available: AvailableSize{Width: Definite(math.NaN()), Height: Definite(10)}, wantKind: KindInvalidNumeric},
		"infinite height": {available: AvailableSize{Width: Definite(10), Height: Definite(math.Inf(1))}, wantKind: KindInvalidNumeric},
		"unknown kind":    {available: AvailableSize{Width: AvailableSpace{Kind: 9}, Height: MaxContentSpace}, wantKind: KindInvalidEnum},
		"stale root":      {available: MaxContentSize(), stale: true, wantKind: KindNotFound},
		"content sizes":   {available: MinContentSize()},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree(t)
			root := newLeaf(t, tree, px(10, 10))
			if tt.stale {
				require.NoError(t, tree.Remove(root))
			}

			err := tree.ComputeLayout(root, tt.available)
			if tt.wantKind == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, KindOf(err))
		})
	}
}

func TestComputeLayout_RootLeaf(t *testing.T) {
	type tc struct {
		style Style
		want  Layout
	}

	tests := map[string]tc{
		"aspect ratio derives height": {
			style: mkStyle(width(Length(100)), func(s *Style) { s.AspectRatio = Ratio(2) }),
			want:  Layout{Size: Size{Width: 100, Height: 50}},
		},
		"scroll reserves a gutter": {
			style: mkStyle(px(50, 50), func(s *Style) {
				s.OverflowY = OverflowScroll
				s.ScrollbarWidth = 10
			}),
			want: Layout{Size: Size{Width: 50, Height: 50}, ScrollbarSize: Size{Width: 10}},
		},
		"margin offsets the root": {
			style: mkStyle(px(20, 20), func(s *Style) {
				s.Margin = EdgeTRBL(Length(5), Auto(), Auto(), Length(7))
			}),
			want: Layout{
				Location: Point{X: 7, Y: 5},
				Absolute: Point{X: 7, Y: 5},
				Size:     Size{Width: 20, Height: 20},
				Margin:   Insets{Top: 5, Left: 7},
			},
		},
		"padding is part of the layout": {
			style: mkStyle(px(20, 20), func(s *Style) { s.Padding = EdgeAll(Length(2)) }),
			want: Layout{
				Size:    Size{Width: 20, Height: 20},
				Padding: Insets{Top: 2, Right: 2, Bottom: 2, Left: 2},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree(t)
			root, err := tree.NewLeaf(tt.style)
			require.NoError(t, err)
			computeLayout(t, tree, root, 200, 200)

			got := layoutOf(t, tree, root)
			got.ContentSize = Size{}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeLayout_BoxHelpers(t *testing.T) {
	tree := newTestTree(t)
	root, err := tree.NewLeaf(mkStyle(px(40, 30), func(s *Style) {
		s.Padding = EdgeAll(Length(3))
		s.Border = EdgeAll(Length(1))
	}))
	require.NoError(t, err)
	computeLayout(t, tree, root, 100, 100)

	l := layoutOf(t, tree, root)
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 40, Height: 30}, l.BorderBox())
	assert.Equal(t, Rect{X: 4, Y: 4, Width: 32, Height: 22}, l.ContentBox())
}

func TestComputeLayout_Nested(t *testing.T) {
	tree := newTestTree(t)
	leaf := newLeaf(t, tree, px(10, 10))
	inner := newParent(t, tree, mkStyle(func(s *Style) {
		s.Padding = EdgeAll(Length(4))
		s.Border = EdgeAll(Length(1))
	}), leaf)
	root := newParent(t, tree, mkStyle(display(DisplayBlock), func(s *Style) {
		s.Padding = EdgeAll(Length(10))
	}), inner)
	computeLayout(t, tree, root, 200, 200)

	assert.Equal(t, box{0, 0, 180, 20}, boxOf(t, tree, inner))
	assert.Equal(t, Point{X: 10, Y: 10}, layoutOf(t, tree, inner).Absolute)
	assert.Equal(t, box{0, 0, 10, 10}, boxOf(t, tree, leaf))
	assert.Equal(t, Point{X: 15, Y: 15}, layoutOf(t, tree, leaf).Absolute)
}

func TestComputeLayout_HiddenRoot(t *testing.T) {
	tree := newTestTree(t)
	child := newLeaf(t, tree, px(10, 10))
	root := newParent(t, tree, mkStyle(display(DisplayNone)), child)
	computeLayout(t, tree, root, 100, 100)

	assert.Equal(t, Layout{}, layoutOf(t, tree, root))
	assert.Equal(t, Layout{}, layoutOf(t, tree, child))
}

func TestIntrinsicSize_Errors(t *testing.T) {
	tree := newTestTree(t)
	_, err := tree.IntrinsicSize(NodeID{}, IntrinsicMinContent)
	assert.ErrorIs(t, err, ErrNullHandle)
}

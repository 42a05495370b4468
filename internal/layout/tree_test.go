package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_New(t *testing.T) {
	type tc struct {
		opts     []TreeOption
		wantKind ErrorKind
	}

	tests := map[string]tc{
		"defaults":          {},
		"capacity":          {opts: []TreeOption{WithCapacity(64)}},
		"negative capacity": {opts: []TreeOption{WithCapacity(-1)}, wantKind: KindInvalidNumeric},
		"nil logger":        {opts: []TreeOption{WithLogger(nil)}, wantKind: KindNullHandle},
		"rounding and cache off": {
			opts: []TreeOption{WithRounding(false), WithCache(false)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree, err := New(tt.opts...)
			if tt.wantKind != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, KindOf(err))
				assert.Nil(t, tree)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, tree.Len())
		})
	}
}

func TestTree_ChildOperations(t *testing.T) {
	tree := newTestTree(t)
	root, err := tree.NewNode()
	require.NoError(t, err)
	a, b, c := newLeaf(t, tree), newLeaf(t, tree), newLeaf(t, tree)

	require.NoError(t, tree.AddChild(root, a))
	require.NoError(t, tree.AddChild(root, c))
	require.NoError(t, tree.InsertChildAt(root, 1, b))

	children, err := tree.Children(root)
	require.NoError(t, err)
	assert.Equal(t, []NodeID{a, b, c}, children)

	n, err := tree.ChildCount(root)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := tree.ChildAt(root, 2)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	parent, ok, err := tree.Parent(b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, root, parent)

	_, ok, err = tree.Parent(root)
	require.NoError(t, err)
	assert.False(t, ok)

	removed, err := tree.RemoveChildAt(root, 0)
	require.NoError(t, err)
	assert.Equal(t, a, removed)
	_, ok, err = tree.Parent(a)
	require.NoError(t, err)
	assert.False(t, ok)

	old, err := tree.ReplaceChildAt(root, 1, a)
	require.NoError(t, err)
	assert.Equal(t, c, old)
	children, err = tree.Children(root)
	require.NoError(t, err)
	assert.Equal(t, []NodeID{b, a}, children)

	require.NoError(t, tree.RemoveChild(root, b))
	children, err = tree.Children(root)
	require.NoError(t, err)
	assert.Equal(t, []NodeID{a}, children)

	require.NoError(t, tree.SetChildren(root, c, b))
	children, err = tree.Children(root)
	require.NoError(t, err)
	assert.Equal(t, []NodeID{c, b}, children)
	_, ok, err = tree.Parent(a)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTree_AddChildMovesBetweenParents(t *testing.T) {
	tree := newTestTree(t)
	child := newLeaf(t, tree)
	first := newParent(t, tree, DefaultStyle(), child)
	second := newParent(t, tree, DefaultStyle())

	require.NoError(t, tree.AddChild(second, child))

	n, err := tree.ChildCount(first)
	require.NoError(t, err)
	assert.Zero(t, n)
	parent, _, err := tree.Parent(child)
	require.NoError(t, err)
	assert.Equal(t, second, parent)
}

func TestTree_InsertChildAtReordersExistingChild(t *testing.T) {
	tree := newTestTree(t)
	a, b, c := newLeaf(t, tree), newLeaf(t, tree), newLeaf(t, tree)
	root := newParent(t, tree, DefaultStyle(), a, b, c)

	require.NoError(t, tree.InsertChildAt(root, 0, c))
	children, err := tree.Children(root)
	require.NoError(t, err)
	assert.Equal(t, []NodeID{c, a, b}, children)

	err = tree.InsertChildAt(root, 3, a)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTree_Errors(t *testing.T) {
	type tc struct {
		op   func(tree *Tree, root, child, stray NodeID) error
		want error
	}

	tests := map[string]tc{
		"self parent": {
			op:   func(tree *Tree, root, _, _ NodeID) error { return tree.AddChild(root, root) },
			want: ErrInvalidHierarchy,
		},
		"cycle": {
			op:   func(tree *Tree, root, child, _ NodeID) error { return tree.AddChild(child, root) },
			want: ErrInvalidHierarchy,
		},
		"duplicate children": {
			op:   func(tree *Tree, root, _, stray NodeID) error { return tree.SetChildren(root, stray, stray) },
			want: ErrInvalidHierarchy,
		},
		"remove a stranger": {
			op:   func(tree *Tree, root, _, stray NodeID) error { return tree.RemoveChild(root, stray) },
			want: ErrNotFound,
		},
		"child index out of range": {
			op: func(tree *Tree, root, _, _ NodeID) error {
				_, err := tree.ChildAt(root, 5)
				return err
			},
			want: ErrNotFound,
		},
		"negative insert index": {
			op:   func(tree *Tree, root, _, stray NodeID) error { return tree.InsertChildAt(root, -1, stray) },
			want: ErrNotFound,
		},
		"replace out of range": {
			op: func(tree *Tree, root, _, stray NodeID) error {
				_, err := tree.ReplaceChildAt(root, 1, stray)
				return err
			},
			want: ErrNotFound,
		},
		"null handle": {
			op:   func(tree *Tree, root, _, _ NodeID) error { return tree.AddChild(root, NodeID{}) },
			want: ErrNullHandle,
		},
		"removed node": {
			op: func(tree *Tree, root, _, stray NodeID) error {
				if err := tree.Remove(stray); err != nil {
					return err
				}
				return tree.AddChild(root, stray)
			},
			want: ErrNotFound,
		},
		"invalid style": {
			op: func(tree *Tree, root, _, _ NodeID) error {
				s := DefaultStyle()
				s.Width = Fr(1)
				return tree.SetStyle(root, s)
			},
			want: ErrInvalidUnit,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree(t)
			child := newLeaf(t, tree)
			root := newParent(t, tree, DefaultStyle(), child)
			stray := newLeaf(t, tree)

			err := tt.op(tree, root, child, stray)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			children, cerr := tree.Children(root)
			require.NoError(t, cerr)
			assert.Equal(t, []NodeID{child}, children, "failed operations leave the tree unchanged")
		})
	}
}

func TestTree_NilTree(t *testing.T) {
	var tree *Tree
	_, err := tree.Layout(NodeID{index: 0, gen: 1})
	assert.ErrorIs(t, err, ErrNullHandle)
	_, err = tree.NewNode()
	assert.ErrorIs(t, err, ErrNullHandle)
}

func TestTree_RemoveInvalidatesHandle(t *testing.T) {
	tree := newTestTree(t)
	grandchild := newLeaf(t, tree)
	child := newParent(t, tree, DefaultStyle(), grandchild)
	root := newParent(t, tree, DefaultStyle(), child)
	require.Equal(t, 3, tree.Len())

	require.NoError(t, tree.Remove(child))
	assert.False(t, tree.Contains(child))
	assert.Equal(t, 2, tree.Len())

	children, err := tree.Children(root)
	require.NoError(t, err)
	assert.Empty(t, children)
	_, ok, err := tree.Parent(grandchild)
	require.NoError(t, err)
	assert.False(t, ok)

	// The freed slot is reused under a new generation.
	fresh := newLeaf(t, tree)
	assert.Equal(t, child.index, fresh.index)
	assert.NotEqual(t, child, fresh)
	_, err = tree.Style(child)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTree_Clear(t *testing.T) {
	tree := newTestTree(t)
	a := newLeaf(t, tree)
	root := newParent(t, tree, DefaultStyle(), a)

	tree.Clear()
	assert.Zero(t, tree.Len())
	assert.False(t, tree.Contains(a))
	assert.False(t, tree.Contains(root))
}

func TestTree_UpdateStyle(t *testing.T) {
	type tc struct {
		fn        func(*Style) error
		wantErr   error
		wantWidth Dimension
	}

	tests := map[string]tc{
		"commits": {
			fn:        func(s *Style) error { return s.SetDimension(PropWidth, Length(10)) },
			wantWidth: Length(10),
		},
		"callback error discards changes": {
			fn: func(s *Style) error {
				s.Width = Length(10)
				return ErrInvalidNumeric
			},
			wantErr:   ErrInvalidNumeric,
			wantWidth: Auto(),
		},
		"invalid result discards changes": {
			fn: func(s *Style) error {
				s.Width = Length(-1)
				return nil
			},
			wantErr:   ErrInvalidNumeric,
			wantWidth: Auto(),
		},
		"nil func": {
			wantErr:   ErrNullHandle,
			wantWidth: Auto(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree(t)
			id := newLeaf(t, tree)

			err := tree.UpdateStyle(id, tt.fn)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			s, err := tree.Style(id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantWidth, s.Width)
		})
	}
}

func TestTree_StyleIsCopied(t *testing.T) {
	tree := newTestTree(t)
	s := gridStyle(columns(Track(Length(10))))
	id, err := tree.NewLeaf(s)
	require.NoError(t, err)

	s.GridTemplateColumns[0] = Track(Length(99))
	got, err := tree.Style(id)
	require.NoError(t, err)
	assert.Equal(t, Length(10), got.GridTemplateColumns[0].Max)
}

func TestTree_Measure(t *testing.T) {
	tree := newTestTree(t)
	id := newLeaf(t, tree)

	has, err := tree.HasMeasure(id)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, tree.SetMeasure(id, textMeasure(3, 10, 10)))
	has, err = tree.HasMeasure(id)
	require.NoError(t, err)
	assert.True(t, has)

	computeLayout(t, tree, id, 100, 100)
	assert.Equal(t, Size{Width: 30, Height: 10}, layoutOf(t, tree, id).Size)

	require.NoError(t, tree.SetMeasure(id, nil))
	has, err = tree.HasMeasure(id)
	require.NoError(t, err)
	assert.False(t, has)
}

package layout

import (
	"testing"

	"go.uber.org/zap"
)

func newBenchTree(b *testing.B) *Tree {
	b.Helper()
	tree, err := New(WithLogger(zap.NewNop()))
	if err != nil {
		b.Fatal(err)
	}
	return tree
}

// buildBenchTree creates a flex tree with the given branching factor and
// depth, alternating row and column direction at each level.
// Total nodes = (branching^(depth+1) - 1) / (branching - 1)
func buildBenchTree(b *testing.B, tree *Tree, branching, depth int) NodeID {
	b.Helper()
	var add func(dir FlexDirection, depth int) NodeID
	add = func(dir FlexDirection, depth int) NodeID {
		s := DefaultStyle()
		s.FlexDirection = dir
		s.FlexGrow = 1
		next := FlexColumn
		if dir == FlexColumn {
			next = FlexRow
		}
		var children []NodeID
		if depth > 0 {
			for range branching {
				children = append(children, add(next, depth-1))
			}
		}
		id, err := tree.NewWithChildren(s, children...)
		if err != nil {
			b.Fatal(err)
		}
		return id
	}
	root := add(FlexRow, depth)
	if err := tree.UpdateStyle(root, func(s *Style) error {
		s.Width, s.Height = Length(1000), Length(1000)
		return nil
	}); err != nil {
		b.Fatal(err)
	}
	return root
}

// buildLinearTree creates a row with n fixed-size children.
func buildLinearTree(b *testing.B, tree *Tree, n int) NodeID {
	b.Helper()
	children := make([]NodeID, n)
	for i := range children {
		s := DefaultStyle()
		s.Width, s.Height = Length(10), Length(100)
		id, err := tree.NewLeaf(s)
		if err != nil {
			b.Fatal(err)
		}
		children[i] = id
	}
	s := DefaultStyle()
	s.Width, s.Height = Length(1000), Length(1000)
	root, err := tree.NewWithChildren(s, children...)
	if err != nil {
		b.Fatal(err)
	}
	return root
}

func benchCompute(b *testing.B, tree *Tree, root NodeID, w, h float64) {
	b.Helper()
	if err := tree.ComputeLayout(root, DefiniteSize(w, h)); err != nil {
		b.Fatal(err)
	}
}

// BenchmarkComputeLayout_13Nodes: branching=3, depth=2 = 1 + 3 + 9 nodes.
func BenchmarkComputeLayout_13Nodes(b *testing.B) {
	tree := newBenchTree(b)
	root := buildBenchTree(b, tree, 3, 2)
	b.Logf("Node count: %d", tree.Len())
	benchCompute(b, tree, root, 1000, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Mark root dirty to force recomputation of the root
		_ = tree.MarkDirty(root)
		benchCompute(b, tree, root, 1000, 1000)
	}
}

// BenchmarkComputeLayout_121Nodes: branching=3, depth=4.
func BenchmarkComputeLayout_121Nodes(b *testing.B) {
	tree := newBenchTree(b)
	root := buildBenchTree(b, tree, 3, 4)
	b.Logf("Node count: %d", tree.Len())
	benchCompute(b, tree, root, 1000, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.MarkDirty(root)
		benchCompute(b, tree, root, 1000, 1000)
	}
}

// BenchmarkComputeLayout_1000Nodes: 1 root + 999 children.
func BenchmarkComputeLayout_1000Nodes(b *testing.B) {
	tree := newBenchTree(b)
	root := buildLinearTree(b, tree, 999)
	benchCompute(b, tree, root, 10000, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.MarkDirty(root)
		benchCompute(b, tree, root, 10000, 1000)
	}
}

// BenchmarkComputeLayout_Uncached lays out the same tree with memoization
// turned off.
func BenchmarkComputeLayout_Uncached(b *testing.B) {
	tree, err := New(WithLogger(zap.NewNop()), WithCache(false))
	if err != nil {
		b.Fatal(err)
	}
	root := buildBenchTree(b, tree, 3, 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchCompute(b, tree, root, 1000, 1000)
	}
}

// BenchmarkComputeLayout_IncrementalVsFull compares dirtying one leaf with
// clearing every node. A dirty leaf only invalidates its ancestors, so its
// siblings' subtrees are served from the cache.
func BenchmarkComputeLayout_IncrementalVsFull(b *testing.B) {
	tree := newBenchTree(b)
	root := buildBenchTree(b, tree, 3, 4)
	benchCompute(b, tree, root, 1000, 1000)

	leaf := root
	var all []NodeID
	var walk func(id NodeID)
	walk = func(id NodeID) {
		all = append(all, id)
		children, _ := tree.Children(id)
		for _, c := range children {
			walk(c)
		}
	}
	walk(root)
	for {
		children, _ := tree.Children(leaf)
		if len(children) == 0 {
			break
		}
		leaf = children[0]
	}

	b.Run("full", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for _, id := range all {
				_ = tree.MarkDirty(id)
			}
			benchCompute(b, tree, root, 1000, 1000)
		}
	})

	b.Run("incremental", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = tree.MarkDirty(leaf)
			benchCompute(b, tree, root, 1000, 1000)
		}
	})
}

// BenchmarkComputeLayout_Grid lays out a 10x10 grid of fr tracks.
func BenchmarkComputeLayout_Grid(b *testing.B) {
	tree := newBenchTree(b)
	children := make([]NodeID, 100)
	for i := range children {
		id, err := tree.NewLeaf(DefaultStyle())
		if err != nil {
			b.Fatal(err)
		}
		children[i] = id
	}
	s := DefaultStyle()
	s.Display = DisplayGrid
	s.Width, s.Height = Length(1000), Length(1000)
	s.GridTemplateColumns = Repeat(10, Track(Fr(1)))
	s.GridTemplateRows = Repeat(10, Track(Fr(1)))
	root, err := tree.NewWithChildren(s, children...)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = tree.MarkDirty(root)
		benchCompute(b, tree, root, 1000, 1000)
	}
}

func BenchmarkNewLeaf(b *testing.B) {
	tree := newBenchTree(b)
	style := DefaultStyle()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := tree.NewLeaf(style); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDefaultStyle(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = DefaultStyle()
	}
}

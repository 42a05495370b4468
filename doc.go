// Package boxlayout computes CSS block, flexbox and grid layouts for trees
// of styled boxes.
//
// Users import this single package for the complete public API: the node
// tree, styles and dimensions, available space and computed layouts.
//
//	tree, _ := boxlayout.New()
//	item, _ := tree.NewLeaf(style)
//	root, _ := tree.NewWithChildren(rowStyle, item)
//	_ = tree.ComputeLayout(root, boxlayout.DefiniteSize(800, 600))
//	l, _ := tree.Layout(item)
//
// Nodes without children are leaves; give them a Measurer to size text or
// other content. Layouts are cached per node and invalidated when a node or
// one of its descendants changes.
package boxlayout

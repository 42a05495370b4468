// Package layout implements a CSS box layout engine: block, flexbox and grid.
//
// Nodes live in a [Tree], an arena of generation-tagged [NodeID] handles.
// Each node carries a [Style], an ordered list of children and an optional
// [Measurer] that sizes leaf content such as text. [Tree.ComputeLayout]
// walks the tree from a root under an [AvailableSize] envelope and stores a
// [Layout] for every node, reusing cached measurements for subtrees that
// have not changed since the previous pass.
//
// Lengths are float64 pixels. Percentages use a 0-100 scale (50 = 50%).
// Inside the engine an undefined length is represented as NaN.
// Types are re-exported through the root boxlayout package.
package layout

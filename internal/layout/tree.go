package layout

import (
	"fmt"
	"slices"

	"github.com/grindlemire/go-boxlayout/internal/debug"
	"go.uber.org/zap"
)

// NodeID is a generation-tagged handle to a node in a Tree. The zero value
// is the null handle. Handles of removed nodes stay invalid even after their
// slot is reused.
type NodeID struct {
	index uint32
	gen   uint32
}

// IsNull reports whether id is the zero handle.
func (id NodeID) IsNull() bool {
	return id.gen == 0
}

func (id NodeID) String() string {
	if id.IsNull() {
		return "node(null)"
	}
	return fmt.Sprintf("node(%d.%d)", id.index, id.gen)
}

type node struct {
	gen  uint32
	live bool

	style    Style
	children []NodeID
	parent   NodeID
	measure  Measurer

	cache     Cache
	state     State
	unrounded Layout
	final     Layout
}

// Tree is an arena of layout nodes. A Tree is not safe for concurrent use.
type Tree struct {
	nodes []node
	free  []uint32
	count int

	logger   *zap.Logger
	rounding bool
	caching  bool
}

// TreeOption configures a Tree.
type TreeOption func(*Tree) error

// WithLogger sets the logger used for per-node tracing at debug level.
func WithLogger(l *zap.Logger) TreeOption {
	return func(t *Tree) error {
		if l == nil {
			return &Error{Kind: KindNullHandle, Op: "WithLogger", Detail: "nil logger"}
		}
		t.logger = l
		return nil
	}
}

// WithRounding enables or disables snapping final layouts to whole pixels.
// Rounding is on by default.
func WithRounding(enabled bool) TreeOption {
	return func(t *Tree) error {
		t.rounding = enabled
		return nil
	}
}

// WithCache enables or disables layout caching. Caching never changes
// results; it is on by default.
func WithCache(enabled bool) TreeOption {
	return func(t *Tree) error {
		t.caching = enabled
		return nil
	}
}

// WithCapacity preallocates room for n nodes.
func WithCapacity(n int) TreeOption {
	return func(t *Tree) error {
		if n < 0 {
			return &Error{Kind: KindInvalidNumeric, Op: "WithCapacity", Value: float64(n)}
		}
		t.nodes = slices.Grow(t.nodes, n)
		return nil
	}
}

// New creates an empty Tree.
func New(opts ...TreeOption) (*Tree, error) {
	t := &Tree{rounding: true, caching: true}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	if t.logger == nil {
		t.logger = debug.Logger()
	}
	return t, nil
}

// get validates id and returns its node.
func (t *Tree) get(op string, id NodeID) (*node, error) {
	if t == nil {
		return nil, &Error{Kind: KindNullHandle, Op: op, Detail: "nil tree"}
	}
	if id.IsNull() {
		return nil, &Error{Kind: KindNullHandle, Op: op}
	}
	if int(id.index) >= len(t.nodes) {
		return nil, &Error{Kind: KindNotFound, Op: op, Node: id}
	}
	n := &t.nodes[id.index]
	if !n.live || n.gen != id.gen {
		return nil, &Error{Kind: KindNotFound, Op: op, Node: id}
	}
	return n, nil
}

// n returns the node of an id already known to be valid.
func (t *Tree) n(id NodeID) *node {
	return &t.nodes[id.index]
}

func (t *Tree) alloc(style Style, measure Measurer) NodeID {
	var idx uint32
	if k := len(t.free); k > 0 {
		idx = t.free[k-1]
		t.free = t.free[:k-1]
	} else {
		idx = uint32(len(t.nodes))
		t.nodes = append(t.nodes, node{gen: 1})
	}
	n := &t.nodes[idx]
	gen := n.gen
	*n = node{gen: gen, live: true, style: style, measure: measure}
	t.count++
	return NodeID{index: idx, gen: gen}
}

// NewNode creates a detached node with the default style.
func (t *Tree) NewNode() (NodeID, error) {
	return t.NewLeaf(DefaultStyle())
}

// NewLeaf creates a detached node with style.
func (t *Tree) NewLeaf(style Style) (NodeID, error) {
	return t.NewLeafWithMeasure(style, nil)
}

// NewLeafWithMeasure creates a detached node whose content is sized by m.
func (t *Tree) NewLeafWithMeasure(style Style, m Measurer) (NodeID, error) {
	if t == nil {
		return NodeID{}, &Error{Kind: KindNullHandle, Op: "NewLeaf", Detail: "nil tree"}
	}
	if err := style.Validate(); err != nil {
		return NodeID{}, err
	}
	return t.alloc(style.Clone(), m), nil
}

// NewWithChildren creates a node with style and attaches children in order.
func (t *Tree) NewWithChildren(style Style, children ...NodeID) (NodeID, error) {
	id, err := t.NewLeaf(style)
	if err != nil {
		return NodeID{}, err
	}
	if err := t.SetChildren(id, children...); err != nil {
		_ = t.Remove(id)
		return NodeID{}, err
	}
	return id, nil
}

// Remove deletes a node. It is detached from its parent; its children
// become parentless and stay in the tree.
func (t *Tree) Remove(id NodeID) error {
	n, err := t.get("Remove", id)
	if err != nil {
		return err
	}
	if !n.parent.IsNull() {
		p := t.n(n.parent)
		p.children = slices.DeleteFunc(p.children, func(c NodeID) bool { return c == id })
		t.markDirty(n.parent)
	}
	for _, c := range n.children {
		t.n(c).parent = NodeID{}
	}
	gen := n.gen + 1
	if gen == 0 {
		gen = 1
	}
	*n = node{gen: gen}
	t.free = append(t.free, id.index)
	t.count--
	return nil
}

// Clear removes every node. Existing handles become invalid.
func (t *Tree) Clear() {
	for i := range t.nodes {
		n := &t.nodes[i]
		if !n.live {
			continue
		}
		gen := n.gen + 1
		if gen == 0 {
			gen = 1
		}
		*n = node{gen: gen}
		t.free = append(t.free, uint32(i))
	}
	t.count = 0
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	return t.count
}

// Contains reports whether id refers to a live node.
func (t *Tree) Contains(id NodeID) bool {
	_, err := t.get("Contains", id)
	return err == nil
}

// Style returns a copy of the node's style.
func (t *Tree) Style(id NodeID) (Style, error) {
	n, err := t.get("Style", id)
	if err != nil {
		return Style{}, err
	}
	return n.style.Clone(), nil
}

// SetStyle validates and replaces the node's style.
func (t *Tree) SetStyle(id NodeID, style Style) error {
	n, err := t.get("SetStyle", id)
	if err != nil {
		return err
	}
	if err := style.Validate(); err != nil {
		return err
	}
	n.style = style.Clone()
	t.markDirty(id)
	return nil
}

// UpdateStyle gives fn a mutable copy of the node's style. The copy is
// validated and committed only if fn returns nil.
func (t *Tree) UpdateStyle(id NodeID, fn func(*Style) error) error {
	n, err := t.get("UpdateStyle", id)
	if err != nil {
		return err
	}
	if fn == nil {
		return &Error{Kind: KindNullHandle, Op: "UpdateStyle", Detail: "nil func"}
	}
	s := n.style.Clone()
	if err := fn(&s); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	n.style = s
	t.markDirty(id)
	return nil
}

// SetMeasure installs or, with nil, removes the node's leaf measurer.
func (t *Tree) SetMeasure(id NodeID, m Measurer) error {
	n, err := t.get("SetMeasure", id)
	if err != nil {
		return err
	}
	n.measure = m
	t.markDirty(id)
	return nil
}

// HasMeasure reports whether the node has a leaf measurer.
func (t *Tree) HasMeasure(id NodeID) (bool, error) {
	n, err := t.get("HasMeasure", id)
	if err != nil {
		return false, err
	}
	return n.measure != nil, nil
}

// isAncestor reports whether a is b or one of b's ancestors.
func (t *Tree) isAncestor(a, b NodeID) bool {
	for cur := b; !cur.IsNull(); cur = t.n(cur).parent {
		if cur == a {
			return true
		}
	}
	return false
}

// detach removes child from its current parent, if any.
func (t *Tree) detach(child NodeID) {
	c := t.n(child)
	if c.parent.IsNull() {
		return
	}
	old := c.parent
	p := t.n(old)
	p.children = slices.DeleteFunc(p.children, func(id NodeID) bool { return id == child })
	c.parent = NodeID{}
	t.markDirty(old)
}

func (t *Tree) checkAttach(op string, parent, child NodeID) error {
	if _, err := t.get(op, parent); err != nil {
		return err
	}
	if _, err := t.get(op, child); err != nil {
		return err
	}
	if t.isAncestor(child, parent) {
		return &Error{Kind: KindInvalidHierarchy, Op: op, Node: child, Detail: "child is the parent or one of its ancestors"}
	}
	return nil
}

// AddChild appends child to parent. A child attached elsewhere is moved.
func (t *Tree) AddChild(parent, child NodeID) error {
	if err := t.checkAttach("AddChild", parent, child); err != nil {
		return err
	}
	t.detach(child)
	p := t.n(parent)
	p.children = append(p.children, child)
	t.n(child).parent = parent
	t.markDirty(parent)
	return nil
}

// InsertChildAt inserts child into parent's children at index.
func (t *Tree) InsertChildAt(parent NodeID, index int, child NodeID) error {
	const op = "InsertChildAt"
	if err := t.checkAttach(op, parent, child); err != nil {
		return err
	}
	limit := len(t.n(parent).children)
	if t.n(child).parent == parent {
		limit--
	}
	if index < 0 || index > limit {
		return &Error{Kind: KindNotFound, Op: op, Node: parent, Detail: fmt.Sprintf("child index %d out of range", index)}
	}
	t.detach(child)
	p := t.n(parent)
	p.children = slices.Insert(p.children, index, child)
	t.n(child).parent = parent
	t.markDirty(parent)
	return nil
}

// RemoveChild detaches child from parent.
func (t *Tree) RemoveChild(parent, child NodeID) error {
	const op = "RemoveChild"
	p, err := t.get(op, parent)
	if err != nil {
		return err
	}
	if _, err := t.get(op, child); err != nil {
		return err
	}
	if !slices.Contains(p.children, child) {
		return &Error{Kind: KindNotFound, Op: op, Node: child, Detail: "not a child of " + parent.String()}
	}
	t.detach(child)
	return nil
}

// RemoveChildAt detaches and returns the child at index.
func (t *Tree) RemoveChildAt(parent NodeID, index int) (NodeID, error) {
	const op = "RemoveChildAt"
	p, err := t.get(op, parent)
	if err != nil {
		return NodeID{}, err
	}
	if index < 0 || index >= len(p.children) {
		return NodeID{}, &Error{Kind: KindNotFound, Op: op, Node: parent, Detail: fmt.Sprintf("child index %d out of range", index)}
	}
	child := p.children[index]
	t.detach(child)
	return child, nil
}

// ReplaceChildAt swaps the child at index for child and returns the old one.
func (t *Tree) ReplaceChildAt(parent NodeID, index int, child NodeID) (NodeID, error) {
	const op = "ReplaceChildAt"
	if err := t.checkAttach(op, parent, child); err != nil {
		return NodeID{}, err
	}
	p := t.n(parent)
	if index < 0 || index >= len(p.children) {
		return NodeID{}, &Error{Kind: KindNotFound, Op: op, Node: parent, Detail: fmt.Sprintf("child index %d out of range", index)}
	}
	old := p.children[index]
	if old == child {
		return old, nil
	}
	t.detach(child)
	// detach may have shifted the slot if child was an earlier sibling.
	p = t.n(parent)
	index = slices.Index(p.children, old)
	p.children[index] = child
	t.n(old).parent = NodeID{}
	t.n(child).parent = parent
	t.markDirty(parent)
	return old, nil
}

// SetChildren replaces all of parent's children.
func (t *Tree) SetChildren(parent NodeID, children ...NodeID) error {
	const op = "SetChildren"
	if _, err := t.get(op, parent); err != nil {
		return err
	}
	seen := make(map[NodeID]bool, len(children))
	for _, c := range children {
		if err := t.checkAttach(op, parent, c); err != nil {
			return err
		}
		if seen[c] {
			return &Error{Kind: KindInvalidHierarchy, Op: op, Node: c, Detail: "duplicate child"}
		}
		seen[c] = true
	}
	for _, c := range t.n(parent).children {
		t.n(c).parent = NodeID{}
	}
	t.n(parent).children = nil
	for _, c := range children {
		t.detach(c)
		t.n(c).parent = parent
	}
	t.n(parent).children = slices.Clone(children)
	t.markDirty(parent)
	return nil
}

// Children returns a copy of the node's child list.
func (t *Tree) Children(id NodeID) ([]NodeID, error) {
	n, err := t.get("Children", id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(n.children), nil
}

// ChildAt returns the child at index.
func (t *Tree) ChildAt(id NodeID, index int) (NodeID, error) {
	n, err := t.get("ChildAt", id)
	if err != nil {
		return NodeID{}, err
	}
	if index < 0 || index >= len(n.children) {
		return NodeID{}, &Error{Kind: KindNotFound, Op: "ChildAt", Node: id, Detail: fmt.Sprintf("child index %d out of range", index)}
	}
	return n.children[index], nil
}

// ChildCount returns the number of children.
func (t *Tree) ChildCount(id NodeID) (int, error) {
	n, err := t.get("ChildCount", id)
	if err != nil {
		return 0, err
	}
	return len(n.children), nil
}

// Parent returns the node's parent. ok is false for parentless nodes.
func (t *Tree) Parent(id NodeID) (parent NodeID, ok bool, err error) {
	n, err := t.get("Parent", id)
	if err != nil {
		return NodeID{}, false, err
	}
	return n.parent, !n.parent.IsNull(), nil
}

// MarkDirty invalidates the cached layout of the node and its ancestors.
func (t *Tree) MarkDirty(id NodeID) error {
	if _, err := t.get("MarkDirty", id); err != nil {
		return err
	}
	t.markDirty(id)
	return nil
}

// markDirty clears the cache of id and every ancestor up to the root.
// Descendants keep their entries; their inputs have not changed.
func (t *Tree) markDirty(id NodeID) {
	for cur := id; !cur.IsNull(); cur = t.n(cur).parent {
		n := t.n(cur)
		n.cache.clear()
		n.state = StateNotComputed
	}
}

// Dirty reports whether the node must be recomputed on the next layout.
func (t *Tree) Dirty(id NodeID) (bool, error) {
	n, err := t.get("Dirty", id)
	if err != nil {
		return false, err
	}
	return n.cache.isEmpty(), nil
}

// State reports the layout progress of the node.
func (t *Tree) State(id NodeID) (State, error) {
	n, err := t.get("State", id)
	if err != nil {
		return 0, err
	}
	return n.state, nil
}

// Layout returns the node's final layout from the last ComputeLayout.
func (t *Tree) Layout(id NodeID) (Layout, error) {
	n, err := t.get("Layout", id)
	if err != nil {
		return Layout{}, err
	}
	return n.final, nil
}

// UnroundedLayout returns the node's layout before pixel snapping. Unlike
// Layout, its Location is relative to the parent's border box, so a parent's
// border and padding are included in it.
func (t *Tree) UnroundedLayout(id NodeID) (Layout, error) {
	n, err := t.get("UnroundedLayout", id)
	if err != nil {
		return Layout{}, err
	}
	return n.unrounded, nil
}

package boxlayout

import (
	"fmt"
	"io"

	"github.com/grindlemire/go-boxlayout/internal/doc"
)

// Document is a laid out YAML or JSON layout document.
type Document struct {
	Tree *Tree
	Root NodeID
	// Names maps the document's node names to their handles.
	Names map[string]NodeID
}

// LayoutDocument decodes a layout document from r, builds it into a new
// tree and computes its layout within the document's available space.
func LayoutDocument(r io.Reader, opts ...TreeOption) (*Document, error) {
	d, err := doc.Load(r)
	if err != nil {
		return nil, err
	}
	avail, err := d.AvailableSize()
	if err != nil {
		return nil, err
	}
	tree, err := New(opts...)
	if err != nil {
		return nil, err
	}
	built, err := d.Build(tree)
	if err != nil {
		return nil, err
	}
	if err := tree.ComputeLayout(built.Root, avail); err != nil {
		return nil, fmt.Errorf("computing layout: %w", err)
	}
	return &Document{Tree: tree, Root: built.Root, Names: built.Names}, nil
}

// Layout returns the layout of the node with the given name.
func (d *Document) Layout(name string) (Layout, error) {
	id, ok := d.Names[name]
	if !ok {
		return Layout{}, fmt.Errorf("no node named %q", name)
	}
	return d.Tree.Layout(id)
}

package doc

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grindlemire/go-boxlayout/internal/layout"
	"github.com/grindlemire/go-boxlayout/internal/textmeasure"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the document format major version this package reads.
const SupportedMajor = "v1"

// Document is a decoded layout document.
type Document struct {
	Version   string `yaml:"version"`
	Available Space  `yaml:"available"`
	Cell      Cell   `yaml:"cell"`
	Root      Node   `yaml:"root"`
}

// Space is the available space a document asks to be laid out in. Each
// axis is a pixel count, "min-content" or "max-content". Empty means
// max-content.
type Space struct {
	Width  string `yaml:"width"`
	Height string `yaml:"height"`
}

// Cell is the pixel size of one text cell. Zero fields default to 1.
type Cell struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Node describes one node of the tree. A node with Text is a measured
// leaf and may not have children.
type Node struct {
	Name     string               `yaml:"name"`
	Style    map[string]yaml.Node `yaml:"style"`
	Text     *string              `yaml:"text"`
	Children []Node               `yaml:"children"`
	Line     int                  `yaml:"-"`
}

var nodeFields = map[string]bool{"name": true, "style": true, "text": true, "children": true}

// UnmarshalYAML records the source line of the node. Decoding through a
// yaml.Node drops the decoder's KnownFields setting, so unknown keys are
// checked here.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			if k := value.Content[i]; !nodeFields[k.Value] {
				return fmt.Errorf("line %d: unknown node field %q", k.Line, k.Value)
			}
		}
	}
	type plain Node
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*n = Node(p)
	n.Line = value.Line
	return nil
}

// Load decodes and checks a document. Unknown fields are rejected.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Document
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document")
		}
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	if err := d.checkVersion(); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadString is Load for an in-memory document.
func LoadString(s string) (*Document, error) {
	return Load(strings.NewReader(s))
}

func (d *Document) checkVersion() error {
	v := d.Version
	if v == "" {
		return fmt.Errorf("missing document version")
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid document version %q", d.Version)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("unsupported document version %s: want %s.x", d.Version, SupportedMajor)
	}
	d.Version = semver.Canonical(v)
	return nil
}

// AvailableSize resolves the document's available space.
func (d *Document) AvailableSize() (layout.AvailableSize, error) {
	w, err := ParseAvailableSpace(d.Available.Width)
	if err != nil {
		return layout.AvailableSize{}, fmt.Errorf("available width: %w", err)
	}
	h, err := ParseAvailableSpace(d.Available.Height)
	if err != nil {
		return layout.AvailableSize{}, fmt.Errorf("available height: %w", err)
	}
	return layout.AvailableSize{Width: w, Height: h}, nil
}

// ParseAvailableSpace parses a pixel count, "min-content" or
// "max-content". The empty string is max-content.
func ParseAvailableSpace(s string) (layout.AvailableSpace, error) {
	switch s = strings.TrimSpace(s); s {
	case "", "max-content":
		return layout.MaxContentSpace, nil
	case "min-content":
		return layout.MinContentSpace, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		return layout.AvailableSpace{}, fmt.Errorf("invalid available space %q", s)
	}
	return layout.Definite(v), nil
}

// Built maps document node names to the nodes Build created.
type Built struct {
	Root  layout.NodeID
	Names map[string]layout.NodeID
	// Paths holds the node path of every created node, e.g. "page/nav".
	Paths map[layout.NodeID]string
}

// Build creates the document's nodes in tree. On error, nodes created so
// far are removed again.
func (d *Document) Build(tree *layout.Tree) (*Built, error) {
	b := &Built{
		Names: make(map[string]layout.NodeID),
		Paths: make(map[layout.NodeID]string),
	}
	cw, ch := d.Cell.Width, d.Cell.Height
	if cw <= 0 {
		cw = 1
	}
	if ch <= 0 {
		ch = 1
	}

	var created []layout.NodeID
	var build func(n *Node, path string) (layout.NodeID, error)
	build = func(n *Node, path string) (layout.NodeID, error) {
		style, err := ParseStyle(n.Style)
		if err != nil {
			return layout.NodeID{}, fmt.Errorf("%s (line %d): %w", path, n.Line, err)
		}

		var id layout.NodeID
		if n.Text != nil {
			if len(n.Children) > 0 {
				return layout.NodeID{}, fmt.Errorf("%s (line %d): text node cannot have children", path, n.Line)
			}
			id, err = tree.NewLeafWithMeasure(style, textmeasure.New(*n.Text, textmeasure.WithCellSize(cw, ch)))
		} else {
			id, err = tree.NewLeaf(style)
		}
		if err != nil {
			return layout.NodeID{}, fmt.Errorf("%s (line %d): %w", path, n.Line, err)
		}
		created = append(created, id)
		b.Paths[id] = path

		if n.Name != "" {
			if _, dup := b.Names[n.Name]; dup {
				return layout.NodeID{}, fmt.Errorf("%s (line %d): duplicate node name %q", path, n.Line, n.Name)
			}
			b.Names[n.Name] = id
		}

		for i := range n.Children {
			c := &n.Children[i]
			childID, err := build(c, path+"/"+c.label(i))
			if err != nil {
				return layout.NodeID{}, err
			}
			if err := tree.AddChild(id, childID); err != nil {
				return layout.NodeID{}, fmt.Errorf("%s: %w", path, err)
			}
		}
		return id, nil
	}

	root, err := build(&d.Root, d.Root.label(0))
	if err != nil {
		for _, id := range created {
			_ = tree.Remove(id)
		}
		return nil, err
	}
	b.Root = root
	return b, nil
}

func (n *Node) label(index int) string {
	if n.Name != "" {
		return n.Name
	}
	return "#" + strconv.Itoa(index)
}

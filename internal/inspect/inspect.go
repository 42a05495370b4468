// Package inspect renders computed layouts as a text tree for debugging.
package inspect

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/grindlemire/go-boxlayout/internal/layout"
)

type config struct {
	labels    map[layout.NodeID]string
	unrounded bool
	styled    bool
}

// Option configures Render.
type Option func(*config)

// WithLabels names nodes in the output. Unnamed nodes print their handle.
func WithLabels(labels map[layout.NodeID]string) Option {
	return func(c *config) { c.labels = labels }
}

// WithUnrounded prints the layouts before pixel rounding.
func WithUnrounded() Option {
	return func(c *config) { c.unrounded = true }
}

// WithColor styles names and boxes for a terminal.
func WithColor() Option {
	return func(c *config) { c.styled = true }
}

var (
	nameStyle = lipgloss.NewStyle().Bold(true)
	boxStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	enumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).PaddingRight(1)
)

// Render prints the subtree at root, one line per node:
//
//	name display (x,y) wxh
func Render(t *layout.Tree, root layout.NodeID, opts ...Option) (string, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	node, err := c.build(t, root)
	if err != nil {
		return "", err
	}
	if c.styled {
		node.EnumeratorStyle(enumStyle)
	}
	return node.String(), nil
}

func (c *config) build(t *layout.Tree, id layout.NodeID) (*tree.Tree, error) {
	label, err := c.label(t, id)
	if err != nil {
		return nil, err
	}
	node := tree.Root(label)

	children, err := t.Children(id)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		sub, err := c.build(t, child)
		if err != nil {
			return nil, err
		}
		node.Child(sub)
	}
	return node, nil
}

func (c *config) label(t *layout.Tree, id layout.NodeID) (string, error) {
	get := t.Layout
	if c.unrounded {
		get = t.UnroundedLayout
	}
	l, err := get(id)
	if err != nil {
		return "", err
	}
	style, err := t.Style(id)
	if err != nil {
		return "", err
	}

	name, ok := c.labels[id]
	if !ok {
		name = id.String()
	}
	box := fmt.Sprintf("(%s,%s) %sx%s",
		num(l.Location.X), num(l.Location.Y), num(l.Size.Width), num(l.Size.Height))
	if c.styled {
		name, box = nameStyle.Render(name), boxStyle.Render(box)
	}
	return name + " " + style.Display.String() + " " + box, nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package main

import (
	"fmt"
	"io"
	"path"

	"github.com/grindlemire/go-boxlayout/internal/inspect"
	"github.com/grindlemire/go-boxlayout/internal/layout"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type fileOutput struct {
	File string      `json:"file"`
	Root *nodeOutput `json:"root"`
}

type nodeOutput struct {
	Name     string        `json:"name"`
	Path     string        `json:"path"`
	X        float64       `json:"x"`
	Y        float64       `json:"y"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Children []*nodeOutput `json:"children,omitempty"`
}

func nodeTree(r *laidOut, id layout.NodeID) (*nodeOutput, error) {
	l, err := r.tree.Layout(id)
	if err != nil {
		return nil, err
	}
	p := r.built.Paths[id]
	n := &nodeOutput{
		Name:   path.Base(p),
		Path:   p,
		X:      l.Location.X,
		Y:      l.Location.Y,
		Width:  l.Size.Width,
		Height: l.Size.Height,
	}
	children, err := r.tree.Children(id)
	if err != nil {
		return nil, err
	}
	for _, c := range children {
		child, err := nodeTree(r, c)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

// writeJSON writes one indented JSON object per document.
func writeJSON(w io.Writer, r *laidOut) error {
	root, err := nodeTree(r, r.built.Root)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(fileOutput{File: r.file, Root: root}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding layout: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func writeText(w io.Writer, r *laidOut, unrounded bool) error {
	labels := make(map[layout.NodeID]string, len(r.built.Paths))
	for id, p := range r.built.Paths {
		labels[id] = path.Base(p)
	}
	opts := []inspect.Option{inspect.WithLabels(labels)}
	if unrounded {
		opts = append(opts, inspect.WithUnrounded())
	}
	out, err := inspect.Render(r.tree, r.built.Root, opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

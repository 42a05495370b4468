package doc

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/grindlemire/go-boxlayout/internal/layout"
	"gopkg.in/yaml.v3"
)

// ParseStyle builds a style from CSS-like properties, starting from
// layout.DefaultStyle. Properties are applied in name order so that
// longhands like margin-top override the margin shorthand only when they
// sort after it.
func ParseStyle(props map[string]yaml.Node) (layout.Style, error) {
	s := layout.DefaultStyle()
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		n := props[k]
		values, err := nodeValues(&n)
		if err != nil {
			return s, fmt.Errorf("%s: %w", k, err)
		}
		if err := applyProperty(&s, k, values); err != nil {
			return s, fmt.Errorf("%s: %w", k, err)
		}
	}
	return s, nil
}

// nodeValues flattens a scalar or a sequence of scalars into tokens.
func nodeValues(n *yaml.Node) ([]string, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return splitTokens(n.Value), nil
	case yaml.SequenceNode:
		var out []string
		for _, c := range n.Content {
			if c.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: expected a scalar", c.Line)
			}
			out = append(out, splitTokens(c.Value)...)
		}
		return out, nil
	}
	return nil, fmt.Errorf("line %d: expected a scalar or a list", n.Line)
}

// splitTokens splits on whitespace outside parentheses.
func splitTokens(s string) []string {
	var out []string
	depth, start := 0, -1
	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
		case (r == ' ' || r == '\t' || r == '\n') && depth == 0:
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

func applyProperty(s *layout.Style, name string, values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("missing value")
	}
	one := func() (string, error) {
		if len(values) != 1 {
			return "", fmt.Errorf("want one value, got %d", len(values))
		}
		return values[0], nil
	}

	if p, ok := layout.ParseProperty(name); ok {
		v, err := one()
		if err != nil {
			return err
		}
		var d layout.Dimension
		if p == layout.PropAspectRatio {
			d, err = ParseRatio(v)
		} else {
			d, err = ParseDimension(v)
		}
		if err != nil {
			return err
		}
		return s.SetDimension(p, d)
	}

	switch name {
	case "margin", "padding", "border", "inset":
		g := map[string]layout.EdgeGroup{
			"margin": layout.EdgeMargin, "padding": layout.EdgePadding,
			"border": layout.EdgeBorder, "inset": layout.EdgeInset,
		}[name]
		return applyEdges(s, g, values)
	case "gap":
		if len(values) > 2 {
			return fmt.Errorf("want one or two values, got %d", len(values))
		}
		row, err := ParseDimension(values[0])
		if err != nil {
			return err
		}
		col := row
		if len(values) == 2 {
			if col, err = ParseDimension(values[1]); err != nil {
				return err
			}
		}
		if err := s.SetDimension(layout.PropRowGap, row); err != nil {
			return err
		}
		return s.SetDimension(layout.PropColumnGap, col)
	case "overflow":
		if len(values) > 2 {
			return fmt.Errorf("want one or two values, got %d", len(values))
		}
		x, err := parseEnum[layout.Overflow](values[0])
		if err != nil {
			return err
		}
		y := x
		if len(values) == 2 {
			if y, err = parseEnum[layout.Overflow](values[1]); err != nil {
				return err
			}
		}
		return s.SetOverflow(x, y)
	case "grid-template-rows", "grid-template-columns", "grid-auto-rows", "grid-auto-columns":
		tracks, err := ParseTracks(values)
		if err != nil {
			return err
		}
		switch name {
		case "grid-template-rows":
			return s.SetGridTemplateRows(tracks...)
		case "grid-template-columns":
			return s.SetGridTemplateColumns(tracks...)
		case "grid-auto-rows":
			return s.SetGridAutoRows(tracks...)
		}
		return s.SetGridAutoColumns(tracks...)
	case "grid-row", "grid-column":
		p, err := ParsePlacement(strings.Join(values, " "))
		if err != nil {
			return err
		}
		if name == "grid-row" {
			return s.SetGridRow(p)
		}
		return s.SetGridColumn(p)
	}

	v, err := one()
	if err != nil {
		return err
	}
	switch name {
	case "display":
		return setEnum(v, s.SetDisplay)
	case "position":
		return setEnum(v, s.SetPosition)
	case "overflow-x":
		return setEnum(v, func(o layout.Overflow) error { return s.SetOverflow(o, s.OverflowY) })
	case "overflow-y":
		return setEnum(v, func(o layout.Overflow) error { return s.SetOverflow(s.OverflowX, o) })
	case "flex-direction":
		return setEnum(v, s.SetFlexDirection)
	case "flex-wrap":
		return setEnum(v, s.SetFlexWrap)
	case "align-items":
		return setEnum(v, s.SetAlignItems)
	case "align-self":
		return setEnum(v, s.SetAlignSelf)
	case "justify-items":
		return setEnum(v, s.SetJustifyItems)
	case "justify-self":
		return setEnum(v, s.SetJustifySelf)
	case "align-content":
		return setEnum(v, s.SetAlignContent)
	case "justify-content":
		return setEnum(v, s.SetJustifyContent)
	case "grid-auto-flow":
		return setEnum(v, s.SetGridAutoFlow)
	case "flex-grow", "flex-shrink", "scrollbar-width":
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", v)
		}
		switch name {
		case "flex-grow":
			return s.SetFlexGrow(f)
		case "flex-shrink":
			return s.SetFlexShrink(f)
		}
		return s.SetScrollbarWidth(f)
	}
	return fmt.Errorf("unknown property")
}

// applyEdges expands the CSS one to four value shorthand.
func applyEdges(s *layout.Style, g layout.EdgeGroup, values []string) error {
	dims := make([]layout.Dimension, len(values))
	for i, v := range values {
		d, err := ParseDimension(v)
		if err != nil {
			return err
		}
		dims[i] = d
	}
	var top, right, bottom, left layout.Dimension
	switch len(dims) {
	case 1:
		return s.SetEdges(g, layout.EdgeAllSides, dims[0])
	case 2:
		if err := s.SetEdges(g, layout.EdgeVertical, dims[0]); err != nil {
			return err
		}
		return s.SetEdges(g, layout.EdgeHorizontal, dims[1])
	case 3:
		top, right, bottom, left = dims[0], dims[1], dims[2], dims[1]
	case 4:
		top, right, bottom, left = dims[0], dims[1], dims[2], dims[3]
	default:
		return fmt.Errorf("want one to four values, got %d", len(dims))
	}
	for _, side := range []struct {
		e layout.Edge
		d layout.Dimension
	}{{layout.EdgeTop, top}, {layout.EdgeRight, right}, {layout.EdgeBottom, bottom}, {layout.EdgeLeft, left}} {
		if err := s.SetEdges(g, side.e, side.d); err != nil {
			return err
		}
	}
	return nil
}

type enum interface {
	~uint8
	String() string
}

// parseEnum finds the value of T whose String is name.
func parseEnum[T enum](name string) (T, error) {
	for v := T(0); ; v++ {
		s := v.String()
		if s == "invalid" {
			break
		}
		if s == name {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q", name)
}

func setEnum[T enum](name string, set func(T) error) error {
	v, err := parseEnum[T](name)
	if err != nil {
		return err
	}
	return set(v)
}

// ParseDimension parses a single dimension token.
func ParseDimension(s string) (layout.Dimension, error) {
	switch s {
	case "auto":
		return layout.Auto(), nil
	case "none":
		return layout.None(), nil
	case "min-content":
		return layout.MinContent(), nil
	case "max-content":
		return layout.MaxContent(), nil
	}
	if inner, ok := call(s, "fit-content"); ok {
		d, err := ParseDimension(inner)
		if err != nil {
			return layout.Dimension{}, err
		}
		switch d.Unit {
		case layout.UnitLength:
			return layout.FitContent(d.Value), nil
		case layout.UnitPercent:
			return layout.FitContentPercent(d.Value), nil
		}
		return layout.Dimension{}, fmt.Errorf("invalid fit-content limit %q", inner)
	}

	num, ctor := s, layout.Length
	switch {
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "%"):
		num, ctor = strings.TrimSuffix(s, "%"), layout.Percent
	case strings.HasSuffix(s, "fr"):
		num, ctor = strings.TrimSuffix(s, "fr"), layout.Fr
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return layout.Dimension{}, fmt.Errorf("invalid dimension %q", s)
	}
	return ctor(v), nil
}

// ParseRatio parses an aspect ratio: "none", "2" or "16/9".
func ParseRatio(s string) (layout.Dimension, error) {
	if s == "none" || s == "auto" {
		return layout.None(), nil
	}
	num, den, hasDen := strings.Cut(s, "/")
	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return layout.Dimension{}, fmt.Errorf("invalid ratio %q", s)
	}
	if hasDen {
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil || d == 0 {
			return layout.Dimension{}, fmt.Errorf("invalid ratio %q", s)
		}
		n /= d
	}
	return layout.Ratio(n), nil
}

// ParseTracks parses track sizing tokens, expanding repeat(n, ...).
func ParseTracks(tokens []string) ([]layout.TrackSizing, error) {
	var out []layout.TrackSizing
	for _, tok := range tokens {
		if inner, ok := call(tok, "repeat"); ok {
			count, rest, found := strings.Cut(inner, ",")
			n, err := strconv.Atoi(strings.TrimSpace(count))
			if !found || err != nil || n < 1 {
				return nil, fmt.Errorf("invalid repeat %q", tok)
			}
			tracks, err := ParseTracks(splitTokens(rest))
			if err != nil {
				return nil, err
			}
			out = append(out, layout.Repeat(n, tracks...)...)
			continue
		}
		t, err := ParseTrack(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// ParseTrack parses one track: a dimension or minmax(min, max).
func ParseTrack(s string) (layout.TrackSizing, error) {
	if inner, ok := call(s, "minmax"); ok {
		lo, hi, found := strings.Cut(inner, ",")
		if !found {
			return layout.TrackSizing{}, fmt.Errorf("invalid minmax %q", s)
		}
		min, err := ParseDimension(strings.TrimSpace(lo))
		if err != nil {
			return layout.TrackSizing{}, err
		}
		max, err := ParseDimension(strings.TrimSpace(hi))
		if err != nil {
			return layout.TrackSizing{}, err
		}
		return layout.MinMax(min, max), nil
	}
	d, err := ParseDimension(s)
	if err != nil {
		return layout.TrackSizing{}, err
	}
	return layout.Track(d), nil
}

// ParsePlacement parses a grid-row or grid-column value such as "2",
// "1 / 3", "span 2" or "2 / span 3".
func ParsePlacement(s string) (layout.GridPlacement, error) {
	var p layout.GridPlacement
	startPart, endPart, hasEnd := strings.Cut(s, "/")
	parts := []string{strings.TrimSpace(startPart)}
	if hasEnd {
		parts = append(parts, strings.TrimSpace(endPart))
	}
	for i, part := range parts {
		if part == "auto" {
			continue
		}
		if rest, ok := strings.CutPrefix(part, "span "); ok {
			n, err := strconv.ParseUint(strings.TrimSpace(rest), 10, 16)
			if err != nil || n == 0 || p.Span != 0 {
				return layout.GridPlacement{}, fmt.Errorf("invalid placement %q", s)
			}
			p.Span = uint16(n)
			continue
		}
		n, err := strconv.ParseInt(part, 10, 16)
		if err != nil || n == 0 {
			return layout.GridPlacement{}, fmt.Errorf("invalid placement %q", s)
		}
		if i == 0 {
			p.Start = int16(n)
		} else {
			p.End = int16(n)
		}
	}
	return p, nil
}

// call returns the argument of name(...).
func call(s, name string) (string, bool) {
	if !strings.HasPrefix(s, name+"(") || !strings.HasSuffix(s, ")") {
		return "", false
	}
	return s[len(name)+1 : len(s)-1], true
}

package doc

import (
	"testing"

	"github.com/grindlemire/go-boxlayout/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const sidebarDoc = `
version: v1.2
available: {width: 300, height: 100}
root:
  name: page
  style:
    width: 300px
    height: 100px
  children:
    - name: nav
      style: {width: 100px}
    - name: main
      style: {flex-grow: 1, padding: 10px}
      children:
        - name: title
          text: hello world
`

func TestLoad(t *testing.T) {
	type tc struct {
		input   string
		wantErr string
		check   func(t *testing.T, d *Document)
	}

	tests := map[string]tc{
		"full document": {
			input: sidebarDoc,
			check: func(t *testing.T, d *Document) {
				assert.Equal(t, "v1.2.0", d.Version)
				assert.Equal(t, "page", d.Root.Name)
				require.Len(t, d.Root.Children, 2)
				assert.Equal(t, "main", d.Root.Children[1].Name)
				assert.Equal(t, 12, d.Root.Children[1].Line)
				require.NotNil(t, d.Root.Children[1].Children[0].Text)
				assert.Equal(t, "hello world", *d.Root.Children[1].Children[0].Text)
			},
		},
		"json is yaml": {
			input: `{"version": "1", "root": {"name": "a", "style": {"width": "10px"}}}`,
			check: func(t *testing.T, d *Document) {
				assert.Equal(t, "v1.0.0", d.Version)
				assert.Equal(t, "a", d.Root.Name)
			},
		},
		"empty":              {input: "", wantErr: "empty document"},
		"missing version":    {input: "root: {name: a}", wantErr: "missing document version"},
		"bad version":        {input: "version: one\nroot: {}", wantErr: `invalid document version "one"`},
		"future version":     {input: "version: v2.0.0\nroot: {}", wantErr: "unsupported document version v2.0.0"},
		"unknown top field":  {input: "version: v1\nroots: {}", wantErr: "field roots not found"},
		"unknown node field": {input: "version: v1\nroot: {name: a, kids: []}", wantErr: `unknown node field "kids"`},
		"malformed yaml":     {input: "version: [v1", wantErr: "decoding document"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d, err := LoadString(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, d)
		})
	}
}

func TestParseAvailableSpace(t *testing.T) {
	type tc struct {
		input   string
		want    layout.AvailableSpace
		wantErr bool
	}

	tests := map[string]tc{
		"empty":       {input: "", want: layout.MaxContentSpace},
		"max-content": {input: "max-content", want: layout.MaxContentSpace},
		"min-content": {input: "min-content", want: layout.MinContentSpace},
		"number":      {input: "640", want: layout.Definite(640)},
		"pixels":      {input: "12.5px", want: layout.Definite(12.5)},
		"garbage":     {input: "wide", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAvailableSpace(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild(t *testing.T) {
	d, err := LoadString(sidebarDoc)
	require.NoError(t, err)

	tree, err := layout.New(layout.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	b, err := d.Build(tree)
	require.NoError(t, err)

	assert.Equal(t, 4, tree.Len())
	assert.Equal(t, b.Root, b.Names["page"])
	assert.Equal(t, "page/main/title", b.Paths[b.Names["title"]])

	avail, err := d.AvailableSize()
	require.NoError(t, err)
	require.NoError(t, tree.ComputeLayout(b.Root, avail))

	nav, err := tree.Layout(b.Names["nav"])
	require.NoError(t, err)
	assert.Equal(t, layout.Size{Width: 100, Height: 100}, nav.Size)

	main, err := tree.Layout(b.Names["main"])
	require.NoError(t, err)
	assert.Equal(t, layout.Point{X: 100, Y: 0}, main.Location)
	assert.Equal(t, layout.Size{Width: 200, Height: 100}, main.Size)

	title, err := tree.Layout(b.Names["title"])
	require.NoError(t, err)
	assert.Equal(t, layout.Point{X: 110, Y: 10}, title.Absolute)
	// Stretched to the content box of main.
	assert.Equal(t, layout.Size{Width: 11, Height: 80}, title.Size)
}

func TestBuild_Errors(t *testing.T) {
	type tc struct {
		input   string
		wantErr string
		wantIs  error
	}

	tests := map[string]tc{
		"invalid unit": {
			input:   "version: v1\nroot:\n  name: a\n  style: {padding: auto}",
			wantErr: "a (line 3): padding:",
			wantIs:  layout.ErrInvalidUnit,
		},
		"text with children": {
			input:   "version: v1\nroot:\n  text: hi\n  children: [{name: b}]",
			wantErr: "text node cannot have children",
		},
		"duplicate names": {
			input:   "version: v1\nroot:\n  name: a\n  children: [{name: b}, {name: b}]",
			wantErr: `duplicate node name "b"`,
		},
		"unknown property": {
			input:   "version: v1\nroot:\n  children: [{style: {colour: red}}]",
			wantErr: "#0/#0 (line 3): colour: unknown property",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d, err := LoadString(tt.input)
			require.NoError(t, err)
			tree, err := layout.New(layout.WithLogger(zaptest.NewLogger(t)))
			require.NoError(t, err)

			_, err = d.Build(tree)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			assert.Zero(t, tree.Len(), "partial trees are removed")
		})
	}
}

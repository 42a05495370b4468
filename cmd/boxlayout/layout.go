package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/go-boxlayout/internal/doc"
	"github.com/grindlemire/go-boxlayout/internal/layout"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// laidOut is one document after layout.
type laidOut struct {
	file  string
	tree  *layout.Tree
	built *doc.Built
}

func (a *app) newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout [path...]",
		Short: "Lay out documents and print the computed boxes",
		Long: `Lay out each document and print the position and size of every node.

Paths may be files, directories, "dir/..." for a recursive search or "-" for
standard input. Without paths the current directory is used.`,
		RunE: a.runLayout,
	}

	f := cmd.Flags()
	f.String("width", "", `available width: pixels, "min-content" or "max-content" (default from the document)`)
	f.String("height", "", "available height (default from the document)")
	f.StringP("format", "f", "json", "output format: json or text")
	f.Bool("rounding", true, "round layouts to whole pixels")
	f.Bool("cache", true, "memoize intermediate layout results")
	f.Bool("unrounded", false, "print layouts before rounding (text format)")
	for _, name := range []string{"width", "height", "format", "rounding", "cache", "unrounded"} {
		_ = a.v.BindPFlag(name, f.Lookup(name))
	}
	return cmd
}

func (a *app) runLayout(cmd *cobra.Command, args []string) error {
	format := a.v.GetString("format")
	if format != "json" && format != "text" {
		return fmt.Errorf("unknown format %q", format)
	}

	results, err := a.layoutAll(cmd.Context(), args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, r := range results {
		var err error
		if format == "json" {
			err = writeJSON(out, r)
		} else {
			if len(results) > 1 {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "# %s\n", r.file)
			}
			err = writeText(out, r, a.v.GetBool("unrounded"))
		}
		if err != nil {
			return fmt.Errorf("%s: %w", r.file, err)
		}
	}
	return nil
}

// layoutAll lays out every document concurrently, one Tree per document,
// and returns the results in argument order.
func (a *app) layoutAll(ctx context.Context, args []string) ([]*laidOut, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	files, err := collectDocFiles(args)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no layout documents found")
	}

	var stdin []byte
	if countStdin(files) > 0 {
		if stdin, err = readStdin(a.stdin, files); err != nil {
			return nil, err
		}
	}

	results := make([]*laidOut, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.v.GetInt("jobs"))
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := a.layoutFile(file, stdin)
			if err != nil {
				return fmt.Errorf("%s: %w", displayName(file), err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func countStdin(files []string) int {
	n := 0
	for _, f := range files {
		if f == stdinName {
			n++
		}
	}
	return n
}

// readStdin reads standard input once for the single "-" path.
func readStdin(r io.Reader, files []string) ([]byte, error) {
	if countStdin(files) > 1 {
		return nil, fmt.Errorf("standard input given more than once")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading standard input: %w", err)
	}
	return data, nil
}

func displayName(file string) string {
	if file == stdinName {
		return "<stdin>"
	}
	return file
}

// loadFile reads and decodes one document.
func loadFile(file string, stdin []byte) (*doc.Document, error) {
	if file == stdinName {
		return doc.Load(bytes.NewReader(stdin))
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return doc.Load(f)
}

func (a *app) layoutFile(file string, stdin []byte) (*laidOut, error) {
	d, err := loadFile(file, stdin)
	if err != nil {
		return nil, err
	}

	tree, err := layout.New(
		layout.WithLogger(a.logger.Named("layout").With(zap.String("file", displayName(file)))),
		layout.WithRounding(a.v.GetBool("rounding")),
		layout.WithCache(a.v.GetBool("cache")),
	)
	if err != nil {
		return nil, err
	}
	built, err := d.Build(tree)
	if err != nil {
		return nil, err
	}

	avail, err := d.AvailableSize()
	if err != nil {
		return nil, err
	}
	if w := a.v.GetString("width"); w != "" {
		if avail.Width, err = doc.ParseAvailableSpace(w); err != nil {
			return nil, fmt.Errorf("--width: %w", err)
		}
	}
	if h := a.v.GetString("height"); h != "" {
		if avail.Height, err = doc.ParseAvailableSpace(h); err != nil {
			return nil, fmt.Errorf("--height: %w", err)
		}
	}

	if err := tree.ComputeLayout(built.Root, avail); err != nil {
		return nil, err
	}
	a.logger.Info("laid out document",
		zap.String("file", displayName(file)),
		zap.Int("nodes", tree.Len()),
		zap.Stringer("available_width", avail.Width),
		zap.Stringer("available_height", avail.Height),
	)
	return &laidOut{file: displayName(file), tree: tree, built: built}, nil
}

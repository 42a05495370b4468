package main

import (
	"fmt"

	"github.com/grindlemire/go-boxlayout/internal/layout"
	"github.com/spf13/cobra"
)

func (a *app) newCheckCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Validate documents without printing layouts",
		Long: `Decode each document, parse its styles and build its node tree.
Every failing document is reported; the command fails if any did.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, args, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report every file checked")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string, verbose bool) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	// Default to current directory if no paths specified
	if len(args) == 0 {
		args = []string{"."}
	}

	files, err := collectDocFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no layout documents found")
	}

	var stdin []byte
	if countStdin(files) > 0 {
		if stdin, err = readStdin(a.stdin, files); err != nil {
			return err
		}
	}

	if verbose {
		fmt.Fprintf(out, "Checking %d document(s)\n", len(files))
	}

	var errorCount int
	for _, file := range files {
		if verbose {
			fmt.Fprintf(out, "Checking %s\n", displayName(file))
		}
		if err := checkFile(file, stdin); err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", displayName(file), err)
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	if verbose {
		fmt.Fprintf(out, "All %d file(s) passed checks\n", len(files))
	}
	return nil
}

// checkFile decodes one document and builds it into a scratch tree.
func checkFile(file string, stdin []byte) error {
	d, err := loadFile(file, stdin)
	if err != nil {
		return err
	}
	if _, err := d.AvailableSize(); err != nil {
		return err
	}
	tree, err := layout.New()
	if err != nil {
		return err
	}
	_, err = d.Build(tree)
	return err
}

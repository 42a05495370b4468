package main

import (
	"fmt"

	"github.com/grindlemire/go-boxlayout/internal/doc"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "boxlayout version %s (documents %s)\n", version, doc.SupportedMajor)
		},
	}
}

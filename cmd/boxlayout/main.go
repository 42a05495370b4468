// Package main provides the boxlayout command-line tool.
//
// Usage:
//
//	boxlayout layout [path...]    Lay out documents and print the boxes
//	boxlayout check [path...]     Validate documents without printing
//	boxlayout version             Print version information
//
// Examples:
//
//	boxlayout layout page.yaml               Lay out one document as JSON
//	boxlayout layout --format text ./...     Print every document as a tree
//	boxlayout layout --width 320 page.yaml   Override the available width
//	cat page.yaml | boxlayout layout -       Read a document from stdin
//	boxlayout check -v ./docs                Check a directory of documents
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

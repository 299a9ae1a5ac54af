package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-srcdump/internal/fileutil"
)

// Sentinel errors for conversion operations.
var (
	ErrUnknownEngine = errors.New("unknown engine")
	ErrReadMarkdown  = errors.New("failed to read markdown file")
	ErrWritePDF      = errors.New("failed to write PDF file")
	ErrWriteHTML     = errors.New("failed to write HTML file")
	ErrPandocFailed  = errors.New("pandoc conversion failed")
)

// Markdown extensions accepted as input.
const markdownExt = ".md"

// Engine converts one markdown file into a PDF sibling.
type Engine interface {
	Convert(ctx context.Context, inputPath, outputPath string) error
	Close() error
}

// runConvert converts each markdown argument to a sibling PDF.
//
// Inputs that are not files or not markdown are reported on the
// diagnostic stream and skipped; a failing conversion is fatal for the
// whole invocation, matching the behavior of the underlying converter.
func runConvert(ctx context.Context, files []string, flags *convertFlags, engine Engine, env *Environment) error {
	for _, path := range files {
		if !fileutil.FileExists(path) {
			fmt.Fprintf(env.Stderr, "Error: %s is not a file.\n", path)
			continue
		}
		if filepath.Ext(path) != markdownExt {
			fmt.Fprintf(env.Stderr, "Error: %s is not a markdown file.\n", path)
			continue
		}

		outputPath := pdfOutputPath(path)
		if err := engine.Convert(ctx, path, outputPath); err != nil {
			return fmt.Errorf("converting %s: %w", path, err)
		}
		if flags.verbose {
			fmt.Fprintf(env.Stderr, "Created %s\n", outputPath)
		}
	}
	return nil
}

// pdfOutputPath returns the sibling PDF path for a markdown file.
func pdfOutputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".pdf"
}

// htmlOutputPath returns the sibling HTML path for a PDF path.
func htmlOutputPath(pdfPath string) string {
	return strings.TrimSuffix(pdfPath, ".pdf") + ".html"
}

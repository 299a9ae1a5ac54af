package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2pdf [flags] FILE.md...")
	fmt.Fprintln(w, "       md2pdf doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to sibling PDF files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --engine <name>    Conversion engine: pandoc (default) or chrome")
	fmt.Fprintln(w, "      --html             Keep the intermediate HTML next to the PDF")
	fmt.Fprintln(w, "  -t, --timeout <dur>    PDF render timeout for the chrome engine (default 1m)")
	fmt.Fprintln(w, "  -v, --verbose          Report each created file")
	fmt.Fprintln(w, "      --version          Print version and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The pandoc engine shells out to pandoc with an HTML intermediate")
	fmt.Fprintln(w, "representation. The chrome engine converts markdown in-process and")
	fmt.Fprintln(w, "renders the PDF with headless Chrome; run 'md2pdf doctor' to check")
	fmt.Fprintln(w, "which engines are available.")
}

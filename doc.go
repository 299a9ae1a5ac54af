// Package srcdump concatenates source trees into a single annotated text
// stream, suitable for pasting into documentation or LLM prompts.
//
// # Quick Start
//
// Create a service pointing at a sink, then dump one or more roots:
//
//	svc := srcdump.New(
//	    srcdump.WithSink(os.Stdout),
//	    srcdump.WithDiagnostics(os.Stderr),
//	    srcdump.WithSuffixes([]string{"go", "md"}),
//	)
//	if err := svc.Dump([]string{"."}); err != nil {
//	    log.Fatal(err)
//	}
//
// Each dumped file is preceded by a comment banner matching its file type
// (hash rules for Python, slash rules for JavaScript, and so on), followed
// by the file's text verbatim. Files that cannot be decoded as text, and
// roots that do not exist, are reported on the diagnostic stream; a single
// bad file never aborts the run.
//
// # Pipeline
//
//  1. Collection: each root is resolved to a single file or recursively
//     scanned, honoring the suffix filter and exclusion set.
//  2. Rendering: each candidate is re-checked, classified by extension,
//     and written to the sink with its banner.
//
// Binary-like files (lock files, images, compiled artifacts) are skipped
// without any output. Hidden files and anything under a hidden directory
// are skipped as well.
package srcdump

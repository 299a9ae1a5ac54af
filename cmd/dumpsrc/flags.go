package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// dumpFlags holds all flags for the dump tool.
type dumpFlags struct {
	suffix    string
	output    string
	excludes  []string
	clipboard bool
	gitignore bool
	tokens    bool
	config    string
	version   bool
}

// parseFlags parses command-line flags and returns the positional roots.
func parseFlags(args []string) (*dumpFlags, []string, error) {
	fs := flag.NewFlagSet("dumpsrc", flag.ContinueOnError)
	f := &dumpFlags{}

	fs.StringVar(&f.suffix, "suffix", "", `file suffix(es) to filter by, comma-separated (e.g. "py" or "py,php,java")`)
	fs.StringVarP(&f.output, "output", "o", "", "output file (defaults to stdout)")
	fs.StringArrayVarP(&f.excludes, "exclude", "x", nil, "exclude file or directory (repeatable)")
	fs.BoolVarP(&f.clipboard, "clipboard", "c", false, "copy the dump to the clipboard instead of writing it out")
	fs.BoolVar(&f.gitignore, "gitignore", false, "honor .gitignore files during directory scans")
	fs.BoolVar(&f.tokens, "tokens", false, "report token counts in per-file diagnostics")
	fs.StringVar(&f.config, "config", "", "config file name or path")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

package main

import (
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"
)

// Engine names.
const (
	EnginePandoc = "pandoc"
	EngineChrome = "chrome"
)

// defaultTimeout bounds a single chrome-engine PDF render.
const defaultTimeout = time.Minute

// convertFlags holds all flags for the converter.
type convertFlags struct {
	engine  string
	html    bool
	timeout time.Duration
	verbose bool
	version bool
}

// parseFlags parses command-line flags and returns the positional
// markdown files.
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("md2pdf", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVar(&f.engine, "engine", EnginePandoc, "conversion engine: pandoc or chrome")
	fs.BoolVar(&f.html, "html", false, "keep the intermediate HTML next to the PDF")
	fs.DurationVarP(&f.timeout, "timeout", "t", defaultTimeout, "PDF render timeout for the chrome engine")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "report each created file")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// newEngine builds the conversion engine selected by flags.
func newEngine(f *convertFlags) (Engine, error) {
	switch f.engine {
	case EnginePandoc:
		return newPandocEngine(f.html), nil
	case EngineChrome:
		return newChromeEngine(f.timeout, f.html), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, f.engine)
	}
}

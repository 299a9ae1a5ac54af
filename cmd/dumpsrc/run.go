package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	srcdump "github.com/alnah/go-srcdump"
	"github.com/alnah/go-srcdump/internal/config"
	"github.com/alnah/go-srcdump/internal/diag"
	"github.com/alnah/go-srcdump/internal/tokencount"
)

// Sentinel errors for CLI operations.
var (
	ErrOpenOutput       = errors.New("cannot open output file")
	ErrConflictingSinks = errors.New("--output and --clipboard are mutually exclusive")
	ErrClipboardWrite   = errors.New("cannot write to clipboard")
)

// run executes one dump. Per-file and per-root problems surface as
// diagnostics on env.Stderr; only conditions that prevent any coherent
// output at all (bad config, unwritable sink) return an error.
func run(roots []string, flags *dumpFlags, env *Environment) error {
	if flags.version {
		fmt.Fprintf(env.Stdout, "dumpsrc %s\n", Version)
		return nil
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	if flags.output != "" && flags.clipboard {
		return ErrConflictingSinks
	}

	sink, finish, err := openSink(flags, env)
	if err != nil {
		return err
	}

	diagStream := diag.NewWriter(env.Stderr)

	opts := []srcdump.Option{
		srcdump.WithSink(sink),
		srcdump.WithDiagnostics(diagStream),
		srcdump.WithSuffixes(resolveSuffixes(flags, cfg)),
		srcdump.WithExcludes(append(cfg.Dump.Excludes, flags.excludes...)),
		srcdump.WithGitignore(flags.gitignore || cfg.Dump.Gitignore),
	}
	if flags.output != "" {
		opts = append(opts, srcdump.WithSinkPath(flags.output))
	}
	if counter := resolveCounter(flags, cfg, diagStream); counter != nil {
		opts = append(opts, srcdump.WithTokenCounter(counter))
	}

	dumpErr := srcdump.New(opts...).Dump(roots)

	if err := finish(); err != nil {
		return err
	}
	return dumpErr
}

// loadConfig returns the effective config: file values when --config is
// given, neutral defaults otherwise.
func loadConfig(flags *dumpFlags) (*config.Config, error) {
	if flags.config == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(flags.config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// openSink returns the run's sink and a finish function releasing it.
// The finish function flushes the clipboard buffer or closes the output
// file; for stdout it is a no-op.
func openSink(flags *dumpFlags, env *Environment) (io.Writer, func() error, error) {
	switch {
	case flags.output != "":
		f, err := os.Create(flags.output) // #nosec G304 -- output path is user-provided
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %v", ErrOpenOutput, flags.output, err)
		}
		return f, f.Close, nil
	case flags.clipboard:
		var buf strings.Builder
		finish := func() error {
			if err := env.WriteClipboard(buf.String()); err != nil {
				return fmt.Errorf("%w: %v", ErrClipboardWrite, err)
			}
			fmt.Fprintln(env.Stderr, "Copied dump to clipboard.")
			return nil
		}
		return &buf, finish, nil
	default:
		return env.Stdout, func() error { return nil }, nil
	}
}

// resolveSuffixes merges the --suffix flag with config defaults; the
// flag wins when present.
func resolveSuffixes(flags *dumpFlags, cfg *config.Config) []string {
	if flags.suffix == "" {
		return cfg.Dump.Suffixes
	}
	parts := strings.Split(flags.suffix, ",")
	suffixes := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			suffixes = append(suffixes, trimmed)
		}
	}
	return suffixes
}

// resolveCounter builds the token counter when enabled. Initialization
// failures disable counting with a diagnostic rather than aborting the
// dump.
func resolveCounter(flags *dumpFlags, cfg *config.Config, diagStream io.Writer) srcdump.TokenCounter {
	if !flags.tokens && !cfg.Tokens.Enabled {
		return nil
	}
	counter, err := tokencount.New(cfg.Tokens.Encoding)
	if err != nil {
		fmt.Fprintf(diagStream, "Warning: token counting disabled: %v\n", err)
		return nil
	}
	return counter
}

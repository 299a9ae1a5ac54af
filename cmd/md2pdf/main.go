package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	env := DefaultEnv()

	if len(os.Args) > 1 && os.Args[1] == "doctor" {
		os.Exit(runDoctorCmd(os.Args[2:], env))
	}

	flags, files, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		printUsage(os.Stderr)
		os.Exit(ExitUsage)
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "md2pdf %s\n", Version)
		return
	}

	engine, err := newEngine(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}
	defer func() { _ = engine.Close() }()

	if err := runConvert(context.Background(), files, flags, engine, env); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: dumpsrc [SOURCE_PATH...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Dump a source tree to stdout or a file, one comment banner per file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  SOURCE_PATH    Files or directories to dump (default: current directory)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --suffix <list>     Extension filter for directory scans, comma-separated")
	fmt.Fprintln(w, "  -o, --output <file>     Write the dump to a file instead of stdout")
	fmt.Fprintln(w, "  -x, --exclude <path>    Exclude a file or directory and its descendants (repeatable)")
	fmt.Fprintln(w, "  -c, --clipboard         Copy the dump to the clipboard")
	fmt.Fprintln(w, "      --gitignore         Honor .gitignore files during directory scans")
	fmt.Fprintln(w, "      --tokens            Report token counts in per-file diagnostics")
	fmt.Fprintln(w, "      --config <name>     Config file name or path")
	fmt.Fprintln(w, "      --version           Print version and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  dumpsrc ./my_folder --suffix py,php,java")
	fmt.Fprintln(w, "  dumpsrc src tests --suffix py -o output.md")
	fmt.Fprintln(w, "  dumpsrc --suffix py -x tests -x __pycache__")
}

package main

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout         io.Writer
	Stderr         io.Writer
	WriteClipboard func(string) error
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
		WriteClipboard: clipboard.WriteAll,
	}
}

package main

import (
	"errors"
	"os"
)

// Exit codes for the converter.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All inputs converted (skipped inputs included)
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or unknown engine
	ExitIO      = 3 // File not found, permission denied
	ExitConvert = 4 // Conversion backend failure (pandoc or browser)
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrPandocFailed) ||
		errors.Is(err, ErrBrowserConnect) ||
		errors.Is(err, ErrPageCreate) ||
		errors.Is(err, ErrPageLoad) ||
		errors.Is(err, ErrPDFGeneration) {
		return ExitConvert
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrWriteHTML) {
		return ExitIO
	}

	if errors.Is(err, ErrUnknownEngine) {
		return ExitUsage
	}

	return ExitGeneral
}

package main

import (
	"fmt"
	"os"
	"testing"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "pandoc failure", err: fmt.Errorf("converting a.md: %w", ErrPandocFailed), want: ExitConvert},
		{name: "browser connect", err: ErrBrowserConnect, want: ExitConvert},
		{name: "page load", err: fmt.Errorf("wrap: %w", ErrPageLoad), want: ExitConvert},
		{name: "pdf generation", err: ErrPDFGeneration, want: ExitConvert},
		{name: "read markdown", err: ErrReadMarkdown, want: ExitIO},
		{name: "write pdf", err: ErrWritePDF, want: ExitIO},
		{name: "not exist", err: os.ErrNotExist, want: ExitIO},
		{name: "permission", err: fmt.Errorf("open: %w", os.ErrPermission), want: ExitIO},
		{name: "unknown engine", err: ErrUnknownEngine, want: ExitUsage},
		{name: "unclassified", err: fmt.Errorf("boom"), want: ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

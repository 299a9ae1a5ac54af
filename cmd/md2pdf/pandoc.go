package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
)

// CommandRunner abstracts command execution to enable testing without
// real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return "", "", fmt.Errorf("creating stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return "", "", fmt.Errorf("starting command: %w", err)
	}

	stderrContent, err := io.ReadAll(stderrPipe)
	if err != nil {
		return "", "", fmt.Errorf("reading stderr: %w", err)
	}

	err = cmd.Wait()
	return stdout.String(), string(stderrContent), err
}

// pandocEngine converts markdown by invoking the pandoc CLI with an
// HTML intermediate representation.
type pandocEngine struct {
	runner   CommandRunner
	keepHTML bool
}

// newPandocEngine creates a pandocEngine with a real command runner.
func newPandocEngine(keepHTML bool) *pandocEngine {
	return &pandocEngine{runner: &ExecRunner{}, keepHTML: keepHTML}
}

// Convert produces outputPath from inputPath via pandoc. A non-zero
// pandoc exit is returned as ErrPandocFailed with pandoc's stderr.
func (e *pandocEngine) Convert(ctx context.Context, inputPath, outputPath string) error {
	targets := []string{outputPath}
	if e.keepHTML {
		targets = append(targets, htmlOutputPath(outputPath))
	}

	for _, target := range targets {
		_, stderr, err := e.runner.Run(ctx, "pandoc", "-o", target, "-t", "html", inputPath)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrPandocFailed, stderr, err)
		}
	}
	return nil
}

// Close implements Engine; pandoc holds no resources between runs.
func (e *pandocEngine) Close() error { return nil }

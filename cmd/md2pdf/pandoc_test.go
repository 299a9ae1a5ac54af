package main

import (
	"context"
	"errors"
	"testing"
)

// fakeRunner records invocations and returns canned results.
type fakeRunner struct {
	calls  [][]string
	stderr string
	err    error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (string, string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return "", f.stderr, f.err
}

func TestPandocEngineCommandShape(t *testing.T) {
	runner := &fakeRunner{}
	e := &pandocEngine{runner: runner}

	if err := e.Convert(context.Background(), "docs.md", "docs.pdf"); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(runner.calls))
	}
	want := []string{"pandoc", "-o", "docs.pdf", "-t", "html", "docs.md"}
	got := runner.calls[0]
	if len(got) != len(want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("arg[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPandocEngineKeepHTML(t *testing.T) {
	runner := &fakeRunner{}
	e := &pandocEngine{runner: runner, keepHTML: true}

	if err := e.Convert(context.Background(), "docs.md", "docs.pdf"); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if len(runner.calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(runner.calls))
	}
	if got := runner.calls[1][2]; got != "docs.html" {
		t.Errorf("second target = %q, want %q", got, "docs.html")
	}
}

func TestPandocEngineFailure(t *testing.T) {
	runner := &fakeRunner{stderr: "pandoc: bad input", err: errors.New("exit status 1")}
	e := &pandocEngine{runner: runner}

	err := e.Convert(context.Background(), "docs.md", "docs.pdf")
	if !errors.Is(err, ErrPandocFailed) {
		t.Fatalf("Convert() error = %v, want ErrPandocFailed", err)
	}
}

func TestPandocEngineClose(t *testing.T) {
	e := newPandocEngine(false)
	if err := e.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

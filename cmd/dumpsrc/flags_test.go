package main

import (
	"testing"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantRoots []string
		check     func(t *testing.T, f *dumpFlags)
	}{
		{
			name:      "defaults",
			args:      []string{"dumpsrc"},
			wantRoots: nil,
			check: func(t *testing.T, f *dumpFlags) {
				if f.suffix != "" || f.output != "" || len(f.excludes) != 0 {
					t.Errorf("defaults not neutral: %+v", f)
				}
			},
		},
		{
			name:      "positional roots",
			args:      []string{"dumpsrc", "src", "tests"},
			wantRoots: []string{"src", "tests"},
		},
		{
			name:      "suffix list",
			args:      []string{"dumpsrc", "--suffix", "py,php,java"},
			wantRoots: nil,
			check: func(t *testing.T, f *dumpFlags) {
				if f.suffix != "py,php,java" {
					t.Errorf("suffix = %q", f.suffix)
				}
			},
		},
		{
			name:      "repeatable excludes",
			args:      []string{"dumpsrc", "-x", "tests", "-x", "__pycache__", "."},
			wantRoots: []string{"."},
			check: func(t *testing.T, f *dumpFlags) {
				if len(f.excludes) != 2 || f.excludes[0] != "tests" || f.excludes[1] != "__pycache__" {
					t.Errorf("excludes = %v", f.excludes)
				}
			},
		},
		{
			name:      "short output flag",
			args:      []string{"dumpsrc", "-o", "out.md", "src"},
			wantRoots: []string{"src"},
			check: func(t *testing.T, f *dumpFlags) {
				if f.output != "out.md" {
					t.Errorf("output = %q", f.output)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, roots, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			if len(roots) != len(tt.wantRoots) {
				t.Fatalf("roots = %v, want %v", roots, tt.wantRoots)
			}
			for i := range tt.wantRoots {
				if roots[i] != tt.wantRoots[i] {
					t.Errorf("roots[%d] = %q, want %q", i, roots[i], tt.wantRoots[i])
				}
			}
			if tt.check != nil {
				tt.check(t, f)
			}
		})
	}
}

func TestParseFlagsInvalid(t *testing.T) {
	if _, _, err := parseFlags([]string{"dumpsrc", "--no-such-flag"}); err == nil {
		t.Error("parseFlags() accepted unknown flag")
	}
}

package srcdump

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFile creates a file with parent directories under dir.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestCollectSuffixFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "print(1)\n")
	writeFile(t, dir, "b.txt", "notes\n")
	writeFile(t, dir, "sub/c.py", "print(2)\n")
	writeFile(t, dir, "sub/d.js", "let x;\n")

	c := &Collector{Suffixes: []string{"py"}}
	got := c.Collect([]string{dir})

	want := []string{
		filepath.Join(dir, "a.py"),
		filepath.Join(dir, "sub", "c.py"),
	}
	if len(got) != len(want) {
		t.Fatalf("Collect() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Collect()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCollectNoFilterIncludesDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sub/a.py", "print(1)\n")

	c := &Collector{}
	got := c.Collect([]string{dir})

	// Without a suffix filter every entry is collected, directories
	// included; the renderer filters them out later.
	wantSub := filepath.Join(dir, "sub")
	found := false
	for _, p := range got {
		if p == wantSub {
			found = true
		}
	}
	if !found {
		t.Errorf("Collect() = %v, missing directory entry %q", got, wantSub)
	}
}

func TestCollectFileRootBypassesSuffixFilter(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "hello\n")

	c := &Collector{Suffixes: []string{"py"}}
	got := c.Collect([]string{path})

	if len(got) != 1 || got[0] != path {
		t.Errorf("Collect() = %v, want [%s]", got, path)
	}
}

func TestCollectRootOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one/z.py", "z\n")
	writeFile(t, dir, "two/a.py", "a\n")

	c := &Collector{Suffixes: []string{"py"}}
	got := c.Collect([]string{
		filepath.Join(dir, "two"),
		filepath.Join(dir, "one"),
	})

	// Root argument order wins over a global sort.
	want := []string{
		filepath.Join(dir, "two", "a.py"),
		filepath.Join(dir, "one", "z.py"),
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Collect() = %v, want %v", got, want)
	}
}

func TestCollectMissingRoot(t *testing.T) {
	var diag strings.Builder
	c := &Collector{Diag: &diag}

	got := c.Collect([]string{"/no/such/path/anywhere"})

	if len(got) != 0 {
		t.Errorf("Collect() = %v, want empty", got)
	}
	if !strings.Contains(diag.String(), "does not exist") {
		t.Errorf("diagnostic = %q, want mention of missing root", diag.String())
	}
}

func TestCollectExclusion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "build/gen.py", "g\n")
	writeFile(t, dir, "build2/keep.py", "k\n")
	writeFile(t, dir, "main.py", "m\n")

	tests := []struct {
		name     string
		excludes []string
		want     []string
	}{
		{
			name:     "directory exclusion drops descendants",
			excludes: []string{filepath.Join(dir, "build")},
			want: []string{
				filepath.Join(dir, "build2", "keep.py"),
				filepath.Join(dir, "main.py"),
			},
		},
		{
			name:     "sibling string prefix is not excluded",
			excludes: []string{filepath.Join(dir, "build2")},
			want: []string{
				filepath.Join(dir, "build", "gen.py"),
				filepath.Join(dir, "main.py"),
			},
		},
		{
			name:     "exact file exclusion",
			excludes: []string{filepath.Join(dir, "main.py")},
			want: []string{
				filepath.Join(dir, "build", "gen.py"),
				filepath.Join(dir, "build2", "keep.py"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Collector{Suffixes: []string{"py"}, Excludes: tt.excludes}
			got := c.Collect([]string{dir})
			if len(got) != len(tt.want) {
				t.Fatalf("Collect() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Collect()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCollectGitignore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".gitignore", "vendor/\n*.gen.py\n")
	writeFile(t, dir, "vendor/dep.py", "d\n")
	writeFile(t, dir, "out.gen.py", "o\n")
	writeFile(t, dir, "main.py", "m\n")

	c := &Collector{Suffixes: []string{"py"}, UseGitignore: true}
	got := c.Collect([]string{dir})

	if len(got) != 1 || got[0] != filepath.Join(dir, "main.py") {
		t.Errorf("Collect() = %v, want only main.py", got)
	}

	// Off by default: ignored entries are collected again.
	c = &Collector{Suffixes: []string{"py"}}
	got = c.Collect([]string{dir})
	if len(got) != 3 {
		t.Errorf("Collect() without gitignore = %v, want 3 entries", got)
	}
}

func TestCollectIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "a\n")
	writeFile(t, dir, "b/c.py", "c\n")

	c := &Collector{Suffixes: []string{"py"}}
	first := c.Collect([]string{dir})
	second := c.Collect([]string{dir})

	if len(first) != len(second) {
		t.Fatalf("runs differ: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("runs differ at %d: %q vs %q", i, first[i], second[i])
		}
	}
}

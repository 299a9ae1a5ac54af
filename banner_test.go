package srcdump

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		want bannerClass
	}{
		{name: "python", ext: "py", want: classHash},
		{name: "php", ext: "php", want: classHash},
		{name: "javascript", ext: "js", want: classSlash},
		{name: "typescript", ext: "ts", want: classSlash},
		{name: "markdown", ext: "md", want: classMarkup},
		{name: "yaml short", ext: "yml", want: classMarkup},
		{name: "config", ext: "conf", want: classMarkup},
		{name: "java", ext: "java", want: classBlock},
		{name: "c header", ext: "h", want: classBlock},
		{name: "css", ext: "css", want: classBlock},
		{name: "compiled python", ext: "pyc", want: classSkip},
		{name: "database", ext: "db", want: classSkip},
		{name: "lock file", ext: "lock", want: classSkip},
		{name: "png image", ext: "png", want: classSkip},
		{name: "drawio diagram", ext: "drawio", want: classSkip},
		{name: "unmapped extension", ext: "unknownext", want: classUnknown},
		{name: "empty extension", ext: "", want: classUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.ext); got != tt.want {
				t.Errorf("classify(%q) = %d, want %d", tt.ext, got, tt.want)
			}
		})
	}
}

func TestWriteBanner(t *testing.T) {
	tests := []struct {
		name  string
		class bannerClass
		want  []string // exact lines
	}{
		{
			name:  "hash banner",
			class: classHash,
			want: []string{
				strings.Repeat("#", 78),
				"# File: src/app.py",
				strings.Repeat("#", 78),
			},
		},
		{
			name:  "slash banner",
			class: classSlash,
			want: []string{
				"// " + strings.Repeat("-", 70),
				"// File: src/app.py",
				"// " + strings.Repeat("-", 70),
			},
		},
		{
			name:  "markup banner",
			class: classMarkup,
			want: []string{
				"<!-- " + strings.Repeat("-", 70) + "-->",
				"<!-- File: src/app.py -->",
				"<!-- " + strings.Repeat("-", 70) + "-->",
			},
		},
		{
			name:  "block banner",
			class: classBlock,
			want: []string{
				"/* " + strings.Repeat("-", 70) + " */",
				"/* File: src/app.py */",
				"/* " + strings.Repeat("-", 70) + " */",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			if err := writeBanner(&sb, tt.class, "src/app.py"); err != nil {
				t.Fatalf("writeBanner() error = %v", err)
			}
			want := strings.Join(tt.want, "\n") + "\n"
			if sb.String() != want {
				t.Errorf("banner = %q, want %q", sb.String(), want)
			}
		})
	}
}

func TestWriteUnknownBanner(t *testing.T) {
	var sb strings.Builder
	if err := writeUnknownBanner(&sb, "data.unknownext"); err != nil {
		t.Fatalf("writeUnknownBanner() error = %v", err)
	}
	want := "File: data.unknownext\n" + strings.Repeat("-", 70) + "\n"
	if sb.String() != want {
		t.Errorf("banner = %q, want %q", sb.String(), want)
	}
}

package srcdump

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-srcdump/internal/fileutil"
)

// TokenCounter counts prompt tokens for dumped content. Implementations
// live outside the package so the renderer stays tokenizer-agnostic.
type TokenCounter interface {
	Count(text string) int
}

// Renderer writes one candidate file at a time to the sink, with a
// type-specific banner. Policy failures (non-text content, vanished
// files) become diagnostics; only sink write failures and unexpected
// I/O errors are returned, and the caller reports those per file.
type Renderer struct {
	// Sink receives banners and file content.
	Sink io.Writer

	// Diag receives per-file diagnostics. Nil discards them.
	Diag io.Writer

	// Counter optionally adds token counts to trailer diagnostics.
	Counter TokenCounter
}

// Render dumps a single candidate file to the sink.
//
// Files that are no longer regular files, hidden files, files under
// hidden directories, and extensions in the skip class produce no output
// at all. Unrecognized extensions get a minimal banner plus a diagnostic
// and are dumped anyway. Content that is not valid text leaves the
// banner in place, emits a diagnostic, and writes no content lines.
func (r *Renderer) Render(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil
	}

	if fileutil.HasHiddenComponent(path) {
		return nil
	}

	ext := fileutil.Extension(path)
	class := classify(ext)
	if class == classSkip {
		return nil
	}

	if class == classUnknown {
		r.diagf("Unknown file type %s\n", ext)
		if err := writeUnknownBanner(r.Sink, path); err != nil {
			return err
		}
	} else {
		if err := writeBanner(r.Sink, class, path); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(r.Sink, "\n"); err != nil {
		return err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- dumping user-named files is the tool's purpose
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if !utf8.Valid(content) {
		r.diagf("Error: Cannot read file %s as text. It may be binary or corrupted.\n", path)
		return nil
	}

	text := string(content)
	if _, err := io.WriteString(r.Sink, text); err != nil {
		return err
	}
	if _, err := io.WriteString(r.Sink, "\n\n\n"); err != nil {
		return err
	}

	r.diagf("%s\n", r.trailer(text, path))
	return nil
}

// trailer builds the per-file diagnostic line reporting content size.
func (r *Renderer) trailer(text, path string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d bytes", len(text))
	if r.Counter != nil {
		fmt.Fprintf(&b, ", %d tokens", r.Counter.Count(text))
	}
	fmt.Fprintf(&b, " - %s", path)
	return b.String()
}

func (r *Renderer) diagf(format string, args ...any) {
	if r.Diag != nil {
		fmt.Fprintf(r.Diag, format, args...)
	}
}

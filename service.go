package srcdump

import (
	"fmt"
	"io"

	"github.com/alnah/go-srcdump/internal/fileutil"
)

// serviceConfig holds resolved configuration for a Service.
type serviceConfig struct {
	suffixes     []string
	excludes     []string
	sinkPath     string
	useGitignore bool
}

// Option customizes a Service.
type Option func(*Service)

// WithSink sets the destination stream for banners and content.
func WithSink(w io.Writer) Option {
	return func(s *Service) { s.sink = w }
}

// WithDiagnostics sets the stream for warnings, errors, and trailers.
func WithDiagnostics(w io.Writer) Option {
	return func(s *Service) { s.diag = w }
}

// WithSuffixes filters directory scans to the given lowercased
// extensions (without dots). Explicitly named file roots bypass it.
func WithSuffixes(suffixes []string) Option {
	return func(s *Service) { s.cfg.suffixes = suffixes }
}

// WithExcludes drops the given files or directories (and anything nested
// under them) from collection. Entries may be relative; they are
// resolved before matching.
func WithExcludes(excludes []string) Option {
	return func(s *Service) { s.cfg.excludes = excludes }
}

// WithSinkPath names the file backing the sink so it is never collected,
// even when it sits inside a scanned directory.
func WithSinkPath(path string) Option {
	return func(s *Service) { s.cfg.sinkPath = path }
}

// WithGitignore enables .gitignore-aware directory scans.
func WithGitignore(enabled bool) Option {
	return func(s *Service) { s.cfg.useGitignore = enabled }
}

// WithTokenCounter adds token counts to trailer diagnostics.
func WithTokenCounter(tc TokenCounter) Option {
	return func(s *Service) { s.counter = tc }
}

// Service runs the collect-then-render pipeline against a single sink.
// The sink is owned by the caller; the service only writes to it.
type Service struct {
	cfg     serviceConfig
	sink    io.Writer
	diag    io.Writer
	counter TokenCounter
}

// New creates a Service. Without options it writes to nowhere; callers
// normally set at least WithSink.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dump collects candidates from roots and renders each to the sink in
// collection order. Per-file and per-root failures are diagnostics only;
// Dump returns an error only when the sink itself is unusable.
func (s *Service) Dump(roots []string) error {
	if s.sink == nil {
		return ErrNilSink
	}

	collector := &Collector{
		Suffixes:     s.cfg.suffixes,
		Excludes:     s.resolvedExcludes(),
		UseGitignore: s.cfg.useGitignore,
		Diag:         s.diag,
	}
	renderer := &Renderer{
		Sink:    s.sink,
		Diag:    s.diag,
		Counter: s.counter,
	}

	for _, path := range collector.Collect(roots) {
		if err := renderer.Render(path); err != nil {
			s.diagf("Error processing file %s: %v\n", path, err)
		}
	}
	return nil
}

// resolvedExcludes resolves user excludes and appends the sink path.
func (s *Service) resolvedExcludes() []string {
	resolved := make([]string, 0, len(s.cfg.excludes)+1)
	for _, entry := range s.cfg.excludes {
		resolved = append(resolved, fileutil.ResolvePath(entry))
	}
	if s.cfg.sinkPath != "" {
		resolved = append(resolved, fileutil.ResolvePath(s.cfg.sinkPath))
	}
	return resolved
}

func (s *Service) diagf(format string, args ...any) {
	if s.diag != nil {
		fmt.Fprintf(s.diag, format, args...)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-srcdump/internal/fileutil"
	"github.com/alnah/go-srcdump/internal/pipeline"
)

// Sentinel errors for browser operations.
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)

// PDF page dimensions in inches (US Letter format).
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11
	marginInches      = 0.5
)

// chromeEngine converts markdown in-process with goldmark and renders
// the PDF with headless Chrome. The browser is connected lazily on the
// first conversion and reused for the rest of the run.
type chromeEngine struct {
	conv     *pipeline.GoldmarkConverter
	browser  *rod.Browser
	timeout  time.Duration
	keepHTML bool
}

// newChromeEngine creates a chromeEngine with the given render timeout.
func newChromeEngine(timeout time.Duration, keepHTML bool) *chromeEngine {
	return &chromeEngine{
		conv:     pipeline.NewGoldmarkConverter(),
		timeout:  timeout,
		keepHTML: keepHTML,
	}
}

// Convert produces outputPath from inputPath without external tools.
func (e *chromeEngine) Convert(ctx context.Context, inputPath, outputPath string) error {
	content, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	htmlContent, err := e.conv.ToHTML(ctx, filepath.Base(inputPath), string(content))
	if err != nil {
		return err
	}

	if e.keepHTML {
		htmlPath := htmlOutputPath(outputPath)
		if err := os.WriteFile(htmlPath, []byte(htmlContent), 0o644); err != nil { // #nosec G306 -- rendered document, not a secret
			return fmt.Errorf("%w: %v", ErrWriteHTML, err)
		}
	}

	pdfBytes, err := e.renderPDF(ctx, htmlContent)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, pdfBytes, 0o644); err != nil { // #nosec G306 -- rendered document, not a secret
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return nil
}

// renderPDF writes htmlContent to a temp file and prints it to PDF.
func (e *chromeEngine) renderPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if err := e.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := e.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := e.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdfBytes, nil
}

// ensureBrowser lazily launches and connects to Chrome.
func (e *chromeEngine) ensureBrowser() error {
	if e.browser != nil {
		return nil
	}

	l := launcher.New()

	// Pre-installed browser for Docker/containerized environments.
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	// NoSandbox required for CI and containerized environments.
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	e.browser = browser
	return nil
}

// Close releases browser resources.
func (e *chromeEngine) Close() error {
	if e.browser != nil {
		err := e.browser.Close()
		e.browser = nil
		return err
	}
	return nil
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

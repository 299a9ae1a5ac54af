package srcdump

import (
	"fmt"
	"io"
	"strings"
)

// bannerClass identifies the comment style used for a file's banner.
type bannerClass int

const (
	classUnknown bannerClass = iota // no mapping; minimal banner + diagnostic
	classHash                       // # ...
	classSlash                      // // ...
	classMarkup                     // <!-- ... -->
	classBlock                      // /* ... */
	classSkip                       // no output at all
)

// Rule lengths match the original tool's fixed-width banners.
const (
	hashRuleWidth = 78
	ruleWidth     = 70
)

// bannerClasses maps a lowercased file extension (without dot) to its
// banner class. Extensions absent from the table are classUnknown.
var bannerClasses = map[string]bannerClass{
	// Hash comments.
	"py": classHash, "php": classHash,
	// Slash comments.
	"js": classSlash, "ts": classSlash,
	// Markup comments.
	"md": classMarkup, "html": classMarkup, "xml": classMarkup,
	"txt": classMarkup, "json": classMarkup, "yaml": classMarkup,
	"yml": classMarkup, "conf": classMarkup,
	// Block comments.
	"java": classBlock, "groovy": classBlock, "c": classBlock,
	"cpp": classBlock, "h": classBlock, "css": classBlock, "oss": classBlock,
	// Compiled or binary artifacts: no output.
	"pyc": classSkip, "db": classSkip,
	// Lock files, images, icons, diagrams: no output.
	"lock": classSkip, "png": classSkip, "jpg": classSkip, "jpeg": classSkip,
	"gif": classSkip, "svg": classSkip, "ico": classSkip, "drawio": classSkip,
}

// classify returns the banner class for a lowercased extension.
func classify(ext string) bannerClass {
	if class, ok := bannerClasses[ext]; ok {
		return class
	}
	return classUnknown
}

// writeBanner writes the three-line banner for path to w.
// classSkip and classUnknown are handled by the caller.
func writeBanner(w io.Writer, class bannerClass, path string) error {
	var top, mid, bottom string

	switch class {
	case classHash:
		rule := strings.Repeat("#", hashRuleWidth)
		top, mid, bottom = rule, fmt.Sprintf("# File: %s", path), rule
	case classSlash:
		rule := "// " + strings.Repeat("-", ruleWidth)
		top, mid, bottom = rule, fmt.Sprintf("// File: %s", path), rule
	case classMarkup:
		rule := "<!-- " + strings.Repeat("-", ruleWidth) + "-->"
		top, mid, bottom = rule, fmt.Sprintf("<!-- File: %s -->", path), rule
	case classBlock:
		rule := "/* " + strings.Repeat("-", ruleWidth) + " */"
		top, mid, bottom = rule, fmt.Sprintf("/* File: %s */", path), rule
	default:
		return fmt.Errorf("no banner for class %d", class)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", top, mid, bottom)
	return err
}

// writeUnknownBanner writes the minimal banner used for unrecognized
// extensions. The extension diagnostic goes to the diagnostic stream,
// handled by the renderer.
func writeUnknownBanner(w io.Writer, path string) error {
	_, err := fmt.Fprintf(w, "File: %s\n%s\n", path, strings.Repeat("-", ruleWidth))
	return err
}

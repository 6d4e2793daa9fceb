// ABOUTME: Markdown renderer wrapper around glamour for the help page
// ABOUTME: Caches rendered results keyed by content hash, width and style

package btea

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer wraps glamour to render markdown with caching.
type MarkdownRenderer struct {
	cache map[string]string // "hash:width:style" -> rendered
}

// NewMarkdownRenderer creates a MarkdownRenderer with an empty cache.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{
		cache: make(map[string]string),
	}
}

// glamourStyle picks the glamour standard style for a list theme name.
func glamourStyle(themeName string) string {
	switch themeName {
	case "light":
		return "light"
	case "monochrome":
		return "notty"
	default:
		return "dark"
	}
}

// Render returns the terminal-styled rendering of md in the glamour style
// matching themeName. Results are cached.
func (r *MarkdownRenderer) Render(md string, width int, themeName string) string {
	if md == "" {
		return ""
	}

	style := glamourStyle(themeName)
	key := cacheKey(md, width, style)
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}

	// Trim trailing whitespace that glamour adds
	rendered = strings.TrimRight(rendered, "\n ")

	r.cache[key] = rendered
	return rendered
}

// cacheKey produces a string key from content hash, width and style.
func cacheKey(content string, width int, style string) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d:%s", h[:8], width, style)
}

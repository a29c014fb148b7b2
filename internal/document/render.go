package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-mddoc/pkg/interfaces"
)

// GoldmarkRenderer implements interfaces.Renderer using the goldmark engine.
// Rendering is a presentation concern layered on top of the structural model;
// the line-oriented parser remains authoritative for sections and checklists.
// The renderer is stateless so callers can share one instance without locking.
type GoldmarkRenderer struct {
	defaults interfaces.ParseOptions
}

// NewGoldmarkRenderer constructs a renderer with the supplied default options.
// With no extensions named, GFM is enabled so task list items render as
// checkboxes matching the checklist model.
func NewGoldmarkRenderer(defaults interfaces.ParseOptions) *GoldmarkRenderer {
	return &GoldmarkRenderer{defaults: defaults}
}

// Render converts Markdown into HTML using the renderer's defaults.
func (r *GoldmarkRenderer) Render(markdown []byte) ([]byte, error) {
	return r.RenderWithOptions(markdown, r.defaults)
}

// RenderWithOptions converts Markdown into HTML using the provided options.
func (r *GoldmarkRenderer) RenderWithOptions(markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := engineFor(opts).Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return buf.Bytes(), nil
}

// engineFor translates ParseOptions into a configured goldmark.Markdown.
// Heading IDs are always generated so rendered output carries the same anchor
// targets the section model exposes.
func engineFor(opts interfaces.ParseOptions) goldmark.Markdown {
	var rendererOpts []renderer.Option
	if opts.HardWraps {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}
	// SafeMode and Sanitize both block raw HTML passthrough.
	if !opts.SafeMode && !opts.Sanitize {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	return goldmark.New(
		goldmark.WithExtensions(extensionsFor(opts.Extensions)...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOpts...),
	)
}

// extensionsFor maps the option names this package documents onto goldmark
// extenders. Unknown names are skipped rather than rejected, so option lists
// can be shared with engines that know more names.
func extensionsFor(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM}
	}

	var out []goldmark.Extender
	seen := map[string]bool{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || seen[key] {
			continue
		}
		var ext goldmark.Extender
		switch key {
		case "gfm":
			ext = extension.GFM
		case "table":
			ext = extension.Table
		case "strikethrough":
			ext = extension.Strikethrough
		case "linkify":
			ext = extension.Linkify
		case "tasklist":
			ext = extension.TaskList
		case "footnote":
			ext = extension.Footnote
		default:
			continue
		}
		seen[key] = true
		out = append(out, ext)
	}
	return out
}

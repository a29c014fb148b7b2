package interfaces

import "context"

// ParseOptions control optional HTML rendering behaviour. The structural
// document model is not affected by these flags.
type ParseOptions struct {
	// Extensions selects goldmark extensions by name (gfm, table, tasklist, ...).
	Extensions []string
	// Sanitize and SafeMode both suppress raw HTML passthrough in rendered output.
	Sanitize bool
	SafeMode bool
	// HardWraps renders single newlines as line breaks.
	HardWraps bool
}

// LoadOptions provide call-specific overrides for filesystem discovery.
type LoadOptions struct {
	// Pattern limits discovered files to those matching the glob (defaults to "*.md").
	Pattern string
	// Recursive overrides the service-level recursion setting when non-nil.
	Recursive *bool
	// Parser overrides rendering options for this call.
	Parser ParseOptions
}

// Renderer converts Markdown bytes into HTML.
type Renderer interface {
	Render(markdown []byte) ([]byte, error)
	RenderWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// DocumentService exposes filesystem-backed document parsing and rendering.
type DocumentService interface {
	// Parse converts Markdown text into a structured document. It never fails
	// on malformed Markdown; the only error source is a malformed frontmatter
	// block when the pre-pass is enabled.
	Parse(text string) (*Document, error)

	// Load reads and parses a single document relative to the configured base path.
	Load(ctx context.Context, path string, opts LoadOptions) (*Document, error)

	// LoadDirectory reads and parses every matching document within dir.
	LoadDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*Document, error)

	// Render converts Markdown bytes into HTML using the configured renderer.
	Render(ctx context.Context, markdown []byte, opts ParseOptions) ([]byte, error)

	// RenderDocument renders the document body and stores the result on BodyHTML.
	RenderDocument(ctx context.Context, doc *Document, opts ParseOptions) ([]byte, error)
}

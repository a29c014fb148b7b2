// Package mddoc converts Markdown text into a structured document model: an
// ordered sequence of typed sections plus two derived extractions, checklist
// items with completion state and nesting depth, and {{name}} template
// variable references. Parsing is best-effort structural extraction, not
// format validation: malformed Markdown degrades gracefully and never fails.
package mddoc

import (
	"github.com/goliatone/go-mddoc/internal/checklist"
	"github.com/goliatone/go-mddoc/internal/document"
	"github.com/goliatone/go-mddoc/internal/variables"
	"github.com/goliatone/go-mddoc/pkg/interfaces"
)

// Re-exported model types. The full contracts live in pkg/interfaces.
type (
	Document         = interfaces.Document
	Section          = interfaces.Section
	SectionKind      = interfaces.SectionKind
	Edge             = interfaces.Edge
	EdgeKind         = interfaces.EdgeKind
	ChecklistItem    = interfaces.ChecklistItem
	ChecklistSummary = interfaces.ChecklistSummary
	FrontMatter      = interfaces.FrontMatter
	ParseOptions     = interfaces.ParseOptions
	LoadOptions      = interfaces.LoadOptions
	DocumentService  = interfaces.DocumentService
	Renderer         = interfaces.Renderer
	Parser           = document.Parser
	Service          = document.Service
)

const (
	SectionHeading    = interfaces.SectionHeading
	SectionParagraph  = interfaces.SectionParagraph
	SectionList       = interfaces.SectionList
	SectionCode       = interfaces.SectionCode
	SectionBlockquote = interfaces.SectionBlockquote
	SectionRule       = interfaces.SectionRule

	EdgeFollows  = interfaces.EdgeFollows
	EdgeContains = interfaces.EdgeContains
)

// ErrEmptyInput is returned by ParseStrict for empty or whitespace-only input.
var ErrEmptyInput = document.ErrEmptyInput

// NewParser constructs a structural parser from the supplied configuration.
// Start from DefaultConfig for the stock settings (frontmatter pre-pass,
// deterministic section IDs, two-space indentation); the zero Config disables
// the frontmatter pre-pass and ID generation.
func NewParser(cfg Config) *Parser {
	return document.NewParser(cfg.parserConfig())
}

// Parse converts Markdown text into a structured document using the default
// configuration. It is total over all UTF-8 input; the only error source is a
// present but malformed YAML frontmatter block.
func Parse(text string) (*Document, error) {
	return NewParser(DefaultConfig()).Parse(text)
}

// ParseStrict behaves like Parse but rejects empty or whitespace-only input
// with ErrEmptyInput.
func ParseStrict(text string) (*Document, error) {
	return NewParser(DefaultConfig()).ParseStrict(text)
}

// ExtractChecklistItems returns the checklist trees found in text, usable
// without full document parsing.
func ExtractChecklistItems(text string) []*ChecklistItem {
	return NewParser(DefaultConfig()).ExtractChecklistItems(text)
}

// FlattenChecklist returns every item of the supplied trees depth-first.
func FlattenChecklist(items []*ChecklistItem) []*ChecklistItem {
	return checklist.Flatten(items)
}

// SummarizeChecklist aggregates completion state over the supplied trees,
// counting every item at every depth exactly once.
func SummarizeChecklist(items []*ChecklistItem) ChecklistSummary {
	return interfaces.SummarizeChecklist(items)
}

// ExtractVariables returns every {{name}} placeholder in source order,
// duplicates included.
func ExtractVariables(text string) []string {
	return variables.Extract(text)
}

// UniqueVariables returns the distinct placeholder names, sorted.
func UniqueVariables(text string) []string {
	return variables.Unique(text)
}

// HasVariables reports whether text references any template placeholder.
func HasVariables(text string) bool {
	return variables.Has(text)
}

// CountVariables returns the number of placeholder occurrences.
func CountVariables(text string) int {
	return variables.Count(text)
}

// NewService constructs a filesystem-backed document service from the
// supplied configuration. A nil renderer selects goldmark with the configured
// render options.
func NewService(cfg Config, renderer Renderer) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return document.NewService(cfg.serviceConfig(), renderer)
}

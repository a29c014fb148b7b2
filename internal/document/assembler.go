// Package document assembles the structured document model: it orchestrates
// the line classifier, section builder, checklist extractor, and variable
// scanner over one input string and produces a single Document value.
package document

import (
	"errors"
	"strings"

	slug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-mddoc/internal/checklist"
	"github.com/goliatone/go-mddoc/internal/classify"
	"github.com/goliatone/go-mddoc/internal/identity"
	"github.com/goliatone/go-mddoc/internal/sections"
	"github.com/goliatone/go-mddoc/internal/variables"
	"github.com/goliatone/go-mddoc/pkg/interfaces"
)

// ErrEmptyInput is returned by ParseStrict when the caller's contract treats
// empty input as invalid. Parse itself accepts empty input and produces an
// empty document.
var ErrEmptyInput = errors.New("mddoc: input is empty")

// ParserConfig tunes the structural extraction rules.
type ParserConfig struct {
	// IndentUnit is the indentation width mapping to one checklist nesting
	// level. Zero selects the default of two spaces.
	IndentUnit int
	// Markers overrides the recognised list marker characters ("-*+" default).
	Markers string
	// FrontMatter enables the YAML metadata pre-pass.
	FrontMatter bool
	// GenerateIDs controls whether sections receive deterministic identifiers.
	// Disabled in tests that compare section values directly.
	GenerateIDs bool
}

// Parser converts Markdown text into a structured document model. It is
// stateless and safe for concurrent use; every call performs one linear pass
// over the input plus a secondary pass for variable scanning.
type Parser struct {
	cfg        ParserConfig
	classifier *classify.Classifier
	builder    *sections.Builder
	checklists *checklist.Extractor
}

// NewParser constructs a parser from the supplied configuration.
func NewParser(cfg ParserConfig) *Parser {
	classifier := classify.New(cfg.Markers)
	return &Parser{
		cfg:        cfg,
		classifier: classifier,
		builder:    sections.New(classifier),
		checklists: checklist.New(classifier, cfg.IndentUnit),
	}
}

// Parse is total over all UTF-8 input: malformed Markdown degrades gracefully
// and never produces an error. The only failure source is a present but
// malformed YAML frontmatter block when the pre-pass is enabled.
func (p *Parser) Parse(text string) (*interfaces.Document, error) {
	doc := &interfaces.Document{Body: text}

	if p.cfg.FrontMatter {
		meta, body, err := StripFrontMatter([]byte(text))
		if err != nil {
			return nil, err
		}
		doc.FrontMatter = meta
		doc.Body = string(body)
	}

	built := p.builder.Build(splitLines(doc.Body))
	doc.Title = built.Title
	doc.Sections = built.Sections

	for i := range doc.Sections {
		section := &doc.Sections[i]
		section.OrderIdx = i
		section.Variables = variables.Dedupe(variables.Extract(section.Content))

		if section.Kind == interfaces.SectionHeading {
			section.Anchor = headingAnchor(section.Content)
		}
		if p.cfg.GenerateIDs {
			section.ID = identity.SectionUUID(i, section.Kind.String(), section.Content)
		}
	}

	// The document-level set scans the raw body, so placeholders outside any
	// section payload (a fence info line, for example) are still reported.
	doc.Variables = variables.Unique(doc.Body)
	doc.Edges = append(followEdges(len(doc.Sections)), containmentEdges(doc.Sections)...)
	doc.Checklist = p.checklists.Extract(doc.Body)

	return doc, nil
}

// ParseStrict behaves like Parse but rejects empty or whitespace-only input.
func (p *Parser) ParseStrict(text string) (*interfaces.Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	return p.Parse(text)
}

// ExtractChecklistItems is the standalone checklist entry point, usable
// without full document parsing.
func (p *Parser) ExtractChecklistItems(text string) []*interfaces.ChecklistItem {
	return p.checklists.Extract(text)
}

// followEdges links each section to its successor.
func followEdges(count int) []interfaces.Edge {
	if count < 2 {
		return nil
	}
	edges := make([]interfaces.Edge, 0, count-1)
	for i := 0; i < count-1; i++ {
		edges = append(edges, interfaces.Edge{
			SourceIdx: i,
			TargetIdx: i + 1,
			Kind:      interfaces.EdgeFollows,
		})
	}
	return edges
}

// containmentEdges links each heading to the sections it owns: every section
// up to the next heading of the same or a shallower level, including nested
// sub-headings. Sections before the first heading belong to nothing.
func containmentEdges(sections []interfaces.Section) []interfaces.Edge {
	var edges []interfaces.Edge
	// stack holds the indexes of the currently open headings, outermost first.
	var stack []int

	for i := range sections {
		if sections[i].Kind == interfaces.SectionHeading {
			for len(stack) > 0 && sections[stack[len(stack)-1]].Level >= sections[i].Level {
				stack = stack[:len(stack)-1]
			}
			if len(stack) > 0 {
				edges = append(edges, interfaces.Edge{
					SourceIdx: stack[len(stack)-1],
					TargetIdx: i,
					Kind:      interfaces.EdgeContains,
				})
			}
			stack = append(stack, i)
			continue
		}
		if len(stack) > 0 {
			edges = append(edges, interfaces.Edge{
				SourceIdx: stack[len(stack)-1],
				TargetIdx: i,
				Kind:      interfaces.EdgeContains,
			})
		}
	}
	return edges
}

// headingAnchor derives a link-target slug from heading text. Headings that
// normalise to nothing (punctuation only) carry no anchor.
func headingAnchor(text string) string {
	anchor, err := slug.Normalize(text)
	if err != nil {
		return ""
	}
	return anchor
}

// splitLines breaks the body into lines without trailing newlines, tolerating
// CRLF input. A trailing newline does not produce a phantom empty line.
func splitLines(body string) []string {
	if body == "" {
		return nil
	}
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.TrimSuffix(body, "\n")
	if body == "" {
		return nil
	}
	return strings.Split(body, "\n")
}

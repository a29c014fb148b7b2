package interfaces

import (
	"time"

	"github.com/google/uuid"
)

// SectionKind identifies the block type of a parsed section.
type SectionKind string

const (
	SectionHeading    SectionKind = "heading"
	SectionParagraph  SectionKind = "paragraph"
	SectionList       SectionKind = "list"
	SectionCode       SectionKind = "code"
	SectionBlockquote SectionKind = "blockquote"
	SectionRule       SectionKind = "hr"
)

// String returns the wire representation of the section kind.
func (k SectionKind) String() string { return string(k) }

// Section is a contiguous, typed block of a parsed document. Sections are
// produced in source order and never reordered.
type Section struct {
	// ID is a deterministic identifier derived from the section position and content.
	ID uuid.UUID `json:"id"`
	// Kind describes the block type (heading, paragraph, list, code, blockquote, hr).
	Kind SectionKind `json:"kind"`
	// Level carries the heading level (1-6) for heading sections, zero otherwise.
	Level int `json:"level,omitempty"`
	// Anchor is a slug derived from heading text, usable as a link target.
	Anchor string `json:"anchor,omitempty"`
	// Language holds the info tag of a fenced code block, when present.
	Language string `json:"language,omitempty"`
	// Content is the section body: heading text, paragraph text, raw list item
	// lines, verbatim code content, or blockquote text.
	Content string `json:"content"`
	// OrderIdx is the zero-based position of the section within the document.
	OrderIdx int `json:"order_idx"`
	// StartLine and EndLine record the 1-based source line range for diagnostics.
	StartLine int `json:"start_line,omitempty"`
	EndLine   int `json:"end_line,omitempty"`
	// Variables lists the template placeholder names referenced in Content,
	// in source order, duplicates removed.
	Variables []string `json:"variables,omitempty"`
}

// EdgeKind describes the relationship an edge encodes between two sections.
type EdgeKind string

const (
	// EdgeFollows links a section to the section that appears immediately after it.
	EdgeFollows EdgeKind = "follows"
	// EdgeContains links a section to a section nested within it.
	EdgeContains EdgeKind = "contains"
)

// Edge connects two sections by index.
type Edge struct {
	SourceIdx int      `json:"source_idx"`
	TargetIdx int      `json:"target_idx"`
	Kind      EdgeKind `json:"kind"`
}

// ChecklistItem is a list entry bearing a completion marker, organised into a
// nesting tree by indentation. A child is owned exclusively by its parent.
type ChecklistItem struct {
	// Text is the item content with the checkbox and any trailing acceptance
	// criteria annotation stripped.
	Text string `json:"text"`
	// Completed reports whether the marker was [x] or [X].
	Completed bool `json:"completed"`
	// Depth is the nesting level, zero for top-level items.
	Depth int `json:"depth"`
	// AcceptanceCriteria carries the raw value of a trailing (AC: ...) suffix.
	AcceptanceCriteria string `json:"acceptance_criteria,omitempty"`
	// ACRefs holds the individual comma-separated references from the annotation.
	ACRefs []string `json:"ac_refs,omitempty"`
	// Children are the items nested one level below this one.
	Children []*ChecklistItem `json:"children,omitempty"`
}

// Walk visits the item and every descendant depth-first.
func (c *ChecklistItem) Walk(fn func(*ChecklistItem)) {
	if c == nil {
		return
	}
	fn(c)
	for _, child := range c.Children {
		child.Walk(fn)
	}
}

// ChecklistSummary aggregates completion state over a checklist tree. It is
// always recomputed from the items and never persisted independently.
type ChecklistSummary struct {
	Total      int     `json:"total"`
	Completed  int     `json:"completed"`
	Pending    int     `json:"pending"`
	Percentage float64 `json:"percentage"`
}

// IsComplete reports whether every item is checked.
func (s ChecklistSummary) IsComplete() bool {
	return s.Total > 0 && s.Completed == s.Total
}

// IsEmpty reports whether there is no completed work.
func (s ChecklistSummary) IsEmpty() bool {
	return s.Total == 0 || s.Completed == 0
}

// SummarizeChecklist counts every node of the supplied trees, at every depth,
// exactly once. Percentage is zero when no items exist.
func SummarizeChecklist(items []*ChecklistItem) ChecklistSummary {
	var total, completed int
	for _, item := range items {
		item.Walk(func(node *ChecklistItem) {
			total++
			if node.Completed {
				completed++
			}
		})
	}

	summary := ChecklistSummary{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
	}
	if total > 0 {
		summary.Percentage = float64(completed) / float64(total) * 100
	}
	return summary
}

// FrontMatter captures the YAML metadata block stripped from the top of a
// Markdown source before parsing.
type FrontMatter struct {
	Title   string         `json:"title,omitempty"`
	Slug    string         `json:"slug,omitempty"`
	Summary string         `json:"summary,omitempty"`
	Tags    []string       `json:"tags,omitempty"`
	Author  string         `json:"author,omitempty"`
	Date    time.Time      `json:"date,omitempty"`
	Draft   bool           `json:"draft,omitempty"`
	// Custom holds keys outside the well-known set.
	Custom map[string]any `json:"custom,omitempty"`
	// Raw mirrors every frontmatter key, well-known or custom.
	Raw map[string]any `json:"raw,omitempty"`
	// Present reports whether a frontmatter block was found at all.
	Present bool `json:"present"`
}

// Document is the structured model produced by one parse call. It is owned
// exclusively by the caller and immutable by convention after construction.
type Document struct {
	// ID is a deterministic identifier derived from the source path, populated
	// by the loader for filesystem-backed documents.
	ID uuid.UUID `json:"id"`
	// Title is the text of the first level-1 heading, empty when absent.
	Title string `json:"title,omitempty"`
	// Sections holds the typed blocks in source order.
	Sections []Section `json:"sections"`
	// Variables is the distinct set of template placeholder names referenced
	// anywhere in the body, sorted for determinism.
	Variables []string `json:"variables,omitempty"`
	// Edges records follows relationships between adjacent sections and
	// contains relationships from headings to the sections they own.
	Edges []Edge `json:"edges,omitempty"`
	// Checklist is the tree of checkbox-marked list items.
	Checklist []*ChecklistItem `json:"checklist,omitempty"`
	// FrontMatter carries metadata stripped by the pre-pass, when enabled.
	FrontMatter FrontMatter `json:"front_matter,omitempty"`

	// FilePath, Checksum, and LastModified are populated by the loader for
	// filesystem-backed documents.
	FilePath     string    `json:"file_path,omitempty"`
	Checksum     []byte    `json:"checksum,omitempty"`
	LastModified time.Time `json:"last_modified,omitempty"`

	// Body is the Markdown source after the frontmatter pre-pass.
	Body string `json:"-"`
	// BodyHTML is filled lazily by RenderDocument.
	BodyHTML []byte `json:"-"`
}

// ChecklistSummary aggregates the document's checklist tree on demand.
func (d *Document) ChecklistSummary() ChecklistSummary {
	return SummarizeChecklist(d.Checklist)
}

// Section returns the section at idx, or nil when out of range.
func (d *Document) Section(idx int) *Section {
	if idx < 0 || idx >= len(d.Sections) {
		return nil
	}
	return &d.Sections[idx]
}

// SectionByID returns the section with the given identifier, or nil.
func (d *Document) SectionByID(id uuid.UUID) *Section {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return &d.Sections[i]
		}
	}
	return nil
}

// SectionsByKind returns every section of the requested kind, in source order.
func (d *Document) SectionsByKind(kind SectionKind) []*Section {
	var out []*Section
	for i := range d.Sections {
		if d.Sections[i].Kind == kind {
			out = append(out, &d.Sections[i])
		}
	}
	return out
}

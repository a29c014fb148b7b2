package document

import (
	"errors"
	"reflect"
	"testing"

	"github.com/goliatone/go-mddoc/pkg/interfaces"
)

func newTestParser() *Parser {
	return NewParser(ParserConfig{FrontMatter: true})
}

func TestParseTitleAndVariables(t *testing.T) {
	doc, err := newTestParser().Parse("# Title\n\nSome {{var}} text.\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if doc.Title != "Title" {
		t.Fatalf("title = %q", doc.Title)
	}
	if len(doc.Sections) != 2 {
		t.Fatalf("sections = %d", len(doc.Sections))
	}
	if !reflect.DeepEqual(doc.Variables, []string{"var"}) {
		t.Fatalf("variables = %v", doc.Variables)
	}
	if !reflect.DeepEqual(doc.Sections[1].Variables, []string{"var"}) {
		t.Fatalf("section variables = %v", doc.Sections[1].Variables)
	}
}

func TestParseDocumentVariablesSortedAndDeduped(t *testing.T) {
	doc, err := newTestParser().Parse("{{zeta}} text\n\n{{alpha}} and {{zeta}}\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(doc.Variables, []string{"alpha", "zeta"}) {
		t.Fatalf("variables = %v", doc.Variables)
	}
}

func TestParseChecklistSummary(t *testing.T) {
	input := "# Tasks\n\n- [x] setup repo (AC: 1)\n- [x] write parser (AC: 2, 3)\n- [ ] ship it\n"

	doc, err := newTestParser().Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	summary := doc.ChecklistSummary()
	if summary.Total != 3 || summary.Completed != 2 || summary.Pending != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	if summary.Percentage < 66.6 || summary.Percentage > 66.7 {
		t.Fatalf("percentage = %f", summary.Percentage)
	}
	if doc.Checklist[1].Text != "write parser" {
		t.Fatalf("annotation not stripped: %q", doc.Checklist[1].Text)
	}
	if !reflect.DeepEqual(doc.Checklist[1].ACRefs, []string{"2", "3"}) {
		t.Fatalf("refs = %v", doc.Checklist[1].ACRefs)
	}
}

func TestParseUnterminatedFence(t *testing.T) {
	doc, err := newTestParser().Parse("```rust\nfn main() {}\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("sections = %d", len(doc.Sections))
	}
	code := doc.Sections[0]
	if code.Kind != interfaces.SectionCode || code.Language != "rust" || code.Content != "fn main() {}" {
		t.Fatalf("section = %+v", code)
	}
}

func TestParseEmptyInput(t *testing.T) {
	doc, err := newTestParser().Parse("")
	if err != nil {
		t.Fatalf("Parse must accept empty input: %v", err)
	}
	if len(doc.Sections) != 0 || len(doc.Variables) != 0 || len(doc.Checklist) != 0 {
		t.Fatalf("empty input must yield empty document: %+v", doc)
	}

	if _, err := newTestParser().ParseStrict(""); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("ParseStrict error = %v, want ErrEmptyInput", err)
	}
	if _, err := newTestParser().ParseStrict("  \n\t\n"); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("ParseStrict must reject whitespace-only input, got %v", err)
	}
}

func TestParseFollowEdges(t *testing.T) {
	doc, err := newTestParser().Parse("# A\n\npara\n\n- item\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Sections) != 3 {
		t.Fatalf("sections = %d", len(doc.Sections))
	}

	follows := edgesOfKind(doc.Edges, interfaces.EdgeFollows)
	if len(follows) != 2 {
		t.Fatalf("follows edges = %d", len(follows))
	}
	for i, edge := range follows {
		if edge.SourceIdx != i || edge.TargetIdx != i+1 {
			t.Fatalf("edge[%d] = %+v", i, edge)
		}
	}
}

func TestParseContainmentEdges(t *testing.T) {
	input := "intro\n\n# One\n\nalpha\n\n## Sub\n\nbeta\n\n# Two\n\ngamma\n"
	// Sections: 0 intro, 1 h1 One, 2 alpha, 3 h2 Sub, 4 beta, 5 h1 Two, 6 gamma.

	doc, err := newTestParser().Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Sections) != 7 {
		t.Fatalf("sections = %d", len(doc.Sections))
	}

	contains := edgesOfKind(doc.Edges, interfaces.EdgeContains)
	want := []interfaces.Edge{
		{SourceIdx: 1, TargetIdx: 2, Kind: interfaces.EdgeContains},
		{SourceIdx: 1, TargetIdx: 3, Kind: interfaces.EdgeContains},
		{SourceIdx: 3, TargetIdx: 4, Kind: interfaces.EdgeContains},
		{SourceIdx: 5, TargetIdx: 6, Kind: interfaces.EdgeContains},
	}
	if !reflect.DeepEqual(contains, want) {
		t.Fatalf("contains edges = %+v, want %+v", contains, want)
	}
}

func TestParseVariablesFromRawBody(t *testing.T) {
	// The placeholder sits on the fence info line, outside any section payload.
	doc, err := newTestParser().Parse("```{{lang}}\ncode\n```\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(doc.Variables, []string{"lang"}) {
		t.Fatalf("variables = %v", doc.Variables)
	}
	if len(doc.Sections) != 1 || len(doc.Sections[0].Variables) != 0 {
		t.Fatalf("section variables should not include the info line: %+v", doc.Sections)
	}
}

func edgesOfKind(edges []interfaces.Edge, kind interfaces.EdgeKind) []interfaces.Edge {
	var out []interfaces.Edge
	for _, edge := range edges {
		if edge.Kind == kind {
			out = append(out, edge)
		}
	}
	return out
}

func TestParseOrderIdxAndAnchors(t *testing.T) {
	doc, err := newTestParser().Parse("# Getting Started\n\n## API Reference\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for i, section := range doc.Sections {
		if section.OrderIdx != i {
			t.Fatalf("section %d order = %d", i, section.OrderIdx)
		}
	}
	if doc.Sections[0].Anchor != "getting-started" {
		t.Fatalf("anchor = %q", doc.Sections[0].Anchor)
	}
	if doc.Sections[1].Anchor != "api-reference" {
		t.Fatalf("anchor = %q", doc.Sections[1].Anchor)
	}
}

func TestParseDeterministicSectionIDs(t *testing.T) {
	parser := NewParser(ParserConfig{GenerateIDs: true})

	first, err := parser.Parse("# Title\n\nbody\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	second, err := parser.Parse("# Title\n\nbody\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	for i := range first.Sections {
		if first.Sections[i].ID != second.Sections[i].ID {
			t.Fatalf("section %d id differs between runs", i)
		}
	}
	if first.Sections[0].ID == first.Sections[1].ID {
		t.Fatalf("distinct sections must not share an id")
	}
}

func TestParseFrontMatter(t *testing.T) {
	input := "---\ntitle: From Meta\ntags:\n  - go\n  - parser\nowner: platform\n---\n# Body Title\n"

	doc, err := newTestParser().Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !doc.FrontMatter.Present {
		t.Fatalf("frontmatter should be present")
	}
	if doc.FrontMatter.Title != "From Meta" {
		t.Fatalf("fm title = %q", doc.FrontMatter.Title)
	}
	if !reflect.DeepEqual(doc.FrontMatter.Tags, []string{"go", "parser"}) {
		t.Fatalf("tags = %v", doc.FrontMatter.Tags)
	}
	if doc.FrontMatter.Custom["owner"] != "platform" {
		t.Fatalf("custom = %v", doc.FrontMatter.Custom)
	}
	// The structural title still comes from the body heading.
	if doc.Title != "Body Title" {
		t.Fatalf("doc title = %q", doc.Title)
	}
}

func TestParseFrontMatterDisabled(t *testing.T) {
	parser := NewParser(ParserConfig{})

	doc, err := parser.Parse("---\ntitle: Meta\n---\nbody\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.FrontMatter.Present {
		t.Fatalf("frontmatter pre-pass must be off")
	}
	// The delimiters read as horizontal rules when not stripped.
	if doc.Sections[0].Kind != interfaces.SectionRule {
		t.Fatalf("first section = %+v", doc.Sections[0])
	}
}

func TestParseCRLFInput(t *testing.T) {
	doc, err := newTestParser().Parse("# Title\r\n\r\nbody\r\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Title != "Title" || len(doc.Sections) != 2 {
		t.Fatalf("doc = %+v", doc)
	}
	if doc.Sections[1].Content != "body" {
		t.Fatalf("content = %q", doc.Sections[1].Content)
	}
}

func TestParseBodyPreserved(t *testing.T) {
	input := "---\ndraft: true\n---\n# Title\n"

	doc, err := newTestParser().Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Body != "# Title\n" {
		t.Fatalf("body = %q", doc.Body)
	}
}

package checklist

import (
	"testing"

	"github.com/goliatone/go-mddoc/internal/classify"
	"github.com/goliatone/go-mddoc/pkg/interfaces"
)

func TestExtractFlatItems(t *testing.T) {
	content := "- [ ] first\n- [x] second\n- [ ] third\n"

	roots := New(nil, 0).Extract(content)
	if len(roots) != 3 {
		t.Fatalf("expected 3 roots, got %d", len(roots))
	}
	if roots[0].Text != "first" || roots[0].Completed {
		t.Fatalf("roots[0] = %+v", roots[0])
	}
	if roots[1].Text != "second" || !roots[1].Completed {
		t.Fatalf("roots[1] = %+v", roots[1])
	}
}

func TestExtractIgnoresPlainListItems(t *testing.T) {
	content := "- just a bullet\n- [ ] a task\n- another bullet\n"

	roots := New(nil, 0).Extract(content)
	if len(roots) != 1 || roots[0].Text != "a task" {
		t.Fatalf("roots = %+v", roots)
	}
}

func TestExtractNesting(t *testing.T) {
	content := "- [ ] parent\n  - [x] child\n    - [ ] grandchild\n- [ ] sibling\n"

	roots := New(nil, 0).Extract(content)
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	parent := roots[0]
	if len(parent.Children) != 1 {
		t.Fatalf("parent children = %d", len(parent.Children))
	}
	child := parent.Children[0]
	if child.Text != "child" || child.Depth != 1 || !child.Completed {
		t.Fatalf("child = %+v", child)
	}
	if len(child.Children) != 1 || child.Children[0].Text != "grandchild" || child.Children[0].Depth != 2 {
		t.Fatalf("grandchild = %+v", child.Children)
	}
	if roots[1].Text != "sibling" || roots[1].Depth != 0 {
		t.Fatalf("sibling = %+v", roots[1])
	}
}

func TestExtractSiblingReplacesAncestor(t *testing.T) {
	content := "- [ ] a\n  - [ ] a1\n  - [ ] a2\n    - [ ] a2i\n"

	roots := New(nil, 0).Extract(content)
	a := roots[0]
	if len(a.Children) != 2 {
		t.Fatalf("a children = %d", len(a.Children))
	}
	// a2i must attach under a2, not a1.
	if len(a.Children[0].Children) != 0 {
		t.Fatalf("a1 children = %+v", a.Children[0].Children)
	}
	if len(a.Children[1].Children) != 1 || a.Children[1].Children[0].Text != "a2i" {
		t.Fatalf("a2 children = %+v", a.Children[1].Children)
	}
}

func TestExtractClampsOverIndentation(t *testing.T) {
	// A jump from depth 0 straight to depth 2 is clamped to depth 1.
	content := "- [ ] root\n        - [ ] deep\n"

	roots := New(nil, 0).Extract(content)
	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	if len(roots[0].Children) != 1 {
		t.Fatalf("root children = %+v", roots[0].Children)
	}
	if got := roots[0].Children[0]; got.Text != "deep" || got.Depth != 1 {
		t.Fatalf("deep = %+v", got)
	}
}

func TestExtractOrphanIndentBecomesRoot(t *testing.T) {
	// An indented item with no preceding root attaches at depth zero.
	content := "    - [ ] orphan\n"

	roots := New(nil, 0).Extract(content)
	if len(roots) != 1 || roots[0].Depth != 0 || roots[0].Text != "orphan" {
		t.Fatalf("roots = %+v", roots)
	}
}

func TestExtractCustomIndentUnit(t *testing.T) {
	content := "- [ ] parent\n    - [ ] child\n"

	roots := New(nil, 4).Extract(content)
	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	if len(roots[0].Children) != 1 || roots[0].Children[0].Depth != 1 {
		t.Fatalf("children = %+v", roots[0].Children)
	}
}

func TestExtractAcceptanceCriteria(t *testing.T) {
	content := "- [x] implement login (AC: 1, 2)\n- [ ] write docs (ac: N/A)\n- [ ] plain task\n"

	roots := New(nil, 0).Extract(content)
	if len(roots) != 3 {
		t.Fatalf("expected 3 items, got %d", len(roots))
	}

	first := roots[0]
	if first.Text != "implement login" {
		t.Fatalf("annotation not stripped: %q", first.Text)
	}
	if first.AcceptanceCriteria != "1, 2" {
		t.Fatalf("value = %q", first.AcceptanceCriteria)
	}
	if len(first.ACRefs) != 2 || first.ACRefs[0] != "1" || first.ACRefs[1] != "2" {
		t.Fatalf("refs = %v", first.ACRefs)
	}

	second := roots[1]
	if second.Text != "write docs" || second.AcceptanceCriteria != "N/A" {
		t.Fatalf("second = %+v", second)
	}
	if len(second.ACRefs) != 1 || second.ACRefs[0] != "N/A" {
		t.Fatalf("second refs = %v", second.ACRefs)
	}

	third := roots[2]
	if third.AcceptanceCriteria != "" || third.ACRefs != nil {
		t.Fatalf("third = %+v", third)
	}
}

func TestExtractAnnotationMustBeTrailing(t *testing.T) {
	content := "- [ ] fix (AC: 3) the bug\n"

	roots := New(nil, 0).Extract(content)
	if roots[0].Text != "fix (AC: 3) the bug" || roots[0].AcceptanceCriteria != "" {
		t.Fatalf("mid-text annotation must stay, got %+v", roots[0])
	}
}

func TestExtractCustomMarkers(t *testing.T) {
	content := "* [ ] star task\n+ [x] plus task\n"

	roots := New(classify.New("*+"), 0).Extract(content)
	if len(roots) != 2 {
		t.Fatalf("expected 2 items, got %d", len(roots))
	}
	if !roots[1].Completed {
		t.Fatalf("plus task should be completed")
	}
}

func TestFlatten(t *testing.T) {
	content := "- [ ] a\n  - [x] a1\n- [ ] b\n"

	flat := Flatten(New(nil, 0).Extract(content))
	if len(flat) != 3 {
		t.Fatalf("expected 3 flattened items, got %d", len(flat))
	}
	order := []string{flat[0].Text, flat[1].Text, flat[2].Text}
	if order[0] != "a" || order[1] != "a1" || order[2] != "b" {
		t.Fatalf("order = %v", order)
	}
}

func TestSummarize(t *testing.T) {
	content := "- [x] done\n  - [x] also done\n- [ ] pending\n"

	roots := New(nil, 0).Extract(content)
	summary := interfaces.SummarizeChecklist(roots)
	if summary.Total != 3 || summary.Completed != 2 || summary.Pending != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	if summary.Percentage < 66.6 || summary.Percentage > 66.7 {
		t.Fatalf("percentage = %f", summary.Percentage)
	}
	if summary.IsComplete() || summary.IsEmpty() {
		t.Fatalf("flags wrong: %+v", summary)
	}
}

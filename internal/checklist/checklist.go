// Package checklist extracts checkbox-marked list items from Markdown content
// and arranges them into a nesting tree by indentation.
package checklist

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-mddoc/internal/classify"
	"github.com/goliatone/go-mddoc/pkg/interfaces"
)

// DefaultIndentUnit is the indentation width that maps to one nesting level.
const DefaultIndentUnit = 2

// acRe matches a trailing acceptance criteria annotation such as
// "(AC: 1, 2, 3)" or "(ac: N/A)" at the end of the item text.
var acRe = regexp.MustCompile(`(?i)\(AC:\s*([^)]*)\)\s*$`)

// Extractor walks list item lines and builds checklist trees. Plain list
// items without a completion marker are ignored.
type Extractor struct {
	classifier *classify.Classifier
	indentUnit int
}

// New constructs an extractor. indentUnit <= 0 selects the default of two
// spaces per nesting level; a nil classifier selects the default list markers.
func New(classifier *classify.Classifier, indentUnit int) *Extractor {
	if classifier == nil {
		classifier = classify.New("")
	}
	if indentUnit <= 0 {
		indentUnit = DefaultIndentUnit
	}
	return &Extractor{classifier: classifier, indentUnit: indentUnit}
}

// Extract returns the checklist trees found in content. Depth is computed as
// indent width divided by the indent unit. An item attaches as a child of the
// most recently seen item whose depth is exactly one less; malformed
// over-indentation is clamped to one level below the preceding item, and an
// item with no eligible ancestor attaches at depth zero. Extraction never
// fails.
func (e *Extractor) Extract(content string) []*interfaces.ChecklistItem {
	var roots []*interfaces.ChecklistItem
	// stack[d] is the most recent item at depth d, the current ancestor chain.
	var stack []*interfaces.ChecklistItem

	for _, raw := range strings.Split(content, "\n") {
		line := e.classifier.Classify(raw)
		if line.Kind != classify.ListItem || !line.Checklist {
			continue
		}

		depth := line.Indent / e.indentUnit
		if len(stack) == 0 {
			depth = 0
		} else if prev := len(stack) - 1; depth > prev+1 {
			depth = prev + 1
		}

		item := &interfaces.ChecklistItem{
			Completed: line.Completed,
			Depth:     depth,
		}
		item.Text, item.AcceptanceCriteria, item.ACRefs = splitAnnotation(line.Text)

		if depth == 0 {
			roots = append(roots, item)
			stack = append(stack[:0], item)
			continue
		}
		parent := stack[depth-1]
		parent.Children = append(parent.Children, item)
		stack = append(stack[:depth], item)
	}

	return roots
}

// Flatten returns every item of the supplied trees in depth-first order.
func Flatten(items []*interfaces.ChecklistItem) []*interfaces.ChecklistItem {
	var out []*interfaces.ChecklistItem
	for _, item := range items {
		item.Walk(func(node *interfaces.ChecklistItem) {
			out = append(out, node)
		})
	}
	return out
}

// splitAnnotation strips a trailing (AC: ...) suffix from the item text,
// returning the cleaned text, the raw annotation value, and the individual
// comma-separated references. Values such as "N/A" are kept verbatim.
func splitAnnotation(text string) (string, string, []string) {
	text = strings.TrimSpace(text)
	match := acRe.FindStringSubmatchIndex(text)
	if match == nil {
		return text, "", nil
	}

	value := strings.TrimSpace(text[match[2]:match[3]])
	cleaned := strings.TrimSpace(text[:match[0]])

	var refs []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			refs = append(refs, part)
		}
	}
	return cleaned, value, refs
}

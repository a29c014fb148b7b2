// Package sections folds classified lines into ordered section records. The
// builder is an explicit state machine driven solely by the next line's
// classification plus the current fence state.
package sections

import (
	"strings"

	"github.com/goliatone/go-mddoc/internal/classify"
	"github.com/goliatone/go-mddoc/pkg/interfaces"
)

type state int

const (
	stateNone state = iota
	stateParagraph
	stateList
	stateCode
	stateBlockquote
)

// Result carries the ordered sections plus the document title, which equals
// the text of the first level-1 heading encountered (empty when none exists).
type Result struct {
	Sections []interfaces.Section
	Title    string
}

// Builder accumulates contiguous lines of matching kind into sections.
type Builder struct {
	classifier *classify.Classifier
}

// New constructs a builder using the supplied classifier. A nil classifier
// selects the default list markers.
func New(classifier *classify.Classifier) *Builder {
	if classifier == nil {
		classifier = classify.New("")
	}
	return &Builder{classifier: classifier}
}

// Build consumes the raw lines of a document in order and produces the
// ordered section list. Lines inside an open fence bypass classification and
// are appended verbatim as code content; an unterminated fence still yields a
// Code section holding the remaining lines.
func (b *Builder) Build(lines []string) Result {
	var result Result

	current := stateNone
	var buf []string
	var startLine int
	var fenceChar byte
	var fenceLen int
	var language string

	flush := func(endLine int) {
		if current == stateNone {
			return
		}
		section := interfaces.Section{
			StartLine: startLine,
			EndLine:   endLine,
		}
		switch current {
		case stateParagraph:
			section.Kind = interfaces.SectionParagraph
			section.Content = strings.TrimSpace(strings.Join(buf, "\n"))
		case stateList:
			section.Kind = interfaces.SectionList
			section.Content = strings.Join(buf, "\n")
		case stateCode:
			section.Kind = interfaces.SectionCode
			section.Content = strings.Join(buf, "\n")
			section.Language = language
		case stateBlockquote:
			section.Kind = interfaces.SectionBlockquote
			section.Content = strings.Join(buf, "\n")
		}
		if section.Content != "" || current == stateCode {
			result.Sections = append(result.Sections, section)
		}
		current = stateNone
		buf = buf[:0]
		language = ""
	}

	for i, raw := range lines {
		lineNo := i + 1

		if current == stateCode {
			// Classification is bypassed while a fence is open, except to
			// detect the matching closing delimiter.
			line := b.classifier.Classify(raw)
			if line.Kind == classify.FenceDelimiter && line.FenceChar == fenceChar && line.FenceLen >= fenceLen {
				flush(lineNo)
				continue
			}
			buf = append(buf, raw)
			continue
		}

		line := b.classifier.Classify(raw)

		switch line.Kind {
		case classify.Blank:
			// Blanks terminate the accumulating section; they never start one.
			flush(lineNo - 1)

		case classify.Heading:
			flush(lineNo - 1)
			if line.Level == 1 && result.Title == "" {
				result.Title = line.Text
			}
			result.Sections = append(result.Sections, interfaces.Section{
				Kind:      interfaces.SectionHeading,
				Level:     line.Level,
				Content:   line.Text,
				StartLine: lineNo,
				EndLine:   lineNo,
			})

		case classify.FenceDelimiter:
			flush(lineNo - 1)
			current = stateCode
			startLine = lineNo
			fenceChar = line.FenceChar
			fenceLen = line.FenceLen
			language = line.Language

		case classify.Rule:
			flush(lineNo - 1)
			result.Sections = append(result.Sections, interfaces.Section{
				Kind:      interfaces.SectionRule,
				Content:   strings.TrimSpace(raw),
				StartLine: lineNo,
				EndLine:   lineNo,
			})

		case classify.ListItem:
			if current != stateList {
				flush(lineNo - 1)
				current = stateList
				startLine = lineNo
			}
			// Raw item lines are kept so the checklist extractor can
			// reprocess indentation and completion markers.
			buf = append(buf, raw)

		case classify.Blockquote:
			if current != stateBlockquote {
				flush(lineNo - 1)
				current = stateBlockquote
				startLine = lineNo
			}
			buf = append(buf, line.Text)

		default: // classify.Text
			if current != stateParagraph {
				flush(lineNo - 1)
				current = stateParagraph
				startLine = lineNo
			}
			buf = append(buf, raw)
		}
	}

	// End of input truncates any open section, fences included.
	flush(len(lines))

	return result
}

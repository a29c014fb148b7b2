// Package classify inspects individual Markdown lines and reports their
// syntactic kind plus extracted payload. Classification is pure and stateless;
// fence open/close state belongs to the caller, since a line's meaning as code
// content versus delimiter depends on whether a fence is currently open.
package classify

import "strings"

// Kind enumerates the line classifications the section builder folds over.
type Kind int

const (
	Blank Kind = iota
	Heading
	ListItem
	FenceDelimiter
	Blockquote
	Rule
	Text
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Heading:
		return "heading"
	case ListItem:
		return "list_item"
	case FenceDelimiter:
		return "fence"
	case Blockquote:
		return "blockquote"
	case Rule:
		return "hr"
	default:
		return "text"
	}
}

// DefaultMarkers are the list markers recognised by the classifier.
const DefaultMarkers = "-*+"

// Line is the classification result for a single input line (no trailing newline).
type Line struct {
	Kind Kind
	// Raw is the line exactly as received.
	Raw string
	// Text carries the payload: heading text, list item text (checkbox
	// stripped), or blockquote remainder.
	Text string
	// Level is the heading level (1-6) for heading lines.
	Level int
	// Indent is the leading whitespace width of a list item, in characters.
	Indent int
	// Marker is the list marker character ('-', '*', or '+').
	Marker byte
	// Checklist reports whether the item carries a [ ]/[x] completion marker.
	Checklist bool
	// Completed is meaningful only when Checklist is true.
	Completed bool
	// FenceChar is '`' or '~' for fence delimiter lines; FenceLen the run length.
	FenceChar byte
	FenceLen  int
	// Language is the info tag following an opening fence, trimmed.
	Language string
}

// Classifier applies the line grammar with configurable list markers.
type Classifier struct {
	markers string
}

// New returns a classifier recognising the supplied list markers. An empty
// string selects the defaults ("-", "*", "+").
func New(markers string) *Classifier {
	if markers == "" {
		markers = DefaultMarkers
	}
	return &Classifier{markers: markers}
}

// Classify returns exactly one classification for the given line. List items
// are recognised before horizontal rules, so a line such as "* * *" remains a
// list item; only marker runs that do not parse as a list ("---", "***",
// "_ _ _") become rules.
func (c *Classifier) Classify(raw string) Line {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Line{Kind: Blank, Raw: raw}
	}

	if line, ok := c.heading(raw, trimmed); ok {
		return line
	}
	if line, ok := c.fence(raw, trimmed); ok {
		return line
	}
	if strings.HasPrefix(trimmed, ">") {
		text := strings.TrimPrefix(trimmed, ">")
		text = strings.TrimPrefix(text, " ")
		return Line{Kind: Blockquote, Raw: raw, Text: text}
	}
	if line, ok := c.listItem(raw); ok {
		return line
	}
	if isRule(trimmed) {
		return Line{Kind: Rule, Raw: raw}
	}

	return Line{Kind: Text, Raw: raw, Text: raw}
}

func (c *Classifier) heading(raw, trimmed string) (Line, bool) {
	if !strings.HasPrefix(trimmed, "#") {
		return Line{}, false
	}
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level > 6 || level >= len(trimmed) || trimmed[level] != ' ' {
		return Line{}, false
	}
	return Line{
		Kind:  Heading,
		Raw:   raw,
		Level: level,
		Text:  strings.TrimSpace(trimmed[level+1:]),
	}, true
}

func (c *Classifier) fence(raw, trimmed string) (Line, bool) {
	char := trimmed[0]
	if char != '`' && char != '~' {
		return Line{}, false
	}
	run := 0
	for run < len(trimmed) && trimmed[run] == char {
		run++
	}
	if run < 3 {
		return Line{}, false
	}
	return Line{
		Kind:      FenceDelimiter,
		Raw:       raw,
		FenceChar: char,
		FenceLen:  run,
		Language:  strings.TrimSpace(trimmed[run:]),
	}, true
}

func (c *Classifier) listItem(raw string) (Line, bool) {
	indent := 0
	for indent < len(raw) && (raw[indent] == ' ' || raw[indent] == '\t') {
		indent++
	}
	rest := raw[indent:]
	if len(rest) < 2 || !strings.ContainsRune(c.markers, rune(rest[0])) || rest[1] != ' ' {
		return Line{}, false
	}

	line := Line{
		Kind:   ListItem,
		Raw:    raw,
		Indent: indent,
		Marker: rest[0],
		Text:   rest[2:],
	}

	// Optional checklist marker: "[ ] ", "[x] ", "[X] ".
	if len(line.Text) >= 4 && line.Text[0] == '[' && line.Text[2] == ']' && line.Text[3] == ' ' {
		switch line.Text[1] {
		case ' ':
			line.Checklist = true
		case 'x', 'X':
			line.Checklist = true
			line.Completed = true
		}
		if line.Checklist {
			line.Text = line.Text[4:]
		}
	}
	return line, true
}

// isRule reports whether the trimmed line consists solely of three or more
// repetitions of '-', '*', or '_', with whitespace between runs allowed.
func isRule(trimmed string) bool {
	var char byte
	count := 0
	for i := 0; i < len(trimmed); i++ {
		ch := trimmed[i]
		if ch == ' ' || ch == '\t' {
			continue
		}
		if ch != '-' && ch != '*' && ch != '_' {
			return false
		}
		if char == 0 {
			char = ch
		} else if ch != char {
			return false
		}
		count++
	}
	return count >= 3
}

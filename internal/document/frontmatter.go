package document

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-mddoc/pkg/interfaces"
)

// StripFrontMatter extracts the YAML metadata block from the top of the
// source and returns the structured frontmatter plus the remaining body. A
// source without a delimited block, including one whose opening delimiter is
// never closed, is returned unchanged with an absent frontmatter. Only a
// present but malformed YAML block produces an error.
func StripFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	if !hasFrontMatterBlock(source) {
		return interfaces.FrontMatter{}, source, nil
	}

	var meta frontMatterEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	if len(body) == len(source) {
		// The library consumed nothing; whatever looked like a block is body.
		return interfaces.FrontMatter{}, source, nil
	}

	return envelopeToFrontMatter(meta), body, nil
}

// hasFrontMatterBlock reports whether the source opens with a --- delimited
// block that is closed by a --- on its own line. An unterminated block, or a
// pseudo-close such as "---x", is body text.
func hasFrontMatterBlock(source []byte) bool {
	text := strings.TrimLeft(string(source), "\r\n")
	lines := strings.Split(text, "\n")
	if len(lines) < 2 || strings.TrimRight(lines[0], "\r") != "---" {
		return false
	}
	for _, line := range lines[1:] {
		if strings.TrimRight(line, "\r") == "---" {
			return true
		}
	}
	return false
}

type frontMatterEnvelope struct {
	Title   string         `yaml:"title"`
	Slug    string         `yaml:"slug"`
	Summary string         `yaml:"summary"`
	Tags    []string       `yaml:"tags"`
	Author  string         `yaml:"author"`
	Date    time.Time      `yaml:"date"`
	Draft   bool           `yaml:"draft"`
	Custom  map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	if env.Custom == nil {
		env.Custom = map[string]any{}
	}

	raw := make(map[string]any, len(env.Custom)+7)
	for key, value := range env.Custom {
		raw[key] = value
	}

	if env.Title != "" {
		raw["title"] = env.Title
	}
	if env.Slug != "" {
		raw["slug"] = env.Slug
	}
	if env.Summary != "" {
		raw["summary"] = env.Summary
	}
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}
	if env.Author != "" {
		raw["author"] = env.Author
	}
	if !env.Date.IsZero() {
		raw["date"] = env.Date
	}
	raw["draft"] = env.Draft

	return interfaces.FrontMatter{
		Title:   env.Title,
		Slug:    env.Slug,
		Summary: env.Summary,
		Tags:    append([]string(nil), env.Tags...),
		Author:  env.Author,
		Date:    env.Date,
		Draft:   env.Draft,
		Custom:  cloneMap(env.Custom),
		Raw:     raw,
		Present: true,
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}

// Package variables locates {{identifier}} template placeholders in raw text.
package variables

import (
	"regexp"
	"sort"
)

// placeholderRe matches {{name}} with optional internal whitespace around the
// identifier. Identifiers are letters, digits, and underscores; malformed
// placeholders (unbalanced braces, empty names, embedded whitespace) simply
// fail to match and are skipped.
var placeholderRe = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// Extract returns every placeholder name in source order, duplicates included.
func Extract(content string) []string {
	var names []string
	for _, match := range placeholderRe.FindAllStringSubmatch(content, -1) {
		names = append(names, match[1])
	}
	return names
}

// Unique returns the distinct placeholder names, sorted for determinism.
func Unique(content string) []string {
	seen := map[string]struct{}{}
	var names []string
	for _, name := range Extract(content) {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dedupe keeps the first occurrence of each name, preserving input order.
func Dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	var out []string
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Has reports whether content references any template placeholder.
func Has(content string) bool {
	return placeholderRe.MatchString(content)
}

// Count returns the number of placeholder occurrences, duplicates included.
func Count(content string) int {
	return len(placeholderRe.FindAllStringIndex(content, -1))
}

package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Search returns every line of contents that contains query, in file order.
// An empty query matches every line.
func Search(query, contents string) []string {
	var results []string
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchCaseInsensitive behaves like Search but lowers both the query and each
// candidate line before the containment test. The returned lines keep their
// original casing.
func SearchCaseInsensitive(query, contents string) []string {
	// Casers carry state and are not safe for concurrent use.
	lower := cases.Lower(language.Und)
	query = lower.String(query)

	var results []string
	for _, line := range Lines(contents) {
		if strings.Contains(lower.String(line), query) {
			results = append(results, line)
		}
	}
	return results
}

// Lines splits contents on "\n", dropping a "\r" that directly precedes it.
// A terminating newline does not produce an extra empty line.
func Lines(contents string) []string {
	if contents == "" {
		return nil
	}

	lines := make([]string, 0, strings.Count(contents, "\n")+1)
	for len(contents) > 0 {
		idx := strings.IndexByte(contents, '\n')
		if idx < 0 {
			lines = append(lines, contents)
			break
		}
		lines = append(lines, strings.TrimSuffix(contents[:idx], "\r"))
		contents = contents[idx+1:]
	}
	return lines
}

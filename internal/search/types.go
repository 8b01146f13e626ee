package search

// Func describes a line matcher over an in-memory content blob.
// The returned lines are substrings of contents; no text is copied.
type Func func(query, contents string) []string

// For returns the matcher for the requested case sensitivity.
func For(caseSensitive bool) Func {
	if caseSensitive {
		return Search
	}
	return SearchCaseInsensitive
}

// Package search implements the line matching used by minigrep. Both matchers
// are pure functions over an immutable content blob and return substrings of
// that blob in their original order.
package search

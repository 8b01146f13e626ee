// Package output renders search results to a writer, optionally highlighting
// the matched text.
package output

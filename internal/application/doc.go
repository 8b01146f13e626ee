// Package application provides application initialization and dependency wiring.
// It combines the resolved configuration with storage, the search engine and
// the output printer, keeping the main package focused on CLI parsing and
// exit codes.
package application

// Package storage loads the content blob that minigrep searches. FileStorage
// reads from disk; MemoryStorage serves tests and embedding callers.
package storage

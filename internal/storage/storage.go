package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"unicode/utf8"
)

var (
	// ErrInvalidEncoding indicates the loaded content is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")
)

// Storage provides the content blob searched by the application.
type Storage interface {
	Load(path string) (string, error)
}

// FileStorage reads content from the local filesystem.
type FileStorage struct{}

// NewFileStorage returns a Storage backed by the local filesystem.
func NewFileStorage() *FileStorage {
	return &FileStorage{}
}

// Load reads the whole file at path and validates it as UTF-8 text.
func (s *FileStorage) Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	return string(data), nil
}

// MemoryStorage keeps named contents in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu    sync.RWMutex
	files map[string]string
}

// NewMemoryStorage initialises an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		files: make(map[string]string),
	}
}

// Put stores contents under path, replacing any previous value.
func (s *MemoryStorage) Put(path, contents string) error {
	if !utf8.ValidString(contents) {
		return ErrInvalidEncoding
	}

	s.mu.Lock()
	s.files[path] = contents
	s.mu.Unlock()

	return nil
}

// Load returns the contents stored under path.
func (s *MemoryStorage) Load(path string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contents, ok := s.files[path]
	if !ok {
		return "", &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return contents, nil
}

// String implements fmt.Stringer for debugging output.
func (s *MemoryStorage) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fmt.Sprintf("MemoryStorage(%d files)", len(s.files))
}

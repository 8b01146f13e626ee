package application

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrIO is matched by every IOError.
var ErrIO = errors.New("i/o error")

// IOError reports a failure reading the target file or writing results.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) {
		return pathErr.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrIO in addition to the wrapped cause.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

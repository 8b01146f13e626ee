package config

import (
	"errors"
	"fmt"
)

// ErrMissingArgument is matched by every MissingArgumentError.
var ErrMissingArgument = errors.New("missing argument")

// MissingArgumentError reports which positional argument was not supplied.
type MissingArgumentError struct {
	Argument string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing %s argument", e.Argument)
}

// Is lets errors.Is match ErrMissingArgument.
func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}

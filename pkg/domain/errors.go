package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by operations rejecting malformed input.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotFound is returned when a lookup by id or name has no match.
type ErrNotFound struct {
	Entity EntityType
	Key    string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

// IsNotFound reports whether err wraps an ErrNotFound.
func IsNotFound(err error) bool {
	var nf ErrNotFound
	return errors.As(err, &nf)
}

package sortedmap

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned for a capacity below one, an empty key,
	// or an absent value. The map is left unchanged.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrClosed is returned by mutations on a map that has been closed.
	ErrClosed = errors.New("sorted map is closed")
)

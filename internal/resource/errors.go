package resource

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingResource marks a table that exists in none of the search directories.
	ErrMissingResource = errors.New("missing resource")
	// ErrMalformedResource marks a table that failed to parse or has an unexpected shape.
	ErrMalformedResource = errors.New("malformed resource")
)

func wrap(marker error, filename, message string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %s: %w", marker, filename, message, err)
	}
	return fmt.Errorf("%w: %s: %s", marker, filename, message)
}

// Kind classifies a loader error for reporting ("missing", "malformed", or "io").
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrMissingResource):
		return "missing"
	case errors.Is(err, ErrMalformedResource):
		return "malformed"
	default:
		return "io"
	}
}

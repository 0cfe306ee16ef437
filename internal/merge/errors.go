// file: internal/merge/errors.go

package merge

import "errors"

var (
	// ErrNoInputs is returned when a merge is requested without fragments.
	ErrNoInputs = errors.New("no input fragments")
	// ErrUnknownFormat is returned for an unsupported plan rendering format.
	ErrUnknownFormat = errors.New("unknown plan format")
)

package datasetindex

import "errors"

var (
	// ErrNotDirectory is returned when the target path exists but is not a directory.
	ErrNotDirectory = errors.New("datasetindex: not a directory")

	// ErrInvalidIndex is returned when an index file is not a JSON array of strings.
	ErrInvalidIndex = errors.New("datasetindex: invalid index")
)

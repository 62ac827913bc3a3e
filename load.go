package datasetindex

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads the index file at path and returns its entry names in order.
//
// A missing file yields an error matching fs.ErrNotExist. Content that is not
// a JSON array of strings yields an error matching ErrInvalidIndex.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load index: %w", err)
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidIndex, path, err)
	}
	if names == nil {
		return nil, fmt.Errorf("%w: %s: not an array", ErrInvalidIndex, path)
	}
	return names, nil
}

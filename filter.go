package datasetindex

import "strings"

// Filter reports whether an entry name should be excluded from the index.
// It sees only the name; entry type and content are never inspected.
type Filter func(name string) bool

// ExcludeJSON excludes names ending in ".json", compared case-insensitively.
// This also keeps the index file itself out of the listing.
func ExcludeJSON(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".json")
}

// ExcludeDSStore excludes the macOS Finder metadata file. The match is exact.
func ExcludeDSStore(name string) bool {
	return name == ".DS_Store"
}

// DefaultFilters returns the filters every index build applies.
func DefaultFilters() []Filter {
	return []Filter{ExcludeJSON, ExcludeDSStore}
}

// Eligible reports whether name passes all filters.
func Eligible(name string, filters ...Filter) bool {
	for _, exclude := range filters {
		if exclude(name) {
			return false
		}
	}
	return true
}

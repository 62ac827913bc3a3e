// Package datasetindex generates a JSON index of the entries in a dataset
// directory.
//
// The index is a single file, dataset-index.json, written next to the entries
// it lists. It holds a 2-space-indented JSON array of entry names:
//
//	[
//	  "cat001.png",
//	  "dog042.jpg"
//	]
//
// Only direct entries are listed; subdirectories appear by name like files.
// Names ending in .json (any case) and the exact name .DS_Store are excluded,
// which keeps a previously written index out of the next one.
package datasetindex

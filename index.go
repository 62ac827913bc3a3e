package datasetindex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"
)

// IndexFileName is the name of the index file written into the target directory.
const IndexFileName = "dataset-index.json"

// Result describes a written index.
type Result struct {
	// Path is the location of the written index file.
	Path string

	// Entries holds the indexed names in the order they were written.
	Entries []string

	// Digest is the sha256 digest of the written bytes.
	Digest digest.Digest
}

// Count returns the number of indexed entries.
func (r *Result) Count() int {
	return len(r.Entries)
}

// Build lists the direct entries of dir, drops the ones excluded by
// DefaultFilters (and any added with WithFilter), and writes the remaining
// names to dir/dataset-index.json.
//
// Entries are listed in filename order and are not descended into; a
// subdirectory is indexed by name like any file. An existing index is always
// overwritten; a symlinked index updates its destination and an existing file
// keeps its permissions.
func Build(dir string, opts ...Option) (*Result, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &builder{
		filters: append(DefaultFilters(), cfg.filters...),
		logger:  cfg.logger,
	}
	return b.build(dir)
}

// builder holds state for a single index build.
type builder struct {
	filters []Filter
	logger  *slog.Logger
}

// log returns the logger, falling back to a discard logger if nil.
func (b *builder) log() *slog.Logger {
	if b.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return b.logger
}

func (b *builder) build(dir string) (*Result, error) {
	b.log().Info("building dataset index", "dir", dir)

	names, err := b.list(dir)
	if err != nil {
		return nil, err
	}

	data, err := encodeIndex(names)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, IndexFileName)
	dgst := digest.FromBytes(data)
	b.logChange(path, dgst)

	if err := writeIndexFile(path, data); err != nil {
		return nil, fmt.Errorf("write index: %w", err)
	}

	b.log().Debug("dataset index written", "path", path, "entries", len(names), "digest", dgst.String())
	return &Result{Path: path, Entries: names, Digest: dgst}, nil
}

// list returns the eligible entry names of dir in filename order.
func (b *builder) list(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("list %s: %w", dir, ErrNotDirectory)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	defer root.Close()

	entries, err := fs.ReadDir(root.FS(), ".")
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !Eligible(e.Name(), b.filters...) {
			b.log().Debug("excluding entry", "name", e.Name())
			continue
		}
		names = append(names, e.Name())
	}

	b.log().Debug("directory listed", "dir", dir, "total", len(entries), "eligible", len(names))
	return names, nil
}

// logChange records whether the new index differs from the one on disk.
// It never prevents the write.
func (b *builder) logChange(path string, next digest.Digest) {
	prev, err := os.ReadFile(path)
	if err != nil {
		b.log().Debug("no previous index", "path", path)
		return
	}
	if digest.FromBytes(prev) == next {
		b.log().Debug("index unchanged", "path", path, "digest", next.String())
		return
	}
	b.log().Debug("index changed", "path", path, "previous", digest.FromBytes(prev).String(), "digest", next.String())
}

// encodeIndex renders names as a 2-space-indented JSON array with no
// trailing newline. HTML characters are written as-is.
func encodeIndex(names []string) ([]byte, error) {
	if names == nil {
		names = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(names); err != nil {
		return nil, fmt.Errorf("encode index: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Command dataset-index writes public/assets/training-images/dataset-index.json
// next to the executable, listing the training images in that directory.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/meigma/datasetindex"
)

// datasetDir is the dataset location relative to the program root.
var datasetDir = filepath.Join("public", "assets", "training-images")

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	root, err := programRoot()
	if err != nil {
		logger.Error("resolve program root", "error", err)
		os.Exit(1)
	}

	if err := generate(targetDir(root), os.Stdout, logger); err != nil {
		logger.Error("generate dataset index", "error", err)
		os.Exit(1)
	}
}

// targetDir returns the dataset directory under the program root.
func targetDir(root string) string {
	return filepath.Join(root, datasetDir)
}

// generate builds the index for dir and prints the status line to out.
func generate(dir string, out io.Writer, logger *slog.Logger) error {
	res, err := datasetindex.Build(dir, datasetindex.WithLogger(logger))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "✅ Generated %s with %d items\n", datasetindex.IndexFileName, res.Count())
	return err
}

// programRoot returns the directory holding the running executable.
func programRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

package datasetindex

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// indexFileMode is the permission set on a freshly created index.
const indexFileMode = 0o644

// tempPattern ends in .json so an orphaned temp file is never indexed.
const tempPattern = ".dataset-index-*.json"

// writeIndexFile replaces the content of target with data.
//
// A symlinked target is followed and its destination updated; the link itself
// stays. An existing file keeps its permissions. The new content is staged in
// a temp file next to the destination and renamed into place; when that
// directory is not writable the destination is overwritten in place instead.
func writeIndexFile(target string, data []byte) error {
	dest, mode, inPlace, err := resolveIndexFile(target)
	if err != nil {
		return err
	}
	if inPlace {
		return os.WriteFile(dest, data, mode)
	}

	err = replaceFile(dest, data, mode)
	if errors.Is(err, fs.ErrPermission) {
		return os.WriteFile(dest, data, mode)
	}
	return err
}

// resolveIndexFile returns the file that should receive the index and the
// mode it should carry. inPlace is set for a dangling symlink, which can only
// be written through the link.
func resolveIndexFile(target string) (dest string, mode fs.FileMode, inPlace bool, err error) {
	linfo, err := os.Lstat(target)
	if errors.Is(err, fs.ErrNotExist) {
		return target, indexFileMode, false, nil
	}
	if err != nil {
		return "", 0, false, err
	}
	if linfo.Mode()&fs.ModeSymlink == 0 {
		return target, linfo.Mode().Perm(), false, nil
	}

	resolved, err := filepath.EvalSymlinks(target)
	if errors.Is(err, fs.ErrNotExist) {
		return target, indexFileMode, true, nil
	}
	if err != nil {
		return "", 0, false, err
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", 0, false, err
	}
	return resolved, info.Mode().Perm(), false, nil
}

// replaceFile stages data in a temp file beside dest and renames it over dest.
func replaceFile(dest string, data []byte, mode fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), tempPattern)
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	cleanup := func(err error) error {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

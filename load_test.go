package datasetindex

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, IndexFileName)

	t.Run("array", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("[\n  \"a.png\",\n  \"b.jpg\"\n]"), 0o644))
		names, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"a.png", "b.jpg"}, names)
	})

	t.Run("empty array", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))
		names, err := Load(path)
		require.NoError(t, err)
		assert.Empty(t, names)
		assert.NotNil(t, names)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.json"))
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, content := range []string{"null", "{}", "[1, 2]", "not json"} {
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalidIndex, "content %q", content)
		}
	})
}

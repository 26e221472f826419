package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSave(t *testing.T) {
	rootDir := t.TempDir()
	s := NewFSService(newFakeRoots(rootDir))

	t.Run("round trip is byte exact", func(t *testing.T) {
		content := "#!/bin/bash\necho hi  \n\n"
		path, err := s.Save(rootDir, "hello.sh", content)
		assert.NoError(t, err)

		data, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, content, string(data))
	})

	t.Run("creates missing directories", func(t *testing.T) {
		dest := filepath.Join(rootDir, "deep", "nested")
		path, err := s.Save(dest, "run.sh", "echo nested\n")
		assert.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("overwrites without confirmation", func(t *testing.T) {
		_, err := s.Save(rootDir, "twice.sh", "first\n")
		assert.NoError(t, err)

		path, err := s.Save(rootDir, "twice.sh", "second\n")
		assert.NoError(t, err)

		data, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, "second\n", string(data))
	})

	t.Run("rejects directories outside the roots", func(t *testing.T) {
		outside := filepath.Join(t.TempDir(), "denied")
		_, err := s.Save(outside, "x.sh", "nope")
		assert.ErrorIs(t, err, ErrNotAllowed)
		assert.NoDirExists(t, outside)
	})

	t.Run("dot segments in the directory cannot climb out", func(t *testing.T) {
		escaped := rootDir + "/../evil"
		_, err := s.Save(escaped, "x.sh", "nope")
		assert.ErrorIs(t, err, ErrNotAllowed)
		assert.NoDirExists(t, filepath.Join(filepath.Dir(rootDir), "evil"))
	})

	t.Run("rejects unsafe filenames before writing", func(t *testing.T) {
		for _, name := range []string{"", "  ", "../evil.sh", "a/b.sh", `a\b.sh`, "x..sh"} {
			_, err := s.Save(rootDir, name, "nope")
			assert.ErrorIs(t, err, ErrUnsafeFilename, "filename %q", name)
		}
		assert.NoFileExists(t, filepath.Join(rootDir, "evil.sh"))
		assert.NoFileExists(t, filepath.Join(filepath.Dir(rootDir), "evil.sh"))
	})
}

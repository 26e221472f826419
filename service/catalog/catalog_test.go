package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogList(t *testing.T) {
	tmpDir := t.TempDir()
	c := New(tmpDir)

	files := []string{"deploy.sh", "backup.sh.j2", "cleanup.bash", "notes.txt", ".hidden.sh"}
	for _, name := range files {
		assert.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("echo hi\n"), 0640))
	}

	t.Run("filters extensions and dotfiles, sorted by name", func(t *testing.T) {
		assert.Equal(t, []Info{
			{ID: "backup.sh.j2", Label: "backup.sh.j2"},
			{ID: "cleanup.bash", Label: "cleanup.bash"},
			{ID: "deploy.sh", Label: "deploy.sh"},
		}, c.List())
	})

	t.Run("missing directory yields empty list", func(t *testing.T) {
		missing := New(filepath.Join(tmpDir, "nope"))
		assert.Empty(t, missing.List())
	})
}

func TestCatalogGet(t *testing.T) {
	tmpDir := t.TempDir()
	c := New(tmpDir)

	content := "#!/bin/bash\necho {{ greeting }} {{ name }}\n"
	assert.NoError(t, os.WriteFile(filepath.Join(tmpDir, "hello.sh"), []byte(content), 0640))

	t.Run("returns content and variables", func(t *testing.T) {
		tmpl, err := c.Get("hello.sh")
		assert.NoError(t, err)
		assert.Equal(t, "hello.sh", tmpl.Name)
		assert.Equal(t, content, tmpl.Content)
		assert.Equal(t, []string{"greeting", "name"}, tmpl.Variables)
	})

	t.Run("rejects names with separators or dot-dot", func(t *testing.T) {
		for _, name := range []string{"../hello.sh", "a/b.sh", `a\b.sh`, "..", "x..sh"} {
			_, err := c.Get(name)
			assert.ErrorIs(t, err, ErrInvalidName, "name %q", name)
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		_, err := c.Get("missing.sh")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("directory is not a template", func(t *testing.T) {
		assert.NoError(t, os.Mkdir(filepath.Join(tmpDir, "subdir.sh"), 0750))

		_, err := c.Get("subdir.sh")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTemplatesDir(t *testing.T) {
	t.Run("environment override wins when valid", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("TEMPLATE_EDITOR_TEMPLATES", dir)
		assert.Equal(t, dir, TemplatesDir())
	})

	t.Run("invalid override falls back", func(t *testing.T) {
		t.Setenv("TEMPLATE_EDITOR_TEMPLATES", filepath.Join(t.TempDir(), "nope"))
		assert.Equal(t, "script_templates", TemplatesDir())
	})

	t.Run("unset falls back", func(t *testing.T) {
		t.Setenv("TEMPLATE_EDITOR_TEMPLATES", "")
		assert.Equal(t, "script_templates", TemplatesDir())
	})
}

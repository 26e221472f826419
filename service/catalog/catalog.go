package catalog

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrInvalidName flags template names that try to leave the
	// template directory.
	ErrInvalidName = errors.New("invalid template name")
	// ErrNotFound flags template names with no backing file.
	ErrNotFound = errors.New("template not found")
)

// templateSuffixes are the file extensions the catalog recognizes.
var templateSuffixes = []string{".sh", ".bash", ".sh.j2"}

// Info identifies one template in listings.
type Info struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Template is a catalog entry with its source and the variables found
// in it.
type Template struct {
	Name      string   `json:"name"`
	Content   string   `json:"content"`
	Variables []string `json:"variables"`
}

// Catalog serves the shell script templates under one fixed directory.
type Catalog struct {
	dir string

	*log.Logger
}

func New(dir string) *Catalog {
	return &Catalog{
		dir:    dir,
		Logger: log.New(log.Writer(), "[catalog] ", log.LstdFlags),
	}
}

// Dir returns the directory the catalog reads templates from.
func (c *Catalog) Dir() string { return c.dir }

// List returns the available templates sorted by name. A missing
// template directory yields an empty list, never an error.
func (c *Catalog) List() []Info {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			c.Printf("failed to read template directory %s: %v", c.dir, err)
		}
		return []Info{}
	}

	templates := make([]Info, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if name[0] == '.' {
			continue
		}
		if !hasTemplateSuffix(name) {
			continue
		}
		templates = append(templates, Info{ID: name, Label: name})
	}
	return templates
}

// Get loads a single template by bare name and extracts its variables.
// Names carrying separators or dot-dot segments never reach the
// filesystem.
func (c *Catalog) Get(name string) (Template, error) {
	if strings.Contains(name, "/") || strings.Contains(name, "\\") || strings.Contains(name, "..") {
		return Template{}, ErrInvalidName
	}

	path := filepath.Join(c.dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return Template{}, ErrNotFound
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	return Template{
		Name:      name,
		Content:   string(content),
		Variables: ExtractVariables(string(content)),
	}, nil
}

func hasTemplateSuffix(name string) bool {
	for _, suffix := range templateSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

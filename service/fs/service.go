package fs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"templedit/pathguard"
)

// FSService implements the filesystem operations that accept
// user-supplied absolute paths. Every path crosses the root gate before
// any OS call.
type FSService struct {
	roots RootSource

	*log.Logger
}

func NewFSService(roots RootSource) *FSService {
	return &FSService{
		roots:  roots,
		Logger: log.New(log.Writer(), "[fs] ", log.LstdFlags),
	}
}

// ListDir lists the direct children of path for the directory picker.
// An empty path defaults to the first configured root.
func (s *FSService) ListDir(path string) (Listing, error) {
	if path == "" {
		root, ok := s.roots.Default()
		if !ok {
			return Listing{}, ErrNoRoots
		}
		path = root.Path
	}

	realPath := pathguard.Canonicalize(path)
	if !s.roots.IsAllowed(realPath) {
		return Listing{}, ErrNotAllowed
	}

	if info, err := os.Stat(realPath); err != nil || !info.IsDir() {
		return Listing{}, ErrNotDir
	}

	owner, ok := s.roots.OwnerOf(realPath)
	if !ok {
		return Listing{}, ErrNoOwner
	}

	dirEntries, err := os.ReadDir(realPath)
	if err != nil {
		return Listing{}, fmt.Errorf("failed to list directory %s: %w", realPath, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		if name[0] == '.' {
			continue
		}

		entryPath := filepath.Join(realPath, name)
		entryType := "file"
		// Stat follows symlinks, so a link to a directory browses as one.
		if info, err := os.Stat(entryPath); err == nil && info.IsDir() {
			entryType = "dir"
		}

		entries = append(entries, Entry{
			Name: name,
			Path: entryPath,
			Type: entryType,
		})
	}

	// Directories first, then files, case-insensitive within each group.
	sort.SliceStable(entries, func(i, j int) bool {
		if (entries[i].Type == "dir") != (entries[j].Type == "dir") {
			return entries[i].Type == "dir"
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	var parent *string
	if realPath != owner.Path {
		if p := filepath.Dir(realPath); pathguard.IsSubpath(p, owner.Path) {
			parent = &p
		}
	}

	return Listing{Path: realPath, Entries: entries, Parent: parent, Root: owner}, nil
}

// Save validates the destination against the configured roots and
// writes content to directory/filename, creating the directory when
// missing. An existing file is overwritten; last write wins.
func (s *FSService) Save(directory, filename, content string) (string, error) {
	realPath := pathguard.Canonicalize(directory)
	if !s.roots.IsAllowed(realPath) {
		return "", ErrNotAllowed
	}

	if !pathguard.SafeFilename(filename) {
		return "", ErrUnsafeFilename
	}

	if err := os.MkdirAll(realPath, 0750); err != nil {
		return "", fmt.Errorf("%w %s: %v", ErrCreateDir, realPath, err)
	}

	path := filepath.Join(realPath, filename)
	if err := os.WriteFile(path, []byte(content), 0640); err != nil {
		return "", fmt.Errorf("%w %s: %v", ErrWriteFile, path, err)
	}

	s.Printf("saved script to %s", path)
	return path, nil
}

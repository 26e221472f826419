package fs

import (
	"errors"

	"templedit/service/roots"
)

var (
	// ErrNoRoots means the resolver produced an empty root list.
	ErrNoRoots = errors.New("no roots configured")
	// ErrNotAllowed flags paths outside every configured root.
	ErrNotAllowed = errors.New("path is not under an allowed root")
	// ErrNotDir flags listing targets that are not directories.
	ErrNotDir = errors.New("path is not a directory")
	// ErrNoOwner flags paths no configured root claims.
	ErrNoOwner = errors.New("path is not under a known root")
	// ErrUnsafeFilename flags save names with separators or traversal.
	ErrUnsafeFilename = errors.New("invalid filename")
	// ErrCreateDir wraps destination directory creation failures.
	ErrCreateDir = errors.New("failed to create directory")
	// ErrWriteFile wraps content write failures.
	ErrWriteFile = errors.New("failed to save file")
)

// RootSource gates every user-supplied path before it reaches the
// filesystem. *roots.Resolver satisfies it.
type RootSource interface {
	// Default returns the root used when no path was requested.
	Default() (roots.Root, bool)
	// IsAllowed reports whether path equals or sits under any root.
	IsAllowed(path string) bool
	// OwnerOf returns the first root containing path.
	OwnerOf(path string) (roots.Root, bool)
}

// Entry is a single directory child in a listing.
type Entry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

// Listing is the browser response for one directory. Parent is nil at
// the root boundary so clients cannot climb out of it.
type Listing struct {
	Path    string     `json:"path"`
	Entries []Entry    `json:"entries"`
	Parent  *string    `json:"parent"`
	Root    roots.Root `json:"root"`
}

package roots

import (
	"log"
	"os"
	"slices"
	"strings"
	"sync"

	"templedit/pathguard"
	"templedit/service/settings"
)

// Root is an approved base directory for file operations.
type Root struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Resolver computes and caches the ordered list of allowed roots. The
// first root is the default for directory listings, and the first root
// matching a path owns it.
type Resolver struct {
	mu    sync.RWMutex
	roots []Root

	store *settings.Store

	*log.Logger
}

func NewResolver(store *settings.Store) *Resolver {
	r := &Resolver{
		store:  store,
		Logger: log.New(log.Writer(), "[roots] ", log.LstdFlags),
	}
	r.Refresh()
	return r
}

// Refresh recomputes the root list from the environment and the
// settings store. It must run after every settings change so path
// checks see the new value immediately.
func (r *Resolver) Refresh() {
	var computed []Root

	if home, err := os.UserHomeDir(); err == nil {
		computed = append(computed, Root{
			ID:    "home",
			Label: "Home directory",
			Path:  pathguard.Canonicalize(home),
		})
	} else {
		r.Printf("failed to resolve home directory: %v", err)
	}

	if envRoot := os.Getenv(envRootName); envRoot != "" {
		if isDir(envRoot) {
			computed = append(computed, Root{
				ID:    "env_root",
				Label: "Environment root",
				Path:  pathguard.Canonicalize(envRoot),
			})
		} else {
			r.Printf("$%s (%s) is not a directory, ignoring", envRootName, envRoot)
		}
	}

	if additional := strings.TrimSpace(r.store.Load().AdditionalRoot); additional != "" {
		if isDir(additional) {
			computed = append(computed, Root{
				ID:    "settings_root",
				Label: "Settings root",
				Path:  pathguard.Canonicalize(additional),
			})
		} else {
			r.Printf("settings root %s is not a directory, ignoring", additional)
		}
	}

	r.mu.Lock()
	r.roots = computed
	r.mu.Unlock()
}

// Roots returns a copy of the current root list.
func (r *Resolver) Roots() []Root {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.roots)
}

// Default returns the first configured root.
func (r *Resolver) Default() (Root, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.roots) == 0 {
		return Root{}, false
	}
	return r.roots[0], true
}

// IsAllowed reports whether path equals or sits under any root.
func (r *Resolver) IsAllowed(path string) bool {
	_, ok := r.OwnerOf(path)
	return ok
}

// OwnerOf returns the first root containing path, in list order.
func (r *Resolver) OwnerOf(path string) (Root, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, root := range r.roots {
		if pathguard.IsSubpath(path, root.Path) {
			return root, true
		}
	}
	return Root{}, false
}

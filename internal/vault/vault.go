// Package vault resolves wiki-style link references against a notes
// directory tree.
package vault

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Vault indexes a directory so references like pic.png or img/pic.png can be
// resolved to files. Handles and resource paths are slash-separated paths
// relative to the vault root, usable directly in rendered pages.
type Vault struct {
	root    string
	byName  map[string][]string // base name -> relative paths, sorted
	entries map[string]bool     // every indexed relative path
}

// Open walks root and builds the link index. Hidden directories (dot
// prefixed) are skipped.
func Open(root string) (*Vault, error) {
	v := &Vault{
		root:    root,
		byName:  make(map[string][]string),
		entries: make(map[string]bool),
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		v.entries[rel] = true
		v.byName[d.Name()] = append(v.byName[d.Name()], rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to index vault %s: %w", root, err)
	}

	// Deterministic pick when a base name is ambiguous.
	for name := range v.byName {
		sort.Strings(v.byName[name])
	}
	return v, nil
}

// Root returns the vault root directory.
func (v *Vault) Root() string {
	return v.root
}

// ResolveLink resolves ref as seen from sourcePath. Lookup order: path
// relative to the source file's directory, path relative to the vault root,
// then base-name match anywhere in the vault. ok is false when nothing
// matches.
func (v *Vault) ResolveLink(ref, sourcePath string) (string, bool) {
	ref = filepath.ToSlash(strings.TrimSpace(ref))
	if ref == "" {
		return "", false
	}

	if dir := filepath.ToSlash(filepath.Dir(sourcePath)); dir != "" && dir != "." {
		candidate := strings.TrimPrefix(filepath.ToSlash(filepath.Join(dir, ref)), "./")
		if v.entries[candidate] {
			return candidate, true
		}
	}
	if v.entries[ref] {
		return ref, true
	}
	if matches := v.byName[filepath.Base(ref)]; len(matches) > 0 {
		return matches[0], true
	}
	return "", false
}

// ResourcePath converts a resolved handle into a displayable source path.
func (v *Vault) ResourcePath(handle string) string {
	return filepath.ToSlash(filepath.Join(v.root, handle))
}

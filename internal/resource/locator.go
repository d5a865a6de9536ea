package resource

import (
	"os"
	"path/filepath"
	"strings"
)

// Locator resolves table filenames against an ordered list of export directories.
type Locator struct {
	root      string
	dirs      []string
	preferred string
}

// NewLocator builds a locator. Relative directories resolve against root (the
// working directory when root is empty). When preferred is non-empty, a
// candidate whose configured path contains it (case-insensitive) beats
// earlier candidates that do not.
func NewLocator(root string, dirs []string, preferred string) *Locator {
	return &Locator{
		root:      root,
		dirs:      append([]string(nil), dirs...),
		preferred: strings.ToLower(strings.TrimSpace(preferred)),
	}
}

// Candidate is one existing copy of a table.
type Candidate struct {
	// Path is the directory-relative form used for preference matching.
	Path string
	// Resolved is the path opened on disk.
	Resolved string
	// Preferred reports whether Path contains the preferred substring.
	Preferred bool
}

// Candidates returns every existing copy of filename in search order.
func (l *Locator) Candidates(filename string) []Candidate {
	var out []Candidate
	for _, dir := range l.dirs {
		rel := filepath.Join(dir, filename)
		resolved := rel
		if !filepath.IsAbs(rel) && l.root != "" {
			resolved = filepath.Join(l.root, rel)
		}
		info, err := os.Stat(resolved)
		if err != nil || info.IsDir() {
			continue
		}
		out = append(out, Candidate{
			Path:      rel,
			Resolved:  resolved,
			Preferred: l.preferred != "" && strings.Contains(strings.ToLower(rel), l.preferred),
		})
	}
	return out
}

// Find returns the path of the copy to load: the first preferred candidate if
// any exists, otherwise the first candidate in search order.
func (l *Locator) Find(filename string) (string, error) {
	candidates := l.Candidates(filename)
	if len(candidates) == 0 {
		return "", wrap(ErrMissingResource, filename, "not found in any search path", nil)
	}
	for _, c := range candidates {
		if c.Preferred {
			return c.Resolved, nil
		}
	}
	return candidates[0].Resolved, nil
}

// Dirs returns the configured search directories in priority order.
func (l *Locator) Dirs() []string {
	return append([]string(nil), l.dirs...)
}

package geom

import (
	"errors"
	"os"
	"path/filepath"

	apperrors "segplot/internal/errors"
)

// Locator resolves a logical file name against an ordered list of roots.
// The empty root stands for the name exactly as given. The first root at
// which the file opens wins.
type Locator struct {
	roots []string
}

// NewLocator returns a Locator that tries the name as given, then each
// non-empty fallback directory in order.
func NewLocator(fallbacks ...string) *Locator {
	roots := make([]string, 0, len(fallbacks)+1)
	roots = append(roots, "")
	for _, fb := range fallbacks {
		if fb != "" {
			roots = append(roots, fb)
		}
	}
	return &Locator{roots: roots}
}

// Candidates lists the paths Open would try for name, in order.
func (l *Locator) Candidates(name string) []string {
	out := make([]string, 0, len(l.roots))
	for _, root := range l.roots {
		out = append(out, resolve(root, name))
	}
	return out
}

// Open opens the first candidate path that can be opened and returns the
// file along with the path it was found at.
func (l *Locator) Open(name string) (*os.File, string, error) {
	candidates := l.Candidates(name)
	var errs []error
	for _, p := range candidates {
		f, err := os.Open(p)
		if err == nil {
			return f, p, nil
		}
		errs = append(errs, err)
	}
	return nil, "", apperrors.Wrap(apperrors.ErrCodeNotFound, errors.Join(errs...),
		"segment file %q not found (tried %v)", name, candidates)
}

func resolve(root, name string) string {
	if root == "" {
		return name
	}
	if filepath.IsAbs(name) {
		return filepath.Join(root, filepath.Base(name))
	}
	return filepath.Join(root, name)
}

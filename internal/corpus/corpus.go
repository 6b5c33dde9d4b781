// Package corpus locates input text files under a root directory and loads
// their raw line content for the cleaning pipeline.
package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"silbe/internal/services"
)

// Source indexes every file under a root directory by bare file name and
// serves raw line content. The walk happens once per construction; callers
// wanting a fresh view build a new Source.
type Source struct {
	root     string
	index    map[string]string
	shadowed map[string][]string
}

// NewSource walks root recursively and builds the name index. When the same
// file name appears in several subdirectories the last-seen path wins; the
// earlier paths are retained as shadowed so callers can warn about them.
func NewSource(root string) (*Source, error) {
	src := &Source{
		root:     root,
		index:    make(map[string]string),
		shadowed: make(map[string][]string),
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if prior, ok := src.index[name]; ok {
			src.shadowed[name] = append(src.shadowed[name], prior)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		src.index[name] = abs
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("index corpus %s: %w", root, err)
	}
	return src, nil
}

// Root returns the indexed root directory.
func (s *Source) Root() string {
	return s.root
}

// Resolve returns the absolute path for a file name from the index.
func (s *Source) Resolve(name string) (string, error) {
	path, ok := s.index[name]
	if !ok {
		return "", services.Wrap(services.ErrNotFound, "corpus", "resolve", name, nil)
	}
	return path, nil
}

// Shadowed returns the paths hidden by the last-seen-wins rule for name.
func (s *Source) Shadowed(name string) []string {
	return s.shadowed[name]
}

// Lines returns the full raw line sequence of the named file. Line
// terminators stay attached, matching what the cleaning rules expect. Each
// line is NFC-normalized so decomposed umlauts compare equal downstream.
func (s *Source) Lines(name string) ([]string, error) {
	return s.read(name, -1)
}

// Sample returns at most n leading lines of the named file.
func (s *Source) Sample(name string, n int) ([]string, error) {
	if n < 0 {
		n = 0
	}
	return s.read(name, n)
}

func (s *Source) read(name string, limit int) ([]string, error) {
	path, err := s.Resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	lines := strings.SplitAfter(string(data), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if limit >= 0 && len(lines) > limit {
		lines = lines[:limit]
	}
	for i, line := range lines {
		lines[i] = norm.NFC.String(line)
	}
	return lines, nil
}

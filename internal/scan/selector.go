// Package scan discovers eligible project files and reads their text.
package scan

import (
	"path/filepath"
	"strings"
)

// DefaultExtensions lists the file extensions that are scanned.
var DefaultExtensions = []string{".cs", ".json", ".txt", ".md", ".prefab", ".unity", ".asset"}

// DefaultExclude lists path fragments that disqualify a file.
var DefaultExclude = []string{
	"Library/", "Temp/", "Build/", ".git/",
	".meta", ".dll", ".exe", "packages-lock.json",
	"DOTween", "TextMesh Pro/Resources/", "TextMesh Pro/Sprites/",
}

// PrunedDirs names directories whose contents are never visited.
var PrunedDirs = []string{"Library", "Temp", "Build", ".git"}

// Selector decides which files contribute characters.
type Selector struct {
	extensions map[string]struct{}
	exclude    []string
}

// NewSelector builds a selector. Nil arguments fall back to the defaults.
func NewSelector(extensions, exclude []string) *Selector {
	if extensions == nil {
		extensions = DefaultExtensions
	}
	if exclude == nil {
		exclude = DefaultExclude
	}
	s := &Selector{
		extensions: make(map[string]struct{}, len(extensions)),
		exclude:    append([]string(nil), exclude...),
	}
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		s.extensions[ext] = struct{}{}
	}
	return s
}

// Eligible reports whether path should be read.
func (s *Selector) Eligible(path string) bool {
	if _, ok := s.extensions[strings.ToLower(filepath.Ext(path))]; !ok {
		return false
	}
	slashed := filepath.ToSlash(path)
	for _, pattern := range s.exclude {
		if strings.Contains(slashed, pattern) {
			return false
		}
	}
	return true
}

// Pruned reports whether a directory with the given name is skipped.
func Pruned(name string) bool {
	for _, dir := range PrunedDirs {
		if name == dir {
			return true
		}
	}
	return false
}

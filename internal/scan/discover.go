package scan

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/verte-zerg/charinv/internal/logger"
)

// DefaultRoots are the directories scanned when none are configured.
var DefaultRoots = []string{".", "questions", "Assets"}

// Discover walks each root, prunes build and VCS directories, and returns
// eligible files. Files are sorted per root; a file reachable from several
// roots is listed once, under the first root that reaches it. Missing roots
// are skipped silently and unreadable directories are logged and skipped.
func Discover(ctx context.Context, roots []string, sel *Selector) ([]string, error) {
	seen := map[string]struct{}{}
	var files []string
	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			logger.Warn(ctx, "cannot stat root", zap.String("root", root), zap.Error(err))
			continue
		}
		found, err := walkRoot(ctx, root, sel)
		if err != nil {
			return nil, err
		}
		for _, path := range found {
			key := path
			if abs, err := filepath.Abs(path); err == nil {
				key = abs
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			files = append(files, path)
		}
	}
	return files, nil
}

func walkRoot(ctx context.Context, root string, sel *Selector) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn(ctx, "cannot walk path", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && Pruned(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if sel.Eligible(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

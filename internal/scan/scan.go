package scan

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/verte-zerg/charinv/internal/charset"
	"github.com/verte-zerg/charinv/internal/logger"
)

// Result is the outcome of a scan.
type Result struct {
	Inventory *charset.Inventory
	Files     int
	Skipped   int
}

// Run discovers files under roots and accumulates their characters. A file
// that cannot be read is logged and contributes nothing.
func Run(ctx context.Context, roots []string, sel *Selector) (Result, error) {
	files, err := Discover(ctx, roots, sel)
	if err != nil {
		return Result{}, fmt.Errorf("failed to discover files: %w", err)
	}

	res := Result{Inventory: charset.NewInventory()}
	for _, path := range files {
		res.Files++
		contrib, err := ScanFile(ctx, path)
		if err != nil {
			res.Skipped++
			logger.Warn(ctx, "cannot read file", zap.String("file", path), zap.Error(err))
			continue
		}
		res.Inventory.Merge(contrib)
	}
	logger.Info(ctx, "scan complete",
		zap.Int("files", res.Files),
		zap.Int("skipped", res.Skipped),
		zap.Int("unique", res.Inventory.Len()),
	)
	return res, nil
}

// ScanFile decodes a single file and returns its character contribution.
func ScanFile(ctx context.Context, path string) (*charset.Inventory, error) {
	text, enc, err := ReadText(path)
	if err != nil {
		return nil, err
	}
	inv := charset.Extract(text)
	logger.Info(ctx, "processed file",
		zap.String("file", filepath.Base(path)),
		zap.Int("unique", inv.Len()),
	)
	logger.Debug(ctx, "decoded file", zap.String("path", path), zap.String("encoding", string(enc)))
	return inv, nil
}

package ingestion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/schema"

	"github.com/finsolve/finsight/core"
)

// SupportedExtensions lists the file extensions the loader accepts.
var SupportedExtensions = []string{".txt", ".md", ".csv", ".pdf"}

// IsSupported reports whether the file's extension has a loader.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// loadDocument reads a file and returns its text content as documents.
// The loader is chosen by extension; unsupported extensions return
// core.ErrUnsupportedFileType.
func loadDocument(ctx context.Context, path string) ([]schema.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return documentloaders.NewText(file).Load(ctx)
	case ".csv":
		return documentloaders.NewCSV(file).Load(ctx)
	case ".pdf":
		info, err := file.Stat()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		return documentloaders.NewPDF(file, info.Size()).Load(ctx)
	default:
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedFileType, filepath.Ext(path))
	}
}

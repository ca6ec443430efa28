package files

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/yourusername/product-catalog/internal/domain/repository"
)

// FileSink writes generated files into a directory
type FileSink struct {
	Dir string
}

// NewFileSink creates a sink writing into dir. The directory is created on first write.
func NewFileSink(dir string) repository.Sink {
	return &FileSink{Dir: dir}
}

// Write stores data as Dir/filename
func (s *FileSink) Write(ctx context.Context, filename, contentType string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.Dir, err)
	}

	path := filepath.Join(s.Dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	slog.Info("file written",
		slog.String("path", path),
		slog.String("content_type", contentType),
		slog.Int("bytes", len(data)),
	)
	return nil
}

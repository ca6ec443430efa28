package files

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yourusername/product-catalog/internal/domain/repository"
)

// FileSource reads a spreadsheet from local disk
type FileSource struct {
	Path string
}

// NewFileSource creates a source for path
func NewFileSource(path string) repository.ByteSource {
	return &FileSource{Path: path}
}

// Name base name of the file
func (s *FileSource) Name() string {
	return filepath.Base(s.Path)
}

// ReadAll reads the whole file
func (s *FileSource) ReadAll(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}
	return data, nil
}

// ReaderSource wraps any reader, e.g. an HTTP response body
type ReaderSource struct {
	name  string
	r     io.Reader
	limit int64
}

// NewReaderSource creates a source reading r to completion. A positive limit caps
// the number of bytes accepted.
func NewReaderSource(name string, r io.Reader, limit int64) repository.ByteSource {
	return &ReaderSource{name: name, r: r, limit: limit}
}

// Name file name given at construction
func (s *ReaderSource) Name() string {
	return s.name
}

// ReadAll reads until EOF, failing when the limit is exceeded
func (s *ReaderSource) ReadAll(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.limit <= 0 {
		return io.ReadAll(s.r)
	}

	data, err := io.ReadAll(io.LimitReader(s.r, s.limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > s.limit {
		return nil, fmt.Errorf("%s is larger than %d bytes", s.name, s.limit)
	}
	return data, nil
}

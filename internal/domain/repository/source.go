package repository

import "context"

// ByteSource yields the complete contents of an input file
type ByteSource interface {
	// Name file name used in logs and catalog metadata
	Name() string

	// ReadAll blocks until the whole file is available
	ReadAll(ctx context.Context) ([]byte, error)
}

// Sink receives generated files (exports, templates)
type Sink interface {
	Write(ctx context.Context, filename, contentType string, data []byte) error
}

package files

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("payload"), 0o644))

	src := NewFileSource(path)
	assert.Equal(t, "catalog.xlsx", src.Name())

	data, err := src.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	_, err = NewFileSource(filepath.Join(dir, "missing.xlsx")).ReadAll(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSourceCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSource("whatever.xlsx").ReadAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReaderSource(t *testing.T) {
	t.Run("no limit", func(t *testing.T) {
		src := NewReaderSource("upload.xlsx", strings.NewReader("abcdef"), 0)

		data, err := src.ReadAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "abcdef", string(data))
		assert.Equal(t, "upload.xlsx", src.Name())
	})

	t.Run("within limit", func(t *testing.T) {
		data, err := NewReaderSource("a.xlsx", strings.NewReader("abcdef"), 6).ReadAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, data, 6)
	})

	t.Run("over limit", func(t *testing.T) {
		_, err := NewReaderSource("a.xlsx", strings.NewReader("abcdefg"), 6).ReadAll(context.Background())
		assert.ErrorContains(t, err, "larger than 6 bytes")
	})
}

func TestFileSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports", "nested")
	sink := NewFileSink(dir)

	err := sink.Write(context.Background(), "products-all-2-2024-01-02.json", "application/json", []byte(`{"products":[]}`))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "products-all-2-2024-01-02.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"products":[]}`, string(data))

	t.Run("file name cannot escape the directory", func(t *testing.T) {
		require.NoError(t, sink.Write(context.Background(), "../escape.json", "application/json", []byte("{}")))

		_, err := os.Stat(filepath.Join(dir, "escape.json"))
		assert.NoError(t, err)
	})
}

package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/product-catalog/internal/domain/entity"
)

type memorySource struct {
	name string
	data []byte
}

func (s memorySource) Name() string { return s.name }

func (s memorySource) ReadAll(context.Context) ([]byte, error) { return s.data, nil }

type written struct {
	filename    string
	contentType string
	data        []byte
}

type recordingSink struct {
	files []written
	err   error
}

func (s *recordingSink) Write(_ context.Context, filename, contentType string, data []byte) error {
	if s.err != nil {
		return s.err
	}
	s.files = append(s.files, written{filename: filename, contentType: contentType, data: data})
	return nil
}

type fakeAI struct {
	response string
	err      error
	prompts  []string
	history  [][]entity.Message
}

func (f *fakeAI) GenerateResponse(_ context.Context, prompt string, history []entity.Message) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.history = append(f.history, history)
	return f.response, f.err
}

var errBoom = errors.New("boom")

// workbook builds an xlsx with rows on its first sheet
func workbook(t *testing.T, rows ...[]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

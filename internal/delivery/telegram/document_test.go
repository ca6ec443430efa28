package telegram

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticResolver struct {
	url string
	err error
}

func (r staticResolver) GetFileDirectURL(string) (string, error) { return r.url, r.err }

type captureSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (s *captureSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.sent = append(s.sent, c)
	return tgbotapi.Message{}, s.err
}

func TestDocumentSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("xlsx bytes"))
	}))
	defer server.Close()

	doc := &tgbotapi.Document{FileID: "file-1", FileName: "catalog.xlsx"}
	ctx := context.Background()

	t.Run("downloads the file", func(t *testing.T) {
		src := NewDocumentSource(staticResolver{url: server.URL + "/file"}, server.Client(), doc, 1024)
		assert.Equal(t, "catalog.xlsx", src.Name())

		data, err := src.ReadAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, "xlsx bytes", string(data))
	})

	t.Run("enforces the size limit", func(t *testing.T) {
		src := NewDocumentSource(staticResolver{url: server.URL + "/file"}, server.Client(), doc, 4)

		_, err := src.ReadAll(ctx)
		assert.Error(t, err)
	})

	t.Run("bad status", func(t *testing.T) {
		src := NewDocumentSource(staticResolver{url: server.URL + "/missing"}, server.Client(), doc, 1024)

		_, err := src.ReadAll(ctx)
		assert.ErrorContains(t, err, "status 404")
	})

	t.Run("resolver failure", func(t *testing.T) {
		cause := errors.New("bad file id")
		src := NewDocumentSource(staticResolver{err: cause}, server.Client(), doc, 1024)

		_, err := src.ReadAll(ctx)
		assert.ErrorIs(t, err, cause)
	})
}

func TestDocumentSink(t *testing.T) {
	bot := &captureSender{}
	sink := NewDocumentSink(bot, 99)

	require.NoError(t, sink.Write(context.Background(), "products-all-1-2024-01-01.json", "application/json", []byte("{}")))
	require.Len(t, bot.sent, 1)

	doc, ok := bot.sent[0].(tgbotapi.DocumentConfig)
	require.True(t, ok)
	assert.Equal(t, int64(99), doc.ChatID)
	assert.Equal(t, "products-all-1-2024-01-01.json", doc.Caption)
	assert.Equal(t, tgbotapi.FileBytes{Name: "products-all-1-2024-01-01.json", Bytes: []byte("{}")}, doc.File)

	failing := NewDocumentSink(&captureSender{err: errors.New("blocked")}, 99)
	assert.ErrorContains(t, failing.Write(context.Background(), "a.json", "application/json", nil), "blocked")
}

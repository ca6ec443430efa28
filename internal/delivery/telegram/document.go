package telegram

import (
	"context"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/product-catalog/internal/domain/repository"
	"github.com/yourusername/product-catalog/internal/infrastructure/files"
)

// sender subset of the bot API used to deliver messages
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// fileResolver subset of the bot API used to locate uploaded files
type fileResolver interface {
	GetFileDirectURL(fileID string) (string, error)
}

// DocumentSource reads a document a user sent to the bot
type DocumentSource struct {
	resolver fileResolver
	client   *http.Client
	fileID   string
	name     string
	limit    int64
}

var _ repository.ByteSource = (*DocumentSource)(nil)

// NewDocumentSource creates a source for an uploaded document, rejecting files larger than limit bytes
func NewDocumentSource(resolver fileResolver, client *http.Client, doc *tgbotapi.Document, limit int64) *DocumentSource {
	return &DocumentSource{
		resolver: resolver,
		client:   client,
		fileID:   doc.FileID,
		name:     doc.FileName,
		limit:    limit,
	}
}

// Name file name as sent by the user
func (s *DocumentSource) Name() string {
	return s.name
}

// ReadAll downloads the document from Telegram's file storage
func (s *DocumentSource) ReadAll(ctx context.Context) ([]byte, error) {
	fileURL, err := s.resolver.GetFileDirectURL(s.fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download file: status %d", resp.StatusCode)
	}

	return files.NewReaderSource(s.name, resp.Body, s.limit).ReadAll(ctx)
}

// DocumentSink sends generated files back to a chat as documents
type DocumentSink struct {
	bot    sender
	chatID int64
}

var _ repository.Sink = (*DocumentSink)(nil)

// NewDocumentSink creates a sink delivering into chatID
func NewDocumentSink(bot sender, chatID int64) *DocumentSink {
	return &DocumentSink{bot: bot, chatID: chatID}
}

// Write uploads data as a document named filename
func (s *DocumentSink) Write(ctx context.Context, filename, contentType string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := tgbotapi.NewDocument(s.chatID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	doc.Caption = filename
	if _, err := s.bot.Send(doc); err != nil {
		return fmt.Errorf("failed to send %s: %w", filename, err)
	}
	return nil
}

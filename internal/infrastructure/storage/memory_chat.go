package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/domain/repository"
)

type memoryChatRepository struct {
	mu      sync.RWMutex
	history map[int64][]entity.Message
	maxSize int
}

// NewMemoryChatRepository keeps at most maxContextSize exchanges per user
func NewMemoryChatRepository(maxContextSize int) repository.ChatRepository {
	if maxContextSize <= 0 {
		maxContextSize = 1
	}
	return &memoryChatRepository{
		history: make(map[int64][]entity.Message),
		maxSize: maxContextSize,
	}
}

// SaveMessage appends one exchange, dropping the oldest past the limit
func (m *memoryChatRepository) SaveMessage(ctx context.Context, message entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	messages := append(m.history[message.UserID], message)
	if len(messages) > m.maxSize {
		messages = messages[len(messages)-m.maxSize:]
	}
	m.history[message.UserID] = messages
	return nil
}

// GetHistory copy of the last limit exchanges, oldest first
func (m *memoryChatRepository) GetHistory(ctx context.Context, userID int64, limit int) ([]entity.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	messages := m.history[userID]
	if limit > 0 && len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}

	out := make([]entity.Message, len(messages))
	copy(out, messages)
	return out, nil
}

// ClearHistory forgets a user's conversation
func (m *memoryChatRepository) ClearHistory(ctx context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.history, userID)
	return nil
}

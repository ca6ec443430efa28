package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/domain/repository"
)

// maxActivity oldest entries are dropped past this size
const maxActivity = 500

type memoryActivityRepository struct {
	mu      sync.RWMutex
	actions []entity.CatalogAction
}

// NewMemoryActivityRepository in-memory catalog activity log
func NewMemoryActivityRepository() repository.ActivityRepository {
	return &memoryActivityRepository{
		actions: []entity.CatalogAction{},
	}
}

// LogAction records an action, filling in ID and timestamp when missing
func (m *memoryActivityRepository) LogAction(ctx context.Context, action entity.CatalogAction) error {
	if action.ID == "" {
		action.ID = uuid.New().String()
	}
	if action.Timestamp.IsZero() {
		action.Timestamp = time.Now()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.actions = append(m.actions, action)
	if len(m.actions) > maxActivity {
		m.actions = m.actions[len(m.actions)-maxActivity:]
	}
	return nil
}

// Recent newest first; limit <= 0 returns everything
func (m *memoryActivityRepository) Recent(ctx context.Context, limit int) ([]entity.CatalogAction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.actions)
	if limit > 0 && limit < n {
		n = limit
	}

	recent := make([]entity.CatalogAction, 0, n)
	for i := len(m.actions) - 1; i >= 0 && len(recent) < n; i-- {
		recent = append(recent, m.actions[i])
	}
	return recent, nil
}

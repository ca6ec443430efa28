package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/infrastructure/storage"
)

func TestProcessMessage(t *testing.T) {
	ctx := context.Background()
	ai := &fakeAI{response: "Yes, Twix costs $1.29."}
	chat := storage.NewMemoryChatRepository(20)
	uc := NewChatUseCase(ai, chat, storage.NewMemoryCatalogRepository())

	answer, err := uc.ProcessMessage(ctx, 42, "alice", "Do you have Twix?")
	require.NoError(t, err)
	assert.Equal(t, "Yes, Twix costs $1.29.", answer)

	require.Len(t, ai.prompts, 1)
	assert.Contains(t, ai.prompts[0], "Customer: Do you have Twix?")
	assert.Contains(t, ai.prompts[0], "Twix - $1.29 (stock: 60) [SNK002]")
	assert.Empty(t, ai.history[0])

	_, err = uc.ProcessMessage(ctx, 42, "alice", "And Mars?")
	require.NoError(t, err)
	require.Len(t, ai.history[1], 1)
	assert.Equal(t, "Do you have Twix?", ai.history[1][0].Text)

	history, err := uc.GetHistory(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	require.NoError(t, uc.ClearHistory(ctx, 42))
	history, err = uc.GetHistory(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestProcessMessageErrors(t *testing.T) {
	ctx := context.Background()
	chat := storage.NewMemoryChatRepository(20)

	t.Run("assistant disabled", func(t *testing.T) {
		uc := NewChatUseCase(nil, chat, storage.NewMemoryCatalogRepository())
		_, err := uc.ProcessMessage(ctx, 1, "bob", "hi")
		assert.ErrorIs(t, err, ErrAssistantDisabled)
	})

	t.Run("backend failure is not saved", func(t *testing.T) {
		uc := NewChatUseCase(&fakeAI{err: errBoom}, chat, storage.NewMemoryCatalogRepository())
		_, err := uc.ProcessMessage(ctx, 1, "bob", "hi")
		assert.ErrorIs(t, err, errBoom)

		history, err := uc.GetHistory(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}

func TestBuildAssistantPromptEmptyCatalog(t *testing.T) {
	prompt := BuildAssistantPrompt("anything?", []entity.Product{})
	assert.Contains(t, prompt, "catalog is currently empty")
}

package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/domain/repository"
	"github.com/yourusername/product-catalog/internal/usecase"
)

const activityLimit = 10

// BotHandler Telegram bot handler
type BotHandler struct {
	bot            *tgbotapi.BotAPI
	httpClient     *http.Client
	catalogUseCase usecase.CatalogUseCase
	exportUseCase  usecase.ExportUseCase
	chatUseCase    usecase.ChatUseCase
	assistant      bool
	maxUploadBytes int64
}

// NewBotHandler creates the bot. chatUseCase answers free text only when assistant is true.
func NewBotHandler(
	token string,
	catalogUseCase usecase.CatalogUseCase,
	exportUseCase usecase.ExportUseCase,
	chatUseCase usecase.ChatUseCase,
	assistant bool,
	maxUploadMB int,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &BotHandler{
		bot:            bot,
		httpClient:     &http.Client{Timeout: 60 * time.Second},
		catalogUseCase: catalogUseCase,
		exportUseCase:  exportUseCase,
		chatUseCase:    chatUseCase,
		assistant:      assistant,
		maxUploadBytes: int64(maxUploadMB) * 1024 * 1024,
	}, nil
}

// Start polls for updates until ctx is cancelled. Every update is handled on its own goroutine.
func (h *BotHandler) Start(ctx context.Context) error {
	slog.Info("bot started", slog.String("username", h.bot.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			slog.Info("bot stopping")
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			go h.handleMessage(ctx, update.Message)
		}
	}
}

func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil || message.Chat == nil {
		return
	}

	if message.Document != nil {
		h.handleDocumentMessage(ctx, message)
		return
	}

	if message.IsCommand() {
		h.handleCommand(ctx, message)
		return
	}

	if message.Text != "" {
		h.handleTextMessage(ctx, message)
	}
}

func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	args := strings.TrimSpace(message.CommandArguments())

	slog.Debug("command received",
		slog.String("command", message.Command()),
		slog.Int64("user_id", message.From.ID),
	)

	switch message.Command() {
	case "start":
		h.sendMessage(chatID, welcomeMessage(h.assistant))
	case "help":
		h.sendMessage(chatID, helpMessage())
	case "categories":
		h.handleCategoriesCommand(ctx, chatID)
	case "products":
		h.handleProductsCommand(ctx, chatID, args)
	case "search":
		h.handleSearchCommand(ctx, chatID, args)
	case "catalog":
		h.handleCatalogCommand(ctx, chatID)
	case "export":
		h.handleExportCommand(ctx, chatID, args)
	case "export_category":
		h.handleExportCategoryCommand(ctx, chatID, args)
	case "summary":
		h.handleSummaryCommand(ctx, chatID)
	case "template":
		h.handleTemplateCommand(ctx, chatID)
	case "reset":
		h.handleResetCommand(ctx, chatID)
	case "activity":
		h.handleActivityCommand(ctx, chatID)
	case "clear":
		h.handleClearCommand(ctx, message)
	default:
		h.sendMessage(chatID, "Unknown command. See /help.")
	}
}

func (h *BotHandler) handleCategoriesCommand(ctx context.Context, chatID int64) {
	categories, err := h.catalogUseCase.Categories(ctx)
	if err != nil {
		h.sendError(chatID, "Could not load categories", err)
		return
	}
	h.sendMessage(chatID, formatCategories(categories))
}

func (h *BotHandler) handleProductsCommand(ctx context.Context, chatID int64, category string) {
	var (
		products []entity.Product
		err      error
	)
	if category == "" {
		products, err = h.catalogUseCase.GetAll(ctx)
	} else {
		products, err = h.catalogUseCase.GetByCategory(ctx, category)
	}
	if err != nil {
		h.sendError(chatID, "Could not load products", err)
		return
	}

	if len(products) == 0 {
		if category == "" {
			h.sendMessage(chatID, "❌ The catalog is empty. Send an .xlsx file or use /reset.")
		} else {
			h.sendMessage(chatID, fmt.Sprintf("❌ No products in category \"%s\". See /categories.", category))
		}
		return
	}

	h.sendMessage(chatID, fmt.Sprintf("📦 %d product(s):\n\n%s", len(products), usecase.FormatProductsText(products)))
}

func (h *BotHandler) handleSearchCommand(ctx context.Context, chatID int64, query string) {
	if query == "" {
		h.sendMessage(chatID, "Usage: /search <text>")
		return
	}

	products, err := h.catalogUseCase.Search(ctx, query)
	if err != nil {
		h.sendError(chatID, "Search failed", err)
		return
	}
	h.sendMessage(chatID, formatSearchResults(query, products))
}

func (h *BotHandler) handleCatalogCommand(ctx context.Context, chatID int64) {
	info, err := h.catalogUseCase.GetCatalogInfo(ctx)
	if err != nil {
		h.sendError(chatID, "Could not load catalog info", err)
		return
	}
	h.sendMessage(chatID, info)
}

func (h *BotHandler) handleExportCommand(ctx context.Context, chatID int64, profile string) {
	sink := NewDocumentSink(h.bot, chatID)

	var err error
	if profile == "" {
		_, err = h.exportUseCase.Export(ctx, sink, entity.DefaultExportOptions())
	} else {
		_, err = h.exportUseCase.ExportProfile(ctx, sink, entity.ExportProfile(strings.ToLower(profile)))
	}

	if errors.Is(err, repository.ErrUnknownProfile) {
		h.sendMessage(chatID, "Unknown profile. Use /export simple, /export detailed or /export minimal.")
		return
	}
	if err != nil {
		h.sendError(chatID, "Export failed", err)
	}
}

func (h *BotHandler) handleExportCategoryCommand(ctx context.Context, chatID int64, category string) {
	if category == "" {
		h.sendMessage(chatID, "Usage: /export_category <category>. See /categories.")
		return
	}

	if _, err := h.exportUseCase.ExportCategory(ctx, NewDocumentSink(h.bot, chatID), category); err != nil {
		h.sendError(chatID, "Export failed", err)
	}
}

func (h *BotHandler) handleSummaryCommand(ctx context.Context, chatID int64) {
	if _, err := h.exportUseCase.ExportSummary(ctx, NewDocumentSink(h.bot, chatID)); err != nil {
		h.sendError(chatID, "Summary export failed", err)
	}
}

func (h *BotHandler) handleTemplateCommand(ctx context.Context, chatID int64) {
	if _, err := h.catalogUseCase.Template(ctx, NewDocumentSink(h.bot, chatID)); err != nil {
		h.sendError(chatID, "Could not create the template", err)
		return
	}
	h.sendMessage(chatID, "📄 Fill in the template and send it back to import your products.")
}

func (h *BotHandler) handleResetCommand(ctx context.Context, chatID int64) {
	if err := h.catalogUseCase.Reset(ctx); err != nil {
		h.sendError(chatID, "Reset failed", err)
		return
	}
	h.sendMessage(chatID, "✅ Default products restored.")
}

func (h *BotHandler) handleActivityCommand(ctx context.Context, chatID int64) {
	actions, err := h.catalogUseCase.RecentActivity(ctx, activityLimit)
	if err != nil {
		h.sendError(chatID, "Could not load activity", err)
		return
	}
	h.sendMessage(chatID, formatActivity(actions))
}

func (h *BotHandler) handleClearCommand(ctx context.Context, message *tgbotapi.Message) {
	if err := h.chatUseCase.ClearHistory(ctx, message.From.ID); err != nil {
		h.sendError(message.Chat.ID, "Could not clear history", err)
		return
	}
	h.sendMessage(message.Chat.ID, "✅ Conversation cleared.")
}

// handleDocumentMessage imports an uploaded spreadsheet
func (h *BotHandler) handleDocumentMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	doc := message.Document

	if int64(doc.FileSize) > h.maxUploadBytes {
		h.sendMessage(chatID, fmt.Sprintf("❌ The file must not be larger than %d MB.", h.maxUploadBytes/(1024*1024)))
		return
	}
	if !isSpreadsheet(doc.FileName) {
		h.sendMessage(chatID, "❌ Only Excel files (.xlsx) are accepted.")
		return
	}

	h.sendMessage(chatID, "⏳ Importing...")

	src := NewDocumentSource(h.bot, h.httpClient, doc, h.maxUploadBytes)
	count, err := h.catalogUseCase.Import(ctx, src)
	switch {
	case errors.Is(err, repository.ErrTooFewRows):
		h.sendMessage(chatID, "❌ The first sheet needs a header row and at least one product row. The catalog was not changed.")
		return
	case err != nil:
		h.sendError(chatID, "Import failed, the catalog was not changed", err)
		return
	}

	h.sendMessage(chatID, fmt.Sprintf(`✅ Catalog updated!

📦 Products: %d
📄 File: %s

/catalog - Catalog info
/products - All products
/export - Download as JSON`, count, doc.FileName))
}

// handleTextMessage free text goes to the assistant, or to search when it is off
func (h *BotHandler) handleTextMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)

	if !h.assistant {
		h.handleSearchCommand(ctx, chatID, text)
		return
	}

	username := message.From.UserName
	if username == "" {
		username = message.From.FirstName
	}

	typing := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err := h.bot.Request(typing); err != nil {
		slog.Debug("chat action failed", slog.Any("err", err))
	}

	response, err := h.chatUseCase.ProcessMessage(ctx, message.From.ID, username, text)
	if err != nil {
		h.sendError(chatID, "The assistant could not answer right now", err)
		return
	}
	h.sendMessage(chatID, response)
}

// sendMessage sends text, split into several messages when too long
func (h *BotHandler) sendMessage(chatID int64, text string) {
	for _, chunk := range splitMessage(text, maxMessageLen) {
		msg := tgbotapi.NewMessage(chatID, chunk)
		if _, err := h.bot.Send(msg); err != nil {
			slog.Error("failed to send message", slog.Int64("chat_id", chatID), slog.Any("err", err))
			return
		}
	}
}

// sendError logs err and reports it to the user
func (h *BotHandler) sendError(chatID int64, prefix string, err error) {
	slog.Error(prefix, slog.Int64("chat_id", chatID), slog.Any("err", err))
	h.sendMessage(chatID, fmt.Sprintf("❌ %s: %v", prefix, err))
}

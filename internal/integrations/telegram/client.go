package telegram

import (
	"context"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client клиент для отправки сообщений и документов через Telegram Bot API
type Client struct {
	bot *tgbotapi.BotAPI
	log Logger
}

// NewClient создает новый экземпляр клиента Telegram
// Первый вызов проверяет токен запросом getMe
func NewClient(token string, timeout time.Duration, log Logger) (*Client, error) {
	if token == "" {
		return nil, ErrNotConfigured
	}

	httpClient := &http.Client{Timeout: timeout}
	bot, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to authorize bot: %v", ErrInternal, err)
	}

	log.Info("Telegram bot authorized as @%s", bot.Self.UserName)

	return &Client{
		bot: bot,
		log: log,
	}, nil
}

// SendMessage отправляет текстовое сообщение в чат или канал
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := c.bot.Send(msg); err != nil {
		c.log.Error("Telegram: failed to send message to chat_id=%d: %v", chatID, err)
		return fmt.Errorf("%w: chat_id=%d: %v", ErrSendFailed, chatID, err)
	}

	return nil
}

// SendDocument отправляет файл вложением в чат или канал
func (c *Client) SendDocument(ctx context.Context, chatID int64, filename string, data []byte, caption string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  filename,
		Bytes: data,
	})
	doc.Caption = caption

	if _, err := c.bot.Send(doc); err != nil {
		c.log.Error("Telegram: failed to send document %s to chat_id=%d: %v", filename, chatID, err)
		return fmt.Errorf("%w: chat_id=%d: %v", ErrSendFailed, chatID, err)
	}

	return nil
}

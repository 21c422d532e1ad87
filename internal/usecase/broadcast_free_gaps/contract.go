package broadcast_free_gaps

import (
	"context"

	findFreeGaps "github.com/lexagoldenpost/reavito-sub000/internal/usecase/find_free_gaps"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
)

// GapsFinder интерфейс use case поиска свободных окон
type GapsFinder interface {
	Execute(ctx context.Context, req *findFreeGaps.Request) (*findFreeGaps.Response, error)
}

// PropertyRepository интерфейс репозитория объектов размещения
type PropertyRepository interface {
	// GetProperty загружает актуальный снимок объекта по id
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
}

// TelegramClient интерфейс клиента Telegram Bot API
type TelegramClient interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package relay

import "context"

// TelegramClient интерфейс клиента Telegram Bot API
type TelegramClient interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendDocument(ctx context.Context, chatID int64, filename string, data []byte, caption string) error
}

// MetricsRecorder интерфейс для учёта метрик ретрансляции
// Передаётся nil, если метрики выключены
type MetricsRecorder interface {
	IncRelaySent(kind, status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package telegram

import "errors"

var (
	// ErrNotConfigured возвращается, когда токен бота не задан
	ErrNotConfigured = errors.New("telegram client: bot token is not configured")

	// ErrSendFailed возвращается, когда Bot API не принял сообщение
	ErrSendFailed = errors.New("telegram client: failed to send")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("telegram client: internal error")
)

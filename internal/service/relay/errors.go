package relay

import "errors"

var (
	// ErrEmptyPayload возвращается при пустом JSON-объекте
	ErrEmptyPayload = errors.New("relay: payload is empty")

	// ErrSendFailed возвращается, когда Bot API не принял отправку
	ErrSendFailed = errors.New("relay: failed to send")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("relay: internal error")
)

package broadcast_free_gaps

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект не найден
	ErrPropertyNotFound = errors.New("property not found")

	// ErrInvalidRange возвращается при некорректном горизонте
	ErrInvalidRange = errors.New("invalid horizon range")

	// ErrNoFreeGaps возвращается, когда свободных окон нет и отправлять нечего
	ErrNoFreeGaps = errors.New("no free gaps to broadcast")

	// ErrSendFailed возвращается, когда сообщение не удалось отправить в канал
	ErrSendFailed = errors.New("failed to send broadcast")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

package get_occupancy_grid

import "errors"

var (
	// ErrInvalidRange возвращается, когда dateTo не позже dateFrom
	ErrInvalidRange = errors.New("invalid date range")

	// ErrRangeTooLong возвращается, когда диапазон сетки превышает допустимый
	ErrRangeTooLong = errors.New("date range is too long")

	// ErrInvalidGranularity возвращается при неизвестной гранулярности сетки
	ErrInvalidGranularity = errors.New("invalid grid granularity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

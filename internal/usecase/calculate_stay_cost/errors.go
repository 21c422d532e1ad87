package calculate_stay_cost

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект не найден
	ErrPropertyNotFound = errors.New("property not found")

	// ErrInvalidRange возвращается, когда checkOut не позже checkIn
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInvalidDiscount возвращается при проценте скидки вне [0, 100]
	// Значение не клампится: финансовый вывод должен оставаться проверяемым
	ErrInvalidDiscount = errors.New("invalid discount percent")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

package check_availability

import "time"

// Request модель запроса на проверку доступности диапазона дат
type Request struct {
	PropertyID string    // ID объекта размещения
	RangeStart time.Time // Предполагаемый заезд (включительно)
	RangeEnd   time.Time // Предполагаемый выезд (исключительно)
}

// Response модель ответа проверки доступности
type Response struct {
	PropertyID   string
	RangeStart   time.Time
	RangeEnd     time.Time
	Nights       int        // Длина кандидата в ночах
	Available    bool       // true, если весь диапазон свободен
	ConflictDate *time.Time // Первая занятая дата диапазона, nil если конфликта нет
}

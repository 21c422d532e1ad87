package find_free_gaps

import (
	"time"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
)

// Request модель запроса поиска свободных окон
type Request struct {
	PropertyID   string
	HorizonStart time.Time // Начало горизонта (включительно)
	HorizonEnd   time.Time // Конец горизонта (исключительно)

	// MinNights минимальная длина окна в ночах; nil — значение из конфигурации
	MinNights *int
}

// Response модель ответа со списком свободных окон
type Response struct {
	PropertyID   string
	HorizonStart time.Time
	HorizonEnd   time.Time
	MinNights    int
	Gaps         []domain.FreePeriod // Дизъюнктные окна в хронологическом порядке
}

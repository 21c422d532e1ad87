package broadcast_free_gaps

import (
	"time"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
)

// Request модель запроса рассылки свободных окон
type Request struct {
	PropertyID   string
	HorizonStart time.Time
	HorizonEnd   time.Time

	// MinNights минимальная длина окна; nil — значение из конфигурации
	MinNights *int

	// ChatID чат-получатель; nil — канал из конфигурации
	ChatID *int64
}

// Response модель ответа рассылки
type Response struct {
	PropertyID string
	ChatID     int64
	Gaps       []domain.FreePeriod
	Message    string // Итоговый текст сообщения
}

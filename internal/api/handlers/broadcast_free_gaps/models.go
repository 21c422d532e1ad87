package broadcast_free_gaps

import (
	"time"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
	broadcastFreeGaps "github.com/lexagoldenpost/reavito-sub000/internal/usecase/broadcast_free_gaps"
)

// BroadcastRequest HTTP request model
type BroadcastRequest struct {
	From      string `json:"from"` // YYYY-MM-DD
	To        string `json:"to"`   // YYYY-MM-DD
	MinNights *int   `json:"minNights,omitempty"`
	ChatID    *int64 `json:"chatId,omitempty"` // По умолчанию — канал из конфигурации
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BroadcastRequest) ToUseCaseRequest(propertyID string) (*broadcastFreeGaps.Request, error) {
	from, err := time.ParseInLocation(domain.DateFormat, r.From, time.UTC)
	if err != nil {
		return nil, err
	}

	to, err := time.ParseInLocation(domain.DateFormat, r.To, time.UTC)
	if err != nil {
		return nil, err
	}

	return &broadcastFreeGaps.Request{
		PropertyID:   propertyID,
		HorizonStart: from,
		HorizonEnd:   to,
		MinNights:    r.MinNights,
		ChatID:       r.ChatID,
	}, nil
}

// BroadcastResponse HTTP response model
type BroadcastResponse struct {
	PropertyID string `json:"propertyId"`
	ChatID     int64  `json:"chatId"`
	GapCount   int    `json:"gapCount"`
	Message    string `json:"message"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *broadcastFreeGaps.Response) *BroadcastResponse {
	return &BroadcastResponse{
		PropertyID: resp.PropertyID,
		ChatID:     resp.ChatID,
		GapCount:   len(resp.Gaps),
		Message:    resp.Message,
	}
}

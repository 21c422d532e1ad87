package check_availability

import (
	"time"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
	checkAvailability "github.com/lexagoldenpost/reavito-sub000/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	PropertyID   string  `json:"propertyId"`
	From         string  `json:"from"`
	To           string  `json:"to"`
	Nights       int     `json:"nights"`
	Available    bool    `json:"available"`
	ConflictDate *string `json:"conflictDate,omitempty"` // Первая занятая дата диапазона
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		PropertyID: resp.PropertyID,
		From:       resp.RangeStart.Format(domain.DateFormat),
		To:         resp.RangeEnd.Format(domain.DateFormat),
		Nights:     resp.Nights,
		Available:  resp.Available,
	}

	if resp.ConflictDate != nil {
		conflict := resp.ConflictDate.Format(domain.DateFormat)
		out.ConflictDate = &conflict
	}

	return out
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(propertyID, fromStr, toStr string) (*checkAvailability.Request, error) {
	from, err := time.ParseInLocation(domain.DateFormat, fromStr, time.UTC)
	if err != nil {
		return nil, err
	}

	to, err := time.ParseInLocation(domain.DateFormat, toStr, time.UTC)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		PropertyID: propertyID,
		RangeStart: from,
		RangeEnd:   to,
	}, nil
}

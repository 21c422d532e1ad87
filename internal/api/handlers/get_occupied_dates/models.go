package get_occupied_dates

import (
	"time"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
)

// OccupiedDatesResponse HTTP response model
type OccupiedDatesResponse struct {
	PropertyID string   `json:"propertyId"`
	Dates      []string `json:"dates"` // YYYY-MM-DD, по возрастанию
}

// FromDates конвертирует список дат в HTTP response
func FromDates(propertyID string, dates []time.Time) *OccupiedDatesResponse {
	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = d.Format(domain.DateFormat)
	}

	return &OccupiedDatesResponse{
		PropertyID: propertyID,
		Dates:      formatted,
	}
}

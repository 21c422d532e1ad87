package calculate_cost

import (
	"time"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
	calculateStayCost "github.com/lexagoldenpost/reavito-sub000/internal/usecase/calculate_stay_cost"
)

// CalculateCostRequest HTTP request model
type CalculateCostRequest struct {
	CheckIn  string `json:"checkIn"`  // YYYY-MM-DD
	CheckOut string `json:"checkOut"` // YYYY-MM-DD

	// DiscountPercent ручная скидка [0..100]; отсутствие — применить автоскидку
	DiscountPercent *int `json:"discountPercent,omitempty"`

	// AutoDiscountThresholdNights порог автоскидки; отсутствие — порог сервиса
	AutoDiscountThresholdNights *int `json:"autoDiscountThresholdNights,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат)
func (r *CalculateCostRequest) ToUseCaseRequest(propertyID string) (*calculateStayCost.Request, error) {
	checkIn, err := time.ParseInLocation(domain.DateFormat, r.CheckIn, time.UTC)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.ParseInLocation(domain.DateFormat, r.CheckOut, time.UTC)
	if err != nil {
		return nil, err
	}

	return &calculateStayCost.Request{
		PropertyID:                  propertyID,
		CheckIn:                     checkIn,
		CheckOut:                    checkOut,
		DiscountPercent:             r.DiscountPercent,
		AutoDiscountThresholdNights: r.AutoDiscountThresholdNights,
	}, nil
}

// CostResponse HTTP response model
type CostResponse struct {
	PropertyID          string           `json:"propertyId"`
	CheckIn             string           `json:"checkIn"`
	CheckOut            string           `json:"checkOut"`
	Nights              int              `json:"nights"`
	Total               int64            `json:"total"`
	AutoDiscountPercent int              `json:"autoDiscountPercent"`
	AppliedPercent      int              `json:"appliedPercent"`
	Discounted          int64            `json:"discounted"`
	SavedAmount         int64            `json:"savedAmount"`
	Breakdown           []BreakdownEntry `json:"breakdown"`
}

// BreakdownEntry одна ночь в разбивке стоимости
type BreakdownEntry struct {
	Date         string `json:"date"`
	NightlyPrice int64  `json:"nightlyPrice"` // 0 — цена на дату не задана
	Occupied     bool   `json:"occupied"`     // Занята существующей бронью (информационно)
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculateStayCost.Response) *CostResponse {
	breakdown := make([]BreakdownEntry, len(resp.Breakdown))
	for i, e := range resp.Breakdown {
		breakdown[i] = BreakdownEntry{
			Date:         e.Date.Format(domain.DateFormat),
			NightlyPrice: e.NightlyPrice,
			Occupied:     e.Occupied,
		}
	}

	return &CostResponse{
		PropertyID:          resp.PropertyID,
		CheckIn:             resp.CheckIn.Format(domain.DateFormat),
		CheckOut:            resp.CheckOut.Format(domain.DateFormat),
		Nights:              resp.Nights,
		Total:               resp.Total,
		AutoDiscountPercent: resp.AutoDiscountPercent,
		AppliedPercent:      resp.AppliedPercent,
		Discounted:          resp.Discounted,
		SavedAmount:         resp.SavedAmount,
		Breakdown:           breakdown,
	}
}

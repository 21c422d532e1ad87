package get_free_gaps

import (
	"strconv"
	"time"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
	findFreeGaps "github.com/lexagoldenpost/reavito-sub000/internal/usecase/find_free_gaps"
)

// FreeGapsResponse HTTP response model
type FreeGapsResponse struct {
	PropertyID string    `json:"propertyId"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	MinNights  int       `json:"minNights"`
	Gaps       []FreeGap `json:"gaps"`
}

// FreeGap одно свободное окно
type FreeGap struct {
	Start  string `json:"start"` // Включительно
	End    string `json:"end"`   // Исключительно
	Nights int    `json:"nights"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findFreeGaps.Response) *FreeGapsResponse {
	gaps := make([]FreeGap, len(resp.Gaps))
	for i, g := range resp.Gaps {
		gaps[i] = FreeGap{
			Start:  g.Start.Format(domain.DateFormat),
			End:    g.End.Format(domain.DateFormat),
			Nights: g.Nights(),
		}
	}

	return &FreeGapsResponse{
		PropertyID: resp.PropertyID,
		From:       resp.HorizonStart.Format(domain.DateFormat),
		To:         resp.HorizonEnd.Format(domain.DateFormat),
		MinNights:  resp.MinNights,
		Gaps:       gaps,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(propertyID, fromStr, toStr, minNightsStr string) (*findFreeGaps.Request, error) {
	from, err := time.ParseInLocation(domain.DateFormat, fromStr, time.UTC)
	if err != nil {
		return nil, err
	}

	to, err := time.ParseInLocation(domain.DateFormat, toStr, time.UTC)
	if err != nil {
		return nil, err
	}

	req := &findFreeGaps.Request{
		PropertyID:   propertyID,
		HorizonStart: from,
		HorizonEnd:   to,
	}

	if minNightsStr != "" {
		minNights, err := strconv.Atoi(minNightsStr)
		if err != nil {
			return nil, err
		}
		req.MinNights = &minNights
	}

	return req, nil
}

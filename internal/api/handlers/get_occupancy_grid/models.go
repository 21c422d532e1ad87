package get_occupancy_grid

import (
	"time"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
	getOccupancyGrid "github.com/lexagoldenpost/reavito-sub000/internal/usecase/get_occupancy_grid"
)

// GridResponse HTTP response model
type GridResponse struct {
	From        string   `json:"from"`
	To          string   `json:"to"`
	Granularity string   `json:"granularity"`
	Dates       []string `json:"dates"`
	Rows        []Row    `json:"rows"`
}

// Row строка сетки для одного объекта
type Row struct {
	PropertyID   string        `json:"propertyId"`
	DisplayName  string        `json:"displayName"`
	DayCells     []DayCell     `json:"dayCells,omitempty"`
	HalfDayCells []HalfDayCell `json:"halfDayCells,omitempty"`
	Segments     []Segment     `json:"segments,omitempty"`
}

// DayCell ячейка полнодневной сетки
type DayCell struct {
	Date        string `json:"date"`
	State       string `json:"state"`
	GuestName   string `json:"guestName,omitempty"`
	TotalAmount int64  `json:"totalAmount,omitempty"`
	Price       *int64 `json:"price,omitempty"`
}

// HalfDayCell ячейка полудневной сетки
type HalfDayCell struct {
	Date        string `json:"date"`
	Part        string `json:"part"`
	Occupied    bool   `json:"occupied"`
	GuestName   string `json:"guestName,omitempty"`
	TotalAmount int64  `json:"totalAmount,omitempty"`
}

// Segment слитый фрагмент строки для отрисовки
type Segment struct {
	Kind        string     `json:"kind"`
	Start       string     `json:"start"`
	StartPart   string     `json:"startPart"`
	HalfDays    int        `json:"halfDays"`
	GuestName   string     `json:"guestName,omitempty"`
	TotalAmount int64      `json:"totalAmount,omitempty"`
	Prices      []DayPrice `json:"prices,omitempty"`
}

// DayPrice цена одной ночи внутри свободного сегмента
type DayPrice struct {
	Date  string `json:"date"`
	Price *int64 `json:"price,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOccupancyGrid.Response) *GridResponse {
	dates := make([]string, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = d.Format(domain.DateFormat)
	}

	rows := make([]Row, len(resp.Rows))
	for i, r := range resp.Rows {
		row := Row{
			PropertyID:  r.PropertyID,
			DisplayName: r.DisplayName,
		}

		for _, c := range r.DayCells {
			row.DayCells = append(row.DayCells, DayCell{
				Date:        c.Date.Format(domain.DateFormat),
				State:       string(c.State),
				GuestName:   c.GuestName,
				TotalAmount: c.TotalAmount,
				Price:       c.Price,
			})
		}

		for _, c := range r.HalfDayCells {
			row.HalfDayCells = append(row.HalfDayCells, HalfDayCell{
				Date:        c.Date.Format(domain.DateFormat),
				Part:        string(c.Part),
				Occupied:    c.Occupied,
				GuestName:   c.GuestName,
				TotalAmount: c.TotalAmount,
			})
		}

		for _, s := range r.Segments {
			seg := Segment{
				Kind:        string(s.Kind),
				Start:       s.Start.Format(domain.DateFormat),
				StartPart:   string(s.StartPart),
				HalfDays:    s.HalfDays,
				GuestName:   s.GuestName,
				TotalAmount: s.TotalAmount,
			}
			for _, p := range s.Prices {
				seg.Prices = append(seg.Prices, DayPrice{
					Date:  p.Date.Format(domain.DateFormat),
					Price: p.Price,
				})
			}
			row.Segments = append(row.Segments, seg)
		}

		rows[i] = row
	}

	return &GridResponse{
		From:        resp.DateFrom.Format(domain.DateFormat),
		To:          resp.DateTo.Format(domain.DateFormat),
		Granularity: string(resp.Granularity),
		Dates:       dates,
		Rows:        rows,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
// Пустая гранулярность по умолчанию — полнодневная сетка
func ToUseCaseRequest(fromStr, toStr, granularityStr string) (*getOccupancyGrid.Request, error) {
	from, err := time.ParseInLocation(domain.DateFormat, fromStr, time.UTC)
	if err != nil {
		return nil, err
	}

	to, err := time.ParseInLocation(domain.DateFormat, toStr, time.UTC)
	if err != nil {
		return nil, err
	}

	granularity := getOccupancyGrid.Granularity(granularityStr)
	if granularityStr == "" {
		granularity = getOccupancyGrid.GranularityFullDay
	}

	return &getOccupancyGrid.Request{
		DateFrom:    from,
		DateTo:      to,
		Granularity: granularity,
	}, nil
}

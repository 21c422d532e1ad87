package get_occupancy_grid

import (
	"time"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
)

// Granularity гранулярность ячеек сетки
type Granularity string

const (
	// GranularityFullDay одна ячейка на дату с маркерами заезда/выезда
	GranularityFullDay Granularity = "full-day"

	// GranularityHalfDay две ячейки на дату (утро/вечер), смежные брони делят дату
	GranularityHalfDay Granularity = "half-day"
)

// Request модель запроса сетки занятости ("шахматки")
type Request struct {
	DateFrom    time.Time // Начало диапазона (включительно)
	DateTo      time.Time // Конец диапазона (исключительно)
	Granularity Granularity
}

// Response структурное описание сетки
// Это чистое описание занятости, верстка — забота представления
type Response struct {
	DateFrom    time.Time
	DateTo      time.Time
	Granularity Granularity
	Dates       []time.Time
	Rows        []PropertyRow
}

// PropertyRow строка сетки для одного объекта
type PropertyRow struct {
	PropertyID  string
	DisplayName string

	// DayCells заполняется для гранулярности full-day
	DayCells []DayCell

	// HalfDayCells факты занятости по половинам суток (гранулярность half-day)
	HalfDayCells []HalfDayCell

	// Segments слитое представление half-day ячеек для отрисовки
	Segments []Segment
}

// DayCell ячейка полнодневной сетки
type DayCell struct {
	Date  time.Time
	State domain.CellState

	// GuestName и TotalAmount заполняются только на стартовой ячейке брони
	GuestName   string
	TotalAmount int64

	// Price цена ночи для незанятых ячеек; nil — цена не задана
	Price *int64
}

// HalfDayCell ячейка полудневной сетки
// Вечер даты занимает заезжающая бронь, утро — выезжающая
type HalfDayCell struct {
	Date     time.Time
	Part     domain.DayPart
	Occupied bool

	// GuestName и TotalAmount заполняются только на стартовой ячейке брони (вечер заезда)
	GuestName   string
	TotalAmount int64
}

// SegmentKind тип слитого сегмента
type SegmentKind string

const (
	SegmentBooking SegmentKind = "booking"
	SegmentFree    SegmentKind = "free"
)

// Segment непрерывный по половинам суток фрагмент строки
// Подпись гостя одна на весь сегмент брони, а не на каждую дату
type Segment struct {
	Kind      SegmentKind
	Start     time.Time
	StartPart domain.DayPart
	HalfDays  int // Длина сегмента в половинах суток

	// Для сегментов брони
	GuestName   string
	TotalAmount int64

	// Для свободных сегментов: цены ночей, начинающихся внутри сегмента
	Prices []DayPrice
}

// DayPrice цена одной ночи; Price nil — цена не задана
type DayPrice struct {
	Date  time.Time
	Price *int64
}

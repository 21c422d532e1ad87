package domain

// CellState represents the occupancy state of one full-day grid cell
type CellState string

const (
	CellAvailable CellState = "available" // Ни одна бронь не касается даты
	CellBooked    CellState = "booked"    // Строго внутри интервала брони
	CellCheckIn   CellState = "checkin"   // Дата заезда
	CellCheckOut  CellState = "checkout"  // Дата выезда
	CellSameDay   CellState = "same-day"  // Заезд и выезд в один день (защитная ветка, см. GridCellStates)
)

// DayPart represents one half of a calendar day in the half-day grid
type DayPart string

const (
	PartMorning DayPart = "morning" // Утро: занято выезжающей бронью
	PartEvening DayPart = "evening" // Вечер: занято заезжающей бронью
)

// GridCellStates перечисляет все состояния ячейки в порядке приоритета классификации:
// same-day > checkin > checkout > booked > available
// same-day недостижим при строгой валидации checkOut > checkIn на инжесте
// и сохранён как защитный случай для legacy-данных
var GridCellStates = []CellState{
	CellSameDay,
	CellCheckIn,
	CellCheckOut,
	CellBooked,
	CellAvailable,
}

package get_occupancy_grid

import (
	"time"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
)

// classifyFullDay классифицирует дату по всему набору броней объекта
// Результат — функция даты и набора броней, порядок обхода на него не влияет:
// сначала собираются все кандидаты, затем применяется приоритет
// same-day > checkin > checkout > booked > available
// Вторым значением возвращается бронь, начинающаяся в эту дату (для подписи)
func classifyFullDay(bookings []domain.BookingInterval, date time.Time) (domain.CellState, *domain.BookingInterval) {
	var sameDay, checkIn, checkOut, interior *domain.BookingInterval

	for i := range bookings {
		b := &bookings[i]
		switch {
		case b.CheckIn.Equal(date) && b.CheckOut.Equal(date):
			// Бронь нулевой длины отсеивается на инжесте; ветка защитная
			if sameDay == nil {
				sameDay = b
			}
		case b.CheckIn.Equal(date):
			if checkIn == nil {
				checkIn = b
			}
		case b.CheckOut.Equal(date):
			if checkOut == nil {
				checkOut = b
			}
		case b.CheckIn.Before(date) && date.Before(b.CheckOut):
			if interior == nil {
				interior = b
			}
		}
	}

	switch {
	case sameDay != nil:
		return domain.CellSameDay, sameDay
	case checkIn != nil:
		return domain.CellCheckIn, checkIn
	case checkOut != nil:
		return domain.CellCheckOut, nil
	case interior != nil:
		return domain.CellBooked, nil
	default:
		return domain.CellAvailable, nil
	}
}

// buildFullDayRow строит полнодневную строку сетки для одного объекта
func buildFullDayRow(prop *domain.Property, dates []time.Time) []DayCell {
	cells := make([]DayCell, len(dates))

	for i, date := range dates {
		state, starting := classifyFullDay(prop.Bookings, date)

		cell := DayCell{Date: date, State: state}

		// Подпись гостя — только на стартовой ячейке брони
		if starting != nil {
			cell.GuestName = starting.GuestName
			cell.TotalAmount = starting.TotalAmount
		}

		// Цена ночи показывается на свободных ячейках; отсутствие цены — пустая ячейка
		if state == domain.CellAvailable {
			if price, ok := prop.PriceFor(date); ok {
				cell.Price = &price
			}
		}

		cells[i] = cell
	}

	return cells
}

// halfDayOccupant возвращает бронь, занимающую половину суток, или nil
// Бронь занимает: вечер даты заезда, обе половины внутренних дат, утро даты выезда
// Так выезд утром и новый заезд вечером того же дня сосуществуют без конфликта
func halfDayOccupant(bookings []domain.BookingInterval, date time.Time, part domain.DayPart) *domain.BookingInterval {
	for i := range bookings {
		b := &bookings[i]
		if part == domain.PartEvening {
			if !date.Before(b.CheckIn) && date.Before(b.CheckOut) {
				return b
			}
		} else {
			if date.After(b.CheckIn) && !date.After(b.CheckOut) {
				return b
			}
		}
	}
	return nil
}

// halfCell внутреннее представление ячейки вместе с занимающей её бронью
type halfCell struct {
	cell     HalfDayCell
	occupant *domain.BookingInterval
}

// buildHalfDayCells строит полудневные ячейки строки в порядке: утро даты, вечер даты
func buildHalfDayCells(prop *domain.Property, dates []time.Time) []halfCell {
	cells := make([]halfCell, 0, len(dates)*2)

	for _, date := range dates {
		for _, part := range []domain.DayPart{domain.PartMorning, domain.PartEvening} {
			b := halfDayOccupant(prop.Bookings, date, part)

			cell := HalfDayCell{
				Date:     date,
				Part:     part,
				Occupied: b != nil,
			}

			// Стартовая ячейка брони — вечер заезда; подпись только на ней
			if b != nil && part == domain.PartEvening && b.CheckIn.Equal(date) {
				cell.GuestName = b.GuestName
				cell.TotalAmount = b.TotalAmount
			}

			cells = append(cells, halfCell{cell: cell, occupant: b})
		}
	}

	return cells
}

// buildSegments сливает полудневные ячейки в сегменты для отрисовки
// Слияние чисто презентационное: свободный вечер и свободное утро следующей даты
// образуют один видимый сегмент, но факты занятости остаются по половинам суток
func buildSegments(prop *domain.Property, cells []halfCell) []Segment {
	var segments []Segment

	for i := 0; i < len(cells); {
		cur := cells[i]

		if cur.occupant != nil {
			// Сегмент брони: все подряд идущие половины той же брони
			seg := Segment{
				Kind:        SegmentBooking,
				Start:       cur.cell.Date,
				StartPart:   cur.cell.Part,
				GuestName:   cur.occupant.GuestName,
				TotalAmount: cur.occupant.TotalAmount,
			}
			for i < len(cells) && cells[i].occupant == cur.occupant {
				seg.HalfDays++
				i++
			}
			segments = append(segments, seg)
			continue
		}

		// Свободный сегмент: подряд идущие свободные половины
		seg := Segment{
			Kind:      SegmentFree,
			Start:     cur.cell.Date,
			StartPart: cur.cell.Part,
		}
		for i < len(cells) && cells[i].occupant == nil {
			// Ночь начинается вечером; цена сегмента собирается по вечерним половинам
			if cells[i].cell.Part == domain.PartEvening {
				dp := DayPrice{Date: cells[i].cell.Date}
				if price, ok := prop.PriceFor(cells[i].cell.Date); ok {
					dp.Price = &price
				}
				seg.Prices = append(seg.Prices, dp)
			}
			seg.HalfDays++
			i++
		}
		segments = append(segments, seg)
	}

	return segments
}

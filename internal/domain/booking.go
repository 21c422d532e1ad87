package domain

import "time"

// BookingInterval represents one stay as a half-open date interval [CheckIn, CheckOut)
type BookingInterval struct {
	GuestName   string
	CreatedAt   time.Time // Дата создания брони из внешнего источника (для отображения)
	CheckIn     time.Time // Первая занятая ночь
	CheckOut    time.Time // День выезда; сам по себе свободен для нового заезда
	TotalAmount int64
}

// Nights returns the number of occupied nights in the interval
func (b *BookingInterval) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// ContainsDate returns true if the date is an occupied night of this booking
// Интервал полуоткрытый: CheckIn занят, CheckOut свободен (правило turnover)
func (b *BookingInterval) ContainsDate(date time.Time) bool {
	return !date.Before(b.CheckIn) && date.Before(b.CheckOut)
}

// OverlapsRange returns true if the booking really overlaps [rangeStart, rangeEnd)
// Граничные случаи (checkOut == rangeStart или checkIn == rangeEnd) пересечением не считаются
func (b *BookingInterval) OverlapsRange(rangeStart, rangeEnd time.Time) bool {
	return b.CheckIn.Before(rangeEnd) && rangeStart.Before(b.CheckOut)
}

// IsValid returns true if the interval has positive length
func (b *BookingInterval) IsValid() bool {
	return b.CheckOut.After(b.CheckIn)
}

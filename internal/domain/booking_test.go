package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestBookingInterval_Nights(t *testing.T) {
	b := BookingInterval{
		CheckIn:  date(2026, 7, 10),
		CheckOut: date(2026, 7, 15),
	}
	assert.Equal(t, 5, b.Nights())
}

func TestBookingInterval_ContainsDate(t *testing.T) {
	b := BookingInterval{
		CheckIn:  date(2026, 7, 10),
		CheckOut: date(2026, 7, 15),
	}

	// Дата заезда занята
	assert.True(t, b.ContainsDate(date(2026, 7, 10)))

	// Внутренние даты заняты
	assert.True(t, b.ContainsDate(date(2026, 7, 12)))
	assert.True(t, b.ContainsDate(date(2026, 7, 14)))

	// Дата выезда свободна: интервал полуоткрытый
	assert.False(t, b.ContainsDate(date(2026, 7, 15)))

	// За пределами интервала
	assert.False(t, b.ContainsDate(date(2026, 7, 9)))
	assert.False(t, b.ContainsDate(date(2026, 7, 16)))
}

func TestBookingInterval_OverlapsRange(t *testing.T) {
	b := BookingInterval{
		CheckIn:  date(2026, 7, 10),
		CheckOut: date(2026, 7, 15),
	}

	// Полное пересечение
	assert.True(t, b.OverlapsRange(date(2026, 7, 1), date(2026, 7, 31)))

	// Частичные пересечения с обеих сторон
	assert.True(t, b.OverlapsRange(date(2026, 7, 8), date(2026, 7, 11)))
	assert.True(t, b.OverlapsRange(date(2026, 7, 14), date(2026, 7, 20)))

	// Смежные диапазоны пересечением не считаются (правило turnover)
	assert.False(t, b.OverlapsRange(date(2026, 7, 15), date(2026, 7, 20)))
	assert.False(t, b.OverlapsRange(date(2026, 7, 5), date(2026, 7, 10)))

	assert.False(t, b.OverlapsRange(date(2026, 7, 20), date(2026, 7, 25)))
}

func TestBookingInterval_IsValid(t *testing.T) {
	valid := BookingInterval{CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 11)}
	assert.True(t, valid.IsValid())

	zeroLength := BookingInterval{CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 10)}
	assert.False(t, zeroLength.IsValid())

	inverted := BookingInterval{CheckIn: date(2026, 7, 15), CheckOut: date(2026, 7, 10)}
	assert.False(t, inverted.IsValid())
}

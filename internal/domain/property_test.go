package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProperty() *Property {
	return &Property{
		ID:          "hatanga-12",
		DisplayName: "Хатанга 12",
		Bookings: []BookingInterval{
			{GuestName: "Иван", CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 15), TotalAmount: 25000},
			{GuestName: "Мария", CheckIn: date(2026, 7, 15), CheckOut: date(2026, 7, 20), TotalAmount: 27500},
		},
		PriceRules: []PriceRule{
			{Month: time.July, DayStart: 1, DayEnd: 15, Price: 5000},
			{Month: time.July, DayStart: 16, DayEnd: 31, Price: 5500},
		},
	}
}

func TestProperty_IsOccupied(t *testing.T) {
	p := testProperty()

	assert.True(t, p.IsOccupied(date(2026, 7, 10)))
	assert.True(t, p.IsOccupied(date(2026, 7, 14)))

	// 15 июля: выезд первой брони и заезд второй — ночь занята второй бронью
	assert.True(t, p.IsOccupied(date(2026, 7, 15)))

	// Выезд последней брони свободен
	assert.False(t, p.IsOccupied(date(2026, 7, 20)))
	assert.False(t, p.IsOccupied(date(2026, 7, 9)))
}

func TestProperty_OccupiedDates(t *testing.T) {
	p := testProperty()

	dates := p.OccupiedDates()
	require.Len(t, dates, 10)

	// Отсортированы по возрастанию, без дублей
	assert.Equal(t, date(2026, 7, 10), dates[0])
	assert.Equal(t, date(2026, 7, 19), dates[len(dates)-1])
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i-1].Before(dates[i]))
	}
}

func TestProperty_FindConflict(t *testing.T) {
	p := testProperty()

	// Конфликт: возвращается первая занятая дата
	conflict, found := p.FindConflict(date(2026, 7, 8), date(2026, 7, 12))
	require.True(t, found)
	assert.Equal(t, date(2026, 7, 10), conflict)

	// Диапазон целиком внутри брони
	conflict, found = p.FindConflict(date(2026, 7, 12), date(2026, 7, 14))
	require.True(t, found)
	assert.Equal(t, date(2026, 7, 12), conflict)

	// Back-to-back: заезд в день выезда последней брони — без конфликта
	_, found = p.FindConflict(date(2026, 7, 20), date(2026, 7, 25))
	assert.False(t, found)

	// Полностью свободный диапазон
	_, found = p.FindConflict(date(2026, 7, 1), date(2026, 7, 10))
	assert.False(t, found)
}

func TestProperty_PriceFor(t *testing.T) {
	p := testProperty()

	price, ok := p.PriceFor(date(2026, 7, 10))
	require.True(t, ok)
	assert.Equal(t, int64(5000), price)

	price, ok = p.PriceFor(date(2026, 7, 16))
	require.True(t, ok)
	assert.Equal(t, int64(5500), price)

	// Месяц без правил — цена не задана, это не ошибка
	_, ok = p.PriceFor(date(2026, 9, 1))
	assert.False(t, ok)
}

func TestProperty_PriceFor_FirstMatchWins(t *testing.T) {
	p := &Property{
		PriceRules: []PriceRule{
			{Month: time.July, DayStart: 1, DayEnd: 31, Price: 5000},
			{Month: time.July, DayStart: 10, DayEnd: 20, Price: 9000},
		},
	}

	// Перекрывающиеся правила: побеждает первое в исходном порядке
	price, ok := p.PriceFor(date(2026, 7, 15))
	require.True(t, ok)
	assert.Equal(t, int64(5000), price)
}

func TestDatesBetween(t *testing.T) {
	dates := DatesBetween(date(2026, 7, 10), date(2026, 7, 13))
	require.Len(t, dates, 3)
	assert.Equal(t, date(2026, 7, 10), dates[0])
	assert.Equal(t, date(2026, 7, 12), dates[2])

	// Пустой полуоткрытый диапазон
	assert.Empty(t, DatesBetween(date(2026, 7, 10), date(2026, 7, 10)))
}

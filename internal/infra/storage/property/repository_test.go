package property

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexagoldenpost/reavito-sub000/internal/config"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func testRepo(t *testing.T, bookingsCSV, pricesCSV string) *Repository {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "bookings.csv", bookingsCSV)
	writeFile(t, dir, "prices.csv", pricesCSV)

	return NewRepository(dir, []config.PropertyConfig{
		{ID: "hatanga-12", Name: "Хатанга 12", BookingsFile: "bookings.csv", PricesFile: "prices.csv"},
	}, nil)
}

const validBookings = `guestName;createdAt;checkIn;checkOut;totalAmount
Иван Петров;01.06.2026;10.07.2026;15.07.2026;25000
Мария Смирнова;05.06.2026;15.07.2026;20.07.2026;27500
`

const validPrices = `month;dayStart;dayEnd;price
июль;1;15;5000
июль;16;31;5500
`

func TestRepository_GetProperty(t *testing.T) {
	repo := testRepo(t, validBookings, validPrices)

	prop, err := repo.GetProperty(context.Background(), "hatanga-12")
	require.NoError(t, err)

	assert.Equal(t, "hatanga-12", prop.ID)
	assert.Equal(t, "Хатанга 12", prop.DisplayName)

	require.Len(t, prop.Bookings, 2)
	b := prop.Bookings[0]
	assert.Equal(t, "Иван Петров", b.GuestName)
	assert.Equal(t, date(2026, 6, 1), b.CreatedAt)
	assert.Equal(t, date(2026, 7, 10), b.CheckIn)
	assert.Equal(t, date(2026, 7, 15), b.CheckOut)
	assert.Equal(t, int64(25000), b.TotalAmount)

	require.Len(t, prop.PriceRules, 2)
	assert.Equal(t, time.July, prop.PriceRules[0].Month)
	assert.Equal(t, int64(5000), prop.PriceRules[0].Price)
}

func TestRepository_GetProperty_NotFound(t *testing.T) {
	repo := testRepo(t, validBookings, validPrices)

	_, err := repo.GetProperty(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestRepository_GetProperty_MissingFile(t *testing.T) {
	repo := NewRepository(t.TempDir(), []config.PropertyConfig{
		{ID: "hatanga-12", Name: "Хатанга 12", BookingsFile: "nope.csv", PricesFile: "nope2.csv"},
	}, nil)

	_, err := repo.GetProperty(context.Background(), "hatanga-12")
	assert.ErrorIs(t, err, ErrOpenFile)
}

func TestRepository_LoadSnapshot_SkipsBadRows(t *testing.T) {
	bookings := `guestName;createdAt;checkIn;checkOut;totalAmount
Иван Петров;01.06.2026;10.07.2026;15.07.2026;25000
Битая строка;не дата;10.07.2026;15.07.2026;100
Инверсия;01.06.2026;20.07.2026;10.07.2026;100
Нулевая длина;01.06.2026;10.07.2026;10.07.2026;100
Мало колонок;01.06.2026
`
	prices := `month;dayStart;dayEnd;price
июль;1;15;5000
мартобрь;1;15;5000
июль;20;10;5000
июль;1;15;-100
`
	repo := testRepo(t, bookings, prices)

	snapshot, err := repo.LoadSnapshot(context.Background())
	require.NoError(t, err)

	prop := snapshot.Properties["hatanga-12"]
	require.NotNil(t, prop)

	// Валидные строки загружены, битые отброшены без прерывания загрузки
	require.Len(t, prop.Bookings, 1)
	assert.Equal(t, "Иван Петров", prop.Bookings[0].GuestName)
	require.Len(t, prop.PriceRules, 1)

	// Каждая отброшенная строка в отчёте с файлом и номером строки
	require.Len(t, snapshot.Skipped, 7)
	assert.Equal(t, "bookings.csv", snapshot.Skipped[0].File)
	assert.Equal(t, 3, snapshot.Skipped[0].Line)
	assert.NotEmpty(t, snapshot.Skipped[0].Reason)
	assert.Equal(t, "prices.csv", snapshot.Skipped[4].File)
}

func TestRepository_LoadSnapshot_Order(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a_bookings.csv", validBookings)
	writeFile(t, dir, "a_prices.csv", validPrices)
	writeFile(t, dir, "b_bookings.csv", validBookings)
	writeFile(t, dir, "b_prices.csv", validPrices)

	repo := NewRepository(dir, []config.PropertyConfig{
		{ID: "sochi-5", Name: "Сочи 5", BookingsFile: "b_bookings.csv", PricesFile: "b_prices.csv"},
		{ID: "hatanga-12", Name: "Хатанга 12", BookingsFile: "a_bookings.csv", PricesFile: "a_prices.csv"},
	}, nil)

	snapshot, err := repo.LoadSnapshot(context.Background())
	require.NoError(t, err)

	// Порядок снимка повторяет порядок конфигурации, не алфавитный
	assert.Equal(t, []string{"sochi-5", "hatanga-12"}, snapshot.Order)
	assert.Len(t, snapshot.Properties, 2)
}

func TestParsePriceRow_MonthNormalization(t *testing.T) {
	// Регистр и пробелы в названии месяца не важны
	rule, err := parsePriceRow([]string{" Июль ", "1", "15", "5000"})
	require.NoError(t, err)
	assert.Equal(t, time.July, rule.Month)

	rule, err = parsePriceRow([]string{"ДЕКАБРЬ", "1", "31", "7000"})
	require.NoError(t, err)
	assert.Equal(t, time.December, rule.Month)

	_, err = parsePriceRow([]string{"july", "1", "15", "5000"})
	assert.Error(t, err)
}

func TestParseBookingRow_EmptyAmount(t *testing.T) {
	// Пустая сумма допустима: бронь без известной стоимости
	b, err := parseBookingRow([]string{"Иван", "01.06.2026", "10.07.2026", "15.07.2026", ""})
	require.NoError(t, err)
	assert.Equal(t, int64(0), b.TotalAmount)

	_, err = parseBookingRow([]string{"Иван", "01.06.2026", "10.07.2026", "15.07.2026", "-5"})
	assert.Error(t, err)
}

package get_occupancy_grid

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
	propertyRepo "github.com/lexagoldenpost/reavito-sub000/internal/infra/storage/property"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type noopLogger struct{}

var _ Logger = (*noopLogger)(nil)

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestClassifyFullDay(t *testing.T) {
	bookings := []domain.BookingInterval{
		{GuestName: "Иван", CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 15)},
	}

	tests := []struct {
		name string
		date time.Time
		want domain.CellState
	}{
		{"before booking", date(2026, 7, 9), domain.CellAvailable},
		{"check-in date", date(2026, 7, 10), domain.CellCheckIn},
		{"interior date", date(2026, 7, 12), domain.CellBooked},
		{"check-out date", date(2026, 7, 15), domain.CellCheckOut},
		{"after booking", date(2026, 7, 16), domain.CellAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, _ := classifyFullDay(bookings, tt.date)
			assert.Equal(t, tt.want, state)
		})
	}
}

func TestClassifyFullDay_TurnoverDate(t *testing.T) {
	// Выезд одной брони и заезд другой в один день: checkin важнее checkout
	bookings := []domain.BookingInterval{
		{GuestName: "Иван", CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 15)},
		{GuestName: "Мария", CheckIn: date(2026, 7, 15), CheckOut: date(2026, 7, 20)},
	}

	state, starting := classifyFullDay(bookings, date(2026, 7, 15))
	assert.Equal(t, domain.CellCheckIn, state)
	require.NotNil(t, starting)
	assert.Equal(t, "Мария", starting.GuestName)

	// Результат не зависит от порядка обхода броней
	reversed := []domain.BookingInterval{bookings[1], bookings[0]}
	state, starting = classifyFullDay(reversed, date(2026, 7, 15))
	assert.Equal(t, domain.CellCheckIn, state)
	require.NotNil(t, starting)
	assert.Equal(t, "Мария", starting.GuestName)
}

func TestClassifyFullDay_SameDayPriority(t *testing.T) {
	// Бронь нулевой длины в данных legacy: метка same-day важнее остальных
	bookings := []domain.BookingInterval{
		{GuestName: "Иван", CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 15)},
		{GuestName: "Ошибка", CheckIn: date(2026, 7, 12), CheckOut: date(2026, 7, 12)},
	}

	state, _ := classifyFullDay(bookings, date(2026, 7, 12))
	assert.Equal(t, domain.CellSameDay, state)
}

func TestBuildFullDayRow(t *testing.T) {
	price := int64(5000)
	prop := &domain.Property{
		ID:          "hatanga-12",
		DisplayName: "Хатанга 12",
		Bookings: []domain.BookingInterval{
			{GuestName: "Иван", TotalAmount: 25000, CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 12)},
		},
		PriceRules: []domain.PriceRule{
			{Month: time.July, DayStart: 1, DayEnd: 31, Price: price},
		},
	}

	dates := domain.DatesBetween(date(2026, 7, 9), date(2026, 7, 13))
	cells := buildFullDayRow(prop, dates)
	require.Len(t, cells, 4)

	// Свободная ячейка несёт цену
	assert.Equal(t, domain.CellAvailable, cells[0].State)
	require.NotNil(t, cells[0].Price)
	assert.Equal(t, price, *cells[0].Price)

	// Подпись гостя — только на стартовой ячейке
	assert.Equal(t, domain.CellCheckIn, cells[1].State)
	assert.Equal(t, "Иван", cells[1].GuestName)
	assert.Equal(t, int64(25000), cells[1].TotalAmount)
	assert.Nil(t, cells[1].Price)

	assert.Equal(t, domain.CellBooked, cells[2].State)
	assert.Empty(t, cells[2].GuestName)

	// Ячейка выезда без цены: день не полностью свободен
	assert.Equal(t, domain.CellCheckOut, cells[3].State)
	assert.Nil(t, cells[3].Price)
}

func TestHalfDayOccupant_Turnover(t *testing.T) {
	first := domain.BookingInterval{GuestName: "Иван", CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 15)}
	second := domain.BookingInterval{GuestName: "Мария", CheckIn: date(2026, 7, 15), CheckOut: date(2026, 7, 20)}
	bookings := []domain.BookingInterval{first, second}

	// День turnover: утро занято выезжающим, вечер — заезжающим
	morning := halfDayOccupant(bookings, date(2026, 7, 15), domain.PartMorning)
	require.NotNil(t, morning)
	assert.Equal(t, "Иван", morning.GuestName)

	evening := halfDayOccupant(bookings, date(2026, 7, 15), domain.PartEvening)
	require.NotNil(t, evening)
	assert.Equal(t, "Мария", evening.GuestName)

	// Обычный занятый день: обе половины у одной брони
	assert.Equal(t, "Иван", halfDayOccupant(bookings, date(2026, 7, 12), domain.PartMorning).GuestName)
	assert.Equal(t, "Иван", halfDayOccupant(bookings, date(2026, 7, 12), domain.PartEvening).GuestName)

	// День заезда: утро свободно
	assert.Nil(t, halfDayOccupant(bookings, date(2026, 7, 10), domain.PartMorning))
	// День выезда последней брони: вечер свободен
	assert.Nil(t, halfDayOccupant(bookings, date(2026, 7, 20), domain.PartEvening))
}

func TestBuildHalfDayCells_LabelOnCheckInEvening(t *testing.T) {
	prop := &domain.Property{
		Bookings: []domain.BookingInterval{
			{GuestName: "Иван", TotalAmount: 25000, CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 12)},
		},
	}

	cells := buildHalfDayCells(prop, domain.DatesBetween(date(2026, 7, 10), date(2026, 7, 13)))
	require.Len(t, cells, 6)

	// Утро 10-го свободно, вечер 10-го — стартовая ячейка с подписью
	assert.False(t, cells[0].cell.Occupied)
	assert.True(t, cells[1].cell.Occupied)
	assert.Equal(t, "Иван", cells[1].cell.GuestName)
	assert.Equal(t, int64(25000), cells[1].cell.TotalAmount)

	// Внутренние половины заняты, но без подписи
	assert.True(t, cells[2].cell.Occupied)
	assert.Empty(t, cells[2].cell.GuestName)
	assert.True(t, cells[3].cell.Occupied)

	// Утро выезда занято, вечер свободен
	assert.True(t, cells[4].cell.Occupied)
	assert.False(t, cells[5].cell.Occupied)
}

func TestBuildSegments(t *testing.T) {
	price := int64(5000)
	prop := &domain.Property{
		Bookings: []domain.BookingInterval{
			{GuestName: "Иван", TotalAmount: 25000, CheckIn: date(2026, 7, 11), CheckOut: date(2026, 7, 13)},
		},
		PriceRules: []domain.PriceRule{
			{Month: time.July, DayStart: 1, DayEnd: 31, Price: price},
		},
	}

	cells := buildHalfDayCells(prop, domain.DatesBetween(date(2026, 7, 10), date(2026, 7, 14)))
	segments := buildSegments(prop, cells)
	require.Len(t, segments, 3)

	// Свободный сегмент до заезда: утро и вечер 10-го плюс утро 11-го
	free := segments[0]
	assert.Equal(t, SegmentFree, free.Kind)
	assert.Equal(t, date(2026, 7, 10), free.Start)
	assert.Equal(t, domain.PartMorning, free.StartPart)
	assert.Equal(t, 3, free.HalfDays)
	// Цена собирается по вечерним половинам: одна ночь 10-го
	require.Len(t, free.Prices, 1)
	assert.Equal(t, date(2026, 7, 10), free.Prices[0].Date)
	require.NotNil(t, free.Prices[0].Price)
	assert.Equal(t, price, *free.Prices[0].Price)

	// Сегмент брони: вечер заезда, две половины внутреннего дня, утро выезда
	booked := segments[1]
	assert.Equal(t, SegmentBooking, booked.Kind)
	assert.Equal(t, date(2026, 7, 11), booked.Start)
	assert.Equal(t, domain.PartEvening, booked.StartPart)
	assert.Equal(t, 4, booked.HalfDays)
	assert.Equal(t, "Иван", booked.GuestName)

	// Хвостовой свободный сегмент: вечер последней даты диапазона
	tail := segments[2]
	assert.Equal(t, SegmentFree, tail.Kind)
	assert.Equal(t, date(2026, 7, 13), tail.Start)
	assert.Equal(t, domain.PartEvening, tail.StartPart)
	assert.Equal(t, 1, tail.HalfDays)
}

func TestBuildSegments_BackToBackBookingsSplit(t *testing.T) {
	prop := &domain.Property{
		Bookings: []domain.BookingInterval{
			{GuestName: "Иван", CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 12)},
			{GuestName: "Мария", CheckIn: date(2026, 7, 12), CheckOut: date(2026, 7, 14)},
		},
	}

	cells := buildHalfDayCells(prop, domain.DatesBetween(date(2026, 7, 10), date(2026, 7, 14)))
	segments := buildSegments(prop, cells)

	// Смежные брони остаются отдельными сегментами, свободного зазора между ними нет
	var bookingSegs []Segment
	for _, s := range segments {
		if s.Kind == SegmentBooking {
			bookingSegs = append(bookingSegs, s)
		}
	}
	require.Len(t, bookingSegs, 2)
	assert.Equal(t, "Иван", bookingSegs[0].GuestName)
	assert.Equal(t, "Мария", bookingSegs[1].GuestName)
	assert.Equal(t, date(2026, 7, 12), bookingSegs[1].Start)
	assert.Equal(t, domain.PartEvening, bookingSegs[1].StartPart)
}

type mockSnapshotRepo struct {
	loadSnapshotFunc func(ctx context.Context) (*propertyRepo.Snapshot, error)
}

var _ PropertyRepository = (*mockSnapshotRepo)(nil)

func (m *mockSnapshotRepo) LoadSnapshot(ctx context.Context) (*propertyRepo.Snapshot, error) {
	return m.loadSnapshotFunc(ctx)
}

func TestUseCase_Execute_FullDay(t *testing.T) {
	repo := &mockSnapshotRepo{
		loadSnapshotFunc: func(ctx context.Context) (*propertyRepo.Snapshot, error) {
			return &propertyRepo.Snapshot{
				Properties: map[string]*domain.Property{
					"sochi-5":    {ID: "sochi-5", DisplayName: "Сочи 5"},
					"hatanga-12": {ID: "hatanga-12", DisplayName: "Хатанга 12"},
				},
				Order: []string{"hatanga-12", "sochi-5"},
			}, nil
		},
	}
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		DateFrom:    date(2026, 7, 1),
		DateTo:      date(2026, 7, 8),
		Granularity: GranularityFullDay,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Dates, 7)
	require.Len(t, resp.Rows, 2)

	// Порядок строк повторяет порядок конфигурации
	assert.Equal(t, "hatanga-12", resp.Rows[0].PropertyID)
	assert.Equal(t, "sochi-5", resp.Rows[1].PropertyID)
	assert.Len(t, resp.Rows[0].DayCells, 7)
	assert.Empty(t, resp.Rows[0].HalfDayCells)
}

func TestUseCase_Execute_HalfDay(t *testing.T) {
	repo := &mockSnapshotRepo{
		loadSnapshotFunc: func(ctx context.Context) (*propertyRepo.Snapshot, error) {
			return &propertyRepo.Snapshot{
				Properties: map[string]*domain.Property{
					"hatanga-12": {ID: "hatanga-12", DisplayName: "Хатанга 12"},
				},
				Order: []string{"hatanga-12"},
			}, nil
		},
	}
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		DateFrom:    date(2026, 7, 1),
		DateTo:      date(2026, 7, 4),
		Granularity: GranularityHalfDay,
	})

	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Len(t, resp.Rows[0].HalfDayCells, 6)
	assert.Empty(t, resp.Rows[0].DayCells)
	// Пустой объект — один свободный сегмент на весь диапазон
	require.Len(t, resp.Rows[0].Segments, 1)
	assert.Equal(t, SegmentFree, resp.Rows[0].Segments[0].Kind)
	assert.Equal(t, 6, resp.Rows[0].Segments[0].HalfDays)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(&mockSnapshotRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		DateFrom:    date(2026, 7, 8),
		DateTo:      date(2026, 7, 1),
		Granularity: GranularityFullDay,
	})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = uc.Execute(context.Background(), &Request{
		DateFrom:    date(2026, 1, 1),
		DateTo:      date(2028, 1, 1),
		Granularity: GranularityFullDay,
	})
	assert.ErrorIs(t, err, ErrRangeTooLong)

	_, err = uc.Execute(context.Background(), &Request{
		DateFrom:    date(2026, 7, 1),
		DateTo:      date(2026, 7, 8),
		Granularity: "hourly",
	})
	assert.ErrorIs(t, err, ErrInvalidGranularity)
}

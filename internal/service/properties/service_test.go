package properties

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

type mockPropertyRepo struct {
	loadSnapshotFunc func(ctx context.Context) (*propertyRepo.Snapshot, error)
	getPropertyFunc  func(ctx context.Context, id string) (*domain.Property, error)
}

var _ PropertyRepository = (*mockPropertyRepo)(nil)

func (m *mockPropertyRepo) LoadSnapshot(ctx context.Context) (*propertyRepo.Snapshot, error) {
	return m.loadSnapshotFunc(ctx)
}

func (m *mockPropertyRepo) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	return m.getPropertyFunc(ctx, id)
}

type noopLogger struct{}

var _ Logger = (*noopLogger)(nil)

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestService_List(t *testing.T) {
	repo := &mockPropertyRepo{
		loadSnapshotFunc: func(ctx context.Context) (*propertyRepo.Snapshot, error) {
			return &propertyRepo.Snapshot{
				Properties: map[string]*domain.Property{
					"sochi-5": {ID: "sochi-5", DisplayName: "Сочи 5"},
					"hatanga-12": {
						ID:          "hatanga-12",
						DisplayName: "Хатанга 12",
						Bookings: []domain.BookingInterval{
							{CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 15)},
						},
						PriceRules: []domain.PriceRule{
							{Month: time.July, DayStart: 1, DayEnd: 31, Price: 5000},
						},
					},
				},
				Order: []string{"hatanga-12", "sochi-5"},
			}, nil
		},
	}
	svc := NewService(repo, noopLogger{})

	infos, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 2)

	assert.Equal(t, "hatanga-12", infos[0].ID)
	assert.Equal(t, "Хатанга 12", infos[0].DisplayName)
	assert.Equal(t, 1, infos[0].BookingCount)
	assert.Equal(t, 1, infos[0].RuleCount)

	assert.Equal(t, "sochi-5", infos[1].ID)
	assert.Equal(t, 0, infos[1].BookingCount)
}

func TestService_OccupiedDates(t *testing.T) {
	repo := &mockPropertyRepo{
		getPropertyFunc: func(ctx context.Context, id string) (*domain.Property, error) {
			return &domain.Property{
				ID: id,
				Bookings: []domain.BookingInterval{
					{CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 12)},
				},
			}, nil
		},
	}
	svc := NewService(repo, noopLogger{})

	dates, err := svc.OccupiedDates(context.Background(), "hatanga-12")
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2026, 7, 10), date(2026, 7, 11)}, dates)
}

func TestService_OccupiedDates_NotFound(t *testing.T) {
	repo := &mockPropertyRepo{
		getPropertyFunc: func(ctx context.Context, id string) (*domain.Property, error) {
			return nil, propertyRepo.ErrPropertyNotFound
		},
	}
	svc := NewService(repo, noopLogger{})

	_, err := svc.OccupiedDates(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

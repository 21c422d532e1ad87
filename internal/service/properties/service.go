package properties

import (
	"context"
	"errors"
	"fmt"
	"time"

	propertyRepo "github.com/lexagoldenpost/reavito-sub000/internal/infra/storage/property"
	"github.com/lexagoldenpost/reavito-sub000/internal/service/properties/models"
)

// Service сервис чтения снимков объектов для простых эндпоинтов
type Service struct {
	propertyRepo PropertyRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(propertyRepo PropertyRepository, logger Logger) *Service {
	return &Service{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// List возвращает краткую информацию по всем сконфигурированным объектам
func (s *Service) List(ctx context.Context) ([]models.PropertyInfo, error) {
	snapshot, err := s.propertyRepo.LoadSnapshot(ctx)
	if err != nil {
		s.logger.Error("Properties.List: failed to load snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	// Отброшенные строки не ошибка, но их стоит видеть в логах
	for _, skip := range snapshot.Skipped {
		s.logger.Warn("Properties.List: skipped row %s:%d: %s", skip.File, skip.Line, skip.Reason)
	}

	infos := make([]models.PropertyInfo, 0, len(snapshot.Order))
	for _, id := range snapshot.Order {
		prop := snapshot.Properties[id]
		infos = append(infos, models.PropertyInfo{
			ID:           prop.ID,
			DisplayName:  prop.DisplayName,
			BookingCount: len(prop.Bookings),
			RuleCount:    len(prop.PriceRules),
		})
	}

	return infos, nil
}

// OccupiedDates возвращает отсортированные занятые ночи объекта
func (s *Service) OccupiedDates(ctx context.Context, propertyID string) ([]time.Time, error) {
	prop, err := s.propertyRepo.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("Properties.OccupiedDates: property id=%s not found", propertyID)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("Properties.OccupiedDates: failed to load property id=%s: %v", propertyID, err)
		return nil, fmt.Errorf("%w: failed to load property: %v", ErrInternal, err)
	}

	return prop.OccupiedDates(), nil
}

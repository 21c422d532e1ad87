package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
	propertyRepo "github.com/lexagoldenpost/reavito-sub000/internal/infra/storage/property"
)

// UseCase use case проверки доступности диапазона дат для новой брони
type UseCase struct {
	propertyRepo PropertyRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(propertyRepo PropertyRepository, logger Logger) *UseCase {
	return &UseCase{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: property=%s, range=%s..%s",
		req.PropertyID, req.RangeStart.Format(domain.DateFormat), req.RangeEnd.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем снимок объекта
	prop, err := uc.propertyRepo.GetProperty(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("CheckAvailability: property id=%s not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("CheckAvailability: failed to load property id=%s: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to load property: %v", ErrInternal, err)
	}

	// 3. Ищем первую занятую дату кандидата
	// Смежные брони (turnover) конфликтом не считаются: диапазон полуоткрытый
	resp := &Response{
		PropertyID: req.PropertyID,
		RangeStart: req.RangeStart,
		RangeEnd:   req.RangeEnd,
		Nights:     int(req.RangeEnd.Sub(req.RangeStart).Hours() / 24),
		Available:  true,
	}

	if conflict, found := prop.FindConflict(req.RangeStart, req.RangeEnd); found {
		resp.Available = false
		resp.ConflictDate = &conflict
		uc.logger.Info("CheckAvailability: property=%s conflict at %s",
			req.PropertyID, conflict.Format(domain.DateFormat))
	}

	return resp, nil
}

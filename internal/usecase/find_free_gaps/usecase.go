package find_free_gaps

import (
	"context"
	"errors"
	"fmt"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
	propertyRepo "github.com/lexagoldenpost/reavito-sub000/internal/infra/storage/property"
)

// UseCase use case поиска свободных окон для маркетинговой рассылки
type UseCase struct {
	propertyRepo     PropertyRepository
	defaultMinNights int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(propertyRepo PropertyRepository, defaultMinNights int, logger Logger) *UseCase {
	return &UseCase{
		propertyRepo:     propertyRepo,
		defaultMinNights: defaultMinNights,
		logger:           logger,
	}
}

// Execute выполняет поиск свободных окон
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindFreeGaps: property=%s, horizon=%s..%s",
		req.PropertyID, req.HorizonStart.Format(domain.DateFormat), req.HorizonEnd.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindFreeGaps: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем снимок объекта
	prop, err := uc.propertyRepo.GetProperty(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("FindFreeGaps: property id=%s not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("FindFreeGaps: failed to load property id=%s: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to load property: %v", ErrInternal, err)
	}

	minNights := uc.defaultMinNights
	if req.MinNights != nil {
		minNights = *req.MinNights
	}

	// 3. Проход курсором по отсортированным броням
	gaps := findFreeGaps(prop.Bookings, req.HorizonStart, req.HorizonEnd, minNights)

	uc.logger.Info("FindFreeGaps: property=%s, found %d gaps (minNights=%d)",
		req.PropertyID, len(gaps), minNights)

	return &Response{
		PropertyID:   req.PropertyID,
		HorizonStart: req.HorizonStart,
		HorizonEnd:   req.HorizonEnd,
		MinNights:    minNights,
		Gaps:         gaps,
	}, nil
}

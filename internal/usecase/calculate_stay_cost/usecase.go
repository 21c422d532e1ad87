package calculate_stay_cost

import (
	"context"
	"errors"
	"fmt"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
	propertyRepo "github.com/lexagoldenpost/reavito-sub000/internal/infra/storage/property"
)

// UseCase use case расчёта стоимости проживания со скидками
type UseCase struct {
	propertyRepo     PropertyRepository
	defaultThreshold int // Порог автоскидки из конфигурации
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(propertyRepo PropertyRepository, defaultThreshold int, logger Logger) *UseCase {
	return &UseCase{
		propertyRepo:     propertyRepo,
		defaultThreshold: defaultThreshold,
		logger:           logger,
	}
}

// Execute выполняет расчёт стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculateStayCost: property=%s, checkIn=%s, checkOut=%s",
		req.PropertyID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CalculateStayCost: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем снимок объекта
	prop, err := uc.propertyRepo.GetProperty(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("CalculateStayCost: property id=%s not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("CalculateStayCost: failed to load property id=%s: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to load property: %v", ErrInternal, err)
	}

	// 3. Поночная разбивка и сумма до скидки
	breakdown, total := buildBreakdown(prop, req.CheckIn, req.CheckOut)
	nights := len(breakdown)

	// 4. Автоскидка по числу ночей (порог — из запроса либо из конфигурации)
	threshold := uc.defaultThreshold
	if req.AutoDiscountThresholdNights != nil {
		threshold = *req.AutoDiscountThresholdNights
	}
	autoPercent := autoDiscountPercent(nights, threshold)

	// 5. Ручная скидка имеет приоритет над автоскидкой
	appliedPercent := autoPercent
	if req.DiscountPercent != nil {
		appliedPercent = *req.DiscountPercent
	}

	discounted, saved := applyDiscount(total, appliedPercent)

	uc.logger.Info("CalculateStayCost: property=%s, nights=%d, total=%d, applied=%d%%, discounted=%d",
		req.PropertyID, nights, total, appliedPercent, discounted)

	return &Response{
		PropertyID:          req.PropertyID,
		CheckIn:             req.CheckIn,
		CheckOut:            req.CheckOut,
		Nights:              nights,
		Total:               total,
		AutoDiscountPercent: autoPercent,
		AppliedPercent:      appliedPercent,
		Discounted:          discounted,
		SavedAmount:         saved,
		Breakdown:           breakdown,
	}, nil
}

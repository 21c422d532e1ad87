package calculate_stay_cost

import (
	"fmt"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PropertyID == "" {
		return fmt.Errorf("%w: propertyID is required", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	// Интервал нулевой или отрицательной длины — ошибка, а не нулевая стоимость
	if !req.CheckOut.After(req.CheckIn) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidRange)
	}

	if req.DiscountPercent != nil {
		p := *req.DiscountPercent
		if p < domain.MinDiscountPercent || p > domain.MaxDiscountPercent {
			return fmt.Errorf("%w: percent must be within [%d, %d], got %d",
				ErrInvalidDiscount, domain.MinDiscountPercent, domain.MaxDiscountPercent, p)
		}
	}

	if req.AutoDiscountThresholdNights != nil && *req.AutoDiscountThresholdNights < 1 {
		return fmt.Errorf("%w: autoDiscountThresholdNights must be positive", ErrInvalidInput)
	}

	return nil
}

package get_occupancy_grid

import "fmt"

// maxRangeDays ограничение длины сетки: год с запасом на високосный
const maxRangeDays = 366

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		return fmt.Errorf("%w: dateFrom and dateTo are required", ErrInvalidInput)
	}

	if !req.DateTo.After(req.DateFrom) {
		return fmt.Errorf("%w: dateTo must be after dateFrom", ErrInvalidRange)
	}

	if days := int(req.DateTo.Sub(req.DateFrom).Hours() / 24); days > maxRangeDays {
		return fmt.Errorf("%w: %d days requested, max %d", ErrRangeTooLong, days, maxRangeDays)
	}

	switch req.Granularity {
	case GranularityFullDay, GranularityHalfDay:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidGranularity, req.Granularity)
	}
}

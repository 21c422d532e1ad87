package find_free_gaps

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PropertyID == "" {
		return fmt.Errorf("%w: propertyID is required", ErrInvalidInput)
	}

	if req.HorizonStart.IsZero() || req.HorizonEnd.IsZero() {
		return fmt.Errorf("%w: horizonStart and horizonEnd are required", ErrInvalidInput)
	}

	if !req.HorizonEnd.After(req.HorizonStart) {
		return fmt.Errorf("%w: horizonEnd must be after horizonStart", ErrInvalidRange)
	}

	if req.MinNights != nil && *req.MinNights < 1 {
		return fmt.Errorf("%w: minNights must be positive", ErrInvalidInput)
	}

	return nil
}

package calculate_cost

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lexagoldenpost/reavito-sub000/internal/api/handlers"
	calculateStayCost "github.com/lexagoldenpost/reavito-sub000/internal/usecase/calculate_stay_cost"
)

const (
	msgMissingPropertyID  = "ID объекта обязателен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange       = "дата выезда должна быть позже даты заезда"
	msgInvalidDiscount    = "процент скидки должен быть от 0 до 100"
	msgPropertyNotFound   = "объект не найден"
)

type Handler struct {
	useCase CalculateStayCostUseCase
	logger  Logger
}

func NewHandler(useCase CalculateStayCostUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/properties/{propertyId}/cost
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["propertyId"]
	if propertyID == "" {
		h.logger.Warn("POST /properties/{id}/cost - Missing property ID")
		handlers.RespondBadRequest(w, msgMissingPropertyID)
		return
	}

	var req CalculateCostRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /properties/{id}/cost - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(propertyID)
	if err != nil {
		h.logger.Warn("POST /properties/{id}/cost - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, calculateStayCost.ErrPropertyNotFound):
			h.logger.Warn("POST /properties/{id}/cost - Property not found: property_id=%s", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, calculateStayCost.ErrInvalidRange):
			h.logger.Warn("POST /properties/{id}/cost - Invalid range: property_id=%s", propertyID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, calculateStayCost.ErrInvalidDiscount):
			h.logger.Warn("POST /properties/{id}/cost - Invalid discount: property_id=%s", propertyID)
			handlers.RespondBadRequest(w, msgInvalidDiscount)

		case errors.Is(err, calculateStayCost.ErrInvalidInput):
			h.logger.Warn("POST /properties/{id}/cost - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /properties/{id}/cost - Failed: property_id=%s, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /properties/{id}/cost - property_id=%s, nights=%d, discounted=%d",
		propertyID, result.Nights, result.Discounted)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

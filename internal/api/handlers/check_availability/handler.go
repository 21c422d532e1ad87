package check_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lexagoldenpost/reavito-sub000/internal/api/handlers"
	checkAvailability "github.com/lexagoldenpost/reavito-sub000/internal/usecase/check_availability"
)

const (
	msgMissingPropertyID = "ID объекта обязателен"
	msgMissingDates      = "параметры from и to обязательны"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange      = "дата выезда должна быть позже даты заезда"
	msgPropertyNotFound  = "объект не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/availability
// Query params: from (required, YYYY-MM-DD), to (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["propertyId"]
	if propertyID == "" {
		h.logger.Warn("GET /properties/{id}/availability - Missing property ID")
		handlers.RespondBadRequest(w, msgMissingPropertyID)
		return
	}

	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /properties/{id}/availability - Missing from/to: property_id=%s", propertyID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(propertyID, fromStr, toStr)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/availability - Property not found: property_id=%s", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidRange):
			h.logger.Warn("GET /properties/{id}/availability - Invalid range: property_id=%s", propertyID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingDates)

		default:
			h.logger.Error("GET /properties/{id}/availability - Failed: property_id=%s, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/availability - property_id=%s, available=%t", propertyID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

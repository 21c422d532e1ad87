package get_free_gaps

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lexagoldenpost/reavito-sub000/internal/api/handlers"
	findFreeGaps "github.com/lexagoldenpost/reavito-sub000/internal/usecase/find_free_gaps"
)

const (
	msgMissingPropertyID = "ID объекта обязателен"
	msgMissingDates      = "параметры from и to обязательны"
	msgInvalidParams     = "некорректные параметры запроса"
	msgInvalidRange      = "конец горизонта должен быть позже начала"
	msgPropertyNotFound  = "объект не найден"
)

type Handler struct {
	useCase FindFreeGapsUseCase
	logger  Logger
}

func NewHandler(useCase FindFreeGapsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/free-gaps
// Query params: from (required), to (required), minNights (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["propertyId"]
	if propertyID == "" {
		h.logger.Warn("GET /properties/{id}/free-gaps - Missing property ID")
		handlers.RespondBadRequest(w, msgMissingPropertyID)
		return
	}

	query := r.URL.Query()
	fromStr := query.Get("from")
	toStr := query.Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /properties/{id}/free-gaps - Missing from/to: property_id=%s", propertyID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(propertyID, fromStr, toStr, query.Get("minNights"))
	if err != nil {
		h.logger.Warn("GET /properties/{id}/free-gaps - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findFreeGaps.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/free-gaps - Property not found: property_id=%s", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, findFreeGaps.ErrInvalidRange):
			h.logger.Warn("GET /properties/{id}/free-gaps - Invalid range: property_id=%s", propertyID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, findFreeGaps.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/free-gaps - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /properties/{id}/free-gaps - Failed: property_id=%s, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/free-gaps - property_id=%s, gaps=%d", propertyID, len(result.Gaps))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

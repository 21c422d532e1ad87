package get_occupied_dates

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lexagoldenpost/reavito-sub000/internal/api/handlers"
	propertiesService "github.com/lexagoldenpost/reavito-sub000/internal/service/properties"
)

const (
	msgMissingPropertyID = "ID объекта обязателен"
	msgPropertyNotFound  = "объект не найден"
)

type Handler struct {
	service PropertiesService
	logger  Logger
}

func NewHandler(service PropertiesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/occupied-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["propertyId"]
	if propertyID == "" {
		h.logger.Warn("GET /properties/{id}/occupied-dates - Missing property ID")
		handlers.RespondBadRequest(w, msgMissingPropertyID)
		return
	}

	dates, err := h.service.OccupiedDates(r.Context(), propertyID)
	if err != nil {
		switch {
		case errors.Is(err, propertiesService.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/occupied-dates - Property not found: property_id=%s", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)
		default:
			h.logger.Error("GET /properties/{id}/occupied-dates - Failed: property_id=%s, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/occupied-dates - %d dates for property_id=%s", len(dates), propertyID)
	handlers.RespondJSON(w, http.StatusOK, FromDates(propertyID, dates))
}

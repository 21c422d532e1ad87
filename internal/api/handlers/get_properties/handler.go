package get_properties

import (
	"net/http"

	"github.com/lexagoldenpost/reavito-sub000/internal/api/handlers"
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

// Handle GET /api/v1/properties
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	infos, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /properties - Failed to list properties: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /properties - Listed %d properties", len(infos))
	handlers.RespondJSON(w, http.StatusOK, PropertiesResponse{Properties: infos})
}

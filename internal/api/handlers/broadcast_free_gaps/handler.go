package broadcast_free_gaps

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lexagoldenpost/reavito-sub000/internal/api/handlers"
	broadcastFreeGaps "github.com/lexagoldenpost/reavito-sub000/internal/usecase/broadcast_free_gaps"
)

const (
	msgMissingPropertyID  = "ID объекта обязателен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange       = "конец горизонта должен быть позже начала"
	msgPropertyNotFound   = "объект не найден"
	msgNoFreeGaps         = "свободных окон нет, отправлять нечего"
	msgSendFailed         = "не удалось отправить сообщение в канал"
)

type Handler struct {
	useCase BroadcastFreeGapsUseCase
	logger  Logger
}

func NewHandler(useCase BroadcastFreeGapsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/properties/{propertyId}/broadcast/free-gaps
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["propertyId"]
	if propertyID == "" {
		h.logger.Warn("POST /properties/{id}/broadcast/free-gaps - Missing property ID")
		handlers.RespondBadRequest(w, msgMissingPropertyID)
		return
	}

	var req BroadcastRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /properties/{id}/broadcast/free-gaps - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(propertyID)
	if err != nil {
		h.logger.Warn("POST /properties/{id}/broadcast/free-gaps - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, broadcastFreeGaps.ErrPropertyNotFound):
			h.logger.Warn("POST /properties/{id}/broadcast/free-gaps - Property not found: property_id=%s", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, broadcastFreeGaps.ErrNoFreeGaps):
			h.logger.Info("POST /properties/{id}/broadcast/free-gaps - No gaps: property_id=%s", propertyID)
			handlers.RespondError(w, http.StatusConflict, msgNoFreeGaps)

		case errors.Is(err, broadcastFreeGaps.ErrInvalidRange):
			h.logger.Warn("POST /properties/{id}/broadcast/free-gaps - Invalid range: property_id=%s", propertyID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, broadcastFreeGaps.ErrInvalidInput):
			h.logger.Warn("POST /properties/{id}/broadcast/free-gaps - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, broadcastFreeGaps.ErrSendFailed):
			h.logger.Error("POST /properties/{id}/broadcast/free-gaps - Send failed: property_id=%s, error=%v", propertyID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSendFailed)

		default:
			h.logger.Error("POST /properties/{id}/broadcast/free-gaps - Failed: property_id=%s, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /properties/{id}/broadcast/free-gaps - Sent %d gaps: property_id=%s, chat_id=%d",
		len(result.Gaps), propertyID, result.ChatID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package send_relay

import (
	"errors"
	"net/http"

	"github.com/lexagoldenpost/reavito-sub000/internal/api/handlers"
	relayService "github.com/lexagoldenpost/reavito-sub000/internal/service/relay"
	"github.com/lexagoldenpost/reavito-sub000/internal/service/relay/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyPayload       = "payload не должен быть пустым"
	msgSendFailed         = "не удалось отправить сообщение"
)

type Handler struct {
	service RelayService
	logger  Logger
}

func NewHandler(service RelayService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/relay
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RelayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /relay - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Send(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, relayService.ErrEmptyPayload):
			h.logger.Warn("POST /relay - Empty payload")
			handlers.RespondBadRequest(w, msgEmptyPayload)

		case errors.Is(err, relayService.ErrSendFailed):
			h.logger.Error("POST /relay - Send failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgSendFailed)

		default:
			h.logger.Error("POST /relay - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /relay - Sent %s to chat_id=%d", result.Kind, result.ChatID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

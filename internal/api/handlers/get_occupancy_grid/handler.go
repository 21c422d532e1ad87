package get_occupancy_grid

import (
	"errors"
	"net/http"

	"github.com/lexagoldenpost/reavito-sub000/internal/api/handlers"
	getOccupancyGrid "github.com/lexagoldenpost/reavito-sub000/internal/usecase/get_occupancy_grid"
)

const (
	msgMissingDates       = "параметры from и to обязательны"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange       = "конец диапазона должен быть позже начала"
	msgRangeTooLong       = "слишком длинный диапазон сетки"
	msgInvalidGranularity = "некорректная гранулярность, ожидается full-day или half-day"
)

type Handler struct {
	useCase GetOccupancyGridUseCase
	logger  Logger
}

func NewHandler(useCase GetOccupancyGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/grid
// Query params: from (required), to (required), granularity (optional: full-day | half-day)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	fromStr := query.Get("from")
	toStr := query.Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /grid - Missing from/to")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(fromStr, toStr, query.Get("granularity"))
	if err != nil {
		h.logger.Warn("GET /grid - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getOccupancyGrid.ErrInvalidRange):
			h.logger.Warn("GET /grid - Invalid range: from=%s, to=%s", fromStr, toStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getOccupancyGrid.ErrRangeTooLong):
			h.logger.Warn("GET /grid - Range too long: from=%s, to=%s", fromStr, toStr)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, getOccupancyGrid.ErrInvalidGranularity):
			h.logger.Warn("GET /grid - Invalid granularity: %s", query.Get("granularity"))
			handlers.RespondBadRequest(w, msgInvalidGranularity)

		case errors.Is(err, getOccupancyGrid.ErrInvalidInput):
			h.logger.Warn("GET /grid - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingDates)

		default:
			h.logger.Error("GET /grid - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /grid - %d rows, %d dates, granularity=%s",
		len(result.Rows), len(result.Dates), result.Granularity)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package get_occupancy_grid

import (
	"context"
	"fmt"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
)

// UseCase use case построения сетки занятости по всем объектам
type UseCase struct {
	propertyRepo PropertyRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(propertyRepo PropertyRepository, logger Logger) *UseCase {
	return &UseCase{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// Execute строит структурное описание сетки занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetOccupancyGrid: range=%s..%s, granularity=%s",
		req.DateFrom.Format(domain.DateFormat), req.DateTo.Format(domain.DateFormat), req.Granularity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetOccupancyGrid: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем снимок всех объектов
	snapshot, err := uc.propertyRepo.LoadSnapshot(ctx)
	if err != nil {
		uc.logger.Error("GetOccupancyGrid: failed to load snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	dates := domain.DatesBetween(req.DateFrom, req.DateTo)

	// 3. Строим строку на каждый объект в порядке конфигурации
	rows := make([]PropertyRow, 0, len(snapshot.Order))
	for _, id := range snapshot.Order {
		prop := snapshot.Properties[id]

		row := PropertyRow{
			PropertyID:  prop.ID,
			DisplayName: prop.DisplayName,
		}

		switch req.Granularity {
		case GranularityFullDay:
			row.DayCells = buildFullDayRow(prop, dates)
		case GranularityHalfDay:
			cells := buildHalfDayCells(prop, dates)
			row.HalfDayCells = make([]HalfDayCell, len(cells))
			for i := range cells {
				row.HalfDayCells[i] = cells[i].cell
			}
			row.Segments = buildSegments(prop, cells)
		}

		rows = append(rows, row)
	}

	uc.logger.Info("GetOccupancyGrid: built %d rows x %d dates", len(rows), len(dates))

	return &Response{
		DateFrom:    req.DateFrom,
		DateTo:      req.DateTo,
		Granularity: req.Granularity,
		Dates:       dates,
		Rows:        rows,
	}, nil
}

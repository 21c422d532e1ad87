package get_occupancy_grid

import (
	"context"

	getOccupancyGrid "github.com/lexagoldenpost/reavito-sub000/internal/usecase/get_occupancy_grid"
)

type GetOccupancyGridUseCase interface {
	Execute(ctx context.Context, req *getOccupancyGrid.Request) (*getOccupancyGrid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

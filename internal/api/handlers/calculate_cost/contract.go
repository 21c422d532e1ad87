package calculate_cost

import (
	"context"

	calculateStayCost "github.com/lexagoldenpost/reavito-sub000/internal/usecase/calculate_stay_cost"
)

type CalculateStayCostUseCase interface {
	Execute(ctx context.Context, req *calculateStayCost.Request) (*calculateStayCost.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

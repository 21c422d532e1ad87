package get_free_gaps

import (
	"context"

	findFreeGaps "github.com/lexagoldenpost/reavito-sub000/internal/usecase/find_free_gaps"
)

type FindFreeGapsUseCase interface {
	Execute(ctx context.Context, req *findFreeGaps.Request) (*findFreeGaps.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

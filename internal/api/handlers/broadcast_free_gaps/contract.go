package broadcast_free_gaps

import (
	"context"

	broadcastFreeGaps "github.com/lexagoldenpost/reavito-sub000/internal/usecase/broadcast_free_gaps"
)

type BroadcastFreeGapsUseCase interface {
	Execute(ctx context.Context, req *broadcastFreeGaps.Request) (*broadcastFreeGaps.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

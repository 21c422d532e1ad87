package send_relay

import (
	"context"

	"github.com/lexagoldenpost/reavito-sub000/internal/service/relay/models"
)

type RelayService interface {
	Send(ctx context.Context, req *models.RelayRequest) (*models.RelayResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

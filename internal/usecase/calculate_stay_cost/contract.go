package calculate_stay_cost

import (
	"context"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
)

// PropertyRepository интерфейс репозитория объектов размещения
type PropertyRepository interface {
	// GetProperty загружает актуальный снимок объекта по id
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_occupancy_grid

import (
	"context"

	propertyRepo "github.com/lexagoldenpost/reavito-sub000/internal/infra/storage/property"
)

// PropertyRepository интерфейс репозитория объектов размещения
type PropertyRepository interface {
	// LoadSnapshot загружает снимок всех сконфигурированных объектов
	LoadSnapshot(ctx context.Context) (*propertyRepo.Snapshot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package properties

import (
	"context"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
	propertyRepo "github.com/lexagoldenpost/reavito-sub000/internal/infra/storage/property"
)

// PropertyRepository интерфейс репозитория объектов размещения
type PropertyRepository interface {
	LoadSnapshot(ctx context.Context) (*propertyRepo.Snapshot, error)
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

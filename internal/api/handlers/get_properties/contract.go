package get_properties

import (
	"context"

	"github.com/lexagoldenpost/reavito-sub000/internal/service/properties/models"
)

type PropertiesService interface {
	List(ctx context.Context) ([]models.PropertyInfo, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

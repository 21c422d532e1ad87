package get_occupied_dates

import (
	"context"
	"time"
)

type PropertiesService interface {
	OccupiedDates(ctx context.Context, propertyID string) ([]time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

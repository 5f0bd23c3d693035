package schedule

import (
	"context"

	"github.com/rms-platform/table-service/internal/domain"
)

// ScheduleRepository интерфейс репозитория рабочих часов
type ScheduleRepository interface {
	GetWeek(ctx context.Context, restaurantID int64) ([]*domain.OperatingHours, error)
	Upsert(ctx context.Context, hours *domain.OperatingHours) (*domain.OperatingHours, error)
}

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

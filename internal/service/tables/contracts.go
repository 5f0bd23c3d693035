package tables

import (
	"context"

	"github.com/rms-platform/table-service/internal/domain"
)

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	Create(ctx context.Context, table *domain.Table) (*domain.Table, error)
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	GetByRestaurant(ctx context.Context, restaurantID int64, activeOnly bool) ([]*domain.Table, error)
	Update(ctx context.Context, table *domain.Table) error
	Deactivate(ctx context.Context, id int64) error
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

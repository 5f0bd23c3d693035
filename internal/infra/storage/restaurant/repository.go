package restaurant

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/rms-platform/table-service/internal/domain"
	"github.com/rms-platform/table-service/pkg/dbmetrics"
	"github.com/rms-platform/table-service/pkg/psqlbuilder"
)

var restaurantColumns = []string{
	"id",
	"name",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий ресторанов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресторанов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает ресторан по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(restaurantColumns...).
		From("restaurants").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryOne(ctx, executor, query, args, "GetByID")
}

// GetDefault получает ресторан по умолчанию — активный ресторан с
// наименьшим ID. Используется для запросов без явного restaurantId.
func (r *Repository) GetDefault(ctx context.Context) (*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(restaurantColumns...).
		From("restaurants").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDefault - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryOne(ctx, executor, query, args, "GetDefault")
}

func (r *Repository) queryOne(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	var createdAt, updatedAt sql.NullTime

	err := executor.QueryRowContext(ctx, query, args...).Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan restaurant: %v", ErrScanRow, op, err)
	}

	restaurant.CreatedAt = createdAt.Time
	restaurant.UpdatedAt = updatedAt.Time

	return &restaurant, nil
}

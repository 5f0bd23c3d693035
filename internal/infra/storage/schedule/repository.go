package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/rms-platform/table-service/internal/domain"
	"github.com/rms-platform/table-service/pkg/dbmetrics"
	"github.com/rms-platform/table-service/pkg/psqlbuilder"
)

var scheduleColumns = []string{
	"id",
	"restaurant_id",
	"weekday",
	"open_time",
	"close_time",
	"closed",
	"created_at",
	"updated_at",
}

// Repository репозиторий рабочих часов ресторана
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByWeekday получает рабочие часы ресторана на день недели.
// Времена возвращаются как введены оператором (возможен 12-часовой формат) —
// нормализация выполняется на границе расчета доступности.
func (r *Repository) GetByWeekday(ctx context.Context, restaurantID int64, weekday time.Weekday) (*domain.OperatingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("operating_hours").
		Where(squirrel.Eq{"restaurant_id": restaurantID, "weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	hours, err := r.scanHours(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - scan hours: %v", ErrScanRow, err)
	}

	return hours, nil
}

// GetWeek получает все настроенные дни недели ресторана
func (r *Repository) GetWeek(ctx context.Context, restaurantID int64) ([]*domain.OperatingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("operating_hours").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	week := make([]*domain.OperatingHours, 0)
	for rows.Next() {
		hours, err := r.scanHours(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWeek - scan row: %v", ErrScanRow, err)
		}
		week = append(week, hours)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeek - rows error: %v", ErrScanRow, err)
	}

	return week, nil
}

// Upsert создает или обновляет рабочие часы на день недели
func (r *Repository) Upsert(ctx context.Context, hours *domain.OperatingHours) (*domain.OperatingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("operating_hours").
		Columns(
			"restaurant_id",
			"weekday",
			"open_time",
			"close_time",
			"closed",
		).
		Values(
			hours.RestaurantID,
			int(hours.Weekday),
			hours.OpenTime,
			hours.CloseTime,
			hours.Closed,
		).
		Suffix(`ON CONFLICT (restaurant_id, weekday) DO UPDATE SET
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			closed = EXCLUDED.closed,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hours.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	hours.CreatedAt = createdAt.Time
	hours.UpdatedAt = updatedAt.Time

	return hours, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanHours(row rowScanner) (*domain.OperatingHours, error) {
	var hours domain.OperatingHours
	var weekday int
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&hours.ID,
		&hours.RestaurantID,
		&weekday,
		&hours.OpenTime,
		&hours.CloseTime,
		&hours.Closed,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	hours.Weekday = time.Weekday(weekday)
	hours.CreatedAt = createdAt.Time
	hours.UpdatedAt = updatedAt.Time

	return &hours, nil
}

package schedule

import (
	"context"
	"errors"
	"fmt"

	restaurantRepo "github.com/rms-platform/table-service/internal/infra/storage/restaurant"
	"github.com/rms-platform/table-service/internal/service/schedule/models"
	"github.com/rms-platform/table-service/pkg/types"
)

// Service сервис управления рабочими часами ресторана
type Service struct {
	scheduleRepo   ScheduleRepository
	restaurantRepo RestaurantRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, restaurantRepo RestaurantRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo:   scheduleRepo,
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

// GetWeek возвращает настроенные рабочие часы ресторана на неделю
func (s *Service) GetWeek(ctx context.Context, restaurantID int64) (*models.WeekResponse, error) {
	s.logger.Info("GetWeek: fetching schedule for restaurant=%d", restaurantID)

	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("GetWeek: restaurant id=%d not found", restaurantID)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("GetWeek: restaurant lookup failed for id=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	week, err := s.scheduleRepo.GetWeek(ctx, restaurantID)
	if err != nil {
		s.logger.Error("GetWeek: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWeek(restaurantID, week), nil
}

// UpsertDay создает или обновляет рабочие часы на день недели.
// Времена принимаются в 12-часовом или 24-часовом формате и хранятся
// как введены: нормализация выполняется на границе расчета доступности.
func (s *Service) UpsertDay(ctx context.Context, req *models.UpsertDayRequest) (*models.DayResponse, error) {
	s.logger.Info("UpsertDay: restaurant=%d, weekday=%d, closed=%t", req.RestaurantID, req.Weekday, req.Closed)

	if err := s.validateDay(req); err != nil {
		s.logger.Warn("UpsertDay: invalid request: %v", err)
		return nil, err
	}

	if _, err := s.restaurantRepo.GetByID(ctx, req.RestaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("UpsertDay: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("UpsertDay: restaurant lookup failed for id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: UpsertDay - repository error: %v", ErrInternal, err)
	}

	saved, err := s.scheduleRepo.Upsert(ctx, req.ToDomainHours())
	if err != nil {
		s.logger.Error("UpsertDay: repository error for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: UpsertDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertDay: schedule saved for restaurant=%d, weekday=%d", saved.RestaurantID, saved.Weekday)
	resp := models.FromDomainHours(saved)
	return &resp, nil
}

// validateDay проверяет день недели и, для открытых дней, корректность
// и порядок времен открытия и закрытия
func (s *Service) validateDay(req *models.UpsertDayRequest) error {
	if req.Weekday < 0 || req.Weekday > 6 {
		return fmt.Errorf("%w: weekday must be between 0 and 6", ErrInvalidInput)
	}

	if req.Closed {
		return nil
	}

	open, err := types.NewTimeStringFromString(req.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: invalid open time %q", ErrInvalidInput, req.OpenTime)
	}

	closeTime, err := types.NewTimeStringFromString(req.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: invalid close time %q", ErrInvalidInput, req.CloseTime)
	}

	if !open.IsBefore(closeTime) {
		return fmt.Errorf("%w: open time must be before close time", ErrInvalidInput)
	}

	return nil
}

package tables

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rms-platform/table-service/internal/domain"
	restaurantRepo "github.com/rms-platform/table-service/internal/infra/storage/restaurant"
	tableRepo "github.com/rms-platform/table-service/internal/infra/storage/table"
	"github.com/rms-platform/table-service/internal/service/tables/models"
)

// Service сервис для управления столами ресторана
type Service struct {
	tableRepo      TableRepository
	restaurantRepo RestaurantRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса столов
func NewService(tableRepo TableRepository, restaurantRepo RestaurantRepository, logger Logger) *Service {
	return &Service{
		tableRepo:      tableRepo,
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

// Create создает новый стол в ресторане
func (s *Service) Create(ctx context.Context, req *models.CreateTableRequest) (*models.TableResponse, error) {
	s.logger.Info("Create: creating table %q for restaurant=%d", req.Number, req.RestaurantID)

	if err := validateTableAttributes(req.Number, req.Capacity); err != nil {
		s.logger.Warn("Create: invalid table attributes: %v", err)
		return nil, err
	}

	if _, err := s.restaurantRepo.GetByID(ctx, req.RestaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("Create: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("Create: restaurant lookup failed for id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	table := &domain.Table{
		RestaurantID: req.RestaurantID,
		Number:       strings.TrimSpace(req.Number),
		Capacity:     req.Capacity,
		IsActive:     true,
		Shape:        req.Shape,
		Width:        req.Width,
		Height:       req.Height,
		PositionX:    req.PositionX,
		PositionY:    req.PositionY,
	}

	created, err := s.tableRepo.Create(ctx, table)
	if err != nil {
		if errors.Is(err, tableRepo.ErrDuplicateNumber) {
			s.logger.Warn("Create: table number %q already exists in restaurant=%d", req.Number, req.RestaurantID)
			return nil, ErrDuplicateNumber
		}
		s.logger.Error("Create: failed to create table for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: table id=%d created for restaurant=%d", created.ID, created.RestaurantID)
	return models.FromDomainTable(created), nil
}

// List возвращает столы ресторана. При activeOnly возвращаются только
// активные столы.
func (s *Service) List(ctx context.Context, restaurantID int64, activeOnly bool) (*models.TableListResponse, error) {
	s.logger.Info("List: fetching tables for restaurant=%d, activeOnly=%t", restaurantID, activeOnly)

	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("List: restaurant id=%d not found", restaurantID)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("List: restaurant lookup failed for id=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	tables, err := s.tableRepo.GetByRestaurant(ctx, restaurantID, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTableList(tables), nil
}

// Update обновляет атрибуты стола
func (s *Service) Update(ctx context.Context, req *models.UpdateTableRequest) (*models.TableResponse, error) {
	s.logger.Info("Update: updating table id=%d", req.TableID)

	if err := validateTableAttributes(req.Number, req.Capacity); err != nil {
		s.logger.Warn("Update: invalid table attributes: %v", err)
		return nil, err
	}

	table, err := s.tableRepo.GetByID(ctx, req.TableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("Update: table id=%d not found", req.TableID)
			return nil, ErrTableNotFound
		}
		s.logger.Error("Update: repository error for table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	table.Number = strings.TrimSpace(req.Number)
	table.Capacity = req.Capacity
	table.IsActive = req.IsActive
	table.Shape = req.Shape
	table.Width = req.Width
	table.Height = req.Height
	table.PositionX = req.PositionX
	table.PositionY = req.PositionY

	if err := s.tableRepo.Update(ctx, table); err != nil {
		if errors.Is(err, tableRepo.ErrDuplicateNumber) {
			s.logger.Warn("Update: table number %q already exists in restaurant=%d", req.Number, table.RestaurantID)
			return nil, ErrDuplicateNumber
		}
		s.logger.Error("Update: failed to update table id=%d: %v", table.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.tableRepo.GetByID(ctx, table.ID)
	if err != nil {
		s.logger.Error("Update: failed to reload table id=%d: %v", table.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: table id=%d updated", updated.ID)
	return models.FromDomainTable(updated), nil
}

// Deactivate помечает стол неактивным. Существующие бронирования стола
// не затрагиваются, но стол перестает участвовать в расчете доступности.
func (s *Service) Deactivate(ctx context.Context, tableID int64) error {
	s.logger.Info("Deactivate: deactivating table id=%d", tableID)

	if err := s.tableRepo.Deactivate(ctx, tableID); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("Deactivate: table id=%d not found", tableID)
			return ErrTableNotFound
		}
		s.logger.Error("Deactivate: repository error for table id=%d: %v", tableID, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: table id=%d deactivated", tableID)
	return nil
}

// validateTableAttributes проверяет номер и вместимость стола
func validateTableAttributes(number string, capacity int) error {
	if strings.TrimSpace(number) == "" {
		return fmt.Errorf("%w: table number is required", ErrInvalidInput)
	}
	if capacity < domain.MinTableCapacity || capacity > domain.MaxTableCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinTableCapacity, domain.MaxTableCapacity)
	}
	return nil
}

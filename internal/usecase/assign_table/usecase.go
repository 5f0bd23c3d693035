package assign_table

import (
	"context"
	"errors"
	"fmt"

	"github.com/rms-platform/table-service/internal/domain"
	bookingRepo "github.com/rms-platform/table-service/internal/infra/storage/booking"
	tableRepo "github.com/rms-platform/table-service/internal/infra/storage/table"
)

// UseCase use case назначения стола бронированию
type UseCase struct {
	bookingRepo            BookingRepository
	tableRepo              TableRepository
	txManager              TransactionManager
	defaultDurationMinutes int
	logger                 Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tableRepo TableRepository,
	txManager TransactionManager,
	defaultDurationMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:            bookingRepo,
		tableRepo:              tableRepo,
		txManager:              txManager,
		defaultDurationMinutes: defaultDurationMinutes,
		logger:                 logger,
	}
}

// Execute назначает или снимает стол у бронирования.
//
// Выполняется в сериализуемой транзакции: занятость стола перепроверяется
// после блокировки бронирований этой даты (FOR UPDATE), поэтому два
// конкурентных запроса не могут назначить один стол на пересекающиеся окна.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.TableID != nil {
		uc.logger.Info("AssignTable: booking=%d, table=%d, confirm=%t", req.BookingID, *req.TableID, req.Confirm)
	} else {
		uc.logger.Info("AssignTable: booking=%d, unassign", req.BookingID)
	}

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.TableID != nil && *req.TableID <= 0 {
		return nil, fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Бронирование (в транзакции строка блокируется)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("AssignTable: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("AssignTable: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. Назначение допустимо только в pending и confirmed
		if !booking.CanAssignTable() {
			uc.logger.Warn("AssignTable: booking id=%d has status %s", booking.ID, booking.Status)
			return ErrInvalidStatus
		}

		// 3. Снятие назначения выполняется безусловно
		if req.TableID == nil {
			if err := uc.bookingRepo.AssignTable(txCtx, booking.ID, nil); err != nil {
				uc.logger.Error("AssignTable: failed to unassign table for booking id=%d: %v", booking.ID, err)
				return fmt.Errorf("%w: failed to unassign table: %v", ErrInternal, err)
			}
			booking.TableID = nil
			result = booking
			return uc.maybeConfirm(txCtx, booking, req.Confirm)
		}

		// 4. Стол должен существовать, быть активным и принадлежать
		// ресторану бронирования. Валидация до любых мутаций.
		table, err := uc.tableRepo.GetByID(txCtx, *req.TableID)
		if err != nil {
			if errors.Is(err, tableRepo.ErrTableNotFound) {
				uc.logger.Warn("AssignTable: table id=%d not found", *req.TableID)
				return ErrTableNotFound
			}
			uc.logger.Error("AssignTable: failed to get table id=%d: %v", *req.TableID, err)
			return fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
		}

		if table.RestaurantID != booking.RestaurantID {
			uc.logger.Warn("AssignTable: table id=%d belongs to restaurant %d, booking to %d",
				table.ID, table.RestaurantID, booking.RestaurantID)
			return ErrTableNotFound
		}

		if !table.IsActive {
			uc.logger.Warn("AssignTable: table id=%d is inactive", table.ID)
			return ErrTableInactive
		}

		// 5. Перепроверка занятости: блокируем активные брони этой даты
		// и убеждаемся, что стол свободен в окне бронирования
		filter := domain.BookingsFilter{
			RestaurantID: booking.RestaurantID,
			Date:         &booking.BookingDate,
		}
		dayBookings, err := uc.bookingRepo.GetByRestaurantWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("AssignTable: failed to get bookings for date: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		duration := booking.Duration(uc.defaultDurationMinutes)
		if domain.TableOccupied(table.ID, booking.StartTime, duration, dayBookings, booking.ID) {
			uc.logger.Warn("AssignTable: table id=%d occupied at %s for booking id=%d",
				table.ID, booking.StartTime, booking.ID)
			return ErrTableOccupied
		}

		// 6. Назначаем стол
		if err := uc.bookingRepo.AssignTable(txCtx, booking.ID, &table.ID); err != nil {
			uc.logger.Error("AssignTable: failed to assign table for booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to assign table: %v", ErrInternal, err)
		}
		booking.TableID = &table.ID
		result = booking

		return uc.maybeConfirm(txCtx, booking, req.Confirm)
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AssignTable: booking id=%d updated, table=%v, status=%s",
		result.ID, result.TableID, result.Status)

	return toResponse(result), nil
}

// maybeConfirm переводит pending-бронь в confirmed в той же транзакции,
// что и назначение стола
func (uc *UseCase) maybeConfirm(ctx context.Context, booking *domain.Booking, confirm bool) error {
	if !confirm || booking.Status == domain.StatusConfirmed {
		return nil
	}

	if !booking.CanTransitionTo(domain.StatusConfirmed) {
		uc.logger.Warn("AssignTable: booking id=%d cannot transition from %s to confirmed",
			booking.ID, booking.Status)
		return ErrInvalidStatus
	}

	if err := uc.bookingRepo.UpdateStatus(ctx, booking.ID, domain.StatusConfirmed); err != nil {
		uc.logger.Error("AssignTable: failed to confirm booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusConfirmed
	return nil
}

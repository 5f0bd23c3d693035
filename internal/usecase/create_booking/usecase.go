package create_booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/rms-platform/table-service/internal/domain"
	bookingRepo "github.com/rms-platform/table-service/internal/infra/storage/booking"
	restaurantRepo "github.com/rms-platform/table-service/internal/infra/storage/restaurant"
	scheduleRepo "github.com/rms-platform/table-service/internal/infra/storage/schedule"
	"github.com/rms-platform/table-service/pkg/types"
)

// maxNumberAttempts число попыток генерации уникального номера брони
const maxNumberAttempts = 3

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	tableRepo      TableRepository
	scheduleRepo   ScheduleRepository
	restaurantRepo RestaurantRepository
	txManager      TransactionManager
	timeProvider   TimeProvider
	alloc          AllocationConfig
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tableRepo TableRepository,
	scheduleRepo ScheduleRepository,
	restaurantRepo RestaurantRepository,
	txManager TransactionManager,
	alloc AllocationConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		tableRepo:      tableRepo,
		scheduleRepo:   scheduleRepo,
		restaurantRepo: restaurantRepo,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		alloc:          alloc,
		logger:         logger,
	}
}

// Execute создает бронирование.
//
// Проверка доступности слота и вставка выполняются в одной сериализуемой
// транзакции: бронирования даты блокируются FOR UPDATE, поэтому два
// конкурентных запроса не могут занять последнюю вместимость одного слота.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: restaurant=%d, date=%s, time=%s, guests=%d",
		req.RestaurantID, req.Date.Format(domain.DateFormat), req.StartTime, req.Guests)

	// 1. Валидация входных данных, нормализация времени начала
	startTime, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 2. Ресторан
	restaurant, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("CreateBooking: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("CreateBooking: failed to get restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 3. Рабочие часы: закрытый день отклоняется, время начала должно
	// попадать в окно [open, close)
	if err := uc.validateOperatingWindow(ctx, restaurant.ID, req, startTime); err != nil {
		return nil, err
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = uc.alloc.DefaultDurationMinutes
	}

	guests := req.Guests
	if guests == 0 {
		guests = domain.DefaultGuests
	}

	var result *domain.Booking

	// 4. Проверка вместимости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		filter := domain.BookingsFilter{
			RestaurantID: restaurant.ID,
			Date:         &req.Date,
		}
		dayBookings, err := uc.bookingRepo.GetByRestaurantWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		tables, err := uc.tableRepo.GetByRestaurant(txCtx, restaurant.ID, true)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get tables: %v", err)
			return fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
		}

		occupied := domain.OccupiedTables(startTime, uc.alloc.DefaultDurationMinutes, dayBookings)
		verdict := domain.ResolveCapacity(tables, occupied, guests)
		if !verdict.Available {
			uc.logger.Warn("CreateBooking: slot %s not available for %d guests (remaining capacity %d)",
				startTime, guests, verdict.RemainingCapacity)
			return ErrSlotNotAvailable
		}

		booking := &domain.Booking{
			RestaurantID:    restaurant.ID,
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			CustomerEmail:   req.CustomerEmail,
			BookingDate:     req.Date,
			StartTime:       startTime,
			Guests:          guests,
			DurationMinutes: duration,
			Status:          domain.StatusPending,
			Notes:           req.Notes,
		}

		// Номер брони уникален; на коллизию отвечаем регенерацией
		for attempt := 0; attempt < maxNumberAttempts; attempt++ {
			booking.BookingNumber = uc.generateBookingNumber(req)

			created, err := uc.bookingRepo.Create(txCtx, booking)
			if err == nil {
				result = created
				return nil
			}
			if !errors.Is(err, bookingRepo.ErrDuplicateBookingNumber) {
				uc.logger.Error("CreateBooking: failed to create booking: %v", err)
				return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
			}
			uc.logger.Warn("CreateBooking: booking number %s already taken, regenerating", booking.BookingNumber)
		}

		return fmt.Errorf("%w: failed to generate unique booking number after %d attempts", ErrInternal, maxNumberAttempts)
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d number=%s", result.ID, result.BookingNumber)

	return &Response{
		ID:              result.ID,
		BookingNumber:   result.BookingNumber,
		RestaurantID:    result.RestaurantID,
		CustomerName:    result.CustomerName,
		CustomerPhone:   result.CustomerPhone,
		CustomerEmail:   result.CustomerEmail,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		Guests:          result.Guests,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		TableID:         result.TableID,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// validateOperatingWindow проверяет, что ресторан открыт и время начала
// попадает в рабочие часы. Отсутствие расписания на день трактуется как
// окно по умолчанию.
func (uc *UseCase) validateOperatingWindow(ctx context.Context, restaurantID int64, req *Request, startTime types.TimeString) error {
	hours, err := uc.scheduleRepo.GetByWeekday(ctx, restaurantID, req.Date.Weekday())
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
		hours = &domain.OperatingHours{
			OpenTime:  uc.alloc.DefaultOpenTime,
			CloseTime: uc.alloc.DefaultCloseTime,
		}
	}

	if hours.Closed {
		uc.logger.Warn("CreateBooking: restaurant=%d closed on %s",
			restaurantID, req.Date.Format(domain.DateFormat))
		return ErrRestaurantClosed
	}

	openTime, err := types.NewTimeStringFromString(hours.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: bad open time in schedule: %v", ErrInternal, err)
	}
	closeTime, err := types.NewTimeStringFromString(hours.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: bad close time in schedule: %v", ErrInternal, err)
	}

	// Начало строго раньше закрытия; окончание может выходить за закрытие
	if startTime.IsBefore(openTime) || !startTime.IsBefore(closeTime) {
		uc.logger.Warn("CreateBooking: time %s outside operating window %s-%s",
			startTime, openTime, closeTime)
		return ErrOutsideOperatingHours
	}

	return nil
}

// generateBookingNumber генерирует номер вида BK-20260314-4821
func (uc *UseCase) generateBookingNumber(req *Request) string {
	return fmt.Sprintf("%s-%s-%04d",
		uc.alloc.NumberPrefix,
		req.Date.Format("20060102"),
		rand.Intn(10000))
}

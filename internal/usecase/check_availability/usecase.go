package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/rms-platform/table-service/internal/domain"
	restaurantRepo "github.com/rms-platform/table-service/internal/infra/storage/restaurant"
	scheduleRepo "github.com/rms-platform/table-service/internal/infra/storage/schedule"
)

// UseCase use case расчета доступности слотов на дату
type UseCase struct {
	bookingRepo    BookingRepository
	tableRepo      TableRepository
	scheduleRepo   ScheduleRepository
	restaurantRepo RestaurantRepository
	alloc          AllocationConfig
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tableRepo TableRepository,
	scheduleRepo ScheduleRepository,
	restaurantRepo RestaurantRepository,
	alloc AllocationConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		tableRepo:      tableRepo,
		scheduleRepo:   scheduleRepo,
		restaurantRepo: restaurantRepo,
		alloc:          alloc,
		logger:         logger,
	}
}

// Execute выполняет расчет доступности для одной даты.
//
// Порядок: определяем ресторан, берем рабочие часы на день недели (с
// fallback на окно по умолчанию), генерируем сетку слотов и для каждого
// слота считаем занятые столы и вместимость.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: restaurant=%d, date=%s, guests=%d",
		req.RestaurantID, req.Date.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	guests := req.Guests
	if guests == 0 {
		guests = domain.DefaultGuests
	}

	// 2. Определяем ресторан
	restaurant, degraded, err := uc.resolveRestaurant(ctx, req.RestaurantID)
	if err != nil {
		return nil, err
	}
	// Ресторан по умолчанию не настроен — деградируем до пустого ответа
	// вместо ошибки
	if degraded {
		uc.logger.Warn("CheckAvailability: no default restaurant configured, returning no availability")
		return &Response{RestaurantID: 0, Date: req.Date, Slots: []domain.TimeSlot{}}, nil
	}

	// 3. Рабочие часы на день недели с fallback на окно по умолчанию
	hours, err := uc.resolveHours(ctx, restaurant.ID, req)
	if err != nil {
		return nil, err
	}

	// Закрытый день — пустой список слотов
	if hours.Closed {
		uc.logger.Info("CheckAvailability: restaurant=%d closed on %s",
			restaurant.ID, req.Date.Format(domain.DateFormat))
		return &Response{RestaurantID: restaurant.ID, Date: req.Date, Slots: []domain.TimeSlot{}}, nil
	}

	// 4. Нормализуем времена (принимаем и 12-часовой формат) и генерируем слоты
	openTime, closeTime, err := normalizeWindow(hours.OpenTime, hours.CloseTime)
	if err != nil {
		uc.logger.Error("CheckAvailability: bad schedule times for restaurant=%d: %v", restaurant.ID, err)
		return nil, err
	}

	starts, err := domain.GenerateTimeSlots(openTime, closeTime, uc.alloc.SlotIntervalMinutes)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 5. Активные столы и активные бронирования на дату
	tables, err := uc.tableRepo.GetByRestaurant(ctx, restaurant.ID, true)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get tables: %v", err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}

	filter := domain.BookingsFilter{
		RestaurantID: restaurant.ID,
		Date:         &req.Date,
	}
	bookings, err := uc.bookingRepo.GetByRestaurantWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Вердикт по каждому слоту; слоты из результата не выпадают
	slots := make([]domain.TimeSlot, len(starts))
	for i, start := range starts {
		occupied := domain.OccupiedTables(start, uc.alloc.DefaultDurationMinutes, bookings)
		verdict := domain.ResolveCapacity(tables, occupied, guests)

		slots[i] = domain.TimeSlot{
			StartTime:         start,
			Available:         verdict.Available,
			RemainingCapacity: verdict.RemainingCapacity,
		}
	}

	uc.logger.Info("CheckAvailability: restaurant=%d, date=%s: %d slots generated",
		restaurant.ID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		RestaurantID: restaurant.ID,
		Date:         req.Date,
		Slots:        slots,
	}, nil
}

// resolveRestaurant находит ресторан по ID или ресторан по умолчанию.
// Отсутствие ресторана по умолчанию — деградация, а не ошибка.
func (uc *UseCase) resolveRestaurant(ctx context.Context, restaurantID int64) (*domain.Restaurant, bool, error) {
	if restaurantID > 0 {
		restaurant, err := uc.restaurantRepo.GetByID(ctx, restaurantID)
		if err != nil {
			if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
				uc.logger.Warn("CheckAvailability: restaurant id=%d not found", restaurantID)
				return nil, false, ErrRestaurantNotFound
			}
			uc.logger.Error("CheckAvailability: failed to get restaurant id=%d: %v", restaurantID, err)
			return nil, false, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
		}
		return restaurant, false, nil
	}

	restaurant, err := uc.restaurantRepo.GetDefault(ctx)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			return nil, true, nil
		}
		uc.logger.Error("CheckAvailability: failed to get default restaurant: %v", err)
		return nil, false, fmt.Errorf("%w: failed to get default restaurant: %v", ErrInternal, err)
	}

	return restaurant, false, nil
}

// resolveHours возвращает рабочие часы на день недели запрошенной даты.
// Если расписание для дня не настроено, используется окно по умолчанию.
func (uc *UseCase) resolveHours(ctx context.Context, restaurantID int64, req *Request) (*domain.OperatingHours, error) {
	hours, err := uc.scheduleRepo.GetByWeekday(ctx, restaurantID, req.Date.Weekday())
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Info("CheckAvailability: no schedule for restaurant=%d weekday=%d, using default window",
				restaurantID, req.Date.Weekday())
			return &domain.OperatingHours{
				RestaurantID: restaurantID,
				Weekday:      req.Date.Weekday(),
				OpenTime:     uc.alloc.DefaultOpenTime,
				CloseTime:    uc.alloc.DefaultCloseTime,
			}, nil
		}
		uc.logger.Error("CheckAvailability: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	return hours, nil
}

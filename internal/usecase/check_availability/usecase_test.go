package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rms-platform/table-service/internal/domain"
	restaurantRepo "github.com/rms-platform/table-service/internal/infra/storage/restaurant"
	scheduleRepo "github.com/rms-platform/table-service/internal/infra/storage/schedule"
	"github.com/rms-platform/table-service/pkg/ptr"
	"github.com/rms-platform/table-service/pkg/types"
)

// Фейки репозиториев для изоляции use case от БД

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByRestaurantWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeTableRepo struct {
	tables []*domain.Table
	err    error
}

func (f *fakeTableRepo) GetByRestaurant(_ context.Context, _ int64, _ bool) ([]*domain.Table, error) {
	return f.tables, f.err
}

type fakeScheduleRepo struct {
	hours *domain.OperatingHours
	err   error
}

func (f *fakeScheduleRepo) GetByWeekday(_ context.Context, _ int64, _ time.Weekday) (*domain.OperatingHours, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.hours, nil
}

type fakeRestaurantRepo struct {
	restaurant *domain.Restaurant
	byIDErr    error
	defaultErr error
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, _ int64) (*domain.Restaurant, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.restaurant, nil
}

func (f *fakeRestaurantRepo) GetDefault(_ context.Context) (*domain.Restaurant, error) {
	if f.defaultErr != nil {
		return nil, f.defaultErr
	}
	return f.restaurant, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAlloc() AllocationConfig {
	return AllocationConfig{
		DefaultDurationMinutes: 120,
		SlotIntervalMinutes:    30,
		DefaultOpenTime:        "11:00",
		DefaultCloseTime:       "22:00",
	}
}

func testDate() time.Time {
	// Суббота
	return time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(
	bookings *fakeBookingRepo,
	tables *fakeTableRepo,
	schedule *fakeScheduleRepo,
	restaurants *fakeRestaurantRepo,
) *UseCase {
	return NewUseCase(bookings, tables, schedule, restaurants, testAlloc(), nopLogger{})
}

func findSlot(t *testing.T, slots []domain.TimeSlot, start types.TimeString) domain.TimeSlot {
	t.Helper()
	for _, slot := range slots {
		if slot.StartTime == start {
			return slot
		}
	}
	t.Fatalf("slot %s not found", start)
	return domain.TimeSlot{}
}

func TestExecute_FreeDay(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeTableRepo{tables: []*domain.Table{
			{ID: 1, Capacity: 2, IsActive: true},
			{ID: 2, Capacity: 4, IsActive: true},
		}},
		&fakeScheduleRepo{hours: &domain.OperatingHours{OpenTime: "10:00", CloseTime: "14:00"}},
		&fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 1, IsActive: true}},
	)

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: testDate(), Guests: 2})
	require.NoError(t, err)

	// Сетка [10:00, 14:00) с шагом 30 минут - 8 слотов
	require.Len(t, resp.Slots, 8)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("13:30"), resp.Slots[7].StartTime)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
		assert.Equal(t, 6, slot.RemainingCapacity)
	}
}

func TestExecute_BookingBlocksOverlappingSlots(t *testing.T) {
	// Один стол, бронь 12:00-14:00. Слоты, чье окно пересекает бронь,
	// недоступны; стык-в-стык слоты остаются доступными.
	uc := newTestUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{{
			ID:              1,
			Status:          domain.StatusConfirmed,
			TableID:         ptr.Ptr(int64(1)),
			StartTime:       "12:00",
			DurationMinutes: 120,
		}}},
		&fakeTableRepo{tables: []*domain.Table{{ID: 1, Capacity: 4, IsActive: true}}},
		&fakeScheduleRepo{hours: &domain.OperatingHours{OpenTime: "10:00", CloseTime: "16:00"}},
		&fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 1, IsActive: true}},
	)

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: testDate(), Guests: 2})
	require.NoError(t, err)

	// Слот 10:00 (окно 10:00-12:00) не пересекает бронь
	assert.True(t, findSlot(t, resp.Slots, "10:00").Available)
	// Слоты 10:30..13:30 пересекают окно брони
	assert.False(t, findSlot(t, resp.Slots, "10:30").Available)
	assert.False(t, findSlot(t, resp.Slots, "12:00").Available)
	assert.False(t, findSlot(t, resp.Slots, "13:30").Available)
	// Слот 14:00 начинается ровно в момент освобождения стола
	assert.True(t, findSlot(t, resp.Slots, "14:00").Available)

	// Недоступные слоты остаются в ответе с нулевой вместимостью
	blocked := findSlot(t, resp.Slots, "12:00")
	assert.Equal(t, 0, blocked.RemainingCapacity)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{{
			ID:              1,
			Status:          domain.StatusCancelled,
			TableID:         ptr.Ptr(int64(1)),
			StartTime:       "12:00",
			DurationMinutes: 120,
		}}},
		&fakeTableRepo{tables: []*domain.Table{{ID: 1, Capacity: 4, IsActive: true}}},
		&fakeScheduleRepo{hours: &domain.OperatingHours{OpenTime: "11:00", CloseTime: "14:00"}},
		&fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 1, IsActive: true}},
	)

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: testDate(), Guests: 2})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
	}
}

func TestExecute_PartyLargerThanAnySingleTable(t *testing.T) {
	// 6 гостей, столы 4+4: одиночного стола нет, но суммарная вместимость
	// свободных столов покрывает группу
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeTableRepo{tables: []*domain.Table{
			{ID: 1, Capacity: 4, IsActive: true},
			{ID: 2, Capacity: 4, IsActive: true},
		}},
		&fakeScheduleRepo{hours: &domain.OperatingHours{OpenTime: "11:00", CloseTime: "12:00"}},
		&fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 1, IsActive: true}},
	)

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: testDate(), Guests: 6})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
		assert.Equal(t, 8, slot.RemainingCapacity)
	}
}

func TestExecute_ClosedDay(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeTableRepo{},
		&fakeScheduleRepo{hours: &domain.OperatingHours{Closed: true}},
		&fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 1, IsActive: true}},
	)

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: testDate()})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_NoScheduleFallsBackToDefaultWindow(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeTableRepo{tables: []*domain.Table{{ID: 1, Capacity: 4, IsActive: true}}},
		&fakeScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
		&fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 1, IsActive: true}},
	)

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: testDate(), Guests: 1})
	require.NoError(t, err)

	// Окно по умолчанию 11:00-22:00 с шагом 30 минут - 22 слота
	require.Len(t, resp.Slots, 22)
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("21:30"), resp.Slots[21].StartTime)
}

func TestExecute_TwelveHourScheduleTimes(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeTableRepo{tables: []*domain.Table{{ID: 1, Capacity: 4, IsActive: true}}},
		&fakeScheduleRepo{hours: &domain.OperatingHours{OpenTime: "11:00 AM", CloseTime: "1:00 PM"}},
		&fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 1, IsActive: true}},
	)

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: testDate(), Guests: 2})
	require.NoError(t, err)

	// [11:00, 13:00) с шагом 30 минут
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("12:30"), resp.Slots[3].StartTime)
}

func TestExecute_NoActiveTables(t *testing.T) {
	// Ноль активных столов: слоты генерируются, но все недоступны
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeTableRepo{tables: []*domain.Table{}},
		&fakeScheduleRepo{hours: &domain.OperatingHours{OpenTime: "11:00", CloseTime: "13:00"}},
		&fakeRestaurantRepo{restaurant: &domain.Restaurant{ID: 1, IsActive: true}},
	)

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: testDate(), Guests: 2})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)

	for _, slot := range resp.Slots {
		assert.False(t, slot.Available)
		assert.Equal(t, 0, slot.RemainingCapacity)
	}
}

func TestExecute_RestaurantNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeTableRepo{},
		&fakeScheduleRepo{},
		&fakeRestaurantRepo{byIDErr: restaurantRepo.ErrRestaurantNotFound},
	)

	_, err := uc.Execute(context.Background(), &Request{RestaurantID: 42, Date: testDate()})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestExecute_NoDefaultRestaurantDegrades(t *testing.T) {
	// Ресторан не указан и ресторан по умолчанию не настроен -
	// пустой ответ вместо ошибки
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeTableRepo{},
		&fakeScheduleRepo{},
		&fakeRestaurantRepo{defaultErr: restaurantRepo.ErrRestaurantNotFound},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeTableRepo{}, &fakeScheduleRepo{}, &fakeRestaurantRepo{})

	_, err := uc.Execute(context.Background(), &Request{RestaurantID: -1, Date: testDate()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RestaurantID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RestaurantID: 1, Date: testDate(), Guests: -2})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

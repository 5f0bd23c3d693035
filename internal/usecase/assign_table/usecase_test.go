package assign_table

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rms-platform/table-service/internal/domain"
	bookingRepo "github.com/rms-platform/table-service/internal/infra/storage/booking"
	tableRepo "github.com/rms-platform/table-service/internal/infra/storage/table"
	"github.com/rms-platform/table-service/pkg/ptr"
)

// Фейки репозиториев для изоляции use case от БД

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	assignedTableID *int64
	assignCalled    bool
	statusUpdated   *domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) GetByRestaurantWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, booking := range f.bookings {
		if booking.RestaurantID == filter.RestaurantID && booking.IsActive() {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) AssignTable(_ context.Context, id int64, tableID *int64) error {
	f.assignCalled = true
	f.assignedTableID = tableID
	f.bookings[id].TableID = tableID
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.statusUpdated = &status
	f.bookings[id].Status = status
	return nil
}

type fakeTableRepo struct {
	tables map[int64]*domain.Table
}

func (f *fakeTableRepo) GetByID(_ context.Context, id int64) (*domain.Table, error) {
	table, ok := f.tables[id]
	if !ok {
		return nil, tableRepo.ErrTableNotFound
	}
	return table, nil
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(id int64, status domain.BookingStatus, tableID *int64) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		BookingNumber:   "BK-20260314-0001",
		RestaurantID:    1,
		BookingDate:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:       "18:00",
		Guests:          2,
		DurationMinutes: 120,
		Status:          status,
		TableID:         tableID,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, tables *fakeTableRepo) *UseCase {
	return NewUseCase(bookings, tables, fakeTxManager{}, 120, nopLogger{})
}

func TestExecute_AssignFreeTable(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, domain.StatusPending, nil),
	}}
	tables := &fakeTableRepo{tables: map[int64]*domain.Table{
		10: {ID: 10, RestaurantID: 1, Capacity: 4, IsActive: true},
	}}
	uc := newTestUseCase(bookings, tables)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, TableID: ptr.Ptr(int64(10))})
	require.NoError(t, err)

	require.NotNil(t, resp.TableID)
	assert.Equal(t, int64(10), *resp.TableID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.True(t, bookings.assignCalled)
}

func TestExecute_AssignWithConfirm(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, domain.StatusPending, nil),
	}}
	tables := &fakeTableRepo{tables: map[int64]*domain.Table{
		10: {ID: 10, RestaurantID: 1, Capacity: 4, IsActive: true},
	}}
	uc := newTestUseCase(bookings, tables)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, TableID: ptr.Ptr(int64(10)), Confirm: true})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	require.NotNil(t, bookings.statusUpdated)
	assert.Equal(t, domain.StatusConfirmed, *bookings.statusUpdated)
}

func TestExecute_Unassign(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, domain.StatusConfirmed, ptr.Ptr(int64(10))),
	}}
	uc := newTestUseCase(bookings, &fakeTableRepo{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, TableID: nil})
	require.NoError(t, err)

	assert.Nil(t, resp.TableID)
	assert.True(t, bookings.assignCalled)
	assert.Nil(t, bookings.assignedTableID)
}

func TestExecute_TableOccupiedByOverlappingBooking(t *testing.T) {
	other := testBooking(2, domain.StatusConfirmed, ptr.Ptr(int64(10)))
	other.StartTime = "19:00"

	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, domain.StatusPending, nil),
		2: other,
	}}
	tables := &fakeTableRepo{tables: map[int64]*domain.Table{
		10: {ID: 10, RestaurantID: 1, Capacity: 4, IsActive: true},
	}}
	uc := newTestUseCase(bookings, tables)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, TableID: ptr.Ptr(int64(10))})
	assert.ErrorIs(t, err, ErrTableOccupied)
	assert.False(t, bookings.assignCalled)
}

func TestExecute_TableFreeWhenWindowsDoNotOverlap(t *testing.T) {
	// Бронь 12:00-14:00 на том же столе; наше окно 18:00-20:00
	other := testBooking(2, domain.StatusConfirmed, ptr.Ptr(int64(10)))
	other.StartTime = "12:00"

	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, domain.StatusPending, nil),
		2: other,
	}}
	tables := &fakeTableRepo{tables: map[int64]*domain.Table{
		10: {ID: 10, RestaurantID: 1, Capacity: 4, IsActive: true},
	}}
	uc := newTestUseCase(bookings, tables)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, TableID: ptr.Ptr(int64(10))})
	require.NoError(t, err)
	assert.Equal(t, int64(10), *resp.TableID)
}

func TestExecute_ReassignSameBookingIgnoresItself(t *testing.T) {
	// Повторное назначение того же стола той же брони не конфликтует
	// с ее собственным окном
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, domain.StatusConfirmed, ptr.Ptr(int64(10))),
	}}
	tables := &fakeTableRepo{tables: map[int64]*domain.Table{
		10: {ID: 10, RestaurantID: 1, Capacity: 4, IsActive: true},
	}}
	uc := newTestUseCase(bookings, tables)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, TableID: ptr.Ptr(int64(10))})
	require.NoError(t, err)
	assert.Equal(t, int64(10), *resp.TableID)
}

func TestExecute_InactiveTable(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, domain.StatusPending, ptr.Ptr(int64(5))),
	}}
	tables := &fakeTableRepo{tables: map[int64]*domain.Table{
		10: {ID: 10, RestaurantID: 1, Capacity: 4, IsActive: false},
	}}
	uc := newTestUseCase(bookings, tables)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, TableID: ptr.Ptr(int64(10))})
	assert.ErrorIs(t, err, ErrTableInactive)

	// Назначение брони не изменилось
	assert.False(t, bookings.assignCalled)
	assert.Equal(t, int64(5), *bookings.bookings[1].TableID)
}

func TestExecute_TableFromAnotherRestaurant(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, domain.StatusPending, nil),
	}}
	tables := &fakeTableRepo{tables: map[int64]*domain.Table{
		10: {ID: 10, RestaurantID: 99, Capacity: 4, IsActive: true},
	}}
	uc := newTestUseCase(bookings, tables)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, TableID: ptr.Ptr(int64(10))})
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestExecute_TerminalStatus(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusCancelled, domain.StatusCompleted, domain.StatusNoShow,
	} {
		bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
			1: testBooking(1, status, nil),
		}}
		uc := newTestUseCase(bookings, &fakeTableRepo{})

		_, err := uc.Execute(context.Background(), &Request{BookingID: 1, TableID: ptr.Ptr(int64(10))})
		assert.ErrorIs(t, err, ErrInvalidStatus, "status %s", status)
	}
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}}, &fakeTableRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 404, TableID: ptr.Ptr(int64(10))})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}}, &fakeTableRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BookingID: 1, TableID: ptr.Ptr(int64(-1))})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

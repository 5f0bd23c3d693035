package bookings

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rms-platform/table-service/internal/domain"
	bookingRepo "github.com/rms-platform/table-service/internal/infra/storage/booking"
	"github.com/rms-platform/table-service/internal/service/bookings/models"
)

// Фейк репозитория бронирований

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	lastFilter    domain.BookingsFilter
	cancelledID   int64
	cancelReason  string
	updatedStatus *domain.BookingStatus
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
	f.lastFilter = filter
	result := make([]*domain.Booking, 0)
	for _, booking := range f.bookings {
		if booking.RestaurantID == filter.RestaurantID {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.updatedStatus = &status
	f.bookings[id].Status = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.cancelledID = id
	f.cancelReason = reason
	f.bookings[id].Status = domain.StatusCancelled
	f.bookings[id].CancellationReason = &reason
	now := time.Now()
	f.bookings[id].CancelledAt = &now
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		BookingNumber: "BK-20260314-0001",
		RestaurantID:  1,
		CustomerName:  "Иван Петров",
		CustomerPhone: "+79991234567",
		BookingDate:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:     "18:00",
		Guests:        2,
		Status:        status,
	}
}

func TestService_GetByID(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, domain.StatusPending),
	}}
	svc := NewService(repo, nopLogger{})

	booking, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), booking.ID)
	assert.Equal(t, "18:00", booking.StartTime)

	_, err = svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Cancel(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, domain.StatusConfirmed),
	}}
	svc := NewService(repo, nopLogger{})

	booking, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		BookingID:          1,
		CancellationReason: "клиент попросил",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), booking.Status)
	assert.Equal(t, int64(1), repo.cancelledID)
	assert.Equal(t, "клиент попросил", repo.cancelReason)
	require.NotNil(t, booking.CancellationReason)
	assert.Equal(t, "клиент попросил", *booking.CancellationReason)
}

func TestService_Cancel_TerminalStatus(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusCancelled, domain.StatusCompleted, domain.StatusNoShow,
	} {
		repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
			1: testBooking(1, status),
		}}
		svc := NewService(repo, nopLogger{})

		_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: 1})
		assert.ErrorIs(t, err, ErrCannotCancel, "status %s", status)
	}
}

func TestService_Cancel_ReasonTooLong(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, domain.StatusPending),
	}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		BookingID:          1,
		CancellationReason: strings.Repeat("x", domain.MaxCancellationReasonLength+1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		wantErr error
	}{
		{name: "pending_to_confirmed", from: domain.StatusPending, to: "confirmed"},
		{name: "confirmed_to_completed", from: domain.StatusConfirmed, to: "completed"},
		{name: "confirmed_to_no_show", from: domain.StatusConfirmed, to: "no_show"},
		{name: "pending_to_completed_rejected", from: domain.StatusPending, to: "completed", wantErr: ErrInvalidTransition},
		{name: "completed_is_terminal", from: domain.StatusCompleted, to: "confirmed", wantErr: ErrInvalidTransition},
		{name: "unknown_status", from: domain.StatusPending, to: "sitting", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
				1: testBooking(1, tt.from),
			}}
			svc := NewService(repo, nopLogger{})

			booking, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
				BookingID: 1,
				Status:    tt.to,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, booking.Status)
		})
	}
}

func TestService_GetRestaurantBookings_Filter(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, domain.StatusPending),
		2: testBooking(2, domain.StatusConfirmed),
	}}
	svc := NewService(repo, nopLogger{})

	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	status := "confirmed"

	result, err := svc.GetRestaurantBookings(context.Background(), &models.GetRestaurantBookingsRequest{
		RestaurantID: 1,
		Date:         &date,
		Status:       &status,
	})
	require.NoError(t, err)
	assert.Len(t, result.Bookings, 2)

	// Фильтр транслируется в типизированный domain фильтр
	assert.Equal(t, int64(1), repo.lastFilter.RestaurantID)
	require.NotNil(t, repo.lastFilter.Date)
	assert.Equal(t, date, *repo.lastFilter.Date)
	assert.Equal(t, []domain.BookingStatus{domain.StatusConfirmed}, repo.lastFilter.Statuses)
}

func TestService_GetRestaurantBookings_BadStatus(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	svc := NewService(repo, nopLogger{})

	bad := "sitting"
	_, err := svc.GetRestaurantBookings(context.Background(), &models.GetRestaurantBookingsRequest{
		RestaurantID: 1,
		Status:       &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

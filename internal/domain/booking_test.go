package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name     string
		from     BookingStatus
		to       BookingStatus
		expected bool
	}{
		{name: "pending_to_confirmed", from: StatusPending, to: StatusConfirmed, expected: true},
		{name: "pending_to_cancelled", from: StatusPending, to: StatusCancelled, expected: true},
		{name: "pending_to_completed", from: StatusPending, to: StatusCompleted, expected: false},
		{name: "pending_to_no_show", from: StatusPending, to: StatusNoShow, expected: false},
		{name: "confirmed_to_completed", from: StatusConfirmed, to: StatusCompleted, expected: true},
		{name: "confirmed_to_no_show", from: StatusConfirmed, to: StatusNoShow, expected: true},
		{name: "confirmed_to_cancelled", from: StatusConfirmed, to: StatusCancelled, expected: true},
		{name: "confirmed_to_pending", from: StatusConfirmed, to: StatusPending, expected: false},
		{name: "cancelled_is_terminal", from: StatusCancelled, to: StatusPending, expected: false},
		{name: "completed_is_terminal", from: StatusCompleted, to: StatusConfirmed, expected: false},
		{name: "no_show_is_terminal", from: StatusNoShow, to: StatusConfirmed, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.expected, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Booking{Status: StatusNoShow}).IsActive())
}

func TestBooking_Duration(t *testing.T) {
	assert.Equal(t, 90, (&Booking{DurationMinutes: 90}).Duration(120))
	assert.Equal(t, 120, (&Booking{DurationMinutes: 0}).Duration(120))
	assert.Equal(t, 120, (&Booking{DurationMinutes: -5}).Duration(120))
}

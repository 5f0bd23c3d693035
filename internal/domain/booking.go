package domain

import (
	"time"

	"github.com/rms-platform/table-service/pkg/types"
)

// BookingStatus represents the status of a table booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents a table reservation in the system
type Booking struct {
	ID              int64
	BookingNumber   string
	RestaurantID    int64
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   *string
	BookingDate     time.Time
	StartTime       types.TimeString
	Guests          int
	DurationMinutes int
	Status          BookingStatus

	// TableID is nil until a table is assigned by staff or the allocator.
	// A booking holds at most one table at a time.
	TableID *int64

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies capacity.
// Only pending and confirmed bookings block tables and slots.
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true if the booking reached a final state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted || b.Status == StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanAssignTable returns true if a table may be assigned or cleared
func (b *Booking) CanAssignTable() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo reports whether the status change is allowed:
// pending -> confirmed | cancelled
// confirmed -> completed | no_show | cancelled
// completed, cancelled and no_show are terminal.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusNoShow || next == StatusCancelled
	default:
		return false
	}
}

// Duration returns the booking duration, falling back to the default
// when the stored value is not positive
func (b *Booking) Duration(defaultMinutes int) int {
	if b.DurationMinutes > 0 {
		return b.DurationMinutes
	}
	return defaultMinutes
}

// BookingsFilter is a typed filter for restaurant booking queries
type BookingsFilter struct {
	RestaurantID  int64           // required
	Date          *time.Time      // single calendar day, nil = any date
	Statuses      []BookingStatus // nil = active statuses only unless IncludeAll
	CustomerPhone *string         // optional customer lookup
	IncludeAll    bool            // include cancelled/completed/no_show bookings
}

package assign_table

import (
	"time"

	"github.com/rms-platform/table-service/internal/domain"
	"github.com/rms-platform/table-service/pkg/types"
)

// Request модель запроса на назначение стола.
// TableID = nil снимает назначение. Confirm=true дополнительно переводит
// pending-бронь в confirmed той же операцией.
type Request struct {
	BookingID int64
	TableID   *int64
	Confirm   bool
}

// Response обновленное бронирование
type Response struct {
	ID            int64
	BookingNumber string
	RestaurantID  int64
	BookingDate   time.Time
	StartTime     types.TimeString
	Guests        int
	Status        string
	TableID       *int64
	UpdatedAt     time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		BookingNumber: b.BookingNumber,
		RestaurantID:  b.RestaurantID,
		BookingDate:   b.BookingDate,
		StartTime:     b.StartTime,
		Guests:        b.Guests,
		Status:        string(b.Status),
		TableID:       b.TableID,
		UpdatedAt:     b.UpdatedAt,
	}
}

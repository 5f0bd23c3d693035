package cancel_booking

import (
	"github.com/rms-platform/table-service/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(bookingID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		BookingID:          bookingID,
		CancellationReason: r.CancellationReason,
	}
}

package assign_table

import (
	"time"

	"github.com/rms-platform/table-service/internal/domain"
	assignTable "github.com/rms-platform/table-service/internal/usecase/assign_table"
)

// AssignTableRequest HTTP request model.
// tableId = null снимает назначение стола.
type AssignTableRequest struct {
	TableID *int64 `json:"tableId"`
	Confirm bool   `json:"confirm,omitempty"`
}

// AssignTableResponse HTTP response model
type AssignTableResponse struct {
	ID            int64     `json:"id"`
	BookingNumber string    `json:"bookingNumber"`
	RestaurantID  int64     `json:"restaurantId"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	Guests        int       `json:"guests"`
	Status        string    `json:"status"`
	TableID       *int64    `json:"tableId,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *AssignTableRequest) ToUseCaseRequest(bookingID int64) *assignTable.Request {
	return &assignTable.Request{
		BookingID: bookingID,
		TableID:   r.TableID,
		Confirm:   r.Confirm,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *assignTable.Response) *AssignTableResponse {
	return &AssignTableResponse{
		ID:            resp.ID,
		BookingNumber: resp.BookingNumber,
		RestaurantID:  resp.RestaurantID,
		Date:          resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		Guests:        resp.Guests,
		Status:        resp.Status,
		TableID:       resp.TableID,
		UpdatedAt:     resp.UpdatedAt,
	}
}

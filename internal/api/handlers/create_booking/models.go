package create_booking

import (
	"time"

	"github.com/rms-platform/table-service/internal/domain"
	createBooking "github.com/rms-platform/table-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RestaurantID    int64   `json:"restaurantId"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	Date            string  `json:"date"`      // YYYY-MM-DD
	StartTime       string  `json:"startTime"` // HH:MM, 12- или 24-часовой формат
	Guests          int     `json:"guests"`
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID              int64   `json:"id"`
	BookingNumber   string  `json:"bookingNumber"`
	RestaurantID    int64   `json:"restaurantId"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	Guests          int     `json:"guests"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	TableID         *int64  `json:"tableId,omitempty"`
	Notes           *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RestaurantID:    r.RestaurantID,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
		Date:            date,
		StartTime:       r.StartTime,
		Guests:          r.Guests,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:              resp.ID,
		BookingNumber:   resp.BookingNumber,
		RestaurantID:    resp.RestaurantID,
		CustomerName:    resp.CustomerName,
		CustomerPhone:   resp.CustomerPhone,
		CustomerEmail:   resp.CustomerEmail,
		Date:            resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		Guests:          resp.Guests,
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		TableID:         resp.TableID,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt,
	}
}

package models

import (
	"errors"
	"time"

	"github.com/rms-platform/table-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	BookingID          int64  `json:"bookingId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	BookingID int64  `json:"bookingId"`
	Status    string `json:"status"`
}

// GetRestaurantBookingsRequest запрос списка бронирований ресторана
type GetRestaurantBookingsRequest struct {
	RestaurantID  int64      `json:"restaurantId"`
	Date          *time.Time `json:"date,omitempty"`          // конкретная дата (опционально)
	Status        *string    `json:"status,omitempty"`        // фильтр по статусу (опционально)
	CustomerPhone *string    `json:"customerPhone,omitempty"` // поиск по телефону (опционально)
	IncludeAll    bool       `json:"includeAll,omitempty"`    // включить отменённые и завершённые
}

// ToDomainFilter конвертирует request в типизированный domain фильтр
func (r *GetRestaurantBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		RestaurantID:  r.RestaurantID,
		Date:          r.Date,
		CustomerPhone: r.CustomerPhone,
		IncludeAll:    r.IncludeAll,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Statuses = []domain.BookingStatus{status}
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64   `json:"id"`
	BookingNumber   string  `json:"bookingNumber"`
	RestaurantID    int64   `json:"restaurantId"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	BookingDate     string  `json:"bookingDate"` // "2026-03-14"
	StartTime       string  `json:"startTime"`   // "18:30"
	Guests          int     `json:"guests"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	TableID         *int64  `json:"tableId,omitempty"`
	Notes           *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		BookingNumber:   b.BookingNumber,
		RestaurantID:    b.RestaurantID,
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		CustomerEmail:   b.CustomerEmail,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		Guests:          b.Guests,
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		TableID:         b.TableID,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	resp.CancellationReason = b.CancellationReason
	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBookingList конвертирует слайс domain моделей в DTO списка
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled,
		domain.StatusCompleted, domain.StatusNoShow:
		return domain.BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

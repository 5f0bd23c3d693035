package create_booking

import (
	"time"

	"github.com/rms-platform/table-service/pkg/types"
)

// AllocationConfig явная конфигурация создания бронирования
type AllocationConfig struct {
	DefaultDurationMinutes int
	DefaultOpenTime        string
	DefaultCloseTime       string
	NumberPrefix           string // префикс номера брони ("BK")
}

// Request модель запроса на создание бронирования
type Request struct {
	RestaurantID    int64
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   *string
	Date            time.Time
	StartTime       string // принимается в 12- или 24-часовом формате
	Guests          int
	DurationMinutes int // 0 = длительность по умолчанию
	Notes           *string
}

// Response созданное бронирование
type Response struct {
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
	Status          string
	TableID         *int64
	Notes           *string
	CreatedAt       time.Time
}

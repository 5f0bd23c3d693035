package create_booking

import (
	"fmt"
	"time"

	"github.com/rms-platform/table-service/internal/domain"
	"github.com/rms-platform/table-service/pkg/types"
)

// validateRequest валидирует входные данные и возвращает нормализованное
// время начала
func validateRequest(req *Request) (types.TimeString, error) {
	if req.RestaurantID <= 0 {
		return "", fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}

	if req.CustomerName == "" {
		return "", fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if req.CustomerPhone == "" {
		return "", fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Guests < 0 || req.Guests > domain.MaxGuests {
		return "", fmt.Errorf("%w: guests must be between 0 and %d", ErrInvalidInput, domain.MaxGuests)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return "", fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return "", fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}

	return startTime, nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	return nil
}

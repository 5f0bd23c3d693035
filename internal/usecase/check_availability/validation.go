package check_availability

import (
	"fmt"

	"github.com/rms-platform/table-service/internal/domain"
	"github.com/rms-platform/table-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RestaurantID < 0 {
		return fmt.Errorf("%w: restaurantID must not be negative", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Guests < 0 || req.Guests > domain.MaxGuests {
		return fmt.Errorf("%w: guests must be between 0 and %d", ErrInvalidInput, domain.MaxGuests)
	}

	return nil
}

// normalizeWindow приводит времена открытия и закрытия к 24-часовому формату
func normalizeWindow(open, close string) (types.TimeString, types.TimeString, error) {
	openTime, err := types.NewTimeStringFromString(open)
	if err != nil {
		return "", "", fmt.Errorf("%w: open time: %v", ErrInvalidTimeFormat, err)
	}

	closeTime, err := types.NewTimeStringFromString(close)
	if err != nil {
		return "", "", fmt.Errorf("%w: close time: %v", ErrInvalidTimeFormat, err)
	}

	return openTime, closeTime, nil
}

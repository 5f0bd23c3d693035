package check_availability

import (
	"time"

	"github.com/rms-platform/table-service/internal/domain"
	checkAvailability "github.com/rms-platform/table-service/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RestaurantID int64      `json:"restaurantId"`
	Date         string     `json:"date"`
	Slots        []TimeSlot `json:"slots"`
}

// TimeSlot модель временного слота
type TimeSlot struct {
	StartTime         string `json:"startTime"`
	Available         bool   `json:"available"`
	RemainingCapacity int    `json:"remainingCapacity"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	slots := make([]TimeSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = TimeSlot{
			StartTime:         slot.StartTime.String(),
			Available:         slot.Available,
			RemainingCapacity: slot.RemainingCapacity,
		}
	}

	return &AvailabilityResponse{
		RestaurantID: resp.RestaurantID,
		Date:         resp.Date.Format(domain.DateFormat),
		Slots:        slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(restaurantID int64, dateStr string, guests int) (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		RestaurantID: restaurantID,
		Date:         date,
		Guests:       guests,
	}, nil
}

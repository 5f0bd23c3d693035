package update_schedule

import (
	"github.com/rms-platform/table-service/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model.
// Времена принимаются в 12-часовом ("5:00 PM") или 24-часовом ("17:00")
// формате.
type UpdateScheduleRequest struct {
	Weekday   int    `json:"weekday"` // 0 = воскресенье .. 6 = суббота
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
	Closed    bool   `json:"closed,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(restaurantID int64) *models.UpsertDayRequest {
	return &models.UpsertDayRequest{
		RestaurantID: restaurantID,
		Weekday:      r.Weekday,
		OpenTime:     r.OpenTime,
		CloseTime:    r.CloseTime,
		Closed:       r.Closed,
	}
}

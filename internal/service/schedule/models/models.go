package models

import (
	"time"

	"github.com/rms-platform/table-service/internal/domain"
)

// Request модели

// UpsertDayRequest запрос на установку рабочих часов одного дня недели
type UpsertDayRequest struct {
	RestaurantID int64  `json:"restaurantId"`
	Weekday      int    `json:"weekday"` // 0 = Sunday .. 6 = Saturday
	OpenTime     string `json:"openTime"`
	CloseTime    string `json:"closeTime"`
	Closed       bool   `json:"closed"`
}

// Response модели

// DayResponse рабочие часы одного дня недели
type DayResponse struct {
	Weekday   int    `json:"weekday"`
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
	Closed    bool   `json:"closed"`
}

// WeekResponse расписание ресторана на неделю. Дни без настроенных
// часов в ответ не включаются.
type WeekResponse struct {
	RestaurantID int64         `json:"restaurantId"`
	Days         []DayResponse `json:"days"`
}

// FromDomainHours конвертирует domain модель в DTO
func FromDomainHours(h *domain.OperatingHours) DayResponse {
	resp := DayResponse{
		Weekday: int(h.Weekday),
		Closed:  h.Closed,
	}
	if !h.Closed {
		resp.OpenTime = h.OpenTime
		resp.CloseTime = h.CloseTime
	}
	return resp
}

// FromDomainWeek конвертирует слайс domain моделей в недельное DTO
func FromDomainWeek(restaurantID int64, week []*domain.OperatingHours) *WeekResponse {
	days := make([]DayResponse, 0, len(week))
	for _, h := range week {
		days = append(days, FromDomainHours(h))
	}
	return &WeekResponse{RestaurantID: restaurantID, Days: days}
}

// ToDomainHours конвертирует запрос в domain модель
func (r *UpsertDayRequest) ToDomainHours() *domain.OperatingHours {
	return &domain.OperatingHours{
		RestaurantID: r.RestaurantID,
		Weekday:      time.Weekday(r.Weekday),
		OpenTime:     r.OpenTime,
		CloseTime:    r.CloseTime,
		Closed:       r.Closed,
	}
}

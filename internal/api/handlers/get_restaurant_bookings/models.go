package get_restaurant_bookings

import (
	"net/url"
	"time"

	"github.com/rms-platform/table-service/internal/domain"
	"github.com/rms-platform/table-service/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из query параметров
func ToServiceRequest(restaurantID int64, query url.Values) (*models.GetRestaurantBookingsRequest, error) {
	req := &models.GetRestaurantBookingsRequest{
		RestaurantID: restaurantID,
		IncludeAll:   query.Get("includeAll") == "true",
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if phone := query.Get("customerPhone"); phone != "" {
		req.CustomerPhone = &phone
	}

	return req, nil
}

package create_table

import (
	"github.com/rms-platform/table-service/internal/service/tables/models"
)

// CreateTableRequest HTTP request model
type CreateTableRequest struct {
	Number    string  `json:"number"`
	Capacity  int     `json:"capacity"`
	Shape     *string `json:"shape,omitempty"`
	Width     *int    `json:"width,omitempty"`
	Height    *int    `json:"height,omitempty"`
	PositionX *int    `json:"positionX,omitempty"`
	PositionY *int    `json:"positionY,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateTableRequest) ToServiceRequest(restaurantID int64) *models.CreateTableRequest {
	return &models.CreateTableRequest{
		RestaurantID: restaurantID,
		Number:       r.Number,
		Capacity:     r.Capacity,
		Shape:        r.Shape,
		Width:        r.Width,
		Height:       r.Height,
		PositionX:    r.PositionX,
		PositionY:    r.PositionY,
	}
}

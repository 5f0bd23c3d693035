package update_table

import (
	"github.com/rms-platform/table-service/internal/service/tables/models"
)

// UpdateTableRequest HTTP request model
type UpdateTableRequest struct {
	Number    string  `json:"number"`
	Capacity  int     `json:"capacity"`
	IsActive  bool    `json:"isActive"`
	Shape     *string `json:"shape,omitempty"`
	Width     *int    `json:"width,omitempty"`
	Height    *int    `json:"height,omitempty"`
	PositionX *int    `json:"positionX,omitempty"`
	PositionY *int    `json:"positionY,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateTableRequest) ToServiceRequest(tableID int64) *models.UpdateTableRequest {
	return &models.UpdateTableRequest{
		TableID:   tableID,
		Number:    r.Number,
		Capacity:  r.Capacity,
		IsActive:  r.IsActive,
		Shape:     r.Shape,
		Width:     r.Width,
		Height:    r.Height,
		PositionX: r.PositionX,
		PositionY: r.PositionY,
	}
}

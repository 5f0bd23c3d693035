package models

import (
	"time"

	"github.com/rms-platform/table-service/internal/domain"
)

// Request модели

// CreateTableRequest запрос на создание стола
type CreateTableRequest struct {
	RestaurantID int64   `json:"restaurantId"`
	Number       string  `json:"number"`
	Capacity     int     `json:"capacity"`
	Shape        *string `json:"shape,omitempty"`
	Width        *int    `json:"width,omitempty"`
	Height       *int    `json:"height,omitempty"`
	PositionX    *int    `json:"positionX,omitempty"`
	PositionY    *int    `json:"positionY,omitempty"`
}

// UpdateTableRequest запрос на обновление стола
type UpdateTableRequest struct {
	TableID   int64   `json:"tableId"`
	Number    string  `json:"number"`
	Capacity  int     `json:"capacity"`
	IsActive  bool    `json:"isActive"`
	Shape     *string `json:"shape,omitempty"`
	Width     *int    `json:"width,omitempty"`
	Height    *int    `json:"height,omitempty"`
	PositionX *int    `json:"positionX,omitempty"`
	PositionY *int    `json:"positionY,omitempty"`
}

// Response модели

// TableResponse ответ с данными стола
type TableResponse struct {
	ID           int64   `json:"id"`
	RestaurantID int64   `json:"restaurantId"`
	Number       string  `json:"number"`
	Capacity     int     `json:"capacity"`
	IsActive     bool    `json:"isActive"`
	Shape        *string `json:"shape,omitempty"`
	Width        *int    `json:"width,omitempty"`
	Height       *int    `json:"height,omitempty"`
	PositionX    *int    `json:"positionX,omitempty"`
	PositionY    *int    `json:"positionY,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableListResponse ответ со списком столов
type TableListResponse struct {
	Tables []TableResponse `json:"tables"`
}

// FromDomainTable конвертирует domain модель в DTO
func FromDomainTable(t *domain.Table) *TableResponse {
	if t == nil {
		return nil
	}

	return &TableResponse{
		ID:           t.ID,
		RestaurantID: t.RestaurantID,
		Number:       t.Number,
		Capacity:     t.Capacity,
		IsActive:     t.IsActive,
		Shape:        t.Shape,
		Width:        t.Width,
		Height:       t.Height,
		PositionX:    t.PositionX,
		PositionY:    t.PositionY,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// FromDomainTableList конвертирует слайс domain моделей в DTO списка
func FromDomainTableList(tables []*domain.Table) *TableListResponse {
	result := make([]TableResponse, 0, len(tables))
	for _, t := range tables {
		result = append(result, *FromDomainTable(t))
	}
	return &TableListResponse{Tables: result}
}

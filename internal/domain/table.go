package domain

import "time"

// Table represents a physical table in a restaurant.
// Layout fields (shape, size, position) are presentation-only and take no
// part in allocation decisions.
type Table struct {
	ID           int64
	RestaurantID int64
	Number       string
	Capacity     int
	IsActive     bool

	Shape     *string
	Width     *int
	Height    *int
	PositionX *int
	PositionY *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Seats returns true if the table alone can seat the party
func (t *Table) Seats(guests int) bool {
	return t.Capacity >= guests
}

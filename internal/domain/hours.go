package domain

import "time"

// OperatingHours is the per-weekday schedule of a restaurant.
// Open and close times are stored as entered (12-hour or 24-hour form)
// and normalized at the allocation boundary.
type OperatingHours struct {
	ID           int64
	RestaurantID int64
	Weekday      time.Weekday
	OpenTime     string
	CloseTime    string
	Closed       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeekSchedule maps weekdays to their operating hours
type WeekSchedule map[time.Weekday]*OperatingHours

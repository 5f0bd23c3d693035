package domain

import "time"

// Restaurant represents a tenant of the service
type Restaurant struct {
	ID        int64
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

package domain

import "time"

// Training groups classes under a single course offering.
type Training struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package domain

import "time"

// Class is a scheduled run of a training.
type Class struct {
	ID         string
	TrainingID string
	Name       string
	StartDate  time.Time
	EndDate    time.Time
	AccessLink string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

package domain

import "time"

// Student is the enrollable profile linked to a STUDENT account by email.
type Student struct {
	ID          string
	Name        string
	Email       string
	PhoneNumber string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package domain

import "time"

// Enrollment links a student to a class. A student reaches a training
// through any of its classes; the (class, student) pair is unique.
type Enrollment struct {
	ID        string
	ClassID   string
	StudentID string
	CreatedAt time.Time
}

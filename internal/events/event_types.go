package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEnrollmentCreated EventType = "enrollment_created"
	EventEnrollmentDeleted EventType = "enrollment_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID           string      `json:"id"`
	Type         EventType   `json:"type"`
	EnrollmentID string      `json:"enrollment_id"`
	Timestamp    time.Time   `json:"timestamp"`
	Payload      interface{} `json:"payload"`
}

// EnrollmentCreatedPayload payload.
type EnrollmentCreatedPayload struct {
	ClassID      string `json:"class_id"`
	StudentID    string `json:"student_id"`
	StudentEmail string `json:"student_email"`
}

// EnrollmentDeletedPayload payload.
type EnrollmentDeletedPayload struct {
	ClassID   string `json:"class_id"`
	StudentID string `json:"student_id"`
}

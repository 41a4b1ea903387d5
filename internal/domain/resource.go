package domain

import "time"

// ResourceType enumerates supported class material kinds.
type ResourceType string

const (
	ResourceTypeVideo    ResourceType = "VIDEO"
	ResourceTypeDocument ResourceType = "DOCUMENT"
	ResourceTypeLink     ResourceType = "LINK"
)

// Resource is a piece of material attached to a class.
type Resource struct {
	ID             string
	ClassID        string
	ResourceType   ResourceType
	PreviousAccess bool
	Draft          bool
	Name           string
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

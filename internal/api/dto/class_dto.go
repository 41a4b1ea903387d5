package dto

import (
	"time"

	"github.com/guisandroni/classroom-service/internal/domain"
)

// ClassRequest payload for class create/update.
type ClassRequest struct {
	TrainingID string    `json:"trainingId"`
	Name       string    `json:"name"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	AccessLink string    `json:"accessLink"`
}

// ClassResponse projection of a class.
type ClassResponse struct {
	ID         string    `json:"id"`
	TrainingID string    `json:"trainingId"`
	Name       string    `json:"name"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	AccessLink string    `json:"accessLink"`
}

// NewClassResponse maps the domain model.
func NewClassResponse(c *domain.Class) ClassResponse {
	return ClassResponse{
		ID:         c.ID,
		TrainingID: c.TrainingID,
		Name:       c.Name,
		StartDate:  c.StartDate,
		EndDate:    c.EndDate,
		AccessLink: c.AccessLink,
	}
}

// NewClassResponses maps a slice.
func NewClassResponses(classes []domain.Class) []ClassResponse {
	out := make([]ClassResponse, 0, len(classes))
	for i := range classes {
		out = append(out, NewClassResponse(&classes[i]))
	}
	return out
}

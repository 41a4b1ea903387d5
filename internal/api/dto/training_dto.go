package dto

import "github.com/guisandroni/classroom-service/internal/domain"

// TrainingRequest payload for training create/update.
type TrainingRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TrainingResponse projection of a training.
type TrainingResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewTrainingResponse maps the domain model.
func NewTrainingResponse(t *domain.Training) TrainingResponse {
	return TrainingResponse{ID: t.ID, Name: t.Name, Description: t.Description}
}

// NewTrainingResponses maps a slice.
func NewTrainingResponses(trainings []domain.Training) []TrainingResponse {
	out := make([]TrainingResponse, 0, len(trainings))
	for i := range trainings {
		out = append(out, NewTrainingResponse(&trainings[i]))
	}
	return out
}

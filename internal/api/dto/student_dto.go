package dto

import "github.com/guisandroni/classroom-service/internal/domain"

// StudentRequest payload for student create/update.
type StudentRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// StudentResponse projection of a student.
type StudentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// NewStudentResponse maps the domain model.
func NewStudentResponse(s *domain.Student) StudentResponse {
	return StudentResponse{ID: s.ID, Name: s.Name, Email: s.Email, PhoneNumber: s.PhoneNumber}
}

// NewStudentResponses maps a slice.
func NewStudentResponses(students []domain.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, NewStudentResponse(&students[i]))
	}
	return out
}

package dto

import "github.com/guisandroni/classroom-service/internal/domain"

// EnrollmentRequest payload for enrollment creation.
type EnrollmentRequest struct {
	ClassID   string `json:"classId"`
	StudentID string `json:"studentId"`
}

// EnrollmentResponse projection of an enrollment.
type EnrollmentResponse struct {
	ID        string `json:"id"`
	ClassID   string `json:"classId"`
	StudentID string `json:"studentId"`
}

// NewEnrollmentResponse maps the domain model.
func NewEnrollmentResponse(e *domain.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{ID: e.ID, ClassID: e.ClassID, StudentID: e.StudentID}
}

// NewEnrollmentResponses maps a slice.
func NewEnrollmentResponses(enrollments []domain.Enrollment) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		out = append(out, NewEnrollmentResponse(&enrollments[i]))
	}
	return out
}

package dto

import "github.com/guisandroni/classroom-service/internal/domain"

// ResourceRequest payload for resource create/update.
type ResourceRequest struct {
	ClassID        string `json:"classId"`
	ResourceType   string `json:"resourceType"`
	PreviousAccess bool   `json:"previousAccess"`
	Draft          bool   `json:"draft"`
	Name           string `json:"name"`
	Description    string `json:"description"`
}

// ResourceResponse projection of a resource.
type ResourceResponse struct {
	ID             string `json:"id"`
	ClassID        string `json:"classId"`
	ResourceType   string `json:"resourceType"`
	PreviousAccess bool   `json:"previousAccess"`
	Draft          bool   `json:"draft"`
	Name           string `json:"name"`
	Description    string `json:"description"`
}

// NewResourceResponse maps the domain model.
func NewResourceResponse(r *domain.Resource) ResourceResponse {
	return ResourceResponse{
		ID:             r.ID,
		ClassID:        r.ClassID,
		ResourceType:   string(r.ResourceType),
		PreviousAccess: r.PreviousAccess,
		Draft:          r.Draft,
		Name:           r.Name,
		Description:    r.Description,
	}
}

// NewResourceResponses maps a slice.
func NewResourceResponses(resources []domain.Resource) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(resources))
	for i := range resources {
		out = append(out, NewResourceResponse(&resources[i]))
	}
	return out
}

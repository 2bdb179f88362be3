package dto

import (
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

// AddProjectRequest defines the data needed to create a project.
type AddProjectRequest struct {
	ClientName  string    `json:"clientName" binding:"required,notblank"`
	ProjectName string    `json:"projectName" binding:"required,notblank"`
	Amount      uint64    `json:"amount"`
	Deadline    time.Time `json:"deadline" binding:"required"` // RFC 3339
}

// UpdateProjectStatusRequest defines the requested status.
type UpdateProjectStatusRequest struct {
	Status domain.ProjectStatus `json:"status" binding:"required,oneof=ACTIVE COMPLETED CANCELLED OVERDUE"`
}

// ProjectIDParams binds the :projectID path parameter.
type ProjectIDParams struct {
	ProjectID uint64 `uri:"projectID"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ProjectID     uint64               `json:"projectID"`
	BusinessID    uint64               `json:"businessID"`
	ClientName    string               `json:"clientName"`
	ProjectName   string               `json:"projectName"`
	Amount        uint64               `json:"amount"`
	Deadline      time.Time            `json:"deadline"`
	Status        domain.ProjectStatus `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
}

// ToProjectResponse converts a domain.Project to ProjectResponse DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:     p.ProjectID,
		BusinessID:    p.BusinessID,
		ClientName:    p.ClientName,
		ProjectName:   p.ProjectName,
		Amount:        p.Amount,
		Deadline:      p.Deadline,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToProjectResponses converts a slice of domain.Project to []ProjectResponse.
func ToProjectResponses(projects []domain.Project) []ProjectResponse {
	res := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		res[i] = ToProjectResponse(&p)
	}
	return res
}

// ListProjectsResponse wraps a list of projects.
type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// UpdateProjectStatusResponse reports the stored project and whether the
// requested ACTIVE status was turned into OVERDUE.
type UpdateProjectStatusResponse struct {
	Project       ProjectResponse `json:"project"`
	MarkedOverdue bool            `json:"markedOverdue"`
}

package domain

import "time"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectCompleted ProjectStatus = "COMPLETED"
	ProjectCancelled ProjectStatus = "CANCELLED"
	ProjectOverdue   ProjectStatus = "OVERDUE"
)

// IsValid reports whether s is one of the known statuses.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectActive, ProjectCompleted, ProjectCancelled, ProjectOverdue:
		return true
	}
	return false
}

// Project is a piece of client work tracked by a business.
type Project struct {
	ProjectID   uint64        `json:"projectID"` // Sequential per business, starting at 0
	BusinessID  uint64        `json:"businessID"`
	ClientName  string        `json:"clientName"`
	ProjectName string        `json:"projectName"`
	Amount      uint64        `json:"amount"`
	Deadline    time.Time     `json:"deadline"`
	Status      ProjectStatus `json:"status"`
	AuditFields
}

// IsOverdueAt reports whether the project counts as overdue at now, either
// because it was marked so or because it is still active past its deadline.
func (p Project) IsOverdueAt(now time.Time) bool {
	if p.Status == ProjectOverdue {
		return true
	}
	return p.Status == ProjectActive && p.Deadline.Before(now)
}

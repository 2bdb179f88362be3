package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
)

// ProjectPersister is called with the project record about to be committed.
type ProjectPersister func(domain.Project) error

// StatusChange is the outcome of UpdateStatus.
type StatusChange struct {
	Project   domain.Project
	Requested domain.ProjectStatus
	// MarkedOverdue is set when ACTIVE was requested past the deadline and
	// OVERDUE was stored instead.
	MarkedOverdue bool
}

// ProjectStore holds the ordered project list of every business.
type ProjectStore struct {
	mu       sync.RWMutex
	projects map[uint64][]domain.Project
}

func NewProjectStore() *ProjectStore {
	return &ProjectStore{projects: make(map[uint64][]domain.Project)}
}

// Add appends a new ACTIVE project to businessID.
func (s *ProjectStore) Add(businessID uint64, clientName, projectName string, amount uint64, deadline, now time.Time, persist ProjectPersister) (domain.Project, error) {
	clientName, err := RequireText("client name", clientName)
	if err != nil {
		return domain.Project{}, err
	}
	projectName, err = RequireText("project name", projectName)
	if err != nil {
		return domain.Project{}, err
	}
	if amount == 0 {
		return domain.Project{}, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrInvalidAmount)
	}
	if err := ValidateDeadline(deadline, now); err != nil {
		return domain.Project{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.Project{
		ProjectID:   uint64(len(s.projects[businessID])),
		BusinessID:  businessID,
		ClientName:  clientName,
		ProjectName: projectName,
		Amount:      amount,
		Deadline:    deadline,
		Status:      domain.ProjectActive,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if persist != nil {
		if err := persist(p); err != nil {
			return domain.Project{}, err
		}
	}
	s.projects[businessID] = append(s.projects[businessID], p)
	return p, nil
}

// UpdateStatus sets the status of a project. Any transition is allowed, but
// requesting ACTIVE after the deadline stores OVERDUE.
func (s *ProjectStore) UpdateStatus(businessID, projectID uint64, status domain.ProjectStatus, now time.Time, persist ProjectPersister) (StatusChange, error) {
	if !status.IsValid() {
		return StatusChange{}, fmt.Errorf("%w: unknown project status %q", apperrors.ErrInvalidInput, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.projects[businessID]
	if projectID >= uint64(len(list)) {
		return StatusChange{}, fmt.Errorf("%w: project %d of business %d", apperrors.ErrProjectNotFound, projectID, businessID)
	}

	p := list[projectID]
	change := StatusChange{Requested: status}
	if status == domain.ProjectActive && now.After(p.Deadline) {
		status = domain.ProjectOverdue
		change.MarkedOverdue = true
	}
	p.Status = status
	p.LastUpdatedAt = now
	if persist != nil {
		if err := persist(p); err != nil {
			return StatusChange{}, err
		}
	}
	list[projectID] = p
	change.Project = p
	return change, nil
}

// Project returns a single project.
func (s *ProjectStore) Project(businessID, projectID uint64) (domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.projects[businessID]
	if projectID >= uint64(len(list)) {
		return domain.Project{}, fmt.Errorf("%w: project %d of business %d", apperrors.ErrProjectNotFound, projectID, businessID)
	}
	return list[projectID], nil
}

// Projects returns all projects of businessID in insertion order.
func (s *ProjectStore) Projects(businessID uint64) []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Project, len(s.projects[businessID]))
	copy(out, s.projects[businessID])
	return out
}

// Overdue returns the projects that are overdue at now, in insertion order.
// Stored statuses are left as they are.
func (s *ProjectStore) Overdue(businessID uint64, now time.Time) []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Project{}
	for _, p := range s.projects[businessID] {
		if p.IsOverdueAt(now) {
			out = append(out, p)
		}
	}
	return out
}

// Restore loads the persisted projects of one business.
func (s *ProjectStore) Restore(businessID uint64, projects []domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.projects[businessID]; exists {
		return fmt.Errorf("projects of business %d already loaded", businessID)
	}
	list := make([]domain.Project, 0, len(projects))
	for i, p := range projects {
		if p.ProjectID != uint64(i) {
			return fmt.Errorf("business %d: project %d found at position %d", businessID, p.ProjectID, i)
		}
		if !p.Status.IsValid() {
			return fmt.Errorf("business %d: project %d has unknown status %q", businessID, p.ProjectID, p.Status)
		}
		list = append(list, p)
	}
	s.projects[businessID] = list
	return nil
}

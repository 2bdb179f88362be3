package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus mirrors domain.ProjectStatus in the status column.
type ProjectStatus string

// Project is a row of the projects table.
type Project struct {
	BusinessID  int64           `db:"business_id"`
	ProjectID   int64           `db:"project_id"`
	ClientName  string          `db:"client_name"`
	ProjectName string          `db:"project_name"`
	Amount      decimal.Decimal `db:"amount"`
	Deadline    time.Time       `db:"deadline"`
	Status      ProjectStatus   `db:"status"`
	AuditFields                 // Embed common audit fields
}

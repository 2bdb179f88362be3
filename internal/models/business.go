package models

// Business is a row of the businesses table.
type Business struct {
	BusinessID  int64  `db:"business_id"`
	Owner       string `db:"owner"`
	Name        string `db:"name"`
	Type        string `db:"type"`
	AuditFields        // Embed common audit fields
}

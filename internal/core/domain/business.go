package domain

// Business is the top-level tenant: one owner identity, one ledger and one
// project list. BusinessID, Owner and CreatedAt never change after creation.
type Business struct {
	BusinessID uint64 `json:"businessID"` // Sequential, starting at 1
	Owner      string `json:"owner"`      // Caller identity that registered the business
	Name       string `json:"name"`
	Type       string `json:"type"` // Free-form business type, e.g. "retail"
	AuditFields
}

package handlers

// API error codes returned in JSON { "error": "...", "code": "..." } for stable client handling.
const (
	ErrCodeInvalidRequest      = "invalid_request"
	ErrCodeInvalidInput        = "invalid_input"
	ErrCodeInvalidAmount       = "invalid_amount"
	ErrCodeAmountTooLarge      = "amount_too_large"
	ErrCodeInvalidDeadline     = "invalid_deadline"
	ErrCodeDuplicateAccount    = "duplicate_account"
	ErrCodeConflict            = "conflict"
	ErrCodeNoAccount           = "no_account"
	ErrCodeInvalidBusinessID   = "invalid_business_id"
	ErrCodeProjectNotFound     = "project_not_found"
	ErrCodeNotFound            = "not_found"
	ErrCodeInsufficientBalance = "insufficient_balance"
	ErrCodeOverflow            = "overflow"
	ErrCodeBusinessRule        = "business_rule_violation"
	ErrCodeUnauthorized        = "unauthorized"
	ErrCodeForbidden           = "forbidden"
	ErrCodePaused              = "ledger_paused"
	ErrCodeInternal            = "internal_error"
)

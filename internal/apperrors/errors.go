package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrBusinessRule indicates a well-formed request that the ledger rules reject.
var ErrBusinessRule = errors.New("business rule violation")

// Ledger error kinds. Each one wraps one of the categories above so handlers
// can match either the precise kind or the broad category with errors.Is.
var (
	ErrInvalidInput     = fmt.Errorf("%w: invalid input", ErrValidation)
	ErrInvalidAmount    = fmt.Errorf("%w: invalid amount", ErrValidation)
	ErrAmountTooLarge   = fmt.Errorf("%w: amount too large", ErrInvalidAmount)
	ErrInvalidDeadline  = fmt.Errorf("%w: deadline must be in the future", ErrValidation)
	ErrDuplicateAccount = fmt.Errorf("%w: identity already owns a business", ErrDuplicate)

	ErrNoAccount         = fmt.Errorf("%w: caller has no business", ErrNotFound)
	ErrInvalidBusinessID = fmt.Errorf("%w: unknown business id", ErrNotFound)
	ErrProjectNotFound   = fmt.Errorf("%w: unknown project id", ErrNotFound)

	ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance", ErrBusinessRule)
	ErrOverflow            = fmt.Errorf("%w: accumulator overflow", ErrBusinessRule)
)

// ErrUnauthorized is returned when a non-admin identity calls an admin operation.
var ErrUnauthorized = errors.New("unauthorized")

// ErrPaused is returned for mutating calls while the ledger is paused.
var ErrPaused = errors.New("ledger is paused")

// AppError carries an HTTP-ish status code alongside an underlying error.
// It is used for infrastructure failures such as database errors.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Package ledger holds the in-memory bookkeeping core: the account registry,
// the per-business transaction ledgers and the per-business project lists.
//
// Every mutating operation follows the same shape under the store's write
// lock: validate, build the new record, hand it to the persist callback, and
// only then commit it to memory. A validation or persistence failure
// therefore leaves no trace.
package ledger

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
)

// DefaultMaxAmount bounds a single amount so accumulators cannot realistically overflow.
const DefaultMaxAmount uint64 = math.MaxUint64 / 2

// RequireText trims v and fails with ErrInvalidInput if nothing is left.
func RequireText(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("%w: %s must not be empty", apperrors.ErrInvalidInput, field)
	}
	return v, nil
}

// ValidateAmount checks 0 < amount <= maxAmount. A zero maxAmount means DefaultMaxAmount.
func ValidateAmount(amount, maxAmount uint64) error {
	if maxAmount == 0 {
		maxAmount = DefaultMaxAmount
	}
	if amount == 0 {
		return fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrInvalidAmount)
	}
	if amount > maxAmount {
		return fmt.Errorf("%w: %d exceeds the maximum of %d", apperrors.ErrAmountTooLarge, amount, maxAmount)
	}
	return nil
}

// ValidateDeadline requires deadline to be strictly after now.
func ValidateDeadline(deadline, now time.Time) error {
	if !deadline.After(now) {
		return fmt.Errorf("%w: %s is not after %s", apperrors.ErrInvalidDeadline,
			deadline.UTC().Format(time.RFC3339), now.UTC().Format(time.RFC3339))
	}
	return nil
}

package mapping

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// ToDecimal converts a uint64 amount to a NUMERIC-compatible decimal.
func ToDecimal(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}

// ToUint64 converts a stored amount back, rejecting fractions and values out of range.
func ToUint64(d decimal.Decimal) (uint64, error) {
	if !d.IsInteger() || d.IsNegative() {
		return 0, fmt.Errorf("stored amount %s is not a non-negative integer", d)
	}
	b := d.BigInt()
	if !b.IsUint64() {
		return 0, fmt.Errorf("stored amount %s exceeds %d", d, uint64(math.MaxUint64))
	}
	return b.Uint64(), nil
}

// ToInt64ID converts an id for a BIGINT column.
func ToInt64ID(id uint64) (int64, error) {
	if id > math.MaxInt64 {
		return 0, fmt.Errorf("id %d does not fit a BIGINT column", id)
	}
	return int64(id), nil
}

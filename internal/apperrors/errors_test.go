package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestErrorKinds_WrapCategories(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category error
	}{
		{"invalid input", apperrors.ErrInvalidInput, apperrors.ErrValidation},
		{"invalid amount", apperrors.ErrInvalidAmount, apperrors.ErrValidation},
		{"amount too large is an invalid amount", apperrors.ErrAmountTooLarge, apperrors.ErrInvalidAmount},
		{"invalid deadline", apperrors.ErrInvalidDeadline, apperrors.ErrValidation},
		{"duplicate account", apperrors.ErrDuplicateAccount, apperrors.ErrDuplicate},
		{"no account", apperrors.ErrNoAccount, apperrors.ErrNotFound},
		{"invalid business id", apperrors.ErrInvalidBusinessID, apperrors.ErrNotFound},
		{"project not found", apperrors.ErrProjectNotFound, apperrors.ErrNotFound},
		{"insufficient balance", apperrors.ErrInsufficientBalance, apperrors.ErrBusinessRule},
		{"overflow", apperrors.ErrOverflow, apperrors.ErrBusinessRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("%w: context", tt.err)
			assert.ErrorIs(t, wrapped, tt.err)
			assert.ErrorIs(t, wrapped, tt.category)
		})
	}
}

func TestErrorKinds_Distinct(t *testing.T) {
	assert.False(t, errors.Is(apperrors.ErrNoAccount, apperrors.ErrInvalidBusinessID))
	assert.False(t, errors.Is(apperrors.ErrInvalidAmount, apperrors.ErrAmountTooLarge))
	assert.False(t, errors.Is(apperrors.ErrUnauthorized, apperrors.ErrValidation))
}

func TestAppError(t *testing.T) {
	inner := errors.New("connection refused")
	err := apperrors.NewAppError(http.StatusInternalServerError, "failed to save business", inner)

	assert.Equal(t, "failed to save business: connection refused", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, http.StatusInternalServerError, err.Code)

	bare := apperrors.NewAppError(http.StatusServiceUnavailable, "unavailable", nil)
	assert.Equal(t, "unavailable", bare.Error())
}

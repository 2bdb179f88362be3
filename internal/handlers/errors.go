package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// errorMapping pairs an error kind with its response. Order matters: precise
// kinds come before the categories they wrap.
var errorMapping = []struct {
	target error
	status int
	code   string
}{
	{apperrors.ErrPaused, http.StatusServiceUnavailable, ErrCodePaused},
	{apperrors.ErrUnauthorized, http.StatusForbidden, ErrCodeForbidden},
	{apperrors.ErrAmountTooLarge, http.StatusBadRequest, ErrCodeAmountTooLarge},
	{apperrors.ErrInvalidAmount, http.StatusBadRequest, ErrCodeInvalidAmount},
	{apperrors.ErrInvalidDeadline, http.StatusBadRequest, ErrCodeInvalidDeadline},
	{apperrors.ErrInvalidInput, http.StatusBadRequest, ErrCodeInvalidInput},
	{apperrors.ErrValidation, http.StatusBadRequest, ErrCodeInvalidRequest},
	{apperrors.ErrDuplicateAccount, http.StatusConflict, ErrCodeDuplicateAccount},
	{apperrors.ErrDuplicate, http.StatusConflict, ErrCodeConflict},
	{apperrors.ErrNoAccount, http.StatusNotFound, ErrCodeNoAccount},
	{apperrors.ErrInvalidBusinessID, http.StatusNotFound, ErrCodeInvalidBusinessID},
	{apperrors.ErrProjectNotFound, http.StatusNotFound, ErrCodeProjectNotFound},
	{apperrors.ErrNotFound, http.StatusNotFound, ErrCodeNotFound},
	{apperrors.ErrInsufficientBalance, http.StatusUnprocessableEntity, ErrCodeInsufficientBalance},
	{apperrors.ErrOverflow, http.StatusUnprocessableEntity, ErrCodeOverflow},
	{apperrors.ErrBusinessRule, http.StatusUnprocessableEntity, ErrCodeBusinessRule},
}

// respondError writes the JSON error for err. Infrastructure failures are
// logged as errors and their details are not sent to the client.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			logger.Warn(action+" rejected", slog.String("error", err.Error()), slog.String("code", m.code))
			c.JSON(m.status, dto.ErrorResponse{Error: err.Error(), Code: m.code})
			return
		}
	}

	status := http.StatusInternalServerError
	message := "Internal server error"
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= http.StatusBadRequest {
			status = appErr.Code
		}
		message = appErr.Message
	}
	logger.Error(action+" failed", slog.String("error", err.Error()))
	c.JSON(status, dto.ErrorResponse{Error: message, Code: ErrCodeInternal})
}

// respondBindError answers a request whose body, path or query could not be bound.
func respondBindError(c *gin.Context, err error, what string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + what + ": " + err.Error(), Code: ErrCodeInvalidRequest})
}

// requireCaller returns the authenticated identity or answers 401.
func requireCaller(c *gin.Context) (string, bool) {
	id, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized", Code: ErrCodeUnauthorized})
	}
	return id, ok
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles recording and reading ledger entries.
type transactionHandler struct {
	transactionService portssvc.TransactionSvc
	defaultLimit       int
}

func newTransactionHandler(ts portssvc.TransactionSvc, defaultLimit int) *transactionHandler {
	return &transactionHandler{transactionService: ts, defaultLimit: defaultLimit}
}

func registerTransactionRoutes(rg *gin.RouterGroup, businesses *gin.RouterGroup, ts portssvc.TransactionSvc, defaultLimit int) {
	h := newTransactionHandler(ts, defaultLimit)

	rg.POST("/transactions", h.recordTransaction)
	businesses.GET("/:businessID/summary", h.getFinancialSummary)
	businesses.GET("/:businessID/transactions", h.listTransactions)
}

// recordTransaction godoc
// @Summary Record a transaction
// @Description Appends a sale, purchase or expense to the caller's ledger
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.RecordTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or amount"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Caller has no business"
// @Failure 422 {object} dto.ErrorResponse "Insufficient balance or overflow"
// @Failure 503 {object} dto.ErrorResponse "Ledger paused"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) recordTransaction(c *gin.Context) {
	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("caller_id", callerID))
	logger.Info("Received request to record transaction", slog.String("kind", string(req.Kind)), slog.Uint64("amount", req.Amount))

	txn, err := h.transactionService.RecordTransaction(c.Request.Context(), callerID, req)
	if err != nil {
		respondError(c, err, "Record transaction")
		return
	}

	logger.Info("Transaction recorded successfully", slog.Uint64("transaction_id", txn.TransactionID), slog.Uint64("business_id", txn.BusinessID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getFinancialSummary godoc
// @Summary Get financial summary
// @Description Returns sales, expenses, net profit, balance and entry count of a business
// @Tags transactions
// @Produce  json
// @Param   businessID path int true "Business ID"
// @Success 200 {object} dto.FinancialSummaryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid business ID"
// @Failure 404 {object} dto.ErrorResponse "Unknown business ID"
// @Security BearerAuth
// @Router /businesses/{businessID}/summary [get]
func (h *transactionHandler) getFinancialSummary(c *gin.Context) {
	var params dto.BusinessIDParams
	if err := c.ShouldBindUri(&params); err != nil {
		respondBindError(c, err, "business ID")
		return
	}

	summary, err := h.transactionService.GetFinancialSummary(c.Request.Context(), params.BusinessID)
	if err != nil {
		respondError(c, err, "Get financial summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(summary))
}

// listTransactions godoc
// @Summary List transaction history
// @Description Returns up to limit ledger entries of a business, most recent first
// @Tags transactions
// @Produce  json
// @Param   businessID path int true "Business ID"
// @Param   limit query int false "Maximum number of entries" minimum(0) maximum(1000)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid business ID or limit"
// @Failure 404 {object} dto.ErrorResponse "Unknown business ID"
// @Security BearerAuth
// @Router /businesses/{businessID}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.BusinessIDParams
	if err := c.ShouldBindUri(&params); err != nil {
		respondBindError(c, err, "business ID")
		return
	}
	var query dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err, "query parameters")
		return
	}

	limit := h.defaultLimit
	if query.Limit != nil {
		limit = *query.Limit
	}

	txns, err := h.transactionService.GetTransactionHistory(c.Request.Context(), params.BusinessID, limit)
	if err != nil {
		respondError(c, err, "List transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponses(txns)})
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// businessHandler handles HTTP requests related to business accounts.
type businessHandler struct {
	businessService portssvc.BusinessSvc
}

func newBusinessHandler(bs portssvc.BusinessSvc) *businessHandler {
	return &businessHandler{businessService: bs}
}

// registerBusinessRoutes registers the /businesses routes that act on the caller
// or on a business looked up by id.
func registerBusinessRoutes(rg *gin.RouterGroup, businessService portssvc.BusinessSvc) *gin.RouterGroup {
	h := newBusinessHandler(businessService)

	businesses := rg.Group("/businesses")
	{
		businesses.POST("", h.createBusiness)
		businesses.GET("/me", h.getMyBusiness)
		businesses.PUT("/me", h.updateMyBusiness)
		businesses.GET("/:businessID", h.getBusiness)
	}
	return businesses
}

// createBusiness godoc
// @Summary Register a business
// @Description Creates the single business owned by the authenticated identity
// @Tags businesses
// @Accept  json
// @Produce  json
// @Param   business body dto.CreateBusinessRequest true "Business details"
// @Success 201 {object} dto.BusinessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Identity already owns a business"
// @Failure 503 {object} dto.ErrorResponse "Ledger paused"
// @Security BearerAuth
// @Router /businesses [post]
func (h *businessHandler) createBusiness(c *gin.Context) {
	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("caller_id", callerID))
	logger.Info("Received request to create business", slog.String("name", req.Name))

	business, err := h.businessService.CreateAccount(c.Request.Context(), callerID, req)
	if err != nil {
		respondError(c, err, "Create business")
		return
	}

	logger.Info("Business created successfully", slog.Uint64("business_id", business.BusinessID))
	c.JSON(http.StatusCreated, dto.ToBusinessResponse(business))
}

// getMyBusiness godoc
// @Summary Get my business
// @Description Returns the business owned by the authenticated identity
// @Tags businesses
// @Produce  json
// @Success 200 {object} dto.BusinessResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Caller has no business"
// @Security BearerAuth
// @Router /businesses/me [get]
func (h *businessHandler) getMyBusiness(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}

	business, err := h.businessService.GetMyBusiness(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, err, "Get my business")
		return
	}
	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

// updateMyBusiness godoc
// @Summary Update my business
// @Description Replaces the name and type of the caller's business
// @Tags businesses
// @Accept  json
// @Produce  json
// @Param   business body dto.UpdateBusinessRequest true "New business details"
// @Success 200 {object} dto.BusinessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Caller has no business"
// @Failure 503 {object} dto.ErrorResponse "Ledger paused"
// @Security BearerAuth
// @Router /businesses/me [put]
func (h *businessHandler) updateMyBusiness(c *gin.Context) {
	var req dto.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}

	business, err := h.businessService.UpdateBusinessInfo(c.Request.Context(), callerID, req)
	if err != nil {
		respondError(c, err, "Update business")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Business updated successfully",
		slog.String("caller_id", callerID), slog.Uint64("business_id", business.BusinessID))
	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

// getBusiness godoc
// @Summary Get a business by ID
// @Description Returns the public details of any business
// @Tags businesses
// @Produce  json
// @Param   businessID path int true "Business ID"
// @Success 200 {object} dto.BusinessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid business ID"
// @Failure 404 {object} dto.ErrorResponse "Unknown business ID"
// @Security BearerAuth
// @Router /businesses/{businessID} [get]
func (h *businessHandler) getBusiness(c *gin.Context) {
	var params dto.BusinessIDParams
	if err := c.ShouldBindUri(&params); err != nil {
		respondBindError(c, err, "business ID")
		return
	}

	business, err := h.businessService.GetBusinessInfo(c.Request.Context(), params.BusinessID)
	if err != nil {
		respondError(c, err, "Get business")
		return
	}
	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

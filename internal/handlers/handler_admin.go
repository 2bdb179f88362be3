package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type adminHandler struct {
	adminService portssvc.AdminSvc
}

func registerAdminRoutes(rg *gin.RouterGroup, as portssvc.AdminSvc) {
	h := &adminHandler{adminService: as}

	admin := rg.Group("/admin")
	{
		admin.POST("/pause", h.pause)
		admin.POST("/unpause", h.unpause)
		admin.GET("/status", h.status)
	}
}

// pause godoc
// @Summary Pause the ledger
// @Description Blocks all mutating operations until unpaused. Admin only.
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.PauseStateResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not the admin"
// @Security BearerAuth
// @Router /admin/pause [post]
func (h *adminHandler) pause(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	if err := h.adminService.AdminPause(c.Request.Context(), callerID); err != nil {
		respondError(c, err, "Pause ledger")
		return
	}
	c.JSON(http.StatusOK, dto.PauseStateResponse{Paused: h.adminService.IsPaused()})
}

// unpause godoc
// @Summary Unpause the ledger
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.PauseStateResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not the admin"
// @Security BearerAuth
// @Router /admin/unpause [post]
func (h *adminHandler) unpause(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	if err := h.adminService.AdminUnpause(c.Request.Context(), callerID); err != nil {
		respondError(c, err, "Unpause ledger")
		return
	}
	c.JSON(http.StatusOK, dto.PauseStateResponse{Paused: h.adminService.IsPaused()})
}

// status godoc
// @Summary Get pause state
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.PauseStateResponse
// @Security BearerAuth
// @Router /admin/status [get]
func (h *adminHandler) status(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PauseStateResponse{Paused: h.adminService.IsPaused()})
}

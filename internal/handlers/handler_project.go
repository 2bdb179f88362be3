package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// projectHandler handles client project requests.
type projectHandler struct {
	projectService portssvc.ProjectSvc
}

func newProjectHandler(ps portssvc.ProjectSvc) *projectHandler {
	return &projectHandler{projectService: ps}
}

func registerProjectRoutes(rg *gin.RouterGroup, businesses *gin.RouterGroup, ps portssvc.ProjectSvc) {
	h := newProjectHandler(ps)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.addProject)
		projects.PUT("/:projectID/status", h.updateProjectStatus)
	}

	businesses.GET("/:businessID/projects", h.listProjects)
	businesses.GET("/:businessID/projects/overdue", h.listOverdueProjects)
	businesses.GET("/:businessID/projects/:projectID", h.getProject)
}

// addProject godoc
// @Summary Add a project
// @Description Creates an ACTIVE client project for the caller's business
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   project body dto.AddProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input, amount or deadline"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Caller has no business"
// @Failure 503 {object} dto.ErrorResponse "Ledger paused"
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) addProject(c *gin.Context) {
	var req dto.AddProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}

	project, err := h.projectService.AddProject(c.Request.Context(), callerID, req)
	if err != nil {
		respondError(c, err, "Add project")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Project created successfully",
		slog.String("caller_id", callerID), slog.Uint64("project_id", project.ProjectID))
	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// updateProjectStatus godoc
// @Summary Update project status
// @Description Sets the status of one of the caller's projects. ACTIVE past the deadline is stored as OVERDUE.
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   projectID path int true "Project ID"
// @Param   status body dto.UpdateProjectStatusRequest true "Requested status"
// @Success 200 {object} dto.UpdateProjectStatusResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Unknown project or no business"
// @Failure 503 {object} dto.ErrorResponse "Ledger paused"
// @Security BearerAuth
// @Router /projects/{projectID}/status [put]
func (h *projectHandler) updateProjectStatus(c *gin.Context) {
	var params dto.ProjectIDParams
	if err := c.ShouldBindUri(&params); err != nil {
		respondBindError(c, err, "project ID")
		return
	}
	var req dto.UpdateProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}

	project, markedOverdue, err := h.projectService.UpdateProjectStatus(c.Request.Context(), callerID, params.ProjectID, req)
	if err != nil {
		respondError(c, err, "Update project status")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Project status updated",
		slog.Uint64("project_id", project.ProjectID),
		slog.String("status", string(project.Status)),
		slog.Bool("marked_overdue", markedOverdue))
	c.JSON(http.StatusOK, dto.UpdateProjectStatusResponse{
		Project:       dto.ToProjectResponse(project),
		MarkedOverdue: markedOverdue,
	})
}

// listProjects godoc
// @Summary List projects
// @Description Returns every project of a business in creation order
// @Tags projects
// @Produce  json
// @Param   businessID path int true "Business ID"
// @Success 200 {object} dto.ListProjectsResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown business ID"
// @Security BearerAuth
// @Router /businesses/{businessID}/projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	var params dto.BusinessIDParams
	if err := c.ShouldBindUri(&params); err != nil {
		respondBindError(c, err, "business ID")
		return
	}

	projects, err := h.projectService.GetProjects(c.Request.Context(), params.BusinessID)
	if err != nil {
		respondError(c, err, "List projects")
		return
	}
	c.JSON(http.StatusOK, dto.ListProjectsResponse{Projects: dto.ToProjectResponses(projects)})
}

// listOverdueProjects godoc
// @Summary List overdue projects
// @Description Returns projects marked OVERDUE or still ACTIVE past their deadline
// @Tags projects
// @Produce  json
// @Param   businessID path int true "Business ID"
// @Success 200 {object} dto.ListProjectsResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown business ID"
// @Security BearerAuth
// @Router /businesses/{businessID}/projects/overdue [get]
func (h *projectHandler) listOverdueProjects(c *gin.Context) {
	var params dto.BusinessIDParams
	if err := c.ShouldBindUri(&params); err != nil {
		respondBindError(c, err, "business ID")
		return
	}

	projects, err := h.projectService.GetOverdueProjects(c.Request.Context(), params.BusinessID)
	if err != nil {
		respondError(c, err, "List overdue projects")
		return
	}
	c.JSON(http.StatusOK, dto.ListProjectsResponse{Projects: dto.ToProjectResponses(projects)})
}

// getProject godoc
// @Summary Get a project
// @Tags projects
// @Produce  json
// @Param   businessID path int true "Business ID"
// @Param   projectID path int true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown business or project"
// @Security BearerAuth
// @Router /businesses/{businessID}/projects/{projectID} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	var businessParams dto.BusinessIDParams
	if err := c.ShouldBindUri(&businessParams); err != nil {
		respondBindError(c, err, "business ID")
		return
	}
	var projectParams dto.ProjectIDParams
	if err := c.ShouldBindUri(&projectParams); err != nil {
		respondBindError(c, err, "project ID")
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), businessParams.BusinessID, projectParams.ProjectID)
	if err != nil {
		respondError(c, err, "Get project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

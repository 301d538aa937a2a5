package handlers

import (
	"net/http"

	"app-builder-backend/internal/auth"
	apperrors "app-builder-backend/internal/errors"
	"app-builder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// FilesResponse lists the stored artifacts of a project
type FilesResponse struct {
	Files []string `json:"files"`
}

func requireUser(c *gin.Context) (string, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingUser)
	}
	return userID, ok
}

// requestBaseURL is the origin the client used to reach us
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}

// CreateProject handles POST /projects
// @Summary Create a new project
// @Description Create a draft project owned by the caller
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest false "Project data"
// @Success 201 {object} service.ProjectResponse "Successfully created project"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.CreateProjectRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	project, err := h.projectService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// ListProjects handles GET /projects
// @Summary List projects
// @Description List the caller's projects, newest first
// @Tags projects
// @Produce json
// @Success 200 {array} service.ProjectResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	projects, err := h.projectService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject handles GET /projects/:id
// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} service.ProjectResponse "Successfully retrieved project"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	project, err := h.projectService.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// BuildProject handles POST /projects/:id/build
// @Summary Build and deploy a project
// @Description Generate the app from the project conversation, provision its database and deploy it
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} service.BuildResponse "Deployed"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "A build is already running"
// @Failure 500 {object} BuildErrorResponse "Build failed"
// @Security BearerAuth
// @Router /projects/{id}/build [post]
func (h *ProjectHandler) BuildProject(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	result, err := h.projectService.Build(c.Request.Context(), userID, c.Param("id"), requestBaseURL(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListProjectFiles handles GET /projects/:id/files
// @Summary List generated files
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} FilesResponse
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/files [get]
func (h *ProjectHandler) ListProjectFiles(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	files, err := h.projectService.ListFiles(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if files == nil {
		files = []string{}
	}

	c.JSON(http.StatusOK, FilesResponse{Files: files})
}

// DeleteProject handles DELETE /projects/:id
// @Summary Delete project
// @Description Tear down the deployed app, its database and artifacts, then delete the project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} service.DeleteProjectResponse "Deleted, possibly with warnings"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "A build is running"
// @Failure 500 {object} ErrorResponse "Teardown failed"
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	result, err := h.projectService.Delete(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

package handlers

import (
	"net/http"

	"github.com/clientdeck-dev/clientdeck/internal/store"
	"github.com/clientdeck-dev/clientdeck/internal/utils"
	"github.com/gin-gonic/gin"
)

type CreateProjectRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type UpdateProjectRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type CreateUpdateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ProjectsHandler struct {
	tenants store.TenantStore
}

func NewProjectsHandler(tenants store.TenantStore) *ProjectsHandler {
	return &ProjectsHandler{tenants: tenants}
}

// clientAndProjectIDs parses both path parameters, reporting not-found for
// anything non-numeric.
func clientAndProjectIDs(ctx *gin.Context) (uint, uint, bool) {
	clientID, err := utils.ParamUint(ctx, "client_id")

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return 0, 0, false
	}

	projectID, err := utils.ParamUint(ctx, "project_id")

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return 0, 0, false
	}

	return clientID, projectID, true
}

func (h *ProjectsHandler) Create(ctx *gin.Context) {
	ownerID, err := utils.GetCurrentOwnerID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not authenticated"})
		return
	}

	clientID, err := utils.ParamUint(ctx, "client_id")

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	var req CreateProjectRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := h.tenants.CreateProject(ownerID, clientID, store.CreateProjectParams{
		Name:   req.Name,
		Status: req.Status,
	})

	if err != nil {
		respondStoreError(ctx, err, "Client not found")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"project": project})
}

func (h *ProjectsHandler) Update(ctx *gin.Context) {
	ownerID, err := utils.GetCurrentOwnerID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not authenticated"})
		return
	}

	clientID, projectID, ok := clientAndProjectIDs(ctx)

	if !ok {
		return
	}

	var req UpdateProjectRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := h.tenants.UpdateProject(ownerID, clientID, projectID, store.UpdateProjectParams{
		Name:   req.Name,
		Status: req.Status,
	})

	if err != nil {
		respondStoreError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"project": project})
}

func (h *ProjectsHandler) Delete(ctx *gin.Context) {
	ownerID, err := utils.GetCurrentOwnerID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not authenticated"})
		return
	}

	clientID, projectID, ok := clientAndProjectIDs(ctx)

	if !ok {
		return
	}

	if err := h.tenants.DeleteProject(ownerID, clientID, projectID); err != nil {
		respondStoreError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

func (h *ProjectsHandler) CreateUpdate(ctx *gin.Context) {
	ownerID, err := utils.GetCurrentOwnerID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not authenticated"})
		return
	}

	clientID, projectID, ok := clientAndProjectIDs(ctx)

	if !ok {
		return
	}

	var req CreateUpdateRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	update, err := h.tenants.CreateUpdate(ownerID, clientID, projectID, store.CreateUpdateParams{
		Title:   req.Title,
		Content: req.Content,
	})

	if err != nil {
		respondStoreError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"update": update})
}

package handlers

import (
	"net/http"

	"github.com/clientdeck-dev/clientdeck/internal/store"
	"github.com/clientdeck-dev/clientdeck/internal/utils"
	"github.com/gin-gonic/gin"
)

// RegisterFileRequest registers a file reference by name. Storage and
// streaming of the file bytes live outside this service.
type RegisterFileRequest struct {
	OriginalName string `json:"original_name"`
	ProjectID    *uint  `json:"project_id"`
}

type FilesHandler struct {
	tenants store.TenantStore
}

func NewFilesHandler(tenants store.TenantStore) *FilesHandler {
	return &FilesHandler{tenants: tenants}
}

func (h *FilesHandler) Create(ctx *gin.Context) {
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

	var req RegisterFileRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	file, err := h.tenants.CreateFile(ownerID, clientID, store.CreateFileParams{
		OriginalName: req.OriginalName,
		ProjectID:    req.ProjectID,
	})

	if err != nil {
		respondStoreError(ctx, err, "Client not found")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"file": file})
}

func (h *FilesHandler) Delete(ctx *gin.Context) {
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

	fileID, err := utils.ParamUint(ctx, "file_id")

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	if err := h.tenants.DeleteFile(ownerID, clientID, fileID); err != nil {
		respondStoreError(ctx, err, "File not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}

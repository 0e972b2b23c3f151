package handlers

import (
	"net/http"

	"github.com/clientdeck-dev/clientdeck/internal/aggregate"
	"github.com/clientdeck-dev/clientdeck/internal/store"
	"github.com/clientdeck-dev/clientdeck/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CreateClientRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Company    string `json:"company"`
	Subdomain  string `json:"subdomain"`
	BrandColor string `json:"brand_color"`
}

type UpdateClientRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Company    string `json:"company"`
	BrandColor string `json:"brand_color"`
}

type ClientsHandler struct {
	tenants store.TenantStore
}

func NewClientsHandler(tenants store.TenantStore) *ClientsHandler {
	return &ClientsHandler{tenants: tenants}
}

func (h *ClientsHandler) Create(ctx *gin.Context) {
	ownerID, err := utils.GetCurrentOwnerID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not authenticated"})
		return
	}

	var req CreateClientRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	client, err := h.tenants.CreateClient(ownerID, store.CreateClientParams{
		Name:       req.Name,
		Email:      req.Email,
		Company:    req.Company,
		Subdomain:  req.Subdomain,
		BrandColor: req.BrandColor,
	})

	if err != nil {
		respondStoreError(ctx, err, "Client not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"client":  aggregate.Info(client),
		"message": "Client portal created successfully",
	})
}

func (h *ClientsHandler) List(ctx *gin.Context) {
	ownerID, err := utils.GetCurrentOwnerID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Owner not authenticated"})
		return
	}

	clients, err := h.tenants.ListClientsForOwner(ownerID)

	if err != nil {
		zap.L().Error("failed to list clients", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"clients": aggregate.SummarizeClients(clients)})
}

func (h *ClientsHandler) Get(ctx *gin.Context) {
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

	client, err := h.tenants.GetClientDetail(ownerID, clientID)

	if err != nil {
		respondStoreError(ctx, err, "Client not found")
		return
	}

	ctx.JSON(http.StatusOK, aggregate.BuildClientDetail(client))
}

func (h *ClientsHandler) Update(ctx *gin.Context) {
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

	var req UpdateClientRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	client, err := h.tenants.UpdateClient(ownerID, clientID, store.UpdateClientParams{
		Name:       req.Name,
		Email:      req.Email,
		Company:    req.Company,
		BrandColor: req.BrandColor,
	})

	if err != nil {
		respondStoreError(ctx, err, "Client not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"client":  aggregate.Info(client),
		"message": "Client updated successfully",
	})
}

func (h *ClientsHandler) Delete(ctx *gin.Context) {
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

	if err := h.tenants.DeleteClient(ownerID, clientID); err != nil {
		respondStoreError(ctx, err, "Client not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}

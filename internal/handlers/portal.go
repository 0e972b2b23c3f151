package handlers

import (
	"net/http"

	"github.com/clientdeck-dev/clientdeck/internal/aggregate"
	"github.com/clientdeck-dev/clientdeck/internal/store"
	"github.com/gin-gonic/gin"
)

// PortalHandler serves the public, unauthenticated portal view. It resolves
// the tenant by slug only; there is no ownership check and no mutation path
// on this surface.
type PortalHandler struct {
	tenants store.TenantStore
}

func NewPortalHandler(tenants store.TenantStore) *PortalHandler {
	return &PortalHandler{tenants: tenants}
}

func (h *PortalHandler) Show(ctx *gin.Context) {
	client, err := h.tenants.ResolveBySlug(ctx.Param("subdomain"))

	if err != nil {
		// Unknown slugs render exactly like any other absence; an
		// anonymous caller cannot probe which tenants exist.
		respondStoreError(ctx, err, "Portal not found")
		return
	}

	ctx.JSON(http.StatusOK, aggregate.BuildPortal(client))
}

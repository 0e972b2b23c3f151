package utils

import (
	"fmt"

	"github.com/clientdeck-dev/clientdeck/internal/types"
	"github.com/gin-gonic/gin"
)

func GetCurrentOwner(ctx *gin.Context) (types.AuthenticatedOwner, error) {
	owner, exists := ctx.Get(types.ContextOwnerKey)

	if !exists {
		return types.AuthenticatedOwner{}, fmt.Errorf("owner not authenticated")
	}

	authenticatedOwner, ok := owner.(types.AuthenticatedOwner)

	if !ok {
		return types.AuthenticatedOwner{}, fmt.Errorf("invalid owner type in context")
	}

	return authenticatedOwner, nil
}

func GetCurrentOwnerID(ctx *gin.Context) (uint, error) {
	owner, err := GetCurrentOwner(ctx)

	if err != nil {
		return 0, err
	}

	return owner.ID, nil
}

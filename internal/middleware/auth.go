package middleware

import (
	"net/http"
	"strings"

	"github.com/clientdeck-dev/clientdeck/internal/auth"
	"github.com/clientdeck-dev/clientdeck/internal/store"
	"github.com/clientdeck-dev/clientdeck/internal/types"
	"github.com/gin-gonic/gin"
)

// AuthenticatedOwner lives in the types package so that helpers there can
// reference it without importing this package; the alias keeps the
// middleware.AuthenticatedOwner name intact for callers.
type AuthenticatedOwner = types.AuthenticatedOwner

// AuthMiddleware verifies the bearer credential and loads the owner it
// names. Any failure along the way is the same 401; a missing token and a
// tampered one are not distinguished.
func AuthMiddleware(owners store.OwnerStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		identity, ok := auth.Verify(parts[1])

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		owner, err := owners.FindOwnerByID(identity.ID)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		ctx.Set(types.ContextOwnerKey, AuthenticatedOwner{
			ID:    owner.ID,
			Name:  owner.Name,
			Email: owner.Email,
		})
		ctx.Next()
	}
}

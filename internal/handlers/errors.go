package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/clientdeck-dev/clientdeck/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// validationMessage strips the sentinel prefix so the client sees only the
// human-readable part, e.g. "name and email are required".
func validationMessage(err error, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error())
	msg = strings.TrimPrefix(msg, ": ")
	if msg == "" {
		return sentinel.Error()
	}
	return msg
}

// respondStoreError maps store sentinels onto the HTTP surface. Ownership
// denial arrives here already collapsed into ErrNotFound, so every denial
// renders as the given not-found message.
func respondStoreError(ctx *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
	case errors.Is(err, store.ErrValidation):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err, store.ErrValidation)})
	case errors.Is(err, store.ErrConflict):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err, store.ErrConflict)})
	default:
		zap.L().Error("store operation failed",
			zap.String("path", ctx.FullPath()),
			zap.Error(err),
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

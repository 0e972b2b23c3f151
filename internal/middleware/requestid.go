package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware propagates an inbound X-Request-ID or mints one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)

		if requestID == "" {
			requestID = uuid.New().String()
			ctx.Request.Header.Set(RequestIDHeader, requestID)
		}

		ctx.Writer.Header().Set(RequestIDHeader, requestID)
		ctx.Next()
	}
}

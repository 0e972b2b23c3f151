package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParamUint parses a numeric path parameter. A non-numeric id can never
// name an existing record, so callers treat a parse failure as not-found.
func ParamUint(ctx *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 64)

	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}

	return uint(value), nil
}

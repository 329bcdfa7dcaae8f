package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "vitalis/internal/shared/errors"
)

// ParseIDParam reads the :id path parameter as an unsigned integer.
func ParseIDParam(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.NewBadRequestError("invalid id", raw)
	}
	return uint(id), nil
}

// ParseUintQuery reads an optional unsigned integer query parameter,
// returning nil when absent.
func ParseUintQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid "+name, raw)
	}
	u := uint(v)
	return &u, nil
}

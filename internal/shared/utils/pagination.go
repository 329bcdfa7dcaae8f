package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"vitalis/internal/shared/errors"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination holds validated page/page_size query parameters.
type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Pagination) Limit() int {
	return p.PageSize
}

// ParsePagination reads page and page_size from the query string, applying
// defaults and clamping page_size to MaxPageSize.
func ParsePagination(c *gin.Context) (Pagination, error) {
	p := Pagination{Page: DefaultPage, PageSize: DefaultPageSize}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return p, errors.NewValidationError("invalid page parameter", raw)
		}
		p.Page = page
	}

	if raw := c.Query("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return p, errors.NewValidationError("invalid page_size parameter", raw)
		}
		if size > MaxPageSize {
			size = MaxPageSize
		}
		p.PageSize = size
	}

	return p, nil
}

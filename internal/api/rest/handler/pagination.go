package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PaginationParams holds pagination parameters
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the database offset
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ParsePagination parses pagination parameters from context
func ParsePagination(c *gin.Context) PaginationParams {
	return ParsePaginationLimited(c, 20, 100)
}

// ParsePaginationLimited parses pagination parameters with custom
// default and maximum page sizes
func ParsePaginationLimited(c *gin.Context, defaultSize, maxSize int) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultSize)))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
	}
}

// NewPaginationResponse creates a standardized pagination response
func NewPaginationResponse(data any, params PaginationParams, total int64) gin.H {
	totalPages := (int(total) + params.PageSize - 1) / params.PageSize

	return gin.H{
		"data": data,
		"pagination": gin.H{
			"page":        params.Page,
			"page_size":   params.PageSize,
			"total":       total,
			"total_pages": totalPages,
		},
	}
}

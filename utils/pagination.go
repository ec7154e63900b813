package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination represents pagination parameters
type Pagination struct {
	Page     int
	Limit    int
	Offset   int
	Total    int64
	LastPage int
}

// NewPagination creates a Pagination from the page/limit query parameters.
// Invalid or out-of-range values fall back to defaults.
func NewPagination(c *gin.Context) *Pagination {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultPaginationLimit))

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultPaginationLimit
	}
	if limit > MaxPaginationLimit {
		limit = MaxPaginationLimit
	}

	return &Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// SetTotal sets the total number of items and calculates the last page
func (p *Pagination) SetTotal(total int64) {
	p.Total = total
	if p.Limit > 0 {
		p.LastPage = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
}

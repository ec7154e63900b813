package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationFromQuery(t *testing.T, query string) *Pagination {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return NewPagination(c)
}

func TestNewPagination(t *testing.T) {
	p := paginationFromQuery(t, "page=3&limit=20")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 40, p.Offset)
}

func TestNewPaginationDefaults(t *testing.T) {
	p := paginationFromQuery(t, "")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPaginationLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)
}

func TestNewPaginationBadInput(t *testing.T) {
	p := paginationFromQuery(t, "page=abc&limit=-5")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPaginationLimit, p.Limit)

	p = paginationFromQuery(t, "limit=10000")
	assert.Equal(t, MaxPaginationLimit, p.Limit)
}

func TestSetTotal(t *testing.T) {
	p := &Pagination{Limit: 10}
	p.SetTotal(25)
	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 3, p.LastPage)

	p.SetTotal(0)
	assert.Equal(t, 0, p.LastPage)
}

package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultPageNum is used when pageNum is absent or invalid.
	DefaultPageNum = 1
	// DefaultPageSize is used when pageSize is absent or non-positive.
	DefaultPageSize = 10
)

// Page is the paginated response shape the mall frontend expects,
// carried inside the Result envelope's data field.
type Page struct {
	Records interface{} `json:"records"`
	Total   int64       `json:"total"`
	Size    int         `json:"size"`
	Current int         `json:"current"`
	Pages   int64       `json:"pages"`
}

// NewPage builds a page envelope; pages is derived from total and size.
func NewPage(records interface{}, total int64, current, size int) Page {
	var pages int64
	if size > 0 {
		pages = (total + int64(size) - 1) / int64(size)
	}
	return Page{
		Records: records,
		Total:   total,
		Size:    size,
		Current: current,
		Pages:   pages,
	}
}

// EmptyPage builds a page envelope with no records but the requested
// pagination metadata, for anonymous callers of the storefront list.
func EmptyPage(current, size int) Page {
	return NewPage([]interface{}{}, 0, current, size)
}

// ParsePageQuery reads pageNum and pageSize from the query string.
// Absent, malformed or non-positive values fall back to the defaults.
func ParsePageQuery(c *gin.Context) (pageNum, pageSize int) {
	pageNum, err := strconv.Atoi(c.DefaultQuery("pageNum", strconv.Itoa(DefaultPageNum)))
	if err != nil || pageNum < 1 {
		pageNum = DefaultPageNum
	}

	pageSize, err = strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(DefaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = DefaultPageSize
	}

	return pageNum, pageSize
}

// Package pagination parses page and sort parameters for history tables and
// applies them as GORM scopes.
package pagination

import (
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaxPageSize caps pageSize.
const MaxPageSize = 100

const defaultPageSize = 20

// PageRequest holds pagination and sorting parameters parsed from query strings.
// Without a page the caller gets the whole result set.
type PageRequest struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

// Enabled reports whether a page was requested.
func (p *PageRequest) Enabled() bool {
	return p.Page > 0
}

// Defaults fills in the page size when a page was requested without one.
func (p *PageRequest) Defaults() {
	if p.Page > 0 && p.PageSize == 0 {
		p.PageSize = defaultPageSize
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Meta is the pagination block added to list responses.
type Meta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

// NewMeta creates a Meta from the request and total count.
func NewMeta(req PageRequest, totalItems int64) Meta {
	totalPages := 0
	if req.PageSize > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(req.PageSize)))
	}
	return Meta{
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given
// page request. It is a no-op when no page was requested.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !req.Enabled() {
			return db
		}
		return db.Offset(req.Offset()).Limit(req.PageSize)
	}
}

// SortColumns maps the sortBy values a resource accepts to column names.
type SortColumns map[string]string

// Sort returns a GORM scope ordering by the whitelisted sortBy column, or by
// fallback when sortBy is empty or unknown. Order is descending unless "asc"
// was requested. Ties are broken by primary key.
func Sort(req PageRequest, columns SortColumns, fallback string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		column, ok := columns[req.SortBy]
		if !ok {
			column = fallback
		}
		desc := req.SortOrder != "asc"
		return db.
			Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "object_id"}, Desc: desc})
	}
}

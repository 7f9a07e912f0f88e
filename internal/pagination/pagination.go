// Package pagination provides limit/offset paging for listing endpoints.
package pagination

import "gorm.io/gorm"

const (
	// DefaultLimit is used when no limit is supplied.
	DefaultLimit = 50
	// MaxLimit caps the number of rows a single listing request may return.
	MaxLimit = 200
)

// LimitOffset holds paging parameters parsed from query strings.
type LimitOffset struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// Defaults fills in the default limit when none was provided.
func (p *LimitOffset) Defaults() {
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
}

// Scope returns a GORM scope that applies LIMIT and OFFSET.
func Scope(p LimitOffset) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(p.Limit).Offset(p.Offset)
	}
}

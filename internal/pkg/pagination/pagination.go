package pagination

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Params is the page window requested by a list call. Lists are unpaginated
// unless the caller sends page or pageSize.
type Params struct {
	Page     int
	PageSize int
	Skip     int
	Take     int
	Enabled  bool
}

func FromQuery(c *gin.Context) Params {
	return Parse(c.Request.URL.Query())
}

func Parse(q url.Values) Params {
	_, hasPage := q["page"]
	_, hasSize := q["pageSize"]

	page := atoiOr(q.Get("page"), DefaultPage)
	if page < 1 {
		page = 1
	}

	pageSize := atoiOr(q.Get("pageSize"), DefaultPageSize)
	switch {
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	case pageSize < 1:
		pageSize = 1
	}

	return Params{
		Page:     page,
		PageSize: pageSize,
		Skip:     (page - 1) * pageSize,
		Take:     pageSize,
		Enabled:  hasPage || hasSize,
	}
}

// Scope applies Offset/Limit when pagination was requested.
func (p Params) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !p.Enabled {
			return db
		}
		return db.Offset(p.Skip).Limit(p.Take)
	}
}

// unparsable and zero values fall back to def
func atoiOr(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n == 0 {
		return def
	}
	return n
}

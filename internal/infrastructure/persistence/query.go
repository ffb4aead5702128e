package persistence

import (
	"strings"

	"github.com/Olpagroup25/insa/internal/domain/shared"
	"gorm.io/gorm"
)

// paginate applies the filter's page window; a zero page or page size means no limit
func paginate(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	return query
}

// likePattern builds a case-insensitive LIKE pattern that works on postgres and sqlite
func likePattern(search string) string {
	return "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
}

package repository

import (
	"fmt"

	"github.com/tourvista/tourism-backend/internal/domain"
	"gorm.io/gorm"
)

// mysqlBinaryCollation makes LIKE compare code points. The utf8mb4 server
// defaults are accent-insensitive, so "sahdag" would match "Şahdağ".
const mysqlBinaryCollation = "COLLATE utf8mb4_bin"

// substringQuery scopes db to rows where titleCol or bodyCol contains
// pattern (case-insensitive), newest first, capped at limit.
// Column names are internal constants, never user input.
func substringQuery(db *gorm.DB, titleCol, bodyCol, pattern string, limit int) *gorm.DB {
	collate := ""
	if db.Dialector.Name() == "mysql" {
		collate = " " + mysqlBinaryCollation
	}

	where := fmt.Sprintf("(LOWER(%[1]s)%[3]s LIKE ? %[4]s OR LOWER(%[2]s)%[3]s LIKE ? %[4]s)",
		titleCol, bodyCol, collate, domain.LikeEscapeClause)

	q := db.Where(where, pattern, pattern).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q
}

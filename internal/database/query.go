package database

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// Exists reports whether a row of model's table has the given id.
func Exists(ctx context.Context, db *gorm.DB, model any, id string) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// CountBy counts model rows grouped by column for the given parent ids.
// Parents without children are absent from the result.
func CountBy(ctx context.Context, db *gorm.DB, model any, column string, ids []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []struct {
		ParentID string
		Total    int64
	}
	err := db.WithContext(ctx).
		Model(model).
		Select(column+" AS parent_id, COUNT(*) AS total").
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		counts[r.ParentID] = r.Total
	}
	return counts, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// Like builds a case-insensitive contains pattern for
// LOWER(col) LIKE ? ESCAPE '\'. Wildcards in s match literally.
func Like(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}

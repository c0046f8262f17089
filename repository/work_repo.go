package repository

import (
	"database/sql"
	"strings"

	"portfolio_insights/db"
	"portfolio_insights/models"
)

// 排序列白名单，防止拼接注入
var workOrderColumns = map[string]string{
	"view_count":  "view_count",
	"created_at":  "created_at",
	"likes_count": "likes_count",
}

// MySQLWorkStore 作品库的MySQL实现
type MySQLWorkStore struct{}

func NewWorkStore() *MySQLWorkStore {
	return &MySQLWorkStore{}
}

const workColumns = `id, user_id, title, description, summary, tags, ai_tags,
	view_count, likes_count, client_name, created_at,
	banner_image_url, thumbnail_url, preview_image_url, content_length`

// Query 按过滤条件查询作品。filter的nil字段表示不限制；
// order支持多键排序并可指定NULL值的位置
func (s *MySQLWorkStore) Query(filter models.WorkFilter, order []models.WorkOrderKey, limit int) ([]models.WorkRecord, error) {
	var sb strings.Builder
	sb.WriteString("SELECT " + workColumns + " FROM works WHERE 1=1")
	args := make([]any, 0, 4)

	if filter.CreatedAtGte != nil {
		sb.WriteString(" AND created_at >= ?")
		args = append(args, *filter.CreatedAtGte)
	}
	if filter.ViewCountGt != nil {
		sb.WriteString(" AND view_count > ?")
		args = append(args, *filter.ViewCountGt)
	}
	if len(filter.UserIDIn) > 0 {
		sb.WriteString(" AND user_id IN (" + placeholders(len(filter.UserIDIn)) + ")")
		args = append(args, toArgs(filter.UserIDIn)...)
	}

	if clause := buildOrderClause(order); clause != "" {
		sb.WriteString(" ORDER BY " + clause)
	}

	if limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, limit)
	}

	rows, err := db.DB.Query(sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.WorkRecord, 0)
	for rows.Next() {
		w, err := scanWork(rows)
		if err != nil {
			continue
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func buildOrderClause(order []models.WorkOrderKey) string {
	parts := make([]string, 0, len(order)*2)
	for _, key := range order {
		col, ok := workOrderColumns[key.Column]
		if !ok {
			continue
		}
		if key.NullsLast {
			// MySQL默认NULL排最前，需要显式调整
			parts = append(parts, col+" IS NULL")
		}
		dir := " ASC"
		if key.Desc {
			dir = " DESC"
		}
		parts = append(parts, col+dir)
	}
	return strings.Join(parts, ", ")
}

func scanWork(rows *sql.Rows) (models.WorkRecord, error) {
	var w models.WorkRecord
	var description, summary, tagsJSON, aiTagsJSON sql.NullString
	var clientName, banner, thumbnail, preview sql.NullString
	var createdAt sql.NullTime

	err := rows.Scan(
		&w.ID, &w.UserID, &w.Title, &description, &summary,
		&tagsJSON, &aiTagsJSON, &w.ViewCount, &w.LikesCount,
		&clientName, &createdAt, &banner, &thumbnail, &preview,
		&w.ContentLength,
	)
	if err != nil {
		return w, err
	}

	w.Description = description.String
	w.Summary = summary.String
	w.Tags = parseStringArray(tagsJSON.String)
	w.AITags = parseStringArray(aiTagsJSON.String)
	w.ClientName = clientName.String
	if createdAt.Valid {
		w.CreatedAt = createdAt.Time
	}
	w.BannerImageURL = banner.String
	w.ThumbnailURL = thumbnail.String
	w.PreviewImageURL = preview.String
	return w, nil
}

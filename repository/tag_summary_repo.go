package repository

import (
	"database/sql"

	"portfolio_insights/db"
	"portfolio_insights/models"
	"portfolio_insights/utils"
)

// MySQLTagSummaryStore 预计算关键词库的MySQL实现
type MySQLTagSummaryStore struct{}

func NewTagSummaryStore() *MySQLTagSummaryStore {
	return &MySQLTagSummaryStore{}
}

// GetByUserID 查询用户的预计算关键词数据，没有记录时返回 (nil, nil)。
// keywords 列原样返回，格式兼容处理放在 TagSummary.ParseKeywords 里
func (s *MySQLTagSummaryStore) GetByUserID(userID string) (*models.TagSummary, error) {
	if userID == "" {
		return nil, nil
	}

	row := db.DB.QueryRow(`SELECT user_id, keywords FROM tag_summaries WHERE user_id = ?`, userID)

	t := &models.TagSummary{}
	var keywords sql.NullString
	if err := row.Scan(&t.UserID, &keywords); err != nil {
		if utils.IsSQLNoRowsError(err) {
			return nil, nil
		}
		return nil, err
	}

	t.KeywordsRaw = keywords.String
	return t, nil
}

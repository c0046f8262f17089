package repository

import (
	"portfolio_insights/db"
)

// 互动类型
const (
	ReactionKindLike    = "like"
	ReactionKindComment = "comment"
)

// MySQLReactionStore 互动库的MySQL实现
type MySQLReactionStore struct{}

func NewReactionStore() *MySQLReactionStore {
	return &MySQLReactionStore{}
}

// CountByTarget 批量统计目标的互动数量，一次查询返回整批结果，
// 避免逐条查询。未出现在结果里的id由调用方按0处理
func (s *MySQLReactionStore) CountByTarget(kind, targetType string, targetIDs []string) (map[string]int, error) {
	result := make(map[string]int)
	if len(targetIDs) == 0 {
		return result, nil
	}

	q := `SELECT target_id, COUNT(*) FROM reactions
	      WHERE kind = ? AND target_type = ? AND target_id IN (` + placeholders(len(targetIDs)) + `)
	      GROUP BY target_id`
	args := append([]any{kind, targetType}, toArgs(targetIDs)...)

	rows, err := db.DB.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			continue
		}
		result[id] = count
	}
	return result, rows.Err()
}

// ListLikedByUser 批量查询用户点赞过的目标id集合，一次查询返回整批结果
func (s *MySQLReactionStore) ListLikedByUser(userID, targetType string, targetIDs []string) (map[string]bool, error) {
	result := make(map[string]bool)
	if userID == "" || len(targetIDs) == 0 {
		return result, nil
	}

	q := `SELECT target_id FROM reactions
	      WHERE user_id = ? AND kind = ? AND target_type = ?
	        AND target_id IN (` + placeholders(len(targetIDs)) + `)`
	args := append([]any{userID, ReactionKindLike, targetType}, toArgs(targetIDs)...)

	rows, err := db.DB.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			continue
		}
		result[id] = true
	}
	return result, rows.Err()
}

// ExistsForUser 查询用户是否对单个目标点过赞
func (s *MySQLReactionStore) ExistsForUser(targetID, targetType, userID string) (bool, error) {
	if targetID == "" || userID == "" {
		return false, nil
	}
	return exists(`SELECT COUNT(1) FROM reactions WHERE target_id = ? AND target_type = ? AND user_id = ? AND kind = ?`,
		targetID, targetType, userID, ReactionKindLike)
}

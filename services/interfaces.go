package services

import (
	"portfolio_insights/models"
)

// 互动目标类型与互动类型
const (
	TargetTypeWork = "work"

	KindLike    = "like"
	KindComment = "comment"
)

// WorkStore 作品库（外部协作方）只读查询接口
type WorkStore interface {
	Query(filter models.WorkFilter, order []models.WorkOrderKey, limit int) ([]models.WorkRecord, error)
}

// ReactionStore 互动库接口，计数查询必须按批量执行
type ReactionStore interface {
	// 按目标id批量统计某种互动数量，一个指标一次查询
	CountByTarget(kind, targetType string, targetIDs []string) (map[string]int, error)

	// 批量查询用户点赞过的目标id集合
	ListLikedByUser(userID, targetType string, targetIDs []string) (map[string]bool, error)

	// 查询用户是否对单个目标点过赞
	ExistsForUser(targetID, targetType, userID string) (bool, error)
}

// ProfileStore 创作者资料接口，资料缺失返回 (nil, nil)
type ProfileStore interface {
	GetByUserID(userID string) (*models.Profile, error)
}

// TagSummaryStore 预计算关键词接口，数据缺失返回 (nil, nil)
type TagSummaryStore interface {
	GetByUserID(userID string) (*models.TagSummary, error)
}

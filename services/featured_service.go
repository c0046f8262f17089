package services

import (
	"sort"
	"strings"
	"time"

	"portfolio_insights/models"
	"portfolio_insights/utils"
)

// DefaultFeaturedLimit 代表作默认条数
const DefaultFeaturedLimit = 4

// 评分公式的固定系数，权重部分见 ScoringWeights
const (
	likesFactor    = 5
	recencyFactor  = 100
	thumbnailBonus = 10
)

// recencyWindow 新鲜度衰减窗口
const recencyWindow = 365 * 24 * time.Hour

// ScoringWeights 代表作评分权重。经验常数，保持可替换配置
type ScoringWeights struct {
	Views     float64
	Likes     float64
	Recency   float64
	Thumbnail float64
}

// DefaultScoringWeights 默认权重
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{Views: 0.4, Likes: 0.4, Recency: 0.15, Thumbnail: 0.05}
}

// SelectFeaturedWorks 选取代表作。入选条件：标题非空且摘要或描述非空。
// 按加权得分降序取前 limit 件；得分相同的作品保持输入顺序（稳定排序）
func SelectFeaturedWorks(works []models.WorkRecord, now time.Time, weights ScoringWeights, limit int) []models.FeaturedWork {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}

	type scored struct {
		work  *models.WorkRecord
		score float64
	}

	candidates := make([]scored, 0, len(works))
	for i := range works {
		w := &works[i]
		if !eligibleForFeatured(w) {
			continue
		}
		candidates = append(candidates, scored{work: w, score: workScore(w, now, weights)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]models.FeaturedWork, 0, len(candidates))
	for i, c := range candidates {
		out = append(out, models.FeaturedWork{
			ID:           c.work.ID,
			Title:        c.work.Title,
			Summary:      featuredSummary(c.work),
			ThumbnailURL: c.work.DisplayThumbnail(),
			Score:        c.score,
			Rank:         i + 1,
		})
	}
	return out
}

func eligibleForFeatured(w *models.WorkRecord) bool {
	if strings.TrimSpace(w.Title) == "" {
		return false
	}
	return strings.TrimSpace(w.Summary) != "" || strings.TrimSpace(w.Description) != ""
}

// featuredSummary 摘要优先，摘要为空时退回描述
func featuredSummary(w *models.WorkRecord) string {
	if strings.TrimSpace(w.Summary) != "" {
		return w.Summary
	}
	return w.Description
}

// workScore 加权得分：
// views*0.4 + likes*5*0.4 + recency*100*0.15 + hasThumbnail*10*0.05
func workScore(w *models.WorkRecord, now time.Time, weights ScoringWeights) float64 {
	score := float64(w.ViewCount) * weights.Views
	score += float64(w.LikesCount) * likesFactor * weights.Likes
	score += recencyScore(w.CreatedAt, now) * recencyFactor * weights.Recency
	if w.DisplayThumbnail() != "" {
		score += thumbnailBonus * weights.Thumbnail
	}
	return score
}

// recencyScore 新鲜度 = clamp(1 - 距今天数/365天, 0, 1)，
// 创建时间缺失或无效时按0
func recencyScore(createdAt, now time.Time) float64 {
	if createdAt.IsZero() {
		return 0
	}
	age := now.Sub(createdAt)
	return utils.Clamp(1-float64(age)/float64(recencyWindow), 0, 1)
}

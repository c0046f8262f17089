package services

import (
	"sync"

	"portfolio_insights/logger"
)

// ScoreBatch 一批目标的互动计数与浏览者点赞状态。
// 缺失条目按 0/false 处理
type ScoreBatch struct {
	LikeCounts    map[string]int
	CommentCounts map[string]int
	ViewerLiked   map[string]bool
}

func (b *ScoreBatch) Likes(id string) int {
	return b.LikeCounts[id]
}

func (b *ScoreBatch) Comments(id string) int {
	return b.CommentCounts[id]
}

func (b *ScoreBatch) Liked(id string) bool {
	return b.ViewerLiked[id]
}

// ScoreAggregator 批量聚合互动数据，每个指标一次批量查询，
// 不允许逐条的N+1查询
type ScoreAggregator struct {
	reactions ReactionStore
}

func NewScoreAggregator(reactions ReactionStore) *ScoreAggregator {
	return &ScoreAggregator{reactions: reactions}
}

// Collect 拉取整批目标的点赞数、评论数，viewerID 非空时再拉取
// 浏览者点赞集合。三个查询互相没有顺序依赖，并发执行。
// 单个查询失败只记日志并退回默认值，不中断整批
func (a *ScoreAggregator) Collect(targetType string, targetIDs []string, viewerID string) *ScoreBatch {
	batch := &ScoreBatch{
		LikeCounts:    make(map[string]int),
		CommentCounts: make(map[string]int),
		ViewerLiked:   make(map[string]bool),
	}
	if len(targetIDs) == 0 {
		return batch
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		counts, err := a.reactions.CountByTarget(KindLike, targetType, targetIDs)
		if err != nil {
			logger.Warn("批量查询点赞数失败，按0处理", "target_type", targetType, "error", err)
			return
		}
		batch.LikeCounts = counts
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		counts, err := a.reactions.CountByTarget(KindComment, targetType, targetIDs)
		if err != nil {
			logger.Warn("批量查询评论数失败，按0处理", "target_type", targetType, "error", err)
			return
		}
		batch.CommentCounts = counts
	}()

	if viewerID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			liked, err := a.reactions.ListLikedByUser(viewerID, targetType, targetIDs)
			if err != nil {
				logger.Warn("批量查询浏览者点赞集合失败，按false处理", "viewer_id", viewerID, "error", err)
				return
			}
			batch.ViewerLiked = liked
		}()
	}

	wg.Wait()
	return batch
}

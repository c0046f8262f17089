package services

import (
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"portfolio_insights/config"
	"portfolio_insights/logger"
	"portfolio_insights/models"
	"portfolio_insights/utils"
)

// FallbackDisplayName 作者资料缺失时的展示名
const FallbackDisplayName = "User"

// backfillTier 级联回填的一个层级。Window为0表示不限时间，
// RequireViews 表示只取浏览量大于0的作品
type backfillTier struct {
	Name         string
	Window       time.Duration
	RequireViews bool
}

// TrendingSelector 热门作品选择器：按层级逐步放宽条件补齐列表，
// 高优先级层级选中的条目不会被低层级替换
type TrendingSelector struct {
	works     WorkStore
	profiles  ProfileStore
	scores    *ScoreAggregator
	target    int
	tiers     []backfillTier
	enrichMax int

	tagWindow     time.Duration
	tagFetchLimit int
	tagLimit      int

	cacheTTL time.Duration
	mu       sync.RWMutex
	cached   []models.TrendingFeedItem
	cachedAt time.Time
}

func NewTrendingSelector(cfg *config.Config, works WorkStore, reactions ReactionStore, profiles ProfileStore) *TrendingSelector {
	recent := time.Duration(cfg.Trending.RecentWindowHours) * time.Hour
	week := time.Duration(cfg.Trending.WeekWindowDays) * 24 * time.Hour

	return &TrendingSelector{
		works:     works,
		profiles:  profiles,
		scores:    NewScoreAggregator(reactions),
		target:    cfg.Trending.TargetSize,
		tiers:     buildBackfillTiers(recent, week),
		enrichMax: cfg.Trending.EnrichConcurrency,

		tagWindow:     time.Duration(cfg.Trending.TagWindowDays) * 24 * time.Hour,
		tagFetchLimit: cfg.Trending.TagFetchLimit,
		tagLimit:      cfg.Trending.TagLimit,

		cacheTTL: time.Duration(cfg.Trending.CacheTTLSec) * time.Second,
	}
}

// buildBackfillTiers 层级顺序即优先级：先取又新又热的作品，
// 逐级放宽时间窗口，最后三个层级放开浏览量限制用于冷启动兜底
func buildBackfillTiers(recent, week time.Duration) []backfillTier {
	return []backfillTier{
		{Name: "recent_positive", Window: recent, RequireViews: true},
		{Name: "week_positive", Window: week, RequireViews: true},
		{Name: "all_positive", Window: 0, RequireViews: true},
		{Name: "recent_any", Window: recent, RequireViews: false},
		{Name: "week_any", Window: week, RequireViews: false},
		{Name: "all_any", Window: 0, RequireViews: false},
	}
}

// mergeUnique 将candidates中尚未出现的作品按顺序追加到existing，
// 达到maxLen即停止。已有条目的顺序保持不变
func mergeUnique(existing, candidates []models.WorkRecord, maxLen int) []models.WorkRecord {
	seen := make(map[string]bool, len(existing))
	for i := range existing {
		seen[existing[i].ID] = true
	}
	for i := range candidates {
		if len(existing) >= maxLen {
			break
		}
		c := candidates[i]
		if c.ID == "" || seen[c.ID] {
			continue
		}
		existing = append(existing, c)
		seen[c.ID] = true
	}
	return existing
}

// Select 执行级联回填选择。每个层级只在结果仍不足目标条数时执行，
// 层级之间严格串行。单层查询失败记日志并继续下一层；
// 所有层级都失败且没有任何结果时才视为内容库整体故障
func (s *TrendingSelector) Select(now time.Time) ([]models.WorkRecord, error) {
	order := []models.WorkOrderKey{
		{Column: "view_count", Desc: true},
		{Column: "created_at", Desc: true, NullsLast: true},
	}

	result := make([]models.WorkRecord, 0, s.target)
	var lastErr error

	for _, tier := range s.tiers {
		if len(result) >= s.target {
			break
		}

		filter := models.WorkFilter{}
		if tier.Window > 0 {
			since := now.Add(-tier.Window)
			filter.CreatedAtGte = &since
		}
		if tier.RequireViews {
			zero := 0
			filter.ViewCountGt = &zero
		}

		candidates, err := s.works.Query(filter, order, s.target)
		if err != nil {
			logger.Warn("热门层级查询失败，继续下一层", "tier", tier.Name, "error", err)
			lastErr = err
			continue
		}
		result = mergeUnique(result, candidates, s.target)
	}

	if len(result) == 0 && lastErr != nil {
		return nil, &models.UpstreamFetchError{Source: "works", Err: lastErr}
	}
	return result, nil
}

// Enrich 为选中的作品补全作者资料与实时互动状态。
// 计数按指标批量拉取，作者资料按条目并发拉取后汇合；
// 输出顺序由选择阶段决定，与任务完成顺序无关。
// 单个条目补全失败只影响该条目的默认值，不中断整批
func (s *TrendingSelector) Enrich(items []models.WorkRecord, viewerID string) []models.TrendingFeedItem {
	feed := make([]models.TrendingFeedItem, len(items))
	if len(items) == 0 {
		return feed
	}

	ids := make([]string, 0, len(items))
	for i := range items {
		ids = append(ids, items[i].ID)
	}
	batch := s.scores.Collect(TargetTypeWork, ids, viewerID)

	var g errgroup.Group
	g.SetLimit(s.enrichMax)
	for i := range items {
		i := i
		g.Go(func() error {
			w := items[i]
			item := models.TrendingFeedItem{
				WorkRecord:   w,
				Author:       models.FeedAuthor{DisplayName: FallbackDisplayName},
				LikeCount:    batch.Likes(w.ID),
				CommentCount: batch.Comments(w.ID),
				ViewerLiked:  batch.Liked(w.ID),
			}

			profile, err := s.profiles.GetByUserID(w.UserID)
			if err != nil {
				logger.Warn("拉取作者资料失败，使用默认展示名", "user_id", w.UserID, "error", err)
			} else if profile != nil {
				if profile.DisplayName != "" {
					item.Author.DisplayName = profile.DisplayName
				}
				item.Author.AvatarURL = profile.AvatarURL
			}

			feed[i] = item
			return nil
		})
	}
	g.Wait()

	return feed
}

// Feed 返回热门作品列表。匿名请求优先走缓存；带浏览者身份的请求
// 需要实时的点赞状态，直接重新计算
func (s *TrendingSelector) Feed(viewerID string, now time.Time) ([]models.TrendingFeedItem, error) {
	if viewerID == "" {
		if cached, ok := s.cachedFeed(now); ok {
			return cached, nil
		}
	}

	selected, err := s.Select(now)
	if err != nil {
		return nil, err
	}
	feed := s.Enrich(selected, viewerID)

	if viewerID == "" {
		s.storeCache(feed, now)
	}
	return feed, nil
}

// Refresh 重新计算并缓存匿名热门列表，由调度器定时调用
func (s *TrendingSelector) Refresh(now time.Time) error {
	selected, err := s.Select(now)
	if err != nil {
		return err
	}
	s.storeCache(s.Enrich(selected, ""), now)
	return nil
}

func (s *TrendingSelector) cachedFeed(now time.Time) ([]models.TrendingFeedItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cached == nil || now.Sub(s.cachedAt) > s.cacheTTL {
		return nil, false
	}
	out := make([]models.TrendingFeedItem, len(s.cached))
	copy(out, s.cached)
	return out, true
}

func (s *TrendingSelector) storeCache(feed []models.TrendingFeedItem, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = feed
	s.cachedAt = now
}

// TopTags 统计最近窗口内作品的标签热度。标签按关键词归一化规则合并，
// 同一作品内的重复标签只计一次
func (s *TrendingSelector) TopTags(now time.Time) ([]models.TagCount, error) {
	since := now.Add(-s.tagWindow)
	order := []models.WorkOrderKey{{Column: "created_at", Desc: true, NullsLast: true}}

	works, err := s.works.Query(models.WorkFilter{CreatedAtGte: &since}, order, s.tagFetchLimit)
	if err != nil {
		return nil, &models.UpstreamFetchError{Source: "works", Err: err}
	}

	counts := make(map[string]int)
	labels := make(map[string]string)
	keys := make([]string, 0)
	for i := range works {
		w := &works[i]
		seen := make(map[string]bool)
		for _, raw := range append(append([]string{}, w.Tags...), w.AITags...) {
			key := utils.NormalizeKeyword(raw)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			if _, ok := counts[key]; !ok {
				labels[key] = raw
				keys = append(keys, key)
			}
			counts[key]++
		}
	}

	position := make(map[string]int, len(keys))
	for i, key := range keys {
		position[key] = i
	}
	sort.SliceStable(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return position[keys[i]] < position[keys[j]]
	})

	if len(keys) > s.tagLimit {
		keys = keys[:s.tagLimit]
	}

	out := make([]models.TagCount, 0, len(keys))
	for _, key := range keys {
		out = append(out, models.TagCount{Tag: labels[key], Count: counts[key]})
	}
	return out, nil
}

package services

import (
	"io"
	"log/slog"
	"os"
	"sort"
	"sync"
	"testing"

	"portfolio_insights/config"
	"portfolio_insights/logger"
	"portfolio_insights/models"
)

func TestMain(m *testing.M) {
	logger.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	os.Exit(m.Run())
}

// testConfig 与默认配置一致的测试配置
func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Trending.TargetSize = 10
	cfg.Trending.RecentWindowHours = 24
	cfg.Trending.WeekWindowDays = 7
	cfg.Trending.CacheTTLSec = 300
	cfg.Trending.RefreshIntervalSec = 300
	cfg.Trending.EnrichConcurrency = 4
	cfg.Trending.TagWindowDays = 7
	cfg.Trending.TagFetchLimit = 200
	cfg.Trending.TagLimit = 20
	cfg.Scoring.ViewsWeight = 0.4
	cfg.Scoring.LikesWeight = 0.4
	cfg.Scoring.RecencyWeight = 0.15
	cfg.Scoring.ThumbnailWeight = 0.05
	cfg.Scoring.FeaturedLimit = 4
	cfg.Scoring.KeywordLimit = 15
	cfg.Industry.Rules = models.DefaultIndustryRules()
	return cfg
}

// memoryWorkStore 按真实存储的语义做过滤、排序与截断的内存实现
type memoryWorkStore struct {
	works   []models.WorkRecord
	err     error
	queries int
}

func (m *memoryWorkStore) Query(filter models.WorkFilter, order []models.WorkOrderKey, limit int) ([]models.WorkRecord, error) {
	m.queries++
	if m.err != nil {
		return nil, m.err
	}

	out := make([]models.WorkRecord, 0, len(m.works))
	for _, w := range m.works {
		if filter.CreatedAtGte != nil && w.CreatedAt.Before(*filter.CreatedAtGte) {
			continue
		}
		if filter.ViewCountGt != nil && w.ViewCount <= *filter.ViewCountGt {
			continue
		}
		out = append(out, w)
	}

	sort.SliceStable(out, func(i, j int) bool {
		for _, key := range order {
			var less, greater bool
			switch key.Column {
			case "view_count":
				less = out[i].ViewCount < out[j].ViewCount
				greater = out[i].ViewCount > out[j].ViewCount
			case "created_at":
				less = out[i].CreatedAt.Before(out[j].CreatedAt)
				greater = out[i].CreatedAt.After(out[j].CreatedAt)
			}
			if key.Desc {
				less, greater = greater, less
			}
			if less {
				return true
			}
			if greater {
				return false
			}
		}
		return false
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// flakyWorkStore 前 failLeft 次查询返回错误，之后转给内存实现
type flakyWorkStore struct {
	inner    *memoryWorkStore
	failLeft int
	err      error
}

func (f *flakyWorkStore) Query(filter models.WorkFilter, order []models.WorkOrderKey, limit int) ([]models.WorkRecord, error) {
	if f.failLeft > 0 {
		f.failLeft--
		return nil, f.err
	}
	return f.inner.Query(filter, order, limit)
}

// fakeReactionStore 互动库假实现。计数器加锁，聚合器会并发调用
type fakeReactionStore struct {
	likeCounts    map[string]int
	commentCounts map[string]int
	liked         map[string]bool
	countErr      error
	listErr       error

	mu         sync.Mutex
	countCalls map[string]int
	listCalls  int
}

func (f *fakeReactionStore) CountByTarget(kind, targetType string, targetIDs []string) (map[string]int, error) {
	f.mu.Lock()
	if f.countCalls == nil {
		f.countCalls = make(map[string]int)
	}
	f.countCalls[kind]++
	f.mu.Unlock()

	if f.countErr != nil {
		return nil, f.countErr
	}
	src := f.likeCounts
	if kind == KindComment {
		src = f.commentCounts
	}
	out := make(map[string]int)
	for _, id := range targetIDs {
		if n, ok := src[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

func (f *fakeReactionStore) ListLikedByUser(userID, targetType string, targetIDs []string) (map[string]bool, error) {
	f.mu.Lock()
	f.listCalls++
	f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make(map[string]bool)
	for _, id := range targetIDs {
		if f.liked[id] {
			out[id] = true
		}
	}
	return out, nil
}

func (f *fakeReactionStore) ExistsForUser(targetID, targetType, userID string) (bool, error) {
	return f.liked[targetID], nil
}

type fakeProfileStore struct {
	profiles map[string]*models.Profile
	err      error

	mu    sync.Mutex
	calls int
}

func (f *fakeProfileStore) GetByUserID(userID string) (*models.Profile, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[userID], nil
}

type fakeTagSummaryStore struct {
	summaries map[string]*models.TagSummary
	err       error
}

func (f *fakeTagSummaryStore) GetByUserID(userID string) (*models.TagSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.summaries[userID], nil
}

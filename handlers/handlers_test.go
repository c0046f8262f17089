package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_insights/config"
	"portfolio_insights/logger"
	"portfolio_insights/models"
	"portfolio_insights/services"
)

func TestMain(m *testing.M) {
	logger.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	os.Exit(m.Run())
}

type stubWorkStore struct {
	works []models.WorkRecord
}

func (s *stubWorkStore) Query(filter models.WorkFilter, order []models.WorkOrderKey, limit int) ([]models.WorkRecord, error) {
	out := make([]models.WorkRecord, 0, len(s.works))
	for _, w := range s.works {
		if filter.CreatedAtGte != nil && w.CreatedAt.Before(*filter.CreatedAtGte) {
			continue
		}
		if filter.ViewCountGt != nil && w.ViewCount <= *filter.ViewCountGt {
			continue
		}
		out = append(out, w)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ViewCount > out[j].ViewCount
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type stubReactionStore struct {
	likeCounts map[string]int
}

func (s *stubReactionStore) CountByTarget(kind, targetType string, targetIDs []string) (map[string]int, error) {
	if kind != services.KindLike {
		return map[string]int{}, nil
	}
	return s.likeCounts, nil
}

func (s *stubReactionStore) ListLikedByUser(userID, targetType string, targetIDs []string) (map[string]bool, error) {
	return map[string]bool{}, nil
}

func (s *stubReactionStore) ExistsForUser(targetID, targetType, userID string) (bool, error) {
	return false, nil
}

type stubProfileStore struct {
	profiles map[string]*models.Profile
}

func (s *stubProfileStore) GetByUserID(userID string) (*models.Profile, error) {
	return s.profiles[userID], nil
}

type stubTagSummaryStore struct {
	summaries map[string]*models.TagSummary
}

func (s *stubTagSummaryStore) GetByUserID(userID string) (*models.TagSummary, error) {
	return s.summaries[userID], nil
}

func testRouter() *chi.Mux {
	cfg := &config.Config{}
	cfg.Trending.TargetSize = 10
	cfg.Trending.RecentWindowHours = 24
	cfg.Trending.WeekWindowDays = 7
	cfg.Trending.CacheTTLSec = 300
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

	now := time.Now().UTC()
	works := &stubWorkStore{works: []models.WorkRecord{
		{ID: "w1", UserID: "u1", Title: "银行App改版", ViewCount: 100, CreatedAt: now.Add(-time.Hour), Tags: []string{"UI", "金融"}},
		{ID: "w2", UserID: "u1", Title: "品牌设计", ViewCount: 50, CreatedAt: now.Add(-2 * time.Hour), Tags: []string{"品牌"}},
	}}
	reactions := &stubReactionStore{likeCounts: map[string]int{"w1": 7}}
	profiles := &stubProfileStore{profiles: map[string]*models.Profile{
		"u1": {UserID: "u1", DisplayName: "Alice"},
	}}
	summaries := &stubTagSummaryStore{summaries: map[string]*models.TagSummary{
		"u1": {UserID: "u1", KeywordsRaw: `[{"keyword":"UX","frequency":5}]`},
	}}

	engine := services.NewEngine(cfg, works, reactions, profiles, summaries)

	r := chi.NewRouter()
	RegisterRoutes(r, cfg, engine)
	return r
}

func TestReportHandlerMissingWorks(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/report/u1", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, models.CodeMessages[models.CodeMissingWorks], resp.Error)
}

func TestReportHandlerMalformedBody(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/report/u1", bytes.NewBufferString(`{broken`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.CodeMessages[models.CodeInvalidBody], resp.Error)
}

func TestReportHandlerEmptyWorksArray(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/report/u1", bytes.NewBufferString(`{"works":[]}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	// 空数组是合法输入，返回零值指标的报告
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp models.ReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, 0, resp.Data.PerformanceMetrics.TotalWorks)
	assert.NotEmpty(t, resp.Data.AISummary)
}

func TestReportHandlerSuccess(t *testing.T) {
	r := testRouter()

	body := `{"works":[{"id":"w1","title":"银行App改版","summary":"金融产品设计","tags":["UX","金融"],"viewCount":100,"likesCount":10}]}`
	req := httptest.NewRequest(http.MethodPost, "/report/u1", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.ReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Timestamp)

	require.NotNil(t, resp.Profile)
	assert.Equal(t, "Alice", resp.Profile.DisplayName)

	require.NotNil(t, resp.Data)
	assert.Equal(t, "Finance", resp.Data.SpecialtyAnalysis.PrimaryIndustry)
	require.NotEmpty(t, resp.Data.KeywordAnalysis)
	assert.Equal(t, "UX", resp.Data.KeywordAnalysis[0].Label)
	assert.Equal(t, 6, resp.Data.KeywordAnalysis[0].Frequency)
}

func TestTrendingHandlerDefaultsToFeatured(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/discovery/trending", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Success bool                 `json:"success"`
		Data    models.DiscoveryData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data.Featured, 2)
	assert.Equal(t, "w1", resp.Data.Featured[0].ID)
	assert.Equal(t, "Alice", resp.Data.Featured[0].Author.DisplayName)
	assert.Equal(t, 7, resp.Data.Featured[0].LikeCount)
	assert.Empty(t, resp.Data.Tags)
}

func TestTrendingHandlerAll(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/discovery/trending?type=all", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Success bool                 `json:"success"`
		Data    models.DiscoveryData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Featured)
	assert.NotEmpty(t, resp.Data.Tags)
}

func TestTrendingHandlerTagsOnly(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/discovery/trending?type=tags", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data models.DiscoveryData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Featured)
	assert.NotEmpty(t, resp.Data.Tags)
}

func TestTrendingHandlerInvalidType(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/discovery/trending?type=bogus", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_insights/models"
)

var featuredNow = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func TestSelectFeaturedWorksScoreFormula(t *testing.T) {
	works := []models.WorkRecord{{
		ID:             "w1",
		Title:          "品牌重塑",
		Summary:        "概要",
		ViewCount:      100,
		LikesCount:     10,
		CreatedAt:      featuredNow,
		BannerImageURL: "https://cdn.example.com/b.png",
	}}

	out := SelectFeaturedWorks(works, featuredNow, DefaultScoringWeights(), 4)

	require.Len(t, out, 1)
	// 100*0.4 + 10*5*0.4 + 1*100*0.15 + 10*0.05
	assert.InDelta(t, 75.5, out[0].Score, 1e-9)
	assert.Equal(t, 1, out[0].Rank)
	assert.Equal(t, "https://cdn.example.com/b.png", out[0].ThumbnailURL)
}

func TestSelectFeaturedWorksEligibility(t *testing.T) {
	works := []models.WorkRecord{
		{ID: "no-title", Description: "内容"},
		{ID: "no-body", Title: "标题", Summary: "   "},
		{ID: "ok", Title: "标题", Description: "内容"},
	}

	out := SelectFeaturedWorks(works, featuredNow, DefaultScoringWeights(), 4)

	require.Len(t, out, 1)
	assert.Equal(t, "ok", out[0].ID)
	assert.Equal(t, "内容", out[0].Summary, "摘要为空时退回描述")
}

func TestSelectFeaturedWorksTopFourStableTies(t *testing.T) {
	works := make([]models.WorkRecord, 0, 6)
	for i := 0; i < 6; i++ {
		works = append(works, models.WorkRecord{
			ID:      fmt.Sprintf("w%d", i),
			Title:   "标题",
			Summary: "概要",
		})
	}

	out := SelectFeaturedWorks(works, featuredNow, DefaultScoringWeights(), 4)

	require.Len(t, out, 4)
	for i, fw := range out {
		assert.Equal(t, fmt.Sprintf("w%d", i), fw.ID, "得分相同保持输入顺序")
		assert.Equal(t, i+1, fw.Rank)
	}
}

func TestSelectFeaturedWorksOrdersByScore(t *testing.T) {
	works := []models.WorkRecord{
		{ID: "low", Title: "标题", Summary: "概要", ViewCount: 10},
		{ID: "high", Title: "标题", Summary: "概要", ViewCount: 1000},
		{ID: "mid", Title: "标题", Summary: "概要", ViewCount: 100},
	}

	out := SelectFeaturedWorks(works, featuredNow, DefaultScoringWeights(), 4)

	require.Len(t, out, 3)
	assert.Equal(t, "high", out[0].ID)
	assert.Equal(t, "mid", out[1].ID)
	assert.Equal(t, "low", out[2].ID)
}

func TestRecencyScore(t *testing.T) {
	assert.Equal(t, 0.0, recencyScore(time.Time{}, featuredNow), "创建时间缺失按0")
	assert.InDelta(t, 1.0, recencyScore(featuredNow, featuredNow), 1e-9)
	halfYear := featuredNow.Add(-recencyWindow / 2)
	assert.InDelta(t, 0.5, recencyScore(halfYear, featuredNow), 1e-9)
	ancient := featuredNow.Add(-2 * recencyWindow)
	assert.Equal(t, 0.0, recencyScore(ancient, featuredNow))
}

func TestDisplayThumbnailPrecedence(t *testing.T) {
	w := models.WorkRecord{
		BannerImageURL:  "banner.png",
		ThumbnailURL:    "thumb.png",
		PreviewImageURL: "preview.png",
	}
	assert.Equal(t, "banner.png", w.DisplayThumbnail())

	w.BannerImageURL = ""
	assert.Equal(t, "thumb.png", w.DisplayThumbnail())

	w.ThumbnailURL = ""
	assert.Equal(t, "preview.png", w.DisplayThumbnail())

	w.PreviewImageURL = ""
	assert.Equal(t, "", w.DisplayThumbnail())
}

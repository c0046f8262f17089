package services

import (
	"fmt"
	"strings"
	"time"

	"portfolio_insights/config"
	"portfolio_insights/logger"
	"portfolio_insights/models"
)

// ReportService 作品集分析报告的编排器：依次执行关键词分析、
// 行业分类、代表作选取和表现指标计算，组装成一个报告值对象
type ReportService struct {
	profiles     ProfileStore
	tagSummaries TagSummaryStore
	rules        []models.IndustryRule
	weights      ScoringWeights

	featuredLimit int
	keywordLimit  int
}

func NewReportService(cfg *config.Config, profiles ProfileStore, tagSummaries TagSummaryStore) *ReportService {
	return &ReportService{
		profiles:     profiles,
		tagSummaries: tagSummaries,
		rules:        cfg.Industry.Rules,
		weights: ScoringWeights{
			Views:     cfg.Scoring.ViewsWeight,
			Likes:     cfg.Scoring.LikesWeight,
			Recency:   cfg.Scoring.RecencyWeight,
			Thumbnail: cfg.Scoring.ThumbnailWeight,
		},
		featuredLimit: cfg.Scoring.FeaturedLimit,
		keywordLimit:  cfg.Scoring.KeywordLimit,
	}
}

// BuildReport 为用户生成作品集报告。资料和预计算关键词都是可选数据，
// 读取失败只记日志并按缺省继续，不会让请求失败
func (s *ReportService) BuildReport(userID string, works []models.WorkRecord) (*models.Report, *models.Profile, error) {
	profile, err := s.profiles.GetByUserID(userID)
	if err != nil {
		logger.Warn("拉取创作者资料失败，报告中省略资料", "user_id", userID, "error", err)
		profile = nil
	}

	summary, err := s.tagSummaries.GetByUserID(userID)
	if err != nil {
		logger.Warn("拉取预计算关键词失败，只使用作品标签", "user_id", userID, "error", err)
		summary = nil
	}

	report, err := s.Compose(works, summary, time.Now().UTC())
	if err != nil {
		return nil, nil, err
	}
	return report, profile, nil
}

// Compose 同步计算阶段。相同输入必定产出相同报告；
// 计算中的非预期panic被恢复为AggregationError，不返回部分结果
func (s *ReportService) Compose(works []models.WorkRecord, summary *models.TagSummary, now time.Time) (report *models.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("报告计算阶段异常", "panic", r)
			report = nil
			err = &models.AggregationError{Stage: "compose", Err: fmt.Errorf("%v", r)}
		}
	}()

	keywords := AnalyzeKeywords(works, summary, s.keywordLimit)
	industries := ClassifyIndustries(works, s.rules)
	featured := SelectFeaturedWorks(works, now, s.weights, s.featuredLimit)
	metrics := ComputePerformanceMetrics(works)

	topKeywords := topKeywordLabels(keywords, 3)
	topIndustry := TopIndustryCategory(industries)

	report = &models.Report{
		AISummary: buildAISummary(topKeywords, topIndustry, metrics.TotalWorks),
		SpecialtyAnalysis: models.SpecialtyAnalysis{
			PrimaryIndustry: topIndustry,
			TopKeywords:     topKeywords,
			WorkCount:       metrics.TotalWorks,
		},
		KeywordAnalysis:    keywords,
		PerformanceMetrics: metrics,
		IndustryBreakdown:  industries,
		FeaturedWorks:      featured,
	}
	return report, nil
}

// ComputePerformanceMetrics 汇总表现指标，每个除法都有零值保护
func ComputePerformanceMetrics(works []models.WorkRecord) models.PerformanceMetrics {
	m := models.PerformanceMetrics{TotalWorks: len(works)}
	if m.TotalWorks == 0 {
		return m
	}

	totalLikes := 0
	totalContent := 0
	clients := make(map[string]bool)
	for i := range works {
		w := &works[i]
		m.TotalViews += w.ViewCount
		totalLikes += w.LikesCount
		totalContent += w.ContentLength
		if name := strings.TrimSpace(w.ClientName); name != "" {
			clients[name] = true
		}
	}

	m.AverageLikes = float64(totalLikes) / float64(m.TotalWorks)
	m.UniqueClients = len(clients)
	m.AverageWordCount = float64(totalContent) / float64(m.TotalWorks)
	if m.TotalViews > 0 {
		m.EngagementRate = float64(totalLikes) / float64(m.TotalViews) * 100
	}
	return m
}

func topKeywordLabels(keywords []models.KeywordEntry, n int) []string {
	labels := make([]string, 0, n)
	for _, k := range keywords {
		if len(labels) >= n {
			break
		}
		labels = append(labels, k.Label)
	}
	return labels
}

// buildAISummary 用固定模板生成概要文案。模板只依赖关键词前三名与
// 最高行业分类，相同输入产出相同文案，这条路径不做任何生成式调用
func buildAISummary(topKeywords []string, topIndustry string, totalWorks int) string {
	if totalWorks == 0 {
		return "该创作者暂无足够的作品数据用于分析。"
	}
	if len(topKeywords) == 0 {
		return fmt.Sprintf("该创作者累计发布%d件作品，暂未形成明显的关键词特征。", totalWorks)
	}

	kw := strings.Join(topKeywords, "、")
	if topIndustry == "" || topIndustry == models.IndustryOther {
		return fmt.Sprintf("该创作者擅长%s等方向，作品覆盖多个行业，累计发布%d件作品。", kw, totalWorks)
	}
	return fmt.Sprintf("该创作者擅长%s等方向，作品主要集中在%s行业，累计发布%d件作品。", kw, topIndustry, totalWorks)
}

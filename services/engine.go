package services

import (
	"portfolio_insights/config"
)

// Engine 分析引擎的组装入口。计算对输入是纯函数，除热门列表的
// 内部缓存外没有共享可变状态，可以安全并发调用
type Engine struct {
	Works        WorkStore
	Reactions    ReactionStore
	Profiles     ProfileStore
	TagSummaries TagSummaryStore

	Trending *TrendingSelector
	Reports  *ReportService
}

func NewEngine(cfg *config.Config, works WorkStore, reactions ReactionStore, profiles ProfileStore, tagSummaries TagSummaryStore) *Engine {
	return &Engine{
		Works:        works,
		Reactions:    reactions,
		Profiles:     profiles,
		TagSummaries: tagSummaries,
		Trending:     NewTrendingSelector(cfg, works, reactions, profiles),
		Reports:      NewReportService(cfg, profiles, tagSummaries),
	}
}

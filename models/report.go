package models

// IndustryRule 行业分类规则：按子串匹配关键词，规则顺序即匹配优先级。
// 规则表属于数据而非代码，可通过 config.yaml 覆盖内置默认表
type IndustryRule struct {
	Category string   `yaml:"category" json:"category"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// IndustryOther 兜底行业分类
const IndustryOther = "Other"

// DefaultIndustryRules 内置行业规则表。匹配是大小写敏感的子串匹配，
// 每个作品只计入第一条命中的规则
func DefaultIndustryRules() []IndustryRule {
	return []IndustryRule{
		{Category: "SaaS", Keywords: []string{"SaaS", "saas", "B2B", "业务系统", "管理系统"}},
		{Category: "Manufacturing", Keywords: []string{"製造", "制造", "メーカー", "工厂", "工業", "Manufacturing"}},
		{Category: "Finance", Keywords: []string{"金融", "银行", "銀行", "Fintech", "保险", "証券"}},
		{Category: "Healthcare", Keywords: []string{"医疗", "医療", "ヘルスケア", "健康", "Healthcare"}},
		{Category: "Retail", Keywords: []string{"零售", "小売", "电商", "EC", "Retail"}},
	}
}

// IndustryBucket 行业分布条目，Percentage 按非空分类总数计算
type IndustryBucket struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	ColorIndex int     `json:"colorIndex"`
}

// FeaturedWork 代表作条目，按加权得分排序
type FeaturedWork struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Summary      string  `json:"summary"`
	ThumbnailURL string  `json:"thumbnailUrl,omitempty"`
	Score        float64 `json:"score"`
	Rank         int     `json:"rank"`
}

// PerformanceMetrics 作品整体表现指标，所有除法都有零值保护
type PerformanceMetrics struct {
	TotalWorks       int     `json:"totalWorks"`
	TotalViews       int     `json:"totalViews"`
	AverageLikes     float64 `json:"averageLikes"`
	UniqueClients    int     `json:"uniqueClients"`
	AverageWordCount float64 `json:"averageWordCount"`
	EngagementRate   float64 `json:"engagementRate"`
}

// SpecialtyAnalysis 专长分析摘要
type SpecialtyAnalysis struct {
	PrimaryIndustry string   `json:"primaryIndustry"`
	TopKeywords     []string `json:"topKeywords"`
	WorkCount       int      `json:"workCount"`
}

// Report 作品集分析报告。纯值对象，每次请求根据输入重新计算，
// 不落库、不带标识
type Report struct {
	AISummary          string             `json:"aiSummary"`
	SpecialtyAnalysis  SpecialtyAnalysis  `json:"specialtyAnalysis"`
	KeywordAnalysis    []KeywordEntry     `json:"keywordAnalysis"`
	PerformanceMetrics PerformanceMetrics `json:"performanceMetrics"`
	IndustryBreakdown  []IndustryBucket   `json:"industryBreakdown"`
	FeaturedWorks      []FeaturedWork     `json:"featuredWorks"`
}

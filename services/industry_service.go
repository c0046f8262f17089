package services

import (
	"sort"
	"strings"

	"portfolio_insights/models"
)

// ClassifyIndustries 按固定顺序的规则表对作品做单标签行业分类。
// 规则按表内顺序逐条匹配（大小写敏感的子串匹配），第一条命中的规则
// 决定作品归属；全部未命中落入 Other。每个作品只计入一个分类。
// 返回计数大于0的分类，按计数降序（相同计数按规则顺序），
// 百分比按已分类总数计算，颜色索引取结果数组位置
func ClassifyIndustries(works []models.WorkRecord, rules []models.IndustryRule) []models.IndustryBucket {
	if len(works) == 0 {
		return []models.IndustryBucket{}
	}

	counts := make(map[string]int)
	for i := range works {
		counts[classifyWork(&works[i], rules)]++
	}

	// 分类顺序以规则表为准，Other 固定排在最后
	categories := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		categories = append(categories, r.Category)
	}
	categories = append(categories, models.IndustryOther)

	rank := make(map[string]int, len(categories))
	for i, c := range categories {
		rank[c] = i
	}

	present := make([]string, 0, len(counts))
	for _, c := range categories {
		if counts[c] > 0 {
			present = append(present, c)
		}
	}
	sort.SliceStable(present, func(i, j int) bool {
		if counts[present[i]] != counts[present[j]] {
			return counts[present[i]] > counts[present[j]]
		}
		return rank[present[i]] < rank[present[j]]
	})

	total := len(works)
	buckets := make([]models.IndustryBucket, 0, len(present))
	for i, c := range present {
		buckets = append(buckets, models.IndustryBucket{
			Category:   c,
			Count:      counts[c],
			Percentage: float64(counts[c]) / float64(total) * 100,
			ColorIndex: i,
		})
	}
	return buckets
}

// classifyWork 返回第一条命中规则的分类，未命中返回 Other
func classifyWork(w *models.WorkRecord, rules []models.IndustryRule) string {
	text := w.ClassifiableText()
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(text, kw) {
				return rule.Category
			}
		}
	}
	return models.IndustryOther
}

// TopIndustryCategory 返回占比最高的分类，空结果返回空字符串
func TopIndustryCategory(buckets []models.IndustryBucket) string {
	if len(buckets) == 0 {
		return ""
	}
	return buckets[0].Category
}

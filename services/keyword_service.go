package services

import (
	"sort"

	"portfolio_insights/models"
	"portfolio_insights/utils"
)

// DefaultKeywordLimit 关键词分析默认返回条数
const DefaultKeywordLimit = 15

// AnalyzeKeywords 统计作品标签的关键词频次。每个作品的 tags 与 aiTags
// 取并集，同一个归一化关键词在一个作品内只计一次；summary 里的预计算
// 条目按其频次叠加（频次缺省按1）。展示标签取首次出现的原始写法。
// 结果按频次降序，频次相同保持首次出现顺序，截断到 limit 条
func AnalyzeKeywords(works []models.WorkRecord, summary *models.TagSummary, limit int) []models.KeywordEntry {
	if limit <= 0 {
		limit = DefaultKeywordLimit
	}

	freq := make(map[string]int)
	labels := make(map[string]string)
	order := make([]string, 0)

	record := func(key, rawLabel string, n int) {
		if _, ok := freq[key]; !ok {
			order = append(order, key)
			labels[key] = rawLabel
		}
		freq[key] += n
	}

	for i := range works {
		w := &works[i]
		seen := make(map[string]bool)
		for _, raw := range w.Tags {
			addTag(record, seen, raw)
		}
		for _, raw := range w.AITags {
			addTag(record, seen, raw)
		}
	}

	// 预计算关键词叠加在原始标签计数之上，解析失败的数据已被忽略
	if summary != nil {
		for _, e := range summary.ParseKeywords() {
			key := utils.NormalizeKeyword(e.Keyword)
			if key == "" {
				continue
			}
			record(key, e.Keyword, e.Frequency)
		}
	}

	position := make(map[string]int, len(order))
	for i, key := range order {
		position[key] = i
	}

	keys := make([]string, len(order))
	copy(keys, order)
	sort.SliceStable(keys, func(i, j int) bool {
		if freq[keys[i]] != freq[keys[j]] {
			return freq[keys[i]] > freq[keys[j]]
		}
		return position[keys[i]] < position[keys[j]]
	})

	if len(keys) > limit {
		keys = keys[:limit]
	}

	entries := make([]models.KeywordEntry, 0, len(keys))
	for _, key := range keys {
		f := freq[key]
		entries = append(entries, models.KeywordEntry{
			Label:     labels[key],
			Frequency: f,
			Weight:    keywordWeight(f),
		})
	}
	return entries
}

func addTag(record func(string, string, int), seen map[string]bool, raw string) {
	key := utils.NormalizeKeyword(raw)
	if key == "" || seen[key] {
		return
	}
	seen[key] = true
	record(key, raw, 1)
}

// keywordWeight 展示权重 = clamp(ceil(frequency/2), 1, 5)
func keywordWeight(frequency int) int {
	return utils.ClampInt((frequency+1)/2, 1, 5)
}

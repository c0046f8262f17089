package models

import (
	"encoding/json"
)

// Profile 创作者资料（可选数据，缺失时使用默认值）
type Profile struct {
	UserID          string `db:"user_id" json:"userId"`
	DisplayName     string `db:"display_name" json:"displayName"`
	AvatarURL       string `db:"avatar_url" json:"avatarUrl"`
	Headline        string `db:"headline" json:"headline"`
	ExperienceYears int    `db:"experience_years" json:"experienceYears"`
}

// TagSummaryEntry 预计算的加权关键词条目
type TagSummaryEntry struct {
	Keyword   string  `json:"keyword"`
	Frequency int     `json:"frequency"`
	Weight    float64 `json:"weight,omitempty"`
}

// TagSummary 用户的预计算关键词数据。keywords 字段可能是结构化数组，
// 也可能是再编码一层的JSON字符串，解析时两种格式都要兼容
type TagSummary struct {
	UserID      string `db:"user_id" json:"userId"`
	KeywordsRaw string `db:"keywords" json:"keywords"`
}

// ParseKeywords 解析关键词数据。先按对象数组解析，失败后兜底按
// JSON字符串包裹的数组解析。仍然失败时返回空列表，不向上抛错
func (t *TagSummary) ParseKeywords() []TagSummaryEntry {
	if t == nil || t.KeywordsRaw == "" {
		return nil
	}

	var entries []TagSummaryEntry
	if err := json.Unmarshal([]byte(t.KeywordsRaw), &entries); err == nil {
		return sanitizeEntries(entries)
	}

	var inner string
	if err := json.Unmarshal([]byte(t.KeywordsRaw), &inner); err != nil {
		return nil
	}
	if err := json.Unmarshal([]byte(inner), &entries); err != nil {
		return nil
	}
	return sanitizeEntries(entries)
}

// sanitizeEntries 过滤空关键词并补默认频次
func sanitizeEntries(entries []TagSummaryEntry) []TagSummaryEntry {
	out := make([]TagSummaryEntry, 0, len(entries))
	for _, e := range entries {
		if e.Keyword == "" {
			continue
		}
		if e.Frequency <= 0 {
			e.Frequency = 1
		}
		out = append(out, e)
	}
	return out
}

// KeywordEntry 关键词分析结果条目，Weight 取值范围 [1,5]，用于展示字号
type KeywordEntry struct {
	Label     string `json:"label"`
	Frequency int    `json:"frequency"`
	Weight    int    `json:"weight"`
}

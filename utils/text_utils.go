package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// NormalizeKeyword 关键词归一化：NFKC规范化 → 宽度折叠 → 去首尾空白 →
// 小写 → 压缩内部空白。归一化后相同的关键词合并为同一个计数
func NormalizeKeyword(s string) string {
	s = norm.NFKC.String(s)
	s = width.Fold.String(s)
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return CollapseWhitespace(s)
}

// CollapseWhitespace 将内部连续空白压缩为单个空格
func CollapseWhitespace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}

// DeduplicateSlice 去重字符串切片，保留首次出现的顺序
func DeduplicateSlice(input []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)

	for _, val := range input {
		val = strings.TrimSpace(val)
		if val != "" && !seen[val] {
			result = append(result, val)
			seen[val] = true
		}
	}

	return result
}

// Clamp 将v限制在[lo, hi]区间内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt 将v限制在[lo, hi]区间内
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Min 返回两个整数中的较小值
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package repository

import (
	"encoding/json"
	"strings"

	"portfolio_insights/db"
)

// =====================
// 通用工具函数
// =====================

// placeholders 生成 IN 子句占位符: "?,?,?"
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// toArgs 将字符串切片转换为查询参数
func toArgs(ids []string) []any {
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	return args
}

// exists 执行 COUNT(1) 查询并返回是否存在数据
func exists(query string, args ...interface{}) (bool, error) {
	var count int
	err := db.DB.QueryRow(query, args...).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// parseStringArray 解析JSON数组列，解析失败返回空切片
func parseStringArray(raw string) []string {
	if raw == "" {
		return nil
	}
	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err != nil {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, s := range arr {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

package models

import "fmt"

// ValidationError 请求结构不合法，致命错误，对应HTTP 400
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// UpstreamFetchError 可选数据读取失败。本地恢复：记日志、填默认值、
// 继续计算，不会中断请求
type UpstreamFetchError struct {
	Source string
	Err    error
}

func (e *UpstreamFetchError) Error() string {
	return fmt.Sprintf("fetch %s failed: %v", e.Source, e.Err)
}

func (e *UpstreamFetchError) Unwrap() error { return e.Err }

// AggregationError 计算阶段的非预期异常，对应HTTP 500，不返回部分报告
type AggregationError struct {
	Stage string
	Err   error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregation failed at %s: %v", e.Stage, e.Err)
}

func (e *AggregationError) Unwrap() error { return e.Err }

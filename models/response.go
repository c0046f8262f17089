package models

import "time"

// 响应码定义
const (
	// 成功
	CodeSuccess = 0

	// 客户端错误 (1000-1999)
	CodeInvalidParams = 1000 // 无效的参数
	CodeMissingWorks  = 1001 // 缺少works数组
	CodeInvalidBody   = 1002 // 请求体不是合法JSON

	// 服务端错误 (2000-2999)
	CodeServerError      = 2000 // 服务器内部错误
	CodeStoreError       = 2001 // 内容库读取失败
	CodeAggregationError = 2002 // 报告计算失败
)

// 错误码对应的消息
var CodeMessages = map[int]string{
	CodeSuccess:          "success",
	CodeInvalidParams:    "无效的参数",
	CodeMissingWorks:     "缺少works数组",
	CodeInvalidBody:      "请求体格式错误",
	CodeServerError:      "服务器内部错误",
	CodeStoreError:       "内容库读取失败",
	CodeAggregationError: "报告计算失败",
}

// APIResponse 通用API响应，Timestamp 为 RFC3339 UTC
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// ReportResponse 报告接口响应，在通用结构之外附带资料摘要
type ReportResponse struct {
	Success   bool        `json:"success"`
	Data      *Report     `json:"data,omitempty"`
	Profile   *Profile    `json:"profile,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

func responseTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// NewSuccessResponse 创建成功响应
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: responseTimestamp(),
	}
}

// NewErrorResponse 创建错误响应
func NewErrorResponse(code int) APIResponse {
	message, exists := CodeMessages[code]
	if !exists {
		message = "未知错误"
	}
	return APIResponse{
		Success:   false,
		Error:     message,
		Timestamp: responseTimestamp(),
	}
}

// NewCustomErrorResponse 创建自定义错误消息的响应
func NewCustomErrorResponse(message string) APIResponse {
	return APIResponse{
		Success:   false,
		Error:     message,
		Timestamp: responseTimestamp(),
	}
}

// NewReportResponse 创建报告成功响应
func NewReportResponse(report *Report, profile *Profile) ReportResponse {
	return ReportResponse{
		Success:   true,
		Data:      report,
		Profile:   profile,
		Timestamp: responseTimestamp(),
	}
}

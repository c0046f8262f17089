package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"portfolio_insights/models"
)

// WriteFormattedJSON 格式化JSON输出，使其更易读
func WriteFormattedJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ") // 使用4个空格缩进
	encoder.Encode(data)
}

// WriteSuccessResponse 写入成功响应
func WriteSuccessResponse(w http.ResponseWriter, data interface{}) {
	WriteFormattedJSON(w, http.StatusOK, models.NewSuccessResponse(data))
}

// WriteErrorResponse 写入错误响应
func WriteErrorResponse(w http.ResponseWriter, status, code int) {
	WriteFormattedJSON(w, status, models.NewErrorResponse(code))
}

// WriteCustomErrorResponse 写入自定义错误消息的响应
func WriteCustomErrorResponse(w http.ResponseWriter, status int, message string) {
	WriteFormattedJSON(w, status, models.NewCustomErrorResponse(message))
}

// HandleServiceError 按错误类型映射HTTP状态：结构校验失败对应400，
// 计算异常和内容库整体故障对应500
func HandleServiceError(w http.ResponseWriter, err error) {
	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		WriteCustomErrorResponse(w, http.StatusBadRequest, vErr.Error())
		return
	}

	var aErr *models.AggregationError
	if errors.As(err, &aErr) {
		WriteErrorResponse(w, http.StatusInternalServerError, models.CodeAggregationError)
		return
	}

	var uErr *models.UpstreamFetchError
	if errors.As(err, &uErr) {
		WriteErrorResponse(w, http.StatusInternalServerError, models.CodeStoreError)
		return
	}

	WriteCustomErrorResponse(w, http.StatusInternalServerError, err.Error())
}

// ValidateUserID 验证路径中的userId参数
func ValidateUserID(w http.ResponseWriter, userID string) bool {
	if userID == "" {
		WriteErrorResponse(w, http.StatusBadRequest, models.CodeInvalidParams)
		return false
	}
	return true
}

package handlers

import (
	"net/http"
	"time"

	"portfolio_insights/logger"
	"portfolio_insights/models"
	"portfolio_insights/services"
	"portfolio_insights/utils"
)

// TrendingHandler godoc
// @Summary 获取发现页热门内容
// @Description 返回热门作品列表和/或标签热度统计，type参数控制返回内容
// @Tags 发现
// @Accept json
// @Produce json
// @Param type query string false "内容类型" Enums(featured, tags, all) default(featured)
// @Param viewer query string false "浏览者用户ID，用于返回点赞状态"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Router /discovery/trending [get]
func TrendingHandler(w http.ResponseWriter, r *http.Request, engine *services.Engine) {
	feedType := r.URL.Query().Get("type")
	if feedType == "" {
		feedType = "featured"
	}
	if feedType != "featured" && feedType != "tags" && feedType != "all" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, models.CodeInvalidParams)
		return
	}
	viewerID := r.URL.Query().Get("viewer")
	now := time.Now().UTC()

	data := models.DiscoveryData{}

	if feedType == "featured" || feedType == "all" {
		feed, err := engine.Trending.Feed(viewerID, now)
		if err != nil {
			logger.Error("热门列表生成失败", "error", err)
			utils.HandleServiceError(w, err)
			return
		}
		data.Featured = feed
	}

	if feedType == "tags" || feedType == "all" {
		tags, err := engine.Trending.TopTags(now)
		if err != nil {
			// 标签统计失败时若已有热门列表则降级返回
			if data.Featured == nil {
				logger.Error("标签热度统计失败", "error", err)
				utils.HandleServiceError(w, err)
				return
			}
			logger.Warn("标签热度统计失败，只返回热门列表", "error", err)
		} else {
			data.Tags = tags
		}
	}

	utils.WriteSuccessResponse(w, data)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"portfolio_insights/config"
	_ "portfolio_insights/docs" // 导入 swagger 文档
	"portfolio_insights/models"
	"portfolio_insights/services"
	"portfolio_insights/utils"
)

// reportRequest 报告请求体。Works 为指针以便区分"缺少字段"和"空数组"
type reportRequest struct {
	Works *[]models.WorkRecord `json:"works"`
}

// ReportHandler godoc
// @Summary 生成创作者作品集分析报告
// @Description 根据提交的作品列表计算关键词分析、行业分布、代表作和表现指标。资料等可选数据读取失败不影响报告生成
// @Tags 报告
// @Accept json
// @Produce json
// @Param userId path string true "用户ID"
// @Param body body handlers.reportRequest true "作品列表"
// @Success 200 {object} models.ReportResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Router /report/{userId} [post]
func ReportHandler(w http.ResponseWriter, r *http.Request, engine *services.Engine) {
	userID := chi.URLParam(r, "userId")
	if !utils.ValidateUserID(w, userID) {
		return
	}

	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, models.CodeInvalidBody)
		return
	}
	if req.Works == nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, models.CodeMissingWorks)
		return
	}

	report, profile, err := engine.Reports.BuildReport(userID, *req.Works)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.WriteFormattedJSON(w, http.StatusOK, models.NewReportResponse(report, profile))
}

func RegisterRoutes(r *chi.Mux, cfg *config.Config, engine *services.Engine) {
	// Swagger 文档
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // Swagger JSON 的 URL
	))

	r.Get("/discovery/trending", func(w http.ResponseWriter, r *http.Request) {
		TrendingHandler(w, r, engine)
	})

	r.Post("/report/{userId}", func(w http.ResponseWriter, r *http.Request) {
		ReportHandler(w, r, engine)
	})
}

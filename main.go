package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/swaggo/swag" // 导入 swag

	"portfolio_insights/config"
	"portfolio_insights/db"
	_ "portfolio_insights/docs" // 导入 swagger 文档
	"portfolio_insights/handlers"
	"portfolio_insights/logger"
	"portfolio_insights/repository"
	"portfolio_insights/scheduler"
	"portfolio_insights/services"
)

func main() {
	cfg := config.Load()

	// 初始化日志系统
	if err := logger.Init(cfg); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	logger.Info("日志系统初始化成功", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	if err := db.InitMySQLWithConfig(cfg); err != nil {
		logger.Error("初始化MySQL失败", "error", err)
		os.Exit(1)
	}
	logger.Info("MySQL连接成功",
		"max_open_conns", cfg.DB.MaxOpenConns,
		"max_idle_conns", cfg.DB.MaxIdleConns,
		"conn_max_lifetime", cfg.DB.ConnMaxLifetime)

	// 组装分析引擎
	engine := services.NewEngine(cfg,
		repository.NewWorkStore(),
		repository.NewReactionStore(),
		repository.NewProfileStore(),
		repository.NewTagSummaryStore(),
	)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	handlers.RegisterRoutes(r, cfg, engine)

	// 启动定时刷新
	scheduler.Start(cfg, engine)

	logger.Info("服务器启动", "address", cfg.Server.Addr)
	logger.Info("Swagger文档可访问", "url", "http://localhost"+cfg.Server.Addr+"/swagger/index.html")
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, r))
}

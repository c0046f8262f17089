package scheduler

import (
	"sync"
	"time"

	"portfolio_insights/config"
	"portfolio_insights/logger"
	"portfolio_insights/services"
)

// 任务类型
type TaskType int

const (
	TaskTrendingRefresh TaskType = iota
)

// 任务状态
type TaskStatus struct {
	LastRun     time.Time
	NextRun     time.Time
	IsRunning   bool
	Description string
}

// Scheduler 定时任务调度器，目前只承载热门列表缓存的定时刷新
type Scheduler struct {
	cfg    *config.Config
	engine *services.Engine
	tasks  map[TaskType]*TaskStatus
	mutex  sync.Mutex
}

func NewScheduler(cfg *config.Config, engine *services.Engine) *Scheduler {
	return &Scheduler{
		cfg:    cfg,
		engine: engine,
		tasks:  make(map[TaskType]*TaskStatus),
	}
}

// Start 启动调度器
func Start(cfg *config.Config, engine *services.Engine) {
	s := NewScheduler(cfg, engine)
	s.initTasks()
	go s.run()

	logger.Info("调度器已启动",
		"check_interval_sec", cfg.Scheduler.CheckIntervalSec,
		"trending_refresh_sec", cfg.Trending.RefreshIntervalSec)
}

// 初始化任务
func (s *Scheduler) initTasks() {
	now := time.Now()
	interval := s.refreshInterval()

	s.tasks[TaskTrendingRefresh] = &TaskStatus{
		LastRun:     now.Add(-interval),
		NextRun:     now, // 启动后立即预热一次缓存
		IsRunning:   false,
		Description: "热门列表缓存刷新",
	}

	logger.Info("定时任务初始化完成", "task_count", len(s.tasks))
}

func (s *Scheduler) refreshInterval() time.Duration {
	sec := s.cfg.Trending.RefreshIntervalSec
	if sec <= 0 {
		sec = 300
	}
	return time.Duration(sec) * time.Second
}

// 主循环
func (s *Scheduler) run() {
	checkInterval := s.cfg.Scheduler.CheckIntervalSec
	if checkInterval <= 0 {
		checkInterval = 60
	}
	ticker := time.NewTicker(time.Duration(checkInterval) * time.Second)
	defer ticker.Stop()

	for now := range ticker.C {
		s.checkTasks(now)
	}
}

// 检查任务
func (s *Scheduler) checkTasks(now time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for taskType, status := range s.tasks {
		// 如果任务正在运行，跳过
		if status.IsRunning {
			continue
		}

		if now.After(status.NextRun) || now.Equal(status.NextRun) {
			status.IsRunning = true
			go s.runTask(taskType, now)
		}
	}
}

// 运行任务
func (s *Scheduler) runTask(taskType TaskType, now time.Time) {
	defer func() {
		s.mutex.Lock()
		defer s.mutex.Unlock()

		status := s.tasks[taskType]
		status.IsRunning = false
		status.LastRun = now

		switch taskType {
		case TaskTrendingRefresh:
			status.NextRun = now.Add(s.refreshInterval())
		}

		logger.Info("任务执行完成", "task", status.Description, "next_run", status.NextRun.Format("2006-01-02 15:04:05"))
	}()

	switch taskType {
	case TaskTrendingRefresh:
		if err := s.engine.Trending.Refresh(time.Now().UTC()); err != nil {
			logger.Error("热门列表缓存刷新失败", "error", err)
		}
	}
}

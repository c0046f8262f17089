package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"portfolio_insights/models"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // 不从配置文件读取，而是在加载后计算
	} `yaml:"server"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`

	DB struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Username        string `yaml:"username"`
		Password        string `yaml:"password"`
		Database        string `yaml:"database"`
		Charset         string `yaml:"charset"`
		ParseTime       bool   `yaml:"parse_time"`
		DSN             string `yaml:"-"`                 // 不从配置文件读取，而是在加载后计算
		MaxOpenConns    int    `yaml:"max_open_conns"`    // 最大打开连接数
		MaxIdleConns    int    `yaml:"max_idle_conns"`    // 最大空闲连接数
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // 连接最大生命周期（分钟）
	} `yaml:"database"`

	Trending struct {
		TargetSize         int `yaml:"target_size"`          // 热门列表目标条数
		RecentWindowHours  int `yaml:"recent_window_hours"`  // 最近窗口（小时）
		WeekWindowDays     int `yaml:"week_window_days"`     // 次级窗口（天）
		CacheTTLSec        int `yaml:"cache_ttl_sec"`        // 缓存有效期（秒）
		RefreshIntervalSec int `yaml:"refresh_interval_sec"` // 定时刷新间隔（秒）
		EnrichConcurrency  int `yaml:"enrich_concurrency"`   // 补全作者资料的并发数
		TagWindowDays      int `yaml:"tag_window_days"`      // 标签热度统计窗口（天）
		TagFetchLimit      int `yaml:"tag_fetch_limit"`      // 标签热度统计取样作品数
		TagLimit           int `yaml:"tag_limit"`            // 标签热度返回条数
	} `yaml:"trending"`

	// Scoring 代表作评分权重。这些是经验常数，来源没有文档化的推导，
	// 保持可配置而不是在代码里重新推导
	Scoring struct {
		ViewsWeight     float64 `yaml:"views_weight"`
		LikesWeight     float64 `yaml:"likes_weight"`
		RecencyWeight   float64 `yaml:"recency_weight"`
		ThumbnailWeight float64 `yaml:"thumbnail_weight"`
		FeaturedLimit   int     `yaml:"featured_limit"` // 代表作条数
		KeywordLimit    int     `yaml:"keyword_limit"`  // 关键词分析条数
	} `yaml:"scoring"`

	// Industry 行业分类规则表，留空时使用内置默认表。规则顺序即匹配优先级
	Industry struct {
		Rules []models.IndustryRule `yaml:"rules"`
	} `yaml:"industry"`

	Scheduler struct {
		CheckIntervalSec int `yaml:"check_interval_sec"` // 调度器检查间隔（秒）
	} `yaml:"scheduler"`
}

func Load() *Config {
	// 首先尝试加载.env文件中的环境变量
	_ = godotenv.Load() // 忽略错误，如果.env文件不存在，继续使用系统环境变量

	var cfg Config

	// 尝试从config.yaml文件加载配置
	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Printf("Error loading config.yaml: %v, falling back to environment variables", err)
			cfg = *loadFromEnv()
			applyDefaults(&cfg)
			return &cfg
		}
		log.Println("Loading configuration from config.yaml")
	} else {
		// 如果config.yaml不存在，则完全从环境变量加载配置
		cfg = *loadFromEnv()
	}

	// 从环境变量中加载敏感信息和用户名
	if envUsername := os.Getenv("DATABASE_USERNAME"); envUsername != "" {
		cfg.DB.Username = envUsername
	}
	if envPassword := os.Getenv("DATABASE_PASSWORD"); envPassword != "" {
		cfg.DB.Password = envPassword
	}

	applyDefaults(&cfg)

	// 计算 Server.Addr 字段
	cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

	// 计算 DB.DSN 字段
	if cfg.DB.DSN == "" {
		if cfg.DB.Charset == "" {
			cfg.DB.Charset = "utf8mb4"
		}
		parseTime := ""
		if cfg.DB.ParseTime {
			parseTime = "&parseTime=true"
		}
		cfg.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s%s",
			cfg.DB.Username,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Database,
			cfg.DB.Charset,
			parseTime)
	}

	return &cfg
}

// applyDefaults 填充未配置项的默认值
func applyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Trending.TargetSize <= 0 {
		cfg.Trending.TargetSize = 10
	}
	if cfg.Trending.RecentWindowHours <= 0 {
		cfg.Trending.RecentWindowHours = 24
	}
	if cfg.Trending.WeekWindowDays <= 0 {
		cfg.Trending.WeekWindowDays = 7
	}
	if cfg.Trending.CacheTTLSec <= 0 {
		cfg.Trending.CacheTTLSec = 300
	}
	if cfg.Trending.RefreshIntervalSec <= 0 {
		cfg.Trending.RefreshIntervalSec = 300
	}
	if cfg.Trending.EnrichConcurrency <= 0 {
		cfg.Trending.EnrichConcurrency = 10
	}
	if cfg.Trending.TagWindowDays <= 0 {
		cfg.Trending.TagWindowDays = 7
	}
	if cfg.Trending.TagFetchLimit <= 0 {
		cfg.Trending.TagFetchLimit = 200
	}
	if cfg.Trending.TagLimit <= 0 {
		cfg.Trending.TagLimit = 20
	}
	if cfg.Scoring.ViewsWeight <= 0 {
		cfg.Scoring.ViewsWeight = 0.4
	}
	if cfg.Scoring.LikesWeight <= 0 {
		cfg.Scoring.LikesWeight = 0.4
	}
	if cfg.Scoring.RecencyWeight <= 0 {
		cfg.Scoring.RecencyWeight = 0.15
	}
	if cfg.Scoring.ThumbnailWeight <= 0 {
		cfg.Scoring.ThumbnailWeight = 0.05
	}
	if cfg.Scoring.FeaturedLimit <= 0 {
		cfg.Scoring.FeaturedLimit = 4
	}
	if cfg.Scoring.KeywordLimit <= 0 {
		cfg.Scoring.KeywordLimit = 15
	}
	if len(cfg.Industry.Rules) == 0 {
		cfg.Industry.Rules = models.DefaultIndustryRules()
	}
	if cfg.Scheduler.CheckIntervalSec <= 0 {
		cfg.Scheduler.CheckIntervalSec = 60
	}
}

func loadFromEnv() *Config {
	// 当config.yaml加载失败时，创建一个最小配置
	var cfg Config

	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}

	// 只从环境变量中加载敏感信息
	if username := os.Getenv("DATABASE_USERNAME"); username != "" {
		cfg.DB.Username = username
	}
	if password := os.Getenv("DATABASE_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.DB.DSN = dsn
	}

	log.Println("配置从环境变量加载，部分配置可能缺失")
	return &cfg
}

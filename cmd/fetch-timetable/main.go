package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/SiGNAL-Team/server/config"
	"github.com/SiGNAL-Team/server/internal/model"
	"github.com/SiGNAL-Team/server/internal/repository"
	"github.com/SiGNAL-Team/server/internal/service"
	"github.com/SiGNAL-Team/server/internal/upstream"
	"github.com/SiGNAL-Team/server/pkg/database"
	applogger "github.com/SiGNAL-Team/server/pkg/logger"
	"github.com/SiGNAL-Team/server/pkg/redis"
)

// fetch-timetable 从教务目录同步学期列表并导入开课目录。
// 默认导入最近开始的学期；--semester 指定学期代码；--all 导入全部学期。
func main() {
	var (
		configPath   = flag.String("config", "", "配置文件路径（默认搜索 ./config）")
		semesterCode = flag.String("semester", "", "学期代码，如 2024-fall")
		all          = flag.Bool("all", false, "导入全部学期")
		quiet        = flag.Bool("quiet", false, "仅输出告警及以上日志")
		logLevel     = flag.String("log-level", "", "覆盖配置中的日志级别")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *quiet {
		cfg.Log.Level = "warn"
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}
	defer sqlDB.Close()

	// Redis 仅用于上游响应缓存，连接失败时直连上游
	var cache upstream.Cache
	if rdb, err := redis.NewClient(&cfg.Redis, logger); err != nil {
		logger.Warn("Redis 连接失败，上游缓存不可用", zap.Error(err))
	} else {
		cache = rdb
		defer rdb.Close()
	}

	httpClient := &http.Client{Timeout: cfg.Upstream.Timeout}
	upClient := upstream.NewClient(httpClient, cache, cfg.Upstream.CacheTTL, cfg.Upstream.UserAgent, logger)
	catalog := upstream.NewCatalogClient(upClient, cfg.Upstream.CatalogBaseURL)

	repo := repository.NewRepository(db)
	semesterSvc := service.NewSemesterService(repo, catalog, logger)
	catalogSvc := service.NewCatalogService(repo, catalog, logger)

	ctx := context.Background()

	semesters, err := semesterSvc.Sync(ctx)
	if err != nil {
		logger.Fatal("同步学期列表失败", zap.Error(err))
	}
	logger.Info("学期列表同步完成", zap.Int("total", len(semesters)))

	var targets []model.Semester
	switch {
	case *all:
		targets = semesters
	case *semesterCode != "":
		semester, err := semesterSvc.SelectByCode(ctx, *semesterCode)
		if err != nil {
			logger.Fatal("选择学期失败", zap.String("code", *semesterCode), zap.Error(err))
		}
		targets = []model.Semester{*semester}
	default:
		semester, err := semesterSvc.MostRecent(ctx)
		if err != nil {
			logger.Fatal("选择最近学期失败", zap.Error(err))
		}
		targets = []model.Semester{*semester}
	}

	start := time.Now()
	for i := range targets {
		semester := &targets[i]
		logger.Info("开始导入学期开课目录",
			zap.String("semester", semester.Code),
			zap.String("name", semester.Name),
		)
		stats, err := catalogSvc.ImportSemester(ctx, semester)
		if err != nil {
			logger.Error("学期导入失败", zap.String("semester", semester.Code), zap.Error(err))
			continue
		}
		logger.Info("学期导入完成",
			zap.String("semester", semester.Code),
			zap.Int("total", stats.Total),
			zap.Int("created", stats.Created),
			zap.Int("updated", stats.Updated),
			zap.Int("errors", stats.Errors),
		)
	}
	logger.Info("全部导入完成", zap.Duration("elapsed", time.Since(start)))
}
